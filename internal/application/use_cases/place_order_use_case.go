package use_cases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/makelifebetter/storefront-service/internal/application/ports"
	"github.com/makelifebetter/storefront-service/internal/domain/cart"
	"github.com/makelifebetter/storefront-service/internal/domain/checkout"
	domainErrors "github.com/makelifebetter/storefront-service/internal/domain/errors"
	"github.com/makelifebetter/storefront-service/internal/domain/order"
	"github.com/makelifebetter/storefront-service/internal/domain/pricing"
	"github.com/makelifebetter/storefront-service/internal/pkg/clock"
	"github.com/makelifebetter/storefront-service/internal/pkg/format"
	"github.com/makelifebetter/storefront-service/internal/pkg/logger"
)

// Confirmation is what the confirmation step displays after a successful
// order submission.
type Confirmation struct {
	OrderID        string    `json:"order_id"`
	Number         string    `json:"number"`
	PaymentMethod  string    `json:"payment_method"`
	Installments   int       `json:"installments"`
	DeliveryDate   time.Time `json:"delivery_date"`
	DeliveryLabel  string    `json:"delivery_label"`
	Address        string    `json:"address"`
	Subtotal       float64   `json:"subtotal"`
	ShippingCost   float64   `json:"shipping_cost"`
	Total          float64   `json:"total"`
	TotalFormatted string    `json:"total_formatted"`
}

type PlaceOrderUseCase struct {
	orders   ports.OrderRepository
	identity ports.IdentityProvider
	clock    clock.Clock
	log      *logger.Logger
}

func NewPlaceOrderUseCase(
	orders ports.OrderRepository,
	identityProvider ports.IdentityProvider,
	clk clock.Clock,
	log *logger.Logger,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		orders:   orders,
		identity: identityProvider,
		clock:    clk,
		log:      log,
	}
}

// Execute assembles the order payload from the checkout session and the cart
// snapshot, persists it, and on success clears the cart and advances the
// session to the confirmation step. On any failure the session stays at the
// payment step and the cart is untouched, so the user can fix and resubmit.
func (uc *PlaceOrderUseCase) Execute(ctx context.Context, userID string, session *checkout.Session, engine *cart.Engine) (*Confirmation, error) {
	user, err := uc.identity.CurrentUser(ctx, userID)
	if err != nil {
		uc.log.Error("Failed to resolve current user", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, domainErrors.ErrNotAuthenticated
	}

	if engine.IsEmpty() {
		return nil, domainErrors.ErrCartEmpty
	}

	if err := session.ValidatePayment(); err != nil {
		return nil, err
	}

	if err := session.BeginSubmission(); err != nil {
		return nil, err
	}
	defer session.EndSubmission()

	items := engine.Items()
	totals := pricing.ComputeTotals(items, session.Shipping.Price)

	orderItems := make([]order.Item, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, order.Item{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.EffectivePrice(),
			Quantity:  item.Quantity,
		})
	}

	now := uc.clock.Now()
	o := &order.Order{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		UserEmail:    user.Email,
		Items:        orderItems,
		Address:      session.Address,
		Shipping:     session.Shipping,
		Payment:      session.Payment,
		Subtotal:     totals.Subtotal,
		ShippingCost: totals.ShippingCost,
		Total:        totals.Total,
		Status:       order.StatusPending,
		CreatedAt:    now,
	}

	if err := uc.orders.Create(ctx, o); err != nil {
		uc.log.Error("Order creation failed", "user_id", user.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrOrderCreateFailed, err)
	}

	engine.Clear(ctx)
	session.Complete()

	uc.log.Info("Order placed",
		"order_id", o.ID,
		"user_id", user.ID,
		"items", len(o.Items),
		"total", o.Total,
	)

	return &Confirmation{
		OrderID:        o.ID,
		Number:         order.Number(o.ID),
		PaymentMethod:  o.Payment.Method.Label(),
		Installments:   o.Payment.Installments,
		DeliveryDate:   checkout.DeliveryDate(o.Shipping.Type, now),
		DeliveryLabel:  format.Date(checkout.DeliveryDate(o.Shipping.Type, now)),
		Address:        o.Address.Line(),
		Subtotal:       o.Subtotal,
		ShippingCost:   o.ShippingCost,
		Total:          o.Total,
		TotalFormatted: format.Currency(o.Total),
	}, nil
}
