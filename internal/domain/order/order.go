package order

import (
	"strings"
	"time"

	"github.com/makelifebetter/storefront-service/internal/domain/checkout"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

var statusLabels = map[Status]string{
	StatusPending:   "Aguardando Pagamento",
	StatusPaid:      "Pago",
	StatusShipped:   "Enviado",
	StatusDelivered: "Entregue",
	StatusCancelled: "Cancelado",
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s Status) Label() string {
	return statusLabels[s]
}

// Item is the snapshot of one cart line taken at order time. The price is the
// effective price the buyer saw, not the regular one.
type Item struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type Order struct {
	ID           string                    `json:"id"`
	UserID       string                    `json:"user_id"`
	UserEmail    string                    `json:"user_email"`
	Items        []Item                    `json:"items"`
	Address      checkout.Address          `json:"address"`
	Shipping     checkout.ShippingOption   `json:"shipping"`
	Payment      checkout.PaymentSelection `json:"payment"`
	Subtotal     float64                   `json:"subtotal"`
	ShippingCost float64                   `json:"shipping_cost"`
	Total        float64                   `json:"total"`
	Status       Status                    `json:"status"`
	CreatedAt    time.Time                 `json:"created_at"`
	UpdatedAt    *time.Time                `json:"updated_at,omitempty"`
}

// ItemCount is the total number of units across the order items.
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

// Number derives the short human-facing order number from the order ID.
func Number(orderID string) string {
	if len(orderID) > 8 {
		orderID = orderID[:8]
	}
	return strings.ToUpper(orderID)
}
