package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/makelifebetter/storefront-service/internal/application/ports"
	"github.com/makelifebetter/storefront-service/internal/application/sessions"
	"github.com/makelifebetter/storefront-service/internal/application/use_cases"
	"github.com/makelifebetter/storefront-service/internal/domain/cart"
	"github.com/makelifebetter/storefront-service/internal/domain/checkout"
	domainErrors "github.com/makelifebetter/storefront-service/internal/domain/errors"
	"github.com/makelifebetter/storefront-service/internal/domain/pricing"
	"github.com/makelifebetter/storefront-service/internal/infrastructure/http/response"
	"github.com/makelifebetter/storefront-service/internal/infrastructure/monitoring"
	"github.com/makelifebetter/storefront-service/internal/pkg/logger"
)

type CheckoutHandler struct {
	sessions   *sessions.Manager
	store      cart.Store
	identity   ports.IdentityProvider
	placeOrder *use_cases.PlaceOrderUseCase
	log        *logger.Logger
}

func NewCheckoutHandler(
	sessionManager *sessions.Manager,
	store cart.Store,
	identityProvider ports.IdentityProvider,
	placeOrder *use_cases.PlaceOrderUseCase,
	log *logger.Logger,
) *CheckoutHandler {
	return &CheckoutHandler{
		sessions:   sessionManager,
		store:      store,
		identity:   identityProvider,
		placeOrder: placeOrder,
		log:        log,
	}
}

type CheckoutView struct {
	Step     checkout.Step             `json:"step"`
	Shipping checkout.ShippingOption   `json:"shipping"`
	Payment  checkout.PaymentSelection `json:"payment"`
	Summary  pricing.Totals            `json:"summary"`
	Options  []checkout.ShippingOption `json:"shipping_options"`
}

type shippingRequest struct {
	Type string `json:"type"`
}

type paymentRequest struct {
	Method       string               `json:"method"`
	Installments int                  `json:"installments"`
	Card         checkout.CardDetails `json:"card"`
}

// HandleOpen starts a checkout session. The guards the storefront applies
// before opening the modal live here: the caller must be authenticated and
// the cart must be non-empty.
func (h *CheckoutHandler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")

	user, err := h.identity.CurrentUser(r.Context(), userID)
	if err != nil {
		h.log.Error("Failed to resolve user for checkout", "user_id", userID, "error", err)
		response.WriteDomainError(w, err)
		return
	}
	if user == nil {
		response.WriteDomainError(w, domainErrors.ErrNotAuthenticated)
		return
	}

	engine := cart.NewEngine(h.store, userID, h.log)
	engine.Load(r.Context())
	if engine.IsEmpty() {
		response.WriteDomainError(w, domainErrors.ErrCartEmpty)
		return
	}

	session := h.sessions.Open(userID)
	monitoring.RecordCheckoutStep("address")
	monitoring.UpdateActiveSessions(h.sessions.Len())

	h.log.Info("Checkout opened", "user_id", userID, "items", engine.Count())
	response.WriteSuccess(w, h.view(session, engine))
}

func (h *CheckoutHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	session, engine, ok := h.sessionAndCart(w, r)
	if !ok {
		return
	}

	response.WriteSuccess(w, h.view(session, engine))
}

func (h *CheckoutHandler) HandleSubmitAddress(w http.ResponseWriter, r *http.Request) {
	session, engine, ok := h.sessionAndCart(w, r)
	if !ok {
		return
	}

	var addr checkout.Address
	if err := json.NewDecoder(r.Body).Decode(&addr); err != nil {
		response.WriteValidationError(w, "Invalid request body", nil)
		return
	}

	fieldErrors, err := session.SubmitAddress(addr)
	if err != nil {
		if len(fieldErrors) > 0 {
			response.WriteValidationError(w, "Preencha todos os campos do endereco", fieldErrors)
			return
		}
		response.WriteDomainError(w, err)
		return
	}

	monitoring.RecordCheckoutStep("payment")
	response.WriteSuccess(w, h.view(session, engine))
}

func (h *CheckoutHandler) HandleBack(w http.ResponseWriter, r *http.Request) {
	session, engine, ok := h.sessionAndCart(w, r)
	if !ok {
		return
	}

	if err := session.BackToAddress(); err != nil {
		response.WriteDomainError(w, err)
		return
	}

	monitoring.RecordCheckoutStep("address")
	response.WriteSuccess(w, h.view(session, engine))
}

func (h *CheckoutHandler) HandleSelectShipping(w http.ResponseWriter, r *http.Request) {
	session, engine, ok := h.sessionAndCart(w, r)
	if !ok {
		return
	}

	var req shippingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteValidationError(w, "Invalid request body", nil)
		return
	}

	if !session.SelectShipping(checkout.ShippingType(req.Type)) {
		response.WriteDomainError(w, domainErrors.ErrUnknownShippingOption)
		return
	}

	response.WriteSuccess(w, h.view(session, engine))
}

func (h *CheckoutHandler) HandleSelectPayment(w http.ResponseWriter, r *http.Request) {
	session, engine, ok := h.sessionAndCart(w, r)
	if !ok {
		return
	}

	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteValidationError(w, "Invalid request body", nil)
		return
	}

	if err := session.SelectPayment(checkout.PaymentMethod(req.Method), req.Installments, req.Card); err != nil {
		response.WriteDomainError(w, err)
		return
	}

	response.WriteSuccess(w, h.view(session, engine))
}

func (h *CheckoutHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")

	session, engine, ok := h.sessionAndCart(w, r)
	if !ok {
		return
	}

	confirmation, err := h.placeOrder.Execute(r.Context(), userID, session, engine)
	if err != nil {
		monitoring.RecordOrderFailure(err.Error())
		response.WriteDomainError(w, err)
		return
	}

	monitoring.RecordCheckoutStep("confirmation")
	monitoring.RecordOrderPlaced(confirmation.Total)
	response.WriteCreated(w, confirmation)
}

func (h *CheckoutHandler) HandleClose(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")
	h.sessions.Close(userID)
	monitoring.UpdateActiveSessions(h.sessions.Len())
	w.WriteHeader(http.StatusNoContent)
}

func (h *CheckoutHandler) sessionAndCart(w http.ResponseWriter, r *http.Request) (*checkout.Session, *cart.Engine, bool) {
	userID := r.Header.Get("X-User-ID")

	session, ok := h.sessions.Get(userID)
	if !ok {
		response.WriteDomainError(w, domainErrors.ErrCheckoutNotOpen)
		return nil, nil, false
	}

	engine := cart.NewEngine(h.store, userID, h.log)
	engine.Load(r.Context())

	return session, engine, true
}

func (h *CheckoutHandler) view(session *checkout.Session, engine *cart.Engine) CheckoutView {
	return CheckoutView{
		Step:     session.Step,
		Shipping: session.Shipping,
		Payment:  session.Payment,
		Summary:  pricing.ComputeTotals(engine.Items(), session.Shipping.Price),
		Options:  checkout.ShippingOptions(),
	}
}
