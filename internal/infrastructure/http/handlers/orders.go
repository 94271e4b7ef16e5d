package handlers

import (
	"net/http"

	"github.com/makelifebetter/storefront-service/internal/application/ports"
	domainErrors "github.com/makelifebetter/storefront-service/internal/domain/errors"
	"github.com/makelifebetter/storefront-service/internal/infrastructure/http/response"
	"github.com/makelifebetter/storefront-service/internal/pkg/logger"
)

type OrdersHandler struct {
	orders   ports.OrderRepository
	identity ports.IdentityProvider
	log      *logger.Logger
}

func NewOrdersHandler(orders ports.OrderRepository, identityProvider ports.IdentityProvider, log *logger.Logger) *OrdersHandler {
	return &OrdersHandler{
		orders:   orders,
		identity: identityProvider,
		log:      log,
	}
}

func (h *OrdersHandler) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	user, err := h.identity.CurrentUser(r.Context(), r.Header.Get("X-User-ID"))
	if err != nil {
		h.log.Error("Failed to resolve user for orders", "error", err)
		response.WriteDomainError(w, err)
		return
	}
	if user == nil {
		response.WriteDomainError(w, domainErrors.ErrNotAuthenticated)
		return
	}

	orders, err := h.orders.GetByUserID(r.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to load orders", "user_id", user.ID, "error", err)
		response.WriteDomainError(w, err)
		return
	}

	response.WriteSuccess(w, orders)
}

func (h *OrdersHandler) HandleGetOrder(w http.ResponseWriter, r *http.Request, orderID string) {
	user, err := h.identity.CurrentUser(r.Context(), r.Header.Get("X-User-ID"))
	if err != nil {
		response.WriteDomainError(w, err)
		return
	}
	if user == nil {
		response.WriteDomainError(w, domainErrors.ErrNotAuthenticated)
		return
	}

	o, err := h.orders.GetByID(r.Context(), orderID)
	if err != nil {
		response.WriteDomainError(w, err)
		return
	}

	// Buyers only see their own orders.
	if o.UserID != user.ID && !user.Admin {
		response.WriteDomainError(w, domainErrors.ErrOrderNotFound)
		return
	}

	response.WriteSuccess(w, o)
}
