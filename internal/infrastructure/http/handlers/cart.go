package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/makelifebetter/storefront-service/internal/application/ports"
	"github.com/makelifebetter/storefront-service/internal/domain/cart"
	domainErrors "github.com/makelifebetter/storefront-service/internal/domain/errors"
	"github.com/makelifebetter/storefront-service/internal/infrastructure/http/response"
	"github.com/makelifebetter/storefront-service/internal/infrastructure/monitoring"
	"github.com/makelifebetter/storefront-service/internal/pkg/format"
	"github.com/makelifebetter/storefront-service/internal/pkg/logger"
)

type CartHandler struct {
	store    cart.Store
	products ports.ProductRepository
	log      *logger.Logger
}

func NewCartHandler(store cart.Store, products ports.ProductRepository, log *logger.Logger) *CartHandler {
	return &CartHandler{
		store:    store,
		products: products,
		log:      log,
	}
}

type CartView struct {
	Items             []cart.LineItem `json:"items"`
	Count             int             `json:"count"`
	Subtotal          float64         `json:"subtotal"`
	SubtotalFormatted string          `json:"subtotal_formatted"`
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type quantityRequest struct {
	// Exactly one of delta or quantity is expected; quantity wins when both
	// are present.
	Delta    *int `json:"delta,omitempty"`
	Quantity *int `json:"quantity,omitempty"`
}

func (h *CartHandler) HandleGetCart(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engine(w, r)
	if !ok {
		return
	}

	response.WriteSuccess(w, cartView(engine))
}

func (h *CartHandler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engine(w, r)
	if !ok {
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteValidationError(w, "Invalid request body", nil)
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	product, err := h.products.GetByID(r.Context(), req.ProductID)
	if err != nil {
		response.WriteDomainError(w, err)
		return
	}

	if !engine.AddItem(r.Context(), *product, req.Quantity) {
		response.WriteDomainError(w, domainErrors.ErrProductMissingID)
		return
	}

	monitoring.RecordCartMutation("add", engine.Count())
	response.WriteSuccess(w, cartView(engine))
}

func (h *CartHandler) HandleUpdateQuantity(w http.ResponseWriter, r *http.Request, index int) {
	engine, ok := h.engine(w, r)
	if !ok {
		return
	}

	var req quantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteValidationError(w, "Invalid request body", nil)
		return
	}

	var updated bool
	switch {
	case req.Quantity != nil:
		updated = engine.SetQuantity(r.Context(), index, *req.Quantity)
	case req.Delta != nil:
		updated = engine.UpdateQuantity(r.Context(), index, *req.Delta)
	default:
		response.WriteValidationError(w, "Missing delta or quantity", nil)
		return
	}

	if !updated {
		response.WriteDomainError(w, domainErrors.ErrCartIndexRange)
		return
	}

	monitoring.RecordCartMutation("update_quantity", engine.Count())
	response.WriteSuccess(w, cartView(engine))
}

func (h *CartHandler) HandleRemoveItem(w http.ResponseWriter, r *http.Request, index int) {
	engine, ok := h.engine(w, r)
	if !ok {
		return
	}

	removed := engine.RemoveItem(r.Context(), index)
	if removed == nil {
		response.WriteDomainError(w, domainErrors.ErrCartIndexRange)
		return
	}

	monitoring.RecordCartMutation("remove", engine.Count())
	response.WriteSuccess(w, struct {
		Removed *cart.LineItem `json:"removed"`
		Cart    CartView       `json:"cart"`
	}{Removed: removed, Cart: cartView(engine)})
}

func (h *CartHandler) HandleClearCart(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engine(w, r)
	if !ok {
		return
	}

	engine.Clear(r.Context())

	monitoring.RecordCartMutation("clear", 0)
	response.WriteSuccess(w, cartView(engine))
}

// engine loads the caller's cart. Carts exist before login, so the key falls
// back from the user ID to the anonymous session ID.
func (h *CartHandler) engine(w http.ResponseWriter, r *http.Request) (*cart.Engine, bool) {
	key := CartKey(r)
	if key == "" {
		response.WriteValidationError(w, "Missing X-User-ID or X-Session-ID header", nil)
		return nil, false
	}

	engine := cart.NewEngine(h.store, key, h.log)
	engine.Load(r.Context())
	return engine, true
}

func CartKey(r *http.Request) string {
	if id := r.Header.Get("X-User-ID"); id != "" {
		return id
	}
	return r.Header.Get("X-Session-ID")
}

func cartView(engine *cart.Engine) CartView {
	return CartView{
		Items:             engine.Items(),
		Count:             engine.Count(),
		Subtotal:          engine.Subtotal(),
		SubtotalFormatted: format.Currency(engine.Subtotal()),
	}
}
