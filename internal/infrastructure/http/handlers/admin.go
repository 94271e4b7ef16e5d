package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/makelifebetter/storefront-service/internal/application/ports"
	"github.com/makelifebetter/storefront-service/internal/domain/catalog"
	domainErrors "github.com/makelifebetter/storefront-service/internal/domain/errors"
	"github.com/makelifebetter/storefront-service/internal/domain/order"
	"github.com/makelifebetter/storefront-service/internal/infrastructure/http/response"
	"github.com/makelifebetter/storefront-service/internal/pkg/clock"
	"github.com/makelifebetter/storefront-service/internal/pkg/logger"
)

type AdminHandler struct {
	products ports.ProductRepository
	orders   ports.OrderRepository
	identity ports.IdentityProvider
	clock    clock.Clock
	log      *logger.Logger
}

func NewAdminHandler(
	products ports.ProductRepository,
	orders ports.OrderRepository,
	identityProvider ports.IdentityProvider,
	clk clock.Clock,
	log *logger.Logger,
) *AdminHandler {
	return &AdminHandler{
		products: products,
		orders:   orders,
		identity: identityProvider,
		clock:    clk,
		log:      log,
	}
}

type productRequest struct {
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Price            float64 `json:"price"`
	PromotionalPrice float64 `json:"promotional_price"`
	ImageURL         string  `json:"image_url"`
	Category         string  `json:"category"`
	Active           *bool   `json:"active"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *AdminHandler) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteValidationError(w, "Invalid request body", nil)
		return
	}
	if req.Name == "" || req.Price <= 0 {
		response.WriteValidationError(w, "Validation failed", map[string]string{
			"name":  "name is required",
			"price": "price must be greater than zero",
		})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	product := &catalog.Product{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		PromotionalPrice: req.PromotionalPrice,
		ImageURL:         req.ImageURL,
		Category:         req.Category,
		Active:           active,
		CreatedAt:        h.clock.Now(),
	}

	if err := h.products.Create(r.Context(), product); err != nil {
		h.log.Error("Failed to create product", "error", err)
		response.WriteDomainError(w, err)
		return
	}

	response.WriteCreated(w, product)
}

func (h *AdminHandler) HandleUpdateProduct(w http.ResponseWriter, r *http.Request, productID string) {
	if !h.requireAdmin(w, r) {
		return
	}

	product, err := h.products.GetByID(r.Context(), productID)
	if err != nil {
		response.WriteDomainError(w, err)
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteValidationError(w, "Invalid request body", nil)
		return
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Price > 0 {
		product.Price = req.Price
	}
	product.PromotionalPrice = req.PromotionalPrice
	if req.ImageURL != "" {
		product.ImageURL = req.ImageURL
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := h.products.Update(r.Context(), product); err != nil {
		h.log.Error("Failed to update product", "product_id", productID, "error", err)
		response.WriteDomainError(w, err)
		return
	}

	response.WriteSuccess(w, product)
}

func (h *AdminHandler) HandleSetProductActive(w http.ResponseWriter, r *http.Request, productID string) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteValidationError(w, "Invalid request body", nil)
		return
	}

	if err := h.products.SetActive(r.Context(), productID, req.Active); err != nil {
		response.WriteDomainError(w, err)
		return
	}

	response.WriteSuccess(w, map[string]interface{}{
		"id":     productID,
		"active": req.Active,
	})
}

func (h *AdminHandler) HandleDeleteProduct(w http.ResponseWriter, r *http.Request, productID string) {
	if !h.requireAdmin(w, r) {
		return
	}

	if err := h.products.Delete(r.Context(), productID); err != nil {
		response.WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) HandleListAllOrders(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	orders, err := h.orders.GetAll(r.Context())
	if err != nil {
		h.log.Error("Failed to list orders", "error", err)
		response.WriteDomainError(w, err)
		return
	}

	response.WriteSuccess(w, orders)
}

func (h *AdminHandler) HandleUpdateOrderStatus(w http.ResponseWriter, r *http.Request, orderID string) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteValidationError(w, "Invalid request body", nil)
		return
	}

	status := order.Status(req.Status)
	if !status.Valid() {
		response.WriteDomainError(w, domainErrors.ErrInvalidOrderStatus)
		return
	}

	if err := h.orders.UpdateStatus(r.Context(), orderID, status); err != nil {
		response.WriteDomainError(w, err)
		return
	}

	response.WriteSuccess(w, map[string]string{
		"id":     orderID,
		"status": string(status),
		"label":  status.Label(),
	})
}

func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	user, err := h.identity.CurrentUser(r.Context(), r.Header.Get("X-User-ID"))
	if err != nil {
		response.WriteDomainError(w, err)
		return false
	}
	if user == nil {
		response.WriteDomainError(w, domainErrors.ErrNotAuthenticated)
		return false
	}
	if !user.Admin {
		response.WriteError(w, http.StatusForbidden, response.StatusForbidden, "Acesso restrito")
		return false
	}
	return true
}
