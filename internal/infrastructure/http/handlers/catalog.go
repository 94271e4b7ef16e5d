package handlers

import (
	"net/http"

	"github.com/makelifebetter/storefront-service/internal/application/ports"
	"github.com/makelifebetter/storefront-service/internal/domain/catalog"
	"github.com/makelifebetter/storefront-service/internal/infrastructure/http/response"
	"github.com/makelifebetter/storefront-service/internal/pkg/logger"
)

type CatalogHandler struct {
	products ports.ProductRepository
	log      *logger.Logger
}

func NewCatalogHandler(products ports.ProductRepository, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		products: products,
		log:      log,
	}
}

type CatalogView struct {
	Products   []catalog.Product `json:"products"`
	Categories []string          `json:"categories"`
}

func (h *CatalogHandler) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	products, err := h.products.List(r.Context(), activeOnly)
	if err != nil {
		h.log.Error("Failed to list products", "error", err)
		response.WriteDomainError(w, err)
		return
	}

	// Categories always reflect the full listing, not the filtered one.
	categories := catalog.Categories(products)

	if category := r.URL.Query().Get("category"); category != "" {
		filtered := make([]catalog.Product, 0, len(products))
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	response.WriteSuccess(w, CatalogView{
		Products:   products,
		Categories: categories,
	})
}

func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request, productID string) {
	product, err := h.products.GetByID(r.Context(), productID)
	if err != nil {
		response.WriteDomainError(w, err)
		return
	}

	response.WriteSuccess(w, product)
}
