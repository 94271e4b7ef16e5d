package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makelifebetter/storefront-service/internal/domain/catalog"
	"github.com/makelifebetter/storefront-service/internal/pkg/logger"
)

func testCatalogHandler() *CatalogHandler {
	repo := &fakeProductRepo{products: map[string]catalog.Product{
		"p1": {ID: "p1", Name: "Fone Bluetooth", Price: 50, Category: "eletronicos", Active: true},
		"p2": {ID: "p2", Name: "Mouse Gamer", Price: 30, Category: "eletronicos", Active: true},
		"p3": {ID: "p3", Name: "Camiseta", Price: 20, Category: "roupas", Active: false},
	}}
	return NewCatalogHandler(repo, logger.NewLogger())
}

func decodeCatalogView(t *testing.T, rec *httptest.ResponseRecorder) CatalogView {
	t.Helper()
	var view CatalogView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	return view
}

func TestHandleListProducts(t *testing.T) {
	handler := testCatalogHandler()

	rec := httptest.NewRecorder()
	handler.HandleListProducts(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeCatalogView(t, rec)
	assert.Len(t, view.Products, 3)
	assert.ElementsMatch(t, []string{"eletronicos", "roupas"}, view.Categories)
}

func TestHandleListProductsActiveOnly(t *testing.T) {
	handler := testCatalogHandler()

	rec := httptest.NewRecorder()
	handler.HandleListProducts(rec, httptest.NewRequest(http.MethodGet, "/products?active=true", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeCatalogView(t, rec)
	assert.Len(t, view.Products, 2)
	for _, p := range view.Products {
		assert.True(t, p.Active)
	}
}

func TestHandleListProductsByCategory(t *testing.T) {
	handler := testCatalogHandler()

	rec := httptest.NewRecorder()
	handler.HandleListProducts(rec, httptest.NewRequest(http.MethodGet, "/products?category=roupas", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeCatalogView(t, rec)
	require.Len(t, view.Products, 1)
	assert.Equal(t, "p3", view.Products[0].ID)
	assert.ElementsMatch(t, []string{"eletronicos", "roupas"}, view.Categories, "categories cover the full listing")
}

func TestHandleGetProduct(t *testing.T) {
	handler := testCatalogHandler()

	rec := httptest.NewRecorder()
	handler.HandleGetProduct(rec, httptest.NewRequest(http.MethodGet, "/products/p1", nil), "p1")

	require.Equal(t, http.StatusOK, rec.Code)

	var product catalog.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&product))
	assert.Equal(t, "Fone Bluetooth", product.Name)
}

func TestHandleGetProductNotFound(t *testing.T) {
	handler := testCatalogHandler()

	rec := httptest.NewRecorder()
	handler.HandleGetProduct(rec, httptest.NewRequest(http.MethodGet, "/products/nope", nil), "nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
