package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makelifebetter/storefront-service/internal/application/sessions"
	"github.com/makelifebetter/storefront-service/internal/application/use_cases"
	"github.com/makelifebetter/storefront-service/internal/domain/cart"
	"github.com/makelifebetter/storefront-service/internal/domain/checkout"
	domainErrors "github.com/makelifebetter/storefront-service/internal/domain/errors"
	"github.com/makelifebetter/storefront-service/internal/domain/identity"
	"github.com/makelifebetter/storefront-service/internal/domain/order"
	"github.com/makelifebetter/storefront-service/internal/pkg/clock"
	"github.com/makelifebetter/storefront-service/internal/pkg/logger"
)

type fakeIdentityProvider struct {
	users map[string]*identity.User
}

func (f *fakeIdentityProvider) CurrentUser(_ context.Context, userID string) (*identity.User, error) {
	return f.users[userID], nil
}

type recordingOrderRepo struct {
	created []*order.Order
}

func (f *recordingOrderRepo) Create(_ context.Context, o *order.Order) error {
	f.created = append(f.created, o)
	return nil
}

func (f *recordingOrderRepo) GetByID(context.Context, string) (*order.Order, error) {
	return nil, domainErrors.ErrOrderNotFound
}

func (f *recordingOrderRepo) GetByUserID(context.Context, string) ([]order.Order, error) {
	return nil, nil
}

func (f *recordingOrderRepo) GetAll(context.Context) ([]order.Order, error) {
	return nil, nil
}

func (f *recordingOrderRepo) UpdateStatus(context.Context, string, order.Status) error {
	return nil
}

type checkoutFixture struct {
	handler *CheckoutHandler
	store   *fakeCartStore
	manager *sessions.Manager
	orders  *recordingOrderRepo
}

func newCheckoutFixture() *checkoutFixture {
	log := logger.NewLogger()
	clk := clock.NewMockClock(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))
	store := newFakeCartStore()
	store.carts["user-1"] = []cart.LineItem{
		{ProductID: "p1", Name: "Fone Bluetooth", UnitPrice: 50, PromotionalPrice: 40, Quantity: 2},
	}

	identityProvider := &fakeIdentityProvider{users: map[string]*identity.User{
		"user-1": {ID: "user-1", Email: "maria@example.com"},
	}}
	orders := &recordingOrderRepo{}
	manager := sessions.NewManager(clk, 30*time.Minute)
	placeOrder := use_cases.NewPlaceOrderUseCase(orders, identityProvider, clk, log)

	return &checkoutFixture{
		handler: NewCheckoutHandler(manager, store, identityProvider, placeOrder, log),
		store:   store,
		manager: manager,
		orders:  orders,
	}
}

func decodeCheckoutView(t *testing.T, rec *httptest.ResponseRecorder) CheckoutView {
	t.Helper()
	var view CheckoutView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	return view
}

func (f *checkoutFixture) submitAddress(t *testing.T) {
	t.Helper()
	rec := httptest.NewRecorder()
	f.handler.HandleSubmitAddress(rec, jsonRequest(http.MethodPost, "/checkout/address", map[string]string{
		"name":         "Maria Silva",
		"phone":        "11987654321",
		"cep":          "01310100",
		"street":       "Av. Paulista",
		"number":       "1000",
		"neighborhood": "Bela Vista",
		"city":         "Sao Paulo",
		"state":        "SP",
	}))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleOpen(t *testing.T) {
	f := newCheckoutFixture()

	rec := httptest.NewRecorder()
	f.handler.HandleOpen(rec, jsonRequest(http.MethodPost, "/checkout", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeCheckoutView(t, rec)
	assert.Equal(t, checkout.StepAddress, view.Step)
	assert.Equal(t, checkout.ShippingNormal, view.Shipping.Type)
	assert.InDelta(t, 80.0, view.Summary.Subtotal, 0.001)
	assert.InDelta(t, 95.90, view.Summary.Total, 0.001)
	assert.Len(t, view.Options, 3)
	assert.Equal(t, 1, f.manager.Len())
}

func TestHandleOpenUnauthenticated(t *testing.T) {
	f := newCheckoutFixture()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	f.handler.HandleOpen(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, f.manager.Len())
}

func TestHandleOpenEmptyCart(t *testing.T) {
	f := newCheckoutFixture()
	f.store.carts["user-1"] = nil

	rec := httptest.NewRecorder()
	f.handler.HandleOpen(rec, jsonRequest(http.MethodPost, "/checkout", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, f.manager.Len())
}

func TestHandleGetWithoutOpenCheckout(t *testing.T) {
	f := newCheckoutFixture()

	rec := httptest.NewRecorder()
	f.handler.HandleGet(rec, jsonRequest(http.MethodGet, "/checkout", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleSubmitAddressAdvancesStep(t *testing.T) {
	f := newCheckoutFixture()
	f.manager.Open("user-1")

	f.submitAddress(t)

	session, ok := f.manager.Get("user-1")
	require.True(t, ok)
	assert.Equal(t, checkout.StepPayment, session.Step)
}

func TestHandleSubmitAddressValidationErrors(t *testing.T) {
	f := newCheckoutFixture()
	f.manager.Open("user-1")

	rec := httptest.NewRecorder()
	f.handler.HandleSubmitAddress(rec, jsonRequest(http.MethodPost, "/checkout/address", map[string]string{
		"name": "Maria Silva",
	}))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Preencha todos os campos do endereco", body.Message)
	assert.Contains(t, body.Errors, "Street")
	assert.NotContains(t, body.Errors, "Name")
}

func TestHandleBack(t *testing.T) {
	f := newCheckoutFixture()
	f.manager.Open("user-1")
	f.submitAddress(t)

	rec := httptest.NewRecorder()
	f.handler.HandleBack(rec, jsonRequest(http.MethodPost, "/checkout/back", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, checkout.StepAddress, decodeCheckoutView(t, rec).Step)
}

func TestHandleSelectShippingRecomputesSummary(t *testing.T) {
	f := newCheckoutFixture()
	f.manager.Open("user-1")

	rec := httptest.NewRecorder()
	f.handler.HandleSelectShipping(rec, jsonRequest(http.MethodPost, "/checkout/shipping", map[string]string{"type": "express"}))

	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeCheckoutView(t, rec)
	assert.Equal(t, checkout.ShippingExpress, view.Shipping.Type)
	assert.InDelta(t, 109.90, view.Summary.Total, 0.001)
}

func TestHandleSelectShippingUnknownType(t *testing.T) {
	f := newCheckoutFixture()
	f.manager.Open("user-1")

	rec := httptest.NewRecorder()
	f.handler.HandleSelectShipping(rec, jsonRequest(http.MethodPost, "/checkout/shipping", map[string]string{"type": "drone"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSelectPayment(t *testing.T) {
	f := newCheckoutFixture()
	f.manager.Open("user-1")

	rec := httptest.NewRecorder()
	f.handler.HandleSelectPayment(rec, jsonRequest(http.MethodPost, "/checkout/payment", map[string]interface{}{
		"method":       "pix",
		"installments": 4,
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeCheckoutView(t, rec)
	assert.Equal(t, checkout.PaymentPix, view.Payment.Method)
	assert.Equal(t, 1, view.Payment.Installments, "installments apply to credit only")
}

func TestHandleSubmit(t *testing.T) {
	f := newCheckoutFixture()
	f.manager.Open("user-1")
	f.submitAddress(t)

	rec := httptest.NewRecorder()
	f.handler.HandleSelectPayment(rec, jsonRequest(http.MethodPost, "/checkout/payment", map[string]interface{}{
		"method": "boleto",
	}))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	f.handler.HandleSubmit(rec, jsonRequest(http.MethodPost, "/checkout/submit", nil))

	require.Equal(t, http.StatusCreated, rec.Code)

	var confirmation use_cases.Confirmation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&confirmation))
	assert.NotEmpty(t, confirmation.OrderID)
	assert.Equal(t, "Boleto Bancario", confirmation.PaymentMethod)
	assert.Equal(t, "R$ 95,90", confirmation.TotalFormatted)

	require.Len(t, f.orders.created, 1)
	assert.Empty(t, f.store.carts["user-1"], "cart is cleared after submission")
}

func TestHandleSubmitAtAddressStep(t *testing.T) {
	f := newCheckoutFixture()
	f.manager.Open("user-1")

	rec := httptest.NewRecorder()
	f.handler.HandleSelectPayment(rec, jsonRequest(http.MethodPost, "/checkout/payment", map[string]interface{}{
		"method": "pix",
	}))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	f.handler.HandleSubmit(rec, jsonRequest(http.MethodPost, "/checkout/submit", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Empty(t, f.orders.created)
}

func TestHandleSubmitIncompleteCard(t *testing.T) {
	f := newCheckoutFixture()
	f.manager.Open("user-1")
	f.submitAddress(t)

	rec := httptest.NewRecorder()
	f.handler.HandleSubmit(rec, jsonRequest(http.MethodPost, "/checkout/submit", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code, "default credit selection has no card details")
	assert.Empty(t, f.orders.created)
}

func TestHandleClose(t *testing.T) {
	f := newCheckoutFixture()
	f.manager.Open("user-1")

	rec := httptest.NewRecorder()
	f.handler.HandleClose(rec, jsonRequest(http.MethodDelete, "/checkout", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, f.manager.Len())
}
