package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/makelifebetter/storefront-service/internal/domain/errors"
)

func validAddress() Address {
	return Address{
		Name:         "Maria Silva",
		Phone:        "11987654321",
		CEP:          "01310100",
		Street:       "Av. Paulista",
		Number:       "1000",
		Neighborhood: "Bela Vista",
		City:         "Sao Paulo",
		State:        "SP",
	}
}

func validCard() CardDetails {
	return CardDetails{
		Number: "4111111111111111",
		Holder: "MARIA SILVA",
		Expiry: "12/28",
		CVV:    "123",
	}
}

func TestNewSessionDefaults(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	s := NewSession(now)

	assert.Equal(t, StepAddress, s.Step)
	assert.Equal(t, ShippingNormal, s.Shipping.Type)
	assert.Equal(t, PaymentCredit, s.Payment.Method)
	assert.Equal(t, 1, s.Payment.Installments)
	assert.Equal(t, now, s.CreatedAt)
}

func TestSubmitAddressAdvancesToPayment(t *testing.T) {
	s := NewSession(time.Now())

	fieldErrors, err := s.SubmitAddress(validAddress())
	require.NoError(t, err)
	assert.Empty(t, fieldErrors)
	assert.Equal(t, StepPayment, s.Step)
	assert.Equal(t, "Av. Paulista", s.Address.Street)
}

func TestSubmitAddressIncompleteStaysAtAddress(t *testing.T) {
	s := NewSession(time.Now())

	addr := validAddress()
	addr.City = ""
	addr.CEP = ""

	fieldErrors, err := s.SubmitAddress(addr)
	assert.ErrorIs(t, err, domainErrors.ErrAddressIncomplete)
	assert.Len(t, fieldErrors, 2)
	assert.Contains(t, fieldErrors, "City")
	assert.Contains(t, fieldErrors, "CEP")
	assert.Equal(t, StepAddress, s.Step)
}

func TestSubmitAddressComplementIsOptional(t *testing.T) {
	s := NewSession(time.Now())

	addr := validAddress()
	addr.Complement = ""

	_, err := s.SubmitAddress(addr)
	assert.NoError(t, err)
}

func TestSubmitAddressRejectedOutsideAddressStep(t *testing.T) {
	s := NewSession(time.Now())
	_, err := s.SubmitAddress(validAddress())
	require.NoError(t, err)

	_, err = s.SubmitAddress(validAddress())
	assert.ErrorIs(t, err, domainErrors.ErrInvalidStepTransition)
}

func TestBackToAddress(t *testing.T) {
	s := NewSession(time.Now())

	assert.ErrorIs(t, s.BackToAddress(), domainErrors.ErrInvalidStepTransition)

	_, err := s.SubmitAddress(validAddress())
	require.NoError(t, err)

	require.NoError(t, s.BackToAddress())
	assert.Equal(t, StepAddress, s.Step)
	assert.Equal(t, "Av. Paulista", s.Address.Street, "address survives back navigation")
}

func TestSelectShipping(t *testing.T) {
	s := NewSession(time.Now())

	require.True(t, s.SelectShipping(ShippingExpress))
	assert.InDelta(t, 29.90, s.Shipping.Price, 0.001)
	assert.Equal(t, "2-3 dias", s.Shipping.EstimatedTime)

	assert.False(t, s.SelectShipping(ShippingType("teleporte")))
	assert.Equal(t, ShippingExpress, s.Shipping.Type, "unknown type leaves selection untouched")
}

func TestSelectPaymentInstallmentsCreditOnly(t *testing.T) {
	s := NewSession(time.Now())

	require.NoError(t, s.SelectPayment(PaymentCredit, 6, validCard()))
	assert.Equal(t, 6, s.Payment.Installments)

	require.NoError(t, s.SelectPayment(PaymentPix, 6, CardDetails{}))
	assert.Equal(t, 1, s.Payment.Installments)

	require.NoError(t, s.SelectPayment(PaymentCredit, 0, validCard()))
	assert.Equal(t, 1, s.Payment.Installments)
}

func TestSelectPaymentUnknownMethod(t *testing.T) {
	s := NewSession(time.Now())

	err := s.SelectPayment(PaymentMethod("cheque"), 1, CardDetails{})
	assert.ErrorIs(t, err, domainErrors.ErrUnknownPaymentMethod)
}

func TestValidatePayment(t *testing.T) {
	tests := []struct {
		name    string
		method  PaymentMethod
		card    CardDetails
		wantErr error
	}{
		{"credit with card", PaymentCredit, validCard(), nil},
		{"credit without card", PaymentCredit, CardDetails{}, domainErrors.ErrCardDetailsIncomplete},
		{"debit missing cvv", PaymentDebit, CardDetails{Number: "4111", Holder: "M", Expiry: "12/28"}, domainErrors.ErrCardDetailsIncomplete},
		{"pix without card", PaymentPix, CardDetails{}, nil},
		{"boleto without card", PaymentBoleto, CardDetails{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(time.Now())
			require.NoError(t, s.SelectPayment(tt.method, 1, tt.card))

			err := s.ValidatePayment()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBeginSubmissionGuards(t *testing.T) {
	s := NewSession(time.Now())

	assert.ErrorIs(t, s.BeginSubmission(), domainErrors.ErrInvalidStepTransition)

	_, err := s.SubmitAddress(validAddress())
	require.NoError(t, err)

	require.NoError(t, s.BeginSubmission())
	assert.ErrorIs(t, s.BeginSubmission(), domainErrors.ErrSubmissionInFlight)

	s.EndSubmission()
	assert.NoError(t, s.BeginSubmission())
}

func TestComplete(t *testing.T) {
	s := NewSession(time.Now())
	_, err := s.SubmitAddress(validAddress())
	require.NoError(t, err)

	s.Complete()
	assert.Equal(t, StepConfirmation, s.Step)
}

func TestDeliveryDate(t *testing.T) {
	from := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, from, DeliveryDate(ShippingSameDay, from))
	assert.Equal(t, from.AddDate(0, 0, 3), DeliveryDate(ShippingExpress, from))
	assert.Equal(t, from.AddDate(0, 0, 8), DeliveryDate(ShippingNormal, from))
	assert.Equal(t, from.AddDate(0, 0, 8), DeliveryDate(ShippingType("desconhecido"), from))
}

func TestShippingOptionsFixedSet(t *testing.T) {
	options := ShippingOptions()
	require.Len(t, options, 3)

	byType := make(map[ShippingType]ShippingOption, len(options))
	for _, o := range options {
		byType[o.Type] = o
	}

	assert.InDelta(t, 15.90, byType[ShippingNormal].Price, 0.001)
	assert.InDelta(t, 29.90, byType[ShippingExpress].Price, 0.001)
	assert.InDelta(t, 49.90, byType[ShippingSameDay].Price, 0.001)
	assert.Equal(t, "Hoje", byType[ShippingSameDay].EstimatedTime)
}

func TestAddressLine(t *testing.T) {
	line := validAddress().Line()
	assert.Equal(t, "Av. Paulista, 1000 - Bela Vista, Sao Paulo/SP", line)
}
