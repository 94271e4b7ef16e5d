package checkout

import (
	domainErrors "github.com/makelifebetter/storefront-service/internal/domain/errors"
)

type PaymentMethod string

const (
	PaymentCredit PaymentMethod = "credit"
	PaymentDebit  PaymentMethod = "debit"
	PaymentPix    PaymentMethod = "pix"
	PaymentBoleto PaymentMethod = "boleto"
)

var paymentMethodLabels = map[PaymentMethod]string{
	PaymentCredit: "Cartao de Credito",
	PaymentDebit:  "Cartao de Debito",
	PaymentPix:    "PIX",
	PaymentBoleto: "Boleto Bancario",
}

func (m PaymentMethod) Valid() bool {
	_, ok := paymentMethodLabels[m]
	return ok
}

func (m PaymentMethod) Label() string {
	return paymentMethodLabels[m]
}

// RequiresCard reports whether the method needs card details captured.
func (m PaymentMethod) RequiresCard() bool {
	return m == PaymentCredit || m == PaymentDebit
}

type CardDetails struct {
	Number string `json:"number"`
	Holder string `json:"holder"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

func (c CardDetails) Complete() bool {
	return c.Number != "" && c.Holder != "" && c.Expiry != "" && c.CVV != ""
}

type PaymentSelection struct {
	Method       PaymentMethod `json:"method"`
	Installments int           `json:"installments"`
	Card         CardDetails   `json:"-"`
}

// Validate enforces card detail capture for credit and debit; pix and boleto
// carry no details and always pass.
func (p PaymentSelection) Validate() error {
	if !p.Method.Valid() {
		return domainErrors.ErrUnknownPaymentMethod
	}
	if p.Method.RequiresCard() && !p.Card.Complete() {
		return domainErrors.ErrCardDetailsIncomplete
	}
	return nil
}
