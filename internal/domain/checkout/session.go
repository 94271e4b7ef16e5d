package checkout

import (
	"time"

	domainErrors "github.com/makelifebetter/storefront-service/internal/domain/errors"
)

type Step int

const (
	StepAddress Step = iota + 1
	StepPayment
	StepConfirmation
)

// Session is the transient state of one in-progress purchase flow. The step
// sequence is strictly linear: address (1) -> payment (2) -> confirmation (3),
// with backward navigation allowed from payment to address only.
type Session struct {
	Step      Step
	Address   Address
	Shipping  ShippingOption
	Payment   PaymentSelection
	CreatedAt time.Time

	submitting bool
}

// NewSession opens a checkout at the address step with the default shipping
// and payment selections.
func NewSession(now time.Time) *Session {
	return &Session{
		Step:     StepAddress,
		Shipping: DefaultShipping(),
		Payment: PaymentSelection{
			Method:       PaymentCredit,
			Installments: 1,
		},
		CreatedAt: now,
	}
}

// SubmitAddress validates the address form and, when complete, stores it and
// advances to the payment step. On validation failure the session stays at
// the address step and the per-field errors are returned.
func (s *Session) SubmitAddress(addr Address) (map[string]string, error) {
	if s.Step != StepAddress {
		return nil, domainErrors.ErrInvalidStepTransition
	}

	if fieldErrors := addr.Validate(); len(fieldErrors) > 0 {
		return fieldErrors, domainErrors.ErrAddressIncomplete
	}

	s.Address = addr
	s.Step = StepPayment
	return nil, nil
}

// BackToAddress returns from the payment step to the address step. Any other
// backward navigation is rejected.
func (s *Session) BackToAddress() error {
	if s.Step != StepPayment {
		return domainErrors.ErrInvalidStepTransition
	}
	s.Step = StepAddress
	return nil
}

// SelectShipping sets the shipping option by type. Unknown types are a no-op.
func (s *Session) SelectShipping(t ShippingType) bool {
	option, ok := ShippingOptionByType(t)
	if !ok {
		return false
	}
	s.Shipping = option
	return true
}

// SelectPayment sets the payment method and card details. Installments apply
// to credit only; other methods are forced to a single installment.
func (s *Session) SelectPayment(method PaymentMethod, installments int, card CardDetails) error {
	if !method.Valid() {
		return domainErrors.ErrUnknownPaymentMethod
	}

	if method != PaymentCredit || installments < 1 {
		installments = 1
	}

	s.Payment = PaymentSelection{
		Method:       method,
		Installments: installments,
		Card:         card,
	}
	return nil
}

// ValidatePayment is the submission precondition: card details must be
// complete for credit and debit.
func (s *Session) ValidatePayment() error {
	return s.Payment.Validate()
}

// BeginSubmission marks one order submission in flight; a second concurrent
// submission is rejected until EndSubmission runs.
func (s *Session) BeginSubmission() error {
	if s.Step != StepPayment {
		return domainErrors.ErrInvalidStepTransition
	}
	if s.submitting {
		return domainErrors.ErrSubmissionInFlight
	}
	s.submitting = true
	return nil
}

func (s *Session) EndSubmission() {
	s.submitting = false
}

// Complete advances to the confirmation step after a successful order.
func (s *Session) Complete() {
	s.Step = StepConfirmation
}

// DeliveryDate derives the estimated delivery from the shipping type: same
// day ships today, express in three days, normal (or anything unknown) in
// eight.
func DeliveryDate(t ShippingType, from time.Time) time.Time {
	days := 8
	switch t {
	case ShippingSameDay:
		days = 0
	case ShippingExpress:
		days = 3
	}
	return from.AddDate(0, 0, days)
}
