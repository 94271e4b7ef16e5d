package errors

import (
	"errors"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrProductMissingID = errors.New("product has no identifier")

	ErrCartEmpty        = errors.New("cart is empty")
	ErrCartIndexRange   = errors.New("cart index out of range")
	ErrInvalidQuantity  = errors.New("quantity must be greater than zero")

	ErrCheckoutNotOpen       = errors.New("no checkout session in progress")
	ErrInvalidStepTransition = errors.New("invalid checkout step transition")
	ErrAddressIncomplete     = errors.New("address form has missing required fields")
	ErrCardDetailsIncomplete = errors.New("card details are incomplete")
	ErrUnknownShippingOption = errors.New("unknown shipping option")
	ErrUnknownPaymentMethod  = errors.New("unknown payment method")
	ErrSubmissionInFlight    = errors.New("order submission already in progress")

	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderCreateFailed  = errors.New("failed to create order")
	ErrInvalidOrderStatus = errors.New("invalid order status")

	ErrNotAuthenticated = errors.New("user is not authenticated")
	ErrUserNotFound     = errors.New("user not found")
)
