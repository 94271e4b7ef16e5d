package checkout

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Address struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	CEP          string `json:"cep" validate:"required"`
	Street       string `json:"street" validate:"required"`
	Number       string `json:"number" validate:"required"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
}

// Validate checks the required fields and returns per-field messages.
func (a Address) Validate() map[string]string {
	err := validate.Struct(a)
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors["address"] = err.Error()
		return fieldErrors
	}

	for _, fe := range validationErrors {
		fieldErrors[fe.Field()] = fmt.Sprintf("%s is required", fe.Field())
	}
	return fieldErrors
}

// Line formats the address the way the confirmation screen shows it.
func (a Address) Line() string {
	return fmt.Sprintf("%s, %s - %s, %s/%s", a.Street, a.Number, a.Neighborhood, a.City, a.State)
}
