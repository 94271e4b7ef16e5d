package response

import (
	"errors"
	"net/http"

	domainErrors "github.com/makelifebetter/storefront-service/internal/domain/errors"
)

type ErrorMapping struct {
	HTTPStatus int
	Status     Status
	Message    string
}

// User-facing messages stay in PT-BR, matching the storefront copy.
var errorMappings = map[error]ErrorMapping{
	domainErrors.ErrProductNotFound: {
		HTTPStatus: http.StatusNotFound,
		Status:     StatusNotFound,
		Message:    "Produto nao encontrado",
	},
	domainErrors.ErrProductMissingID: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusError,
		Message:    "Produto nao encontrado",
	},
	domainErrors.ErrCartEmpty: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusError,
		Message:    "Seu carrinho esta vazio",
	},
	domainErrors.ErrCartIndexRange: {
		HTTPStatus: http.StatusNotFound,
		Status:     StatusNotFound,
		Message:    "Item nao encontrado no carrinho",
	},
	domainErrors.ErrInvalidQuantity: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusError,
		Message:    "Quantidade invalida",
	},
	domainErrors.ErrCheckoutNotOpen: {
		HTTPStatus: http.StatusConflict,
		Status:     StatusConflict,
		Message:    "Nenhum checkout em andamento",
	},
	domainErrors.ErrInvalidStepTransition: {
		HTTPStatus: http.StatusConflict,
		Status:     StatusConflict,
		Message:    "Transicao de etapa invalida",
	},
	domainErrors.ErrAddressIncomplete: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusValidationError,
		Message:    "Preencha todos os campos do endereco",
	},
	domainErrors.ErrCardDetailsIncomplete: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusValidationError,
		Message:    "Preencha todos os dados do cartao",
	},
	domainErrors.ErrUnknownShippingOption: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusError,
		Message:    "Opcao de frete invalida",
	},
	domainErrors.ErrUnknownPaymentMethod: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusError,
		Message:    "Forma de pagamento invalida",
	},
	domainErrors.ErrSubmissionInFlight: {
		HTTPStatus: http.StatusConflict,
		Status:     StatusConflict,
		Message:    "Pedido ja esta sendo processado",
	},
	domainErrors.ErrOrderNotFound: {
		HTTPStatus: http.StatusNotFound,
		Status:     StatusNotFound,
		Message:    "Pedido nao encontrado",
	},
	domainErrors.ErrOrderCreateFailed: {
		HTTPStatus: http.StatusBadGateway,
		Status:     StatusError,
		Message:    "Erro ao criar pedido. Tente novamente.",
	},
	domainErrors.ErrInvalidOrderStatus: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusError,
		Message:    "Status de pedido invalido",
	},
	domainErrors.ErrNotAuthenticated: {
		HTTPStatus: http.StatusUnauthorized,
		Status:     StatusUnauthorized,
		Message:    "Faca login para finalizar a compra",
	},
	domainErrors.ErrUserNotFound: {
		HTTPStatus: http.StatusNotFound,
		Status:     StatusNotFound,
		Message:    "Usuario nao encontrado",
	},
}

func MapDomainError(err error) (int, *ErrorResponse) {
	for domainErr, mapping := range errorMappings {
		if errors.Is(err, domainErr) {
			return mapping.HTTPStatus, Error(mapping.Status, mapping.Message)
		}
	}

	return http.StatusInternalServerError, Error(StatusInternalError, "Erro ao processar. Tente novamente.")
}

func WriteDomainError(w http.ResponseWriter, err error) {
	statusCode, errorResponse := MapDomainError(err)
	WriteJSON(w, statusCode, errorResponse)
}
