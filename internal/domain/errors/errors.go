package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções ficam em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound        = errors.New("error.user_not_found")
	ErrClientNotFound      = errors.New("error.client_not_found")
	ErrAddressNotFound     = errors.New("error.address_not_found")
	ErrPhoneNumberNotFound = errors.New("error.phone_number_not_found")
	ErrProductNotFound     = errors.New("error.product_not_found")
	ErrSaleNotFound        = errors.New("error.sale_not_found")
	ErrEmailAlreadyExists  = errors.New("error.email_already_exists")
	ErrSaleAlreadyExists   = errors.New("error.sale_already_exists")
	ErrInvalidCredentials  = errors.New("error.invalid_credentials")
	ErrUnauthorized        = errors.New("error.unauthorized")
	ErrInvalidToken        = errors.New("error.invalid_token")
)

// Domain errors
var (
	ErrInvalidEmail    = errors.New("error.invalid_email")
	ErrInvalidCPF      = errors.New("error.invalid_cpf")
	ErrInvalidPrice    = errors.New("error.invalid_price")
	ErrInvalidQuantity = errors.New("error.invalid_quantity")
	ErrInvalidPeriod   = errors.New("error.invalid_period")
	ErrPasswordTooLong = errors.New("error.password_too_long")

	ErrNameRequired         = errors.New("error.name_required")
	ErrDescriptionRequired  = errors.New("error.description_required")
	ErrUsernameRequired     = errors.New("error.username_required")
	ErrEmailRequired        = errors.New("error.email_required")
	ErrPasswordHashRequired = errors.New("error.password_hash_required")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base vem de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// IsNotFound indica se err é um dos erros de recurso inexistente
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrClientNotFound) ||
		errors.Is(err, ErrAddressNotFound) ||
		errors.Is(err, ErrPhoneNumberNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrSaleNotFound)
}

// IsInvalidInput indica se err é uma violação de regra de domínio (HTTP 400)
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrInvalidCPF) ||
		errors.Is(err, ErrInvalidPrice) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidPeriod) ||
		errors.Is(err, ErrPasswordTooLong) ||
		errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrDescriptionRequired) ||
		errors.Is(err, ErrUsernameRequired) ||
		errors.Is(err, ErrEmailRequired) ||
		errors.Is(err, ErrPasswordHashRequired)
}
