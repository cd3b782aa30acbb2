package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	domainerrors "github.com/rafabene/vendas-api/internal/domain/errors"
	"github.com/rafabene/vendas-api/internal/handlers/validation"
)

// BaseURLContextKey guarda a URL base usada no campo type dos problemas
const BaseURLContextKey = "base_url"

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	*problems.Problem
	RequestID string            `json:"requestId,omitempty"`
	Errors    []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// MessageResponse é a resposta de operações sem corpo (ex.: delete)
type MessageResponse struct {
	Message string `json:"message"`
}

// DataResponse envelopa o recurso retornado por store/update/show/index
type DataResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// NewDataResponse traduz a mensagem e envelopa os dados
func NewDataResponse(c *gin.Context, messageKey string, data any) DataResponse {
	return DataResponse{Message: T(c, messageKey), Data: data}
}

// NewMessageResponse traduz a mensagem de sucesso
func NewMessageResponse(c *gin.Context, messageKey string) MessageResponse {
	return MessageResponse{Message: T(c, messageKey)}
}

// NewErrorResponseI18n cria uma resposta de erro usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString(BaseURLContextKey)
	if baseURL == "" {
		baseURL = "http://localhost:3333"
	}

	problem := problems.NewDetailedProblem(status, T(c, detailKey, params...))
	problem.Type = baseURL + problemType
	problem.Title = T(c, titleKey)
	problem.Instance = c.Request.URL.Path

	return ErrorResponse{
		Problem:   problem,
		RequestID: c.GetString(RequestIDContextKey),
	}
}

// ValidationErrorResponseI18n cria uma resposta de erro de validação com todos os campos inválidos
func ValidationErrorResponseI18n(c *gin.Context, fieldErrors []validation.FieldError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		http.StatusBadRequest,
	)

	response.Errors = make([]ValidationError, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		response.Errors = append(response.Errors, ValidationError{
			Field:   fe.Field,
			Message: T(c, fe.MessageKey(), map[string]interface{}{"Field": fe.Field, "Param": fe.Param}),
			Tag:     fe.Tag,
		})
	}
	return response
}

// BadRequestErrorResponseI18n cria uma resposta de erro 400 de regra de negócio
func BadRequestErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeBadRequest,
		"error.bad_request.title",
		detailKey,
		http.StatusBadRequest,
	)
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
func NotFoundErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeNotFound,
		"error.not_found.title",
		detailKey,
		http.StatusNotFound,
	)
}

// ConflictErrorResponseI18n cria uma resposta de erro 409
func ConflictErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeConflict,
		"error.conflict.title",
		detailKey,
		http.StatusConflict,
	)
}

// UnauthorizedErrorResponseI18n cria uma resposta de erro 401
func UnauthorizedErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeUnauthorized,
		"error.unauthorized.title",
		detailKey,
		http.StatusUnauthorized,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500 sem detalhes internos
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		http.StatusInternalServerError,
	)
}

// AbortWithProblem encerra a cadeia com o corpo application/problem+json
func AbortWithProblem(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(response.Status, response)
}
