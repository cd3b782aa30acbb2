package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	domainerrors "github.com/rafabene/vendas-api/internal/domain/errors"
	"github.com/rafabene/vendas-api/internal/domain/ports"
	"github.com/rafabene/vendas-api/internal/handlers/dto"
	"github.com/rafabene/vendas-api/internal/handlers/validation"
)

// errorResponder converte erros de serviço em respostas RFC 7807
type errorResponder struct {
	logger ports.Logger
}

func (r errorResponder) respond(c *gin.Context, err error) {
	switch {
	case domainerrors.IsNotFound(err):
		dto.AbortWithProblem(c, dto.NotFoundErrorResponseI18n(c, detailKey(err)))
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		// o login responde 404 para credenciais inválidas, sem distinguir email de senha
		dto.AbortWithProblem(c, dto.NotFoundErrorResponseI18n(c, detailKey(err)))
	case errors.Is(err, domainerrors.ErrSaleAlreadyExists):
		dto.AbortWithProblem(c, dto.ConflictErrorResponseI18n(c, detailKey(err)))
	case errors.Is(err, domainerrors.ErrEmailAlreadyExists), domainerrors.IsInvalidInput(err):
		dto.AbortWithProblem(c, dto.BadRequestErrorResponseI18n(c, detailKey(err)))
	case errors.Is(err, domainerrors.ErrUnauthorized), errors.Is(err, domainerrors.ErrInvalidToken):
		dto.AbortWithProblem(c, dto.UnauthorizedErrorResponseI18n(c, detailKey(err)))
	default:
		r.logger.Error("request failed",
			"error", err,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(dto.RequestIDContextKey),
		)
		dto.AbortWithProblem(c, dto.InternalErrorResponseI18n(c))
	}
}

// detailKey devolve a chave i18n do erro sentinela mais interno
func detailKey(err error) string {
	for {
		inner := errors.Unwrap(err)
		if inner == nil {
			return err.Error()
		}
		err = inner
	}
}

// bindJSON decodifica e valida o corpo. Corpo vazio vale como objeto vazio,
// então criações sem corpo listam todos os campos obrigatórios.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(req)
	}
	if err != nil {
		dto.AbortWithProblem(c, dto.ValidationErrorResponseI18n(c, validation.FieldErrors(err)))
		return false
	}
	return true
}

// pathID lê um parâmetro de rota que precisa ser um inteiro positivo
func pathID(c *gin.Context, name string) (uint, bool) {
	id, ok := validation.ParseID(c.Param(name))
	if !ok {
		dto.AbortWithProblem(c, dto.ValidationErrorResponseI18n(c, []validation.FieldError{
			{Field: name, Tag: validation.TagInvalidID},
		}))
		return 0, false
	}
	return id, true
}

func respondOK(c *gin.Context, messageKey string, data any) {
	c.JSON(http.StatusOK, dto.NewDataResponse(c, messageKey, data))
}

func respondCreated(c *gin.Context, messageKey string, data any) {
	c.JSON(http.StatusCreated, dto.NewDataResponse(c, messageKey, data))
}

func respondMessage(c *gin.Context, messageKey string) {
	c.JSON(http.StatusOK, dto.NewMessageResponse(c, messageKey))
}
