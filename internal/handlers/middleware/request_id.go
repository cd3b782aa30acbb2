package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafabene/vendas-api/internal/handlers/dto"
)

// RequestIDHeader é o header de correlação aceito e devolvido pela API
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 64

// RequestID reaproveita o X-Request-ID do cliente ou gera um UUID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Set(dto.RequestIDContextKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
