package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/vendas-api/internal/domain/ports"
	"github.com/rafabene/vendas-api/internal/handlers/dto"
)

// RequestLogger registra uma linha por requisição no logger da aplicação
func RequestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
			"request_id", c.GetString(dto.RequestIDContextKey),
		}

		switch {
		case status >= 500:
			logger.Error("request completed", args...)
		case status >= 400:
			logger.Warn("request completed", args...)
		default:
			logger.Info("request completed", args...)
		}
	}
}
