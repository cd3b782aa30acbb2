package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rafabene/vendas-api/internal/domain/ports"
	"github.com/rafabene/vendas-api/internal/infrastructure/persistence/postgres"
)

const healthTimeout = 2 * time.Second

// HealthHandler informa se a API e o banco estão respondendo
type HealthHandler struct {
	db     *gorm.DB
	env    string
	logger ports.Logger
}

func NewHealthHandler(db *gorm.DB, env string, logger ports.Logger) *HealthHandler {
	return &HealthHandler{db: db, env: env, logger: logger}
}

// Check responde 200 com o banco acessível e 503 caso contrário
//
//	@Summary	Health check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Failure	503	{object}	map[string]string
//	@Router		/health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := postgres.Ping(ctx, h.db); err != nil {
		h.logger.Error("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unavailable",
			"database": "down",
			"env":      h.env,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "up",
		"env":      h.env,
	})
}
