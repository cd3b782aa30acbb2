package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/vendas-api/internal/domain/entities"
	domainerrors "github.com/rafabene/vendas-api/internal/domain/errors"
	"github.com/rafabene/vendas-api/internal/domain/ports"
	"github.com/rafabene/vendas-api/internal/handlers/dto"
)

// UserContextKey guarda o *entities.User autenticado no contexto do Gin
const UserContextKey = "user"

// Authenticator resolve um token Bearer para o usuário dono dele
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.User, error)
}

// AuthMiddleware protege rotas exigindo um token Bearer válido
type AuthMiddleware struct {
	auth   Authenticator
	logger ports.Logger
}

// NewAuthMiddleware cria um novo middleware de autenticação
func NewAuthMiddleware(auth Authenticator, logger ports.Logger) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, logger: logger}
}

// RequireAuth aceita apenas "Authorization: Bearer <token>".
// Qualquer outro formato, token inválido ou expirado retorna 401;
// token válido de usuário removido retorna 404.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			dto.AbortWithProblem(c, dto.UnauthorizedErrorResponseI18n(c, domainerrors.ErrUnauthorized.Error()))
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			dto.AbortWithProblem(c, dto.UnauthorizedErrorResponseI18n(c, domainerrors.ErrInvalidToken.Error()))
			return
		}

		user, err := m.auth.Authenticate(c.Request.Context(), parts[1])
		switch {
		case err == nil:
		case errors.Is(err, domainerrors.ErrInvalidToken):
			dto.AbortWithProblem(c, dto.UnauthorizedErrorResponseI18n(c, domainerrors.ErrInvalidToken.Error()))
			return
		case errors.Is(err, domainerrors.ErrUserNotFound):
			dto.AbortWithProblem(c, dto.NotFoundErrorResponseI18n(c, domainerrors.ErrUserNotFound.Error()))
			return
		default:
			m.logger.Error("failed to authenticate request",
				"error", err,
				"request_id", c.GetString(dto.RequestIDContextKey),
			)
			dto.AbortWithProblem(c, dto.InternalErrorResponseI18n(c))
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

// CurrentUser retorna o usuário autenticado pela RequireAuth
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	value, exists := c.Get(UserContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*entities.User)
	return user, ok
}
