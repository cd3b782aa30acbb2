package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/vendas-api/internal/handlers/dto"
	"github.com/rafabene/vendas-api/internal/services"
)

// AuthHandler expõe cadastro e login
type AuthHandler struct {
	authService *services.AuthService
	errorResponder
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService, responder errorResponder) *AuthHandler {
	return &AuthHandler{authService: authService, errorResponder: responder}
}

// Register cadastra um novo usuário
//
//	@Summary	Cadastra um usuário
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.RegisterRequest	true	"Dados do usuário"
//	@Success	201		{object}	dto.DataResponse{data=dto.UserResponse}
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respond(c, err)
		return
	}

	respondCreated(c, "success.user.created", dto.ToUserResponse(user))
}

// Login autentica e devolve um token Bearer com validade de 24h
//
//	@Summary	Login
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.LoginRequest	true	"Credenciais"
//	@Success	200		{object}	dto.LoginResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		User:  dto.ToUserResponse(user),
		Token: token,
	})
}
