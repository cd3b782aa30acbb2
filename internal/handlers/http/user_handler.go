package http

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/vendas-api/internal/handlers/dto"
	"github.com/rafabene/vendas-api/internal/handlers/middleware"
	"github.com/rafabene/vendas-api/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
	errorResponder
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, responder errorResponder) *UserHandler {
	return &UserHandler{userService: userService, errorResponder: responder}
}

// ListUsers lista usuários
//
//	@Summary	Lista usuários
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.DataResponse{data=[]dto.UserResponse}
//	@Failure	401	{object}	dto.ErrorResponse
//	@Router		/user [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		h.respond(c, err)
		return
	}

	respondOK(c, "success.list", dto.ToUserResponses(users))
}

// GetUser busca um usuário por ID
//
//	@Summary	Busca um usuário
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"ID do usuário"
//	@Success	200	{object}	dto.DataResponse{data=dto.UserResponse}
//	@Failure	400	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/user/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		h.respond(c, err)
		return
	}

	respondOK(c, "success.show", dto.ToUserResponse(user))
}

// UpdateUser atualiza username, email e/ou senha (PATCH e PUT)
//
//	@Summary	Atualiza um usuário
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int						true	"ID do usuário"
//	@Param		request	body		dto.UpdateUserRequest	true	"Campos a alterar"
//	@Success	200		{object}	dto.DataResponse{data=dto.UserResponse}
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/user/{id} [patch]
//	@Router		/user/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, services.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respond(c, err)
		return
	}

	respondOK(c, "success.user.updated", dto.ToUserResponse(user))
}

// DeleteUser remove um usuário
//
//	@Summary	Remove um usuário
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"ID do usuário"
//	@Success	200	{object}	dto.MessageResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/user/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		h.respond(c, err)
		return
	}

	if current, exists := middleware.CurrentUser(c); exists && current.ID == id {
		// o token continua válido até expirar, mas passa a resolver para 404
		h.logger.Info("user deleted own account", "user_id", id)
	}

	respondMessage(c, "success.user.deleted")
}
