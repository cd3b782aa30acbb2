package dto

import (
	"time"

	"github.com/rafabene/vendas-api/internal/domain/entities"
)

// RegisterRequest representa a requisição de cadastro
type RegisterRequest struct {
	Username string `json:"username" binding:"required,notblank" example:"alice"`
	Email    string `json:"email" binding:"required,email" example:"alice@x.com"`
	Password string `json:"password" binding:"required,max=72" example:"pw123"`
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"alice@x.com"`
	Password string `json:"password" binding:"required" example:"pw123"`
}

// LoginResponse devolve o usuário autenticado e o token Bearer
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// UpdateUserRequest representa a requisição para atualizar um usuário.
// Campos ausentes não são alterados.
type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,notblank"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,notblank,max=72"`
}

// UserResponse representa a resposta de um usuário (nunca inclui a senha)
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email.String(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
