package dto

import (
	"time"

	"github.com/rafabene/vendas-api/internal/domain/entities"
)

// CreatePhoneNumberRequest aceita de 10 a 15 caracteres
type CreatePhoneNumberRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required,notblank,min=10,max=15" example:"81999990000"`
}

type UpdatePhoneNumberRequest struct {
	PhoneNumber *string `json:"phoneNumber" binding:"omitempty,notblank,min=10,max=15"`
}

type PhoneNumberResponse struct {
	ID          uint      `json:"id"`
	ClientID    uint      `json:"clientId"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ToPhoneNumberResponse(phone *entities.PhoneNumber) PhoneNumberResponse {
	return PhoneNumberResponse{
		ID:          phone.ID,
		ClientID:    phone.ClientID,
		PhoneNumber: phone.PhoneNumber,
		CreatedAt:   phone.CreatedAt,
		UpdatedAt:   phone.UpdatedAt,
	}
}
