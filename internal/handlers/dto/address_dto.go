package dto

import (
	"time"

	"github.com/rafabene/vendas-api/internal/domain/entities"
)

// CreateAddressRequest representa a requisição para cadastrar um endereço
type CreateAddressRequest struct {
	Street       string  `json:"street" binding:"required,notblank" example:"Rua das Flores"`
	Number       string  `json:"number" binding:"required,notblank" example:"42"`
	Complement   *string `json:"complement" example:"Apto 101"`
	Neighborhood string  `json:"neighborhood" binding:"required,notblank" example:"Centro"`
	City         string  `json:"city" binding:"required,notblank" example:"Recife"`
	State        string  `json:"state" binding:"required,notblank" example:"PE"`
	PostalCode   string  `json:"postalCode" binding:"required,notblank" example:"50000000"`
}

type AddressResponse struct {
	ID           uint      `json:"id"`
	ClientID     uint      `json:"clientId"`
	Street       string    `json:"street"`
	Number       string    `json:"number"`
	Complement   *string   `json:"complement"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	PostalCode   string    `json:"postalCode"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func ToAddressResponse(address *entities.Address) AddressResponse {
	return AddressResponse{
		ID:           address.ID,
		ClientID:     address.ClientID,
		Street:       address.Street,
		Number:       address.Number,
		Complement:   address.Complement,
		Neighborhood: address.Neighborhood,
		City:         address.City,
		State:        address.State,
		PostalCode:   address.PostalCode,
		CreatedAt:    address.CreatedAt,
		UpdatedAt:    address.UpdatedAt,
	}
}
