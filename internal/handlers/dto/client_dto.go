package dto

import (
	"time"

	"github.com/rafabene/vendas-api/internal/domain/entities"
)

// CreateClientRequest representa a requisição para cadastrar um cliente
type CreateClientRequest struct {
	Name string `json:"name" binding:"required,notblank" example:"Bob"`
	CPF  string `json:"cpf" binding:"required,notblank,len=11" example:"12345678901"`
}

// UpdateClientRequest aplica somente os campos enviados
type UpdateClientRequest struct {
	Name *string `json:"name" binding:"omitempty,notblank"`
	CPF  *string `json:"cpf" binding:"omitempty,notblank,len=11"`
}

// ClientResponse é o cliente sem relacionamentos
type ClientResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClientDetailResponse inclui endereços, telefones e vendas
type ClientDetailResponse struct {
	ClientResponse
	Addresses    []AddressResponse     `json:"addresses"`
	PhoneNumbers []PhoneNumberResponse `json:"phoneNumbers"`
	Sales        []SaleResponse        `json:"sales"`
}

func ToClientResponse(client *entities.Client) ClientResponse {
	return ClientResponse{
		ID:        client.ID,
		Name:      client.Name,
		CPF:       client.CPF.String(),
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}
}

func ToClientResponses(clients []*entities.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i, client := range clients {
		responses[i] = ToClientResponse(client)
	}
	return responses
}

func ToClientDetailResponse(client *entities.Client) ClientDetailResponse {
	response := ClientDetailResponse{
		ClientResponse: ToClientResponse(client),
		Addresses:      make([]AddressResponse, len(client.Addresses)),
		PhoneNumbers:   make([]PhoneNumberResponse, len(client.PhoneNumbers)),
		Sales:          make([]SaleResponse, len(client.Sales)),
	}
	for i, address := range client.Addresses {
		response.Addresses[i] = ToAddressResponse(address)
	}
	for i, phone := range client.PhoneNumbers {
		response.PhoneNumbers[i] = ToPhoneNumberResponse(phone)
	}
	for i, sale := range client.Sales {
		response.Sales[i] = ToSaleResponse(sale)
	}
	return response
}
