package dto

import (
	"time"

	"github.com/rafabene/vendas-api/internal/domain/entities"
)

// CreateSaleRequest representa a requisição para registrar uma venda
type CreateSaleRequest struct {
	ClientID  uint `json:"clientId" binding:"required,gt=0" example:"1"`
	ProductID uint `json:"productId" binding:"required,gt=0" example:"1"`
	Quantity  int  `json:"quantity" binding:"required,gt=0" example:"3"`
}

type SaleResponse struct {
	ID         uint      `json:"id"`
	ClientID   uint      `json:"clientId"`
	ProductID  uint      `json:"productId"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unitPrice"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SaleReceiptResponse acompanha a venda com os nomes de cliente e produto
type SaleReceiptResponse struct {
	Sale        SaleResponse `json:"sale"`
	ClientName  string       `json:"clientName"`
	ProductName string       `json:"productName"`
}

func ToSaleResponse(sale *entities.Sale) SaleResponse {
	return SaleResponse{
		ID:         sale.ID,
		ClientID:   sale.ClientID,
		ProductID:  sale.ProductID,
		Quantity:   sale.Quantity,
		UnitPrice:  sale.UnitPrice.InexactFloat64(),
		TotalPrice: sale.TotalPrice.InexactFloat64(),
		CreatedAt:  sale.CreatedAt,
		UpdatedAt:  sale.UpdatedAt,
	}
}

func ToSaleResponses(sales []*entities.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i, sale := range sales {
		responses[i] = ToSaleResponse(sale)
	}
	return responses
}
