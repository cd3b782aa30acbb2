package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rafabene/vendas-api/internal/domain/entities"
)

// CreateProductRequest representa a requisição para criar um produto.
// price aceita número ou string decimal ("9.90").
type CreateProductRequest struct {
	Name        string           `json:"name" binding:"required,notblank" example:"Pen"`
	Description string           `json:"description" binding:"required,notblank" example:"Blue"`
	Price       *decimal.Decimal `json:"price" binding:"required,gt=0" swaggertype:"number" example:"5"`
}

// UpdateProductRequest aplica somente os campos enviados
type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,notblank"`
	Description *string          `json:"description" binding:"omitempty,notblank"`
	Price       *decimal.Decimal `json:"price" binding:"omitempty,gt=0" swaggertype:"number"`
}

type ProductResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	IsDeleted   bool      `json:"isDeleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ToProductResponse(product *entities.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.InexactFloat64(),
		IsDeleted:   product.IsDeleted,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func ToProductResponses(products []*entities.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, product := range products {
		responses[i] = ToProductResponse(product)
	}
	return responses
}
