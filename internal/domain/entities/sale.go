package entities

import (
	"time"

	"github.com/shopspring/decimal"

	domainerrors "github.com/rafabene/vendas-api/internal/domain/errors"
)

// Sale registra a venda de um produto para um cliente.
// UnitPrice é uma cópia do preço do produto no momento da venda; alterações
// posteriores no produto não afetam vendas já registradas.
type Sale struct {
	ID         uint
	ClientID   uint
	ProductID  uint
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewSale monta uma venda congelando o preço atual do produto
func NewSale(client *Client, product *Product, quantity int) (*Sale, error) {
	if quantity <= 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}
	if !product.Price.IsPositive() {
		return nil, domainerrors.ErrInvalidPrice
	}

	unitPrice := product.Price
	return &Sale{
		ClientID:   client.ID,
		ProductID:  product.ID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}
