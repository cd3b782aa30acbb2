package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainerrors "github.com/rafabene/vendas-api/internal/domain/errors"
)

// Product representa um produto do catálogo.
// Produtos nunca são removidos fisicamente: IsDeleted marca o soft delete.
type Product struct {
	ID          uint
	Name        string
	Description string
	Price       decimal.Decimal
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SoftDelete marca o produto como deletado
func (p *Product) SoftDelete() {
	p.IsDeleted = true
}

// Restore restaura um produto deletado
func (p *Product) Restore() {
	p.IsDeleted = false
}

// Validate valida regras de negócio da entidade Product
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return domainerrors.ErrNameRequired
	}
	if strings.TrimSpace(p.Description) == "" {
		return domainerrors.ErrDescriptionRequired
	}
	if !p.Price.IsPositive() {
		return domainerrors.ErrInvalidPrice
	}
	return nil
}
