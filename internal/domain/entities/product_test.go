package entities

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerrors "github.com/rafabene/vendas-api/internal/domain/errors"
)

func TestProduct_SoftDeleteAndRestore(t *testing.T) {
	p := &Product{Name: "Pen", Description: "Blue", Price: decimal.NewFromInt(5)}

	p.SoftDelete()
	if !p.IsDeleted {
		t.Fatal("esperava produto marcado como deletado")
	}

	p.Restore()
	if p.IsDeleted {
		t.Fatal("esperava produto restaurado")
	}
}

func TestProduct_Validate(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		wantErr bool
	}{
		{"produto válido", Product{Name: "Pen", Description: "Blue", Price: decimal.NewFromInt(5)}, false},
		{"nome em branco", Product{Name: "  ", Description: "Blue", Price: decimal.NewFromInt(5)}, true},
		{"descrição vazia", Product{Name: "Pen", Price: decimal.NewFromInt(5)}, true},
		{"preço zero", Product{Name: "Pen", Description: "Blue"}, true},
		{"preço negativo", Product{Name: "Pen", Description: "Blue", Price: decimal.NewFromInt(-1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() erro = %v, esperava erro = %v", err, tt.wantErr)
			}
		})
	}

	t.Run("nome e descrição ausentes retornam erros de domínio", func(t *testing.T) {
		noName := Product{Description: "Blue", Price: decimal.NewFromInt(5)}
		if err := noName.Validate(); !errors.Is(err, domainerrors.ErrNameRequired) {
			t.Errorf("esperava ErrNameRequired, obteve %v", err)
		}
		noDescription := Product{Name: "Pen", Price: decimal.NewFromInt(5)}
		if err := noDescription.Validate(); !errors.Is(err, domainerrors.ErrDescriptionRequired) {
			t.Errorf("esperava ErrDescriptionRequired, obteve %v", err)
		}
	})

	t.Run("preço inválido retorna ErrInvalidPrice", func(t *testing.T) {
		p := Product{Name: "Pen", Description: "Blue", Price: decimal.NewFromInt(-3)}
		if err := p.Validate(); !errors.Is(err, domainerrors.ErrInvalidPrice) {
			t.Errorf("esperava ErrInvalidPrice, obteve %v", err)
		}
	})
}
