package entities

import (
	"errors"
	"testing"

	domainerrors "github.com/rafabene/vendas-api/internal/domain/errors"
	"github.com/rafabene/vendas-api/internal/domain/valueobjects"
)

func TestClient_Validate(t *testing.T) {
	cpf, err := valueobjects.NewCPF("12345678901")
	if err != nil {
		t.Fatalf("cpf de teste inválido: %v", err)
	}

	t.Run("cliente válido", func(t *testing.T) {
		c := Client{Name: "Bob", CPF: cpf}
		if err := c.Validate(); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
	})

	t.Run("nome em branco retorna ErrNameRequired", func(t *testing.T) {
		c := Client{Name: "   ", CPF: cpf}
		err := c.Validate()
		if !errors.Is(err, domainerrors.ErrNameRequired) {
			t.Errorf("esperava ErrNameRequired, obteve %v", err)
		}
		if !domainerrors.IsInvalidInput(err) {
			t.Errorf("esperava erro de entrada inválida, obteve %v", err)
		}
	})

	t.Run("cpf ausente retorna ErrInvalidCPF", func(t *testing.T) {
		c := Client{Name: "Bob"}
		if err := c.Validate(); !errors.Is(err, domainerrors.ErrInvalidCPF) {
			t.Errorf("esperava ErrInvalidCPF, obteve %v", err)
		}
	})
}
