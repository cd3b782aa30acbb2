package entities

import (
	"strings"
	"time"

	domainerrors "github.com/rafabene/vendas-api/internal/domain/errors"
	"github.com/rafabene/vendas-api/internal/domain/valueobjects"
)

// Client representa um cliente da loja.
// Addresses, PhoneNumbers e Sales só são preenchidos quando carregados explicitamente.
type Client struct {
	ID           uint
	Name         string
	CPF          valueobjects.CPF
	Addresses    []*Address
	PhoneNumbers []*PhoneNumber
	Sales        []*Sale
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate valida regras de negócio da entidade Client
func (c *Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return domainerrors.ErrNameRequired
	}
	if _, err := valueobjects.NewCPF(c.CPF.String()); err != nil {
		return err
	}
	return nil
}
