package repositories

import (
	"context"
	"time"

	"github.com/rafabene/vendas-api/internal/domain/entities"
)

// ClientRepository define a interface para persistência de clientes
type ClientRepository interface {
	Create(ctx context.Context, client *entities.Client) error
	FindByID(ctx context.Context, id uint) (*entities.Client, error)
	// FindDetailed carrega o cliente com endereços, telefones e vendas
	FindDetailed(ctx context.Context, id uint, sales SalePeriod) (*entities.Client, error)
	Update(ctx context.Context, client *entities.Client) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*entities.Client, error)
}

// SalePeriod restringe as vendas carregadas ao intervalo [From, To).
// O valor zero não aplica filtro.
type SalePeriod struct {
	From time.Time
	To   time.Time
}

// IsZero indica se o período não filtra nada
func (p SalePeriod) IsZero() bool {
	return p.From.IsZero() && p.To.IsZero()
}

// MonthPeriod retorna o período do mês/ano informado em UTC
func MonthPeriod(year int, month time.Month) SalePeriod {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return SalePeriod{From: from, To: from.AddDate(0, 1, 0)}
}
