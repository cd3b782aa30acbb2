package repositories

import (
	"context"

	"github.com/rafabene/vendas-api/internal/domain/entities"
)

// SaleRepository define a interface para persistência de vendas
type SaleRepository interface {
	Create(ctx context.Context, sale *entities.Sale) error
	FindByID(ctx context.Context, id uint) (*entities.Sale, error)
	FindByClientAndProduct(ctx context.Context, clientID, productID uint) (*entities.Sale, error)
	List(ctx context.Context) ([]*entities.Sale, error)
	DeleteByClient(ctx context.Context, clientID uint) error
}
