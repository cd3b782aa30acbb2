package repositories

import (
	"context"

	"github.com/rafabene/vendas-api/internal/domain/entities"
)

// ProductRepository define a interface para persistência de produtos.
// FindByID também retorna produtos com soft delete; List os ignora.
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	FindByID(ctx context.Context, id uint) (*entities.Product, error)
	Update(ctx context.Context, product *entities.Product) error
	List(ctx context.Context) ([]*entities.Product, error)
}
