package repositories

import (
	"context"

	"github.com/rafabene/vendas-api/internal/domain/entities"
)

// AddressRepository define a interface para persistência de endereços
type AddressRepository interface {
	Create(ctx context.Context, address *entities.Address) error
	DeleteByClient(ctx context.Context, clientID uint) error
}
