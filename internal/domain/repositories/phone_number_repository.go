package repositories

import (
	"context"

	"github.com/rafabene/vendas-api/internal/domain/entities"
)

// PhoneNumberRepository define a interface para persistência de telefones
type PhoneNumberRepository interface {
	Create(ctx context.Context, phone *entities.PhoneNumber) error
	FindByID(ctx context.Context, id uint) (*entities.PhoneNumber, error)
	Update(ctx context.Context, phone *entities.PhoneNumber) error
	Delete(ctx context.Context, id uint) error
	DeleteByClient(ctx context.Context, clientID uint) error
}
