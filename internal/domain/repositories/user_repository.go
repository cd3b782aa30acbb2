package repositories

import (
	"context"

	"github.com/rafabene/vendas-api/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários.
// Os métodos Find* retornam (nil, nil) quando o registro não existe.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*entities.User, error)
}
