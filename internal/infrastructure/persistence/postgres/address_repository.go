package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/rafabene/vendas-api/internal/domain/entities"
	"github.com/rafabene/vendas-api/internal/domain/repositories"
)

// AddressRepository implementa repositories.AddressRepository
type AddressRepository struct {
	db *gorm.DB
}

// NewAddressRepository cria um novo AddressRepository
func NewAddressRepository(db *gorm.DB) repositories.AddressRepository {
	return &AddressRepository{db: db}
}

func (r *AddressRepository) Create(ctx context.Context, address *entities.Address) error {
	model := toAddressModel(address)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}

	address.ID = model.ID
	address.CreatedAt = model.CreatedAt
	address.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *AddressRepository) DeleteByClient(ctx context.Context, clientID uint) error {
	if err := getDB(ctx, r.db).Where("client_id = ?", clientID).Delete(&AddressModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete client addresses: %w", err)
	}
	return nil
}

func toAddressModel(a *entities.Address) *AddressModel {
	return &AddressModel{
		ID:           a.ID,
		ClientID:     a.ClientID,
		Street:       a.Street,
		Number:       a.Number,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		PostalCode:   a.PostalCode,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func toAddressEntity(m *AddressModel) *entities.Address {
	return &entities.Address{
		ID:           m.ID,
		ClientID:     m.ClientID,
		Street:       m.Street,
		Number:       m.Number,
		Complement:   m.Complement,
		Neighborhood: m.Neighborhood,
		City:         m.City,
		State:        m.State,
		PostalCode:   m.PostalCode,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
