package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rafabene/vendas-api/internal/domain/entities"
	"github.com/rafabene/vendas-api/internal/domain/repositories"
)

// PhoneNumberRepository implementa repositories.PhoneNumberRepository
type PhoneNumberRepository struct {
	db *gorm.DB
}

// NewPhoneNumberRepository cria um novo PhoneNumberRepository
func NewPhoneNumberRepository(db *gorm.DB) repositories.PhoneNumberRepository {
	return &PhoneNumberRepository{db: db}
}

func (r *PhoneNumberRepository) Create(ctx context.Context, phone *entities.PhoneNumber) error {
	model := toPhoneNumberModel(phone)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create phone number: %w", err)
	}

	phone.ID = model.ID
	phone.CreatedAt = model.CreatedAt
	phone.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *PhoneNumberRepository) FindByID(ctx context.Context, id uint) (*entities.PhoneNumber, error) {
	var model PhoneNumberModel

	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find phone number: %w", err)
	}

	return toPhoneNumberEntity(&model), nil
}

func (r *PhoneNumberRepository) Update(ctx context.Context, phone *entities.PhoneNumber) error {
	model := toPhoneNumberModel(phone)

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update phone number: %w", err)
	}

	phone.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *PhoneNumberRepository) Delete(ctx context.Context, id uint) error {
	if err := getDB(ctx, r.db).Delete(&PhoneNumberModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete phone number: %w", err)
	}
	return nil
}

func (r *PhoneNumberRepository) DeleteByClient(ctx context.Context, clientID uint) error {
	if err := getDB(ctx, r.db).Where("client_id = ?", clientID).Delete(&PhoneNumberModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete client phone numbers: %w", err)
	}
	return nil
}

func toPhoneNumberModel(p *entities.PhoneNumber) *PhoneNumberModel {
	return &PhoneNumberModel{
		ID:          p.ID,
		ClientID:    p.ClientID,
		PhoneNumber: p.PhoneNumber,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPhoneNumberEntity(m *PhoneNumberModel) *entities.PhoneNumber {
	return &entities.PhoneNumber{
		ID:          m.ID,
		ClientID:    m.ClientID,
		PhoneNumber: m.PhoneNumber,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
