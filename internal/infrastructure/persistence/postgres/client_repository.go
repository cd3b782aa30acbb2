package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rafabene/vendas-api/internal/domain/entities"
	"github.com/rafabene/vendas-api/internal/domain/repositories"
	"github.com/rafabene/vendas-api/internal/domain/valueobjects"
)

// ClientRepository implementa repositories.ClientRepository
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository cria um novo ClientRepository
func NewClientRepository(db *gorm.DB) repositories.ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, client *entities.Client) error {
	model := toClientModel(client)

	if err := getDB(ctx, r.db).Omit("Addresses", "PhoneNumbers", "Sales").Create(model).Error; err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	client.ID = model.ID
	client.CreatedAt = model.CreatedAt
	client.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id uint) (*entities.Client, error) {
	var model ClientModel

	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	return toClientEntity(&model)
}

// FindDetailed carrega o cliente com endereços, telefones e vendas (mais recentes primeiro)
func (r *ClientRepository) FindDetailed(ctx context.Context, id uint, period repositories.SalePeriod) (*entities.Client, error) {
	var model ClientModel

	err := getDB(ctx, r.db).
		Preload("Addresses", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("PhoneNumbers", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Sales", func(db *gorm.DB) *gorm.DB {
			if !period.IsZero() {
				db = db.Where("created_at >= ? AND created_at < ?", period.From, period.To)
			}
			return db.Order("created_at DESC").Order("id DESC")
		}).
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find client details: %w", err)
	}

	client, err := toClientEntity(&model)
	if err != nil {
		return nil, err
	}

	client.Addresses = make([]*entities.Address, 0, len(model.Addresses))
	for i := range model.Addresses {
		client.Addresses = append(client.Addresses, toAddressEntity(&model.Addresses[i]))
	}
	client.PhoneNumbers = make([]*entities.PhoneNumber, 0, len(model.PhoneNumbers))
	for i := range model.PhoneNumbers {
		client.PhoneNumbers = append(client.PhoneNumbers, toPhoneNumberEntity(&model.PhoneNumbers[i]))
	}
	client.Sales = make([]*entities.Sale, 0, len(model.Sales))
	for i := range model.Sales {
		client.Sales = append(client.Sales, toSaleEntity(&model.Sales[i]))
	}

	return client, nil
}

func (r *ClientRepository) Update(ctx context.Context, client *entities.Client) error {
	model := toClientModel(client)

	if err := getDB(ctx, r.db).Omit("Addresses", "PhoneNumbers", "Sales").Save(model).Error; err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	client.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id uint) error {
	if err := getDB(ctx, r.db).Delete(&ClientModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

func (r *ClientRepository) List(ctx context.Context) ([]*entities.Client, error) {
	var models []*ClientModel

	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	clients := make([]*entities.Client, 0, len(models))
	for _, model := range models {
		client, err := toClientEntity(model)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, nil
}

func toClientModel(client *entities.Client) *ClientModel {
	return &ClientModel{
		ID:        client.ID,
		Name:      client.Name,
		CPF:       client.CPF.String(),
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}
}

func toClientEntity(model *ClientModel) (*entities.Client, error) {
	cpf, err := valueobjects.NewCPF(model.CPF)
	if err != nil {
		return nil, fmt.Errorf("stored client %d: %w", model.ID, err)
	}

	return &entities.Client{
		ID:        model.ID,
		Name:      model.Name,
		CPF:       cpf,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}
