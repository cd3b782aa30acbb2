package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rafabene/vendas-api/internal/domain/entities"
	domainerrors "github.com/rafabene/vendas-api/internal/domain/errors"
	"github.com/rafabene/vendas-api/internal/domain/repositories"
)

// SaleRepository implementa repositories.SaleRepository
type SaleRepository struct {
	db *gorm.DB
}

// NewSaleRepository cria um novo SaleRepository
func NewSaleRepository(db *gorm.DB) repositories.SaleRepository {
	return &SaleRepository{db: db}
}

func (r *SaleRepository) Create(ctx context.Context, sale *entities.Sale) error {
	model := toSaleModel(sale)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrSaleAlreadyExists
		}
		return fmt.Errorf("failed to create sale: %w", err)
	}

	sale.ID = model.ID
	sale.CreatedAt = model.CreatedAt
	sale.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *SaleRepository) FindByID(ctx context.Context, id uint) (*entities.Sale, error) {
	var model SaleModel

	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find sale: %w", err)
	}

	return toSaleEntity(&model), nil
}

func (r *SaleRepository) FindByClientAndProduct(ctx context.Context, clientID, productID uint) (*entities.Sale, error) {
	var model SaleModel

	err := getDB(ctx, r.db).
		Where("client_id = ? AND product_id = ?", clientID, productID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find sale: %w", err)
	}

	return toSaleEntity(&model), nil
}

func (r *SaleRepository) List(ctx context.Context) ([]*entities.Sale, error) {
	var models []*SaleModel

	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	sales := make([]*entities.Sale, 0, len(models))
	for _, model := range models {
		sales = append(sales, toSaleEntity(model))
	}
	return sales, nil
}

func (r *SaleRepository) DeleteByClient(ctx context.Context, clientID uint) error {
	if err := getDB(ctx, r.db).Where("client_id = ?", clientID).Delete(&SaleModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete client sales: %w", err)
	}
	return nil
}

func toSaleModel(s *entities.Sale) *SaleModel {
	return &SaleModel{
		ID:         s.ID,
		ClientID:   s.ClientID,
		ProductID:  s.ProductID,
		Quantity:   s.Quantity,
		UnitPrice:  s.UnitPrice,
		TotalPrice: s.TotalPrice,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func toSaleEntity(m *SaleModel) *entities.Sale {
	return &entities.Sale{
		ID:         m.ID,
		ClientID:   m.ClientID,
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
		UnitPrice:  m.UnitPrice,
		TotalPrice: m.TotalPrice,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
