package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rafabene/vendas-api/internal/domain/entities"
	"github.com/rafabene/vendas-api/internal/domain/repositories"
)

// ProductRepository implementa repositories.ProductRepository
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository cria um novo ProductRepository
func NewProductRepository(db *gorm.DB) repositories.ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	model := toProductModel(product)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	product.ID = model.ID
	product.CreatedAt = model.CreatedAt
	product.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID busca o produto mesmo que esteja com soft delete (necessário para restore)
func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*entities.Product, error) {
	var model ProductModel

	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return toProductEntity(&model), nil
}

func (r *ProductRepository) Update(ctx context.Context, product *entities.Product) error {
	model := toProductModel(product)

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	product.UpdatedAt = model.UpdatedAt
	return nil
}

// List retorna os produtos ativos ordenados por nome
func (r *ProductRepository) List(ctx context.Context) ([]*entities.Product, error) {
	var models []*ProductModel

	err := getDB(ctx, r.db).
		Where("is_deleted = ?", false).
		Order("name ASC").
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]*entities.Product, 0, len(models))
	for _, model := range models {
		products = append(products, toProductEntity(model))
	}
	return products, nil
}

func toProductModel(p *entities.Product) *ProductModel {
	return &ProductModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		IsDeleted:   p.IsDeleted,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductEntity(m *ProductModel) *entities.Product {
	return &entities.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		IsDeleted:   m.IsDeleted,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
