package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rafabene/vendas-api/internal/domain/entities"
	"github.com/rafabene/vendas-api/internal/domain/errors"
	"github.com/rafabene/vendas-api/internal/domain/ports"
	"github.com/rafabene/vendas-api/internal/domain/repositories"
)

// ProductService contém a lógica de negócio do catálogo.
// Produtos nunca são removidos fisicamente.
type ProductService struct {
	productRepo repositories.ProductRepository
	logger      ports.Logger
}

func NewProductService(productRepo repositories.ProductRepository, logger ports.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger.With("component", "products"),
	}
}

type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
}

// UpdateProductInput: campos nil não são alterados
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
}

func (s *ProductService) CreateProduct(ctx context.Context, input CreateProductInput) (*entities.Product, error) {
	product := &entities.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product created", "product_id", product.ID, "price", product.Price.String())
	return product, nil
}

// ListProducts lista apenas produtos não deletados, por nome
func (s *ProductService) ListProducts(ctx context.Context) ([]*entities.Product, error) {
	return s.productRepo.List(ctx)
}

// GetProduct também retorna produtos deletados
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*entities.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint, input UpdateProductInput) (*entities.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product updated", "product_id", product.ID)
	return product, nil
}

// DeleteProduct faz soft delete
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) (*entities.Product, error) {
	return s.setDeleted(ctx, id, true)
}

// RestoreProduct desfaz o soft delete
func (s *ProductService) RestoreProduct(ctx context.Context, id uint) (*entities.Product, error) {
	return s.setDeleted(ctx, id, false)
}

func (s *ProductService) setDeleted(ctx context.Context, id uint, deleted bool) (*entities.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if deleted {
		product.SoftDelete()
	} else {
		product.Restore()
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product deleted flag changed", "product_id", product.ID, "is_deleted", deleted)
	return product, nil
}
