package services

import (
	"context"

	"github.com/rafabene/vendas-api/internal/domain/entities"
	"github.com/rafabene/vendas-api/internal/domain/errors"
	"github.com/rafabene/vendas-api/internal/domain/ports"
	"github.com/rafabene/vendas-api/internal/domain/repositories"
)

// SaleService registra vendas congelando o preço do produto
type SaleService struct {
	clientRepo  repositories.ClientRepository
	productRepo repositories.ProductRepository
	saleRepo    repositories.SaleRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

func NewSaleService(
	clientRepo repositories.ClientRepository,
	productRepo repositories.ProductRepository,
	saleRepo repositories.SaleRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *SaleService {
	return &SaleService{
		clientRepo:  clientRepo,
		productRepo: productRepo,
		saleRepo:    saleRepo,
		uow:         uow,
		logger:      logger.With("component", "sales"),
	}
}

type CreateSaleInput struct {
	ClientID  uint
	ProductID uint
	Quantity  int
}

// SaleReceipt é a venda criada com os nomes para exibição
type SaleReceipt struct {
	Sale        *entities.Sale
	ClientName  string
	ProductName string
}

// CreateSale valida cliente e produto (404), congela o preço unitário e grava a venda.
// Produto com soft delete continua existindo e pode ser vendido.
// Cada cliente compra um produto uma única vez: repetição retorna ErrSaleAlreadyExists.
func (s *SaleService) CreateSale(ctx context.Context, input CreateSaleInput) (*SaleReceipt, error) {
	var receipt *SaleReceipt

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		client, err := s.clientRepo.FindByID(txCtx, input.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return errors.ErrClientNotFound
		}

		product, err := s.productRepo.FindByID(txCtx, input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return errors.ErrProductNotFound
		}

		existing, err := s.saleRepo.FindByClientAndProduct(txCtx, client.ID, product.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.ErrSaleAlreadyExists
		}

		sale, err := entities.NewSale(client, product, input.Quantity)
		if err != nil {
			return err
		}
		if err := s.saleRepo.Create(txCtx, sale); err != nil {
			return err
		}

		receipt = &SaleReceipt{Sale: sale, ClientName: client.Name, ProductName: product.Name}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("sale created",
		"sale_id", receipt.Sale.ID,
		"client_id", input.ClientID,
		"product_id", input.ProductID,
		"total_price", receipt.Sale.TotalPrice.String(),
	)
	return receipt, nil
}

// ListSales lista vendas por id
func (s *SaleService) ListSales(ctx context.Context) ([]*entities.Sale, error) {
	return s.saleRepo.List(ctx)
}

func (s *SaleService) GetSale(ctx context.Context, id uint) (*entities.Sale, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, errors.ErrSaleNotFound
	}
	return sale, nil
}
