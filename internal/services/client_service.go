package services

import (
	"context"
	"time"

	"github.com/rafabene/vendas-api/internal/domain/entities"
	"github.com/rafabene/vendas-api/internal/domain/errors"
	"github.com/rafabene/vendas-api/internal/domain/ports"
	"github.com/rafabene/vendas-api/internal/domain/repositories"
	"github.com/rafabene/vendas-api/internal/domain/valueobjects"
)

// ClientService contém a lógica de negócio para clientes
type ClientService struct {
	clientRepo  repositories.ClientRepository
	addressRepo repositories.AddressRepository
	phoneRepo   repositories.PhoneNumberRepository
	saleRepo    repositories.SaleRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewClientService cria um novo ClientService
func NewClientService(
	clientRepo repositories.ClientRepository,
	addressRepo repositories.AddressRepository,
	phoneRepo repositories.PhoneNumberRepository,
	saleRepo repositories.SaleRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *ClientService {
	return &ClientService{
		clientRepo:  clientRepo,
		addressRepo: addressRepo,
		phoneRepo:   phoneRepo,
		saleRepo:    saleRepo,
		uow:         uow,
		logger:      logger.With("component", "clients"),
	}
}

type CreateClientInput struct {
	Name string
	CPF  string
}

// UpdateClientInput: campos nil não são alterados
type UpdateClientInput struct {
	Name *string
	CPF  *string
}

// SalesFilter restringe as vendas do detalhe do cliente a um mês.
// Month e Year zerados não filtram.
type SalesFilter struct {
	Month int
	Year  int
}

func (f SalesFilter) period() (repositories.SalePeriod, error) {
	if f.Month == 0 && f.Year == 0 {
		return repositories.SalePeriod{}, nil
	}
	if f.Month < 1 || f.Month > 12 || f.Year < 1 || f.Year > 9999 {
		return repositories.SalePeriod{}, errors.ErrInvalidPeriod
	}
	return repositories.MonthPeriod(f.Year, time.Month(f.Month)), nil
}

func (s *ClientService) CreateClient(ctx context.Context, input CreateClientInput) (*entities.Client, error) {
	cpf, err := valueobjects.NewCPF(input.CPF)
	if err != nil {
		return nil, err
	}

	client := &entities.Client{Name: input.Name, CPF: cpf}
	if err := client.Validate(); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	s.logger.Info("client created", "client_id", client.ID)
	return client, nil
}

// ListClients lista clientes por id, sem relacionamentos
func (s *ClientService) ListClients(ctx context.Context) ([]*entities.Client, error) {
	return s.clientRepo.List(ctx)
}

// GetClient busca o cliente com endereços, telefones e vendas (mais recentes primeiro)
func (s *ClientService) GetClient(ctx context.Context, id uint, filter SalesFilter) (*entities.Client, error) {
	period, err := filter.period()
	if err != nil {
		return nil, err
	}

	client, err := s.clientRepo.FindDetailed(ctx, id, period)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errors.ErrClientNotFound
	}
	return client, nil
}

func (s *ClientService) UpdateClient(ctx context.Context, id uint, input UpdateClientInput) (*entities.Client, error) {
	client, err := s.findClient(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.CPF != nil {
		cpf, err := valueobjects.NewCPF(*input.CPF)
		if err != nil {
			return nil, err
		}
		client.CPF = cpf
	}

	if err := client.Validate(); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}

	s.logger.Info("client updated", "client_id", client.ID)
	return client, nil
}

// DeleteClient remove o cliente com endereços, telefones e vendas numa única transação
func (s *ClientService) DeleteClient(ctx context.Context, id uint) error {
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.findClient(txCtx, id); err != nil {
			return err
		}
		if err := s.addressRepo.DeleteByClient(txCtx, id); err != nil {
			return err
		}
		if err := s.phoneRepo.DeleteByClient(txCtx, id); err != nil {
			return err
		}
		if err := s.saleRepo.DeleteByClient(txCtx, id); err != nil {
			return err
		}
		return s.clientRepo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("client deleted", "client_id", id)
	return nil
}

func (s *ClientService) findClient(ctx context.Context, id uint) (*entities.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errors.ErrClientNotFound
	}
	return client, nil
}
