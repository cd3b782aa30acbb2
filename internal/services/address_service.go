package services

import (
	"context"

	"github.com/rafabene/vendas-api/internal/domain/entities"
	"github.com/rafabene/vendas-api/internal/domain/errors"
	"github.com/rafabene/vendas-api/internal/domain/ports"
	"github.com/rafabene/vendas-api/internal/domain/repositories"
)

// AddressService cadastra endereços de clientes
type AddressService struct {
	clientRepo  repositories.ClientRepository
	addressRepo repositories.AddressRepository
	logger      ports.Logger
}

func NewAddressService(
	clientRepo repositories.ClientRepository,
	addressRepo repositories.AddressRepository,
	logger ports.Logger,
) *AddressService {
	return &AddressService{
		clientRepo:  clientRepo,
		addressRepo: addressRepo,
		logger:      logger.With("component", "address"),
	}
}

type CreateAddressInput struct {
	Street       string
	Number       string
	Complement   *string
	Neighborhood string
	City         string
	State        string
	PostalCode   string
}

// CreateAddress exige que o cliente exista
func (s *AddressService) CreateAddress(ctx context.Context, clientID uint, input CreateAddressInput) (*entities.Address, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errors.ErrClientNotFound
	}

	address := &entities.Address{
		ClientID:     client.ID,
		Street:       input.Street,
		Number:       input.Number,
		Complement:   input.Complement,
		Neighborhood: input.Neighborhood,
		City:         input.City,
		State:        input.State,
		PostalCode:   input.PostalCode,
	}
	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, err
	}

	s.logger.Info("address created", "client_id", clientID, "address_id", address.ID)
	return address, nil
}
