package services

import (
	"context"

	"github.com/rafabene/vendas-api/internal/domain/entities"
	"github.com/rafabene/vendas-api/internal/domain/errors"
	"github.com/rafabene/vendas-api/internal/domain/ports"
	"github.com/rafabene/vendas-api/internal/domain/repositories"
)

// PhoneNumberService gerencia telefones de clientes
type PhoneNumberService struct {
	clientRepo repositories.ClientRepository
	phoneRepo  repositories.PhoneNumberRepository
	logger     ports.Logger
}

func NewPhoneNumberService(
	clientRepo repositories.ClientRepository,
	phoneRepo repositories.PhoneNumberRepository,
	logger ports.Logger,
) *PhoneNumberService {
	return &PhoneNumberService{
		clientRepo: clientRepo,
		phoneRepo:  phoneRepo,
		logger:     logger.With("component", "phone_numbers"),
	}
}

func (s *PhoneNumberService) CreatePhoneNumber(ctx context.Context, clientID uint, number string) (*entities.PhoneNumber, error) {
	if err := s.ensureClient(ctx, clientID); err != nil {
		return nil, err
	}

	phone := &entities.PhoneNumber{ClientID: clientID, PhoneNumber: number}
	if err := s.phoneRepo.Create(ctx, phone); err != nil {
		return nil, err
	}

	s.logger.Info("phone number created", "client_id", clientID, "phone_number_id", phone.ID)
	return phone, nil
}

// UpdatePhoneNumber altera o número; nil mantém o atual
func (s *PhoneNumberService) UpdatePhoneNumber(ctx context.Context, clientID, phoneID uint, number *string) (*entities.PhoneNumber, error) {
	phone, err := s.findOwned(ctx, clientID, phoneID)
	if err != nil {
		return nil, err
	}

	if number != nil {
		phone.PhoneNumber = *number
	}

	if err := s.phoneRepo.Update(ctx, phone); err != nil {
		return nil, err
	}

	s.logger.Info("phone number updated", "client_id", clientID, "phone_number_id", phone.ID)
	return phone, nil
}

func (s *PhoneNumberService) DeletePhoneNumber(ctx context.Context, clientID, phoneID uint) error {
	if _, err := s.findOwned(ctx, clientID, phoneID); err != nil {
		return err
	}

	if err := s.phoneRepo.Delete(ctx, phoneID); err != nil {
		return err
	}

	s.logger.Info("phone number deleted", "client_id", clientID, "phone_number_id", phoneID)
	return nil
}

// findOwned só encontra telefones do cliente informado na rota
func (s *PhoneNumberService) findOwned(ctx context.Context, clientID, phoneID uint) (*entities.PhoneNumber, error) {
	if err := s.ensureClient(ctx, clientID); err != nil {
		return nil, err
	}

	phone, err := s.phoneRepo.FindByID(ctx, phoneID)
	if err != nil {
		return nil, err
	}
	if phone == nil || !phone.BelongsTo(clientID) {
		return nil, errors.ErrPhoneNumberNotFound
	}
	return phone, nil
}

func (s *PhoneNumberService) ensureClient(ctx context.Context, clientID uint) error {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return err
	}
	if client == nil {
		return errors.ErrClientNotFound
	}
	return nil
}
