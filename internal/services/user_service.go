package services

import (
	"context"
	"fmt"

	"github.com/rafabene/vendas-api/internal/domain/entities"
	"github.com/rafabene/vendas-api/internal/domain/errors"
	"github.com/rafabene/vendas-api/internal/domain/ports"
	"github.com/rafabene/vendas-api/internal/domain/repositories"
	"github.com/rafabene/vendas-api/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	hasher   ports.PasswordHasher
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger.With("component", "users"),
	}
}

// UpdateUserInput representa os dados para atualizar um usuário.
// Campos nil não são alterados.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id uint) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers lista usuários por id
func (s *UserService) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return s.userRepo.List(ctx)
}

// UpdateUser aplica os campos informados; a senha é sempre gravada em hash
func (s *UserService) UpdateUser(ctx context.Context, id uint, input UpdateUserInput) (*entities.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		user.Username = *input.Username
	}

	if input.Email != nil {
		email, err := valueobjects.NewEmail(*input.Email)
		if err != nil {
			return nil, err
		}

		existing, err := s.userRepo.FindByEmail(ctx, email.String())
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, errors.ErrEmailAlreadyExists
		}
		user.Email = email
	}

	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", "user_id", user.ID)
	return user, nil
}

// DeleteUser remove o usuário definitivamente
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("user deleted", "user_id", id)
	return nil
}
