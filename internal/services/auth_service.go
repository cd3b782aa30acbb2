package services

import (
	"context"
	"fmt"

	"github.com/rafabene/vendas-api/internal/domain/entities"
	domainerrors "github.com/rafabene/vendas-api/internal/domain/errors"
	"github.com/rafabene/vendas-api/internal/domain/ports"
	"github.com/rafabene/vendas-api/internal/domain/repositories"
	"github.com/rafabene/vendas-api/internal/domain/valueobjects"
)

// AuthService cuida de cadastro, login e resolução de tokens
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenService
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger.With("component", "auth"),
	}
}

// RegisterInput representa os dados para cadastrar um usuário
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register cria um usuário com a senha em hash. Email duplicado retorna ErrEmailAlreadyExists.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Info("registering user", "email", email.String())

	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.ErrEmailAlreadyExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		Username:     input.Username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login confere as credenciais e emite um token.
// Email inexistente e senha errada produzem o mesmo ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entities.User, string, error) {
	normalized, err := valueobjects.NewEmail(email)
	if err != nil {
		return nil, "", domainerrors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, normalized.String())
	if err != nil {
		return nil, "", err
	}
	if user == nil || !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Warn("login failed", "email", normalized.String())
		return nil, "", domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

// Authenticate resolve um token Bearer para o usuário dono dele.
// Token inválido retorna ErrInvalidToken; usuário removido retorna ErrUserNotFound.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	userID, err := s.tokens.Parse(token)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}
	return user, nil
}
