package entities

import (
	"strings"
	"time"

	domainerrors "github.com/rafabene/vendas-api/internal/domain/errors"
	"github.com/rafabene/vendas-api/internal/domain/valueobjects"
)

// User representa um usuário com acesso à API
type User struct {
	ID           uint
	Username     string
	Email        valueobjects.Email
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.IsZero() {
		return domainerrors.ErrEmailRequired
	}

	if strings.TrimSpace(u.Username) == "" {
		return domainerrors.ErrUsernameRequired
	}

	if u.PasswordHash == "" {
		return domainerrors.ErrPasswordHashRequired
	}

	return nil
}
