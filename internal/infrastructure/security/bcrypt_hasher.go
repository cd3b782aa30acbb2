package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	domainerrors "github.com/rafabene/vendas-api/internal/domain/errors"
	"github.com/rafabene/vendas-api/internal/domain/ports"
)

// DefaultBcryptCost é o custo usado para gerar hashes de senha
const DefaultBcryptCost = 10

// BcryptHasher implementa ports.PasswordHasher com bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher cria um hasher com o custo padrão
func NewBcryptHasher() ports.PasswordHasher {
	return &BcryptHasher{cost: DefaultBcryptCost}
}

// Hash gera o hash bcrypt (com salt) da senha.
// bcrypt só aceita até 72 bytes; acima disso retorna ErrPasswordTooLong.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domainerrors.ErrPasswordTooLong
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify confere a senha contra o hash
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
