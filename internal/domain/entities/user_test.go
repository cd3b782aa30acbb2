package entities

import (
	"errors"
	"testing"

	domainerrors "github.com/rafabene/vendas-api/internal/domain/errors"
	"github.com/rafabene/vendas-api/internal/domain/valueobjects"
)

func TestUser_Validate(t *testing.T) {
	email, err := valueobjects.NewEmail("alice@x.com")
	if err != nil {
		t.Fatalf("email de teste inválido: %v", err)
	}

	tests := []struct {
		name    string
		user    User
		wantErr error
	}{
		{"usuário válido", User{Username: "alice", Email: email, PasswordHash: "hash"}, nil},
		{"sem email", User{Username: "alice", PasswordHash: "hash"}, domainerrors.ErrEmailRequired},
		{"username em branco", User{Username: "  ", Email: email, PasswordHash: "hash"}, domainerrors.ErrUsernameRequired},
		{"sem hash de senha", User{Username: "alice", Email: email}, domainerrors.ErrPasswordHashRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("esperava sucesso, obteve erro: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("esperava %v, obteve %v", tt.wantErr, err)
			}
			if !domainerrors.IsInvalidInput(err) {
				t.Errorf("esperava erro de entrada inválida, obteve %v", err)
			}
		})
	}
}
