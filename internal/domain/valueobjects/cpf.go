package valueobjects

import (
	"strings"
	"unicode/utf8"

	domainerrors "github.com/rafabene/vendas-api/internal/domain/errors"
)

// CPFLength é o tamanho exato de um CPF sem máscara
const CPFLength = 11

// CPF é o documento do cliente. Só o formato é garantido: 11 caracteres, não vazio.
type CPF struct {
	value string
}

// NewCPF valida o tamanho do CPF. O valor é armazenado exatamente como recebido.
func NewCPF(cpf string) (CPF, error) {
	if utf8.RuneCountInString(cpf) != CPFLength || strings.TrimSpace(cpf) == "" {
		return CPF{}, domainerrors.ErrInvalidCPF
	}
	return CPF{value: cpf}, nil
}

// String retorna o CPF
func (c CPF) String() string {
	return c.value
}
