package entities

import "time"

// Limites de tamanho do telefone (inclusivos)
const (
	PhoneNumberMinLength = 10
	PhoneNumberMaxLength = 15
)

// PhoneNumber é um telefone de um cliente
type PhoneNumber struct {
	ID          uint
	ClientID    uint
	PhoneNumber string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BelongsTo indica se o telefone pertence ao cliente
func (p *PhoneNumber) BelongsTo(clientID uint) bool {
	return p.ClientID == clientID
}
