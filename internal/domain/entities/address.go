package entities

import "time"

// Address é um endereço de um cliente
type Address struct {
	ID           uint
	ClientID     uint
	Street       string
	Number       string
	Complement   *string
	Neighborhood string
	City         string
	State        string
	PostalCode   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
