package postgres

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// ClientModel é o model GORM para clientes.
// Endereços, telefones e vendas são removidos junto com o cliente.
type ClientModel struct {
	ID           uint               `gorm:"primaryKey;autoIncrement"`
	Name         string             `gorm:"type:varchar(255);not null"`
	CPF          string             `gorm:"column:cpf;type:varchar(11);not null"`
	Addresses    []AddressModel     `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	PhoneNumbers []PhoneNumberModel `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	Sales        []SaleModel        `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time          `gorm:"autoCreateTime"`
	UpdatedAt    time.Time          `gorm:"autoUpdateTime"`
}

func (ClientModel) TableName() string {
	return "clients"
}

// AddressModel é o model GORM para endereços
type AddressModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	ClientID     uint      `gorm:"not null;index"`
	Street       string    `gorm:"type:varchar(255);not null"`
	Number       string    `gorm:"type:varchar(50);not null"`
	Complement   *string   `gorm:"type:varchar(255)"`
	Neighborhood string    `gorm:"type:varchar(255);not null"`
	City         string    `gorm:"type:varchar(255);not null"`
	State        string    `gorm:"type:varchar(255);not null"`
	PostalCode   string    `gorm:"column:postal_code;type:varchar(20);not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (AddressModel) TableName() string {
	return "addresses"
}

// PhoneNumberModel é o model GORM para telefones
type PhoneNumberModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	ClientID    uint      `gorm:"not null;index"`
	PhoneNumber string    `gorm:"column:phone_number;type:varchar(15);not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (PhoneNumberModel) TableName() string {
	return "phone_numbers"
}

// ProductModel é o model GORM para produtos
type ProductModel struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text;not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsDeleted   bool            `gorm:"not null;default:false;index"` // Soft delete
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime"`
}

func (ProductModel) TableName() string {
	return "products"
}

// SaleModel é o model GORM para vendas.
// O par (client_id, product_id) é único.
type SaleModel struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	ClientID   uint            `gorm:"not null;uniqueIndex:idx_sales_client_product"`
	ProductID  uint            `gorm:"not null;uniqueIndex:idx_sales_client_product;index"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt  time.Time       `gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime"`
}

func (SaleModel) TableName() string {
	return "sales"
}

// Models lista os models na ordem de migração
func Models() []any {
	return []any{
		&UserModel{},
		&ClientModel{},
		&AddressModel{},
		&PhoneNumberModel{},
		&ProductModel{},
		&SaleModel{},
	}
}
