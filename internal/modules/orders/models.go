package orders

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

type Order struct {
	ID     string `gorm:"primaryKey;size:36"`
	Status string `gorm:"size:16;index;default:pending"`

	Email string `gorm:"size:255;index"`
	Name  string `gorm:"size:255"`

	AddressLine string `gorm:"size:512"`
	City        string `gorm:"size:128"`
	PostalCode  string `gorm:"size:16"`
	Destination string `gorm:"size:64"` // destination code fed to the rate table

	Currency      string `gorm:"size:3"`
	SubtotalCents int    `gorm:"not null"`
	ShippingCents int    `gorm:"not null"`
	TotalCents    int    `gorm:"not null"`

	ShippingLevel string `gorm:"size:32"`
	ShippingETA   string `gorm:"size:64"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Order) TableName() string { return "orders" }

// OrderItem rows are frozen copies of the cart snapshot at checkout.
type OrderItem struct {
	ID      string `gorm:"primaryKey;size:36"`
	OrderID string `gorm:"size:36;index"`

	ProductID string `gorm:"size:36"`
	VariantID string `gorm:"size:36"`

	Name        string         `gorm:"size:255"`
	Slug        string         `gorm:"size:191"`
	ImageURL    string         `gorm:"size:512"`
	OptionsJSON datatypes.JSON `gorm:"column:options_json"`

	UnitPriceCents int `gorm:"not null"`
	Quantity       int `gorm:"not null"`
	LineTotalCents int `gorm:"not null"`

	CreatedAt time.Time
}

func (OrderItem) TableName() string { return "order_items" }
