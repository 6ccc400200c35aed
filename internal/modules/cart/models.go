package cart

import (
	"time"

	"gorm.io/datatypes"
)

type Cart struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Status    string    `gorm:"size:16;index;default:open"` // open | ordered
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []CartItem `gorm:"foreignKey:CartID"`
}

func (Cart) TableName() string { return "carts" }

// CartItem rows denormalize the snapshot so the cart survives catalog
// edits; Position preserves insertion order across reloads.
type CartItem struct {
	ID        string `gorm:"primaryKey;size:36"`
	CartID    string `gorm:"size:36;index:idx_cart_variant,unique"`
	ProductID string `gorm:"size:36;index:idx_cart_variant,unique"`
	VariantID string `gorm:"size:36;index:idx_cart_variant,unique"`
	Quantity  int    `gorm:"not null"`
	Position  int    `gorm:"not null"`

	NameSnapshot string         `gorm:"size:255"`
	SlugSnapshot string         `gorm:"size:191"`
	PriceCents   int            `gorm:"not null"`
	Currency     string         `gorm:"size:3"`
	ImageURL     string         `gorm:"size:512"`
	OptionsJSON  datatypes.JSON `gorm:"column:options_json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CartItem) TableName() string { return "cart_items" }
