package catalog

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StatusActive   = "active"
	StatusDraft    = "draft"
	StatusArchived = "archived"
)

type Product struct {
	ID           string  `gorm:"primaryKey;size:36" json:"id"`
	CollectionID *string `gorm:"size:36;index" json:"collection_id,omitempty"`
	Slug         string  `gorm:"size:191;uniqueIndex" json:"slug"`
	Name         string  `gorm:"size:255" json:"name"`
	Description  string  `gorm:"type:text" json:"description"`
	Status       string  `gorm:"size:16;index;default:draft" json:"status"`
	Featured     bool    `gorm:"index" json:"featured"`

	// Ordered option definitions ([{name, values, swatches}]), see OptionDefs.
	OptionsJSON datatypes.JSON `gorm:"column:options_json" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Variants []Variant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
	Images   []Image   `gorm:"foreignKey:ProductID" json:"images,omitempty"`
}

func (Product) TableName() string { return "products" }

type Variant struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	ProductID string `gorm:"size:36;index" json:"product_id"`
	SKU       string `gorm:"size:64;uniqueIndex" json:"sku"`

	// One entry per product option definition ({"Color":"Rosa","Talla":"3M"}).
	OptionsJSON datatypes.JSON `gorm:"column:options_json" json:"-"`

	PriceCents     int    `gorm:"not null" json:"price_cents"`
	CompareAtCents int    `json:"compare_at_cents,omitempty"` // 0 = no compare-at price
	Currency       string `gorm:"size:3;default:MXN" json:"currency"`
	Stock          int    `gorm:"not null;default:0" json:"stock"`
	ImageURL       string `gorm:"size:512" json:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Variant) TableName() string { return "product_variants" }

func (v *Variant) InStock() bool { return v.Stock > 0 }

type Image struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	ProductID  string    `gorm:"size:36;index" json:"product_id"`
	StorageKey string    `gorm:"size:512" json:"-"`
	URL        string    `gorm:"size:512" json:"url"`
	Position   int       `gorm:"not null;default:0" json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Image) TableName() string { return "product_images" }

// Collection groups products for the shop-by-age sections.
type Collection struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Slug        string    `gorm:"size:191;uniqueIndex" json:"slug"`
	Name        string    `gorm:"size:255" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"size:512" json:"image_url,omitempty"`
	Position    int       `gorm:"not null;default:0" json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Collection) TableName() string { return "collections" }
