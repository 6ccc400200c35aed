package view

// ProductCard is the list/grid representation of a product.
type ProductCard struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Featured    bool   `json:"featured"`
	InStock     bool   `json:"in_stock"`

	PriceCents      int    `json:"price_cents"`
	Price           string `json:"price"`
	CompareAtCents  int    `json:"compare_at_cents,omitempty"`
	CompareAt       string `json:"compare_at,omitempty"`
	DiscountPercent int    `json:"discount_percent,omitempty"`
	Currency        string `json:"currency"`

	HasVariants bool `json:"has_variants"`
}

// ProductOption is one option axis with per-value availability for the
// shopper's current selection.
type ProductOption struct {
	Name     string            `json:"name"`
	Values   []OptionValue     `json:"values"`
	Swatches map[string]string `json:"swatches,omitempty"`
	Selected string            `json:"selected,omitempty"`
}

type OptionValue struct {
	Value     string `json:"value"`
	Available bool   `json:"available"`
	Selected  bool   `json:"selected"`
}

// ProductDetail is the product page payload for a given (possibly
// partial) selection.
type ProductDetail struct {
	ProductCard

	Images  []string        `json:"images,omitempty"`
	Options []ProductOption `json:"options,omitempty"`

	// Resolved variant for the selection, empty until the selection
	// covers every option (single-variant products resolve immediately).
	VariantID    string `json:"variant_id,omitempty"`
	VariantSKU   string `json:"variant_sku,omitempty"`
	Resolved     bool   `json:"resolved"`
	CanAddToCart bool   `json:"can_add_to_cart"`
	Stock        int    `json:"stock,omitempty"`
}
