package view

type OrderItem struct {
	ProductName string            `json:"product_name"`
	Options     map[string]string `json:"options,omitempty"`
	Qty         int               `json:"qty"`
	UnitPrice   string            `json:"unit_price"`
	LineTotal   string            `json:"line_total"`
}

type OrderConfirmation struct {
	OrderID  string      `json:"order_id"`
	Status   string      `json:"status"`
	Email    string      `json:"email"`
	Items    []OrderItem `json:"items"`
	Currency string      `json:"currency"`

	SubtotalCents int    `json:"subtotal_cents"`
	Subtotal      string `json:"subtotal"`
	ShippingCents int    `json:"shipping_cents"`
	Shipping      string `json:"shipping"`
	TotalCents    int    `json:"total_cents"`
	Total         string `json:"total"`

	ShippingLevel string `json:"shipping_level"`
	ETA           string `json:"eta,omitempty"`
}
