package view

type ShippingRate struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ETA         string `json:"eta"`

	PriceCents int    `json:"price_cents"`
	Price      string `json:"price"`
}

type ShippingQuote struct {
	Rates    []ShippingRate `json:"rates"`
	Currency string         `json:"currency"`

	// Standard shipping is free above this order subtotal.
	FreeShippingThresholdCents int    `json:"free_shipping_threshold_cents"`
	FreeShippingThreshold      string `json:"free_shipping_threshold"`
}
