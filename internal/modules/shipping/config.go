package shipping

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// ServiceLevel is one named speed tier. Factor scales the destination-
// adjusted base price; levels are declared most-economical first and
// their factors must be strictly increasing.
type ServiceLevel struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Factor      decimal.Decimal `json:"factor"`
	ETA         string          `json:"eta"`

	// Insurance surcharge applies to this tier only (top tier in the
	// default table).
	Insured bool `json:"insured"`
}

// RateConfig is data, not logic: the numbers here are the carrier
// contract of the moment and are overridable from a JSON file.
type RateConfig struct {
	Currency string `json:"currency"`

	// Centavos per kilogram before destination and tier scaling.
	WeightRateCentsPerKg decimal.Decimal `json:"weight_rate_cents_per_kg"`

	DestinationMultipliers map[string]decimal.Decimal `json:"destination_multipliers"`
	DefaultMultiplier      decimal.Decimal            `json:"default_multiplier"`

	// Declared-value insurance: rate applied above the threshold, on
	// insured tiers only.
	InsuranceRate           decimal.Decimal `json:"insurance_rate"`
	InsuranceThresholdCents int64           `json:"insurance_threshold_cents"`

	// Standard shipping is free above this order subtotal.
	FreeShippingThresholdCents int64 `json:"free_shipping_threshold_cents"`

	Levels []ServiceLevel `json:"levels"`
}

func DefaultConfig() RateConfig {
	return RateConfig{
		Currency:             "MXN",
		WeightRateCentsPerKg: decimal.NewFromInt(250),
		DestinationMultipliers: map[string]decimal.Decimal{
			"cdmx":          decimal.NewFromFloat(1.0),
			"estado-mexico": decimal.NewFromFloat(1.1),
			"puebla":        decimal.NewFromFloat(1.2),
			"guadalajara":   decimal.NewFromFloat(1.3),
			"monterrey":     decimal.NewFromFloat(1.4),
			"merida":        decimal.NewFromFloat(1.5),
			"cancun":        decimal.NewFromFloat(1.6),
			"tijuana":       decimal.NewFromFloat(1.8),
			"otro":          decimal.NewFromFloat(1.4),
		},
		DefaultMultiplier:          decimal.NewFromFloat(1.4),
		InsuranceRate:              decimal.NewFromFloat(0.02),
		InsuranceThresholdCents:    10000,
		FreeShippingThresholdCents: 80000,
		Levels: []ServiceLevel{
			{
				Code:        "standard",
				Name:        "Envío Estándar",
				Description: "Entrega confiable a precio económico",
				Factor:      decimal.NewFromFloat(1.0),
				ETA:         "5-7 días hábiles",
			},
			{
				Code:        "express",
				Name:        "Envío Express",
				Description: "Entrega rápida para cuando lo necesitas pronto",
				Factor:      decimal.NewFromFloat(1.8),
				ETA:         "2-3 días hábiles",
			},
			{
				Code:        "premium",
				Name:        "Envío Premium",
				Description: "Entrega urgente con seguro incluido",
				Factor:      decimal.NewFromFloat(2.5),
				ETA:         "1-2 días hábiles",
				Insured:     true,
			},
		},
	}
}

// LoadConfig reads a JSON rate table, falling back to the defaults
// when path is empty.
func LoadConfig(path string) (RateConfig, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return RateConfig{}, fmt.Errorf("shipping: read rate config: %w", err)
	}
	var cfg RateConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		return RateConfig{}, fmt.Errorf("shipping: parse rate config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return RateConfig{}, err
	}
	return cfg, nil
}

func (c RateConfig) validate() error {
	if len(c.Levels) == 0 {
		return fmt.Errorf("shipping: rate config needs at least one service level")
	}
	prev := decimal.Zero
	for _, lvl := range c.Levels {
		if lvl.Code == "" || lvl.Name == "" {
			return fmt.Errorf("shipping: service level missing code or name")
		}
		if !lvl.Factor.GreaterThan(prev) {
			return fmt.Errorf("shipping: service level factors must be strictly increasing (%s)", lvl.Code)
		}
		prev = lvl.Factor
	}
	if !c.WeightRateCentsPerKg.IsPositive() {
		return fmt.Errorf("shipping: weight rate must be positive")
	}
	return nil
}

func (c RateConfig) Level(code string) (ServiceLevel, bool) {
	for _, lvl := range c.Levels {
		if lvl.Code == code {
			return lvl, true
		}
	}
	return ServiceLevel{}, false
}
