package shipping

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"bebeboutique.mx/app/internal/shared/apperr"
)

// Estimator computes deterministic shipping quotes from the rate
// table. It does no I/O; Delay exists only to mimic a carrier call in
// demos and is zero by default.
type Estimator struct {
	cfg   RateConfig
	delay time.Duration
}

func NewEstimator(cfg RateConfig) *Estimator { return &Estimator{cfg: cfg} }

// WithDelay returns a copy that sleeps before answering, honoring ctx
// cancellation so a torn-down caller never receives a late quote.
func (e *Estimator) WithDelay(d time.Duration) *Estimator {
	return &Estimator{cfg: e.cfg, delay: d}
}

func (e *Estimator) Config() RateConfig { return e.cfg }

type QuoteInput struct {
	WeightKg           decimal.Decimal
	Destination        string
	DeclaredValueCents int64
}

type Rate struct {
	Code        string
	Name        string
	Description string
	ETA         string
	PriceCents  int64
}

// Quote returns one rate per configured service level, most-economical
// first. For a fixed input the output is fixed: price is
//
//	weight * rate-per-kg * destination-multiplier * tier-factor
//
// plus a declared-value insurance surcharge on insured tiers above the
// threshold, rounded half-up to whole centavos.
func (e *Estimator) Quote(ctx context.Context, in QuoteInput) ([]Rate, error) {
	if !in.WeightKg.IsPositive() {
		return nil, apperr.InvalidErr("Package weight must be above zero.", map[string]string{"weight_kg": "must be above zero"})
	}

	if e.delay > 0 {
		t := time.NewTimer(e.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	base := in.WeightKg.Mul(e.cfg.WeightRateCentsPerKg).Mul(e.multiplier(in.Destination))

	var insurance decimal.Decimal
	if in.DeclaredValueCents > e.cfg.InsuranceThresholdCents {
		insurance = decimal.NewFromInt(in.DeclaredValueCents).Mul(e.cfg.InsuranceRate)
	}

	rates := make([]Rate, 0, len(e.cfg.Levels))
	for _, lvl := range e.cfg.Levels {
		price := base.Mul(lvl.Factor)
		if lvl.Insured {
			price = price.Add(insurance)
		}
		rates = append(rates, Rate{
			Code:        lvl.Code,
			Name:        lvl.Name,
			Description: lvl.Description,
			ETA:         lvl.ETA,
			PriceCents:  price.Round(0).IntPart(),
		})
	}
	return rates, nil
}

// PriceFor quotes a single service level, with the free-standard rule
// applied against the order subtotal. Used by checkout.
func (e *Estimator) PriceFor(ctx context.Context, levelCode string, in QuoteInput, orderSubtotalCents int64) (Rate, error) {
	lvl, ok := e.cfg.Level(levelCode)
	if !ok {
		return Rate{}, apperr.InvalidErr("Unknown shipping option.", map[string]string{"shipping_level": "unknown"})
	}

	rates, err := e.Quote(ctx, in)
	if err != nil {
		return Rate{}, err
	}
	for _, r := range rates {
		if r.Code != lvl.Code {
			continue
		}
		if r.Code == "standard" && orderSubtotalCents >= e.cfg.FreeShippingThresholdCents {
			r.PriceCents = 0
		}
		return r, nil
	}
	return Rate{}, apperr.InvalidErr("Unknown shipping option.", nil)
}

func (e *Estimator) multiplier(destination string) decimal.Decimal {
	key := strings.ToLower(strings.TrimSpace(destination))
	if m, ok := e.cfg.DestinationMultipliers[key]; ok {
		return m
	}
	return e.cfg.DefaultMultiplier
}
