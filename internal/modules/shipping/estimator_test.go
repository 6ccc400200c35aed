package shipping_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"bebeboutique.mx/app/internal/modules/shipping"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newEstimator() *shipping.Estimator {
	return shipping.NewEstimator(shipping.DefaultConfig())
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name           string
		in             shipping.QuoteInput
		wantPriceCents []int64 // standard, express, premium
		wantError      bool
	}{
		{
			name: "half kilo to cdmx",
			in: shipping.QuoteInput{
				WeightKg:    decimal.NewFromFloat(0.5),
				Destination: "cdmx",
			},
			wantPriceCents: []int64{125, 225, 313}, // 312.5 rounds half up
		},
		{
			name: "unknown destination uses the default multiplier",
			in: shipping.QuoteInput{
				WeightKg:    decimal.NewFromFloat(0.5),
				Destination: "oaxaca",
			},
			wantPriceCents: []int64{175, 315, 438},
		},
		{
			name: "destination is trimmed and case-insensitive",
			in: shipping.QuoteInput{
				WeightKg:    decimal.NewFromFloat(0.5),
				Destination: "  CDMX ",
			},
			wantPriceCents: []int64{125, 225, 313},
		},
		{
			name: "declared value above threshold insures premium only",
			in: shipping.QuoteInput{
				WeightKg:           decimal.NewFromFloat(0.5),
				Destination:        "cdmx",
				DeclaredValueCents: 50000,
			},
			wantPriceCents: []int64{125, 225, 1313}, // 312.5 + 2% of 50000
		},
		{
			name: "declared value exactly at threshold is not insured",
			in: shipping.QuoteInput{
				WeightKg:           decimal.NewFromFloat(0.5),
				Destination:        "cdmx",
				DeclaredValueCents: 10000,
			},
			wantPriceCents: []int64{125, 225, 313},
		},
		{
			name: "zero weight rejected",
			in: shipping.QuoteInput{
				WeightKg:    decimal.Zero,
				Destination: "cdmx",
			},
			wantError: true,
		},
		{
			name: "negative weight rejected",
			in: shipping.QuoteInput{
				WeightKg:    decimal.NewFromFloat(-1),
				Destination: "cdmx",
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates, err := newEstimator().Quote(t.Context(), tt.in)
			if tt.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			require.Len(t, rates, len(tt.wantPriceCents))
			for i, want := range tt.wantPriceCents {
				assert.Equal(t, want, rates[i].PriceCents, "level %s", rates[i].Code)
			}
		})
	}
}

func TestQuoteOrderedAndDeterministic(t *testing.T) {
	e := newEstimator()
	in := shipping.QuoteInput{
		WeightKg:           decimal.NewFromFloat(2.3),
		Destination:        "tijuana",
		DeclaredValueCents: 123456,
	}

	first, err := e.Quote(t.Context(), in)
	require.NoError(t, err)

	// tiers come back most-economical first
	for i := 1; i < len(first); i++ {
		assert.Greater(t, first[i].PriceCents, first[i-1].PriceCents)
	}

	for i := 0; i < 5; i++ {
		again, err := e.Quote(t.Context(), in)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestQuoteHonorsCancellation(t *testing.T) {
	e := newEstimator().WithDelay(5 * time.Second)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := e.Quote(ctx, shipping.QuoteInput{
		WeightKg:    decimal.NewFromFloat(1),
		Destination: "cdmx",
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPriceFor(t *testing.T) {
	e := newEstimator()
	in := shipping.QuoteInput{
		WeightKg:    decimal.NewFromFloat(0.5),
		Destination: "cdmx",
	}

	t.Run("standard free above the subtotal threshold", func(t *testing.T) {
		r, err := e.PriceFor(t.Context(), "standard", in, 80000)
		require.NoError(t, err)
		assert.Equal(t, int64(0), r.PriceCents)
	})

	t.Run("standard paid below the threshold", func(t *testing.T) {
		r, err := e.PriceFor(t.Context(), "standard", in, 79999)
		require.NoError(t, err)
		assert.Equal(t, int64(125), r.PriceCents)
	})

	t.Run("express never free", func(t *testing.T) {
		r, err := e.PriceFor(t.Context(), "express", in, 500000)
		require.NoError(t, err)
		assert.Equal(t, int64(225), r.PriceCents)
	})

	t.Run("unknown level rejected", func(t *testing.T) {
		_, err := e.PriceFor(t.Context(), "drone", in, 0)
		assert.Error(t, err)
	})
}

func TestLoadConfigValidation(t *testing.T) {
	t.Run("empty path falls back to defaults", func(t *testing.T) {
		cfg, err := shipping.LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "MXN", cfg.Currency)
		assert.Len(t, cfg.Levels, 3)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := shipping.LoadConfig("testdata/does-not-exist.json")
		assert.Error(t, err)
	})
}
