package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bebeboutique.mx/app/internal/modules/catalog"
)

func colorSizeProduct(t *testing.T, variants ...catalog.Variant) *catalog.Product {
	t.Helper()

	defs, err := catalog.EncodeOptionDefs([]catalog.OptionDef{
		{Name: "Color", Values: []string{"Rosa", "Azul"}},
		{Name: "Talla", Values: []string{"3M", "6M"}},
	})
	require.NoError(t, err)

	return &catalog.Product{
		ID:          "p1",
		Slug:        "mameluco",
		Name:        "Mameluco",
		Status:      catalog.StatusActive,
		OptionsJSON: defs,
		Variants:    variants,
	}
}

func variant(t *testing.T, id string, opts map[string]string, priceCents, stock int) catalog.Variant {
	t.Helper()

	optsJSON, err := catalog.EncodeOptionValues(opts)
	require.NoError(t, err)

	return catalog.Variant{
		ID:          id,
		ProductID:   "p1",
		SKU:         "SKU-" + id,
		OptionsJSON: optsJSON,
		PriceCents:  priceCents,
		Currency:    "MXN",
		Stock:       stock,
	}
}

func TestResolveVariant(t *testing.T) {
	rosa3m := variant(t, "v1", map[string]string{"Color": "Rosa", "Talla": "3M"}, 34900, 5)
	azul6m := variant(t, "v2", map[string]string{"Color": "Azul", "Talla": "6M"}, 36900, 0)

	tests := []struct {
		name   string
		p      *catalog.Product
		sel    catalog.Selection
		wantID string
	}{
		{
			name:   "complete selection matches exactly",
			p:      colorSizeProduct(t, rosa3m, azul6m),
			sel:    catalog.Selection{"Color": "Rosa", "Talla": "3M"},
			wantID: "v1",
		},
		{
			name:   "out-of-stock variant still resolves",
			p:      colorSizeProduct(t, rosa3m, azul6m),
			sel:    catalog.Selection{"Color": "Azul", "Talla": "6M"},
			wantID: "v2",
		},
		{
			name: "incomplete selection resolves nothing",
			p:    colorSizeProduct(t, rosa3m, azul6m),
			sel:  catalog.Selection{"Color": "Rosa"},
		},
		{
			name: "combination without a variant resolves nothing",
			p:    colorSizeProduct(t, rosa3m, azul6m),
			sel:  catalog.Selection{"Color": "Rosa", "Talla": "6M"},
		},
		{
			name: "case sensitive values",
			p:    colorSizeProduct(t, rosa3m, azul6m),
			sel:  catalog.Selection{"Color": "rosa", "Talla": "3M"},
		},
		{
			name: "single variant resolves on empty selection",
			p: &catalog.Product{
				ID:       "p2",
				Variants: []catalog.Variant{variant(t, "v9", nil, 15900, 3)},
			},
			sel:    catalog.Selection{},
			wantID: "v9",
		},
		{
			name: "no variants",
			p:    &catalog.Product{ID: "p3"},
			sel:  catalog.Selection{},
		},
		{
			name: "several variants without option definitions resolve nothing",
			p: &catalog.Product{
				ID: "p4",
				Variants: []catalog.Variant{
					variant(t, "v1", nil, 15900, 3),
					variant(t, "v2", nil, 17900, 1),
				},
			},
			sel: catalog.Selection{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.ResolveVariant(tt.p, tt.sel)
			if tt.wantID == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestOptionValueAvailable(t *testing.T) {
	// Rosa exists only in 3M (in stock); Azul exists in 3M (sold out)
	// and 6M (in stock).
	p := colorSizeProduct(t,
		variant(t, "v1", map[string]string{"Color": "Rosa", "Talla": "3M"}, 34900, 5),
		variant(t, "v2", map[string]string{"Color": "Azul", "Talla": "3M"}, 34900, 0),
		variant(t, "v3", map[string]string{"Color": "Azul", "Talla": "6M"}, 36900, 2),
	)

	tests := []struct {
		name      string
		sel       catalog.Selection
		option    string
		candidate string
		want      bool
	}{
		{
			name:      "no prior selection, value reachable",
			sel:       catalog.Selection{},
			option:    "Color",
			candidate: "Rosa",
			want:      true,
		},
		{
			name:      "candidate only reachable via sold-out variant",
			sel:       catalog.Selection{"Color": "Azul"},
			option:    "Talla",
			candidate: "3M",
			want:      false,
		},
		{
			name:      "candidate reachable via in-stock variant",
			sel:       catalog.Selection{"Color": "Azul"},
			option:    "Talla",
			candidate: "6M",
			want:      true,
		},
		{
			name:      "holding other option fixed blocks dead end",
			sel:       catalog.Selection{"Talla": "6M"},
			option:    "Color",
			candidate: "Rosa",
			want:      false,
		},
		{
			name:      "switching an already selected option is allowed",
			sel:       catalog.Selection{"Color": "Rosa", "Talla": "3M"},
			option:    "Color",
			candidate: "Azul",
			want:      false, // Azul+3M is sold out
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.OptionValueAvailable(p, tt.sel, tt.option, tt.candidate)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFallbackVariant(t *testing.T) {
	t.Run("cheapest in-stock wins", func(t *testing.T) {
		p := colorSizeProduct(t,
			variant(t, "v1", map[string]string{"Color": "Rosa", "Talla": "3M"}, 29900, 0),
			variant(t, "v2", map[string]string{"Color": "Azul", "Talla": "3M"}, 39900, 4),
			variant(t, "v3", map[string]string{"Color": "Azul", "Talla": "6M"}, 34900, 1),
		)
		got := catalog.FallbackVariant(p)
		require.NotNil(t, got)
		assert.Equal(t, "v3", got.ID)
	})

	t.Run("everything sold out falls back to first", func(t *testing.T) {
		p := colorSizeProduct(t,
			variant(t, "v1", map[string]string{"Color": "Rosa", "Talla": "3M"}, 29900, 0),
			variant(t, "v2", map[string]string{"Color": "Azul", "Talla": "6M"}, 19900, 0),
		)
		got := catalog.FallbackVariant(p)
		require.NotNil(t, got)
		assert.Equal(t, "v1", got.ID)
	})

	t.Run("no variants", func(t *testing.T) {
		assert.Nil(t, catalog.FallbackVariant(&catalog.Product{}))
	})
}
