package catalog_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bebeboutique.mx/app/internal/modules/catalog"
)

func TestOptionDefsRoundTrip(t *testing.T) {
	defs := []catalog.OptionDef{
		{Name: "Color", Values: []string{"Rosa", "Azul"}, Swatches: map[string]string{"Rosa": "#f9a8d4"}},
		{Name: "Talla", Values: []string{"RN", "3M", "6M"}},
	}

	encoded, err := catalog.EncodeOptionDefs(defs)
	require.NoError(t, err)

	p := catalog.Product{OptionsJSON: encoded}
	got, err := p.OptionDefs()
	require.NoError(t, err)

	// definition order is display order and must survive the column
	assert.Empty(t, cmp.Diff(defs, got))
}

func TestOptionValuesRoundTrip(t *testing.T) {
	encoded, err := catalog.EncodeOptionValues(map[string]string{"Color": "Rosa", "Talla": "3M"})
	require.NoError(t, err)

	v := catalog.Variant{OptionsJSON: encoded}
	got, err := v.OptionValues()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Color": "Rosa", "Talla": "3M"}, got)
}

func TestOptionDefsEmptyAndMalformed(t *testing.T) {
	var p catalog.Product
	defs, err := p.OptionDefs()
	require.NoError(t, err)
	assert.Empty(t, defs)

	p.OptionsJSON = []byte(`{not json`)
	_, err = p.OptionDefs()
	assert.Error(t, err)
}
