package catalog

import "encoding/json"

// OptionDef is one configurable axis of a product (e.g. Color, Talla).
// Value order is the display order; swatches map a value to a CSS color
// for color-style pickers.
type OptionDef struct {
	Name     string            `json:"name"`
	Values   []string          `json:"values"`
	Swatches map[string]string `json:"swatches,omitempty"`
}

// Selection is the shopper's in-progress choice of option values,
// keyed by option name. It may cover only some of the options.
type Selection map[string]string

// OptionDefs decodes the product's option definitions. A product
// without options (single fixed variant) yields an empty slice.
func (p *Product) OptionDefs() ([]OptionDef, error) {
	if len(p.OptionsJSON) == 0 {
		return nil, nil
	}
	var defs []OptionDef
	if err := json.Unmarshal(p.OptionsJSON, &defs); err != nil {
		return nil, err
	}
	return defs, nil
}

// OptionValues decodes the variant's option-name to option-value mapping.
func (v *Variant) OptionValues() (map[string]string, error) {
	if len(v.OptionsJSON) == 0 {
		return map[string]string{}, nil
	}
	var m map[string]string
	if err := json.Unmarshal(v.OptionsJSON, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func EncodeOptionDefs(defs []OptionDef) ([]byte, error) {
	return json.Marshal(defs)
}

func EncodeOptionValues(m map[string]string) ([]byte, error) {
	return json.Marshal(m)
}
