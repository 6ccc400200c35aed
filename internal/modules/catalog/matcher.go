package catalog

// Variant matching. All comparisons are exact, case-sensitive string
// equality between option names and values; there is no fuzzy matching
// and no implied selection order.

// ResolveVariant returns the variant whose option mapping equals the
// selection exactly, once the selection covers every option definition.
// Products with a single variant resolve it on an empty selection (no
// picker is shown for those). Incomplete or unmatchable selections
// resolve to nil; callers fall back to FallbackVariant for display.
func ResolveVariant(p *Product, sel Selection) *Variant {
	if p == nil || len(p.Variants) == 0 {
		return nil
	}
	defs, err := p.OptionDefs()
	if err != nil {
		return nil
	}
	// several variants but no option definitions is malformed catalog
	// data, not a single-variant product; resolve nothing
	if len(defs) == 0 && len(p.Variants) > 1 {
		return nil
	}

	if len(sel) == 0 && len(p.Variants) == 1 {
		return &p.Variants[0]
	}

	for _, def := range defs {
		if _, ok := sel[def.Name]; !ok {
			return nil
		}
	}

	for i := range p.Variants {
		opts, err := p.Variants[i].OptionValues()
		if err != nil {
			continue
		}
		if optionsEqual(opts, sel, defs) {
			return &p.Variants[i]
		}
	}
	return nil
}

// OptionValueAvailable reports whether picking candidate for optionName,
// while holding the rest of the current selection fixed, can still reach
// at least one in-stock variant. The UI uses this to grey out dead-end
// values without forcing a left-to-right pick order.
func OptionValueAvailable(p *Product, sel Selection, optionName, candidate string) bool {
	if p == nil {
		return false
	}

	sim := make(Selection, len(sel)+1)
	for k, v := range sel {
		sim[k] = v
	}
	sim[optionName] = candidate

	for i := range p.Variants {
		v := &p.Variants[i]
		if !v.InStock() {
			continue
		}
		opts, err := v.OptionValues()
		if err != nil {
			continue
		}
		if compatible(opts, sim) {
			return true
		}
	}
	return false
}

// FallbackVariant is the variant shown before a selection is complete:
// the cheapest in-stock variant, or the first variant when everything is
// out of stock. Nil only when the product has no variants at all.
func FallbackVariant(p *Product) *Variant {
	if p == nil || len(p.Variants) == 0 {
		return nil
	}
	var best *Variant
	for i := range p.Variants {
		v := &p.Variants[i]
		if !v.InStock() {
			continue
		}
		if best == nil || v.PriceCents < best.PriceCents {
			best = v
		}
	}
	if best != nil {
		return best
	}
	return &p.Variants[0]
}

// optionsEqual: the variant mapping and the selection agree on every
// defined option. Both sides must carry one entry per definition.
func optionsEqual(opts map[string]string, sel Selection, defs []OptionDef) bool {
	if len(defs) == 0 {
		return len(sel) == 0
	}
	for _, def := range defs {
		ov, ok := opts[def.Name]
		if !ok {
			return false
		}
		sv, ok := sel[def.Name]
		if !ok || ov != sv {
			return false
		}
	}
	return true
}

// compatible: the variant does not contradict any selected value.
func compatible(opts map[string]string, sel Selection) bool {
	for name, want := range sel {
		if got, ok := opts[name]; !ok || got != want {
			return false
		}
	}
	return true
}
