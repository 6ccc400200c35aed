package catalog

// Price resolution over a resolved-or-fallback variant. Amounts are
// integer minor units (centavos); display formatting lives in pkg/view
// and never feeds back into stored amounts.

// CurrentPrice returns the unit price to display for the product given
// the resolved variant (nil means "nothing resolved yet", which falls
// back per FallbackVariant). ok is false when the product has no
// variants and therefore no price.
func CurrentPrice(p *Product, resolved *Variant) (cents int, ok bool) {
	v := resolved
	if v == nil {
		v = FallbackVariant(p)
	}
	if v == nil {
		return 0, false
	}
	return v.PriceCents, true
}

// CurrentCompareAt returns the strike-through price, when the active
// variant has one above its selling price.
func CurrentCompareAt(p *Product, resolved *Variant) (cents int, ok bool) {
	v := resolved
	if v == nil {
		v = FallbackVariant(p)
	}
	if v == nil || v.CompareAtCents <= v.PriceCents {
		return 0, false
	}
	return v.CompareAtCents, true
}

// DiscountPercent is round-half-up(100 * (compareAt - price) / compareAt),
// present only when compareAt is above the price.
func DiscountPercent(priceCents, compareAtCents int) (int, bool) {
	if compareAtCents <= 0 || compareAtCents <= priceCents {
		return 0, false
	}
	diff := compareAtCents - priceCents
	// integer half-up rounding of 100*diff/compareAt
	return (200*diff + compareAtCents) / (2 * compareAtCents), true
}
