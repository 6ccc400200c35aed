package catalog

import (
	"log"

	"bebeboutique.mx/app/pkg/view"
)

// Service shapes catalog records into storefront view models.
type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service { return &Service{repo: repo} }

func (s *Service) Repo() *Repo { return s.repo }

// Card builds the list representation: fallback-priced (cheapest
// in-stock variant) until the shopper makes a selection on the page.
func (s *Service) Card(p *Product) view.ProductCard {
	card := view.ProductCard{
		ID:          p.ID,
		Slug:        p.Slug,
		Name:        p.Name,
		Description: p.Description,
		Featured:    p.Featured,
		Currency:    "MXN",
		HasVariants: len(p.Variants) > 1,
	}

	if len(p.Images) > 0 {
		card.ImageURL = p.Images[0].URL
	}

	v := FallbackVariant(p)
	if v == nil {
		return card
	}
	if v.ImageURL != "" {
		card.ImageURL = v.ImageURL
	}
	if v.Currency != "" {
		card.Currency = v.Currency
	}
	card.InStock = anyInStock(p)
	card.PriceCents, _ = CurrentPrice(p, nil)
	card.Price = view.MoneyFromCents(card.PriceCents, card.Currency)
	if compare, ok := CurrentCompareAt(p, nil); ok {
		card.CompareAtCents = compare
		card.CompareAt = view.MoneyFromCents(compare, card.Currency)
		if pct, ok := DiscountPercent(card.PriceCents, compare); ok {
			card.DiscountPercent = pct
		}
	}
	return card
}

// Detail builds the product page for the shopper's current selection:
// resolved variant (if the selection is complete), price for the
// resolved-or-fallback variant, and per-value availability so the UI
// can grey out dead-end combinations.
func (s *Service) Detail(p *Product, sel Selection) view.ProductDetail {
	d := view.ProductDetail{ProductCard: s.Card(p)}

	for _, im := range p.Images {
		d.Images = append(d.Images, im.URL)
	}

	defs, err := p.OptionDefs()
	if err != nil {
		log.Printf("catalog: product %s has malformed options_json: %v", p.ID, err)
	}
	for _, def := range defs {
		opt := view.ProductOption{
			Name:     def.Name,
			Swatches: def.Swatches,
			Selected: sel[def.Name],
		}
		for _, val := range def.Values {
			opt.Values = append(opt.Values, view.OptionValue{
				Value:     val,
				Available: OptionValueAvailable(p, sel, def.Name, val),
				Selected:  sel[def.Name] == val,
			})
		}
		d.Options = append(d.Options, opt)
	}

	resolved := ResolveVariant(p, sel)
	if resolved != nil {
		d.Resolved = true
		d.VariantID = resolved.ID
		d.VariantSKU = resolved.SKU
		d.Stock = resolved.Stock
		d.CanAddToCart = resolved.InStock()
		if resolved.ImageURL != "" {
			d.ImageURL = resolved.ImageURL
		}

		d.PriceCents, _ = CurrentPrice(p, resolved)
		d.Price = view.MoneyFromCents(d.PriceCents, d.Currency)
		d.CompareAtCents, d.CompareAt, d.DiscountPercent = 0, "", 0
		if compare, ok := CurrentCompareAt(p, resolved); ok {
			d.CompareAtCents = compare
			d.CompareAt = view.MoneyFromCents(compare, d.Currency)
			if pct, ok := DiscountPercent(d.PriceCents, compare); ok {
				d.DiscountPercent = pct
			}
		}
	}
	return d
}

func anyInStock(p *Product) bool {
	for i := range p.Variants {
		if p.Variants[i].InStock() {
			return true
		}
	}
	return false
}
