package cart

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"bebeboutique.mx/app/internal/modules/catalog"
	"bebeboutique.mx/app/internal/notify"
	"bebeboutique.mx/app/internal/shared/apperr"
	"bebeboutique.mx/app/pkg/view"
)

// Catalog is the slice of the catalog the cart needs: loading one
// variant with its owning product for snapshotting.
type Catalog interface {
	GetVariant(ctx context.Context, productID, variantID string) (catalog.Product, catalog.Variant, error)
}

// Service owns the load-mutate-save cycle around the ledger and turns
// catalog records into line-item snapshots.
type Service struct {
	store    Store
	catalog  Catalog
	notifier notify.Notifier
}

func NewService(store Store, cat Catalog, notifier notify.Notifier) *Service {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &Service{store: store, catalog: cat, notifier: notifier}
}

// Load returns the cart's ledger, empty when nothing is persisted yet.
func (s *Service) Load(ctx context.Context, cartID string) (*Ledger, error) {
	if cartID == "" {
		return NewLedger(), nil
	}
	l, found, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if !found {
		return NewLedger(), nil
	}
	return l, nil
}

// AddItem snapshots the variant and upserts it into the cart.
func (s *Service) AddItem(ctx context.Context, cartID, productID, variantID string, qty int) (*Ledger, error) {
	if qty < 1 {
		return nil, apperr.InvalidErr("Quantity must be at least 1.", nil)
	}

	p, v, err := s.catalog.GetVariant(ctx, productID, variantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundErr("That product is no longer available.")
	}
	if err != nil {
		return nil, err
	}
	if !v.InStock() {
		s.notifier.Notify(ctx, notify.KindError, fmt.Sprintf("%s is out of stock.", p.Name))
		return nil, apperr.ConflictErr("That item is out of stock.")
	}

	l, err := s.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	l.Add(productID, variantID, qty, s.snapshot(&p, &v))
	if err := s.store.Save(ctx, cartID, l); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, notify.KindSuccess, fmt.Sprintf("%s added to cart.", p.Name))
	return l, nil
}

func (s *Service) SetQuantity(ctx context.Context, cartID, productID, variantID string, qty int) (*Ledger, error) {
	l, err := s.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	l.SetQuantity(productID, variantID, qty)
	if err := s.store.Save(ctx, cartID, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) RemoveItem(ctx context.Context, cartID, productID, variantID string) (*Ledger, error) {
	l, err := s.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	l.Remove(productID, variantID)
	if err := s.store.Save(ctx, cartID, l); err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, notify.KindSuccess, "Item removed from cart.")
	return l, nil
}

func (s *Service) Clear(ctx context.Context, cartID string) error {
	if cartID == "" {
		return nil
	}
	return s.store.Delete(ctx, cartID)
}

func (s *Service) Count(ctx context.Context, cartID string) (int, error) {
	l, err := s.Load(ctx, cartID)
	if err != nil {
		return 0, err
	}
	return l.TotalItems(), nil
}

// Page prices the ledger into the cart view model. Totals come from
// the rows every time; nothing is cached alongside them.
func (s *Service) Page(l *Ledger) view.CartPage {
	page := view.CartPage{Items: []view.CartItem{}, Currency: "MXN"}
	if l == nil {
		return page
	}

	for _, it := range l.Items() {
		line := it.Snapshot.PriceCents * it.Qty
		cur := strings.ToUpper(strings.TrimSpace(it.Snapshot.Currency))
		if cur != "" {
			page.Currency = cur
		}
		page.Items = append(page.Items, view.CartItem{
			ProductID:      it.ProductID,
			VariantID:      it.VariantID,
			ProductName:    it.Snapshot.Name,
			ProductSlug:    it.Snapshot.Slug,
			ImageURL:       it.Snapshot.ImageURL,
			Options:        it.Snapshot.Options,
			Qty:            it.Qty,
			UnitPriceCents: it.Snapshot.PriceCents,
			LineTotalCents: line,
			UnitPrice:      view.MoneyFromCents(it.Snapshot.PriceCents, page.Currency),
			LineTotal:      view.MoneyFromCents(line, page.Currency),
		})
	}

	page.Count = l.TotalItems()
	page.SubtotalCents = l.SubtotalCents()
	page.Subtotal = view.MoneyFromCents(page.SubtotalCents, page.Currency)
	return page
}

func (s *Service) snapshot(p *catalog.Product, v *catalog.Variant) Snapshot {
	opts, err := v.OptionValues()
	if err != nil {
		log.Printf("cart: variant %s has malformed options_json: %v", v.ID, err)
		opts = nil
	}

	img := v.ImageURL
	if img == "" && len(p.Images) > 0 {
		img = p.Images[0].URL
	}

	return Snapshot{
		Name:       p.Name,
		Slug:       p.Slug,
		PriceCents: v.PriceCents,
		Currency:   v.Currency,
		ImageURL:   img,
		Options:    opts,
	}
}
