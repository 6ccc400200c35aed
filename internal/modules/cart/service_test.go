package cart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bebeboutique.mx/app/internal/modules/cart"
	"bebeboutique.mx/app/internal/modules/catalog"
	"bebeboutique.mx/app/internal/notify"
	"bebeboutique.mx/app/internal/shared/apperr"
)

// fakeCatalog serves variants from a fixed map keyed by
// productID/variantID.
type fakeCatalog struct {
	products map[string]catalog.Product
}

func (f *fakeCatalog) GetVariant(_ context.Context, productID, variantID string) (catalog.Product, catalog.Variant, error) {
	p, ok := f.products[productID]
	if !ok {
		return catalog.Product{}, catalog.Variant{}, gorm.ErrRecordNotFound
	}
	for _, v := range p.Variants {
		if v.ID == variantID {
			return p, v, nil
		}
	}
	return catalog.Product{}, catalog.Variant{}, gorm.ErrRecordNotFound
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{products: map[string]catalog.Product{
		"p1": {
			ID:   "p1",
			Slug: "mameluco-nube",
			Name: "Mameluco Nube",
			Images: []catalog.Image{
				{ID: "i1", ProductID: "p1", URL: "/uploads/nube.jpg", Position: 0},
			},
			Variants: []catalog.Variant{
				{ID: "v1", ProductID: "p1", SKU: "MAM-R3M", PriceCents: 34900, Currency: "MXN", Stock: 5},
				{ID: "v2", ProductID: "p1", SKU: "MAM-A6M", PriceCents: 36900, Currency: "MXN", Stock: 0},
			},
		},
	}}
}

func newService(rec *notify.Recorder) *cart.Service {
	return cart.NewService(cart.NewMemoryStore(), testCatalog(), rec)
}

func TestServiceAddItem(t *testing.T) {
	t.Run("snapshots and persists", func(t *testing.T) {
		rec := &notify.Recorder{}
		svc := newService(rec)
		ctx := t.Context()

		l, err := svc.AddItem(ctx, "c1", "p1", "v1", 2)
		require.NoError(t, err)

		items := l.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Qty)
		assert.Equal(t, "Mameluco Nube", items[0].Snapshot.Name)
		assert.Equal(t, 34900, items[0].Snapshot.PriceCents)
		// product image fills in when the variant has none
		assert.Equal(t, "/uploads/nube.jpg", items[0].Snapshot.ImageURL)

		// a fresh load sees the saved ledger
		reloaded, err := svc.Load(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, 2, reloaded.TotalItems())

		require.Len(t, rec.Events, 1)
		assert.Equal(t, notify.KindSuccess, rec.Events[0].Kind)
	})

	t.Run("out of stock rejected with a toast", func(t *testing.T) {
		rec := &notify.Recorder{}
		svc := newService(rec)

		_, err := svc.AddItem(t.Context(), "c1", "p1", "v2", 1)
		ae, ok := apperr.As(err)
		require.True(t, ok)
		assert.Equal(t, apperr.Conflict, ae.Kind)

		require.Len(t, rec.Events, 1)
		assert.Equal(t, notify.KindError, rec.Events[0].Kind)
	})

	t.Run("unknown variant is not found", func(t *testing.T) {
		svc := newService(&notify.Recorder{})

		_, err := svc.AddItem(t.Context(), "c1", "p1", "v9", 1)
		ae, ok := apperr.As(err)
		require.True(t, ok)
		assert.Equal(t, apperr.NotFound, ae.Kind)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		svc := newService(&notify.Recorder{})

		_, err := svc.AddItem(t.Context(), "c1", "p1", "v1", 0)
		ae, ok := apperr.As(err)
		require.True(t, ok)
		assert.Equal(t, apperr.Invalid, ae.Kind)
	})
}

func TestServiceQuantityAndRemoval(t *testing.T) {
	svc := newService(&notify.Recorder{})
	ctx := t.Context()

	_, err := svc.AddItem(ctx, "c1", "p1", "v1", 3)
	require.NoError(t, err)

	l, err := svc.SetQuantity(ctx, "c1", "p1", "v1", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, l.TotalItems())

	l, err = svc.RemoveItem(ctx, "c1", "p1", "v1")
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())

	n, err := svc.Count(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestServiceClear(t *testing.T) {
	svc := newService(&notify.Recorder{})
	ctx := t.Context()

	_, err := svc.AddItem(ctx, "c1", "p1", "v1", 1)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "c1"))

	l, err := svc.Load(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())

	// clearing a cart that never existed is fine
	require.NoError(t, svc.Clear(ctx, ""))
}

func TestServicePage(t *testing.T) {
	svc := newService(&notify.Recorder{})
	ctx := t.Context()

	l, err := svc.AddItem(ctx, "c1", "p1", "v1", 2)
	require.NoError(t, err)

	page := svc.Page(l)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 2, page.Count)
	assert.Equal(t, 69800, page.SubtotalCents)
	assert.Equal(t, "$698.00", page.Subtotal)
	assert.Equal(t, "MXN", page.Currency)
	assert.Equal(t, 69800, page.Items[0].LineTotalCents)

	t.Run("nil and empty ledgers render empty pages", func(t *testing.T) {
		page := svc.Page(nil)
		assert.NotNil(t, page.Items)
		assert.Equal(t, 0, page.Count)

		page = svc.Page(cart.NewLedger())
		assert.Equal(t, 0, page.SubtotalCents)
	})
}
