package cart

import "encoding/json"

// Snapshot is the displayable copy of a variant captured at
// add-to-cart time, so the cart stays renderable even if the catalog
// record changes or disappears afterwards.
type Snapshot struct {
	Name       string            `json:"name"`
	Slug       string            `json:"slug"`
	PriceCents int               `json:"price_cents"`
	Currency   string            `json:"currency"`
	ImageURL   string            `json:"image_url,omitempty"`
	Options    map[string]string `json:"options,omitempty"`
}

// LineItem is one cart row. Identity is the (product id, variant id)
// pair; quantity is always >= 1 while the row exists.
type LineItem struct {
	ProductID string   `json:"product_id"`
	VariantID string   `json:"variant_id"`
	Qty       int      `json:"qty"`
	Snapshot  Snapshot `json:"snapshot"`
}

// Ledger is the ordered list of line items. Rows keep insertion order;
// re-adding an existing (product, variant) pair bumps its quantity in
// place instead of appending a duplicate.
type Ledger struct {
	items []LineItem
}

func NewLedger() *Ledger { return &Ledger{} }

// Add upserts a line item. qty <= 0 is a guarded no-op.
func (l *Ledger) Add(productID, variantID string, qty int, snap Snapshot) {
	if qty <= 0 || productID == "" || variantID == "" {
		return
	}
	if i := l.index(productID, variantID); i >= 0 {
		l.items[i].Qty += qty
		return
	}
	l.items = append(l.items, LineItem{
		ProductID: productID,
		VariantID: variantID,
		Qty:       qty,
		Snapshot:  snap,
	})
}

// SetQuantity sets the row's quantity directly; qty <= 0 removes the
// row (a zero-quantity row is never retained).
func (l *Ledger) SetQuantity(productID, variantID string, qty int) {
	i := l.index(productID, variantID)
	if i < 0 {
		return
	}
	if qty <= 0 {
		l.items = append(l.items[:i], l.items[i+1:]...)
		return
	}
	l.items[i].Qty = qty
}

// Remove drops the row if present; removing an absent pair is a no-op.
func (l *Ledger) Remove(productID, variantID string) {
	if i := l.index(productID, variantID); i >= 0 {
		l.items = append(l.items[:i], l.items[i+1:]...)
	}
}

func (l *Ledger) Clear() { l.items = nil }

func (l *Ledger) Len() int { return len(l.items) }

// Items returns a copy; callers cannot mutate the ledger through it.
func (l *Ledger) Items() []LineItem {
	out := make([]LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// TotalItems is the sum of quantities across rows.
func (l *Ledger) TotalItems() int {
	n := 0
	for _, it := range l.items {
		n += it.Qty
	}
	return n
}

// SubtotalCents is always recomputed from the rows, never cached.
func (l *Ledger) SubtotalCents() int {
	sum := 0
	for _, it := range l.items {
		sum += it.Snapshot.PriceCents * it.Qty
	}
	return sum
}

// Wire format, versioned for forwards compatibility of persisted carts.
type ledgerPayload struct {
	V     int        `json:"v"`
	Items []LineItem `json:"items"`
}

func (l *Ledger) Encode() ([]byte, error) {
	return json.Marshal(ledgerPayload{V: 1, Items: l.items})
}

func DecodeLedger(b []byte) (*Ledger, error) {
	var p ledgerPayload
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, err
	}
	l := &Ledger{}
	for _, it := range p.Items {
		// Re-apply through Add so invariants hold even for tampered
		// or stale payloads (qty >= 1, no duplicate pairs).
		l.Add(it.ProductID, it.VariantID, it.Qty, it.Snapshot)
	}
	return l, nil
}

func (l *Ledger) index(productID, variantID string) int {
	for i, it := range l.items {
		if it.ProductID == productID && it.VariantID == variantID {
			return i
		}
	}
	return -1
}
