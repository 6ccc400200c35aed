package checkout

import (
	"fmt"
	"strings"
)

type OutOfStockItem struct {
	VariantID string
	Requested int
	Available int
}

// OutOfStockError carries every shortage found while locking stock, so
// the shopper learns about all of them in one round trip.
type OutOfStockError struct {
	Items []OutOfStockItem
}

func (e *OutOfStockError) Error() string {
	if len(e.Items) == 0 {
		return "out of stock"
	}
	parts := make([]string, 0, len(e.Items))
	for _, it := range e.Items {
		parts = append(parts, fmt.Sprintf("variant %s requested %d, available %d", it.VariantID, it.Requested, it.Available))
	}
	return "out of stock: " + strings.Join(parts, "; ")
}
