package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bebeboutique.mx/app/internal/modules/checkout"
)

func TestOutOfStockErrorListsEveryShortage(t *testing.T) {
	tests := []struct {
		name  string
		items []checkout.OutOfStockItem
		want  string
	}{
		{
			name: "no detail",
			want: "out of stock",
		},
		{
			name:  "single shortage",
			items: []checkout.OutOfStockItem{{VariantID: "v1", Requested: 3, Available: 1}},
			want:  "out of stock: variant v1 requested 3, available 1",
		},
		{
			name: "every shortage reported",
			items: []checkout.OutOfStockItem{
				{VariantID: "v1", Requested: 3, Available: 1},
				{VariantID: "v2", Requested: 2, Available: 0},
			},
			want: "out of stock: variant v1 requested 3, available 1; variant v2 requested 2, available 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &checkout.OutOfStockError{Items: tt.items}
			assert.Equal(t, tt.want, err.Error())
		})
	}
}
