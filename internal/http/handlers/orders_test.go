package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bebeboutique.mx/app/internal/http/handlers"
	"bebeboutique.mx/app/internal/modules/orders"
	"bebeboutique.mx/app/pkg/view"
)

type stubFinder struct {
	orders map[string]orders.Order
	items  map[string][]orders.OrderItem
}

func (f *stubFinder) GetWithItems(_ context.Context, id string) (orders.Order, []orders.OrderItem, error) {
	o, ok := f.orders[id]
	if !ok {
		return orders.Order{}, nil, gorm.ErrRecordNotFound
	}
	return o, f.items[id], nil
}

func ordersRouter(f handlers.OrderFinder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/orders/:id", handlers.NewOrdersHandler(f).Get)
	return r
}

func TestOrderLookup(t *testing.T) {
	f := &stubFinder{
		orders: map[string]orders.Order{
			"ord-1": {
				ID:            "ord-1",
				Status:        orders.StatusConfirmed,
				Email:         "maria@example.com",
				Currency:      "MXN",
				SubtotalCents: 69800,
				ShippingCents: 225,
				TotalCents:    70025,
				ShippingLevel: "express",
				ShippingETA:   "1-2 días hábiles",
			},
		},
		items: map[string][]orders.OrderItem{
			"ord-1": {
				{
					Name:           "Mameluco Nube",
					OptionsJSON:    []byte(`{"Color":"Rosa","Talla":"3M"}`),
					Quantity:       2,
					UnitPriceCents: 34900,
					LineTotalCents: 69800,
				},
			},
		},
	}
	r := ordersRouter(f)

	t.Run("known order returns the confirmation view", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var out view.OrderConfirmation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

		assert.Equal(t, "ord-1", out.OrderID)
		assert.Equal(t, orders.StatusConfirmed, out.Status)
		assert.Equal(t, "$700.25", out.Total)
		require.Len(t, out.Items, 1)
		assert.Equal(t, "Mameluco Nube", out.Items[0].ProductName)
		assert.Equal(t, "Rosa", out.Items[0].Options["Color"])
		assert.Equal(t, 2, out.Items[0].Qty)
	})

	t.Run("unknown order is a 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusNotFound, w.Code)

		var out struct {
			Error struct {
				Kind string `json:"kind"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Equal(t, "not_found", out.Error.Kind)
	})
}
