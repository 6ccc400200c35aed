package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bebeboutique.mx/app/internal/http/middleware"
	"bebeboutique.mx/app/internal/modules/orders"
	"bebeboutique.mx/app/internal/shared/apperr"
)

// OrderFinder loads a placed order with its frozen line items.
type OrderFinder interface {
	GetWithItems(ctx context.Context, id string) (orders.Order, []orders.OrderItem, error)
}

// OrdersHandler serves the confirmation page lookup after checkout.
type OrdersHandler struct {
	Finder OrderFinder
}

func NewOrdersHandler(f OrderFinder) *OrdersHandler {
	return &OrdersHandler{Finder: f}
}

// Get handles GET /api/orders/:id
func (h *OrdersHandler) Get(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		middleware.Fail(c, apperr.NotFoundErr("Order not found."))
		return
	}

	o, items, err := h.Finder.GetWithItems(c.Request.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		middleware.Fail(c, apperr.NotFoundErr("Order not found."))
		return
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, confirmation(o, items))
}
