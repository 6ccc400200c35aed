package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bebeboutique.mx/app/internal/http/cartcookie"
	"bebeboutique.mx/app/internal/http/middleware"
	"bebeboutique.mx/app/internal/http/validation"
	"bebeboutique.mx/app/internal/modules/orders"
	"bebeboutique.mx/app/internal/shared/apperr"
	"bebeboutique.mx/app/pkg/view"
)

type CheckoutHandler struct {
	CK  *cartcookie.Codec
	Svc *orders.Service
}

func NewCheckoutHandler(ck *cartcookie.Codec, svc *orders.Service) *CheckoutHandler {
	return &CheckoutHandler{CK: ck, Svc: svc}
}

type checkoutRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Name        string `json:"name" binding:"required,min=2,max=120"`
	AddressLine string `json:"address_line" binding:"required,max=255"`
	City        string `json:"city" binding:"required,max=120"`
	PostalCode  string `json:"postal_code" binding:"required,len=5,numeric"`
	Destination string `json:"destination" binding:"required"`

	ShippingLevel string `json:"shipping_level" binding:"required"`
}

// Place handles POST /api/checkout: freezes the cart into an order and
// clears the cookie on success.
func (h *CheckoutHandler) Place(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Please complete all required fields.", validation.FromBindError(err, &req)))
		return
	}

	cartID, ok := h.CK.GetCartID(c)
	if !ok {
		middleware.Fail(c, apperr.InvalidErr("Your cart is empty.", nil))
		return
	}

	order, items, err := h.Svc.PlaceOrder(c.Request.Context(), cartID, orders.PlaceOrderInput{
		Email:         req.Email,
		Name:          req.Name,
		AddressLine:   req.AddressLine,
		City:          req.City,
		PostalCode:    req.PostalCode,
		Destination:   req.Destination,
		ShippingLevel: req.ShippingLevel,
	})
	if errors.Is(err, orders.ErrCartEmpty) {
		middleware.Fail(c, apperr.InvalidErr("Your cart is empty.", nil))
		return
	}
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	h.CK.Clear(c)
	c.JSON(http.StatusCreated, confirmation(order, items))
}

func confirmation(o orders.Order, items []orders.OrderItem) view.OrderConfirmation {
	out := view.OrderConfirmation{
		OrderID:       o.ID,
		Status:        o.Status,
		Email:         o.Email,
		Currency:      o.Currency,
		SubtotalCents: o.SubtotalCents,
		Subtotal:      view.MoneyFromCents(o.SubtotalCents, o.Currency),
		ShippingCents: o.ShippingCents,
		Shipping:      view.MoneyFromCents(o.ShippingCents, o.Currency),
		TotalCents:    o.TotalCents,
		Total:         view.MoneyFromCents(o.TotalCents, o.Currency),
		ShippingLevel: o.ShippingLevel,
		ETA:           o.ShippingETA,
	}
	for _, it := range items {
		var opts map[string]string
		if len(it.OptionsJSON) > 0 {
			_ = json.Unmarshal(it.OptionsJSON, &opts)
		}
		out.Items = append(out.Items, view.OrderItem{
			ProductName: it.Name,
			Options:     opts,
			Qty:         it.Quantity,
			UnitPrice:   view.MoneyFromCents(it.UnitPriceCents, o.Currency),
			LineTotal:   view.MoneyFromCents(it.LineTotalCents, o.Currency),
		})
	}
	return out
}
