package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bebeboutique.mx/app/internal/http/cartcookie"
	"bebeboutique.mx/app/internal/http/middleware"
	"bebeboutique.mx/app/internal/http/validation"
	"bebeboutique.mx/app/internal/modules/cart"
	"bebeboutique.mx/app/internal/shared/apperr"
)

// CartHandler serves the cart surface. The signed cookie carries only
// the cart ID; rows live in the cart store and are saved after every
// mutation.
type CartHandler struct {
	CK  *cartcookie.Codec
	Svc *cart.Service
}

func NewCartHandler(ck *cartcookie.Codec, svc *cart.Service) *CartHandler {
	return &CartHandler{CK: ck, Svc: svc}
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	VariantID string `json:"variant_id" binding:"required"`
	Qty       int    `json:"qty"`
}

// Add handles POST /api/cart/items
func (h *CartHandler) Add(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid cart request.", validation.FromBindError(err, &req)))
		return
	}

	qty := req.Qty
	if qty == 0 {
		qty = 1
	}
	qty = clamp(qty, 1, 99)

	cartID := h.CK.EnsureCartID(c)
	ledger, err := h.Svc.AddItem(c.Request.Context(), cartID, req.ProductID, req.VariantID, qty)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, h.Svc.Page(ledger))
}

type updateItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	VariantID string `json:"variant_id" binding:"required"`
	Qty       int    `json:"qty"`
}

// Update handles POST /api/cart/items/update. Qty 0 (or less) removes
// the row.
func (h *CartHandler) Update(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid cart request.", validation.FromBindError(err, &req)))
		return
	}

	qty := clamp(req.Qty, 0, 99)

	cartID := h.CK.EnsureCartID(c)
	ledger, err := h.Svc.SetQuantity(c.Request.Context(), cartID, req.ProductID, req.VariantID, qty)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, h.Svc.Page(ledger))
}

type removeItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	VariantID string `json:"variant_id" binding:"required"`
}

// Remove handles POST /api/cart/items/remove. Removing an absent pair
// is a quiet no-op, not an error.
func (h *CartHandler) Remove(c *gin.Context) {
	var req removeItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid cart request.", validation.FromBindError(err, &req)))
		return
	}

	cartID := h.CK.EnsureCartID(c)
	ledger, err := h.Svc.RemoveItem(c.Request.Context(), cartID, req.ProductID, req.VariantID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, h.Svc.Page(ledger))
}

// Clear handles POST /api/cart/clear
func (h *CartHandler) Clear(c *gin.Context) {
	if cartID, ok := h.CK.GetCartID(c); ok {
		if err := h.Svc.Clear(c.Request.Context(), cartID); err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
		h.CK.Clear(c)
	}
	c.JSON(http.StatusOK, h.Svc.Page(nil))
}

// Get handles GET /api/cart
func (h *CartHandler) Get(c *gin.Context) {
	cartID, _ := h.CK.GetCartID(c)
	ledger, err := h.Svc.Load(c.Request.Context(), cartID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, h.Svc.Page(ledger))
}
