package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bebeboutique.mx/app/internal/http/cartcookie"
	"bebeboutique.mx/app/internal/http/middleware"
	"bebeboutique.mx/app/internal/modules/cart"
	"bebeboutique.mx/app/internal/shared/apperr"
)

// CartBadgeHandler serves the item count for the header badge without
// pricing the whole cart.
type CartBadgeHandler struct {
	CK  *cartcookie.Codec
	Svc *cart.Service
}

func NewCartBadgeHandler(ck *cartcookie.Codec, svc *cart.Service) *CartBadgeHandler {
	return &CartBadgeHandler{CK: ck, Svc: svc}
}

// Count handles GET /api/cart/count
func (h *CartBadgeHandler) Count(c *gin.Context) {
	cartID, _ := h.CK.GetCartID(c)
	n, err := h.Svc.Count(c.Request.Context(), cartID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}
