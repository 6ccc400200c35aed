package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bebeboutique.mx/app/internal/http/middleware"
	"bebeboutique.mx/app/internal/modules/catalog"
	"bebeboutique.mx/app/internal/shared/apperr"
	"bebeboutique.mx/app/pkg/view"
)

// ProductsHandler serves the storefront catalog listings.
type ProductsHandler struct {
	Svc *catalog.Service
}

func NewProductsHandler(svc *catalog.Service) *ProductsHandler {
	return &ProductsHandler{Svc: svc}
}

// List handles GET /api/products?q=&collection=&featured=
func (h *ProductsHandler) List(c *gin.Context) {
	params := catalog.ListParams{
		Query:        strings.TrimSpace(c.Query("q")),
		CollectionID: strings.TrimSpace(c.Query("collection")),
		FeaturedOnly: c.Query("featured") == "true",
	}

	items, err := h.Svc.Repo().List(c.Request.Context(), params)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	cards := make([]view.ProductCard, 0, len(items))
	for i := range items {
		cards = append(cards, h.Svc.Card(&items[i]))
	}

	c.JSON(http.StatusOK, gin.H{"products": cards, "count": len(cards)})
}

// Collections handles GET /api/collections
func (h *ProductsHandler) Collections(c *gin.Context) {
	cols, err := h.Svc.Repo().Collections(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"collections": cols})
}
