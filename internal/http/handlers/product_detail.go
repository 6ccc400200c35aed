package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bebeboutique.mx/app/internal/http/middleware"
	"bebeboutique.mx/app/internal/modules/catalog"
	"bebeboutique.mx/app/internal/shared/apperr"
)

type ProductDetailHandler struct {
	Svc *catalog.Service
}

func NewProductDetailHandler(svc *catalog.Service) *ProductDetailHandler {
	return &ProductDetailHandler{Svc: svc}
}

// Get handles GET /api/products/:slug. Option picks ride in query
// params prefixed with "opt.", e.g. ?opt.Color=Rosa&opt.Talla=3M; the
// response carries the availability map and resolved price for exactly
// that partial selection.
func (h *ProductDetailHandler) Get(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	p, err := h.Svc.Repo().GetBySlug(c.Request.Context(), slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	sel := selectionFromQuery(c)
	c.JSON(http.StatusOK, h.Svc.Detail(&p, sel))
}

func selectionFromQuery(c *gin.Context) catalog.Selection {
	sel := catalog.Selection{}
	for key, vals := range c.Request.URL.Query() {
		name, ok := strings.CutPrefix(key, "opt.")
		if !ok || name == "" || len(vals) == 0 {
			continue
		}
		if v := vals[0]; v != "" {
			sel[name] = v
		}
	}
	return sel
}
