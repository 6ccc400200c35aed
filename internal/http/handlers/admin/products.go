package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bebeboutique.mx/app/internal/http/middleware"
	"bebeboutique.mx/app/internal/http/validation"
	"bebeboutique.mx/app/internal/modules/catalog"
	"bebeboutique.mx/app/internal/shared/apperr"
	"bebeboutique.mx/app/internal/shared/slug"
	"bebeboutique.mx/app/internal/storage"
)

// ProductsHandler is the token-gated catalog management surface.
type ProductsHandler struct {
	Repo   *catalog.Repo
	Images storage.ImageStore
}

func NewProductsHandler(repo *catalog.Repo, images storage.ImageStore) *ProductsHandler {
	return &ProductsHandler{Repo: repo, Images: images}
}

type createProductRequest struct {
	Name        string              `json:"name" binding:"required,min=2,max=255"`
	Slug        string              `json:"slug" binding:"omitempty,max=191"`
	Description string              `json:"description"`
	Status      string              `json:"status" binding:"omitempty,oneof=active draft archived"`
	Options     []catalog.OptionDef `json:"options"`
}

// Create handles POST /api/admin/products
func (h *ProductsHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid product.", validation.FromBindError(err, &req)))
		return
	}

	s := strings.TrimSpace(req.Slug)
	if s == "" {
		s = slug.FromName(req.Name)
	}
	status := req.Status
	if status == "" {
		status = catalog.StatusDraft
	}

	optsJSON, err := catalog.EncodeOptionDefs(req.Options)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	p, err := h.Repo.CreateProduct(c.Request.Context(), req.Name, s, req.Description, status, optsJSON)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusCreated, p)
}

type addVariantRequest struct {
	SKU            string            `json:"sku" binding:"required,max=64"`
	Options        map[string]string `json:"options"`
	PriceCents     int               `json:"price_cents" binding:"required,gt=0"`
	CompareAtCents int               `json:"compare_at_cents" binding:"omitempty,gte=0"`
	Currency       string            `json:"currency" binding:"omitempty,len=3"`
	Stock          int               `json:"stock" binding:"gte=0"`
}

// AddVariant handles POST /api/admin/products/:id/variants
func (h *ProductsHandler) AddVariant(c *gin.Context) {
	var req addVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid variant.", validation.FromBindError(err, &req)))
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "MXN"
	}

	optsJSON, err := json.Marshal(req.Options)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	v, err := h.Repo.AddVariant(c.Request.Context(), c.Param("id"), req.SKU, optsJSON,
		req.PriceCents, req.CompareAtCents, currency, req.Stock)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusCreated, v)
}

// UploadImage handles POST /api/admin/products/:id/images (multipart
// field "image"), pushing the file through the configured storage
// backend.
func (h *ProductsHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("Image file is required.", map[string]string{"image": "required"}))
		return
	}

	f, err := fh.Open()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	defer f.Close()

	res, err := h.Images.Put(c.Request.Context(), f, storage.ImageUpload{
		ProductID:   c.Param("id"),
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	})
	if errors.Is(err, storage.ErrUnsupportedImage) {
		middleware.Fail(c, apperr.InvalidErr("Only PNG, JPEG, WebP or GIF images are accepted.", map[string]string{"image": "unsupported type"}))
		return
	}
	if errors.Is(err, storage.ErrImageTooLarge) {
		middleware.Fail(c, apperr.InvalidErr("Image must be 5 MB or smaller.", map[string]string{"image": "too large"}))
		return
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	position := 0
	if p, err2 := h.Repo.Get(c.Request.Context(), c.Param("id")); err2 == nil {
		position = len(p.Images)
	}

	im, err := h.Repo.AddImage(c.Request.Context(), c.Param("id"), res.Key, res.URL, position)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusCreated, im)
}
