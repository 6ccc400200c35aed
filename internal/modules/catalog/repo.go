package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

type ListParams struct {
	Query        string // free-text search over name/description
	CollectionID string
	FeaturedOnly bool
}

func (r *Repo) List(ctx context.Context, in ListParams) ([]Product, error) {
	q := r.db.WithContext(ctx).
		Where("status = ?", StatusActive).
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") })

	if term := strings.TrimSpace(in.Query); term != "" {
		like := "%" + term + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if in.CollectionID != "" {
		q = q.Where("collection_id = ?", in.CollectionID)
	}
	if in.FeaturedOnly {
		q = q.Where("featured = ?", true)
	}

	var items []Product
	err := q.Order("featured DESC, updated_at DESC").Find(&items).Error
	return items, err
}

func (r *Repo) GetBySlug(ctx context.Context, slug string) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&p, "slug = ? AND status = ?", slug, StatusActive).Error
	return p, err
}

func (r *Repo) Get(ctx context.Context, id string) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&p, "id = ?", id).Error
	return p, err
}

// GetVariant loads a single variant together with its owning product,
// used by the cart when snapshotting a line item.
func (r *Repo) GetVariant(ctx context.Context, productID, variantID string) (Product, Variant, error) {
	p, err := r.Get(ctx, productID)
	if err != nil {
		return Product{}, Variant{}, err
	}
	for _, v := range p.Variants {
		if v.ID == variantID {
			return p, v, nil
		}
	}
	return Product{}, Variant{}, gorm.ErrRecordNotFound
}

func (r *Repo) Collections(ctx context.Context) ([]Collection, error) {
	var cols []Collection
	err := r.db.WithContext(ctx).Order("position ASC, name ASC").Find(&cols).Error
	return cols, err
}

func (r *Repo) CreateProduct(ctx context.Context, name, slug, desc, status string, optionsJSON []byte) (Product, error) {
	p := Product{
		ID:          uuid.NewString(),
		Slug:        slug,
		Name:        name,
		Description: desc,
		Status:      status,
		OptionsJSON: optionsJSON,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *Repo) AddVariant(ctx context.Context, productID, sku string, optionsJSON []byte, priceCents, compareAtCents int, currency string, stock int) (Variant, error) {
	v := Variant{
		ID:             uuid.NewString(),
		ProductID:      productID,
		SKU:            sku,
		OptionsJSON:    optionsJSON,
		PriceCents:     priceCents,
		CompareAtCents: compareAtCents,
		Currency:       currency,
		Stock:          stock,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&v).Error; err != nil {
		return Variant{}, err
	}
	return v, nil
}

func (r *Repo) AddImage(ctx context.Context, productID, storageKey, url string, position int) (Image, error) {
	im := Image{
		ID:         uuid.NewString(),
		ProductID:  productID,
		StorageKey: storageKey,
		URL:        url,
		Position:   position,
		CreatedAt:  time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&im).Error; err != nil {
		return Image{}, err
	}
	return im, nil
}

func (r *Repo) CreateCollection(ctx context.Context, name, slug, desc, imageURL string, position int) (Collection, error) {
	c := Collection{
		ID:          uuid.NewString(),
		Slug:        slug,
		Name:        name,
		Description: desc,
		ImageURL:    imageURL,
		Position:    position,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return Collection{}, err
	}
	return c, nil
}
