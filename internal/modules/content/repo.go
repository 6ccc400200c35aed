package content

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) ListPublished(ctx context.Context) ([]BlogPost, error) {
	var posts []BlogPost
	err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("published_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *Repo) GetBySlug(ctx context.Context, slug string) (BlogPost, error) {
	var p BlogPost
	err := r.db.WithContext(ctx).
		First(&p, "slug = ? AND published = ?", slug, true).Error
	return p, err
}

func (r *Repo) Create(ctx context.Context, slug, title, excerpt, body, imageURL string, published bool) (BlogPost, error) {
	now := time.Now()
	p := BlogPost{
		ID:        uuid.NewString(),
		Slug:      slug,
		Title:     title,
		Excerpt:   excerpt,
		Body:      body,
		ImageURL:  imageURL,
		Published: published,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if published {
		p.PublishedAt = &now
	}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return BlogPost{}, err
	}
	return p, nil
}
