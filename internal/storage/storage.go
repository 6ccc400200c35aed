package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// MaxImageSize caps product photo uploads at 5 MiB.
const MaxImageSize = 5 << 20

var (
	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrImageTooLarge    = errors.New("image exceeds size limit")
)

// ImageUpload describes one product photo being stored. ProductID is
// required; keys are scoped under it so a product's photos live together.
type ImageUpload struct {
	ProductID   string
	Filename    string
	ContentType string
	Size        int64
}

type StoredImage struct {
	Key string
	URL string
}

// ImageStore persists product photos and serves back a public URL.
type ImageStore interface {
	Put(ctx context.Context, r io.Reader, in ImageUpload) (StoredImage, error)
	Delete(ctx context.Context, key string) error
}

// extByContentType holds the image types the shop accepts.
var extByContentType = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

func validateUpload(in ImageUpload) error {
	if strings.TrimSpace(in.ProductID) == "" {
		return fmt.Errorf("image upload: product id required")
	}
	if _, ok := extByContentType[in.ContentType]; !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedImage, in.ContentType)
	}
	if in.Size > MaxImageSize {
		return fmt.Errorf("%w: %d bytes", ErrImageTooLarge, in.Size)
	}
	return nil
}

// imageKey builds products/<product-id>/<uuid><ext>. The extension
// comes from the declared content type, not the client filename.
func imageKey(in ImageUpload) string {
	return "products/" + in.ProductID + "/" + uuid.NewString() + extByContentType[in.ContentType]
}
