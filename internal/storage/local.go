package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local writes product photos under BaseDir, mirroring the key layout
// the S3 backend uses so switching drivers keeps URLs stable in shape.
type Local struct {
	BaseDir   string
	URLPrefix string
}

func NewLocal(baseDir, urlPrefix string) *Local {
	return &Local{BaseDir: baseDir, URLPrefix: urlPrefix}
}

func (l *Local) Put(ctx context.Context, r io.Reader, in ImageUpload) (StoredImage, error) {
	_ = ctx

	if err := validateUpload(in); err != nil {
		return StoredImage{}, err
	}

	key := imageKey(in)
	dstPath := filepath.Join(l.BaseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return StoredImage{}, err
	}

	f, err := os.OpenFile(dstPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return StoredImage{}, err
	}
	defer f.Close()

	if _, err := io.Copy(f, io.LimitReader(r, MaxImageSize)); err != nil {
		return StoredImage{}, err
	}

	url := strings.TrimRight(l.URLPrefix, "/") + "/" + key
	return StoredImage{Key: key, URL: url}, nil
}

func (l *Local) Delete(ctx context.Context, key string) error {
	_ = ctx

	// keys contain slashes; refuse anything that would climb out of BaseDir
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return fmt.Errorf("invalid image key: %s", key)
	}
	return os.Remove(filepath.Join(l.BaseDir, clean))
}

func (l *Local) String() string { return fmt.Sprintf("local(%s)", l.BaseDir) }
