// Package storage provides the image storage backends behind the upload
// endpoint. Every backend returns the same normalized ports.UploadResult, so
// callers never inspect backend-specific response shapes.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/petsitting/pet-sitting-system/internal/core/ports"
)

var extByMIME = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// AllowedType reports whether contentType is on the image allow-list.
func AllowedType(contentType string) bool {
	_, ok := extByMIME[contentType]
	return ok
}

// DiskStorage writes images under a local directory served as static files
// at publicPrefix (e.g. /uploads).
type DiskStorage struct {
	dir          string
	publicPrefix string
}

// NewDiskStorage creates the upload directory if needed and returns a
// DiskStorage rooted there.
func NewDiskStorage(dir, publicPrefix string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStorage{dir: dir, publicPrefix: strings.TrimSuffix(publicPrefix, "/")}, nil
}

func (s *DiskStorage) Save(_ context.Context, r io.Reader, size int64, contentType string) (*ports.UploadResult, error) {
	ext, ok := extByMIME[contentType]
	if !ok {
		return nil, ports.ErrUnsupportedMediaType
	}

	key := uuid.NewString() + ext
	path := filepath.Join(s.dir, key)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	written, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("write upload file: %w", err)
	}

	return &ports.UploadResult{
		URL:         s.publicPrefix + "/" + key,
		Key:         key,
		ContentType: contentType,
		Size:        written,
	}, nil
}

// Delete removes the stored file behind url. URLs outside the public prefix
// and already-missing files are ignored.
func (s *DiskStorage) Delete(_ context.Context, url string) error {
	key, ok := strings.CutPrefix(url, s.publicPrefix+"/")
	if !ok || key == "" || strings.Contains(key, "/") || strings.Contains(key, "..") {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload file: %w", err)
	}
	return nil
}

// Dir returns the directory static files are served from.
func (s *DiskStorage) Dir() string {
	return s.dir
}
