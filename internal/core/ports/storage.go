package ports

import (
	"context"
	"errors"
	"io"
)

var ErrNoFile = errors.New("no file uploaded")
var ErrUnsupportedMediaType = errors.New("unsupported image type")
var ErrFileTooLarge = errors.New("file too large")

// UploadResult is the single normalized shape every storage backend returns,
// regardless of where the bytes end up (disk, data URI, ...).
type UploadResult struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Storage abstracts the image storage backend.
type Storage interface {
	// Save persists the image bytes and returns an addressable result.
	// contentType has already passed the MIME allow-list.
	Save(ctx context.Context, r io.Reader, size int64, contentType string) (*UploadResult, error)
	// Delete removes a previously stored object by its URL. Deleting an
	// unknown URL is not an error.
	Delete(ctx context.Context, url string) error
}
