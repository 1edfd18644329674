package storage

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/petsitting/pet-sitting-system/internal/core/ports"
)

// InlineStorage encodes images as data URIs instead of writing them
// anywhere. Useful for ephemeral deployments with no writable filesystem;
// the returned URL embeds the image itself.
type InlineStorage struct{}

func NewInlineStorage() *InlineStorage {
	return &InlineStorage{}
}

func (s *InlineStorage) Save(_ context.Context, r io.Reader, size int64, contentType string) (*ports.UploadResult, error) {
	if !AllowedType(contentType) {
		return nil, ports.ErrUnsupportedMediaType
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(raw)
	return &ports.UploadResult{
		URL:         "data:" + contentType + ";base64," + encoded,
		Key:         uuid.NewString(),
		ContentType: contentType,
		Size:        int64(len(raw)),
	}, nil
}

// Delete is a no-op: data URIs live only in the referencing document.
func (s *InlineStorage) Delete(_ context.Context, _ string) error {
	return nil
}
