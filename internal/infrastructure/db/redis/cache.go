package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/petsitting/pet-sitting-system/internal/api/metrics"
	"github.com/petsitting/pet-sitting-system/internal/core/ports"
)

const directoryTTL = 30 * time.Second

// DirectoryCache is a short-TTL page cache in front of the public sitter
// directory. Key format: sitters:<pet_type>:<location>:<page>:<limit>.
// Entries are not invalidated on profile edits; the TTL bounds staleness.
type DirectoryCache struct {
	client *redis.Client
}

// NewDirectoryCache creates a DirectoryCache wrapping the given Redis client.
func NewDirectoryCache(client *redis.Client) *DirectoryCache {
	return &DirectoryCache{client: client}
}

// Get returns the cached page for filter, or nil on a miss.
func (c *DirectoryCache) Get(ctx context.Context, filter ports.ListSittersFilter) (*ports.ListSittersResult, error) {
	raw, err := c.client.Get(ctx, c.key(filter)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.DirectoryCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("directory cache get: %w", err)
	}

	var result ports.ListSittersResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("directory cache decode: %w", err)
	}
	metrics.DirectoryCacheTotal.WithLabelValues("hit").Inc()
	return &result, nil
}

// Set stores the page for filter, expiring after directoryTTL.
func (c *DirectoryCache) Set(ctx context.Context, filter ports.ListSittersFilter, result *ports.ListSittersResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("directory cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(filter), raw, directoryTTL).Err()
}

func (c *DirectoryCache) key(filter ports.ListSittersFilter) string {
	return fmt.Sprintf("sitters:%s:%s:%d:%d", filter.PetType, filter.Location, filter.Page, filter.Limit)
}
