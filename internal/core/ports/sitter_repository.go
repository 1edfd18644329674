package ports

import (
	"context"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
)

// ListSittersFilter carries all query parameters for the public sitter directory.
type ListSittersFilter struct {
	PetType  domain.PetType // optional: services must contain this type
	Location string         // optional: case-insensitive substring match
	Page     int            // 1-based
	Limit    int            // capped by the service
}

// SitterRepository defines persistence for sitter profiles.
type SitterRepository interface {
	FindByID(ctx context.Context, id string) (*domain.SitterProfile, error)
	FindByUser(ctx context.Context, userID string) (*domain.SitterProfile, error)
	// Upsert creates or replaces the profile keyed on its user id and
	// returns the stored document.
	Upsert(ctx context.Context, profile *domain.SitterProfile) (*domain.SitterProfile, error)
	// List returns a page of profiles matching filter, newest first, and the total count.
	List(ctx context.Context, filter ListSittersFilter) ([]*domain.SitterProfile, int64, error)
}
