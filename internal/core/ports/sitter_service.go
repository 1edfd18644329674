package ports

import (
	"context"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
)

// SitterProfileInput carries the fields a sitter may edit on their own listing.
type SitterProfileInput struct {
	Bio        string
	Services   []domain.PetType
	RatePerDay float64
	Location   string
	ImageURL   string
}

// SitterView is a profile joined with the owning user's display fields.
type SitterView struct {
	Profile domain.SitterProfile `json:"profile"`
	User    UserSummary          `json:"user"`
}

// UserSummary is the public slice of a user embedded in joined views.
type UserSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// ListSittersResult is one page of the public directory.
type ListSittersResult struct {
	Sitters    []SitterView `json:"sitters"`
	Total      int64        `json:"total"`
	Page       int          `json:"current_page"`
	TotalPages int          `json:"total_pages"`
}

// SitterService exposes the public directory and the sitter's own profile.
type SitterService interface {
	List(ctx context.Context, filter ListSittersFilter) (*ListSittersResult, error)
	Get(ctx context.Context, id string) (*SitterView, error)
	GetMine(ctx context.Context, userID string) (*SitterView, error)
	// UpsertMine creates the profile on first edit (create-if-absent keyed by user).
	UpsertMine(ctx context.Context, userID string, input SitterProfileInput) (*SitterView, error)
}
