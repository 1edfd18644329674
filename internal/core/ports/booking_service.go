package ports

import (
	"context"
	"time"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
)

// CreateBookingInput carries a pet owner's care request. SitterProfileID is
// the public profile id from the directory; the service resolves it to the
// sitter's user id before persisting.
type CreateBookingInput struct {
	OwnerID         string
	PetID           string
	SitterProfileID string
	StartDate       time.Time
	EndDate         time.Time
	Message         string
}

// PetSummary is the display slice of a pet embedded in booking views.
type PetSummary struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Type domain.PetType `json:"type"`
}

// BookingView is a booking joined with pet/owner/sitter display fields.
type BookingView struct {
	Booking domain.Booking `json:"booking"`
	Pet     PetSummary     `json:"pet"`
	Owner   UserSummary    `json:"owner"`
	Sitter  UserSummary    `json:"sitter"`
}

// BookingService implements the booking workflow.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*BookingView, error)
	ListMine(ctx context.Context, ownerID string) ([]BookingView, error)
	ListReceived(ctx context.Context, sitterID string) ([]BookingView, error)
	// Resolve transitions a pending booking to accepted or rejected.
	// Only the booking's sitter may call it; a non-pending booking conflicts.
	Resolve(ctx context.Context, bookingID, callerID string, status domain.BookingStatus) (*BookingView, error)
}
