package ports

import (
	"context"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
)

// BookingRepository defines persistence for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Booking, error)
	ListBySitter(ctx context.Context, sitterID string) ([]*domain.Booking, error)
	// ResolvePending flips a pending booking to status in one conditional update.
	// Returns ErrBookingResolved when the booking exists but is no longer pending,
	// so two concurrent resolutions cannot both win.
	ResolvePending(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
}
