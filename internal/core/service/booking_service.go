package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
	"github.com/petsitting/pet-sitting-system/internal/core/ports"
)

// BookingService implements the booking workflow: owners request care for a
// pet, the referenced sitter resolves the request.
type BookingService struct {
	bookings ports.BookingRepository
	sitters  ports.SitterRepository
	pets     ports.PetRepository
	users    ports.UserRepository
	now      func() time.Time
	logger   zerolog.Logger
}

func NewBookingService(
	bookings ports.BookingRepository,
	sitters ports.SitterRepository,
	pets ports.PetRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		sitters:  sitters,
		pets:     pets,
		users:    users,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   logger,
	}
}

// Create persists a pending booking. The caller supplies the public
// SitterProfile id; it is resolved to the owning user id here so the stored
// sitter reference always points at a User record.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*ports.BookingView, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, domain.ErrInvalidDateRange
	}
	if input.StartDate.Before(s.now().Truncate(24 * time.Hour)) {
		return nil, domain.ErrInvalidDateRange
	}

	profile, err := s.sitters.FindByID(ctx, input.SitterProfileID)
	if err != nil {
		return nil, err
	}

	pet, err := s.pets.FindByID(ctx, input.PetID)
	if err != nil {
		return nil, err
	}
	if pet.OwnerID != input.OwnerID {
		return nil, domain.ErrForbidden
	}

	now := s.now()
	booking := &domain.Booking{
		PetID:     input.PetID,
		OwnerID:   input.OwnerID,
		SitterID:  profile.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Status:    domain.BookingPending,
		Message:   input.Message,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", input.OwnerID).Msg("failed to create booking")
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", created.ID).
		Str("owner_id", created.OwnerID).
		Str("sitter_id", created.SitterID).
		Msg("booking created")

	view, err := s.toView(ctx, created)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *BookingService) ListMine(ctx context.Context, ownerID string) ([]ports.BookingView, error) {
	bookings, err := s.bookings.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, bookings)
}

func (s *BookingService) ListReceived(ctx context.Context, sitterID string) ([]ports.BookingView, error) {
	bookings, err := s.bookings.ListBySitter(ctx, sitterID)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, bookings)
}

// Resolve transitions a pending booking to accepted or rejected. The caller
// must be the booking's sitter; ownership is checked after existence so a
// missing booking reads as 404-not-403. The flip itself is conditional on
// the pending status, so the second of two racing resolutions conflicts.
func (s *BookingService) Resolve(ctx context.Context, bookingID, callerID string, status domain.BookingStatus) (*ports.BookingView, error) {
	if !domain.BookingPending.CanTransitionTo(status) {
		return nil, domain.ErrBookingResolved
	}

	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.SitterID != callerID {
		return nil, domain.ErrForbidden
	}
	if booking.Status != domain.BookingPending {
		return nil, domain.ErrBookingResolved
	}

	updated, err := s.bookings.ResolvePending(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", bookingID).
		Str("status", string(status)).
		Msg("booking resolved")

	return s.toView(ctx, updated)
}

func (s *BookingService) toViews(ctx context.Context, bookings []*domain.Booking) ([]ports.BookingView, error) {
	userIDs := make([]string, 0, len(bookings)*2)
	petIDs := make([]string, 0, len(bookings))
	for _, b := range bookings {
		userIDs = append(userIDs, b.OwnerID, b.SitterID)
		petIDs = append(petIDs, b.PetID)
	}

	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	pets, err := s.pets.FindByIDs(ctx, petIDs)
	if err != nil {
		return nil, err
	}

	views := make([]ports.BookingView, len(bookings))
	for i, b := range bookings {
		views[i] = composeBookingView(b, users[b.OwnerID], users[b.SitterID], pets[b.PetID])
	}
	return views, nil
}

func (s *BookingService) toView(ctx context.Context, b *domain.Booking) (*ports.BookingView, error) {
	views, err := s.toViews(ctx, []*domain.Booking{b})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func composeBookingView(b *domain.Booking, owner, sitter *domain.User, pet *domain.Pet) ports.BookingView {
	view := ports.BookingView{Booking: *b}
	if owner != nil {
		view.Owner = ports.UserSummary{ID: owner.ID, Name: owner.Name, Email: owner.Email}
	}
	if sitter != nil {
		view.Sitter = ports.UserSummary{ID: sitter.ID, Name: sitter.Name, Email: sitter.Email}
	}
	if pet != nil {
		view.Pet = ports.PetSummary{ID: pet.ID, Name: pet.Name, Type: pet.Type}
	}
	return view
}
