package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
	"github.com/petsitting/pet-sitting-system/internal/core/ports"
)

// bookingFixture wires a booking service over seeded stubs: an owner with
// one pet, and a sitter with a directory profile.
type bookingFixture struct {
	svc      *BookingService
	bookings *stubBookingRepo
	owner    *domain.User
	sitter   *domain.User
	pet      *domain.Pet
	profile  *domain.SitterProfile
	now      time.Time
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	users := newStubUserRepo()
	owner := users.addUser("user-owner", "Olivia", "olivia@example.com", domain.RoleUser)
	sitter := users.addUser("user-sitter", "Sam", "sam@example.com", domain.RoleSitter)

	pets := newStubPetRepo()
	pet, err := pets.Create(context.Background(), &domain.Pet{OwnerID: owner.ID, Name: "Rex", Type: domain.PetDog})
	if err != nil {
		t.Fatalf("seed pet: %v", err)
	}

	sitters := newStubSitterRepo()
	profile, err := sitters.Upsert(context.Background(), &domain.SitterProfile{
		UserID:   sitter.ID,
		Services: []domain.PetType{domain.PetDog},
	})
	if err != nil {
		t.Fatalf("seed sitter profile: %v", err)
	}

	bookings := newStubBookingRepo()
	svc := NewBookingService(bookings, sitters, pets, users, discardLogger)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return &bookingFixture{
		svc:      svc,
		bookings: bookings,
		owner:    owner,
		sitter:   sitter,
		pet:      pet,
		profile:  profile,
		now:      now,
	}
}

func (f *bookingFixture) input() ports.CreateBookingInput {
	return ports.CreateBookingInput{
		OwnerID:         f.owner.ID,
		PetID:           f.pet.ID,
		SitterProfileID: f.profile.ID,
		StartDate:       f.now.Add(24 * time.Hour),
		EndDate:         f.now.Add(72 * time.Hour),
		Message:         "please watch Rex",
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	f := newBookingFixture(t)

	view, err := f.svc.Create(context.Background(), f.input())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.Booking.Status != domain.BookingPending {
		t.Errorf("new booking status = %q, want %q", view.Booking.Status, domain.BookingPending)
	}
	// The stored sitter must be the profile's owning user, not the profile.
	if view.Booking.SitterID != f.sitter.ID {
		t.Errorf("sitter id = %q, want user id %q", view.Booking.SitterID, f.sitter.ID)
	}
	if view.Pet.Name != "Rex" {
		t.Errorf("view must embed pet display fields, got %+v", view.Pet)
	}
	if view.Owner.Name != "Olivia" || view.Sitter.Name != "Sam" {
		t.Errorf("view must embed owner/sitter display fields, got %+v / %+v", view.Owner, view.Sitter)
	}
}

func TestBookingService_Create_EndBeforeStart(t *testing.T) {
	f := newBookingFixture(t)

	input := f.input()
	input.EndDate = input.StartDate.Add(-time.Hour)

	_, err := f.svc.Create(context.Background(), input)
	if !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestBookingService_Create_StartInPast(t *testing.T) {
	f := newBookingFixture(t)

	input := f.input()
	input.StartDate = f.now.Add(-48 * time.Hour)
	input.EndDate = f.now.Add(24 * time.Hour)

	_, err := f.svc.Create(context.Background(), input)
	if !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestBookingService_Create_StartEarlierToday_Allowed(t *testing.T) {
	f := newBookingFixture(t)

	// 08:00 on the current day is before "now" (12:00) but still today.
	input := f.input()
	input.StartDate = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	if _, err := f.svc.Create(context.Background(), input); err != nil {
		t.Fatalf("same-day start must be accepted: %v", err)
	}
}

func TestBookingService_Create_UnknownSitterProfile(t *testing.T) {
	f := newBookingFixture(t)

	input := f.input()
	input.SitterProfileID = "missing"

	_, err := f.svc.Create(context.Background(), input)
	if !errors.Is(err, domain.ErrSitterNotFound) {
		t.Fatalf("expected ErrSitterNotFound, got %v", err)
	}
}

func TestBookingService_Create_ForeignPet(t *testing.T) {
	f := newBookingFixture(t)

	input := f.input()
	input.OwnerID = f.sitter.ID // someone else's pet

	_, err := f.svc.Create(context.Background(), input)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestBookingService_Resolve_Accept(t *testing.T) {
	f := newBookingFixture(t)

	created, err := f.svc.Create(context.Background(), f.input())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	view, err := f.svc.Resolve(context.Background(), created.Booking.ID, f.sitter.ID, domain.BookingAccepted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Booking.Status != domain.BookingAccepted {
		t.Errorf("status = %q, want %q", view.Booking.Status, domain.BookingAccepted)
	}
}

func TestBookingService_Resolve_OnlySitterMayResolve(t *testing.T) {
	f := newBookingFixture(t)

	created, _ := f.svc.Create(context.Background(), f.input())

	_, err := f.svc.Resolve(context.Background(), created.Booking.ID, f.owner.ID, domain.BookingAccepted)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("owner resolving their own request must be forbidden, got %v", err)
	}
}

func TestBookingService_Resolve_NotFound(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Resolve(context.Background(), "missing", f.sitter.ID, domain.BookingAccepted)
	if !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestBookingService_Resolve_SecondResolutionConflicts(t *testing.T) {
	f := newBookingFixture(t)

	created, _ := f.svc.Create(context.Background(), f.input())

	if _, err := f.svc.Resolve(context.Background(), created.Booking.ID, f.sitter.ID, domain.BookingAccepted); err != nil {
		t.Fatalf("first resolution: %v", err)
	}

	_, err := f.svc.Resolve(context.Background(), created.Booking.ID, f.sitter.ID, domain.BookingRejected)
	if !errors.Is(err, domain.ErrBookingResolved) {
		t.Fatalf("expected ErrBookingResolved, got %v", err)
	}
}

func TestBookingService_Resolve_RejectsNonResolutionStatus(t *testing.T) {
	f := newBookingFixture(t)

	created, _ := f.svc.Create(context.Background(), f.input())

	_, err := f.svc.Resolve(context.Background(), created.Booking.ID, f.sitter.ID, domain.BookingCompleted)
	if !errors.Is(err, domain.ErrBookingResolved) {
		t.Fatalf("pending → completed is not a resolution, got %v", err)
	}
}

func TestBookingService_Listings(t *testing.T) {
	f := newBookingFixture(t)

	created, err := f.svc.Create(context.Background(), f.input())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	mine, err := f.svc.ListMine(context.Background(), f.owner.ID)
	if err != nil {
		t.Fatalf("ListMine: %v", err)
	}
	if len(mine) != 1 || mine[0].Booking.ID != created.Booking.ID {
		t.Errorf("owner listing should contain the booking, got %+v", mine)
	}

	received, err := f.svc.ListReceived(context.Background(), f.sitter.ID)
	if err != nil {
		t.Fatalf("ListReceived: %v", err)
	}
	if len(received) != 1 || received[0].Booking.ID != created.Booking.ID {
		t.Errorf("sitter listing should contain the booking, got %+v", received)
	}

	if got, _ := f.svc.ListReceived(context.Background(), f.owner.ID); len(got) != 0 {
		t.Errorf("owner is not the sitter, received listing should be empty, got %+v", got)
	}
}
