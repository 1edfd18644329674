package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/petsitting/pet-sitting-system/internal/api/middleware"
	"github.com/petsitting/pet-sitting-system/internal/core/domain"
	"github.com/petsitting/pet-sitting-system/internal/core/ports"
)

type stubBookingService struct {
	createFn       func(ctx context.Context, input ports.CreateBookingInput) (*ports.BookingView, error)
	listMineFn     func(ctx context.Context, ownerID string) ([]ports.BookingView, error)
	listReceivedFn func(ctx context.Context, sitterID string) ([]ports.BookingView, error)
	resolveFn      func(ctx context.Context, bookingID, callerID string, status domain.BookingStatus) (*ports.BookingView, error)
}

func (s *stubBookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*ports.BookingView, error) {
	return s.createFn(ctx, input)
}

func (s *stubBookingService) ListMine(ctx context.Context, ownerID string) ([]ports.BookingView, error) {
	return s.listMineFn(ctx, ownerID)
}

func (s *stubBookingService) ListReceived(ctx context.Context, sitterID string) ([]ports.BookingView, error) {
	return s.listReceivedFn(ctx, sitterID)
}

func (s *stubBookingService) Resolve(ctx context.Context, bookingID, callerID string, status domain.BookingStatus) (*ports.BookingView, error) {
	return s.resolveFn(ctx, bookingID, callerID, status)
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID, role string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserID, userID)
	c.Set(middleware.ContextRole, role)
	return c
}

func TestBookingHandler_Create(t *testing.T) {
	e := newTestEcho()
	var got ports.CreateBookingInput
	h := NewBookingHandler(&stubBookingService{
		createFn: func(_ context.Context, input ports.CreateBookingInput) (*ports.BookingView, error) {
			got = input
			return &ports.BookingView{Booking: domain.Booking{ID: "booking-1", Status: domain.BookingPending}}, nil
		},
	})

	body := strings.NewReader(`{
		"pet": "pet-1",
		"sitter": "profile-1",
		"start_date": "2026-09-10T09:00:00Z",
		"end_date": "2026-09-12T18:00:00Z",
		"message": "Rex needs two walks a day"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user-owner", "user")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got.OwnerID != "user-owner" || got.PetID != "pet-1" || got.SitterProfileID != "profile-1" {
		t.Fatalf("unexpected input passed to service: %+v", got)
	}
}

func TestBookingHandler_Create_MissingDates(t *testing.T) {
	e := newTestEcho()
	h := NewBookingHandler(&stubBookingService{
		createFn: func(context.Context, ports.CreateBookingInput) (*ports.BookingView, error) {
			t.Fatal("service must not be called on invalid input")
			return nil, nil
		},
	})

	body := strings.NewReader(`{"pet":"pet-1","sitter":"profile-1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user-owner", "user")

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestBookingHandler_Accept(t *testing.T) {
	e := newTestEcho()
	h := NewBookingHandler(&stubBookingService{
		resolveFn: func(_ context.Context, bookingID, callerID string, status domain.BookingStatus) (*ports.BookingView, error) {
			if bookingID != "booking-1" || callerID != "user-sitter" || status != domain.BookingAccepted {
				t.Fatalf("unexpected resolve call: %s %s %s", bookingID, callerID, status)
			}
			return &ports.BookingView{Booking: domain.Booking{ID: bookingID, Status: status}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/booking-1/accept", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user-sitter", "sitter")
	c.SetParamNames("id")
	c.SetParamValues("booking-1")

	if err := h.Accept(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	booking, _ := resp["booking"].(map[string]any)
	if booking["status"] != "accepted" {
		t.Fatalf("expected accepted status in response, got %+v", resp)
	}
}

func TestBookingHandler_Reject_ConflictPropagates(t *testing.T) {
	e := newTestEcho()
	h := NewBookingHandler(&stubBookingService{
		resolveFn: func(_ context.Context, _, _ string, status domain.BookingStatus) (*ports.BookingView, error) {
			if status != domain.BookingRejected {
				t.Fatalf("expected rejected transition, got %s", status)
			}
			return nil, domain.ErrBookingResolved
		},
	})

	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/booking-1/reject", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user-sitter", "sitter")
	c.SetParamNames("id")
	c.SetParamValues("booking-1")

	if err := h.Reject(c); !errors.Is(err, domain.ErrBookingResolved) {
		t.Fatalf("expected ErrBookingResolved to propagate, got %v", err)
	}
}

func TestBookingHandler_ListMine(t *testing.T) {
	e := newTestEcho()
	h := NewBookingHandler(&stubBookingService{
		listMineFn: func(_ context.Context, ownerID string) ([]ports.BookingView, error) {
			if ownerID != "user-owner" {
				t.Fatalf("unexpected owner id %q", ownerID)
			}
			return []ports.BookingView{{Booking: domain.Booking{ID: "booking-1"}}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/my", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user-owner", "user")

	if err := h.ListMine(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var views []ports.BookingView
	if err := json.Unmarshal(rec.Body.Bytes(), &views); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(views) != 1 || views[0].Booking.ID != "booking-1" {
		t.Fatalf("unexpected listing: %+v", views)
	}
}

func TestBookingHandler_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	h := NewBookingHandler(&stubBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/received", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ListReceived(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
