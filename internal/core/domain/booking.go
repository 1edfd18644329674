package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a care request.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingAccepted  BookingStatus = "accepted"
	BookingRejected  BookingStatus = "rejected"
	BookingCompleted BookingStatus = "completed"
)

// validTransitions defines the allowed state machine transitions.
// "completed" is reachable only from "accepted"; no endpoint drives that edge,
// it is reserved for an external workflow step.
var validTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:  {BookingAccepted, BookingRejected},
	BookingAccepted: {BookingCompleted},
}

var ErrBookingNotFound = errors.New("booking not found")
var ErrBookingResolved = errors.New("booking already resolved")
var ErrInvalidDateRange = errors.New("invalid booking date range")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking links a pet, its owner, and a sitter over a date range.
// SitterID always references the sitter's User record, never their profile.
type Booking struct {
	ID        string        `json:"id" bson:"_id,omitempty"`
	PetID     string        `json:"pet" bson:"pet"`
	OwnerID   string        `json:"owner" bson:"owner"`
	SitterID  string        `json:"sitter" bson:"sitter"`
	StartDate time.Time     `json:"start_date" bson:"start_date"`
	EndDate   time.Time     `json:"end_date" bson:"end_date"`
	Status    BookingStatus `json:"status" bson:"status"`
	Message   string        `json:"message,omitempty" bson:"message,omitempty"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}
