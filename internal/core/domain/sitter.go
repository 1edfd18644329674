package domain

import (
	"errors"
	"time"
)

var ErrSitterNotFound = errors.New("sitter profile not found")

// SitterProfile is the public service listing of a user with the sitter role.
// At most one profile exists per user (unique index on user).
type SitterProfile struct {
	ID             string      `json:"id" bson:"_id,omitempty"`
	UserID         string      `json:"user" bson:"user"`
	Bio            string      `json:"bio,omitempty" bson:"bio,omitempty"`
	Services       []PetType   `json:"services" bson:"services"`
	AvailableDates []time.Time `json:"available_dates,omitempty" bson:"available_dates,omitempty"`
	RatePerDay     float64     `json:"rate_per_day,omitempty" bson:"rate_per_day,omitempty"`
	Location       string      `json:"location,omitempty" bson:"location,omitempty"`
	ImageURL       string      `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt      time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at" bson:"updated_at"`
}
