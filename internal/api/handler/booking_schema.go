package handler

import "time"

type createBookingRequest struct {
	PetID     string    `json:"pet"        validate:"required"`
	SitterID  string    `json:"sitter"     validate:"required"` // sitter profile id from the directory
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date"   validate:"required"`
	Message   string    `json:"message"`
}
