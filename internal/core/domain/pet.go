package domain

import (
	"errors"
	"time"
)

// PetType enumerates the animal kinds the marketplace knows about.
type PetType string

const (
	PetDog     PetType = "dog"
	PetCat     PetType = "cat"
	PetBird    PetType = "bird"
	PetFish    PetType = "fish"
	PetRabbit  PetType = "rabbit"
	PetHamster PetType = "hamster"
	PetOther   PetType = "other"
)

var petTypes = map[PetType]struct{}{
	PetDog: {}, PetCat: {}, PetBird: {}, PetFish: {},
	PetRabbit: {}, PetHamster: {}, PetOther: {},
}

// ValidPetType reports whether t is a known pet type.
func ValidPetType(t PetType) bool {
	_, ok := petTypes[t]
	return ok
}

var ErrPetNotFound = errors.New("pet not found")
var ErrInvalidPetType = errors.New("invalid pet type")

// Pet is owned by exactly one user; all writes are scoped to that owner.
type Pet struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	OwnerID     string    `json:"owner" bson:"owner"`
	Name        string    `json:"name" bson:"name"`
	Type        PetType   `json:"type" bson:"type"`
	Breed       string    `json:"breed,omitempty" bson:"breed,omitempty"`
	Age         int       `json:"age,omitempty" bson:"age,omitempty"`
	WeightKg    float64   `json:"weight,omitempty" bson:"weight,omitempty"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
