package ports

import (
	"context"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
)

// PetInput carries the mutable fields of a pet record.
type PetInput struct {
	Name        string
	Type        domain.PetType
	Breed       string
	Age         int
	WeightKg    float64
	Description string
	ImageURL    string
}

// PetService exposes owner-scoped pet CRUD.
type PetService interface {
	Create(ctx context.Context, ownerID string, input PetInput) (*domain.Pet, error)
	ListMine(ctx context.Context, ownerID string) ([]*domain.Pet, error)
	Update(ctx context.Context, ownerID, petID string, input PetInput) (*domain.Pet, error)
	Delete(ctx context.Context, ownerID, petID string) error
}
