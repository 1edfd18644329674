package ports

import (
	"context"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
)

// PetRepository defines persistence for pets. Update and Delete filter on
// both id and owner so a foreign pet behaves exactly like a missing one.
type PetRepository interface {
	Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	FindByID(ctx context.Context, id string) (*domain.Pet, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Pet, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Pet, error)
	Update(ctx context.Context, id, ownerID string, pet *domain.Pet) (*domain.Pet, error)
	Delete(ctx context.Context, id, ownerID string) error
}
