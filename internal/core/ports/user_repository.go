package ports

import (
	"context"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByIDs returns the users for the given ids, keyed by id.
	// Missing ids are simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
	UpdateAvatar(ctx context.Context, id, avatar string) (*domain.User, error)
}
