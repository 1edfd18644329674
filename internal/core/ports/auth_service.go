package ports

import (
	"context"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
)

// RegisterInput carries a self-registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string // "user" (default) or "sitter"
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	UpdateAvatar(ctx context.Context, userID, avatar string) (*domain.User, error)
}
