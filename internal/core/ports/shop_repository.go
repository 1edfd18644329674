package ports

import (
	"context"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
)

// ProductRepository defines persistence for the admin-managed catalogue.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, id string, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	// DecrementStock subtracts qty from the product's stock.
	DecrementStock(ctx context.Context, id string, qty int) error
}

// OrderRepository defines persistence for customer orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
}
