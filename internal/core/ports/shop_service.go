package ports

import (
	"context"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
)

// ProductInput carries the admin-editable fields of a catalogue item.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
	Category    string
	Stock       int
}

// OrderItemInput is one line of a new order.
type OrderItemInput struct {
	ProductID string
	Quantity  int
}

// ShopService implements the vestigial e-commerce sub-domain. Catalogue
// writes go through the admin guard at the transport layer.
type ShopService interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, input ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	// PlaceOrder validates product existence and stock, prices the order from
	// the catalogue, persists it, then decrements stock per item.
	PlaceOrder(ctx context.Context, userID string, items []OrderItemInput) (*domain.Order, error)
	ListMyOrders(ctx context.Context, userID string) ([]*domain.Order, error)
}
