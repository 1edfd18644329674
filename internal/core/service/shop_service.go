package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
	"github.com/petsitting/pet-sitting-system/internal/core/ports"
)

// ShopService implements the admin-managed catalogue and customer orders.
type ShopService struct {
	products ports.ProductRepository
	orders   ports.OrderRepository
	logger   zerolog.Logger
}

func NewShopService(products ports.ProductRepository, orders ports.OrderRepository, logger zerolog.Logger) *ShopService {
	return &ShopService{products: products, orders: orders, logger: logger}
}

func (s *ShopService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.products.List(ctx)
}

func (s *ShopService) CreateProduct(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	return s.products.Create(ctx, &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		Stock:       input.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *ShopService) UpdateProduct(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error) {
	return s.products.Update(ctx, id, &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		Stock:       input.Stock,
		UpdatedAt:   time.Now().UTC(),
	})
}

func (s *ShopService) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

// PlaceOrder prices every line from the catalogue, persists the order, then
// decrements stock per item. Stock checks and the decrements are separate
// document writes, so over-selling under heavy concurrency is possible; the
// catalogue is vestigial and this mirrors the original behavior.
func (s *ShopService) PlaceOrder(ctx context.Context, userID string, items []ports.OrderItemInput) (*domain.Order, error) {
	var total float64
	lines := make([]domain.OrderItem, 0, len(items))

	for _, item := range items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product.Stock < item.Quantity {
			return nil, domain.ErrInsufficientStock
		}
		total += product.Price * float64(item.Quantity)
		lines = append(lines, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     product.Price,
		})
	}

	now := time.Now().UTC()
	order, err := s.orders.Create(ctx, &domain.Order{
		UserID:    userID,
		Items:     lines,
		Total:     total,
		Status:    "pending",
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err := s.products.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
			s.logger.Warn().Err(err).Str("product_id", line.ProductID).Msg("failed to decrement stock")
		}
	}

	s.logger.Info().Str("order_id", order.ID).Str("user_id", userID).Msg("order placed")
	return order, nil
}

func (s *ShopService) ListMyOrders(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}
