package service

import (
	"context"
	"errors"
	"testing"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
	"github.com/petsitting/pet-sitting-system/internal/core/ports"
)

func newShopFixture(t *testing.T) (*ShopService, *stubProductRepo, *domain.Product) {
	t.Helper()
	products := newStubProductRepo()
	orders := newStubOrderRepo()
	svc := NewShopService(products, orders, discardLogger)

	product, err := svc.CreateProduct(context.Background(), ports.ProductInput{
		Name: "Chew toy", Price: 9.5, Stock: 10,
	})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return svc, products, product
}

func TestShopService_PlaceOrder_PricesFromCatalogue(t *testing.T) {
	svc, products, product := newShopFixture(t)

	order, err := svc.PlaceOrder(context.Background(), "user-1", []ports.OrderItemInput{
		{ProductID: product.ID, Quantity: 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.Total != 28.5 {
		t.Errorf("total = %v, want 28.5", order.Total)
	}
	if len(order.Items) != 1 || order.Items[0].Price != 9.5 {
		t.Errorf("line must carry the catalogue unit price, got %+v", order.Items)
	}

	stored, _ := products.FindByID(context.Background(), product.ID)
	if stored.Stock != 7 {
		t.Errorf("stock after order = %d, want 7", stored.Stock)
	}
}

func TestShopService_PlaceOrder_InsufficientStock(t *testing.T) {
	svc, products, product := newShopFixture(t)

	_, err := svc.PlaceOrder(context.Background(), "user-1", []ports.OrderItemInput{
		{ProductID: product.ID, Quantity: 11},
	})
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	stored, _ := products.FindByID(context.Background(), product.ID)
	if stored.Stock != 10 {
		t.Errorf("failed order must not touch stock, got %d", stored.Stock)
	}
}

func TestShopService_PlaceOrder_UnknownProduct(t *testing.T) {
	svc, _, _ := newShopFixture(t)

	_, err := svc.PlaceOrder(context.Background(), "user-1", []ports.OrderItemInput{
		{ProductID: "missing", Quantity: 1},
	})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestShopService_ListMyOrders_Scoped(t *testing.T) {
	svc, _, product := newShopFixture(t)

	_, _ = svc.PlaceOrder(context.Background(), "user-1", []ports.OrderItemInput{{ProductID: product.ID, Quantity: 1}})
	_, _ = svc.PlaceOrder(context.Background(), "user-2", []ports.OrderItemInput{{ProductID: product.ID, Quantity: 1}})

	mine, err := svc.ListMyOrders(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mine) != 1 || mine[0].UserID != "user-1" {
		t.Errorf("expected only user-1 orders, got %+v", mine)
	}
}
