package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")
var ErrInsufficientStock = errors.New("insufficient stock")

// Product is part of the small admin-managed shop sub-domain.
// Writes require the admin role; reads are public.
type Product struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	ImageURL    string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Category    string    `json:"category,omitempty" bson:"category,omitempty"`
	Stock       int       `json:"stock" bson:"stock"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// OrderItem records the purchased quantity and the unit price at purchase time.
type OrderItem struct {
	ProductID string  `json:"product" bson:"product"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Price     float64 `json:"price" bson:"price"`
}

type Order struct {
	ID        string      `json:"id" bson:"_id,omitempty"`
	UserID    string      `json:"user" bson:"user"`
	Items     []OrderItem `json:"items" bson:"items"`
	Total     float64     `json:"total" bson:"total"`
	Status    string      `json:"status" bson:"status"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" bson:"updated_at"`
}
