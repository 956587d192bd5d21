// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"dailyfarm/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when a cart is not found.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartItemNotFound is returned when a cart item is not found.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository defines the interface for cart-related database operations.
type CartRepository interface {
	// FindByUser retrieves the user's cart with its items.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// Create persists a new, empty cart for the user.
	Create(ctx context.Context, cart *entity.Cart) error

	// AddItem appends a new item to the cart.
	AddItem(ctx context.Context, item *entity.CartItem) error

	// UpdateItemQuantity changes the quantity of an item within the cart.
	UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity float64) error

	// RemoveItem deletes a single item from the cart.
	RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error

	// Clear deletes every item from the user's cart. Invoked by the order
	// handler after a successful order creation.
	Clear(ctx context.Context, userID uuid.UUID) error
}
