// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"dailyfarm/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order persistence. An order and
// its items are always written together; items cascade-delete with the order.
type OrderRepository interface {
	// Create persists a new order together with all of its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByConsumer retrieves orders placed by a customer, newest first.
	ListByConsumer(ctx context.Context, consumerID uuid.UUID, offset, limit int) ([]*entity.Order, error)

	// ListByFarmer retrieves orders addressed to a farmer, newest first.
	ListByFarmer(ctx context.Context, farmerID uuid.UUID, offset, limit int) ([]*entity.Order, error)

	// FindDeliveredByIDAndConsumer retrieves an order only when it belongs to
	// the given consumer and has been delivered. Used by the review gate.
	FindDeliveredByIDAndConsumer(ctx context.Context, orderID, consumerID uuid.UUID) (*entity.Order, error)

	// UpdateStatus persists the order's status, tracking number and the
	// per-status timestamp fields.
	UpdateStatus(ctx context.Context, order *entity.Order) error
}
