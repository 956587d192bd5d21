package usecase

import (
	"context"

	"dailyfarm/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// OrderItemInput is one requested line item. The unit price is never taken
// from the caller; it is snapshotted from the crop inside the order
// transaction, while the row lock is held.
type OrderItemInput struct {
	CropID   uuid.UUID
	Quantity float64
}

// CreateOrderInput defines the data required to place an order. All items
// must belong to the same farmer.
type CreateOrderInput struct {
	ConsumerID      uuid.UUID
	DeliveryAddress string
	DeliveryContact string
	Items           []OrderItemInput
}

// UpdateOrderStatusInput moves an order along its state machine. The tracking
// number is only consumed on the transition to SHIPPED.
type UpdateOrderStatusInput struct {
	OrderID        uuid.UUID
	FarmerID       uuid.UUID
	Status         entity.OrderStatus
	TrackingNumber string
}

// OrderUsecase defines the interface for order operations. Stock bookkeeping
// is transactional: placing an order decrements crop stock all-or-nothing,
// and cancellation restores it.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)
	GetOrder(ctx context.Context, orderID, requesterID uuid.UUID) (*entity.Order, error)
	ListConsumerOrders(ctx context.Context, consumerID uuid.UUID, offset, limit int) ([]*entity.Order, error)
	ListFarmerOrders(ctx context.Context, farmerID uuid.UUID, offset, limit int) ([]*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, input *UpdateOrderStatusInput) (*entity.Order, error)
	CancelOrder(ctx context.Context, orderID, consumerID uuid.UUID) (*entity.Order, error)
}
