package impl

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "dailyfarm/internal/delivery/context"
	"dailyfarm/internal/domain/entity"
	domainerrors "dailyfarm/internal/domain/errors"
	"dailyfarm/internal/domain/repository"
	"dailyfarm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface. Every stock mutation
// happens inside a single transaction holding row locks on the crops, so
// placing and cancelling orders never leaves partial stock changes behind.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder places an order: it locks every requested crop row, verifies
// stock for all items, snapshots unit prices, decrements stock and writes the
// order with its items. Any failure rolls the whole thing back.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	srv.log(ctx).Info("Creating order", slog.Any("consumerID", input.ConsumerID), slog.Int("itemCount", len(input.Items)))

	if len(input.Items) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "order must contain at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "item quantity must be positive")
		}
	}

	consumer, err := srv.userRepo.FindByID(ctx, input.ConsumerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load consumer")
	}
	if !consumer.IsCustomer() {
		return nil, domainerrors.ErrOnlyCustomersCanOrder
	}

	// Lock crop rows in a fixed order so two concurrent orders over the same
	// crops cannot deadlock.
	items := slices.Clone(input.Items)
	slices.SortFunc(items, func(a, b usecase.OrderItemInput) int {
		return bytes.Compare(a.CropID[:], b.CropID[:])
	})

	var createdOrder *entity.Order
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cropRepo := repoFactory.NewCropRepository()
		orderRepo := repoFactory.NewOrderRepository()

		order := &entity.Order{
			ConsumerID:      input.ConsumerID,
			Status:          entity.OrderStatusPending,
			DeliveryAddress: input.DeliveryAddress,
			DeliveryContact: input.DeliveryContact,
		}

		for _, item := range items {
			crop, err := cropRepo.FindByIDForUpdate(ctx, item.CropID)
			if err != nil {
				if errors.Is(err, repository.ErrCropNotFound) {
					return domainerrors.ErrCropNotFound
				}

				return errors.Wrap(err, "failed to lock crop for order")
			}

			if !crop.IsActive {
				return domainerrors.ErrCropNotFound.WrapMessage("crop is no longer listed")
			}

			if order.FarmerID == uuid.Nil {
				order.FarmerID = crop.FarmerID
			} else if order.FarmerID != crop.FarmerID {
				return errors.Wrap(domainerrors.ErrValidationFailed, "all order items must belong to the same farmer")
			}

			if !crop.HasStock(item.Quantity) {
				return domainerrors.NewInsufficientStockError(crop.ID, crop.Name, item.Quantity, crop.QuantityAvailable)
			}

			order.Items = append(order.Items, entity.OrderItem{
				CropID:       crop.ID,
				Quantity:     item.Quantity,
				PricePerUnit: crop.PricePerUnit,
				TotalPrice:   item.Quantity * crop.PricePerUnit,
			})

			crop.ConsumeStock(item.Quantity)
			if err := cropRepo.UpdateStock(ctx, crop.ID, crop.QuantityAvailable, crop.Status); err != nil {
				return errors.Wrap(err, "failed to decrement crop stock")
			}
		}

		order.TotalPrice = order.CalculateTotalPrice()

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		createdOrder = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order creation failed", slog.Any("consumerID", input.ConsumerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order created", slog.Any("orderID", createdOrder.ID), slog.Float64("totalPrice", createdOrder.TotalPrice))

	return createdOrder, nil
}

// GetOrder loads an order for either of the two parties involved.
func (srv *orderService) GetOrder(ctx context.Context, orderID, requesterID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	if order.ConsumerID != requesterID && order.FarmerID != requesterID {
		return nil, domainerrors.ErrOrderAccessDenied
	}

	return order, nil
}

// ListConsumerOrders retrieves orders placed by a customer, newest first.
func (srv *orderService) ListConsumerOrders(ctx context.Context, consumerID uuid.UUID, offset, limit int) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByConsumer(ctx, consumerID, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list consumer orders")
	}

	return orders, nil
}

// ListFarmerOrders retrieves orders addressed to a farmer, newest first.
func (srv *orderService) ListFarmerOrders(ctx context.Context, farmerID uuid.UUID, offset, limit int) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByFarmer(ctx, farmerID, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list farmer orders")
	}

	return orders, nil
}

// UpdateOrderStatus moves an order along its state machine on behalf of the
// fulfilling farmer. Moving to CANCELLED restores crop stock in the same
// transaction.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	srv.log(ctx).Info("Updating order status", slog.Any("orderID", input.OrderID), slog.Any("status", input.Status))

	if !input.Status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown order status")
	}

	var updatedOrder *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindByID(ctx, input.OrderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to load order for status update")
		}

		if order.FarmerID != input.FarmerID {
			return domainerrors.ErrOrderAccessDenied
		}

		if order.Status == entity.OrderStatusCancelled {
			return domainerrors.ErrCannotUpdateCancelledOrder
		}

		if !order.Status.CanTransitionTo(input.Status) {
			return domainerrors.NewInvalidStateTransitionError(order.Status.String(), input.Status.String())
		}

		applyStatusTransition(order, input.Status, input.TrackingNumber)

		if input.Status == entity.OrderStatusCancelled {
			if err := restoreOrderStock(ctx, repoFactory, order); err != nil {
				return err
			}
		}

		if err := orderRepo.UpdateStatus(ctx, order); err != nil {
			return errors.Wrap(err, "failed to persist order status")
		}

		updatedOrder = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order status update failed", slog.Any("orderID", input.OrderID), slog.Any("error", err))

		return nil, err
	}

	return updatedOrder, nil
}

// CancelOrder cancels a consumer's own order. Only PENDING orders qualify;
// the released stock goes back to the crops in the same transaction.
func (srv *orderService) CancelOrder(ctx context.Context, orderID, consumerID uuid.UUID) (*entity.Order, error) {
	srv.log(ctx).Info("Cancelling order", slog.Any("orderID", orderID), slog.Any("consumerID", consumerID))

	var cancelledOrder *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to load order for cancellation")
		}

		if order.ConsumerID != consumerID {
			return domainerrors.ErrOrderAccessDenied
		}

		if order.Status == entity.OrderStatusCancelled {
			return domainerrors.ErrCannotUpdateCancelledOrder
		}

		if order.Status != entity.OrderStatusPending {
			return domainerrors.ErrCancelOnlyPending
		}

		applyStatusTransition(order, entity.OrderStatusCancelled, "")

		if err := restoreOrderStock(ctx, repoFactory, order); err != nil {
			return err
		}

		if err := orderRepo.UpdateStatus(ctx, order); err != nil {
			return errors.Wrap(err, "failed to persist order cancellation")
		}

		cancelledOrder = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order cancellation failed", slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, err
	}

	return cancelledOrder, nil
}

// applyStatusTransition sets the new status, stamps the matching timestamp
// and attaches the tracking number on the transition to SHIPPED.
func applyStatusTransition(order *entity.Order, next entity.OrderStatus, trackingNumber string) {
	now := time.Now()
	order.Status = next

	switch next {
	case entity.OrderStatusConfirmed:
		order.ConfirmedAt = &now
	case entity.OrderStatusShipped:
		order.ShippedAt = &now
		if trackingNumber != "" {
			order.TrackingNumber = trackingNumber
		}
	case entity.OrderStatusDelivered:
		order.DeliveredAt = &now
	case entity.OrderStatusCancelled:
		order.CancelledAt = &now
	case entity.OrderStatusPending:
		// PENDING is only ever the initial status.
	}
}

// restoreOrderStock returns every item's quantity to its crop under row
// locks, reverting SOLD crops to HARVESTED.
func restoreOrderStock(ctx context.Context, repoFactory repository.RepositoryFactory, order *entity.Order) error {
	cropRepo := repoFactory.NewCropRepository()

	items := slices.Clone(order.Items)
	slices.SortFunc(items, func(a, b entity.OrderItem) int {
		return bytes.Compare(a.CropID[:], b.CropID[:])
	})

	for _, item := range items {
		crop, err := cropRepo.FindByIDForUpdate(ctx, item.CropID)
		if err != nil {
			if errors.Is(err, repository.ErrCropNotFound) {
				return domainerrors.ErrCropNotFound
			}

			return errors.Wrap(err, "failed to lock crop for stock restore")
		}

		crop.RestoreStock(item.Quantity)
		if err := cropRepo.UpdateStock(ctx, crop.ID, crop.QuantityAvailable, crop.Status); err != nil {
			return errors.Wrap(err, "failed to restore crop stock")
		}
	}

	return nil
}
