package postgres

import (
	"context"

	"dailyfarm/internal/domain/entity"
	domainerrors "dailyfarm/internal/domain/errors"
	"dailyfarm/internal/domain/repository"
	"dailyfarm/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order together with all of its items. GORM writes the
// order row and the association rows in the same statement batch, so inside
// the transaction manager this is all-or-nothing.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "order references a missing user or crop")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range orderM.Items {
		order.Items[i].ID = orderM.Items[i].ID
		order.Items[i].OrderID = orderM.Items[i].OrderID
		order.Items[i].CreatedAt = orderM.Items[i].CreatedAt
		order.Items[i].UpdatedAt = orderM.Items[i].UpdatedAt
	}

	return nil
}

// FindByID retrieves an order with its items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// ListByConsumer retrieves orders placed by a customer, newest first.
func (repo *orderRepository) ListByConsumer(ctx context.Context, consumerID uuid.UUID, offset, limit int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("consumer_id = ?", consumerID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by consumer")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// ListByFarmer retrieves orders addressed to a farmer, newest first.
func (repo *orderRepository) ListByFarmer(ctx context.Context, farmerID uuid.UUID, offset, limit int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("farmer_id = ?", farmerID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by farmer")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// FindDeliveredByIDAndConsumer retrieves an order only when it belongs to the
// given consumer and has reached DELIVERED. Used by the review gate.
func (repo *orderRepository) FindDeliveredByIDAndConsumer(ctx context.Context, orderID, consumerID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND consumer_id = ? AND status = ?", orderID, consumerID, entity.OrderStatusDelivered.String()).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivered order")
	}

	return toOrderDomain(&orderM), nil
}

// UpdateStatus persists the order's status, tracking number and the
// per-status timestamp fields. Item rows are never touched here.
func (repo *orderRepository) UpdateStatus(ctx context.Context, order *entity.Order) error {
	updates := map[string]any{
		"status":       order.Status.String(),
		"confirmed_at": order.ConfirmedAt,
		"shipped_at":   order.ShippedAt,
		"delivered_at": order.DeliveredAt,
		"cancelled_at": order.CancelledAt,
	}
	if order.TrackingNumber != "" {
		updates["tracking_number"] = order.TrackingNumber
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.OrderItem{
			ID:           itemM.ID,
			OrderID:      itemM.OrderID,
			CropID:       itemM.CropID,
			Quantity:     itemM.Quantity,
			PricePerUnit: itemM.PricePerUnit,
			TotalPrice:   itemM.TotalPrice,
			CreatedAt:    itemM.CreatedAt,
			UpdatedAt:    itemM.UpdatedAt,
		})
	}

	order := &entity.Order{
		ID:              data.ID,
		ConsumerID:      data.ConsumerID,
		FarmerID:        data.FarmerID,
		Status:          entity.OrderStatus(data.Status),
		TotalPrice:      data.TotalPrice,
		DeliveryAddress: data.DeliveryAddress,
		DeliveryContact: data.DeliveryContact,
		Items:           items,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		ConfirmedAt:     data.ConfirmedAt,
		ShippedAt:       data.ShippedAt,
		DeliveredAt:     data.DeliveredAt,
		CancelledAt:     data.CancelledAt,
	}

	if data.TrackingNumber != nil {
		order.TrackingNumber = *data.TrackingNumber
	}

	return order
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel for persistence.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ID:           item.ID,
			OrderID:      item.OrderID,
			CropID:       item.CropID,
			Quantity:     item.Quantity,
			PricePerUnit: item.PricePerUnit,
			TotalPrice:   item.TotalPrice,
		})
	}

	orderM := &model.OrderModel{
		ID:              data.ID,
		ConsumerID:      data.ConsumerID,
		FarmerID:        data.FarmerID,
		Status:          data.Status.String(),
		TotalPrice:      data.TotalPrice,
		DeliveryAddress: data.DeliveryAddress,
		DeliveryContact: data.DeliveryContact,
		Items:           items,
		ConfirmedAt:     data.ConfirmedAt,
		ShippedAt:       data.ShippedAt,
		DeliveredAt:     data.DeliveredAt,
		CancelledAt:     data.CancelledAt,
	}

	if data.TrackingNumber != "" {
		orderM.TrackingNumber = &data.TrackingNumber
	}

	return orderM
}
