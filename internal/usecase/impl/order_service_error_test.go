package impl

import (
	"context"
	"testing"

	"dailyfarm/internal/domain/entity"
	domainerrors "dailyfarm/internal/domain/errors"
	mockRepo "dailyfarm/internal/mocks/repository"
	"dailyfarm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_CreateOrder_EmptyItems(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	_, err := fx.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		ConsumerID: uuid.New(),
		Items:      nil,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_CreateOrder_NonPositiveQuantity(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	_, err := fx.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		ConsumerID: uuid.New(),
		Items: []usecase.OrderItemInput{
			{CropID: uuid.New(), Quantity: 0},
		},
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_CreateOrder_FarmerCannotOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	farmerID := uuid.New()
	farmer := &entity.User{
		ID:       farmerID,
		UserType: entity.UserTypeFarmer,
		IsActive: true,
	}

	fx.userRepo.EXPECT().FindByID(ctx, farmerID).Return(farmer, nil)

	_, err := fx.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		ConsumerID: farmerID,
		Items: []usecase.OrderItemInput{
			{CropID: uuid.New(), Quantity: 1},
		},
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOnlyCustomersCanOrder))
}

func TestOrderService_CreateOrder_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	consumerID := uuid.New()
	cropID := uuid.New()

	crop := &entity.Crop{
		ID:                cropID,
		FarmerID:          uuid.New(),
		Name:              "Cherry Tomatoes",
		PricePerUnit:      3.5,
		QuantityAvailable: 2,
		Status:            entity.CropStatusHarvested,
		IsActive:          true,
	}
	expectedErr := domainerrors.NewInsufficientStockError(cropID, crop.Name, 5, 2)

	fx.userRepo.EXPECT().FindByID(ctx, consumerID).Return(newTestCustomer(consumerID), nil)

	fx.onExecute(ctx, expectedErr, func(factory *mockRepo.MockRepositoryFactory) {
		mockCropRepo := mockRepo.NewMockCropRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().NewCropRepository().Return(mockCropRepo)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

		// No UpdateStock and no order Create: the shortfall aborts the whole
		// transaction before any stock is touched.
		mockCropRepo.EXPECT().FindByIDForUpdate(ctx, cropID).Return(crop, nil)
	})

	order, err := fx.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		ConsumerID: consumerID,
		Items: []usecase.OrderItemInput{
			{CropID: cropID, Quantity: 5},
		},
	})

	assert.Error(t, err)
	assert.Nil(t, order)

	var stockErr *domainerrors.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, cropID.String(), stockErr.CropID)
	assert.Equal(t, "Cherry Tomatoes", stockErr.CropName)
	assert.Equal(t, 5.0, stockErr.Requested)
	assert.Equal(t, 2.0, stockErr.Available)
}

func TestOrderService_CreateOrder_MixedFarmers(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	consumerID := uuid.New()

	firstID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	secondID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	first := &entity.Crop{
		ID:                firstID,
		FarmerID:          uuid.New(),
		PricePerUnit:      2,
		QuantityAvailable: 10,
		Status:            entity.CropStatusHarvested,
		IsActive:          true,
	}
	second := &entity.Crop{
		ID:                secondID,
		FarmerID:          uuid.New(),
		PricePerUnit:      2,
		QuantityAvailable: 10,
		Status:            entity.CropStatusHarvested,
		IsActive:          true,
	}

	fx.userRepo.EXPECT().FindByID(ctx, consumerID).Return(newTestCustomer(consumerID), nil)

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrValidationFailed, "all order items must belong to the same farmer"), func(factory *mockRepo.MockRepositoryFactory) {
		mockCropRepo := mockRepo.NewMockCropRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().NewCropRepository().Return(mockCropRepo)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

		mockCropRepo.EXPECT().FindByIDForUpdate(ctx, firstID).Return(first, nil)
		mockCropRepo.EXPECT().FindByIDForUpdate(ctx, secondID).Return(second, nil)
		mockCropRepo.EXPECT().UpdateStock(ctx, firstID, 9.0, entity.CropStatusHarvested).Return(nil)
	})

	_, err := fx.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		ConsumerID: consumerID,
		Items: []usecase.OrderItemInput{
			{CropID: firstID, Quantity: 1},
			{CropID: secondID, Quantity: 1},
		},
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_CreateOrder_InactiveCrop(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	consumerID := uuid.New()
	cropID := uuid.New()

	delisted := &entity.Crop{
		ID:                cropID,
		FarmerID:          uuid.New(),
		QuantityAvailable: 10,
		Status:            entity.CropStatusHarvested,
		IsActive:          false,
	}

	fx.userRepo.EXPECT().FindByID(ctx, consumerID).Return(newTestCustomer(consumerID), nil)

	fx.onExecute(ctx, domainerrors.ErrCropNotFound.WrapMessage("crop is no longer listed"), func(factory *mockRepo.MockRepositoryFactory) {
		mockCropRepo := mockRepo.NewMockCropRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().NewCropRepository().Return(mockCropRepo)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

		mockCropRepo.EXPECT().FindByIDForUpdate(ctx, cropID).Return(delisted, nil)
	})

	_, err := fx.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		ConsumerID: consumerID,
		Items: []usecase.OrderItemInput{
			{CropID: cropID, Quantity: 1},
		},
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCropNotFound))
}

func TestOrderService_GetOrder_AccessDenied(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{
		ID:         orderID,
		ConsumerID: uuid.New(),
		FarmerID:   uuid.New(),
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	_, err := fx.service.GetOrder(ctx, orderID, uuid.New())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderAccessDenied))
}

func TestOrderService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	_, err := fx.service.UpdateOrderStatus(ctx, &usecase.UpdateOrderStatusInput{
		OrderID:  uuid.New(),
		FarmerID: uuid.New(),
		Status:   entity.OrderStatus("LOST_IN_TRANSIT"),
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_UpdateOrderStatus_InvalidTransition(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	farmerID := uuid.New()
	order := &entity.Order{
		ID:       orderID,
		FarmerID: farmerID,
		Status:   entity.OrderStatusPending,
	}

	fx.onExecute(ctx, domainerrors.NewInvalidStateTransitionError("PENDING", "DELIVERED"), func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	})

	_, err := fx.service.UpdateOrderStatus(ctx, &usecase.UpdateOrderStatusInput{
		OrderID:  orderID,
		FarmerID: farmerID,
		Status:   entity.OrderStatusDelivered,
	})

	assert.Error(t, err)

	var transitionErr *domainerrors.InvalidStateTransitionError
	require.True(t, errors.As(err, &transitionErr))
	assert.Equal(t, "PENDING", transitionErr.From)
	assert.Equal(t, "DELIVERED", transitionErr.To)
}

func TestOrderService_UpdateOrderStatus_CancelledIsImmutable(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	farmerID := uuid.New()
	order := &entity.Order{
		ID:       orderID,
		FarmerID: farmerID,
		Status:   entity.OrderStatusCancelled,
	}

	fx.onExecute(ctx, domainerrors.ErrCannotUpdateCancelledOrder, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	})

	_, err := fx.service.UpdateOrderStatus(ctx, &usecase.UpdateOrderStatusInput{
		OrderID:  orderID,
		FarmerID: farmerID,
		Status:   entity.OrderStatusConfirmed,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCannotUpdateCancelledOrder))
}

func TestOrderService_UpdateOrderStatus_AccessDenied(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{
		ID:       orderID,
		FarmerID: uuid.New(),
		Status:   entity.OrderStatusPending,
	}

	fx.onExecute(ctx, domainerrors.ErrOrderAccessDenied, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	})

	_, err := fx.service.UpdateOrderStatus(ctx, &usecase.UpdateOrderStatusInput{
		OrderID:  orderID,
		FarmerID: uuid.New(),
		Status:   entity.OrderStatusConfirmed,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderAccessDenied))
}

func TestOrderService_CancelOrder_OnlyPending(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	consumerID := uuid.New()
	order := &entity.Order{
		ID:         orderID,
		ConsumerID: consumerID,
		Status:     entity.OrderStatusShipped,
	}

	fx.onExecute(ctx, domainerrors.ErrCancelOnlyPending, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	})

	_, err := fx.service.CancelOrder(ctx, orderID, consumerID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCancelOnlyPending))
}

func TestOrderService_CancelOrder_AlreadyCancelled(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	consumerID := uuid.New()
	order := &entity.Order{
		ID:         orderID,
		ConsumerID: consumerID,
		Status:     entity.OrderStatusCancelled,
	}

	fx.onExecute(ctx, domainerrors.ErrCannotUpdateCancelledOrder, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	})

	_, err := fx.service.CancelOrder(ctx, orderID, consumerID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCannotUpdateCancelledOrder))
}

func TestOrderService_CancelOrder_NotOwner(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{
		ID:         orderID,
		ConsumerID: uuid.New(),
		Status:     entity.OrderStatusPending,
	}

	fx.onExecute(ctx, domainerrors.ErrOrderAccessDenied, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	})

	_, err := fx.service.CancelOrder(ctx, orderID, uuid.New())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderAccessDenied))
}
