package impl

import (
	"context"
	"testing"

	"dailyfarm/internal/domain/entity"
	domainerrors "dailyfarm/internal/domain/errors"
	"dailyfarm/internal/domain/repository"
	mockRepo "dailyfarm/internal/mocks/repository"
	"dailyfarm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	t         *testing.T
	service   usecase.CartUsecase
	txManager *mockRepo.MockTransactionManager
	cartRepo  *mockRepo.MockCartRepository
	cropRepo  *mockRepo.MockCropRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	cropRepo := mockRepo.NewMockCropRepository(t)

	service := NewCartService(CartServiceParams{
		TxManager: txManager,
		CartRepo:  cartRepo,
		CropRepo:  cropRepo,
		Logger:    newDiscardLogger(),
	})

	return cartServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
		cartRepo:  cartRepo,
		cropRepo:  cropRepo,
	}
}

// onExecute arranges the transaction to run the given repository expectations
// and surface returnErr to the caller.
func (fx cartServiceFixtures) onExecute(ctx context.Context, returnErr error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			_ = fn(factory)
		}).
		Return(returnErr)
}

func TestCartService_GetCart_CreatesOnFirstAccess(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(nil, repository.ErrCartNotFound)
	fx.cartRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

	view, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0.0, view.TotalPrice)
}

func TestCartService_GetCart_TotalsUseCurrentPrices(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cropID := uuid.New()
	cart := &entity.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items: []entity.CartItem{
			{ID: uuid.New(), CropID: cropID, Quantity: 2},
		},
	}
	crop := &entity.Crop{
		ID:           cropID,
		Name:         "Cherry Tomatoes",
		PricePerUnit: 7.25,
		IsActive:     true,
	}

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(cart, nil)
	fx.cropRepo.EXPECT().FindByID(ctx, cropID).Return(crop, nil)

	view, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 14.5, view.Items[0].Subtotal)
	assert.Equal(t, 14.5, view.TotalPrice)
}

func TestCartService_AddItem_NewLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cropID := uuid.New()
	cartID := uuid.New()
	crop := &entity.Crop{
		ID:                cropID,
		PricePerUnit:      3.5,
		QuantityAvailable: 10,
		IsActive:          true,
	}
	emptyCart := &entity.Cart{ID: cartID, UserID: userID}
	refreshed := &entity.Cart{
		ID:     cartID,
		UserID: userID,
		Items: []entity.CartItem{
			{ID: uuid.New(), CartID: cartID, CropID: cropID, Quantity: 2},
		},
	}

	fx.cropRepo.EXPECT().FindByID(ctx, cropID).Return(crop, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockCartRepo := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().NewCartRepository().Return(mockCartRepo)

		mockCartRepo.EXPECT().FindByUser(ctx, userID).Return(emptyCart, nil).Once()
		mockCartRepo.EXPECT().AddItem(ctx, mock.AnythingOfType("*entity.CartItem")).Return(nil)
		mockCartRepo.EXPECT().FindByUser(ctx, userID).Return(refreshed, nil).Once()
	})

	view, err := fx.service.AddItem(ctx, &usecase.AddCartItemInput{
		UserID:   userID,
		CropID:   cropID,
		Quantity: 2,
	})

	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 7.0, view.TotalPrice)
}

func TestCartService_AddItem_MergesQuantities(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cropID := uuid.New()
	cartID := uuid.New()
	itemID := uuid.New()
	crop := &entity.Crop{
		ID:                cropID,
		PricePerUnit:      3.5,
		QuantityAvailable: 10,
		IsActive:          true,
	}
	cart := &entity.Cart{
		ID:     cartID,
		UserID: userID,
		Items: []entity.CartItem{
			{ID: itemID, CartID: cartID, CropID: cropID, Quantity: 2},
		},
	}
	refreshed := &entity.Cart{
		ID:     cartID,
		UserID: userID,
		Items: []entity.CartItem{
			{ID: itemID, CartID: cartID, CropID: cropID, Quantity: 5},
		},
	}

	fx.cropRepo.EXPECT().FindByID(ctx, cropID).Return(crop, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockCartRepo := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().NewCartRepository().Return(mockCartRepo)

		mockCartRepo.EXPECT().FindByUser(ctx, userID).Return(cart, nil).Once()
		mockCartRepo.EXPECT().UpdateItemQuantity(ctx, cartID, itemID, 5.0).Return(nil)
		mockCartRepo.EXPECT().FindByUser(ctx, userID).Return(refreshed, nil).Once()
	})

	view, err := fx.service.AddItem(ctx, &usecase.AddCartItemInput{
		UserID:   userID,
		CropID:   cropID,
		Quantity: 3,
	})

	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 5.0, view.Items[0].Item.Quantity)
	assert.Equal(t, 17.5, view.TotalPrice)
}

func TestCartService_AddItem_InactiveCrop(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cropID := uuid.New()

	fx.cropRepo.EXPECT().FindByID(ctx, cropID).Return(&entity.Crop{ID: cropID, IsActive: false}, nil)

	_, err := fx.service.AddItem(ctx, &usecase.AddCartItemInput{
		UserID:   userID,
		CropID:   cropID,
		Quantity: 1,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCropNotFound))
}

func TestCartService_AddItem_NonPositiveQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	_, err := fx.service.AddItem(ctx, &usecase.AddCartItemInput{
		UserID:   uuid.New(),
		CropID:   uuid.New(),
		Quantity: 0,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCartService_AddItem_InsufficientStock(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cropID := uuid.New()
	crop := &entity.Crop{
		ID:                cropID,
		Name:              "Cherry Tomatoes",
		QuantityAvailable: 1,
		IsActive:          true,
	}

	fx.cropRepo.EXPECT().FindByID(ctx, cropID).Return(crop, nil)

	_, err := fx.service.AddItem(ctx, &usecase.AddCartItemInput{
		UserID:   userID,
		CropID:   cropID,
		Quantity: 2,
	})

	assert.Error(t, err)

	var stockErr *domainerrors.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 2.0, stockErr.Requested)
	assert.Equal(t, 1.0, stockErr.Available)
}

func TestCartService_AddItem_MergeExceedsStock(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cropID := uuid.New()
	cartID := uuid.New()
	itemID := uuid.New()
	crop := &entity.Crop{
		ID:                cropID,
		Name:              "Romaine Lettuce",
		QuantityAvailable: 5,
		IsActive:          true,
	}
	cart := &entity.Cart{
		ID:     cartID,
		UserID: userID,
		Items: []entity.CartItem{
			{ID: itemID, CartID: cartID, CropID: cropID, Quantity: 4},
		},
	}
	expectedErr := domainerrors.NewInsufficientStockError(cropID, "Romaine Lettuce", 6, 5)

	fx.cropRepo.EXPECT().FindByID(ctx, cropID).Return(crop, nil)

	fx.onExecute(ctx, expectedErr, func(factory *mockRepo.MockRepositoryFactory) {
		mockCartRepo := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().NewCartRepository().Return(mockCartRepo)

		mockCartRepo.EXPECT().FindByUser(ctx, userID).Return(cart, nil)
	})

	_, err := fx.service.AddItem(ctx, &usecase.AddCartItemInput{
		UserID:   userID,
		CropID:   cropID,
		Quantity: 2,
	})

	assert.Error(t, err)

	var stockErr *domainerrors.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 6.0, stockErr.Requested)
	assert.Equal(t, 5.0, stockErr.Available)
}

func TestCartService_UpdateItemQuantity_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cropID := uuid.New()
	cartID := uuid.New()
	itemID := uuid.New()
	crop := &entity.Crop{
		ID:                cropID,
		PricePerUnit:      4.0,
		QuantityAvailable: 10,
		IsActive:          true,
	}
	cart := &entity.Cart{
		ID:     cartID,
		UserID: userID,
		Items: []entity.CartItem{
			{ID: itemID, CartID: cartID, CropID: cropID, Quantity: 1},
		},
	}
	refreshed := &entity.Cart{
		ID:     cartID,
		UserID: userID,
		Items: []entity.CartItem{
			{ID: itemID, CartID: cartID, CropID: cropID, Quantity: 3},
		},
	}

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(cart, nil).Once()
	fx.cropRepo.EXPECT().FindByID(ctx, cropID).Return(crop, nil)
	fx.cartRepo.EXPECT().UpdateItemQuantity(ctx, cartID, itemID, 3.0).Return(nil)
	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(refreshed, nil).Once()

	view, err := fx.service.UpdateItemQuantity(ctx, &usecase.UpdateCartItemInput{
		UserID:   userID,
		ItemID:   itemID,
		Quantity: 3,
	})

	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3.0, view.Items[0].Item.Quantity)
	assert.Equal(t, 12.0, view.TotalPrice)
}

func TestCartService_UpdateItemQuantity_ExceedsStock(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cropID := uuid.New()
	cartID := uuid.New()
	itemID := uuid.New()
	crop := &entity.Crop{
		ID:                cropID,
		Name:              "Sweet Corn",
		QuantityAvailable: 2,
		IsActive:          true,
	}
	cart := &entity.Cart{
		ID:     cartID,
		UserID: userID,
		Items: []entity.CartItem{
			{ID: itemID, CartID: cartID, CropID: cropID, Quantity: 1},
		},
	}

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(cart, nil)
	fx.cropRepo.EXPECT().FindByID(ctx, cropID).Return(crop, nil)

	_, err := fx.service.UpdateItemQuantity(ctx, &usecase.UpdateCartItemInput{
		UserID:   userID,
		ItemID:   itemID,
		Quantity: 5,
	})

	assert.Error(t, err)

	var stockErr *domainerrors.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 5.0, stockErr.Requested)
	assert.Equal(t, 2.0, stockErr.Available)
}

func TestCartService_UpdateItemQuantity_ItemNotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID}

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(cart, nil)

	_, err := fx.service.UpdateItemQuantity(ctx, &usecase.UpdateCartItemInput{
		UserID:   userID,
		ItemID:   itemID,
		Quantity: 3,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
}

func TestCartService_RemoveItem_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	cartID := uuid.New()
	cart := &entity.Cart{
		ID:     cartID,
		UserID: userID,
		Items: []entity.CartItem{
			{ID: itemID, CartID: cartID, CropID: uuid.New(), Quantity: 1},
		},
	}
	emptied := &entity.Cart{ID: cartID, UserID: userID}

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(cart, nil).Once()
	fx.cartRepo.EXPECT().RemoveItem(ctx, cartID, itemID).Return(nil)
	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(emptied, nil).Once()

	view, err := fx.service.RemoveItem(ctx, userID, itemID)

	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0.0, view.TotalPrice)
}

func TestCartService_ClearCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().Clear(ctx, userID).Return(nil)

	err := fx.service.ClearCart(ctx, userID)

	require.NoError(t, err)
}
