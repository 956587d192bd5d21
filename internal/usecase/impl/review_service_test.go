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

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	t          *testing.T
	service    usecase.ReviewUsecase
	txManager  *mockRepo.MockTransactionManager
	reviewRepo *mockRepo.MockReviewRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)

	service := NewReviewService(ReviewServiceParams{
		TxManager:  txManager,
		ReviewRepo: reviewRepo,
		Logger:     newDiscardLogger(),
	})

	return reviewServiceFixtures{
		t:          t,
		service:    service,
		txManager:  txManager,
		reviewRepo: reviewRepo,
	}
}

// onExecute arranges the transaction to run the given repository expectations
// and surface returnErr to the caller.
func (fx reviewServiceFixtures) onExecute(ctx context.Context, returnErr error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			_ = fn(factory)
		}).
		Return(returnErr)
}

func newDeliveredOrder(orderID, consumerID, cropID uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:         orderID,
		ConsumerID: consumerID,
		FarmerID:   uuid.New(),
		Status:     entity.OrderStatusDelivered,
		Items: []entity.OrderItem{
			{CropID: cropID, Quantity: 1},
		},
	}
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	cropID := uuid.New()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockReviewRepo := mockRepo.NewMockReviewRepository(t)

		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		factory.EXPECT().NewReviewRepository().Return(mockReviewRepo)

		mockOrderRepo.EXPECT().FindDeliveredByIDAndConsumer(ctx, orderID, userID).
			Return(newDeliveredOrder(orderID, userID, cropID), nil)
		mockReviewRepo.EXPECT().FindByOrder(ctx, orderID).Return(nil, repository.ErrReviewNotFound)
		mockReviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	})

	review, err := fx.service.CreateReview(ctx, &usecase.CreateReviewInput{
		UserID:  userID,
		OrderID: orderID,
		CropID:  cropID,
		Rating:  4.5,
		Content: "Fresh and sweet",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, review.UserID)
	assert.Equal(t, orderID, review.OrderID)
	assert.Equal(t, 4.5, review.Rating)
}

func TestReviewService_CreateReview_NotEligible(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	// A missing row covers no such order, someone else's order and an order
	// that has not been delivered yet.
	fx.onExecute(ctx, domainerrors.ErrOrderNotEligibleForReview, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockReviewRepo := mockRepo.NewMockReviewRepository(t)

		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		factory.EXPECT().NewReviewRepository().Return(mockReviewRepo)

		mockOrderRepo.EXPECT().FindDeliveredByIDAndConsumer(ctx, orderID, userID).
			Return(nil, repository.ErrOrderNotFound)
	})

	_, err := fx.service.CreateReview(ctx, &usecase.CreateReviewInput{
		UserID:  userID,
		OrderID: orderID,
		CropID:  uuid.New(),
		Rating:  5,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotEligibleForReview))
}

func TestReviewService_CreateReview_AlreadyReviewed(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	cropID := uuid.New()

	fx.onExecute(ctx, domainerrors.ErrAlreadyReviewed, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockReviewRepo := mockRepo.NewMockReviewRepository(t)

		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		factory.EXPECT().NewReviewRepository().Return(mockReviewRepo)

		mockOrderRepo.EXPECT().FindDeliveredByIDAndConsumer(ctx, orderID, userID).
			Return(newDeliveredOrder(orderID, userID, cropID), nil)
		mockReviewRepo.EXPECT().FindByOrder(ctx, orderID).
			Return(&entity.Review{ID: uuid.New(), OrderID: orderID}, nil)
	})

	_, err := fx.service.CreateReview(ctx, &usecase.CreateReviewInput{
		UserID:  userID,
		OrderID: orderID,
		CropID:  cropID,
		Rating:  5,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyReviewed))
}

func TestReviewService_CreateReview_CropNotInOrder(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrValidationFailed, "order does not contain this crop"), func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockReviewRepo := mockRepo.NewMockReviewRepository(t)

		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		factory.EXPECT().NewReviewRepository().Return(mockReviewRepo)

		mockOrderRepo.EXPECT().FindDeliveredByIDAndConsumer(ctx, orderID, userID).
			Return(newDeliveredOrder(orderID, userID, uuid.New()), nil)
	})

	_, err := fx.service.CreateReview(ctx, &usecase.CreateReviewInput{
		UserID:  userID,
		OrderID: orderID,
		CropID:  uuid.New(),
		Rating:  5,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestReviewService_CreateReview_InvalidRating(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	_, err := fx.service.CreateReview(ctx, &usecase.CreateReviewInput{
		UserID:  uuid.New(),
		OrderID: uuid.New(),
		CropID:  uuid.New(),
		Rating:  6,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRating))
}

func TestReviewService_UpdateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	reviewID := uuid.New()
	review := &entity.Review{
		ID:      reviewID,
		UserID:  userID,
		Rating:  3,
		Content: "Average",
	}

	fx.reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(review, nil)
	fx.reviewRepo.EXPECT().Update(ctx, review).Return(nil)

	updated, err := fx.service.UpdateReview(ctx, &usecase.UpdateReviewInput{
		ReviewID: reviewID,
		UserID:   userID,
		Rating:   5,
		Content:  "Better on second thought",
	})

	require.NoError(t, err)
	assert.Equal(t, 5.0, updated.Rating)
	assert.Equal(t, "Better on second thought", updated.Content)
}

func TestReviewService_UpdateReview_NotOwner(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()
	review := &entity.Review{ID: reviewID, UserID: uuid.New()}

	fx.reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(review, nil)

	_, err := fx.service.UpdateReview(ctx, &usecase.UpdateReviewInput{
		ReviewID: reviewID,
		UserID:   uuid.New(),
		Rating:   4,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestReviewService_ListCropReviews_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	cropID := uuid.New()
	expectedReviews := []*entity.Review{
		{ID: uuid.New(), CropID: cropID, Rating: 5},
		{ID: uuid.New(), CropID: cropID, Rating: 4},
	}

	fx.reviewRepo.EXPECT().ListByCrop(ctx, cropID, 0, 20).Return(expectedReviews, nil)

	reviews, err := fx.service.ListCropReviews(ctx, cropID, 0, 20)

	require.NoError(t, err)
	assert.Equal(t, expectedReviews, reviews)
}
