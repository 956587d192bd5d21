package impl

import (
	"context"
	"log/slog"

	deliverycontext "dailyfarm/internal/delivery/context"
	"dailyfarm/internal/domain/entity"
	domainerrors "dailyfarm/internal/domain/errors"
	"dailyfarm/internal/domain/repository"
	"dailyfarm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface. A review is only
// accepted for the reviewer's own order, after delivery, once per order.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview checks the eligibility gate and persists the review.
func (srv *reviewService) CreateReview(ctx context.Context, input *usecase.CreateReviewInput) (*entity.Review, error) {
	srv.log(ctx).Info("Creating review", slog.Any("userID", input.UserID), slog.Any("orderID", input.OrderID))

	if !entity.IsValidRating(input.Rating) {
		return nil, domainerrors.ErrInvalidRating
	}

	var createdReview *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		reviewRepo := repoFactory.NewReviewRepository()

		// The order must belong to the reviewer and have been delivered.
		// A missing row here deliberately collapses "no such order", "not
		// yours" and "not delivered yet" into one eligibility error.
		order, err := orderRepo.FindDeliveredByIDAndConsumer(ctx, input.OrderID, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotEligibleForReview
			}

			return errors.Wrap(err, "failed to check order eligibility")
		}

		if !orderContainsCrop(order, input.CropID) {
			return errors.Wrap(domainerrors.ErrValidationFailed, "order does not contain this crop")
		}

		if _, err := reviewRepo.FindByOrder(ctx, input.OrderID); err == nil {
			return domainerrors.ErrAlreadyReviewed
		} else if !errors.Is(err, repository.ErrReviewNotFound) {
			return errors.Wrap(err, "failed to check for existing review")
		}

		review := &entity.Review{
			UserID:  input.UserID,
			CropID:  input.CropID,
			OrderID: input.OrderID,
			Rating:  input.Rating,
			Content: input.Content,
		}

		if err := reviewRepo.Create(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		createdReview = review

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Review creation failed", slog.Any("orderID", input.OrderID), slog.Any("error", err))

		return nil, err
	}

	return createdReview, nil
}

// UpdateReview changes the rating or content of the reviewer's own review.
func (srv *reviewService) UpdateReview(ctx context.Context, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	if !entity.IsValidRating(input.Rating) {
		return nil, domainerrors.ErrInvalidRating
	}

	review, err := srv.reviewRepo.FindByID(ctx, input.ReviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to load review")
	}

	if review.UserID != input.UserID {
		return nil, domainerrors.ErrForbidden.WrapMessage("review belongs to another user")
	}

	review.Rating = input.Rating
	review.Content = input.Content

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to update review")
	}

	return review, nil
}

// ListCropReviews retrieves all reviews for a crop, newest first.
func (srv *reviewService) ListCropReviews(ctx context.Context, cropID uuid.UUID, offset, limit int) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByCrop(ctx, cropID, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list crop reviews")
	}

	return reviews, nil
}

// ListUserReviews retrieves all reviews written by a user, newest first.
func (srv *reviewService) ListUserReviews(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user reviews")
	}

	return reviews, nil
}

func orderContainsCrop(order *entity.Order, cropID uuid.UUID) bool {
	for _, item := range order.Items {
		if item.CropID == cropID {
			return true
		}
	}

	return false
}
