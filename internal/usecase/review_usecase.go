package usecase

import (
	"context"

	"dailyfarm/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateReviewInput defines the data required to review a crop. The order
// must belong to the reviewer, contain the crop and have been delivered.
type CreateReviewInput struct {
	UserID  uuid.UUID
	OrderID uuid.UUID
	CropID  uuid.UUID
	Rating  float64
	Content string
}

// UpdateReviewInput defines the mutable fields of an existing review.
type UpdateReviewInput struct {
	ReviewID uuid.UUID
	UserID   uuid.UUID
	Rating   float64
	Content  string
}

// ReviewUsecase defines the interface for review operations.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, input *CreateReviewInput) (*entity.Review, error)
	UpdateReview(ctx context.Context, input *UpdateReviewInput) (*entity.Review, error)
	ListCropReviews(ctx context.Context, cropID uuid.UUID, offset, limit int) ([]*entity.Review, error)
	ListUserReviews(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Review, error)
}
