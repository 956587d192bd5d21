// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"dailyfarm/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the interface for review-related database operations.
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByOrder retrieves the review attached to an order, if any.
	FindByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Review, error)

	// ListByUser retrieves all reviews written by a user.
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Review, error)

	// ListByCrop retrieves all reviews for a crop.
	ListByCrop(ctx context.Context, cropID uuid.UUID, offset, limit int) ([]*entity.Review, error)

	// Update persists the mutable fields of an existing review.
	Update(ctx context.Context, review *entity.Review) error
}
