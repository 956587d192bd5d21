// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"dailyfarm/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCropNotFound is returned when a crop is not found.
var ErrCropNotFound = errors.New("crop not found")

// CropStats bundles aggregate review/order numbers for a crop detail view,
// computed in one query pass to avoid N+1 lookups.
type CropStats struct {
	TotalReviews  int64   `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
	TotalOrders   int64   `json:"total_orders"`
}

// CropRepository defines the interface for crop-related database operations.
// It doubles as the inventory store: quantity and lifecycle status live here.
type CropRepository interface {
	// FindByID retrieves a crop by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Crop, error)

	// FindByIDForUpdate retrieves a crop by ID while holding a row-level lock
	// for the duration of the surrounding transaction. Order creation and
	// cancellation use this so concurrent stock mutations serialize.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Crop, error)

	// ListActive retrieves active crop listings, newest first.
	ListActive(ctx context.Context, offset, limit int) ([]*entity.Crop, error)

	// ListByFarmer retrieves all crops owned by a farmer.
	ListByFarmer(ctx context.Context, farmerID uuid.UUID, offset, limit int) ([]*entity.Crop, error)

	// Stats computes review and order aggregates for a crop.
	Stats(ctx context.Context, id uuid.UUID) (*CropStats, error)

	// Create persists a new crop listing.
	Create(ctx context.Context, crop *entity.Crop) error

	// Update persists all mutable fields of an existing crop.
	Update(ctx context.Context, crop *entity.Crop) error

	// UpdateStock writes the crop's available quantity and status. Callers
	// mutate stock only inside a transaction that previously took the row
	// lock via FindByIDForUpdate.
	UpdateStock(ctx context.Context, id uuid.UUID, quantityAvailable float64, status entity.CropStatus) error
}
