package usecase

import (
	"context"

	"dailyfarm/internal/domain/entity"
	"dailyfarm/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateCropInput defines the data required to list a new crop.
type CreateCropInput struct {
	FarmerID            uuid.UUID
	Name                string
	Description         string
	PricePerUnit        float64
	Unit                string
	QuantityAvailable   float64
	Status              entity.CropStatus
	PlantingDate        string
	ExpectedHarvestDate string
	Images              []string
}

// UpdateCropInput defines the mutable listing fields. Nil pointers leave the
// current value untouched.
type UpdateCropInput struct {
	CropID            uuid.UUID
	FarmerID          uuid.UUID
	Name              *string
	Description       *string
	PricePerUnit      *float64
	Unit              *string
	QuantityAvailable *float64
	Status            *entity.CropStatus
	ActualHarvestDate *string
	Images            []string
}

// UpdateSensorDataInput carries a fresh sensor reading for a crop.
type UpdateSensorDataInput struct {
	CropID      uuid.UUID
	FarmerID    uuid.UUID
	Temperature *float64
	Humidity    *float64
	SoilPH      *float64
}

// --- Output DTOs ---

// CropDetailOutput bundles a crop with its review and order aggregates.
type CropDetailOutput struct {
	Crop  *entity.Crop          `json:"crop"`
	Stats *repository.CropStats `json:"stats"`
}

// CropUsecase defines the interface for crop listing operations.
type CropUsecase interface {
	CreateCrop(ctx context.Context, input *CreateCropInput) (*entity.Crop, error)
	GetCrop(ctx context.Context, cropID uuid.UUID) (*CropDetailOutput, error)
	ListCrops(ctx context.Context, offset, limit int) ([]*entity.Crop, error)
	ListFarmerCrops(ctx context.Context, farmerID uuid.UUID, offset, limit int) ([]*entity.Crop, error)
	UpdateCrop(ctx context.Context, input *UpdateCropInput) (*entity.Crop, error)
	UpdateSensorData(ctx context.Context, input *UpdateSensorDataInput) (*entity.Crop, error)
	DeactivateCrop(ctx context.Context, cropID, farmerID uuid.UUID) error

	// GenerateShareQR renders a PNG QR code pointing at the crop's public page.
	GenerateShareQR(ctx context.Context, cropID uuid.UUID) ([]byte, error)
}
