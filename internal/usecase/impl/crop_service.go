package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "dailyfarm/internal/delivery/context"
	"dailyfarm/internal/domain/entity"
	domainerrors "dailyfarm/internal/domain/errors"
	"dailyfarm/internal/domain/repository"
	"dailyfarm/internal/domain/service"
	"dailyfarm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cropService implements the CropUsecase interface.
type cropService struct {
	cropRepo  repository.CropRepository
	userRepo  repository.UserRepository
	qrService service.QRCodeService
	logger    *slog.Logger
}

// CropServiceParams holds dependencies for cropService, injected by Fx.
type CropServiceParams struct {
	fx.In

	CropRepo  repository.CropRepository
	UserRepo  repository.UserRepository
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewCropService is the constructor for cropService.
func NewCropService(params CropServiceParams) usecase.CropUsecase {
	return &cropService{
		cropRepo:  params.CropRepo,
		userRepo:  params.UserRepo,
		qrService: params.QRService,
		logger:    params.Logger,
	}
}

func (srv *cropService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCrop lists a new crop for the farmer.
func (srv *cropService) CreateCrop(ctx context.Context, input *usecase.CreateCropInput) (*entity.Crop, error) {
	srv.log(ctx).Info("Creating crop", slog.Any("farmerID", input.FarmerID), slog.String("name", input.Name))

	farmer, err := srv.userRepo.FindByID(ctx, input.FarmerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load farmer")
	}
	if !farmer.IsFarmer() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only farmers can list crops")
	}

	if input.QuantityAvailable < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "quantity must not be negative")
	}
	if input.PricePerUnit <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "price must be positive")
	}

	status := input.Status
	if status == "" {
		status = entity.CropStatusGrowing
	}
	if !status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown crop status")
	}

	crop := &entity.Crop{
		FarmerID:            input.FarmerID,
		Name:                input.Name,
		Description:         input.Description,
		PricePerUnit:        input.PricePerUnit,
		Unit:                input.Unit,
		QuantityAvailable:   input.QuantityAvailable,
		Status:              status,
		PlantingDate:        input.PlantingDate,
		ExpectedHarvestDate: input.ExpectedHarvestDate,
		Images:              input.Images,
		IsActive:            true,
	}

	if err := srv.cropRepo.Create(ctx, crop); err != nil {
		return nil, errors.Wrap(err, "failed to create crop")
	}

	srv.log(ctx).Debug("Crop created", slog.Any("cropID", crop.ID))

	return crop, nil
}

// GetCrop loads a crop together with its review and order aggregates.
func (srv *cropService) GetCrop(ctx context.Context, cropID uuid.UUID) (*usecase.CropDetailOutput, error) {
	crop, err := srv.cropRepo.FindByID(ctx, cropID)
	if err != nil {
		if errors.Is(err, repository.ErrCropNotFound) {
			return nil, domainerrors.ErrCropNotFound
		}

		return nil, errors.Wrap(err, "failed to load crop")
	}

	stats, err := srv.cropRepo.Stats(ctx, cropID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load crop stats")
	}

	return &usecase.CropDetailOutput{
		Crop:  crop,
		Stats: stats,
	}, nil
}

// ListCrops retrieves active crop listings, newest first.
func (srv *cropService) ListCrops(ctx context.Context, offset, limit int) ([]*entity.Crop, error) {
	crops, err := srv.cropRepo.ListActive(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list crops")
	}

	return crops, nil
}

// ListFarmerCrops retrieves all crops owned by a farmer.
func (srv *cropService) ListFarmerCrops(ctx context.Context, farmerID uuid.UUID, offset, limit int) ([]*entity.Crop, error) {
	crops, err := srv.cropRepo.ListByFarmer(ctx, farmerID, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list farmer crops")
	}

	return crops, nil
}

// UpdateCrop applies the provided listing fields after an ownership check.
func (srv *cropService) UpdateCrop(ctx context.Context, input *usecase.UpdateCropInput) (*entity.Crop, error) {
	srv.log(ctx).Debug("Updating crop", slog.Any("cropID", input.CropID))

	crop, err := srv.loadOwnedCrop(ctx, input.CropID, input.FarmerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		crop.Name = *input.Name
	}
	if input.Description != nil {
		crop.Description = *input.Description
	}
	if input.PricePerUnit != nil {
		if *input.PricePerUnit <= 0 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "price must be positive")
		}
		crop.PricePerUnit = *input.PricePerUnit
	}
	if input.Unit != nil {
		crop.Unit = *input.Unit
	}
	if input.QuantityAvailable != nil {
		if *input.QuantityAvailable < 0 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "quantity must not be negative")
		}
		crop.QuantityAvailable = *input.QuantityAvailable
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown crop status")
		}
		crop.Status = *input.Status
	}
	if input.ActualHarvestDate != nil {
		crop.ActualHarvestDate = *input.ActualHarvestDate
	}
	if input.Images != nil {
		crop.Images = input.Images
	}

	// Moving to HARVESTED without an explicit harvest date stamps it now.
	if input.Status != nil && crop.Status == entity.CropStatusHarvested && crop.ActualHarvestDate == "" {
		crop.ActualHarvestDate = time.Now().UTC().Format(time.RFC3339)
	}

	if err := srv.cropRepo.Update(ctx, crop); err != nil {
		return nil, errors.Wrap(err, "failed to update crop")
	}

	return crop, nil
}

// UpdateSensorData records a fresh sensor reading on the crop.
func (srv *cropService) UpdateSensorData(ctx context.Context, input *usecase.UpdateSensorDataInput) (*entity.Crop, error) {
	crop, err := srv.loadOwnedCrop(ctx, input.CropID, input.FarmerID)
	if err != nil {
		return nil, err
	}

	if input.Temperature != nil {
		crop.Temperature = input.Temperature
	}
	if input.Humidity != nil {
		crop.Humidity = input.Humidity
	}
	if input.SoilPH != nil {
		crop.SoilPH = input.SoilPH
	}

	if err := srv.cropRepo.Update(ctx, crop); err != nil {
		return nil, errors.Wrap(err, "failed to update crop sensor data")
	}

	return crop, nil
}

// DeactivateCrop delists a crop without deleting its order history.
func (srv *cropService) DeactivateCrop(ctx context.Context, cropID, farmerID uuid.UUID) error {
	srv.log(ctx).Info("Deactivating crop", slog.Any("cropID", cropID))

	crop, err := srv.loadOwnedCrop(ctx, cropID, farmerID)
	if err != nil {
		return err
	}

	crop.IsActive = false

	if err := srv.cropRepo.Update(ctx, crop); err != nil {
		return errors.Wrap(err, "failed to deactivate crop")
	}

	return nil
}

// GenerateShareQR renders a PNG QR code pointing at the crop's public page.
func (srv *cropService) GenerateShareQR(ctx context.Context, cropID uuid.UUID) ([]byte, error) {
	if _, err := srv.cropRepo.FindByID(ctx, cropID); err != nil {
		if errors.Is(err, repository.ErrCropNotFound) {
			return nil, domainerrors.ErrCropNotFound
		}

		return nil, errors.Wrap(err, "failed to load crop for QR generation")
	}

	png, err := srv.qrService.GenerateCropQR(cropID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate crop QR code")
	}

	return png, nil
}

// loadOwnedCrop loads a crop and verifies it belongs to farmerID.
func (srv *cropService) loadOwnedCrop(ctx context.Context, cropID, farmerID uuid.UUID) (*entity.Crop, error) {
	crop, err := srv.cropRepo.FindByID(ctx, cropID)
	if err != nil {
		if errors.Is(err, repository.ErrCropNotFound) {
			return nil, domainerrors.ErrCropNotFound
		}

		return nil, errors.Wrap(err, "failed to load crop")
	}

	if crop.FarmerID != farmerID {
		return nil, domainerrors.ErrCropOwnershipViolation
	}

	return crop, nil
}
