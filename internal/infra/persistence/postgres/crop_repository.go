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
	"gorm.io/gorm/clause"
)

// cropRepository implements the repository.CropRepository interface using GORM.
type cropRepository struct {
	db *gorm.DB
}

// NewCropRepository is the constructor for cropRepository.
func NewCropRepository(db *gorm.DB) repository.CropRepository {
	return &cropRepository{
		db: db,
	}
}

// FindByID retrieves a crop by its unique ID.
func (repo *cropRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Crop, error) {
	var cropM model.CropModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cropM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCropNotFound
		}

		return nil, errors.Wrap(err, "failed to find crop by id")
	}

	return toCropDomain(&cropM), nil
}

// FindByIDForUpdate retrieves a crop by ID holding a SELECT ... FOR UPDATE row
// lock. Only meaningful inside a transaction started by the transaction
// manager; the lock serializes concurrent stock mutations on the same crop.
func (repo *cropRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Crop, error) {
	var cropM model.CropModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&cropM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCropNotFound
		}

		return nil, errors.Wrap(err, "failed to find crop for update")
	}

	return toCropDomain(&cropM), nil
}

// ListActive retrieves active crop listings, newest first.
func (repo *cropRepository) ListActive(ctx context.Context, offset, limit int) ([]*entity.Crop, error) {
	var cropModels []*model.CropModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&cropModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active crops")
	}

	crops := make([]*entity.Crop, 0, len(cropModels))
	for _, cropM := range cropModels {
		crops = append(crops, toCropDomain(cropM))
	}

	return crops, nil
}

// ListByFarmer retrieves all crops owned by a farmer.
func (repo *cropRepository) ListByFarmer(ctx context.Context, farmerID uuid.UUID, offset, limit int) ([]*entity.Crop, error) {
	var cropModels []*model.CropModel

	if err := repo.db.WithContext(ctx).
		Where("farmer_id = ?", farmerID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&cropModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list crops by farmer")
	}

	crops := make([]*entity.Crop, 0, len(cropModels))
	for _, cropM := range cropModels {
		crops = append(crops, toCropDomain(cropM))
	}

	return crops, nil
}

// Stats computes review and order aggregates for a crop in one query each.
func (repo *cropRepository) Stats(ctx context.Context, id uuid.UUID) (*repository.CropStats, error) {
	stats := &repository.CropStats{}

	row := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COUNT(*), COALESCE(AVG(rating), 0)").
		Where("crop_id = ?", id).
		Row()
	if err := row.Scan(&stats.TotalReviews, &stats.AverageRating); err != nil {
		return nil, errors.Wrap(err, "failed to aggregate crop reviews")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Where("crop_id = ?", id).
		Count(&stats.TotalOrders).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count crop orders")
	}

	return stats, nil
}

// Create persists a new crop listing.
func (repo *cropRepository) Create(ctx context.Context, crop *entity.Crop) error {
	cropM := fromCropDomain(crop)

	if err := repo.db.WithContext(ctx).Create(cropM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("farmer does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required crop information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create crop")
	}

	crop.ID = cropM.ID
	crop.CreatedAt = cropM.CreatedAt
	crop.UpdatedAt = cropM.UpdatedAt

	return nil
}

// Update persists all mutable fields of an existing crop.
func (repo *cropRepository) Update(ctx context.Context, crop *entity.Crop) error {
	cropM := fromCropDomain(crop)

	if err := repo.db.WithContext(ctx).Save(cropM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "crop quantity must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update crop")
	}

	crop.UpdatedAt = cropM.UpdatedAt

	return nil
}

// UpdateStock writes the crop's available quantity and lifecycle status.
func (repo *cropRepository) UpdateStock(ctx context.Context, id uuid.UUID, quantityAvailable float64, status entity.CropStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CropModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"quantity_available": quantityAvailable,
			"status":             status.String(),
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.NewDatabaseExecuteError(result.Error, "crop quantity must not be negative")
		}

		return errors.Wrap(result.Error, "failed to update crop stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCropNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCropDomain converts a GORM CropModel to a domain Crop entity.
func toCropDomain(data *model.CropModel) *entity.Crop {
	if data == nil {
		return nil
	}

	crop := &entity.Crop{
		ID:                  data.ID,
		FarmerID:            data.FarmerID,
		Name:                data.Name,
		Description:         data.Description,
		PricePerUnit:        data.PricePerUnit,
		Unit:                data.Unit,
		QuantityAvailable:   data.QuantityAvailable,
		Status:              entity.CropStatus(data.Status),
		PlantingDate:        data.PlantingDate,
		ExpectedHarvestDate: data.ExpectedHarvestDate,
		Temperature:         data.Temperature,
		Humidity:            data.Humidity,
		SoilPH:              data.SoilPH,
		Images:              data.Images,
		IsActive:            data.IsActive,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}

	if data.ActualHarvestDate != nil {
		crop.ActualHarvestDate = *data.ActualHarvestDate
	}

	return crop
}

// fromCropDomain converts a domain Crop entity to a GORM CropModel for persistence.
func fromCropDomain(data *entity.Crop) *model.CropModel {
	if data == nil {
		return nil
	}

	cropM := &model.CropModel{
		ID:                  data.ID,
		FarmerID:            data.FarmerID,
		Name:                data.Name,
		Description:         data.Description,
		PricePerUnit:        data.PricePerUnit,
		Unit:                data.Unit,
		QuantityAvailable:   data.QuantityAvailable,
		Status:              data.Status.String(),
		PlantingDate:        data.PlantingDate,
		ExpectedHarvestDate: data.ExpectedHarvestDate,
		Temperature:         data.Temperature,
		Humidity:            data.Humidity,
		SoilPH:              data.SoilPH,
		Images:              data.Images,
		IsActive:            data.IsActive,
	}

	if data.ActualHarvestDate != "" {
		cropM.ActualHarvestDate = &data.ActualHarvestDate
	}

	return cropM
}
