package impl

import (
	"context"
	"testing"

	"dailyfarm/internal/domain/entity"
	domainerrors "dailyfarm/internal/domain/errors"
	"dailyfarm/internal/domain/repository"
	mockRepo "dailyfarm/internal/mocks/repository"
	mockSvc "dailyfarm/internal/mocks/service"
	"dailyfarm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cropServiceFixtures holds all test dependencies for crop service tests.
type cropServiceFixtures struct {
	service   usecase.CropUsecase
	cropRepo  *mockRepo.MockCropRepository
	userRepo  *mockRepo.MockUserRepository
	qrService *mockSvc.MockQRCodeService
}

func createTestCropService(t *testing.T) cropServiceFixtures {
	cropRepo := mockRepo.NewMockCropRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	service := NewCropService(CropServiceParams{
		CropRepo:  cropRepo,
		UserRepo:  userRepo,
		QRService: qrService,
		Logger:    newDiscardLogger(),
	})

	return cropServiceFixtures{
		service:   service,
		cropRepo:  cropRepo,
		userRepo:  userRepo,
		qrService: qrService,
	}
}

func newTestFarmer(id uuid.UUID) *entity.User {
	return &entity.User{
		ID:          id,
		Email:       "farmer@example.com",
		UserType:    entity.UserTypeFarmer,
		FarmProfile: &entity.FarmProfile{FarmName: "Sunny Acres"},
		IsActive:    true,
	}
}

func TestCropService_CreateCrop_Success(t *testing.T) {
	fx := createTestCropService(t)

	ctx := context.Background()
	farmerID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, farmerID).Return(newTestFarmer(farmerID), nil)
	fx.cropRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Crop")).Return(nil)

	crop, err := fx.service.CreateCrop(ctx, &usecase.CreateCropInput{
		FarmerID:          farmerID,
		Name:              "Cherry Tomatoes",
		PricePerUnit:      3.5,
		Unit:              "kg",
		QuantityAvailable: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, farmerID, crop.FarmerID)
	assert.Equal(t, entity.CropStatusGrowing, crop.Status)
	assert.True(t, crop.IsActive)
}

func TestCropService_CreateCrop_CustomerForbidden(t *testing.T) {
	fx := createTestCropService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, customerID).Return(newTestCustomer(customerID), nil)

	_, err := fx.service.CreateCrop(ctx, &usecase.CreateCropInput{
		FarmerID:     customerID,
		Name:         "Cherry Tomatoes",
		PricePerUnit: 3.5,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCropService_CreateCrop_InvalidPrice(t *testing.T) {
	fx := createTestCropService(t)

	ctx := context.Background()
	farmerID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, farmerID).Return(newTestFarmer(farmerID), nil)

	_, err := fx.service.CreateCrop(ctx, &usecase.CreateCropInput{
		FarmerID:     farmerID,
		Name:         "Cherry Tomatoes",
		PricePerUnit: 0,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCropService_GetCrop_Success(t *testing.T) {
	fx := createTestCropService(t)

	ctx := context.Background()
	cropID := uuid.New()
	crop := &entity.Crop{ID: cropID, Name: "Cherry Tomatoes", IsActive: true}
	stats := &repository.CropStats{TotalReviews: 3, AverageRating: 4.5, TotalOrders: 7}

	fx.cropRepo.EXPECT().FindByID(ctx, cropID).Return(crop, nil)
	fx.cropRepo.EXPECT().Stats(ctx, cropID).Return(stats, nil)

	detail, err := fx.service.GetCrop(ctx, cropID)

	require.NoError(t, err)
	assert.Equal(t, crop, detail.Crop)
	assert.Equal(t, stats, detail.Stats)
}

func TestCropService_GetCrop_NotFound(t *testing.T) {
	fx := createTestCropService(t)

	ctx := context.Background()
	cropID := uuid.New()

	fx.cropRepo.EXPECT().FindByID(ctx, cropID).Return(nil, repository.ErrCropNotFound)

	_, err := fx.service.GetCrop(ctx, cropID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCropNotFound))
}

func TestCropService_UpdateCrop_OwnershipViolation(t *testing.T) {
	fx := createTestCropService(t)

	ctx := context.Background()
	cropID := uuid.New()
	crop := &entity.Crop{ID: cropID, FarmerID: uuid.New(), IsActive: true}

	fx.cropRepo.EXPECT().FindByID(ctx, cropID).Return(crop, nil)

	newName := "Renamed"
	_, err := fx.service.UpdateCrop(ctx, &usecase.UpdateCropInput{
		CropID:   cropID,
		FarmerID: uuid.New(),
		Name:     &newName,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCropOwnershipViolation))
}

func TestCropService_UpdateCrop_Success(t *testing.T) {
	fx := createTestCropService(t)

	ctx := context.Background()
	cropID := uuid.New()
	farmerID := uuid.New()
	crop := &entity.Crop{
		ID:           cropID,
		FarmerID:     farmerID,
		Name:         "Cherry Tomatoes",
		PricePerUnit: 3.5,
		Status:       entity.CropStatusGrowing,
		IsActive:     true,
	}

	fx.cropRepo.EXPECT().FindByID(ctx, cropID).Return(crop, nil)
	fx.cropRepo.EXPECT().Update(ctx, crop).Return(nil)

	newPrice := 4.25
	harvested := entity.CropStatusHarvested
	updated, err := fx.service.UpdateCrop(ctx, &usecase.UpdateCropInput{
		CropID:       cropID,
		FarmerID:     farmerID,
		PricePerUnit: &newPrice,
		Status:       &harvested,
	})

	require.NoError(t, err)
	assert.Equal(t, 4.25, updated.PricePerUnit)
	assert.Equal(t, entity.CropStatusHarvested, updated.Status)
	assert.NotEmpty(t, updated.ActualHarvestDate)
}

func TestCropService_UpdateSensorData_Success(t *testing.T) {
	fx := createTestCropService(t)

	ctx := context.Background()
	cropID := uuid.New()
	farmerID := uuid.New()
	crop := &entity.Crop{ID: cropID, FarmerID: farmerID, IsActive: true}

	fx.cropRepo.EXPECT().FindByID(ctx, cropID).Return(crop, nil)
	fx.cropRepo.EXPECT().Update(ctx, crop).Return(nil)

	temperature := 23.4
	soilPH := 6.8
	updated, err := fx.service.UpdateSensorData(ctx, &usecase.UpdateSensorDataInput{
		CropID:      cropID,
		FarmerID:    farmerID,
		Temperature: &temperature,
		SoilPH:      &soilPH,
	})

	require.NoError(t, err)
	require.NotNil(t, updated.Temperature)
	assert.Equal(t, 23.4, *updated.Temperature)
	require.NotNil(t, updated.SoilPH)
	assert.Equal(t, 6.8, *updated.SoilPH)
	assert.Nil(t, updated.Humidity)
}

func TestCropService_DeactivateCrop_Success(t *testing.T) {
	fx := createTestCropService(t)

	ctx := context.Background()
	cropID := uuid.New()
	farmerID := uuid.New()
	crop := &entity.Crop{ID: cropID, FarmerID: farmerID, IsActive: true}

	fx.cropRepo.EXPECT().FindByID(ctx, cropID).Return(crop, nil)
	fx.cropRepo.EXPECT().Update(ctx, crop).Return(nil)

	err := fx.service.DeactivateCrop(ctx, cropID, farmerID)

	require.NoError(t, err)
	assert.False(t, crop.IsActive)
}

func TestCropService_GenerateShareQR_Success(t *testing.T) {
	fx := createTestCropService(t)

	ctx := context.Background()
	cropID := uuid.New()
	pngBytes := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.cropRepo.EXPECT().FindByID(ctx, cropID).Return(&entity.Crop{ID: cropID, IsActive: true}, nil)
	fx.qrService.EXPECT().GenerateCropQR(cropID).Return(pngBytes, nil)

	png, err := fx.service.GenerateShareQR(ctx, cropID)

	require.NoError(t, err)
	assert.Equal(t, pngBytes, png)
}

func TestCropService_GenerateShareQR_CropNotFound(t *testing.T) {
	fx := createTestCropService(t)

	ctx := context.Background()
	cropID := uuid.New()

	fx.cropRepo.EXPECT().FindByID(ctx, cropID).Return(nil, repository.ErrCropNotFound)

	_, err := fx.service.GenerateShareQR(ctx, cropID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCropNotFound))
}

func TestCropService_ListCrops_Success(t *testing.T) {
	fx := createTestCropService(t)

	ctx := context.Background()
	expectedCrops := []*entity.Crop{
		{ID: uuid.New(), Name: "Cherry Tomatoes", IsActive: true},
		{ID: uuid.New(), Name: "Butter Lettuce", IsActive: true},
	}

	fx.cropRepo.EXPECT().ListActive(ctx, 0, 20).Return(expectedCrops, nil)

	crops, err := fx.service.ListCrops(ctx, 0, 20)

	require.NoError(t, err)
	assert.Equal(t, expectedCrops, crops)
}
