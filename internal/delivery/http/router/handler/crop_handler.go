package handler

import (
	"log/slog"
	"net/http"

	"dailyfarm/internal/delivery/http/middleware"
	"dailyfarm/internal/delivery/http/response"
	"dailyfarm/internal/domain/entity"
	"dailyfarm/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CropHandler holds dependencies for crop listing handlers.
type CropHandler struct {
	uc     usecase.CropUsecase
	logger *slog.Logger
}

// NewCropHandler is the constructor for CropHandler, injected by Fx.
func NewCropHandler(uc usecase.CropUsecase, logger *slog.Logger) *CropHandler {
	return &CropHandler{
		uc:     uc,
		logger: logger,
	}
}

type createCropRequest struct {
	Name                string   `json:"name" validate:"required"`
	Description         string   `json:"description"`
	PricePerUnit        float64  `json:"pricePerUnit" validate:"required,gt=0"`
	Unit                string   `json:"unit" validate:"required"`
	QuantityAvailable   float64  `json:"quantityAvailable" validate:"gte=0"`
	Status              string   `json:"status" validate:"omitempty,oneof=GROWING HARVESTED SOLD"`
	PlantingDate        string   `json:"plantingDate"`
	ExpectedHarvestDate string   `json:"expectedHarvestDate"`
	Images              []string `json:"images"`
}

type updateCropRequest struct {
	Name              *string  `json:"name"`
	Description       *string  `json:"description"`
	PricePerUnit      *float64 `json:"pricePerUnit"`
	Unit              *string  `json:"unit"`
	QuantityAvailable *float64 `json:"quantityAvailable"`
	Status            *string  `json:"status"`
	ActualHarvestDate *string  `json:"actualHarvestDate"`
	Images            []string `json:"images"`
}

type updateSensorDataRequest struct {
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	SoilPH      *float64 `json:"soilPh"`
}

// ListCrops handles browsing the public crop catalogue.
func (h *CropHandler) ListCrops(c echo.Context) error {
	offset, limit := parsePagination(c)

	crops, err := h.uc.ListCrops(c.Request().Context(), offset, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, crops, "Crops retrieved successfully")
}

// GetCrop handles retrieving a single crop with its review aggregates.
func (h *CropHandler) GetCrop(c echo.Context) error {
	cropID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid crop ID")
	}

	detail, err := h.uc.GetCrop(c.Request().Context(), cropID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "Crop retrieved successfully")
}

// GetShareQR handles generating the shareable QR code for a crop.
func (h *CropHandler) GetShareQR(c echo.Context) error {
	cropID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid crop ID")
	}

	qrCode, err := h.uc.GenerateShareQR(c.Request().Context(), cropID)
	if err != nil {
		return errors.WithStack(err)
	}

	// Return QR code as PNG image
	c.Response().Header().Set("Content-Disposition", "inline; filename=crop-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}

// CreateCrop handles listing a new crop for sale.
func (h *CropHandler) CreateCrop(c echo.Context) error {
	farmerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createCropRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid crop input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	crop, err := h.uc.CreateCrop(c.Request().Context(), &usecase.CreateCropInput{
		FarmerID:            farmerID,
		Name:                req.Name,
		Description:         req.Description,
		PricePerUnit:        req.PricePerUnit,
		Unit:                req.Unit,
		QuantityAvailable:   req.QuantityAvailable,
		Status:              entity.CropStatus(req.Status),
		PlantingDate:        req.PlantingDate,
		ExpectedHarvestDate: req.ExpectedHarvestDate,
		Images:              req.Images,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, crop, "Crop listed successfully")
}

// ListMyCrops handles retrieving the authenticated farmer's own listings.
func (h *CropHandler) ListMyCrops(c echo.Context) error {
	farmerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	offset, limit := parsePagination(c)

	crops, err := h.uc.ListFarmerCrops(c.Request().Context(), farmerID, offset, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, crops, "Crops retrieved successfully")
}

// UpdateCrop handles changing a crop listing.
func (h *CropHandler) UpdateCrop(c echo.Context) error {
	farmerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	cropID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid crop ID")
	}

	var req updateCropRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid crop input")
	}

	input := &usecase.UpdateCropInput{
		CropID:            cropID,
		FarmerID:          farmerID,
		Name:              req.Name,
		Description:       req.Description,
		PricePerUnit:      req.PricePerUnit,
		Unit:              req.Unit,
		QuantityAvailable: req.QuantityAvailable,
		ActualHarvestDate: req.ActualHarvestDate,
		Images:            req.Images,
	}
	if req.Status != nil {
		status := entity.CropStatus(*req.Status)
		input.Status = &status
	}

	crop, err := h.uc.UpdateCrop(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, crop, "Crop updated successfully")
}

// UpdateSensorData handles storing a fresh sensor reading for a crop.
func (h *CropHandler) UpdateSensorData(c echo.Context) error {
	farmerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	cropID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid crop ID")
	}

	var req updateSensorDataRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sensor data input")
	}

	crop, err := h.uc.UpdateSensorData(c.Request().Context(), &usecase.UpdateSensorDataInput{
		CropID:      cropID,
		FarmerID:    farmerID,
		Temperature: req.Temperature,
		Humidity:    req.Humidity,
		SoilPH:      req.SoilPH,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, crop, "Sensor data updated successfully")
}

// DeactivateCrop handles delisting a crop from the catalogue.
func (h *CropHandler) DeactivateCrop(c echo.Context) error {
	farmerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	cropID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid crop ID")
	}

	if err := h.uc.DeactivateCrop(c.Request().Context(), cropID, farmerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Crop deactivated"}, "Crop deactivated successfully")
}
