package handler

import (
	"log/slog"
	"net/http"

	"dailyfarm/internal/delivery/http/middleware"
	"dailyfarm/internal/delivery/http/response"
	"dailyfarm/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for review handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

type createReviewRequest struct {
	OrderID uuid.UUID `json:"order_id" validate:"required"`
	CropID  uuid.UUID `json:"crop_id" validate:"required"`
	Rating  float64   `json:"rating" validate:"required,gte=1,lte=5"`
	Content string    `json:"content"`
}

type updateReviewRequest struct {
	Rating  float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Content string  `json:"content"`
}

// CreateReview handles reviewing a crop from a delivered order.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.uc.CreateReview(c.Request().Context(), &usecase.CreateReviewInput{
		UserID:  userID,
		OrderID: req.OrderID,
		CropID:  req.CropID,
		Rating:  req.Rating,
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review created successfully")
}

// ListCropReviews handles listing the reviews of a crop. Public endpoint.
func (h *ReviewHandler) ListCropReviews(c echo.Context) error {
	cropID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid crop ID")
	}

	offset, limit := parsePagination(c)

	reviews, err := h.uc.ListCropReviews(c.Request().Context(), cropID, offset, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// ListMyReviews handles listing the reviews written by the caller.
func (h *ReviewHandler) ListMyReviews(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	offset, limit := parsePagination(c)

	reviews, err := h.uc.ListUserReviews(c.Request().Context(), userID, offset, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// UpdateReview handles editing a review the caller wrote.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.uc.UpdateReview(c.Request().Context(), &usecase.UpdateReviewInput{
		ReviewID: reviewID,
		UserID:   userID,
		Rating:   req.Rating,
		Content:  req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review updated successfully")
}
