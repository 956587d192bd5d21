package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "dailyfarm/internal/delivery/context"
	"dailyfarm/internal/delivery/http/middleware"
	"dailyfarm/internal/delivery/http/response"
	"dailyfarm/internal/domain/entity"
	"dailyfarm/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	cartUC  usecase.CartUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(orderUC usecase.OrderUsecase, cartUC usecase.CartUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderUC: orderUC,
		cartUC:  cartUC,
		logger:  logger,
	}
}

type orderItemRequest struct {
	CropID   uuid.UUID `json:"crop_id" validate:"required"`
	Quantity float64   `json:"quantity" validate:"required,gt=0"`
}

type createOrderRequest struct {
	DeliveryAddress string             `json:"delivery_address" validate:"required"`
	DeliveryContact string             `json:"delivery_contact" validate:"required"`
	Items           []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type updateOrderStatusRequest struct {
	Status         string `json:"status" validate:"required,oneof=PENDING CONFIRMED SHIPPED DELIVERED CANCELLED"`
	TrackingNumber string `json:"tracking_number"`
}

// CreateOrder handles placing an order. Stock is decremented atomically for
// all items or for none. The buyer's cart is cleared once the order exists.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	consumerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{
			CropID:   item.CropID,
			Quantity: item.Quantity,
		})
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), &usecase.CreateOrderInput{
		ConsumerID:      consumerID,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryContact: req.DeliveryContact,
		Items:           items,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// The order exists at this point, so a cart cleanup failure must not fail
	// the request.
	if err := h.cartUC.ClearCart(c.Request().Context(), consumerID); err != nil {
		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
		logger.Warn("Failed to clear cart after order creation",
			slog.String("consumer_id", consumerID.String()),
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err))
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// ListMyOrders handles listing the caller's orders, as buyer or as seller
// depending on the account type.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	offset, limit := parsePagination(c)
	ctx := c.Request().Context()

	userType, _ := c.Get(middleware.ContextKeyUserType).(string)

	var (
		orders []*entity.Order
		err    error
	)
	if userType == entity.UserTypeFarmer.String() {
		orders, err = h.orderUC.ListFarmerOrders(ctx, userID, offset, limit)
	} else {
		orders, err = h.orderUC.ListConsumerOrders(ctx, userID, offset, limit)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// GetOrder handles retrieving a single order for its buyer or seller.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), orderID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// CancelOrder handles a buyer cancelling their own pending order. Reserved
// stock goes back to the crops.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	consumerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.CancelOrder(c.Request().Context(), orderID, consumerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order cancelled successfully")
}

// UpdateOrderStatus handles a farmer moving an order along its state machine.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	farmerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), &usecase.UpdateOrderStatusInput{
		OrderID:        orderID,
		FarmerID:       farmerID,
		Status:         entity.OrderStatus(req.Status),
		TrackingNumber: req.TrackingNumber,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}
