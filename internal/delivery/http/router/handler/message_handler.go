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

// MessageHandler holds dependencies for inbox handlers.
type MessageHandler struct {
	uc     usecase.MessageUsecase
	logger *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler, injected by Fx.
func NewMessageHandler(uc usecase.MessageUsecase, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{
		uc:     uc,
		logger: logger,
	}
}

type sendMessageRequest struct {
	ReceiverID uuid.UUID `json:"receiver_id" validate:"required"`
	Title      string    `json:"title" validate:"required"`
	Content    string    `json:"content" validate:"required"`
}

// SendMessage handles sending an inbox message to another user.
func (h *MessageHandler) SendMessage(c echo.Context) error {
	senderID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message, err := h.uc.SendMessage(c.Request().Context(), &usecase.SendMessageInput{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Title:      req.Title,
		Content:    req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent successfully")
}

// ListMessages handles listing the caller's inbox, sent and received.
func (h *MessageHandler) ListMessages(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	offset, limit := parsePagination(c)

	messages, err := h.uc.ListMessages(c.Request().Context(), userID, offset, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "Messages retrieved successfully")
}

// CountUnread handles counting the caller's unread messages.
func (h *MessageHandler) CountUnread(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	count, err := h.uc.CountUnread(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread": count}, "Unread count retrieved successfully")
}

// GetMessage handles reading a single message. Opening a received message
// marks it as read.
func (h *MessageHandler) GetMessage(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid message ID")
	}

	message, err := h.uc.GetMessage(c.Request().Context(), messageID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, message, "Message retrieved successfully")
}
