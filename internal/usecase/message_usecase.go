package usecase

import (
	"context"

	"dailyfarm/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SendMessageInput defines the data required to send an inbox message.
type SendMessageInput struct {
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	Title      string
	Content    string
}

// MessageUsecase defines the interface for inbox operations.
type MessageUsecase interface {
	SendMessage(ctx context.Context, input *SendMessageInput) (*entity.Message, error)

	// GetMessage returns the message and marks it read when the requester is
	// the receiver. Users not involved in the message get an access error.
	GetMessage(ctx context.Context, messageID, requesterID uuid.UUID) (*entity.Message, error)
	ListMessages(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Message, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}
