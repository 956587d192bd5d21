// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"dailyfarm/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMessageNotFound is returned when a message is not found.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines the interface for inbox message persistence.
type MessageRepository interface {
	// Create persists a new message with the read flag cleared.
	Create(ctx context.Context, message *entity.Message) error

	// FindByID retrieves a message by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)

	// ListByUser retrieves the user's sent and received messages, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Message, error)

	// CountUnread returns how many received messages the user has not read yet.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead sets the read flag on a message received by userID.
	MarkRead(ctx context.Context, messageID, userID uuid.UUID) error
}
