package impl

import (
	"context"
	"log/slog"

	deliverycontext "dailyfarm/internal/delivery/context"
	"dailyfarm/internal/domain/entity"
	domainerrors "dailyfarm/internal/domain/errors"
	"dailyfarm/internal/domain/repository"
	"dailyfarm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// messageService implements the MessageUsecase interface.
type messageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// MessageServiceParams holds dependencies for messageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MessageRepo repository.MessageRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		messageRepo: params.MessageRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendMessage delivers a message to another user's inbox.
func (srv *messageService) SendMessage(ctx context.Context, input *usecase.SendMessageInput) (*entity.Message, error) {
	srv.log(ctx).Debug("Sending message", slog.Any("senderID", input.SenderID), slog.Any("receiverID", input.ReceiverID))

	if input.SenderID == input.ReceiverID {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "cannot send a message to yourself")
	}

	if _, err := srv.userRepo.FindByID(ctx, input.ReceiverID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("receiver does not exist")
		}

		return nil, errors.Wrap(err, "failed to load receiver")
	}

	message := &entity.Message{
		SenderID:   input.SenderID,
		ReceiverID: input.ReceiverID,
		Title:      input.Title,
		Content:    input.Content,
	}

	if err := srv.messageRepo.Create(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to send message")
	}

	return message, nil
}

// GetMessage returns the message and marks it read when the requester is the
// receiver viewing it for the first time.
func (srv *messageService) GetMessage(ctx context.Context, messageID, requesterID uuid.UUID) (*entity.Message, error) {
	message, err := srv.messageRepo.FindByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, domainerrors.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to load message")
	}

	if !message.Involves(requesterID) {
		return nil, domainerrors.ErrMessageAccessDenied
	}

	if message.ReceiverID == requesterID && !message.IsRead {
		if err := srv.messageRepo.MarkRead(ctx, messageID, requesterID); err != nil {
			return nil, errors.Wrap(err, "failed to mark message read")
		}
		message.IsRead = true
	}

	return message, nil
}

// ListMessages retrieves the user's sent and received messages, newest first.
func (srv *messageService) ListMessages(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Message, error) {
	messages, err := srv.messageRepo.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	return messages, nil
}

// CountUnread returns the user's unread message count.
func (srv *messageService) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := srv.messageRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages")
	}

	return count, nil
}
