package impl

import (
	"context"
	"testing"

	"dailyfarm/internal/domain/entity"
	domainerrors "dailyfarm/internal/domain/errors"
	"dailyfarm/internal/domain/repository"
	mockRepo "dailyfarm/internal/mocks/repository"
	"dailyfarm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// messageServiceFixtures holds all test dependencies for message service tests.
type messageServiceFixtures struct {
	service     usecase.MessageUsecase
	messageRepo *mockRepo.MockMessageRepository
	userRepo    *mockRepo.MockUserRepository
}

func createTestMessageService(t *testing.T) messageServiceFixtures {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewMessageService(MessageServiceParams{
		MessageRepo: messageRepo,
		UserRepo:    userRepo,
		Logger:      newDiscardLogger(),
	})

	return messageServiceFixtures{
		service:     service,
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

func TestMessageService_SendMessage_Success(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	senderID := uuid.New()
	receiverID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, receiverID).Return(newTestCustomer(receiverID), nil)
	fx.messageRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Message")).Return(nil)

	message, err := fx.service.SendMessage(ctx, &usecase.SendMessageInput{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Title:      "Harvest update",
		Content:    "Your tomatoes ship tomorrow.",
	})

	require.NoError(t, err)
	assert.Equal(t, senderID, message.SenderID)
	assert.Equal(t, receiverID, message.ReceiverID)
	assert.False(t, message.IsRead)
}

func TestMessageService_SendMessage_ToSelf(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	userID := uuid.New()

	_, err := fx.service.SendMessage(ctx, &usecase.SendMessageInput{
		SenderID:   userID,
		ReceiverID: userID,
		Title:      "Note",
		Content:    "To myself",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMessageService_SendMessage_UnknownReceiver(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	receiverID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, receiverID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.SendMessage(ctx, &usecase.SendMessageInput{
		SenderID:   uuid.New(),
		ReceiverID: receiverID,
		Title:      "Hello",
		Content:    "Anyone there?",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestMessageService_GetMessage_ReceiverMarksRead(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	messageID := uuid.New()
	receiverID := uuid.New()
	message := &entity.Message{
		ID:         messageID,
		SenderID:   uuid.New(),
		ReceiverID: receiverID,
		IsRead:     false,
	}

	fx.messageRepo.EXPECT().FindByID(ctx, messageID).Return(message, nil)
	fx.messageRepo.EXPECT().MarkRead(ctx, messageID, receiverID).Return(nil)

	got, err := fx.service.GetMessage(ctx, messageID, receiverID)

	require.NoError(t, err)
	assert.True(t, got.IsRead)
}

func TestMessageService_GetMessage_SenderDoesNotMarkRead(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	messageID := uuid.New()
	senderID := uuid.New()
	message := &entity.Message{
		ID:         messageID,
		SenderID:   senderID,
		ReceiverID: uuid.New(),
		IsRead:     false,
	}

	fx.messageRepo.EXPECT().FindByID(ctx, messageID).Return(message, nil)

	got, err := fx.service.GetMessage(ctx, messageID, senderID)

	require.NoError(t, err)
	assert.False(t, got.IsRead)
}

func TestMessageService_GetMessage_AccessDenied(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	messageID := uuid.New()
	message := &entity.Message{
		ID:         messageID,
		SenderID:   uuid.New(),
		ReceiverID: uuid.New(),
	}

	fx.messageRepo.EXPECT().FindByID(ctx, messageID).Return(message, nil)

	_, err := fx.service.GetMessage(ctx, messageID, uuid.New())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMessageAccessDenied))
}

func TestMessageService_ListMessages_Success(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	userID := uuid.New()
	expectedMessages := []*entity.Message{
		{ID: uuid.New(), ReceiverID: userID},
		{ID: uuid.New(), SenderID: userID},
	}

	fx.messageRepo.EXPECT().ListByUser(ctx, userID, 0, 20).Return(expectedMessages, nil)

	messages, err := fx.service.ListMessages(ctx, userID, 0, 20)

	require.NoError(t, err)
	assert.Equal(t, expectedMessages, messages)
}

func TestMessageService_CountUnread_Success(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.messageRepo.EXPECT().CountUnread(ctx, userID).Return(int64(3), nil)

	count, err := fx.service.CountUnread(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
