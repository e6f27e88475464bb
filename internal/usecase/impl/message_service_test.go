package impl

import (
	"context"
	"testing"

	"beantrade/internal/domain/entity"
	domainerrors "beantrade/internal/domain/errors"
	"beantrade/internal/domain/repository"
	mockRepo "beantrade/internal/mocks/repository"
	"beantrade/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// messageServiceFixtures holds all test dependencies for message service tests.
type messageServiceFixtures struct {
	service     usecase.MessageUsecase
	userRepo    *mockRepo.MockUserRepository
	messageRepo *mockRepo.MockMessageRepository
}

func createTestMessageService(t *testing.T) messageServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	messageRepo := mockRepo.NewMockMessageRepository(t)

	service := NewMessageService(MessageServiceParams{
		UserRepo:    userRepo,
		MessageRepo: messageRepo,
		Logger:      newDiscardLogger(),
	})

	return messageServiceFixtures{
		service:     service,
		userRepo:    userRepo,
		messageRepo: messageRepo,
	}
}

func TestMessageService_SendMessage_Success(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	senderID := uuid.New()
	receiverID := uuid.New()

	fx.userRepo.EXPECT().Exists(ctx, receiverID).Return(true, nil)
	fx.messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Message")).
		Run(func(ctx context.Context, message *entity.Message) {
			message.ID = uuid.New()
		}).
		Return(nil)

	message, err := fx.service.SendMessage(ctx, senderID, usecase.SendMessageInput{
		ReceiverID: receiverID,
		Content:    "Is the AA lot still available?",
	})

	require.NoError(t, err)
	require.NotNil(t, message)
	assert.Equal(t, senderID, message.SenderID)
	assert.Equal(t, receiverID, message.ReceiverID)
	assert.False(t, message.Read)
}

func TestMessageService_SendMessage_ToSelf(t *testing.T) {
	fx := createTestMessageService(t)

	userID := uuid.New()

	message, err := fx.service.SendMessage(context.Background(), userID, usecase.SendMessageInput{
		ReceiverID: userID,
		Content:    "note to self",
	})

	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrSelfMessage))
}

func TestMessageService_SendMessage_EmptyContent(t *testing.T) {
	fx := createTestMessageService(t)

	message, err := fx.service.SendMessage(context.Background(), uuid.New(), usecase.SendMessageInput{
		ReceiverID: uuid.New(),
		Content:    "",
	})

	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAttributes))
}

func TestMessageService_SendMessage_ReceiverNotFound(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	receiverID := uuid.New()

	fx.userRepo.EXPECT().Exists(ctx, receiverID).Return(false, nil)

	message, err := fx.service.SendMessage(ctx, uuid.New(), usecase.SendMessageInput{
		ReceiverID: receiverID,
		Content:    "hello",
	})

	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestMessageService_MarkMessageRead_Success(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	receiverID := uuid.New()
	messageID := uuid.New()

	fx.messageRepo.EXPECT().FindByID(ctx, messageID).Return(&entity.Message{
		ID:         messageID,
		SenderID:   uuid.New(),
		ReceiverID: receiverID,
		Read:       false,
	}, nil)
	fx.messageRepo.EXPECT().MarkRead(ctx, messageID).Return(nil)

	message, err := fx.service.MarkMessageRead(ctx, receiverID, messageID)

	require.NoError(t, err)
	assert.True(t, message.Read)
}

func TestMessageService_MarkMessageRead_AlreadyRead(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	receiverID := uuid.New()
	messageID := uuid.New()

	// No MarkRead call expected; re-marking is a no-op.
	fx.messageRepo.EXPECT().FindByID(ctx, messageID).Return(&entity.Message{
		ID:         messageID,
		SenderID:   uuid.New(),
		ReceiverID: receiverID,
		Read:       true,
	}, nil)

	message, err := fx.service.MarkMessageRead(ctx, receiverID, messageID)

	require.NoError(t, err)
	assert.True(t, message.Read)
}

func TestMessageService_MarkMessageRead_NotReceiver(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	messageID := uuid.New()

	fx.messageRepo.EXPECT().FindByID(ctx, messageID).Return(&entity.Message{
		ID:         messageID,
		SenderID:   uuid.New(),
		ReceiverID: uuid.New(),
	}, nil)

	message, err := fx.service.MarkMessageRead(ctx, uuid.New(), messageID)

	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrNotReceiver))
}

func TestMessageService_MarkMessageRead_NotFound(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	messageID := uuid.New()

	fx.messageRepo.EXPECT().FindByID(ctx, messageID).Return(nil, repository.ErrMessageNotFound)

	message, err := fx.service.MarkMessageRead(ctx, uuid.New(), messageID)

	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrMessageNotFound))
}

func TestMessageService_ListConversation_DefaultLimit(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	actorID := uuid.New()
	otherID := uuid.New()
	expected := []*entity.Message{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.messageRepo.EXPECT().
		ListConversation(ctx, actorID, otherID, defaultConversationLimit, (*uuid.UUID)(nil)).
		Return(expected, nil)

	messages, err := fx.service.ListConversation(ctx, actorID, usecase.ListConversationInput{
		OtherUserID: otherID,
	})

	require.NoError(t, err)
	assert.Equal(t, expected, messages)
}

func TestMessageService_ListConversation_WithCursor(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	actorID := uuid.New()
	otherID := uuid.New()
	beforeID := uuid.New()

	fx.messageRepo.EXPECT().
		ListConversation(ctx, actorID, otherID, 10, &beforeID).
		Return([]*entity.Message{}, nil)

	messages, err := fx.service.ListConversation(ctx, actorID, usecase.ListConversationInput{
		OtherUserID: otherID,
		Limit:       10,
		BeforeID:    &beforeID,
	})

	require.NoError(t, err)
	assert.Empty(t, messages)
}
