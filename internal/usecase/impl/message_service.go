// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "beantrade/internal/delivery/context"
	"beantrade/internal/domain/entity"
	domainerrors "beantrade/internal/domain/errors"
	"beantrade/internal/domain/repository"
	"beantrade/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultConversationLimit caps conversation pages when the caller does not
// supply a limit.
const defaultConversationLimit = 50

// messageService implements the MessageUsecase interface.
type messageService struct {
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
	logger      *slog.Logger
}

// MessageServiceParams holds dependencies for MessageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	MessageRepo repository.MessageRepository
	Logger      *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		userRepo:    params.UserRepo,
		messageRepo: params.MessageRepo,
		logger:      params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendMessage delivers a message from the sender to another user.
func (srv *messageService) SendMessage(ctx context.Context, senderID uuid.UUID, input usecase.SendMessageInput) (*entity.Message, error) {
	srv.log(ctx).Info("Sending message", slog.Any("senderID", senderID), slog.Any("receiverID", input.ReceiverID))

	if senderID == input.ReceiverID {
		return nil, domainerrors.ErrSelfMessage.WrapMessage("sender and receiver are the same user")
	}
	if input.Content == "" {
		return nil, domainerrors.ErrInvalidAttributes.WrapMessage("message content is empty")
	}

	exists, err := srv.userRepo.Exists(ctx, input.ReceiverID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check receiver")
	}
	if !exists {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("receiver does not exist")
	}

	message := &entity.Message{
		SenderID:   senderID,
		ReceiverID: input.ReceiverID,
		Content:    input.Content,
		Read:       false,
	}

	if err := srv.messageRepo.Create(ctx, message); err != nil {
		srv.log(ctx).Warn("Failed to send message", slog.Any("senderID", senderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create message")
	}

	return message, nil
}

// MarkMessageRead flags a message as read. Only the receiver may do this;
// re-marking an already-read message succeeds without change.
func (srv *messageService) MarkMessageRead(ctx context.Context, actorID, messageID uuid.UUID) (*entity.Message, error) {
	message, err := srv.messageRepo.FindByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, domainerrors.ErrMessageNotFound.WrapMessage("message does not exist")
		}

		return nil, errors.Wrap(err, "failed to find message")
	}
	if message.ReceiverID != actorID {
		return nil, domainerrors.ErrNotReceiver.WrapMessage("only the receiver can mark a message read")
	}

	if message.Read {
		return message, nil
	}

	if err := srv.messageRepo.MarkRead(ctx, message.ID); err != nil {
		srv.log(ctx).Warn("Failed to mark message read", slog.Any("messageID", messageID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to mark message read")
	}

	message.Read = true

	return message, nil
}

// ListConversation returns the messages exchanged between the actor and
// another user, oldest first.
func (srv *messageService) ListConversation(ctx context.Context, actorID uuid.UUID, input usecase.ListConversationInput) ([]*entity.Message, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultConversationLimit
	}

	messages, err := srv.messageRepo.ListConversation(ctx, actorID, input.OtherUserID, limit, input.BeforeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversation")
	}

	return messages, nil
}
