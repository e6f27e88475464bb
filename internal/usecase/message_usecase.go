// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"beantrade/internal/domain/entity"

	"github.com/google/uuid"
)

// SendMessageInput defines the data required to send a message.
type SendMessageInput struct {
	ReceiverID uuid.UUID
	Content    string
}

// ListConversationInput defines the pagination window over a conversation.
// A nil BeforeID starts from the most recent messages.
type ListConversationInput struct {
	OtherUserID uuid.UUID
	Limit       int
	BeforeID    *uuid.UUID
}

// MessageUsecase defines the interface for the user messaging log.
type MessageUsecase interface {
	SendMessage(ctx context.Context, senderID uuid.UUID, input SendMessageInput) (*entity.Message, error)
	MarkMessageRead(ctx context.Context, actorID, messageID uuid.UUID) (*entity.Message, error)
	ListConversation(ctx context.Context, actorID uuid.UUID, input ListConversationInput) ([]*entity.Message, error)
}
