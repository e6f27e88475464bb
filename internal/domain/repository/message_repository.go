package repository

import (
	"context"
	"errors"

	"beantrade/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMessageNotFound is returned when a message is not found.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines persistence operations for the user messaging log.
type MessageRepository interface {
	// Create persists a new message.
	Create(ctx context.Context, message *entity.Message) error

	// FindByID retrieves a message by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)

	// MarkRead sets the message's read flag. Marking an already-read message
	// again is not an error.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// ListConversation retrieves messages exchanged between two users in
	// chronological order. When beforeID is non-nil only messages older than
	// that message are returned; limit caps the page size. Each call issues a
	// fresh query, so re-listing after new messages arrive includes them.
	ListConversation(ctx context.Context, userA, userB uuid.UUID, limit int, beforeID *uuid.UUID) ([]*entity.Message, error)

	// CountUnread returns the number of unread messages addressed to a user.
	CountUnread(ctx context.Context, receiverID uuid.UUID) (int64, error)
}
