// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is a directed message between two distinct users.
// A message starts unread; only the receiver can mark it read.
type Message struct {
	ID         uuid.UUID // The unique identifier for the message.
	SenderID   uuid.UUID // Links the message to the User who sent it.
	ReceiverID uuid.UUID // Links the message to the User it was sent to. Never equal to SenderID.
	Content    string    // The message body.
	Read       bool      // Whether the receiver has read the message. Defaults to false.
	CreatedAt  time.Time // Timestamp of when the message was sent.
	UpdatedAt  time.Time // Timestamp of the last modification (i.e., when it was read).
}
