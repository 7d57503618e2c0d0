package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one entry in an event's append-only thread. Messages
// are removed only by cascade when the event or the author is deleted.
type ChatMessage struct {
	ID          int64     `json:"id"`
	EventID     int64     `json:"event_id"`
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name,omitempty"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewChatMessage(eventID int64, author *User, message string) *ChatMessage {
	now := time.Now().UTC()
	msg := &ChatMessage{
		EventID:   eventID,
		Message:   message,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if author != nil {
		msg.UserID = author.ID
		msg.DisplayName = author.Name
	}
	return msg
}
