package domain

import (
	"time"

	"github.com/google/uuid"
)

type RSVPStatus string

const (
	RSVPStatusGoing    RSVPStatus = "going"
	RSVPStatusMaybe    RSVPStatus = "maybe"
	RSVPStatusNotGoing RSVPStatus = "not_going"
)

func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPStatusGoing, RSVPStatusMaybe, RSVPStatusNotGoing:
		return true
	}
	return false
}

// EventRSVP is a user's current attendance intent for one event.
// Exactly one row exists per (event, user) pair; a new write replaces
// the previous status.
type EventRSVP struct {
	ID        int64      `json:"id"`
	EventID   int64      `json:"event_id"`
	UserID    uuid.UUID  `json:"user_id"`
	Status    RSVPStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewEventRSVP(eventID int64, userID uuid.UUID, status RSVPStatus) *EventRSVP {
	if status == "" {
		status = RSVPStatusGoing
	}
	now := time.Now().UTC()
	return &EventRSVP{
		EventID:   eventID,
		UserID:    userID,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RSVPCounts aggregates an event's responses. Displayed attendance is
// Going only; Maybe is reported separately.
type RSVPCounts struct {
	Going int `json:"going"`
	Maybe int `json:"maybe"`
}
