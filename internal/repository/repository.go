package repository

import (
	"context"
	"errors"

	"github.com/eventconnect/backend/internal/domain"
	"github.com/eventconnect/backend/internal/timebucket"
	"github.com/google/uuid"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserEmailExists = errors.New("user with email already exists")
	ErrEventNotFound   = errors.New("event not found")
	ErrRSVPNotFound    = errors.New("rsvp not found")
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	ListByWindow(ctx context.Context, window timebucket.Window, limit int) ([]*domain.Event, error)
	ListByOrganizer(ctx context.Context, organizer uuid.UUID) ([]*domain.Event, error)
}

type RSVPRepository interface {
	Upsert(ctx context.Context, rsvp *domain.EventRSVP) error
	GetByEventAndUser(ctx context.Context, eventID int64, userID uuid.UUID) (*domain.EventRSVP, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*domain.EventRSVP, error)
	Counts(ctx context.Context, eventID int64) (domain.RSVPCounts, error)
}

type ChatRepository interface {
	Create(ctx context.Context, msg *domain.ChatMessage) error
	ListByEvent(ctx context.Context, eventID int64, limit int, beforeID int64) ([]*domain.ChatMessage, error)
}
