package service

import (
	"context"
	"errors"

	"github.com/eventconnect/backend/internal/domain"
	"github.com/google/uuid"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotOrganizer       = errors.New("only the organizer can modify the event")
	ErrNotParticipant     = errors.New("user has not joined this event")
	ErrEventInactive      = errors.New("event is no longer active")
	ErrInvalidStatus      = errors.New("invalid rsvp status")
	ErrEmptyMessage       = errors.New("message text is required")
	ErrMessageTooLong     = errors.New("message text is too long")
	ErrEmptyDescription   = errors.New("avatar description is required")
	ErrOrganizerMissing   = errors.New("event organizer not found")
)

// ProfileUpdate carries the editable profile fields. Nil means "leave
// unchanged".
type ProfileUpdate struct {
	Name            *string
	Location        *string
	Interests       *[]string
	PersonalityTags *[]string
	Bio             *string
}

type UserInteractor interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (*domain.User, error)
	GenerateAvatar(ctx context.Context, id uuid.UUID, description string) (string, error)
	UpdateAvatar(ctx context.Context, id uuid.UUID, seed, avatarURL string) (*domain.User, error)
}

type EventInteractor interface {
	CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error)
	UpdateEvent(ctx context.Context, actor uuid.UUID, event *domain.Event) (*domain.Event, error)
	DeactivateEvent(ctx context.Context, actor uuid.UUID, id int64) error
	Browse(ctx context.Context, timeFilter string, tzOffsetMinutes, limit int, viewer uuid.UUID) ([]*domain.EventWithOrganizer, error)
	GetEvent(ctx context.Context, id int64, viewer uuid.UUID) (*domain.EventWithOrganizer, error)
	ListByOrganizer(ctx context.Context, organizer uuid.UUID) ([]*domain.EventWithOrganizer, error)
}

type RSVPInteractor interface {
	SetStatus(ctx context.Context, eventID int64, userID uuid.UUID, status domain.RSVPStatus) (*domain.EventRSVP, domain.RSVPCounts, error)
	ListAttendees(ctx context.Context, eventID int64) ([]*domain.EventRSVP, error)
}

type ChatInteractor interface {
	PostMessage(ctx context.Context, eventID int64, userID uuid.UUID, text string) (*domain.ChatMessage, error)
	ListMessages(ctx context.Context, eventID int64, viewer uuid.UUID, limit int, beforeID int64) ([]*domain.ChatMessage, error)
	Access(ctx context.Context, eventID int64, viewer uuid.UUID) error
}
