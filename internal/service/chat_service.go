package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/eventconnect/backend/internal/domain"
	"github.com/eventconnect/backend/internal/repository"
	"github.com/eventconnect/backend/lib/logger/sl"
	"github.com/google/uuid"
)

const defaultChatPageSize = 50

type ChatService struct {
	messages repository.ChatRepository
	rsvps    repository.RSVPRepository
	events   repository.EventRepository
	users    repository.UserRepository
	log      *slog.Logger

	maxMessageLength int
}

func NewChatService(messages repository.ChatRepository, rsvps repository.RSVPRepository, events repository.EventRepository, users repository.UserRepository, maxMessageLength int, log *slog.Logger) *ChatService {
	if log == nil {
		log = slog.Default()
	}
	if maxMessageLength <= 0 {
		maxMessageLength = 2000
	}
	return &ChatService{
		messages:         messages,
		rsvps:            rsvps,
		events:           events,
		users:            users,
		log:              log,
		maxMessageLength: maxMessageLength,
	}
}

// PostMessage appends to the event's thread. Writers must have joined
// the event: an RSVP of going or maybe, or being the organizer.
func (s *ChatService) PostMessage(ctx context.Context, eventID int64, userID uuid.UUID, text string) (*domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	if utf8.RuneCountInString(text) > s.maxMessageLength {
		return nil, ErrMessageTooLong
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.checkParticipant(ctx, event, userID); err != nil {
		return nil, err
	}

	author, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	msg := domain.NewChatMessage(eventID, author, text)
	if err := s.messages.Create(ctx, msg); err != nil {
		s.log.Error("failed to save chat message", sl.Err(err))
		return nil, err
	}

	return msg, nil
}

// ListMessages returns the thread in creation order, ties broken by
// id. Reading requires the same participation as writing.
func (s *ChatService) ListMessages(ctx context.Context, eventID int64, viewer uuid.UUID, limit int, beforeID int64) ([]*domain.ChatMessage, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.checkParticipant(ctx, event, viewer); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultChatPageSize
	}

	return s.messages.ListByEvent(ctx, eventID, limit, beforeID)
}

// Access reports whether the viewer may read or stream the event's
// thread.
func (s *ChatService) Access(ctx context.Context, eventID int64, viewer uuid.UUID) error {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	return s.checkParticipant(ctx, event, viewer)
}

func (s *ChatService) checkParticipant(ctx context.Context, event *domain.Event, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrNotParticipant
	}
	if event.OrganizerID == userID {
		return nil
	}

	rsvp, err := s.rsvps.GetByEventAndUser(ctx, event.ID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRSVPNotFound) {
			return ErrNotParticipant
		}
		return err
	}

	switch rsvp.Status {
	case domain.RSVPStatusGoing, domain.RSVPStatusMaybe:
		return nil
	}
	return ErrNotParticipant
}
