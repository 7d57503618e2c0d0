package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/eventconnect/backend/internal/domain"
	"github.com/eventconnect/backend/internal/repository"
	"github.com/eventconnect/backend/internal/timebucket"
	"github.com/eventconnect/backend/lib/logger/sl"
	"github.com/google/uuid"
)

// The browse result cap. Requests asking for more, or for nothing, get
// this.
const browseLimit = 100

type EventService struct {
	events repository.EventRepository
	users  repository.UserRepository
	rsvps  repository.RSVPRepository
	log    *slog.Logger
}

func NewEventService(events repository.EventRepository, users repository.UserRepository, rsvps repository.RSVPRepository, log *slog.Logger) *EventService {
	if log == nil {
		log = slog.Default()
	}
	return &EventService{events: events, users: users, rsvps: rsvps, log: log}
}

func (s *EventService) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if event == nil {
		return nil, errors.New("event is nil")
	}
	if err := validateEvent(event); err != nil {
		return nil, err
	}
	if event.OrganizerID == uuid.Nil {
		return nil, fmt.Errorf("%w: organizer is required", ErrValidation)
	}
	if _, err := s.users.GetByID(ctx, event.OrganizerID); err != nil {
		return nil, err
	}

	normalizePricing(event)

	now := time.Now().UTC()
	event.IsActive = true
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := s.events.Create(ctx, event); err != nil {
		s.log.Error("failed to create event", sl.Err(err))
		return nil, err
	}

	s.log.Info("event created", "event_id", event.ID, "organizer", event.OrganizerID.String())
	return event, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, actor uuid.UUID, event *domain.Event) (*domain.Event, error) {
	if event == nil {
		return nil, errors.New("event is nil")
	}

	current, err := s.events.GetByID(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	if current.OrganizerID != actor {
		return nil, ErrNotOrganizer
	}

	if err := validateEvent(event); err != nil {
		return nil, err
	}
	normalizePricing(event)

	event.OrganizerID = current.OrganizerID
	event.CreatedAt = current.CreatedAt
	// Editing an event never toggles activation; only DeactivateEvent
	// changes it.
	event.IsActive = current.IsActive
	event.UpdatedAt = time.Now().UTC()

	if err := s.events.Update(ctx, event); err != nil {
		s.log.Error("failed to update event", sl.Err(err))
		return nil, err
	}

	return event, nil
}

// DeactivateEvent is the delete path: events are soft-disabled, never
// removed, so RSVPs and chat history survive.
func (s *EventService) DeactivateEvent(ctx context.Context, actor uuid.UUID, id int64) error {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event.OrganizerID != actor {
		return ErrNotOrganizer
	}

	event.IsActive = false
	event.UpdatedAt = time.Now().UTC()
	return s.events.Update(ctx, event)
}

// Browse lists active events inside the requested time bucket. The
// window is computed entirely from the client-reported zone offset; an
// empty bucket is an empty list, not an error.
func (s *EventService) Browse(ctx context.Context, timeFilter string, tzOffsetMinutes, limit int, viewer uuid.UUID) ([]*domain.EventWithOrganizer, error) {
	bucket, err := timebucket.Parse(timeFilter)
	if err != nil {
		return nil, fmt.Errorf("time filter %q: %w", timeFilter, err)
	}

	if limit <= 0 || limit > browseLimit {
		limit = browseLimit
	}

	window := bucket.Window(time.Now(), tzOffsetMinutes)
	events, err := s.events.ListByWindow(ctx, window, limit)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.EventWithOrganizer, 0, len(events))
	for _, event := range events {
		enriched, err := s.withOrganizer(ctx, event, viewer)
		if err != nil {
			if errors.Is(err, ErrOrganizerMissing) {
				s.log.Warn("skipping event without organizer", "event_id", event.ID)
				continue
			}
			return nil, err
		}
		result = append(result, enriched)
	}

	return result, nil
}

func (s *EventService) GetEvent(ctx context.Context, id int64, viewer uuid.UUID) (*domain.EventWithOrganizer, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.withOrganizer(ctx, event, viewer)
}

func (s *EventService) ListByOrganizer(ctx context.Context, organizer uuid.UUID) ([]*domain.EventWithOrganizer, error) {
	events, err := s.events.ListByOrganizer(ctx, organizer)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.EventWithOrganizer, 0, len(events))
	for _, event := range events {
		enriched, err := s.withOrganizer(ctx, event, organizer)
		if err != nil {
			return nil, err
		}
		result = append(result, enriched)
	}

	return result, nil
}

// withOrganizer joins an event with its organizer, the aggregate
// counts and the viewer's own status. A missing organizer is reported
// as ErrOrganizerMissing so callers can treat it as not-found rather
// than a transport failure.
func (s *EventService) withOrganizer(ctx context.Context, event *domain.Event, viewer uuid.UUID) (*domain.EventWithOrganizer, error) {
	organizer, err := s.users.GetByID(ctx, event.OrganizerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrOrganizerMissing
		}
		return nil, err
	}

	counts, err := s.rsvps.Counts(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	var viewerStatus domain.RSVPStatus
	if viewer != uuid.Nil {
		if rsvp, err := s.rsvps.GetByEventAndUser(ctx, event.ID, viewer); err == nil {
			viewerStatus = rsvp.Status
		} else if !errors.Is(err, repository.ErrRSVPNotFound) {
			return nil, err
		}
	}

	return &domain.EventWithOrganizer{
		Event:        event,
		Organizer:    organizer,
		RSVPCount:    counts.Going,
		MaybeCount:   counts.Maybe,
		ViewerStatus: viewerStatus,
	}, nil
}

func validateEvent(event *domain.Event) error {
	if strings.TrimSpace(event.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if !domain.ValidCategory(event.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, event.Category)
	}
	date, err := time.Parse("2006-01-02", event.Date)
	if err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	tod, err := time.Parse("15:04", event.Time)
	if err != nil {
		return fmt.Errorf("%w: time must be HH:MM", ErrValidation)
	}

	// time.Parse accepts non-padded input like "9:00"; store the
	// canonical zero-padded form so the lexicographic window queries
	// bucket the event correctly.
	event.Date = date.Format("2006-01-02")
	event.Time = tod.Format("15:04")

	if event.MaxCapacity != nil && *event.MaxCapacity <= 0 {
		return fmt.Errorf("%w: max capacity must be positive", ErrValidation)
	}
	if price := strings.TrimSpace(event.Price); price != "" {
		v, err := strconv.ParseFloat(price, 64)
		if err != nil || v < 0 {
			return fmt.Errorf("%w: price must be a non-negative decimal", ErrValidation)
		}
	}
	return nil
}

// Free events carry price 0. The schema does not constrain this, so it
// is normalized on every write.
func normalizePricing(event *domain.Event) {
	if strings.TrimSpace(event.Price) == "" {
		event.Price = "0"
	}
	if event.IsFree {
		event.Price = "0"
	}
}
