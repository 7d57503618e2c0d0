package service

import (
	"context"
	"log/slog"

	"github.com/eventconnect/backend/internal/domain"
	"github.com/eventconnect/backend/internal/repository"
	"github.com/eventconnect/backend/lib/logger/sl"
	"github.com/google/uuid"
)

type RSVPService struct {
	rsvps  repository.RSVPRepository
	events repository.EventRepository
	log    *slog.Logger
}

func NewRSVPService(rsvps repository.RSVPRepository, events repository.EventRepository, log *slog.Logger) *RSVPService {
	if log == nil {
		log = slog.Default()
	}
	return &RSVPService{rsvps: rsvps, events: events, log: log}
}

// SetStatus records the user's latest attendance intent. Any status
// may follow any other; repeating a status is a no-op on the stored
// row. The returned counts reflect the aggregate after the write.
func (s *RSVPService) SetStatus(ctx context.Context, eventID int64, userID uuid.UUID, status domain.RSVPStatus) (*domain.EventRSVP, domain.RSVPCounts, error) {
	if status == "" {
		status = domain.RSVPStatusGoing
	}
	if !status.Valid() {
		return nil, domain.RSVPCounts{}, ErrInvalidStatus
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, domain.RSVPCounts{}, err
	}
	if !event.IsActive {
		return nil, domain.RSVPCounts{}, ErrEventInactive
	}

	rsvp := domain.NewEventRSVP(eventID, userID, status)
	if err := s.rsvps.Upsert(ctx, rsvp); err != nil {
		s.log.Error("failed to save rsvp", sl.Err(err))
		return nil, domain.RSVPCounts{}, err
	}

	counts, err := s.rsvps.Counts(ctx, eventID)
	if err != nil {
		return nil, domain.RSVPCounts{}, err
	}

	s.log.Info("rsvp recorded",
		"event_id", eventID,
		"user_id", userID.String(),
		"status", string(status),
		"going", counts.Going,
	)

	return rsvp, counts, nil
}

func (s *RSVPService) ListAttendees(ctx context.Context, eventID int64) ([]*domain.EventRSVP, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.rsvps.ListByEvent(ctx, eventID)
}
