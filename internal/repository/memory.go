package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/eventconnect/backend/internal/domain"
	"github.com/eventconnect/backend/internal/timebucket"
	"github.com/google/uuid"
)

type InMemoryUserRepository struct {
	mu     sync.RWMutex
	users  map[uuid.UUID]*domain.User
	emails map[string]uuid.UUID
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:  make(map[uuid.UUID]*domain.User),
		emails: make(map[string]uuid.UUID),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.emails[user.Email]; ok {
		return ErrUserEmailExists
	}

	r.users[user.ID] = user
	r.emails[user.Email] = user.ID
	return nil
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.emails[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return r.users[id], nil
}

func (r *InMemoryUserRepository) Update(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.users[user.ID]
	if !ok {
		return ErrUserNotFound
	}
	if prev.Email != user.Email {
		if _, taken := r.emails[user.Email]; taken {
			return ErrUserEmailExists
		}
		delete(r.emails, prev.Email)
		r.emails[user.Email] = user.ID
	}

	r.users[user.ID] = user
	return nil
}

type InMemoryEventRepository struct {
	mu     sync.RWMutex
	events map[int64]*domain.Event
	nextID int64
}

func NewInMemoryEventRepository() *InMemoryEventRepository {
	return &InMemoryEventRepository{events: make(map[int64]*domain.Event)}
}

func (r *InMemoryEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	event.ID = r.nextID
	r.events[event.ID] = event
	return nil
}

func (r *InMemoryEventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	event, ok := r.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	return event, nil
}

func (r *InMemoryEventRepository) Update(ctx context.Context, event *domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[event.ID]; !ok {
		return ErrEventNotFound
	}
	r.events[event.ID] = event
	return nil
}

func (r *InMemoryEventRepository) ListByWindow(ctx context.Context, window timebucket.Window, limit int) ([]*domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Event, 0)
	for _, event := range r.events {
		if !event.IsActive {
			continue
		}
		if window.Contains(event.Date, event.Time) {
			result = append(result, event)
		}
	}

	sortEvents(result)
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *InMemoryEventRepository) ListByOrganizer(ctx context.Context, organizer uuid.UUID) ([]*domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Event, 0)
	for _, event := range r.events {
		if event.OrganizerID == organizer {
			result = append(result, event)
		}
	}

	sortEvents(result)
	return result, nil
}

func sortEvents(events []*domain.Event) {
	sort.Slice(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		if events[i].Time != events[j].Time {
			return events[i].Time < events[j].Time
		}
		return events[i].ID < events[j].ID
	})
}

type InMemoryRSVPRepository struct {
	mu     sync.RWMutex
	rsvps  map[int64]map[uuid.UUID]*domain.EventRSVP
	nextID int64
}

func NewInMemoryRSVPRepository() *InMemoryRSVPRepository {
	return &InMemoryRSVPRepository{rsvps: make(map[int64]map[uuid.UUID]*domain.EventRSVP)}
}

// Upsert mirrors the Postgres ON CONFLICT behavior: the (event, user)
// pair is the key, so a repeat write replaces the stored status.
func (r *InMemoryRSVPRepository) Upsert(ctx context.Context, rsvp *domain.EventRSVP) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	byUser, ok := r.rsvps[rsvp.EventID]
	if !ok {
		byUser = make(map[uuid.UUID]*domain.EventRSVP)
		r.rsvps[rsvp.EventID] = byUser
	}

	if prev, ok := byUser[rsvp.UserID]; ok {
		prev.Status = rsvp.Status
		prev.UpdatedAt = time.Now().UTC()
		rsvp.ID = prev.ID
		rsvp.CreatedAt = prev.CreatedAt
		return nil
	}

	r.nextID++
	rsvp.ID = r.nextID
	byUser[rsvp.UserID] = rsvp
	return nil
}

func (r *InMemoryRSVPRepository) GetByEventAndUser(ctx context.Context, eventID int64, userID uuid.UUID) (*domain.EventRSVP, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rsvp, ok := r.rsvps[eventID][userID]
	if !ok {
		return nil, ErrRSVPNotFound
	}
	return rsvp, nil
}

func (r *InMemoryRSVPRepository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.EventRSVP, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.EventRSVP, 0, len(r.rsvps[eventID]))
	for _, rsvp := range r.rsvps[eventID] {
		result = append(result, rsvp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *InMemoryRSVPRepository) Counts(ctx context.Context, eventID int64) (domain.RSVPCounts, error) {
	if err := ctx.Err(); err != nil {
		return domain.RSVPCounts{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var counts domain.RSVPCounts
	for _, rsvp := range r.rsvps[eventID] {
		switch rsvp.Status {
		case domain.RSVPStatusGoing:
			counts.Going++
		case domain.RSVPStatusMaybe:
			counts.Maybe++
		}
	}
	return counts, nil
}

type InMemoryChatRepository struct {
	mu       sync.RWMutex
	messages map[int64][]*domain.ChatMessage
	nextID   int64
}

func NewInMemoryChatRepository() *InMemoryChatRepository {
	return &InMemoryChatRepository{messages: make(map[int64][]*domain.ChatMessage)}
}

func (r *InMemoryChatRepository) Create(ctx context.Context, msg *domain.ChatMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	msg.ID = r.nextID
	r.messages[msg.EventID] = append(r.messages[msg.EventID], msg)
	return nil
}

func (r *InMemoryChatRepository) ListByEvent(ctx context.Context, eventID int64, limit int, beforeID int64) ([]*domain.ChatMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	thread := r.messages[eventID]
	result := make([]*domain.ChatMessage, 0, len(thread))
	for _, msg := range thread {
		if beforeID > 0 && msg.ID >= beforeID {
			continue
		}
		result = append(result, msg)
	}

	if limit > 0 && len(result) > limit {
		result = result[len(result)-limit:]
	}
	return result, nil
}
