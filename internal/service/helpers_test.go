package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/eventconnect/backend/internal/domain"
	"github.com/eventconnect/backend/internal/repository"
	"github.com/eventconnect/backend/internal/timebucket"
)

type fixture struct {
	users  *repository.InMemoryUserRepository
	events *repository.InMemoryEventRepository
	rsvps  *repository.InMemoryRSVPRepository
	chat   *repository.InMemoryChatRepository

	userService  *UserService
	eventService *EventService
	rsvpService  *RSVPService
	chatService  *ChatService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := &fixture{
		users:  repository.NewInMemoryUserRepository(),
		events: repository.NewInMemoryEventRepository(),
		rsvps:  repository.NewInMemoryRSVPRepository(),
		chat:   repository.NewInMemoryChatRepository(),
	}

	f.userService = NewUserService(f.users, log)
	f.eventService = NewEventService(f.events, f.users, f.rsvps, log)
	f.rsvpService = NewRSVPService(f.rsvps, f.events, log)
	f.chatService = NewChatService(f.chat, f.rsvps, f.events, f.users, 2000, log)

	return f
}

func (f *fixture) createUser(t *testing.T, name string) *domain.User {
	t.Helper()

	user, err := f.userService.Register(context.Background(), name, name+"@example.com", "password123")
	if err != nil {
		t.Fatalf("failed to create user %s: %v", name, err)
	}
	return user
}

// createEvent places an event inside the given bucket relative to the
// current clock with a zero zone offset, so Browse finds it.
func (f *fixture) createEvent(t *testing.T, organizer *domain.User, title string, bucket timebucket.Bucket) *domain.Event {
	t.Helper()

	window := bucket.Window(time.Now(), 0)
	start := window.Start.Add(time.Hour)

	event := domain.NewEvent(title, organizer.ID)
	event.Description = fmt.Sprintf("%s in bucket %s", title, bucket.ID())
	event.Category = "social"
	event.Date = start.Format("2006-01-02")
	event.Time = start.Format("15:04")
	event.Location = "Test Hall"

	created, err := f.eventService.CreateEvent(context.Background(), event)
	if err != nil {
		t.Fatalf("failed to create event %s: %v", title, err)
	}
	return created
}
