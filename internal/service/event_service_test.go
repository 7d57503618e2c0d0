package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/eventconnect/backend/internal/domain"
	"github.com/eventconnect/backend/internal/repository"
	"github.com/eventconnect/backend/internal/timebucket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowseEmptyBucket(t *testing.T) {
	f := newFixture(t)

	// No events at all: the bucket query is an empty list, not an
	// error.
	events, err := f.eventService.Browse(context.Background(), "day3_night", 0, 100, uuid.Nil)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestBrowseFiltersByBucket(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	organizer := f.createUser(t, "organizer")
	morning := timebucket.Bucket{DayOffset: 2, Period: timebucket.PeriodMorning}
	night := timebucket.Bucket{DayOffset: 2, Period: timebucket.PeriodNight}

	wanted := f.createEvent(t, organizer, "Sunrise Run", morning)
	f.createEvent(t, organizer, "Pub Quiz", night)

	events, err := f.eventService.Browse(ctx, morning.ID(), 0, 100, uuid.Nil)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, wanted.ID, events[0].Event.ID)
	assert.Equal(t, organizer.ID, events[0].Organizer.ID)
}

func TestBrowseRejectsBadFilter(t *testing.T) {
	f := newFixture(t)

	_, err := f.eventService.Browse(context.Background(), "nextweek_dawn", 0, 100, uuid.Nil)
	assert.ErrorIs(t, err, timebucket.ErrBadID)
}

func TestBrowseCarriesViewerStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	organizer := f.createUser(t, "organizer")
	viewer := f.createUser(t, "viewer")
	bucket := timebucket.Bucket{DayOffset: 1, Period: timebucket.PeriodAfternoon}
	event := f.createEvent(t, organizer, "Gallery Walk", bucket)

	_, _, err := f.rsvpService.SetStatus(ctx, event.ID, viewer.ID, domain.RSVPStatusMaybe)
	require.NoError(t, err)

	events, err := f.eventService.Browse(ctx, bucket.ID(), 0, 100, viewer.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.RSVPStatusMaybe, events[0].ViewerStatus)

	// An anonymous viewer sees no own-status.
	events, err = f.eventService.Browse(ctx, bucket.ID(), 0, 100, uuid.Nil)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Empty(t, string(events[0].ViewerStatus))
}

func TestBrowseExcludesDeactivated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	organizer := f.createUser(t, "organizer")
	bucket := timebucket.Bucket{DayOffset: 1, Period: timebucket.PeriodMorning}
	event := f.createEvent(t, organizer, "Cancelled Brunch", bucket)

	require.NoError(t, f.eventService.DeactivateEvent(ctx, organizer.ID, event.ID))

	events, err := f.eventService.Browse(ctx, bucket.ID(), 0, 100, uuid.Nil)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestCreateEventValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	organizer := f.createUser(t, "organizer")

	base := func() *domain.Event {
		event := domain.NewEvent("Board Games", organizer.ID)
		event.Category = "games"
		event.Date = "2026-09-10"
		event.Time = "19:00"
		return event
	}

	t.Run("unknown category", func(t *testing.T) {
		event := base()
		event.Category = "underwater-basket-weaving"
		_, err := f.eventService.CreateEvent(ctx, event)
		assert.Error(t, err)
	})

	t.Run("bad date", func(t *testing.T) {
		event := base()
		event.Date = "10.09.2026"
		_, err := f.eventService.CreateEvent(ctx, event)
		assert.Error(t, err)
	})

	t.Run("bad time", func(t *testing.T) {
		event := base()
		event.Time = "7pm"
		_, err := f.eventService.CreateEvent(ctx, event)
		assert.Error(t, err)
	})

	t.Run("free event price normalized", func(t *testing.T) {
		event := base()
		event.IsFree = true
		event.Price = "15.00"
		created, err := f.eventService.CreateEvent(ctx, event)
		require.NoError(t, err)
		assert.Equal(t, "0", created.Price)
	})

	t.Run("malformed price", func(t *testing.T) {
		event := base()
		event.Price = "free!!!"
		_, err := f.eventService.CreateEvent(ctx, event)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("negative price", func(t *testing.T) {
		event := base()
		event.Price = "-5"
		_, err := f.eventService.CreateEvent(ctx, event)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestCreateEventCanonicalizesDateAndTime(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	organizer := f.createUser(t, "organizer")
	bucket := timebucket.Bucket{DayOffset: 1, Period: timebucket.PeriodMorning}
	window := bucket.Window(time.Now(), 0)
	day := window.Start

	// Non-padded input parses, but the stored form must be the
	// zero-padded one the window queries compare against.
	event := domain.NewEvent("Early Yoga", organizer.ID)
	event.Category = "sports"
	event.Date = fmt.Sprintf("%d-%d-%d", day.Year(), int(day.Month()), day.Day())
	event.Time = "9:00"

	created, err := f.eventService.CreateEvent(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, day.Format("2006-01-02"), created.Date)
	assert.Equal(t, "09:00", created.Time)

	events, err := f.eventService.Browse(ctx, bucket.ID(), 0, 100, uuid.Nil)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, created.ID, events[0].Event.ID)
}

func TestUpdateEventKeepsDeactivation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	organizer := f.createUser(t, "organizer")
	bucket := timebucket.Bucket{DayOffset: 1, Period: timebucket.PeriodMorning}
	event := f.createEvent(t, organizer, "Postponed Hike", bucket)

	require.NoError(t, f.eventService.DeactivateEvent(ctx, organizer.ID, event.ID))

	edited := *event
	edited.Title = "Postponed Hike (new trail)"
	updated, err := f.eventService.UpdateEvent(ctx, organizer.ID, &edited)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	// Editing must not quietly resurrect the event in the feed.
	events, err := f.eventService.Browse(ctx, bucket.ID(), 0, 100, uuid.Nil)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestUpdateEventRequiresOrganizer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	organizer := f.createUser(t, "organizer")
	stranger := f.createUser(t, "stranger")
	event := f.createEvent(t, organizer, "Picnic", timebucket.Bucket{DayOffset: 1, Period: timebucket.PeriodMorning})

	edited := *event
	edited.Title = "Hijacked Picnic"

	_, err := f.eventService.UpdateEvent(ctx, stranger.ID, &edited)
	assert.ErrorIs(t, err, ErrNotOrganizer)

	err = f.eventService.DeactivateEvent(ctx, stranger.ID, event.ID)
	assert.ErrorIs(t, err, ErrNotOrganizer)
}

func TestGetEventMissingOrganizerIsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// An event whose organizer record is gone must surface as a
	// distinct not-found, not a transport error.
	event := domain.NewEvent("Orphaned", uuid.New())
	event.Category = "social"
	event.Date = "2026-09-10"
	event.Time = "12:00"
	require.NoError(t, f.events.Create(ctx, event))

	_, err := f.eventService.GetEvent(ctx, event.ID, uuid.Nil)
	assert.ErrorIs(t, err, ErrOrganizerMissing)
}

func TestGetEventNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.eventService.GetEvent(context.Background(), 404, uuid.Nil)
	assert.ErrorIs(t, err, repository.ErrEventNotFound)
}

func TestListByOrganizer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	organizer := f.createUser(t, "organizer")
	other := f.createUser(t, "other")

	f.createEvent(t, organizer, "Mine A", timebucket.Bucket{DayOffset: 1, Period: timebucket.PeriodMorning})
	f.createEvent(t, organizer, "Mine B", timebucket.Bucket{DayOffset: 2, Period: timebucket.PeriodNight})
	f.createEvent(t, other, "Theirs", timebucket.Bucket{DayOffset: 1, Period: timebucket.PeriodMorning})

	events, err := f.eventService.ListByOrganizer(ctx, organizer.ID)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestBrowseLimitCap(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	organizer := f.createUser(t, "organizer")
	bucket := timebucket.Bucket{DayOffset: 1, Period: timebucket.PeriodAfternoon}

	window := bucket.Window(time.Now(), 0)
	for i := 0; i < 5; i++ {
		start := window.Start.Add(time.Duration(i) * time.Minute)
		event := domain.NewEvent("Popup", organizer.ID)
		event.Category = "food"
		event.Date = start.Format("2006-01-02")
		event.Time = start.Format("15:04")
		_, err := f.eventService.CreateEvent(ctx, event)
		require.NoError(t, err)
	}

	events, err := f.eventService.Browse(ctx, bucket.ID(), 0, 2, uuid.Nil)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}
