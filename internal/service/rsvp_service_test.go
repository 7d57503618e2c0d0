package service

import (
	"context"
	"testing"

	"github.com/eventconnect/backend/internal/domain"
	"github.com/eventconnect/backend/internal/timebucket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetStatusIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	organizer := f.createUser(t, "organizer")
	attendee := f.createUser(t, "attendee")
	event := f.createEvent(t, organizer, "Picnic", timebucket.Bucket{DayOffset: 1, Period: timebucket.PeriodMorning})

	_, counts, err := f.rsvpService.SetStatus(ctx, event.ID, attendee.ID, domain.RSVPStatusGoing)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Going)

	// Repeating the same status leaves exactly one row, unchanged.
	_, counts, err = f.rsvpService.SetStatus(ctx, event.ID, attendee.ID, domain.RSVPStatusGoing)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Going)

	rsvps, err := f.rsvpService.ListAttendees(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, rsvps, 1)
	assert.Equal(t, domain.RSVPStatusGoing, rsvps[0].Status)
}

func TestSetStatusTransitionClosure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	organizer := f.createUser(t, "organizer")
	attendee := f.createUser(t, "attendee")
	event := f.createEvent(t, organizer, "Picnic", timebucket.Bucket{DayOffset: 1, Period: timebucket.PeriodMorning})

	statuses := []domain.RSVPStatus{
		domain.RSVPStatusGoing,
		domain.RSVPStatusMaybe,
		domain.RSVPStatusNotGoing,
	}

	// Every status must be reachable from every other, and the counts
	// must track the latest status only.
	for _, from := range statuses {
		for _, to := range statuses {
			_, _, err := f.rsvpService.SetStatus(ctx, event.ID, attendee.ID, from)
			require.NoError(t, err)

			_, counts, err := f.rsvpService.SetStatus(ctx, event.ID, attendee.ID, to)
			require.NoError(t, err)

			wantGoing := 0
			wantMaybe := 0
			switch to {
			case domain.RSVPStatusGoing:
				wantGoing = 1
			case domain.RSVPStatusMaybe:
				wantMaybe = 1
			}
			assert.Equal(t, wantGoing, counts.Going, "%s -> %s", from, to)
			assert.Equal(t, wantMaybe, counts.Maybe, "%s -> %s", from, to)

			rsvps, err := f.rsvpService.ListAttendees(ctx, event.ID)
			require.NoError(t, err)
			require.Len(t, rsvps, 1, "%s -> %s", from, to)
			assert.Equal(t, to, rsvps[0].Status)
		}
	}
}

func TestSetStatusDefaultsToGoing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	organizer := f.createUser(t, "organizer")
	attendee := f.createUser(t, "attendee")
	event := f.createEvent(t, organizer, "Picnic", timebucket.Bucket{DayOffset: 2, Period: timebucket.PeriodNight})

	rsvp, counts, err := f.rsvpService.SetStatus(ctx, event.ID, attendee.ID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.RSVPStatusGoing, rsvp.Status)
	assert.Equal(t, 1, counts.Going)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	organizer := f.createUser(t, "organizer")
	attendee := f.createUser(t, "attendee")
	event := f.createEvent(t, organizer, "Picnic", timebucket.Bucket{DayOffset: 2, Period: timebucket.PeriodNight})

	_, _, err := f.rsvpService.SetStatus(ctx, event.ID, attendee.ID, "interested")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSetStatusOnInactiveEvent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	organizer := f.createUser(t, "organizer")
	attendee := f.createUser(t, "attendee")
	event := f.createEvent(t, organizer, "Picnic", timebucket.Bucket{DayOffset: 2, Period: timebucket.PeriodNight})

	require.NoError(t, f.eventService.DeactivateEvent(ctx, organizer.ID, event.ID))

	_, _, err := f.rsvpService.SetStatus(ctx, event.ID, attendee.ID, domain.RSVPStatusGoing)
	assert.ErrorIs(t, err, ErrEventInactive)
}

func TestMaybeDoesNotCountAsAttending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	organizer := f.createUser(t, "organizer")
	event := f.createEvent(t, organizer, "Picnic", timebucket.Bucket{DayOffset: 3, Period: timebucket.PeriodAfternoon})

	going := f.createUser(t, "going")
	maybe := f.createUser(t, "maybe")
	notGoing := f.createUser(t, "notgoing")

	_, _, err := f.rsvpService.SetStatus(ctx, event.ID, going.ID, domain.RSVPStatusGoing)
	require.NoError(t, err)
	_, _, err = f.rsvpService.SetStatus(ctx, event.ID, maybe.ID, domain.RSVPStatusMaybe)
	require.NoError(t, err)
	_, counts, err := f.rsvpService.SetStatus(ctx, event.ID, notGoing.ID, domain.RSVPStatusNotGoing)
	require.NoError(t, err)

	assert.Equal(t, 1, counts.Going)
	assert.Equal(t, 1, counts.Maybe)
}
