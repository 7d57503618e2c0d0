package service

import (
	"context"
	"strings"
	"testing"

	"github.com/eventconnect/backend/internal/domain"
	"github.com/eventconnect/backend/internal/timebucket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatOrdering(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	organizer := f.createUser(t, "organizer")
	event := f.createEvent(t, organizer, "Picnic", timebucket.Bucket{DayOffset: 1, Period: timebucket.PeriodMorning})

	for _, text := range []string{"A", "B", "C"} {
		_, err := f.chatService.PostMessage(ctx, event.ID, organizer.ID, text)
		require.NoError(t, err)
	}

	messages, err := f.chatService.ListMessages(ctx, event.ID, organizer.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "A", messages[0].Message)
	assert.Equal(t, "B", messages[1].Message)
	assert.Equal(t, "C", messages[2].Message)
}

func TestChatPagination(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	organizer := f.createUser(t, "organizer")
	event := f.createEvent(t, organizer, "Picnic", timebucket.Bucket{DayOffset: 1, Period: timebucket.PeriodMorning})

	for _, text := range []string{"one", "two", "three", "four"} {
		_, err := f.chatService.PostMessage(ctx, event.ID, organizer.ID, text)
		require.NoError(t, err)
	}

	// Latest page first, then the page before its oldest id; both in
	// creation order.
	latest, err := f.chatService.ListMessages(ctx, event.ID, organizer.ID, 2, 0)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "three", latest[0].Message)
	assert.Equal(t, "four", latest[1].Message)

	earlier, err := f.chatService.ListMessages(ctx, event.ID, organizer.ID, 2, latest[0].ID)
	require.NoError(t, err)
	require.Len(t, earlier, 2)
	assert.Equal(t, "one", earlier[0].Message)
	assert.Equal(t, "two", earlier[1].Message)
}

func TestChatAccessPolicy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	organizer := f.createUser(t, "organizer")
	goingUser := f.createUser(t, "going")
	maybeUser := f.createUser(t, "maybe")
	declined := f.createUser(t, "declined")
	stranger := f.createUser(t, "stranger")

	event := f.createEvent(t, organizer, "Picnic", timebucket.Bucket{DayOffset: 1, Period: timebucket.PeriodMorning})

	_, _, err := f.rsvpService.SetStatus(ctx, event.ID, goingUser.ID, domain.RSVPStatusGoing)
	require.NoError(t, err)
	_, _, err = f.rsvpService.SetStatus(ctx, event.ID, maybeUser.ID, domain.RSVPStatusMaybe)
	require.NoError(t, err)
	_, _, err = f.rsvpService.SetStatus(ctx, event.ID, declined.ID, domain.RSVPStatusNotGoing)
	require.NoError(t, err)

	_, err = f.chatService.PostMessage(ctx, event.ID, organizer.ID, "welcome")
	assert.NoError(t, err)
	_, err = f.chatService.PostMessage(ctx, event.ID, goingUser.ID, "hey")
	assert.NoError(t, err)
	_, err = f.chatService.PostMessage(ctx, event.ID, maybeUser.ID, "might come")
	assert.NoError(t, err)

	_, err = f.chatService.PostMessage(ctx, event.ID, declined.ID, "nope")
	assert.ErrorIs(t, err, ErrNotParticipant)
	_, err = f.chatService.PostMessage(ctx, event.ID, stranger.ID, "hi")
	assert.ErrorIs(t, err, ErrNotParticipant)

	_, err = f.chatService.ListMessages(ctx, event.ID, stranger.ID, 0, 0)
	assert.ErrorIs(t, err, ErrNotParticipant)

	assert.NoError(t, f.chatService.Access(ctx, event.ID, goingUser.ID))
	assert.ErrorIs(t, f.chatService.Access(ctx, event.ID, stranger.ID), ErrNotParticipant)
}

func TestChatMessageValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	organizer := f.createUser(t, "organizer")
	event := f.createEvent(t, organizer, "Picnic", timebucket.Bucket{DayOffset: 1, Period: timebucket.PeriodMorning})

	_, err := f.chatService.PostMessage(ctx, event.ID, organizer.ID, "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = f.chatService.PostMessage(ctx, event.ID, organizer.ID, strings.Repeat("x", 2001))
	assert.ErrorIs(t, err, ErrMessageTooLong)
}
