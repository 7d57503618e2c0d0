package http

import (
	"testing"

	"github.com/eventconnect/backend/internal/api/http/converter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatHubFanOut(t *testing.T) {
	hub := NewChatHub()

	subA := hub.Subscribe(1)
	subB := hub.Subscribe(1)
	other := hub.Subscribe(2)

	frame := StreamFrame{
		Type:    "message",
		EventID: 1,
		Message: &converter.ChatMessageResponse{ID: 7, EventID: 1, Message: "hi"},
	}
	hub.Publish(1, frame)

	assert.Equal(t, frame, <-subA.frames)
	assert.Equal(t, frame, <-subB.frames)

	select {
	case f := <-other.frames:
		t.Fatalf("subscriber of another event received %+v", f)
	default:
	}
}

func TestChatHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewChatHub()

	sub := hub.Subscribe(1)
	hub.Unsubscribe(1, sub)

	_, open := <-sub.frames
	assert.False(t, open)

	// Publishing after the last unsubscribe must not panic.
	hub.Publish(1, StreamFrame{Type: "message", EventID: 1})

	// A double unsubscribe is harmless.
	hub.Unsubscribe(1, sub)
}

func TestChatHubSlowSubscriberDropsFrames(t *testing.T) {
	hub := NewChatHub()

	sub := hub.Subscribe(5)
	require.NotNil(t, sub)

	for i := 0; i < 100; i++ {
		hub.Publish(5, StreamFrame{Type: "message", EventID: 5})
	}

	// The buffer caps what a stalled connection can hold; the
	// publisher never blocked to get here.
	assert.LessOrEqual(t, len(sub.frames), cap(sub.frames))
}
