package http

import (
	"sync"

	"github.com/eventconnect/backend/internal/api/http/converter"
)

// StreamFrame is one envelope on an event's live chat stream.
type StreamFrame struct {
	Type    string                         `json:"type"` // "joined", "message", "error"
	EventID int64                          `json:"event_id,omitempty"`
	Message *converter.ChatMessageResponse `json:"message,omitempty"`
	Error   string                         `json:"error,omitempty"`
}

type chatSubscriber struct {
	frames chan StreamFrame
}

func (s *chatSubscriber) enqueue(frame StreamFrame) {
	select {
	case s.frames <- frame:
	default:
	}
}

// ChatHub fans new messages out to every open stream of the same
// event. Slow consumers drop frames rather than block the sender.
type ChatHub struct {
	mu          sync.RWMutex
	subscribers map[int64]map[*chatSubscriber]struct{}
}

func NewChatHub() *ChatHub {
	return &ChatHub{subscribers: make(map[int64]map[*chatSubscriber]struct{})}
}

func (h *ChatHub) Subscribe(eventID int64) *chatSubscriber {
	sub := &chatSubscriber{frames: make(chan StreamFrame, 16)}

	h.mu.Lock()
	defer h.mu.Unlock()

	byEvent, ok := h.subscribers[eventID]
	if !ok {
		byEvent = make(map[*chatSubscriber]struct{})
		h.subscribers[eventID] = byEvent
	}
	byEvent[sub] = struct{}{}
	return sub
}

func (h *ChatHub) Unsubscribe(eventID int64, sub *chatSubscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	byEvent, ok := h.subscribers[eventID]
	if !ok {
		return
	}
	if _, ok := byEvent[sub]; !ok {
		return
	}

	delete(byEvent, sub)
	close(sub.frames)
	if len(byEvent) == 0 {
		delete(h.subscribers, eventID)
	}
}

func (h *ChatHub) Publish(eventID int64, frame StreamFrame) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subscribers[eventID] {
		sub.enqueue(frame)
	}
}
