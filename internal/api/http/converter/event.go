package converter

import (
	"time"

	"github.com/eventconnect/backend/internal/domain"
	"github.com/google/uuid"
)

// OrganizerResponse is the public slice of a profile shown on event
// cards. Email and tags stay private.
type OrganizerResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Location        string    `json:"location,omitempty"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
	AnimeAvatarSeed string    `json:"anime_avatar_seed"`
}

type EventResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Price       string    `json:"price"`
	IsFree      bool      `json:"is_free"`
	MaxCapacity *int      `json:"max_capacity,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`

	ParkingInfo        string `json:"parking_info,omitempty"`
	MeetingPoint       string `json:"meeting_point,omitempty"`
	Duration           string `json:"duration,omitempty"`
	WhatToBring        string `json:"what_to_bring,omitempty"`
	SpecialNotes       string `json:"special_notes,omitempty"`
	Requirements       string `json:"requirements,omitempty"`
	ContactInfo        string `json:"contact_info,omitempty"`
	CancellationPolicy string `json:"cancellation_policy,omitempty"`

	Organizer    OrganizerResponse `json:"organizer"`
	RSVPCount    int               `json:"rsvp_count"`
	MaybeCount   int               `json:"maybe_count"`
	ViewerStatus string            `json:"viewer_status,omitempty"`
}

func EventToAPI(e *domain.EventWithOrganizer) *EventResponse {
	return &EventResponse{
		ID:                 e.Event.ID,
		Title:              e.Event.Title,
		Description:        e.Event.Description,
		Category:           e.Event.Category,
		Date:               e.Event.Date,
		Time:               e.Event.Time,
		Location:           e.Event.Location,
		Latitude:           e.Event.Latitude,
		Longitude:          e.Event.Longitude,
		Price:              e.Event.Price,
		IsFree:             e.Event.IsFree,
		MaxCapacity:        e.Event.MaxCapacity,
		IsActive:           e.Event.IsActive,
		CreatedAt:          e.Event.CreatedAt,
		ParkingInfo:        e.Event.ParkingInfo,
		MeetingPoint:       e.Event.MeetingPoint,
		Duration:           e.Event.Duration,
		WhatToBring:        e.Event.WhatToBring,
		SpecialNotes:       e.Event.SpecialNotes,
		Requirements:       e.Event.Requirements,
		ContactInfo:        e.Event.ContactInfo,
		CancellationPolicy: e.Event.CancellationPolicy,
		Organizer: OrganizerResponse{
			ID:              e.Organizer.ID,
			Name:            e.Organizer.Name,
			Location:        e.Organizer.Location,
			AvatarURL:       e.Organizer.AvatarURL,
			AnimeAvatarSeed: e.Organizer.AnimeAvatarSeed,
		},
		RSVPCount:    e.RSVPCount,
		MaybeCount:   e.MaybeCount,
		ViewerStatus: string(e.ViewerStatus),
	}
}

func EventsToAPI(events []*domain.EventWithOrganizer) []*EventResponse {
	result := make([]*EventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, EventToAPI(e))
	}
	return result
}

type ChatMessageResponse struct {
	ID          int64     `json:"id"`
	EventID     int64     `json:"event_id"`
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name,omitempty"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

func ChatMessageToAPI(m *domain.ChatMessage) *ChatMessageResponse {
	return &ChatMessageResponse{
		ID:          m.ID,
		EventID:     m.EventID,
		UserID:      m.UserID,
		DisplayName: m.DisplayName,
		Message:     m.Message,
		CreatedAt:   m.CreatedAt,
	}
}

func ChatMessagesToAPI(messages []*domain.ChatMessage) []*ChatMessageResponse {
	result := make([]*ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		result = append(result, ChatMessageToAPI(m))
	}
	return result
}
