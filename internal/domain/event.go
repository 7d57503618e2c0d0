package domain

import (
	"time"

	"github.com/google/uuid"
)

// Categories an event can be filed under. The browse screens treat this
// set as closed.
var EventCategories = []string{
	"music",
	"sports",
	"food",
	"arts",
	"tech",
	"outdoors",
	"games",
	"social",
}

func ValidCategory(category string) bool {
	for _, c := range EventCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Event is a single listed happening. Date is a plain calendar date
// ("2006-01-02") and Time a local time of day ("15:04"); both are
// interpreted in the viewer's time zone, never the server's.
type Event struct {
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
	OrganizerID uuid.UUID `json:"organizer_id"`

	ParkingInfo        string `json:"parking_info,omitempty"`
	MeetingPoint       string `json:"meeting_point,omitempty"`
	Duration           string `json:"duration,omitempty"`
	WhatToBring        string `json:"what_to_bring,omitempty"`
	SpecialNotes       string `json:"special_notes,omitempty"`
	Requirements       string `json:"requirements,omitempty"`
	ContactInfo        string `json:"contact_info,omitempty"`
	CancellationPolicy string `json:"cancellation_policy,omitempty"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewEvent(title string, organizer uuid.UUID) *Event {
	now := time.Now().UTC()
	return &Event{
		Title:       title,
		OrganizerID: organizer,
		Price:       "0",
		IsFree:      true,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// EventWithOrganizer is the browse/detail projection: the event joined
// with its organizer, aggregate RSVP counts and the viewer's own status
// (empty when the viewer never responded).
type EventWithOrganizer struct {
	Event        *Event     `json:"event"`
	Organizer    *User      `json:"organizer"`
	RSVPCount    int        `json:"rsvp_count"`
	MaybeCount   int        `json:"maybe_count"`
	ViewerStatus RSVPStatus `json:"viewer_status,omitempty"`
}
