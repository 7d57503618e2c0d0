package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"size:255;not null"`
	Email           string    `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash    string    `gorm:"size:255;not null"`
	Location        string    `gorm:"size:255"`
	Interests       []string  `gorm:"serializer:json"`
	PersonalityTags []string  `gorm:"serializer:json"`
	Bio             string    `gorm:"type:text"`
	AvatarURL       string    `gorm:"size:512"`
	AnimeAvatarSeed string    `gorm:"size:64;not null"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

type Event struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"size:64;index;not null"`
	Date        string `gorm:"size:10;index;not null"`
	Time        string `gorm:"size:5;not null"`
	Location    string `gorm:"size:512"`
	Latitude    *float64
	Longitude   *float64
	Price       string `gorm:"size:32;not null;default:0"`
	IsFree      bool   `gorm:"not null"`
	MaxCapacity *int
	OrganizerID uuid.UUID `gorm:"type:uuid;index;not null"`
	Organizer   User      `gorm:"foreignKey:OrganizerID"`

	ParkingInfo        string `gorm:"type:text"`
	MeetingPoint       string `gorm:"type:text"`
	Duration           string `gorm:"size:255"`
	WhatToBring        string `gorm:"type:text"`
	SpecialNotes       string `gorm:"type:text"`
	Requirements       string `gorm:"type:text"`
	ContactInfo        string `gorm:"size:512"`
	CancellationPolicy string `gorm:"type:text"`

	IsActive  bool      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EventRSVP struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	EventID   int64     `gorm:"not null;uniqueIndex:idx_event_rsvps_event_user"`
	Event     Event     `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_event_rsvps_event_user"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Status    string    `gorm:"size:32;not null;default:going"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ChatMessage struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	EventID   int64     `gorm:"index;not null"`
	Event     Event     `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}
