package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const avatarSeedLength = 16

// User represents a registered profile that can organize events,
// RSVP and chat.
type User struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email,omitempty"`
	PasswordHash    string    `json:"-"`
	Location        string    `json:"location,omitempty"`
	Interests       []string  `json:"interests"`
	PersonalityTags []string  `json:"personality_tags"`
	Bio             string    `json:"bio,omitempty"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
	AnimeAvatarSeed string    `json:"anime_avatar_seed"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewUser(name string, email string, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:              uuid.New(),
		Name:            name,
		Email:           email,
		PasswordHash:    passwordHash,
		Interests:       []string{},
		PersonalityTags: []string{},
		AnimeAvatarSeed: GenerateAvatarSeed(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// GenerateAvatarSeed produces a fresh seed for the generated-avatar
// service. A user never carries an empty seed.
func GenerateAvatarSeed() string {
	seed := strings.ReplaceAll(uuid.New().String(), "-", "")
	if len(seed) <= avatarSeedLength {
		return seed
	}
	return seed[:avatarSeedLength]
}
