package service

import (
	"context"
	"testing"

	"github.com/eventconnect/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.userService.Register(ctx, "Dana", "dana@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, user.AnimeAvatarSeed, "a new profile always has an avatar seed")
	assert.NotEqual(t, "password123", user.PasswordHash)

	logged, err := f.userService.Login(ctx, "Dana@Example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	_, err = f.userService.Login(ctx, "dana@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.userService.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.userService.Register(ctx, "Dana", "dana@example.com", "password123")
	require.NoError(t, err)

	_, err = f.userService.Register(ctx, "Other Dana", "dana@example.com", "password456")
	assert.ErrorIs(t, err, repository.ErrUserEmailExists)
}

func TestUpdateProfilePartial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := f.createUser(t, "dana")

	location := "Lisbon"
	interests := []string{"hiking", "jazz"}
	updated, err := f.userService.UpdateProfile(ctx, user.ID, ProfileUpdate{
		Location:  &location,
		Interests: &interests,
	})
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", updated.Location)
	assert.Equal(t, interests, updated.Interests)
	assert.Equal(t, "dana", updated.Name, "unset fields stay unchanged")
}

func TestGenerateAvatarRequiresDescription(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := f.createUser(t, "dana")

	_, err := f.userService.GenerateAvatar(ctx, user.ID, "  ")
	assert.ErrorIs(t, err, ErrEmptyDescription)

	seed, err := f.userService.GenerateAvatar(ctx, user.ID, "purple-haired space pirate")
	require.NoError(t, err)
	assert.NotEmpty(t, seed)
}

func TestUpdateAvatarKeepsSeedInvariant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := f.createUser(t, "dana")
	originalSeed := user.AnimeAvatarSeed

	// An empty seed in the update must not clear the stored one.
	updated, err := f.userService.UpdateAvatar(ctx, user.ID, "", "https://cdn.example.com/dana.png")
	require.NoError(t, err)
	assert.Equal(t, originalSeed, updated.AnimeAvatarSeed)
	assert.Equal(t, "https://cdn.example.com/dana.png", updated.AvatarURL)

	updated, err = f.userService.UpdateAvatar(ctx, user.ID, "fresh-seed-123", "")
	require.NoError(t, err)
	assert.Equal(t, "fresh-seed-123", updated.AnimeAvatarSeed)
}
