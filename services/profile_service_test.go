package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mbugua512/skillswap/database"
	"github.com/mbugua512/skillswap/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBProfileStore(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	store := dbProfileStore{}

	user := createTestUser(t, "mentor", "mentor")

	t.Run("get existing profile", func(t *testing.T) {
		got, err := store.GetProfile(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.DisplayName, got.DisplayName)
	})

	t.Run("get unknown profile", func(t *testing.T) {
		_, err := store.GetProfile(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update profile fields", func(t *testing.T) {
		err := store.UpdateProfile(ctx, user.ID, map[string]interface{}{
			"bio":      "I teach conversational Spanish.",
			"location": "Nairobi",
		})
		require.NoError(t, err)

		var reloaded models.User
		require.NoError(t, database.DB.First(&reloaded, "id = ?", user.ID).Error)
		require.NotNil(t, reloaded.Bio)
		assert.Equal(t, "I teach conversational Spanish.", *reloaded.Bio)
		require.NotNil(t, reloaded.Location)
		assert.Equal(t, "Nairobi", *reloaded.Location)
	})

	t.Run("update unknown user", func(t *testing.T) {
		err := store.UpdateProfile(ctx, uuid.New(), map[string]interface{}{"bio": "x"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
