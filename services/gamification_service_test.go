package services

import (
	"testing"

	"github.com/mbugua512/skillswap/database"
	"github.com/mbugua512/skillswap/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwardRewardsForSessionCompletion(t *testing.T) {
	setupTestDB(t)

	badge := models.Badge{Name: "First Session", Description: "Completed a first session", IconURL: "https://cdn.example.com/badges/first-session.png"}
	require.NoError(t, database.DB.Create(&badge).Error)

	mentor := createTestUser(t, "mentor", "mentor")
	learner := createTestUser(t, "learner", "learner")
	post := createTestSkillPost(t, mentor.ID)

	session := createTestSession(t, post, learner.ID, models.SessionStatusCompleted)
	AwardRewardsForSessionCompletion(session)

	var reloadedLearner models.User
	require.NoError(t, database.DB.Preload("Badges").First(&reloadedLearner, "id = ?", learner.ID).Error)
	assert.Equal(t, 10, reloadedLearner.XP)
	assert.Equal(t, 1, reloadedLearner.SessionsCompleted)
	require.Len(t, reloadedLearner.Badges, 1)
	assert.Equal(t, "First Session", reloadedLearner.Badges[0].Name)

	var reloadedMentor models.User
	require.NoError(t, database.DB.First(&reloadedMentor, "id = ?", mentor.ID).Error)
	assert.Equal(t, 1, reloadedMentor.SessionsCompleted)
	assert.Equal(t, 0, reloadedMentor.XP, "mentor earns no XP for hosting")

	// A second completion keeps stacking XP but never re-awards the badge.
	second := createTestSession(t, post, learner.ID, models.SessionStatusCompleted)
	AwardRewardsForSessionCompletion(second)

	require.NoError(t, database.DB.Preload("Badges").First(&reloadedLearner, "id = ?", learner.ID).Error)
	assert.Equal(t, 20, reloadedLearner.XP)
	assert.Equal(t, 2, reloadedLearner.SessionsCompleted)
	assert.Len(t, reloadedLearner.Badges, 1)
}

func TestAwardRewardsWithoutBadgeSeeded(t *testing.T) {
	setupTestDB(t)

	mentor := createTestUser(t, "mentor", "mentor")
	learner := createTestUser(t, "learner", "learner")
	post := createTestSkillPost(t, mentor.ID)
	session := createTestSession(t, post, learner.ID, models.SessionStatusCompleted)

	// Missing badge rows must not block the XP grant.
	AwardRewardsForSessionCompletion(session)

	var reloadedLearner models.User
	require.NoError(t, database.DB.Preload("Badges").First(&reloadedLearner, "id = ?", learner.ID).Error)
	assert.Equal(t, 10, reloadedLearner.XP)
	assert.Empty(t, reloadedLearner.Badges)
}
