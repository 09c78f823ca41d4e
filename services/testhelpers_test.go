package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mbugua512/skillswap/database"
	"github.com/mbugua512/skillswap/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A fresh connection would see an empty in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.SkillPost{},
		&models.Session{},
		&models.Review{},
		&models.Bookmark{},
		&models.Conversation{},
		&models.Message{},
		&models.Report{},
		&models.Badge{},
		&models.Certificate{},
	))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		sqlDB.Close()
	})

	return db
}

func createTestUser(t *testing.T, displayName, role string) models.User {
	t.Helper()
	user := models.User{
		DisplayName: displayName,
		Email:       displayName + "-" + uuid.NewString()[:8] + "@example.com",
		Password:    "not-a-real-hash",
		Role:        role,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func createTestSkillPost(t *testing.T, mentorID uuid.UUID) models.SkillPost {
	t.Helper()
	post := models.SkillPost{
		MentorID:    mentorID,
		Title:       "Conversational Spanish",
		Description: "Weekly practice sessions for intermediate speakers.",
		Tags:        []string{"spanish", "language"},
		Active:      true,
	}
	require.NoError(t, database.DB.Create(&post).Error)
	return post
}

func createTestSession(t *testing.T, post models.SkillPost, learnerID uuid.UUID, status string) models.Session {
	t.Helper()
	session := models.Session{
		SkillPostID: &post.ID,
		MentorID:    post.MentorID,
		LearnerID:   learnerID,
		Status:      status,
	}
	require.NoError(t, database.DB.Create(&session).Error)
	return session
}
