package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mbugua512/skillswap/database"
	"github.com/mbugua512/skillswap/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestSession(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	mentor := createTestUser(t, "mentor", "mentor")
	learner := createTestUser(t, "learner", "learner")
	post := createTestSkillPost(t, mentor.ID)

	t.Run("creates a pending session", func(t *testing.T) {
		session, err := RequestSession(ctx, post.ID, learner.ID, "Hi, I'd love to practice!", nil)
		require.NoError(t, err)

		assert.Equal(t, models.SessionStatusPending, session.Status)
		assert.Equal(t, mentor.ID, session.MentorID)
		assert.Equal(t, learner.ID, session.LearnerID)
		require.NotNil(t, session.SkillPostID)
		assert.Equal(t, post.ID, *session.SkillPostID)
		assert.Nil(t, session.MeetingLink)
	})

	t.Run("unknown post", func(t *testing.T) {
		_, err := RequestSession(ctx, uuid.New(), learner.ID, "", nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("inactive post", func(t *testing.T) {
		inactive := createTestSkillPost(t, mentor.ID)
		require.NoError(t, database.DB.Model(&inactive).Update("active", false).Error)

		_, err := RequestSession(ctx, inactive.ID, learner.ID, "", nil)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("mentor cannot request own post", func(t *testing.T) {
		_, err := RequestSession(ctx, post.ID, mentor.ID, "", nil)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})
}

func TestUpdateSessionStatusTransitions(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	mentor := createTestUser(t, "mentor", "mentor")
	learner := createTestUser(t, "learner", "learner")
	post := createTestSkillPost(t, mentor.ID)

	t.Run("mentor confirms pending session", func(t *testing.T) {
		session := createTestSession(t, post, learner.ID, models.SessionStatusPending)

		updated, err := UpdateSessionStatus(ctx, session.ID, mentor.ID, models.SessionStatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, models.SessionStatusConfirmed, updated.Status)
		require.NotNil(t, updated.MeetingLink)
		assert.Equal(t, GenerateMeetingURL(session.ID), *updated.MeetingLink)
	})

	t.Run("learner cannot confirm", func(t *testing.T) {
		session := createTestSession(t, post, learner.ID, models.SessionStatusPending)

		_, err := UpdateSessionStatus(ctx, session.ID, learner.ID, models.SessionStatusConfirmed)
		assert.ErrorIs(t, err, ErrPermissionDenied)

		var reloaded models.Session
		require.NoError(t, database.DB.First(&reloaded, "id = ?", session.ID).Error)
		assert.Equal(t, models.SessionStatusPending, reloaded.Status, "denied transition must not mutate the session")
		assert.Nil(t, reloaded.MeetingLink)
	})

	t.Run("either participant may cancel a pending session", func(t *testing.T) {
		session := createTestSession(t, post, learner.ID, models.SessionStatusPending)

		updated, err := UpdateSessionStatus(ctx, session.ID, learner.ID, models.SessionStatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, models.SessionStatusCancelled, updated.Status)
	})

	t.Run("confirmed session can be completed", func(t *testing.T) {
		session := createTestSession(t, post, learner.ID, models.SessionStatusPending)

		_, err := UpdateSessionStatus(ctx, session.ID, mentor.ID, models.SessionStatusConfirmed)
		require.NoError(t, err)

		updated, err := UpdateSessionStatus(ctx, session.ID, learner.ID, models.SessionStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, models.SessionStatusCompleted, updated.Status)

		var reloaded models.Session
		require.NoError(t, database.DB.First(&reloaded, "id = ?", session.ID).Error)
		assert.Equal(t, models.SessionStatusCompleted, reloaded.Status)
		require.NotNil(t, reloaded.MeetingLink, "completion must not drop the meeting link")
		assert.Equal(t, GenerateMeetingURL(session.ID), *reloaded.MeetingLink)
	})

	t.Run("confirmed session can be cancelled", func(t *testing.T) {
		session := createTestSession(t, post, learner.ID, models.SessionStatusPending)

		_, err := UpdateSessionStatus(ctx, session.ID, mentor.ID, models.SessionStatusConfirmed)
		require.NoError(t, err)

		updated, err := UpdateSessionStatus(ctx, session.ID, learner.ID, models.SessionStatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, models.SessionStatusCancelled, updated.Status)

		_, err = UpdateSessionStatus(ctx, session.ID, mentor.ID, models.SessionStatusCompleted)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("pending cannot jump to completed", func(t *testing.T) {
		session := createTestSession(t, post, learner.ID, models.SessionStatusPending)

		_, err := UpdateSessionStatus(ctx, session.ID, mentor.ID, models.SessionStatusCompleted)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("terminal states reject every transition", func(t *testing.T) {
		for _, terminal := range []string{models.SessionStatusCompleted, models.SessionStatusCancelled} {
			session := createTestSession(t, post, learner.ID, terminal)
			for _, next := range []string{models.SessionStatusPending, models.SessionStatusConfirmed, models.SessionStatusCompleted, models.SessionStatusCancelled} {
				_, err := UpdateSessionStatus(ctx, session.ID, mentor.ID, next)
				assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", terminal, next)
			}
		}
	})

	t.Run("outsider is rejected before transition checks", func(t *testing.T) {
		session := createTestSession(t, post, learner.ID, models.SessionStatusPending)
		stranger := createTestUser(t, "stranger", "learner")

		_, err := UpdateSessionStatus(ctx, session.ID, stranger.ID, models.SessionStatusCancelled)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := UpdateSessionStatus(ctx, uuid.New(), mentor.ID, models.SessionStatusConfirmed)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateSessionStatusKeepsExistingMeetingLink(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	mentor := createTestUser(t, "mentor", "mentor")
	learner := createTestUser(t, "learner", "learner")
	post := createTestSkillPost(t, mentor.ID)

	session := createTestSession(t, post, learner.ID, models.SessionStatusPending)
	existing := "https://meet.jit.si/skillswap-previously-agreed"
	require.NoError(t, database.DB.Model(&session).Update("meeting_link", existing).Error)

	updated, err := UpdateSessionStatus(ctx, session.ID, mentor.ID, models.SessionStatusConfirmed)
	require.NoError(t, err)
	require.NotNil(t, updated.MeetingLink)
	assert.Equal(t, existing, *updated.MeetingLink)
}

func TestUpdateSessionStatusLostRace(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	mentor := createTestUser(t, "mentor", "mentor")
	learner := createTestUser(t, "learner", "learner")
	post := createTestSkillPost(t, mentor.ID)
	session := createTestSession(t, post, learner.ID, models.SessionStatusPending)

	// Both sides observed pending. The cancel lands first, so the confirm's
	// conditional write must hit zero rows and fail without side effects.
	_, err := UpdateSessionStatus(ctx, session.ID, learner.ID, models.SessionStatusCancelled)
	require.NoError(t, err)

	_, err = UpdateSessionStatus(ctx, session.ID, mentor.ID, models.SessionStatusConfirmed)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	var reloaded models.Session
	require.NoError(t, database.DB.First(&reloaded, "id = ?", session.ID).Error)
	assert.Equal(t, models.SessionStatusCancelled, reloaded.Status)
	assert.Nil(t, reloaded.MeetingLink)
}

func TestSessionLifecycleEndToEnd(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	mentor := createTestUser(t, "mentor", "mentor")
	learner := createTestUser(t, "learner", "learner")
	post := createTestSkillPost(t, mentor.ID)

	session, err := RequestSession(ctx, post.ID, learner.ID, "Can we do Tuesdays?", nil)
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusPending, session.Status)

	confirmed, err := UpdateSessionStatus(ctx, session.ID, mentor.ID, models.SessionStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusConfirmed, confirmed.Status)
	require.NotNil(t, confirmed.MeetingLink)

	completed, err := UpdateSessionStatus(ctx, session.ID, learner.ID, models.SessionStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusCompleted, completed.Status)
	require.NotNil(t, completed.MeetingLink)
	assert.Equal(t, *confirmed.MeetingLink, *completed.MeetingLink)

	review, err := SubmitReview(ctx, session.ID, learner.ID, 5, "Fantastic mentor")
	require.NoError(t, err)
	assert.Equal(t, session.ID, review.SessionID)

	_, err = SubmitReview(ctx, session.ID, learner.ID, 1, "changed my mind")
	assert.ErrorIs(t, err, ErrConflict)

	var reviewCount int64
	database.DB.Model(&models.Review{}).Where("session_id = ?", session.ID).Count(&reviewCount)
	assert.EqualValues(t, 1, reviewCount)

	var reloadedMentor models.User
	require.NoError(t, database.DB.First(&reloadedMentor, "id = ?", mentor.ID).Error)
	assert.Equal(t, 1, reloadedMentor.ReviewCount)
	assert.InDelta(t, 5.0, reloadedMentor.Rating, 1e-9)

	var reloadedPost models.SkillPost
	require.NoError(t, database.DB.First(&reloadedPost, "id = ?", post.ID).Error)
	assert.Equal(t, 1, reloadedPost.ReviewCount)
	assert.InDelta(t, 5.0, reloadedPost.Rating, 1e-9)
}

type failingProfileStore struct{}

func (failingProfileStore) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return nil, fmt.Errorf("%w: profile lookup timed out", ErrUnavailable)
}

func (failingProfileStore) UpdateProfile(ctx context.Context, userID uuid.UUID, updates map[string]interface{}) error {
	return fmt.Errorf("%w: profile update timed out", ErrUnavailable)
}

func TestListSessionsForUser(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	mentor := createTestUser(t, "mentor", "both")
	learner := createTestUser(t, "learner", "both")
	other := createTestUser(t, "other", "mentor")

	mentorPost := createTestSkillPost(t, mentor.ID)
	otherPost := createTestSkillPost(t, other.ID)

	asMentor := createTestSession(t, mentorPost, learner.ID, models.SessionStatusPending)
	asLearner := createTestSession(t, otherPost, mentor.ID, models.SessionStatusConfirmed)

	t.Run("mentor filter", func(t *testing.T) {
		sessions, err := ListSessionsForUser(ctx, mentor.ID, "mentor")
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, asMentor.ID, sessions[0].ID)
		assert.Equal(t, learner.ID, sessions[0].Participant.ID)
		assert.Equal(t, learner.DisplayName, sessions[0].Participant.DisplayName)
	})

	t.Run("learner filter", func(t *testing.T) {
		sessions, err := ListSessionsForUser(ctx, mentor.ID, "learner")
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, asLearner.ID, sessions[0].ID)
		assert.Equal(t, other.ID, sessions[0].Participant.ID)
	})

	t.Run("both sides merged without duplicates", func(t *testing.T) {
		sessions, err := ListSessionsForUser(ctx, mentor.ID, "both")
		require.NoError(t, err)
		require.Len(t, sessions, 2)

		seen := map[uuid.UUID]bool{}
		for _, s := range sessions {
			assert.False(t, seen[s.ID], "session %s listed twice", s.ID)
			seen[s.ID] = true
		}
	})

	t.Run("empty for uninvolved user", func(t *testing.T) {
		sessions, err := ListSessionsForUser(ctx, uuid.New(), "both")
		require.NoError(t, err)
		assert.Empty(t, sessions)
	})

	t.Run("profile lookup failure degrades to placeholder", func(t *testing.T) {
		prev := Profiles
		Profiles = failingProfileStore{}
		defer func() { Profiles = prev }()

		sessions, err := ListSessionsForUser(ctx, mentor.ID, "both")
		require.NoError(t, err, "listing must not fail because profiles are down")
		require.Len(t, sessions, 2)
		for _, s := range sessions {
			assert.Equal(t, "Unknown user", s.Participant.DisplayName)
			assert.NotEqual(t, uuid.Nil, s.Participant.ID)
		}
	})
}

func TestListSessionsForUserOrdersNewestFirst(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	mentor := createTestUser(t, "mentor", "mentor")
	learner := createTestUser(t, "learner", "learner")
	post := createTestSkillPost(t, mentor.ID)

	first := createTestSession(t, post, learner.ID, models.SessionStatusPending)
	second := createTestSession(t, post, learner.ID, models.SessionStatusPending)
	require.NoError(t, database.DB.Model(&models.Session{}).
		Where("id = ?", second.ID).
		Update("created_at", first.CreatedAt.Add(time.Second)).Error)

	sessions, err := ListSessionsForUser(ctx, learner.ID, "learner")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, second.ID, sessions[0].ID)
	assert.Equal(t, first.ID, sessions[1].ID)
}

func TestGetSession(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	mentor := createTestUser(t, "mentor", "mentor")
	learner := createTestUser(t, "learner", "learner")
	stranger := createTestUser(t, "stranger", "learner")
	post := createTestSkillPost(t, mentor.ID)
	session := createTestSession(t, post, learner.ID, models.SessionStatusPending)

	got, err := GetSession(ctx, session.ID, learner.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	require.NotNil(t, got.SkillPost)
	assert.Equal(t, post.Title, got.SkillPost.Title)

	_, err = GetSession(ctx, session.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = GetSession(ctx, uuid.New(), learner.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
