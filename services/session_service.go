package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/mbugua512/skillswap/database"
	"github.com/mbugua512/skillswap/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const profileFanoutLimit = 8

// sessionTransitions is the full set of legal status transitions. Completed
// and cancelled are terminal; anything absent here fails with
// ErrInvalidTransition.
var sessionTransitions = map[string]map[string]bool{
	models.SessionStatusPending: {
		models.SessionStatusConfirmed: true,
		models.SessionStatusCancelled: true,
	},
	models.SessionStatusConfirmed: {
		models.SessionStatusCompleted: true,
		models.SessionStatusCancelled: true,
	},
}

// RequestSession creates a pending session against a skill post on behalf of
// a learner.
func RequestSession(ctx context.Context, skillPostID, learnerID uuid.UUID, message string, scheduledDate *time.Time) (*models.Session, error) {
	db := database.DB.WithContext(ctx)

	var post models.SkillPost
	if err := db.First(&post, "id = ?", skillPostID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: skill post %s", ErrNotFound, skillPostID)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !post.Active {
		return nil, fmt.Errorf("%w: skill post is no longer active", ErrInvalidState)
	}
	if post.MentorID == learnerID {
		return nil, fmt.Errorf("%w: cannot request a session on your own skill post", ErrPermissionDenied)
	}

	session := models.Session{
		SkillPostID:   &post.ID,
		MentorID:      post.MentorID,
		LearnerID:     learnerID,
		Message:       message,
		Status:        models.SessionStatusPending,
		ScheduledDate: scheduledDate,
	}
	if err := db.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &session, nil
}

// UpdateSessionStatus drives the session state machine. The persisted write
// is conditional on the status the caller observed, so of two racing
// transitions exactly one wins and the loser gets ErrInvalidTransition
// without mutating anything.
func UpdateSessionStatus(ctx context.Context, sessionID, actorID uuid.UUID, newStatus string) (*models.Session, error) {
	db := database.DB.WithContext(ctx)

	var session models.Session
	if err := db.First(&session, "id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if !session.IsParticipant(actorID) {
		return nil, fmt.Errorf("%w: not a participant of this session", ErrPermissionDenied)
	}
	if !sessionTransitions[session.Status][newStatus] {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, session.Status, newStatus)
	}
	if newStatus == models.SessionStatusConfirmed && actorID != session.MentorID {
		return nil, fmt.Errorf("%w: only the mentor can confirm a session", ErrPermissionDenied)
	}

	updates := map[string]interface{}{"status": newStatus}
	if newStatus == models.SessionStatusConfirmed {
		// Idempotent: a previously attached link is reused, and the generated
		// link is itself deterministic in the session id.
		link := GenerateMeetingURL(session.ID)
		if session.MeetingLink != nil && *session.MeetingLink != "" {
			link = *session.MeetingLink
		}
		updates["meeting_link"] = link
		session.MeetingLink = &link
	}

	res := db.Model(&models.Session{}).
		Where("id = ? AND status = ?", session.ID, session.Status).
		Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		// A concurrent transition got there first.
		return nil, fmt.Errorf("%w: session is no longer %s", ErrInvalidTransition, session.Status)
	}
	session.Status = newStatus

	if newStatus == models.SessionStatusCompleted {
		go AwardRewardsForSessionCompletion(session)
		go CheckAndGenerateCertificate(session)
	}

	return &session, nil
}

// Participant is the slim profile attached to each listed session.
type Participant struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	PhotoURL    *string   `json:"photo_url"`
}

type EnrichedSession struct {
	models.Session
	Participant Participant `json:"participant"`
}

// ListSessionsForUser returns the user's sessions newest first, each
// enriched with the other participant's profile. Profile lookups fan out
// concurrently; a failed lookup degrades that session to a placeholder
// participant instead of failing the listing.
func ListSessionsForUser(ctx context.Context, userID uuid.UUID, roleFilter string) ([]EnrichedSession, error) {
	db := database.DB.WithContext(ctx)

	q := db.Order("created_at desc")
	switch roleFilter {
	case "mentor":
		q = q.Where("mentor_id = ?", userID)
	case "learner":
		q = q.Where("learner_id = ?", userID)
	default:
		q = q.Where("mentor_id = ? OR learner_id = ?", userID, userID)
	}

	var sessions []models.Session
	if err := q.Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	enriched := make([]EnrichedSession, len(sessions))
	g := new(errgroup.Group)
	g.SetLimit(profileFanoutLimit)
	for i, session := range sessions {
		i, session := i, session
		g.Go(func() error {
			otherID := session.MentorID
			if session.MentorID == userID {
				otherID = session.LearnerID
			}

			participant := Participant{ID: otherID, DisplayName: "Unknown user"}
			if profile, err := Profiles.GetProfile(ctx, otherID); err != nil {
				log.Printf("Failed to load participant %s for session %s: %v", otherID, session.ID, err)
			} else {
				participant.DisplayName = profile.DisplayName
				participant.PhotoURL = profile.PhotoURL
			}
			enriched[i] = EnrichedSession{Session: session, Participant: participant}
			return nil
		})
	}
	g.Wait()

	return enriched, nil
}

// GetSession loads a single session, restricted to its participants.
func GetSession(ctx context.Context, sessionID, actorID uuid.UUID) (*models.Session, error) {
	var session models.Session
	err := database.DB.WithContext(ctx).Preload("SkillPost").First(&session, "id = ?", sessionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !session.IsParticipant(actorID) {
		return nil, fmt.Errorf("%w: not a participant of this session", ErrPermissionDenied)
	}
	return &session, nil
}
