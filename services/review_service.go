package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mbugua512/skillswap/database"
	"github.com/mbugua512/skillswap/models"
	"gorm.io/gorm"
)

// SubmitReview records the learner's review for a completed session and
// folds the rating into the skill post's and the mentor's running averages.
// All four writes happen in one transaction; the unique index on
// reviews.session_id is the arbiter when two submissions race past the
// reviewed check.
func SubmitReview(ctx context.Context, sessionID, learnerID uuid.UUID, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidState)
	}

	var review models.Review
	err := database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session models.Session
		if err := tx.First(&session, "id = ?", sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
			}
			return err
		}
		if session.LearnerID != learnerID {
			return fmt.Errorf("%w: only the learner can submit a review", ErrPermissionDenied)
		}
		if session.Status != models.SessionStatusCompleted {
			return fmt.Errorf("%w: cannot review a session that isn't completed", ErrInvalidState)
		}
		if session.Reviewed {
			return fmt.Errorf("%w: session already reviewed", ErrConflict)
		}

		review = models.Review{
			SessionID:   session.ID,
			SkillPostID: session.SkillPostID,
			MentorID:    session.MentorID,
			LearnerID:   learnerID,
			Rating:      rating,
			Comment:     comment,
		}
		if err := tx.Create(&review).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: session already reviewed", ErrConflict)
			}
			return err
		}

		// Second backstop against racing submissions inside the same window.
		res := tx.Model(&models.Session{}).
			Where("id = ? AND reviewed = ?", session.ID, false).
			Update("reviewed", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: session already reviewed", ErrConflict)
		}

		if session.SkillPostID != nil {
			var post models.SkillPost
			err := tx.First(&post, "id = ?", *session.SkillPostID).Error
			switch {
			case err == nil:
				avg, count := ApplyNewRating(post.Rating, post.ReviewCount, rating)
				if err := tx.Model(&post).Updates(map[string]interface{}{
					"rating":       avg,
					"review_count": count,
				}).Error; err != nil {
					return err
				}
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return err
			}
		}

		var mentor models.User
		if err := tx.First(&mentor, "id = ?", session.MentorID).Error; err != nil {
			return err
		}
		avg, count := ApplyNewRating(mentor.Rating, mentor.ReviewCount, rating)
		return tx.Model(&mentor).Updates(map[string]interface{}{
			"rating":       avg,
			"review_count": count,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ListReviewsForMentor returns reviews received by a mentor, newest first.
func ListReviewsForMentor(ctx context.Context, mentorID uuid.UUID, page, pageSize int) ([]models.Review, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 10
	}

	var reviews []models.Review
	err := database.DB.WithContext(ctx).
		Preload("Learner").
		Where("mentor_id = ?", mentorID).
		Order("created_at desc").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return reviews, nil
}
