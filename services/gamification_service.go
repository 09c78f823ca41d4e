package services

import (
	"log"

	"github.com/mbugua512/skillswap/database"
	"github.com/mbugua512/skillswap/models"
	"gorm.io/gorm"
)

const (
	xpForSessionCompletion = 10
	badgeNameFirstSession  = "First Session"
)

// AwardRewardsForSessionCompletion grants the learner XP, bumps both
// participants' completed-session counters and hands out the first-session
// badge. Runs best effort after the completed transition commits.
func AwardRewardsForSessionCompletion(session models.Session) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var learner models.User
		if err := tx.Preload("Badges").First(&learner, "id = ?", session.LearnerID).Error; err != nil {
			return err
		}

		learner.XP += xpForSessionCompletion
		learner.SessionsCompleted++
		if err := tx.Save(&learner).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", session.MentorID).
			Update("sessions_completed", gorm.Expr("sessions_completed + 1")).Error; err != nil {
			return err
		}

		var completedCount int64
		tx.Model(&models.Session{}).
			Where("learner_id = ? AND status = ?", session.LearnerID, models.SessionStatusCompleted).
			Count(&completedCount)

		if completedCount == 1 {
			for _, badge := range learner.Badges {
				if badge.Name == badgeNameFirstSession {
					return nil
				}
			}

			var firstSessionBadge models.Badge
			if err := tx.Where("name = ?", badgeNameFirstSession).First(&firstSessionBadge).Error; err == nil {
				if err := tx.Model(&learner).Association("Badges").Append(&firstSessionBadge); err != nil {
					return err
				}
			} else {
				log.Printf("Warning: Badge '%s' not found in database. Cannot award.", badgeNameFirstSession)
			}
		}

		return nil
	})

	if err != nil {
		log.Printf("🔥 Failed to award rewards to learner %s: %v", session.LearnerID, err)
	} else {
		log.Printf("✅ Awarded %d XP to learner %s.", xpForSessionCompletion, session.LearnerID)
	}
}
