package jobs

import (
	"log"
	"time"

	"github.com/mbugua512/skillswap/database"
	"github.com/mbugua512/skillswap/models"
)

// Pending requests the mentor never answered are cancelled after two weeks
// so they stop cluttering both dashboards.
const pendingRequestTTL = 14 * 24 * time.Hour

func ExpireStalePendingSessions() {
	log.Println("Running job: ExpireStalePendingSessions...")

	cutoff := time.Now().Add(-pendingRequestTTL)

	result := database.DB.Model(&models.Session{}).
		Where("status = ? AND created_at < ?", models.SessionStatusPending, cutoff).
		Update("status", models.SessionStatusCancelled)

	if result.Error != nil {
		log.Printf("Error expiring stale pending sessions: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Cancelled %d stale pending session(s).", result.RowsAffected)
	}
}
