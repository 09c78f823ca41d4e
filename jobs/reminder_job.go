package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/mbugua512/skillswap/database"
	"github.com/mbugua512/skillswap/models"
	"github.com/mbugua512/skillswap/notifications"
)

func SendSessionReminders() {
	log.Println("Running job: SendSessionReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var upcomingSessions []models.Session

	err := database.DB.
		Preload("Mentor").
		Preload("Learner").
		Where("status = ? AND scheduled_date BETWEEN ? AND ?", models.SessionStatusConfirmed, lowerBound, upperBound).
		Find(&upcomingSessions).Error

	if err != nil {
		log.Printf("Error checking for upcoming sessions: %v", err)
		return
	}

	if len(upcomingSessions) == 0 {
		return
	}

	for _, session := range upcomingSessions {
		if session.ScheduledDate == nil {
			continue
		}
		log.Printf("Sending reminder for session ID: %s", session.ID)

		meetingLink := ""
		if session.MeetingLink != nil {
			meetingLink = *session.MeetingLink
		}

		emailSubject := "Reminder: Your Session Starts in 1 Hour!"
		emailBody := fmt.Sprintf(
			"<h1>Session Reminder</h1><p>Hi there,</p><p>This is a friendly reminder that your session is scheduled to start in one hour at %s.</p><p><b>Meeting Link:</b> <a href='%s'>Join Session</a></p>",
			session.ScheduledDate.Format(time.Kitchen),
			meetingLink,
		)

		go notifications.SendEmail(session.Mentor.DisplayName, session.Mentor.Email, emailSubject, emailBody)
		go notifications.SendEmail(session.Learner.DisplayName, session.Learner.Email, emailSubject, emailBody)
	}
}
