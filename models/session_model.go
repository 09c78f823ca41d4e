package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SessionStatusPending   = "pending"
	SessionStatusConfirmed = "confirmed"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

type Session struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	SkillPostID *uuid.UUID `gorm:"index" json:"skill_post_id"`
	MentorID    uuid.UUID  `gorm:"not null;index" json:"mentor_id"`
	LearnerID   uuid.UUID  `gorm:"not null;index" json:"learner_id"`

	Message       string     `gorm:"type:text" json:"message"`
	Status        string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	MeetingLink   *string    `gorm:"size:255" json:"meeting_link"`

	// Reviewed is a one-way latch: it flips to true when the learner's
	// review is accepted and never reverts.
	Reviewed bool `gorm:"default:false" json:"reviewed"`

	SkillPost *SkillPost `gorm:"foreignkey:SkillPostID" json:"skill_post,omitempty"`
	Mentor    User       `gorm:"foreignkey:MentorID" json:"-"`
	Learner   User       `gorm:"foreignkey:LearnerID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// IsParticipant reports whether userID is the session's mentor or learner.
func (s *Session) IsParticipant(userID uuid.UUID) bool {
	return s.MentorID == userID || s.LearnerID == userID
}
