package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Certificate struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	LearnerID   uuid.UUID `gorm:"not null;index" json:"learner_id"`
	MentorID    uuid.UUID `gorm:"not null" json:"mentor_id"`
	SkillPostID uuid.UUID `gorm:"not null" json:"skill_post_id"`

	Title          string    `gorm:"size:255;not null" json:"title"`
	CompletionDate time.Time `json:"completion_date"`
	CertificateURL string    `gorm:"size:255" json:"certificate_url"`

	CreatedAt time.Time `json:"created_at"`
}

func (c *Certificate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
