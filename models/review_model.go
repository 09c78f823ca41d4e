package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	SessionID   uuid.UUID  `gorm:"not null;unique" json:"session_id"`
	SkillPostID *uuid.UUID `gorm:"index" json:"skill_post_id"`
	MentorID    uuid.UUID  `gorm:"not null;index" json:"mentor_id"`
	LearnerID   uuid.UUID  `gorm:"not null" json:"learner_id"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"type:text" json:"comment"`

	Session Session `gorm:"foreignkey:SessionID" json:"-"`
	Learner User    `gorm:"foreignkey:LearnerID" json:"learner,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
