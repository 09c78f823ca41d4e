package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SkillPost struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	MentorID uuid.UUID `gorm:"not null;index" json:"mentor_id"`

	Title           string         `gorm:"size:255;not null" json:"title"`
	Description     string         `gorm:"type:text;not null" json:"description"`
	Tags            []string       `gorm:"serializer:json" json:"tags"`
	ImageURL        *string        `gorm:"size:255" json:"image_url"`
	ExperienceLevel *string        `gorm:"size:50" json:"experience_level"`
	SessionLength   int            `gorm:"default:60" json:"session_length"`
	Availability    datatypes.JSON `json:"availability"`

	Rating      float64 `gorm:"type:numeric(3,2);default:0" json:"rating"`
	ReviewCount int     `gorm:"default:0" json:"review_count"`
	Active      bool    `gorm:"default:true" json:"active"`

	Mentor User `gorm:"foreignkey:MentorID" json:"mentor,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *SkillPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
