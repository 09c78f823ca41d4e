package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	DisplayName string    `gorm:"size:255;not null" json:"display_name"`
	Email       string    `gorm:"size:255;not null;unique" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	Role        string    `gorm:"size:20;not null;default:'learner'" json:"role"`

	PhotoURL  *string  `gorm:"size:255" json:"photo_url"`
	Bio       *string  `gorm:"type:text" json:"bio"`
	Location  *string  `gorm:"size:255" json:"location"`
	Website   *string  `gorm:"size:255" json:"website"`
	Github    *string  `gorm:"size:255" json:"github"`
	Linkedin  *string  `gorm:"size:255" json:"linkedin"`
	Expertise []string `gorm:"serializer:json" json:"expertise"`

	XP                int     `gorm:"default:0" json:"xp"`
	SessionsCompleted int     `gorm:"default:0" json:"sessions_completed"`
	Rating            float64 `gorm:"type:numeric(3,2);default:0" json:"rating"`
	ReviewCount       int     `gorm:"default:0" json:"review_count"`

	Banned    bool    `gorm:"default:false" json:"banned"`
	BanReason *string `gorm:"type:text" json:"ban_reason,omitempty"`

	Badges        []*Badge        `gorm:"many2many:user_badges;" json:"badges,omitempty"`
	Conversations []*Conversation `gorm:"many2many:conversation_participants;" json:"-"`

	ResetPasswordToken          *string    `gorm:"size:255;unique" json:"-"`
	ResetPasswordTokenExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsMentor reports whether the user may publish skill posts.
func (u *User) IsMentor() bool {
	return u.Role == "mentor" || u.Role == "both" || u.Role == "admin"
}
