package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Bookmark struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"not null;uniqueIndex:idx_bookmarks_user_post" json:"user_id"`
	SkillPostID uuid.UUID `gorm:"not null;uniqueIndex:idx_bookmarks_user_post" json:"skill_post_id"`

	SkillPost SkillPost `gorm:"foreignkey:SkillPostID" json:"skill_post,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (b *Bookmark) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
