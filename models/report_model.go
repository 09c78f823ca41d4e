package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReportStatusPending  = "pending"
	ReportStatusResolved = "resolved"
)

type Report struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Type       string     `gorm:"size:20;not null" json:"type"`
	ItemID     string     `gorm:"size:64;not null" json:"item_id"`
	ReporterID *uuid.UUID `json:"reporter_id"`

	Reason      string `gorm:"type:text;not null" json:"reason"`
	Description string `gorm:"type:text" json:"description"`
	Status      string `gorm:"size:20;not null;default:'pending'" json:"status"`

	ResolvedBy *uuid.UUID `json:"resolved_by"`
	ResolvedAt *time.Time `json:"resolved_at"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
