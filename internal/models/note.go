package models

import (
	"github.com/doum4811/startbeyond-backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyNote is the journal text for one day. There is at most one note
// per profile and date.
type DailyNote struct {
	DefaultModel
	ProfileID uuid.UUID  `json:"profileId" gorm:"uniqueIndex:daily_note_profile_date" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Owning profile
	Date      types.Date `json:"date" gorm:"uniqueIndex:daily_note_profile_date" example:"2026-08-29"`                                // Day the note belongs to
	Content   string     `json:"content" example:"Slow day, good run in the evening."`                                                // Note text
}

// BeforeSave defaults the date to today.
func (n *DailyNote) BeforeSave(_ *gorm.DB) error {
	if n.Date.IsZero() {
		n.Date = types.Today()
	}

	return nil
}
