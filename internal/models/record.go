package models

import (
	"github.com/doum4811/startbeyond-backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyRecord is a logged activity for one day.
//
// CategoryCode is a free-text key into the profile's effective category
// list, not a database-enforced foreign key. Records keep their code even
// when the category is deactivated later; only new writes are gated.
type DailyRecord struct {
	DefaultModel
	ProfileID       uuid.UUID  `json:"profileId" gorm:"index" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Owning profile
	Date            types.Date `json:"date" gorm:"index" example:"2026-08-29"`                                // Day the activity happened
	CategoryCode    string     `json:"categoryCode" example:"EX"`                                             // Effective category code
	DurationMinutes int        `json:"durationMinutes" example:"45" default:"0"`                              // Optional duration, 0 when the category has none
	Comment         string     `json:"comment" example:"5k along the river" default:""`                       // Free-text comment
	IsPublic        bool       `json:"isPublic" example:"false" default:"false"`                              // Whether the record may appear in community stats
}

// BeforeSave defaults the date to today.
func (r *DailyRecord) BeforeSave(_ *gorm.DB) error {
	if r.Date.IsZero() {
		r.Date = types.Today()
	}

	return nil
}
