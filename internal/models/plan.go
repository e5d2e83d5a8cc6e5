package models

import (
	"github.com/doum4811/startbeyond-backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyPlan is a planned activity for a future day, usually tomorrow.
// Completing a plan turns it into a DailyRecord.
type DailyPlan struct {
	DefaultModel
	ProfileID       uuid.UUID  `json:"profileId" gorm:"index" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Owning profile
	Date            types.Date `json:"date" gorm:"index" example:"2026-08-30"`                                // Day the activity is planned for
	CategoryCode    string     `json:"categoryCode" example:"ST"`                                             // Effective category code
	DurationMinutes int        `json:"durationMinutes" example:"60" default:"0"`                              // Optional planned duration
	Comment         string     `json:"comment" example:"grammar chapter 4" default:""`                       // Free-text comment
}

// BeforeSave defaults the date to tomorrow.
func (p *DailyPlan) BeforeSave(_ *gorm.DB) error {
	if p.Date.IsZero() {
		p.Date = types.Today().AddDays(1)
	}

	return nil
}

// Record returns the DailyRecord that completing the plan creates.
func (p DailyPlan) Record() DailyRecord {
	return DailyRecord{
		ProfileID:       p.ProfileID,
		Date:            p.Date,
		CategoryCode:    p.CategoryCode,
		DurationMinutes: p.DurationMinutes,
		Comment:         p.Comment,
	}
}
