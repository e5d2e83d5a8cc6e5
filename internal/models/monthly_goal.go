package models

import (
	"time"

	"github.com/doum4811/startbeyond-backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MonthlyGoal is a goal for one calendar month. It can be broken down
// into one weekly task per week of the month.
type MonthlyGoal struct {
	DefaultModel
	ProfileID       uuid.UUID   `json:"profileId" gorm:"index" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Owning profile
	Month           types.Month `json:"month" gorm:"index" example:"2026-09-01T00:00:00Z"`                     // Month the goal is set for
	CategoryCode    string      `json:"categoryCode" example:"BK"`                                             // Effective category code
	Title           string      `json:"title" example:"Finish two novels"`                                     // Short goal statement
	SuccessCriteria string      `json:"successCriteria" example:"20 pages per day" default:""`                 // How success is measured
}

// BeforeSave defaults the month to the current one.
func (g *MonthlyGoal) BeforeSave(_ *gorm.DB) error {
	if g.Month.IsZero() {
		g.Month = types.MonthOf(time.Now().In(time.UTC))
	}

	return nil
}

// WeekStarts returns the Mondays that fall inside the goal's month, i.e.
// the weeks a breakdown creates weekly tasks for.
func (g MonthlyGoal) WeekStarts() []types.Date {
	first := types.DateOf(time.Time(g.Month))
	next := types.DateOf(time.Time(g.Month.AddDate(0, 1)))

	monday := first.StartOfWeek()
	if monday.Before(first) {
		monday = monday.AddDays(7)
	}

	var weeks []types.Date
	for monday.Before(next) {
		weeks = append(weeks, monday)
		monday = monday.AddDays(7)
	}

	return weeks
}
