package models

import (
	"github.com/doum4811/startbeyond-backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Weekdays holds the per-day scheduling toggles of a weekly task.
type Weekdays struct {
	Monday    bool `json:"monday" example:"true" default:"false"`
	Tuesday   bool `json:"tuesday" example:"false" default:"false"`
	Wednesday bool `json:"wednesday" example:"true" default:"false"`
	Thursday  bool `json:"thursday" example:"false" default:"false"`
	Friday    bool `json:"friday" example:"true" default:"false"`
	Saturday  bool `json:"saturday" example:"false" default:"false"`
	Sunday    bool `json:"sunday" example:"false" default:"false"`
}

// Toggle flips the scheduling state of one day. The day name is
// case-insensitive English ("monday" … "sunday").
func (w *Weekdays) Toggle(day string) error {
	switch day {
	case "monday":
		w.Monday = !w.Monday
	case "tuesday":
		w.Tuesday = !w.Tuesday
	case "wednesday":
		w.Wednesday = !w.Wednesday
	case "thursday":
		w.Thursday = !w.Thursday
	case "friday":
		w.Friday = !w.Friday
	case "saturday":
		w.Saturday = !w.Saturday
	case "sunday":
		w.Sunday = !w.Sunday
	default:
		return ErrInvalidWeekday
	}

	return nil
}

// WeeklyTask is a task for one calendar week, optionally scheduled on
// specific days of that week.
type WeeklyTask struct {
	DefaultModel
	ProfileID    uuid.UUID  `json:"profileId" gorm:"index" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Owning profile
	WeekStart    types.Date `json:"weekStart" gorm:"index" example:"2026-08-24"`                           // Monday of the week the task belongs to
	CategoryCode string     `json:"categoryCode" example:"EX"`                                             // Effective category code
	Comment      string     `json:"comment" example:"run three times" default:""`                          // What the task is about
	Days         Weekdays   `json:"days" gorm:"embedded;embeddedPrefix:day_"`                              // Per-day scheduling toggles
	Done         bool       `json:"done" example:"false" default:"false"`                                  // Whether the task is completed
}

// BeforeSave normalizes WeekStart to the Monday of its week and defaults
// it to the current week.
func (t *WeeklyTask) BeforeSave(_ *gorm.DB) error {
	if t.WeekStart.IsZero() {
		t.WeekStart = types.Today()
	}

	t.WeekStart = t.WeekStart.StartOfWeek()
	return nil
}
