package v1

import (
	"fmt"

	"github.com/doum4811/startbeyond-backend/internal/models"
	"github.com/doum4811/startbeyond-backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WeeklyTaskEditable represents all user configurable parameters
type WeeklyTaskEditable struct {
	WeekStart    types.Date      `json:"weekStart" example:"2026-08-24"`                  // Any day of the target week, normalized to its Monday. Defaults to the current week.
	CategoryCode string          `json:"categoryCode" example:"EX"`                       // Code from the effective category list
	Comment      string          `json:"comment" example:"run three times" default:""`   // What the task is about
	Days         models.Weekdays `json:"days"`                                            // Per-day scheduling toggles
	Done         bool            `json:"done" example:"false" default:"false"`           // Whether the task is completed
}

func (editable WeeklyTaskEditable) model(profileID uuid.UUID) models.WeeklyTask {
	return models.WeeklyTask{
		ProfileID:    profileID,
		WeekStart:    editable.WeekStart,
		CategoryCode: editable.CategoryCode,
		Comment:      editable.Comment,
		Days:         editable.Days,
		Done:         editable.Done,
	}
}

type WeeklyTaskLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/weekly-tasks/d1b4a2a0-849e-4c0a-a647-f1cfb4f2b802"` // The task itself
}

type WeeklyTask struct {
	models.DefaultModel
	WeeklyTaskEditable
	ProfileID uuid.UUID       `json:"profileId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Owning profile
	Links     WeeklyTaskLinks `json:"links"`
}

func newWeeklyTask(c *gin.Context, model models.WeeklyTask) WeeklyTask {
	url := c.GetString(string(models.DBContextURL))

	return WeeklyTask{
		DefaultModel: model.DefaultModel,
		ProfileID:    model.ProfileID,
		WeeklyTaskEditable: WeeklyTaskEditable{
			WeekStart:    model.WeekStart,
			CategoryCode: model.CategoryCode,
			Comment:      model.Comment,
			Days:         model.Days,
			Done:         model.Done,
		},
		Links: WeeklyTaskLinks{
			Self: fmt.Sprintf("%s/v1/weekly-tasks/%s", url, model.ID),
		},
	}
}

type WeeklyTaskListResponse struct {
	Data       []WeeklyTask `json:"data"`                                                          // List of weekly tasks
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type WeeklyTaskCreateResponse struct {
	Data  []WeeklyTaskResponse `json:"data"`                                                // List of the created tasks or their respective error
	Error *string              `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

func (r *WeeklyTaskCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, WeeklyTaskResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type WeeklyTaskResponse struct {
	Data  *WeeklyTask `json:"data"`                                                          // Data for the task
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type WeeklyTaskQueryFilter struct {
	WeekStart    types.Date `form:"weekStart"`                  // By week, any day of the week works
	CategoryCode string     `form:"categoryCode"`               // By category code
	Done         bool       `form:"done"`                       // Is the task completed?
	Search       string     `form:"search" filterField:"false"` // By string in the comment
	Offset       uint       `form:"offset" filterField:"false"` // The offset of the first task returned. Defaults to 0.
	Limit        int        `form:"limit" filterField:"false"`  // Maximum number of tasks to return. Defaults to 50.
}

func (f WeeklyTaskQueryFilter) model() models.WeeklyTask {
	week := f.WeekStart
	if !week.IsZero() {
		week = week.StartOfWeek()
	}

	return models.WeeklyTask{
		WeekStart:    week,
		CategoryCode: f.CategoryCode,
		Done:         f.Done,
	}
}
