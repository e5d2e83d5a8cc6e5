package v1

import (
	"fmt"

	"github.com/doum4811/startbeyond-backend/internal/models"
	"github.com/doum4811/startbeyond-backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DailyPlanEditable represents all user configurable parameters
type DailyPlanEditable struct {
	Date            types.Date `json:"date" example:"2026-08-30"`                         // Day the activity is planned for. Defaults to tomorrow.
	CategoryCode    string     `json:"categoryCode" example:"ST"`                         // Code from the effective category list
	DurationMinutes int        `json:"durationMinutes" example:"60" default:"0"`          // Optional planned duration in minutes
	Comment         string     `json:"comment" example:"grammar chapter 4" default:""`   // Free-text comment
}

func (editable DailyPlanEditable) model(profileID uuid.UUID) models.DailyPlan {
	return models.DailyPlan{
		ProfileID:       profileID,
		Date:            editable.Date,
		CategoryCode:    editable.CategoryCode,
		DurationMinutes: editable.DurationMinutes,
		Comment:         editable.Comment,
	}
}

type DailyPlanLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/plans/fa43cc53-9bbd-4bcc-9a23-ca2bab9b3b24"`              // The plan itself
	Complete string `json:"complete" example:"https://example.com/api/v1/plans/fa43cc53-9bbd-4bcc-9a23-ca2bab9b3b24/complete"` // Turns the plan into a record
}

type DailyPlan struct {
	models.DefaultModel
	DailyPlanEditable
	ProfileID uuid.UUID      `json:"profileId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Owning profile
	Links     DailyPlanLinks `json:"links"`
}

func newDailyPlan(c *gin.Context, model models.DailyPlan) DailyPlan {
	url := c.GetString(string(models.DBContextURL))

	return DailyPlan{
		DefaultModel: model.DefaultModel,
		ProfileID:    model.ProfileID,
		DailyPlanEditable: DailyPlanEditable{
			Date:            model.Date,
			CategoryCode:    model.CategoryCode,
			DurationMinutes: model.DurationMinutes,
			Comment:         model.Comment,
		},
		Links: DailyPlanLinks{
			Self:     fmt.Sprintf("%s/v1/plans/%s", url, model.ID),
			Complete: fmt.Sprintf("%s/v1/plans/%s/complete", url, model.ID),
		},
	}
}

type DailyPlanListResponse struct {
	Data       []DailyPlan `json:"data"`                                                          // List of plans
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type DailyPlanCreateResponse struct {
	Data  []DailyPlanResponse `json:"data"`                                                // List of the created plans or their respective error
	Error *string             `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

func (r *DailyPlanCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, DailyPlanResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type DailyPlanResponse struct {
	Data  *DailyPlan `json:"data"`                                                          // Data for the plan
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type DailyPlanQueryFilter struct {
	Date         types.Date `form:"date"`                       // By exact date
	From         types.Date `form:"from" filterField:"false"`   // Plans on or after this date
	To           types.Date `form:"to" filterField:"false"`     // Plans on or before this date
	CategoryCode string     `form:"categoryCode"`               // By category code
	Search       string     `form:"search" filterField:"false"` // By string in the comment
	Offset       uint       `form:"offset" filterField:"false"` // The offset of the first plan returned. Defaults to 0.
	Limit        int        `form:"limit" filterField:"false"`  // Maximum number of plans to return. Defaults to 50.
}

func (f DailyPlanQueryFilter) model() models.DailyPlan {
	return models.DailyPlan{
		Date:         f.Date,
		CategoryCode: f.CategoryCode,
	}
}
