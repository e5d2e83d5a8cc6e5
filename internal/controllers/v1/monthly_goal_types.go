package v1

import (
	"fmt"

	"github.com/doum4811/startbeyond-backend/internal/models"
	"github.com/doum4811/startbeyond-backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MonthlyGoalEditable represents all user configurable parameters
type MonthlyGoalEditable struct {
	Month           types.Month `json:"month" example:"2026-09-01T00:00:00Z"`                   // Month the goal is set for. Defaults to the current month.
	CategoryCode    string      `json:"categoryCode" example:"BK"`                              // Code from the effective category list
	Title           string      `json:"title" example:"Finish two novels"`                      // Short goal statement
	SuccessCriteria string      `json:"successCriteria" example:"20 pages per day" default:""` // How success is measured
}

func (editable MonthlyGoalEditable) model(profileID uuid.UUID) models.MonthlyGoal {
	return models.MonthlyGoal{
		ProfileID:       profileID,
		Month:           editable.Month,
		CategoryCode:    editable.CategoryCode,
		Title:           editable.Title,
		SuccessCriteria: editable.SuccessCriteria,
	}
}

type MonthlyGoalLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/monthly-goals/57372b9e-e7a7-4d2a-8e7c-b85bdd1176e0"`                // The goal itself
	Breakdown string `json:"breakdown" example:"https://example.com/api/v1/monthly-goals/57372b9e-e7a7-4d2a-8e7c-b85bdd1176e0/breakdown"` // Creates one weekly task per week of the month
}

type MonthlyGoal struct {
	models.DefaultModel
	MonthlyGoalEditable
	ProfileID uuid.UUID        `json:"profileId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Owning profile
	Links     MonthlyGoalLinks `json:"links"`
}

func newMonthlyGoal(c *gin.Context, model models.MonthlyGoal) MonthlyGoal {
	url := c.GetString(string(models.DBContextURL))

	return MonthlyGoal{
		DefaultModel: model.DefaultModel,
		ProfileID:    model.ProfileID,
		MonthlyGoalEditable: MonthlyGoalEditable{
			Month:           model.Month,
			CategoryCode:    model.CategoryCode,
			Title:           model.Title,
			SuccessCriteria: model.SuccessCriteria,
		},
		Links: MonthlyGoalLinks{
			Self:      fmt.Sprintf("%s/v1/monthly-goals/%s", url, model.ID),
			Breakdown: fmt.Sprintf("%s/v1/monthly-goals/%s/breakdown", url, model.ID),
		},
	}
}

type MonthlyGoalListResponse struct {
	Data       []MonthlyGoal `json:"data"`                                                          // List of goals
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type MonthlyGoalCreateResponse struct {
	Data  []MonthlyGoalResponse `json:"data"`                                                // List of the created goals or their respective error
	Error *string               `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

func (r *MonthlyGoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, MonthlyGoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MonthlyGoalResponse struct {
	Data  *MonthlyGoal `json:"data"`                                                          // Data for the goal
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// BreakdownResponse lists the weekly tasks a goal breakdown created or
// found already in place.
type BreakdownResponse struct {
	Data  []WeeklyTask `json:"data"`                                        // One weekly task per week of the goal's month
	Error *string      `json:"error" example:"there is no monthly goal"` // The error, if any occurred
}

type MonthlyGoalQueryFilter struct {
	Month        string `form:"month"`                      // By month in YYYY-MM format
	CategoryCode string `form:"categoryCode"`               // By category code
	Search       string `form:"search" filterField:"false"` // By string in title and success criteria
	Offset       uint   `form:"offset" filterField:"false"` // The offset of the first goal returned. Defaults to 0.
	Limit        int    `form:"limit" filterField:"false"`  // Maximum number of goals to return. Defaults to 50.
}

func (f MonthlyGoalQueryFilter) model() (models.MonthlyGoal, error) {
	var month types.Month
	if f.Month != "" {
		m, err := types.ParseMonth(f.Month)
		if err != nil {
			return models.MonthlyGoal{}, err
		}

		month = m
	}

	return models.MonthlyGoal{
		Month:        month,
		CategoryCode: f.CategoryCode,
	}, nil
}
