package v1

import (
	"fmt"

	"github.com/doum4811/startbeyond-backend/internal/models"
	"github.com/doum4811/startbeyond-backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyRecordEditable represents all user configurable parameters
type DailyRecordEditable struct {
	Date            types.Date `json:"date" example:"2026-08-29"`                        // Day the activity happened. Defaults to today.
	CategoryCode    string     `json:"categoryCode" example:"EX"`                        // Code from the effective category list
	DurationMinutes int        `json:"durationMinutes" example:"45" default:"0"`         // Optional duration in minutes
	Comment         string     `json:"comment" example:"5k along the river" default:""` // Free-text comment
	IsPublic        bool       `json:"isPublic" example:"false" default:"false"`        // Whether the record may appear in community stats
}

func (editable DailyRecordEditable) model(profileID uuid.UUID) models.DailyRecord {
	return models.DailyRecord{
		ProfileID:       profileID,
		Date:            editable.Date,
		CategoryCode:    editable.CategoryCode,
		DurationMinutes: editable.DurationMinutes,
		Comment:         editable.Comment,
		IsPublic:        editable.IsPublic,
	}
}

type DailyRecordLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/records/b3a8b8ff-0b17-47e7-9acb-51acca8e6657"` // The record itself
}

type DailyRecord struct {
	models.DefaultModel
	DailyRecordEditable
	ProfileID uuid.UUID        `json:"profileId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Owning profile
	Links     DailyRecordLinks `json:"links"`
}

func newDailyRecord(c *gin.Context, model models.DailyRecord) DailyRecord {
	url := c.GetString(string(models.DBContextURL))

	return DailyRecord{
		DefaultModel: model.DefaultModel,
		ProfileID:    model.ProfileID,
		DailyRecordEditable: DailyRecordEditable{
			Date:            model.Date,
			CategoryCode:    model.CategoryCode,
			DurationMinutes: model.DurationMinutes,
			Comment:         model.Comment,
			IsPublic:        model.IsPublic,
		},
		Links: DailyRecordLinks{
			Self: fmt.Sprintf("%s/v1/records/%s", url, model.ID),
		},
	}
}

type DailyRecordListResponse struct {
	Data       []DailyRecord `json:"data"`                                                          // List of records
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type DailyRecordCreateResponse struct {
	Data  []DailyRecordResponse `json:"data"`                                                // List of the created records or their respective error
	Error *string               `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

func (r *DailyRecordCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, DailyRecordResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type DailyRecordResponse struct {
	Data  *DailyRecord `json:"data"`                                                          // Data for the record
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type DailyRecordQueryFilter struct {
	Date         types.Date `form:"date"`                         // By exact date
	From         types.Date `form:"from" filterField:"false"`     // Records on or after this date
	To           types.Date `form:"to" filterField:"false"`       // Records on or before this date
	CategoryCode string     `form:"categoryCode"`                 // By category code
	IsPublic     bool       `form:"isPublic"`                     // Is the record public?
	Search       string     `form:"search" filterField:"false"`   // By string in the comment
	Offset       uint       `form:"offset" filterField:"false"`   // The offset of the first record returned. Defaults to 0.
	Limit        int        `form:"limit" filterField:"false"`    // Maximum number of records to return. Defaults to 50.
}

func (f DailyRecordQueryFilter) model() models.DailyRecord {
	return models.DailyRecord{
		Date:         f.Date,
		CategoryCode: f.CategoryCode,
		IsPublic:     f.IsPublic,
	}
}

// dateRangeFilter narrows a query to the inclusive [from, to] date range.
func dateRangeFilter(query *gorm.DB, column string, from, to types.Date) *gorm.DB {
	if !from.IsZero() {
		query = query.Where(fmt.Sprintf("%s >= ?", column), from)
	}

	if !to.IsZero() {
		query = query.Where(fmt.Sprintf("%s <= ?", column), to)
	}

	return query
}
