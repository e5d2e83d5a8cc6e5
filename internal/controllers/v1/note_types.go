package v1

import (
	"fmt"

	"github.com/doum4811/startbeyond-backend/internal/models"
	"github.com/doum4811/startbeyond-backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DailyNoteEditable represents all user configurable parameters
type DailyNoteEditable struct {
	Date    types.Date `json:"date" example:"2026-08-29"`                                  // Day the note belongs to. Defaults to today.
	Content string     `json:"content" example:"Slow day, good run in the evening."`      // Note text
}

func (editable DailyNoteEditable) model(profileID uuid.UUID) models.DailyNote {
	return models.DailyNote{
		ProfileID: profileID,
		Date:      editable.Date,
		Content:   editable.Content,
	}
}

type DailyNoteLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/notes/5e857b28-57d8-4bf6-a7bb-f5ea6a1b5a32"` // The note itself
}

type DailyNote struct {
	models.DefaultModel
	DailyNoteEditable
	ProfileID uuid.UUID      `json:"profileId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Owning profile
	Links     DailyNoteLinks `json:"links"`
}

func newDailyNote(c *gin.Context, model models.DailyNote) DailyNote {
	url := c.GetString(string(models.DBContextURL))

	return DailyNote{
		DefaultModel: model.DefaultModel,
		ProfileID:    model.ProfileID,
		DailyNoteEditable: DailyNoteEditable{
			Date:    model.Date,
			Content: model.Content,
		},
		Links: DailyNoteLinks{
			Self: fmt.Sprintf("%s/v1/notes/%s", url, model.ID),
		},
	}
}

type DailyNoteListResponse struct {
	Data       []DailyNote `json:"data"`                                                          // List of notes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type DailyNoteResponse struct {
	Data  *DailyNote `json:"data"`                                             // Data for the note
	Error *string    `json:"error" example:"there already is a note for this day"` // The error, if any occurred
}

type DailyNoteQueryFilter struct {
	Date   types.Date `form:"date"`                       // By exact date
	From   types.Date `form:"from" filterField:"false"`   // Notes on or after this date
	To     types.Date `form:"to" filterField:"false"`     // Notes on or before this date
	Search string     `form:"search" filterField:"false"` // By string in the content
	Offset uint       `form:"offset" filterField:"false"` // The offset of the first note returned. Defaults to 0.
	Limit  int        `form:"limit" filterField:"false"`  // Maximum number of notes to return. Defaults to 50.
}

func (f DailyNoteQueryFilter) model() models.DailyNote {
	return models.DailyNote{
		Date: f.Date,
	}
}
