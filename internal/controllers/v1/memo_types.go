package v1

import (
	"fmt"

	"github.com/doum4811/startbeyond-backend/internal/models"
	ez_uuid "github.com/doum4811/startbeyond-backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MemoEditable represents all user configurable parameters
type MemoEditable struct {
	RecordID  *uuid.UUID `json:"recordId" example:"b3a8b8ff-0b17-47e7-9acb-51acca8e6657"`           // Optional daily record the memo belongs to
	Title     string     `json:"title" example:"Shoe shopping" default:""`                          // Short title
	Content   string     `json:"content" example:"Look for trail shoes before the next long run."` // Memo text
}

func (editable MemoEditable) model(profileID uuid.UUID) models.Memo {
	return models.Memo{
		ProfileID: profileID,
		RecordID:  editable.RecordID,
		Title:     editable.Title,
		Content:   editable.Content,
	}
}

type MemoLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/memos/9a02e4e8-0f34-4e4c-9353-8d4b9ff1fc7a"` // The memo itself
}

type Memo struct {
	models.DefaultModel
	MemoEditable
	ProfileID uuid.UUID `json:"profileId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Owning profile
	Links     MemoLinks `json:"links"`
}

func newMemo(c *gin.Context, model models.Memo) Memo {
	url := c.GetString(string(models.DBContextURL))

	return Memo{
		DefaultModel: model.DefaultModel,
		ProfileID:    model.ProfileID,
		MemoEditable: MemoEditable{
			RecordID: model.RecordID,
			Title:    model.Title,
			Content:  model.Content,
		},
		Links: MemoLinks{
			Self: fmt.Sprintf("%s/v1/memos/%s", url, model.ID),
		},
	}
}

type MemoListResponse struct {
	Data       []Memo      `json:"data"`                                                          // List of memos
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type MemoCreateResponse struct {
	Data  []MemoResponse `json:"data"`                                                // List of the created memos or their respective error
	Error *string        `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

func (r *MemoCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, MemoResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MemoResponse struct {
	Data  *Memo   `json:"data"`                                                          // Data for the memo
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MemoQueryFilter struct {
	RecordID ez_uuid.UUID `form:"record"`                     // By ID of the daily record
	Title    string       `form:"title" filterField:"false"`  // By title
	Search   string       `form:"search" filterField:"false"` // By string in title and content
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first memo returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of memos to return. Defaults to 50.
}

func (f MemoQueryFilter) model() models.Memo {
	memo := models.Memo{}
	if f.RecordID.UUID != uuid.Nil {
		id := f.RecordID.UUID
		memo.RecordID = &id
	}

	return memo
}
