package v1

import (
	"fmt"

	"github.com/doum4811/startbeyond-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserCategoryEditable represents all user configurable parameters
type UserCategoryEditable struct {
	Code      string `json:"code" example:"MY_STUDY"`                // Unique code per profile
	Label     string `json:"label" example:"Japanese study"`         // Display name
	Icon      string `json:"icon" example:"🇯🇵" default:""`           // Display glyph
	Color     string `json:"color" example:"#4caf50" default:""`     // Optional display hint
	IsActive  bool   `json:"isActive" example:"true" default:"false"` // Whether the category may be used for new entries, must be set explicitly
	SortOrder int    `json:"sortOrder" example:"3" default:"0"`      // Ordering hint, 0 means unset
}

func (editable UserCategoryEditable) model(profileID uuid.UUID) models.UserCategory {
	return models.UserCategory{
		ProfileID: profileID,
		Code:      editable.Code,
		Label:     editable.Label,
		Icon:      editable.Icon,
		Color:     editable.Color,
		IsActive:  editable.IsActive,
		SortOrder: editable.SortOrder,
	}
}

type UserCategoryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/categories/custom/3b1ea324-d438-4419-882a-2fc91d71772f"` // The category itself
}

type UserCategory struct {
	models.DefaultModel
	UserCategoryEditable
	ProfileID uuid.UUID         `json:"profileId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Owning profile
	Links     UserCategoryLinks `json:"links"`
}

func newUserCategory(c *gin.Context, model models.UserCategory) UserCategory {
	url := c.GetString(string(models.DBContextURL))

	return UserCategory{
		DefaultModel: model.DefaultModel,
		ProfileID:    model.ProfileID,
		UserCategoryEditable: UserCategoryEditable{
			Code:      model.Code,
			Label:     model.Label,
			Icon:      model.Icon,
			Color:     model.Color,
			IsActive:  model.IsActive,
			SortOrder: model.SortOrder,
		},
		Links: UserCategoryLinks{
			Self: fmt.Sprintf("%s/v1/categories/custom/%s", url, model.ID),
		},
	}
}

type UserCategoryListResponse struct {
	Data       []UserCategory `json:"data"`                                                          // List of custom categories
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type UserCategoryCreateResponse struct {
	Data  []UserCategoryResponse `json:"data"`                                                       // List of the created categories or their respective error
	Error *string                `json:"error" example:"the request body must not be empty"`         // The error, if any occurred
}

func (r *UserCategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, UserCategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type UserCategoryResponse struct {
	Data  *UserCategory `json:"data"`                                                          // Data for the category
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type UserCategoryQueryFilter struct {
	Code     string `form:"code"`                         // By code
	Label    string `form:"label" filterField:"false"`    // By label
	IsActive bool   `form:"isActive"`                     // Is the category active?
	Search   string `form:"search" filterField:"false"`   // By string in label
	Offset   uint   `form:"offset" filterField:"false"`   // The offset of the first category returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`    // Maximum number of categories to return. Defaults to 50.
}

func (f UserCategoryQueryFilter) model() models.UserCategory {
	return models.UserCategory{
		Code:     f.Code,
		IsActive: f.IsActive,
	}
}
