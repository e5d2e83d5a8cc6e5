package v1

import (
	"net/http"
	"strings"

	"github.com/doum4811/startbeyond-backend/internal/auth"
	"github.com/doum4811/startbeyond-backend/internal/categories"
	"github.com/doum4811/startbeyond-backend/internal/httputil"
	"github.com/doum4811/startbeyond-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for the effective category
// list and the built-in category preferences with the RouterGroup that
// is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Effective list
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", GetCategories)
	}

	// Built-in category preferences
	{
		r.OPTIONS("/defaults/:code", httputil.OptionsPut)
		r.PUT("/defaults/:code", UpsertCategoryPreference)
	}
}

// EffectiveCategoryListResponse is the response for the effective
// category list.
type EffectiveCategoryListResponse struct {
	Data  []categories.Effective `json:"data"`                                            // The effective category list, in display order
	Error *string                `json:"error" example:"there is no category preference"` // The error, if any occurred
}

type CategoryPreferenceResponse struct {
	Data  *models.CategoryPreference `json:"data"`                                              // The preference row
	Error *string                    `json:"error" example:"no default category has this code"` // The error, if any occurred
}

// URICode is bound for routes addressing a built-in category by code.
type URICode struct {
	Code string `uri:"code" binding:"required" example:"EX"` // Code of the built-in category
}

type CategoryPreferenceEditable struct {
	IsActive bool `json:"isActive" example:"false" default:"false"` // Whether the built-in category is active for the profile
}

// @Summary		Get effective categories
// @Description	Returns the profile's effective category list: the built-in catalog merged with the profile's own categories and preferences
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	EffectiveCategoryListResponse
// @Failure		500	{object}	EffectiveCategoryListResponse
// @Param			active	query	bool	false	"Return only active categories"
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	effective, err := models.ResolveEffective(models.DB, auth.ProfileID(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EffectiveCategoryListResponse{Error: &e})
		return
	}

	if c.Query("active") == "true" {
		effective = categories.FilterActive(effective)
	}

	c.JSON(http.StatusOK, EffectiveCategoryListResponse{Data: effective})
}

// @Summary		Set built-in category preference
// @Description	Activates or deactivates a built-in category for the profile. The call is an upsert and idempotent.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryPreferenceResponse
// @Failure		400			{object}	CategoryPreferenceResponse
// @Failure		500			{object}	CategoryPreferenceResponse
// @Param			code		path		string						true	"Code of the built-in category"
// @Param			preference	body		CategoryPreferenceEditable	true	"Preference"
// @Router			/v1/categories/defaults/{code} [put]
func UpsertCategoryPreference(c *gin.Context) {
	var uri URICode
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryPreferenceResponse{Error: &e})
		return
	}

	code := strings.ToUpper(strings.TrimSpace(uri.Code))
	if !categories.InCatalog(categories.Catalog, code) {
		e := models.ErrUnknownDefaultCategory.Error()
		c.JSON(http.StatusBadRequest, CategoryPreferenceResponse{Error: &e})
		return
	}

	var editable CategoryPreferenceEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryPreferenceResponse{Error: &e})
		return
	}

	preference, err := models.UpsertPreference(models.DB, auth.ProfileID(c), code, editable.IsActive)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryPreferenceResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryPreferenceResponse{Data: &preference})
}
