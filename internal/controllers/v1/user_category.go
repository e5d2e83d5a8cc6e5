package v1

import (
	"net/http"

	"github.com/doum4811/startbeyond-backend/internal/auth"
	"github.com/doum4811/startbeyond-backend/internal/httputil"
	"github.com/doum4811/startbeyond-backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterUserCategoryRoutes registers the routes for custom categories
// with the RouterGroup that is passed.
func RegisterUserCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetUserCategories)
		r.POST("", CreateUserCategories)
	}

	// Custom category with ID
	{
		r.OPTIONS("/:id", OptionsUserCategoryDetail)
		r.GET("/:id", GetUserCategory)
		r.PATCH("/:id", UpdateUserCategory)
		r.DELETE("/:id", DeleteUserCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/custom/{id} [options]
func OptionsUserCategoryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Where(&models.UserCategory{ProfileID: auth.ProfileID(c)}).First(&models.UserCategory{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create custom categories
// @Description	Creates new custom categories for the profile
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	UserCategoryCreateResponse
// @Failure		400			{object}	UserCategoryCreateResponse
// @Failure		500			{object}	UserCategoryCreateResponse
// @Param			categories	body		[]UserCategoryEditable	true	"Categories"
// @Router			/v1/categories/custom [post]
func CreateUserCategories(c *gin.Context) {
	var editables []UserCategoryEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserCategoryCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := UserCategoryCreateResponse{}

	for _, editable := range editables {
		category := editable.model(auth.ProfileID(c))

		err = models.DB.Create(&category).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newUserCategory(c, category)
		r.Data = append(r.Data, UserCategoryResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get custom categories
// @Description	Returns the profile's custom categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	UserCategoryListResponse
// @Failure		400	{object}	UserCategoryListResponse
// @Failure		500	{object}	UserCategoryListResponse
// @Router			/v1/categories/custom [get]
// @Param			code		query	string	false	"Filter by code"
// @Param			label		query	string	false	"Filter by label"
// @Param			isActive	query	bool	false	"Is the category active?"
// @Param			search		query	string	false	"Search for this text in the label"
// @Param			offset		query	uint	false	"The offset of the first category returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of categories to return. Defaults to 50."
func GetUserCategories(c *gin.Context) {
	var filter UserCategoryQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	filterModel := filter.model()

	q := models.DB.
		Where(&models.UserCategory{ProfileID: auth.ProfileID(c)}).
		Order("sort_order ASC, code ASC").
		Where(&filterModel, queryFields...)

	q = stringFilter(q, setFields, "Label", "label", filter.Label)
	q = searchFilter(models.DB, q, filter.Search, "label")

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var categories []models.UserCategory
	err := q.Find(&categories).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserCategoryListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserCategoryListResponse{
			Error: &e,
		})
		return
	}

	data := make([]UserCategory, 0, len(categories))
	for _, category := range categories {
		data = append(data, newUserCategory(c, category))
	}

	c.JSON(http.StatusOK, UserCategoryListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get custom category
// @Description	Returns a specific custom category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	UserCategoryResponse
// @Failure		400	{object}	UserCategoryResponse
// @Failure		404	{object}	UserCategoryResponse
// @Failure		500	{object}	UserCategoryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/custom/{id} [get]
func GetUserCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserCategoryResponse{
			Error: &e,
		})
		return
	}

	var category models.UserCategory
	err = models.DB.Where(&models.UserCategory{ProfileID: auth.ProfileID(c)}).First(&category, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserCategoryResponse{
			Error: &e,
		})
		return
	}

	data := newUserCategory(c, category)
	c.JSON(http.StatusOK, UserCategoryResponse{Data: &data})
}

// @Summary		Update custom category
// @Description	Updates an existing custom category. Only values to be updated need to be specified.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	UserCategoryResponse
// @Failure		400			{object}	UserCategoryResponse
// @Failure		404			{object}	UserCategoryResponse
// @Failure		500			{object}	UserCategoryResponse
// @Param			id			path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		UserCategoryEditable	true	"Category"
// @Router			/v1/categories/custom/{id} [patch]
func UpdateUserCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserCategoryResponse{
			Error: &e,
		})
		return
	}

	var category models.UserCategory
	err = models.DB.Where(&models.UserCategory{ProfileID: auth.ProfileID(c)}).First(&category, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserCategoryResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, UserCategoryEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserCategoryResponse{
			Error: &e,
		})
		return
	}

	var data UserCategoryEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserCategoryResponse{
			Error: &e,
		})
		return
	}

	// The BeforeSave hook sees the loaded model, not the update struct,
	// so a changed code is normalized and validated here
	if slices.Contains(updateFields, any("Code")) {
		code, err := models.NormalizeCode(data.Code)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), UserCategoryResponse{
				Error: &e,
			})
			return
		}
		data.Code = code
	}

	err = models.DB.Model(&category).Select("", updateFields...).Updates(data.model(category.ProfileID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserCategoryResponse{
			Error: &e,
		})
		return
	}

	r := newUserCategory(c, category)
	c.JSON(http.StatusOK, UserCategoryResponse{Data: &r})
}

// @Summary		Delete custom category
// @Description	Deletes a custom category. Existing entries keep their code.
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/custom/{id} [delete]
func DeleteUserCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var category models.UserCategory
	err = models.DB.Where(&models.UserCategory{ProfileID: auth.ProfileID(c)}).First(&category, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&category).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
