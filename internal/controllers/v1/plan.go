package v1

import (
	"net/http"

	"github.com/doum4811/startbeyond-backend/internal/auth"
	"github.com/doum4811/startbeyond-backend/internal/httputil"
	"github.com/doum4811/startbeyond-backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterDailyPlanRoutes registers the routes for daily plans with the
// RouterGroup that is passed.
func RegisterDailyPlanRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetDailyPlans)
		r.POST("", CreateDailyPlans)
	}

	// Plan with ID
	{
		r.OPTIONS("/:id", OptionsDailyPlanDetail)
		r.GET("/:id", GetDailyPlan)
		r.PATCH("/:id", UpdateDailyPlan)
		r.DELETE("/:id", DeleteDailyPlan)
	}

	// Completion
	{
		r.OPTIONS("/:id/complete", httputil.OptionsPost)
		r.POST("/:id/complete", CompleteDailyPlan)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plans
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/plans/{id} [options]
func OptionsDailyPlanDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Where(&models.DailyPlan{ProfileID: auth.ProfileID(c)}).First(&models.DailyPlan{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create plans
// @Description	Creates new daily plans. The category code of every plan must be active in the profile's effective category list.
// @Tags			Plans
// @Produce		json
// @Success		201		{object}	DailyPlanCreateResponse
// @Failure		400		{object}	DailyPlanCreateResponse
// @Failure		500		{object}	DailyPlanCreateResponse
// @Param			plans	body		[]DailyPlanEditable	true	"Plans"
// @Router			/v1/plans [post]
func CreateDailyPlans(c *gin.Context) {
	var editables []DailyPlanEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyPlanCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := DailyPlanCreateResponse{}

	for _, editable := range editables {
		plan := editable.model(auth.ProfileID(c))

		err = models.ValidateCategoryCode(models.DB, plan.ProfileID, plan.CategoryCode)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		err = models.DB.Create(&plan).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newDailyPlan(c, plan)
		r.Data = append(r.Data, DailyPlanResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get plans
// @Description	Returns the profile's daily plans
// @Tags			Plans
// @Produce		json
// @Success		200	{object}	DailyPlanListResponse
// @Failure		400	{object}	DailyPlanListResponse
// @Failure		500	{object}	DailyPlanListResponse
// @Router			/v1/plans [get]
// @Param			date			query	string	false	"Filter by exact date"
// @Param			from			query	string	false	"Plans on or after this date"
// @Param			to				query	string	false	"Plans on or before this date"
// @Param			categoryCode	query	string	false	"Filter by category code"
// @Param			search			query	string	false	"Search for this text in the comment"
// @Param			offset			query	uint	false	"The offset of the first plan returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of plans to return. Defaults to 50."
func GetDailyPlans(c *gin.Context) {
	var filter DailyPlanQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	filterModel := filter.model()

	q := models.DB.
		Where(&models.DailyPlan{ProfileID: auth.ProfileID(c)}).
		Order("date ASC, created_at ASC").
		Where(&filterModel, queryFields...)

	q = dateRangeFilter(q, "date", filter.From, filter.To)
	q = searchFilter(models.DB, q, filter.Search, "comment")

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var plans []models.DailyPlan
	err := q.Find(&plans).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyPlanListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyPlanListResponse{
			Error: &e,
		})
		return
	}

	data := make([]DailyPlan, 0, len(plans))
	for _, plan := range plans {
		data = append(data, newDailyPlan(c, plan))
	}

	c.JSON(http.StatusOK, DailyPlanListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get plan
// @Description	Returns a specific daily plan
// @Tags			Plans
// @Produce		json
// @Success		200	{object}	DailyPlanResponse
// @Failure		400	{object}	DailyPlanResponse
// @Failure		404	{object}	DailyPlanResponse
// @Failure		500	{object}	DailyPlanResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/plans/{id} [get]
func GetDailyPlan(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyPlanResponse{
			Error: &e,
		})
		return
	}

	var plan models.DailyPlan
	err = models.DB.Where(&models.DailyPlan{ProfileID: auth.ProfileID(c)}).First(&plan, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyPlanResponse{
			Error: &e,
		})
		return
	}

	data := newDailyPlan(c, plan)
	c.JSON(http.StatusOK, DailyPlanResponse{Data: &data})
}

// @Summary		Update plan
// @Description	Updates an existing daily plan. Only values to be updated need to be specified.
// @Tags			Plans
// @Accept			json
// @Produce		json
// @Success		200		{object}	DailyPlanResponse
// @Failure		400		{object}	DailyPlanResponse
// @Failure		404		{object}	DailyPlanResponse
// @Failure		500		{object}	DailyPlanResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			plan	body		DailyPlanEditable	true	"Plan"
// @Router			/v1/plans/{id} [patch]
func UpdateDailyPlan(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyPlanResponse{
			Error: &e,
		})
		return
	}

	var plan models.DailyPlan
	err = models.DB.Where(&models.DailyPlan{ProfileID: auth.ProfileID(c)}).First(&plan, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyPlanResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, DailyPlanEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyPlanResponse{
			Error: &e,
		})
		return
	}

	var data DailyPlanEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyPlanResponse{
			Error: &e,
		})
		return
	}

	if slices.Contains(updateFields, any("CategoryCode")) {
		err = models.ValidateCategoryCode(models.DB, plan.ProfileID, data.CategoryCode)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), DailyPlanResponse{
				Error: &e,
			})
			return
		}
	}

	err = models.DB.Model(&plan).Select("", updateFields...).Updates(data.model(plan.ProfileID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyPlanResponse{
			Error: &e,
		})
		return
	}

	r := newDailyPlan(c, plan)
	c.JSON(http.StatusOK, DailyPlanResponse{Data: &r})
}

// @Summary		Complete plan
// @Description	Turns the plan into a daily record and deletes the plan. The record keeps the plan's date, category, duration and comment.
// @Tags			Plans
// @Produce		json
// @Success		201	{object}	DailyRecordResponse
// @Failure		400	{object}	DailyRecordResponse
// @Failure		404	{object}	DailyRecordResponse
// @Failure		500	{object}	DailyRecordResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/plans/{id}/complete [post]
func CompleteDailyPlan(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyRecordResponse{
			Error: &e,
		})
		return
	}

	var plan models.DailyPlan
	err = models.DB.Where(&models.DailyPlan{ProfileID: auth.ProfileID(c)}).First(&plan, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyRecordResponse{
			Error: &e,
		})
		return
	}

	// The code was gated when the plan was written, completion does not
	// re-validate. A plan for a meanwhile deactivated category can still
	// be completed.
	record := plan.Record()

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		return tx.Delete(&plan).Error
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyRecordResponse{
			Error: &e,
		})
		return
	}

	data := newDailyRecord(c, record)
	c.JSON(http.StatusCreated, DailyRecordResponse{Data: &data})
}

// @Summary		Delete plan
// @Description	Deletes a daily plan
// @Tags			Plans
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/plans/{id} [delete]
func DeleteDailyPlan(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var plan models.DailyPlan
	err = models.DB.Where(&models.DailyPlan{ProfileID: auth.ProfileID(c)}).First(&plan, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&plan).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
