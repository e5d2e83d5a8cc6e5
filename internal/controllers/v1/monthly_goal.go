package v1

import (
	"errors"
	"net/http"

	"github.com/doum4811/startbeyond-backend/internal/auth"
	"github.com/doum4811/startbeyond-backend/internal/httputil"
	"github.com/doum4811/startbeyond-backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterMonthlyGoalRoutes registers the routes for monthly goals with
// the RouterGroup that is passed.
func RegisterMonthlyGoalRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetMonthlyGoals)
		r.POST("", CreateMonthlyGoals)
	}

	// Goal with ID
	{
		r.OPTIONS("/:id", OptionsMonthlyGoalDetail)
		r.GET("/:id", GetMonthlyGoal)
		r.PATCH("/:id", UpdateMonthlyGoal)
		r.DELETE("/:id", DeleteMonthlyGoal)
	}

	// Breakdown into weekly tasks
	{
		r.OPTIONS("/:id/breakdown", httputil.OptionsPost)
		r.POST("/:id/breakdown", BreakdownMonthlyGoal)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MonthlyGoals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/monthly-goals/{id} [options]
func OptionsMonthlyGoalDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Where(&models.MonthlyGoal{ProfileID: auth.ProfileID(c)}).First(&models.MonthlyGoal{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create monthly goals
// @Description	Creates new monthly goals. The category code of every goal must be active in the profile's effective category list.
// @Tags			MonthlyGoals
// @Produce		json
// @Success		201		{object}	MonthlyGoalCreateResponse
// @Failure		400		{object}	MonthlyGoalCreateResponse
// @Failure		500		{object}	MonthlyGoalCreateResponse
// @Param			goals	body		[]MonthlyGoalEditable	true	"Goals"
// @Router			/v1/monthly-goals [post]
func CreateMonthlyGoals(c *gin.Context) {
	var editables []MonthlyGoalEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyGoalCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := MonthlyGoalCreateResponse{}

	for _, editable := range editables {
		goal := editable.model(auth.ProfileID(c))

		err = models.ValidateCategoryCode(models.DB, goal.ProfileID, goal.CategoryCode)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		err = models.DB.Create(&goal).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newMonthlyGoal(c, goal)
		r.Data = append(r.Data, MonthlyGoalResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get monthly goals
// @Description	Returns the profile's monthly goals
// @Tags			MonthlyGoals
// @Produce		json
// @Success		200	{object}	MonthlyGoalListResponse
// @Failure		400	{object}	MonthlyGoalListResponse
// @Failure		500	{object}	MonthlyGoalListResponse
// @Router			/v1/monthly-goals [get]
// @Param			month			query	string	false	"Filter by month in YYYY-MM format"
// @Param			categoryCode	query	string	false	"Filter by category code"
// @Param			search			query	string	false	"Search for this text in title and success criteria"
// @Param			offset			query	uint	false	"The offset of the first goal returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of goals to return. Defaults to 50."
func GetMonthlyGoals(c *gin.Context) {
	var filter MonthlyGoalQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyGoalListResponse{
			Error: &e,
		})
		return
	}

	q := models.DB.
		Where(&models.MonthlyGoal{ProfileID: auth.ProfileID(c)}).
		Order("month DESC, created_at ASC").
		Where(&filterModel, queryFields...)

	q = searchFilter(models.DB, q, filter.Search, "title", "success_criteria")

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var goals []models.MonthlyGoal
	err = q.Find(&goals).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyGoalListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyGoalListResponse{
			Error: &e,
		})
		return
	}

	data := make([]MonthlyGoal, 0, len(goals))
	for _, goal := range goals {
		data = append(data, newMonthlyGoal(c, goal))
	}

	c.JSON(http.StatusOK, MonthlyGoalListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get monthly goal
// @Description	Returns a specific monthly goal
// @Tags			MonthlyGoals
// @Produce		json
// @Success		200	{object}	MonthlyGoalResponse
// @Failure		400	{object}	MonthlyGoalResponse
// @Failure		404	{object}	MonthlyGoalResponse
// @Failure		500	{object}	MonthlyGoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/monthly-goals/{id} [get]
func GetMonthlyGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyGoalResponse{
			Error: &e,
		})
		return
	}

	var goal models.MonthlyGoal
	err = models.DB.Where(&models.MonthlyGoal{ProfileID: auth.ProfileID(c)}).First(&goal, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyGoalResponse{
			Error: &e,
		})
		return
	}

	data := newMonthlyGoal(c, goal)
	c.JSON(http.StatusOK, MonthlyGoalResponse{Data: &data})
}

// @Summary		Update monthly goal
// @Description	Updates an existing monthly goal. Only values to be updated need to be specified.
// @Tags			MonthlyGoals
// @Accept			json
// @Produce		json
// @Success		200		{object}	MonthlyGoalResponse
// @Failure		400		{object}	MonthlyGoalResponse
// @Failure		404		{object}	MonthlyGoalResponse
// @Failure		500		{object}	MonthlyGoalResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goal	body		MonthlyGoalEditable	true	"Goal"
// @Router			/v1/monthly-goals/{id} [patch]
func UpdateMonthlyGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyGoalResponse{
			Error: &e,
		})
		return
	}

	var goal models.MonthlyGoal
	err = models.DB.Where(&models.MonthlyGoal{ProfileID: auth.ProfileID(c)}).First(&goal, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyGoalResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, MonthlyGoalEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyGoalResponse{
			Error: &e,
		})
		return
	}

	var data MonthlyGoalEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyGoalResponse{
			Error: &e,
		})
		return
	}

	if slices.Contains(updateFields, any("CategoryCode")) {
		err = models.ValidateCategoryCode(models.DB, goal.ProfileID, data.CategoryCode)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), MonthlyGoalResponse{
				Error: &e,
			})
			return
		}
	}

	err = models.DB.Model(&goal).Select("", updateFields...).Updates(data.model(goal.ProfileID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyGoalResponse{
			Error: &e,
		})
		return
	}

	r := newMonthlyGoal(c, goal)
	c.JSON(http.StatusOK, MonthlyGoalResponse{Data: &r})
}

// @Summary		Break down monthly goal
// @Description	Creates one weekly task per week of the goal's month. Weeks that already have a task from this goal are skipped, so the call is idempotent.
// @Tags			MonthlyGoals
// @Produce		json
// @Success		201	{object}	BreakdownResponse
// @Failure		400	{object}	BreakdownResponse
// @Failure		404	{object}	BreakdownResponse
// @Failure		500	{object}	BreakdownResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/monthly-goals/{id}/breakdown [post]
func BreakdownMonthlyGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BreakdownResponse{
			Error: &e,
		})
		return
	}

	var goal models.MonthlyGoal
	err = models.DB.Where(&models.MonthlyGoal{ProfileID: auth.ProfileID(c)}).First(&goal, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BreakdownResponse{
			Error: &e,
		})
		return
	}

	var tasks []models.WeeklyTask
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		for _, weekStart := range goal.WeekStarts() {
			task := models.WeeklyTask{
				ProfileID:    goal.ProfileID,
				WeekStart:    weekStart,
				CategoryCode: goal.CategoryCode,
				Comment:      goal.Title,
			}

			// A task from an earlier breakdown of this goal keeps the
			// call idempotent
			var existing models.WeeklyTask
			err := tx.Where(&models.WeeklyTask{
				ProfileID:    goal.ProfileID,
				WeekStart:    weekStart,
				CategoryCode: goal.CategoryCode,
			}).Where("comment = ?", goal.Title).First(&existing).Error
			if err == nil {
				tasks = append(tasks, existing)
				continue
			}

			if !errors.Is(err, models.ErrResourceNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			if err := tx.Create(&task).Error; err != nil {
				return err
			}

			tasks = append(tasks, task)
		}

		return nil
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BreakdownResponse{
			Error: &e,
		})
		return
	}

	data := make([]WeeklyTask, 0, len(tasks))
	for _, task := range tasks {
		data = append(data, newWeeklyTask(c, task))
	}

	c.JSON(http.StatusCreated, BreakdownResponse{Data: data})
}

// @Summary		Delete monthly goal
// @Description	Deletes a monthly goal. Weekly tasks created from the goal are kept.
// @Tags			MonthlyGoals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/monthly-goals/{id} [delete]
func DeleteMonthlyGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var goal models.MonthlyGoal
	err = models.DB.Where(&models.MonthlyGoal{ProfileID: auth.ProfileID(c)}).First(&goal, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&goal).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
