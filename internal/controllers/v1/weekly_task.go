package v1

import (
	"net/http"
	"strings"

	"github.com/doum4811/startbeyond-backend/internal/auth"
	"github.com/doum4811/startbeyond-backend/internal/httputil"
	"github.com/doum4811/startbeyond-backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterWeeklyTaskRoutes registers the routes for weekly tasks with
// the RouterGroup that is passed.
func RegisterWeeklyTaskRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetWeeklyTasks)
		r.POST("", CreateWeeklyTasks)
	}

	// Task with ID
	{
		r.OPTIONS("/:id", OptionsWeeklyTaskDetail)
		r.GET("/:id", GetWeeklyTask)
		r.PATCH("/:id", UpdateWeeklyTask)
		r.DELETE("/:id", DeleteWeeklyTask)
	}

	// Day toggle
	{
		r.OPTIONS("/:id/days/:day", httputil.OptionsPost)
		r.POST("/:id/days/:day", ToggleWeeklyTaskDay)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			WeeklyTasks
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/weekly-tasks/{id} [options]
func OptionsWeeklyTaskDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Where(&models.WeeklyTask{ProfileID: auth.ProfileID(c)}).First(&models.WeeklyTask{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create weekly tasks
// @Description	Creates new weekly tasks. The category code of every task must be active in the profile's effective category list.
// @Tags			WeeklyTasks
// @Produce		json
// @Success		201		{object}	WeeklyTaskCreateResponse
// @Failure		400		{object}	WeeklyTaskCreateResponse
// @Failure		500		{object}	WeeklyTaskCreateResponse
// @Param			tasks	body		[]WeeklyTaskEditable	true	"Tasks"
// @Router			/v1/weekly-tasks [post]
func CreateWeeklyTasks(c *gin.Context) {
	var editables []WeeklyTaskEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyTaskCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := WeeklyTaskCreateResponse{}

	for _, editable := range editables {
		task := editable.model(auth.ProfileID(c))

		err = models.ValidateCategoryCode(models.DB, task.ProfileID, task.CategoryCode)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		err = models.DB.Create(&task).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newWeeklyTask(c, task)
		r.Data = append(r.Data, WeeklyTaskResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get weekly tasks
// @Description	Returns the profile's weekly tasks
// @Tags			WeeklyTasks
// @Produce		json
// @Success		200	{object}	WeeklyTaskListResponse
// @Failure		400	{object}	WeeklyTaskListResponse
// @Failure		500	{object}	WeeklyTaskListResponse
// @Router			/v1/weekly-tasks [get]
// @Param			weekStart		query	string	false	"Filter by week, any day of the week works"
// @Param			categoryCode	query	string	false	"Filter by category code"
// @Param			done			query	bool	false	"Is the task completed?"
// @Param			search			query	string	false	"Search for this text in the comment"
// @Param			offset			query	uint	false	"The offset of the first task returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of tasks to return. Defaults to 50."
func GetWeeklyTasks(c *gin.Context) {
	var filter WeeklyTaskQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	filterModel := filter.model()

	q := models.DB.
		Where(&models.WeeklyTask{ProfileID: auth.ProfileID(c)}).
		Order("week_start DESC, created_at ASC").
		Where(&filterModel, queryFields...)

	q = searchFilter(models.DB, q, filter.Search, "comment")

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var tasks []models.WeeklyTask
	err := q.Find(&tasks).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyTaskListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyTaskListResponse{
			Error: &e,
		})
		return
	}

	data := make([]WeeklyTask, 0, len(tasks))
	for _, task := range tasks {
		data = append(data, newWeeklyTask(c, task))
	}

	c.JSON(http.StatusOK, WeeklyTaskListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get weekly task
// @Description	Returns a specific weekly task
// @Tags			WeeklyTasks
// @Produce		json
// @Success		200	{object}	WeeklyTaskResponse
// @Failure		400	{object}	WeeklyTaskResponse
// @Failure		404	{object}	WeeklyTaskResponse
// @Failure		500	{object}	WeeklyTaskResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/weekly-tasks/{id} [get]
func GetWeeklyTask(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyTaskResponse{
			Error: &e,
		})
		return
	}

	var task models.WeeklyTask
	err = models.DB.Where(&models.WeeklyTask{ProfileID: auth.ProfileID(c)}).First(&task, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyTaskResponse{
			Error: &e,
		})
		return
	}

	data := newWeeklyTask(c, task)
	c.JSON(http.StatusOK, WeeklyTaskResponse{Data: &data})
}

// @Summary		Update weekly task
// @Description	Updates an existing weekly task. Only values to be updated need to be specified.
// @Tags			WeeklyTasks
// @Accept			json
// @Produce		json
// @Success		200		{object}	WeeklyTaskResponse
// @Failure		400		{object}	WeeklyTaskResponse
// @Failure		404		{object}	WeeklyTaskResponse
// @Failure		500		{object}	WeeklyTaskResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			task	body		WeeklyTaskEditable	true	"Task"
// @Router			/v1/weekly-tasks/{id} [patch]
func UpdateWeeklyTask(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyTaskResponse{
			Error: &e,
		})
		return
	}

	var task models.WeeklyTask
	err = models.DB.Where(&models.WeeklyTask{ProfileID: auth.ProfileID(c)}).First(&task, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyTaskResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, WeeklyTaskEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyTaskResponse{
			Error: &e,
		})
		return
	}

	var data WeeklyTaskEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyTaskResponse{
			Error: &e,
		})
		return
	}

	if slices.Contains(updateFields, any("CategoryCode")) {
		err = models.ValidateCategoryCode(models.DB, task.ProfileID, data.CategoryCode)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), WeeklyTaskResponse{
				Error: &e,
			})
			return
		}
	}

	err = models.DB.Model(&task).Select("", updateFields...).Updates(data.model(task.ProfileID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyTaskResponse{
			Error: &e,
		})
		return
	}

	r := newWeeklyTask(c, task)
	c.JSON(http.StatusOK, WeeklyTaskResponse{Data: &r})
}

// @Summary		Toggle task day
// @Description	Flips the scheduling state of one weekday for the task
// @Tags			WeeklyTasks
// @Produce		json
// @Success		200	{object}	WeeklyTaskResponse
// @Failure		400	{object}	WeeklyTaskResponse
// @Failure		404	{object}	WeeklyTaskResponse
// @Failure		500	{object}	WeeklyTaskResponse
// @Param			id	path		string	true	"ID of the task"
// @Param			day	path		string	true	"English weekday name, case-insensitive"
// @Router			/v1/weekly-tasks/{id}/days/{day} [post]
func ToggleWeeklyTaskDay(c *gin.Context) {
	var uri URIDay
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyTaskResponse{
			Error: &e,
		})
		return
	}

	var task models.WeeklyTask
	err = models.DB.Where(&models.WeeklyTask{ProfileID: auth.ProfileID(c)}).First(&task, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyTaskResponse{
			Error: &e,
		})
		return
	}

	err = task.Days.Toggle(strings.ToLower(uri.Day))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyTaskResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Save(&task).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyTaskResponse{
			Error: &e,
		})
		return
	}

	data := newWeeklyTask(c, task)
	c.JSON(http.StatusOK, WeeklyTaskResponse{Data: &data})
}

// @Summary		Delete weekly task
// @Description	Deletes a weekly task
// @Tags			WeeklyTasks
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/weekly-tasks/{id} [delete]
func DeleteWeeklyTask(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var task models.WeeklyTask
	err = models.DB.Where(&models.WeeklyTask{ProfileID: auth.ProfileID(c)}).First(&task, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&task).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
