package v1

import (
	"net/http"

	"github.com/doum4811/startbeyond-backend/internal/auth"
	"github.com/doum4811/startbeyond-backend/internal/httputil"
	"github.com/doum4811/startbeyond-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterDailyNoteRoutes registers the routes for daily notes with the
// RouterGroup that is passed.
func RegisterDailyNoteRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetDailyNotes)
		r.POST("", CreateDailyNote)
	}

	// Note with ID
	{
		r.OPTIONS("/:id", OptionsDailyNoteDetail)
		r.GET("/:id", GetDailyNote)
		r.PATCH("/:id", UpdateDailyNote)
		r.DELETE("/:id", DeleteDailyNote)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/notes/{id} [options]
func OptionsDailyNoteDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Where(&models.DailyNote{ProfileID: auth.ProfileID(c)}).First(&models.DailyNote{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create note
// @Description	Creates the journal note for a day. There is at most one note per day, a second POST for the same day fails.
// @Tags			Notes
// @Produce		json
// @Success		201		{object}	DailyNoteResponse
// @Failure		400		{object}	DailyNoteResponse
// @Failure		500		{object}	DailyNoteResponse
// @Param			note	body		DailyNoteEditable	true	"Note"
// @Router			/v1/notes [post]
func CreateDailyNote(c *gin.Context) {
	var editable DailyNoteEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyNoteResponse{
			Error: &e,
		})
		return
	}

	note := editable.model(auth.ProfileID(c))

	err = models.DB.Create(&note).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyNoteResponse{
			Error: &e,
		})
		return
	}

	data := newDailyNote(c, note)
	c.JSON(http.StatusCreated, DailyNoteResponse{Data: &data})
}

// @Summary		Get notes
// @Description	Returns the profile's daily notes
// @Tags			Notes
// @Produce		json
// @Success		200	{object}	DailyNoteListResponse
// @Failure		400	{object}	DailyNoteListResponse
// @Failure		500	{object}	DailyNoteListResponse
// @Router			/v1/notes [get]
// @Param			date	query	string	false	"Filter by exact date"
// @Param			from	query	string	false	"Notes on or after this date"
// @Param			to		query	string	false	"Notes on or before this date"
// @Param			search	query	string	false	"Search for this text in the content"
// @Param			offset	query	uint	false	"The offset of the first note returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of notes to return. Defaults to 50."
func GetDailyNotes(c *gin.Context) {
	var filter DailyNoteQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	filterModel := filter.model()

	q := models.DB.
		Where(&models.DailyNote{ProfileID: auth.ProfileID(c)}).
		Order("date DESC").
		Where(&filterModel, queryFields...)

	q = dateRangeFilter(q, "date", filter.From, filter.To)
	q = searchFilter(models.DB, q, filter.Search, "content")

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var notes []models.DailyNote
	err := q.Find(&notes).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyNoteListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyNoteListResponse{
			Error: &e,
		})
		return
	}

	data := make([]DailyNote, 0, len(notes))
	for _, note := range notes {
		data = append(data, newDailyNote(c, note))
	}

	c.JSON(http.StatusOK, DailyNoteListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get note
// @Description	Returns a specific daily note
// @Tags			Notes
// @Produce		json
// @Success		200	{object}	DailyNoteResponse
// @Failure		400	{object}	DailyNoteResponse
// @Failure		404	{object}	DailyNoteResponse
// @Failure		500	{object}	DailyNoteResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/notes/{id} [get]
func GetDailyNote(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyNoteResponse{
			Error: &e,
		})
		return
	}

	var note models.DailyNote
	err = models.DB.Where(&models.DailyNote{ProfileID: auth.ProfileID(c)}).First(&note, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyNoteResponse{
			Error: &e,
		})
		return
	}

	data := newDailyNote(c, note)
	c.JSON(http.StatusOK, DailyNoteResponse{Data: &data})
}

// @Summary		Update note
// @Description	Updates an existing daily note. Only values to be updated need to be specified.
// @Tags			Notes
// @Accept			json
// @Produce		json
// @Success		200		{object}	DailyNoteResponse
// @Failure		400		{object}	DailyNoteResponse
// @Failure		404		{object}	DailyNoteResponse
// @Failure		500		{object}	DailyNoteResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			note	body		DailyNoteEditable	true	"Note"
// @Router			/v1/notes/{id} [patch]
func UpdateDailyNote(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyNoteResponse{
			Error: &e,
		})
		return
	}

	var note models.DailyNote
	err = models.DB.Where(&models.DailyNote{ProfileID: auth.ProfileID(c)}).First(&note, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyNoteResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, DailyNoteEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyNoteResponse{
			Error: &e,
		})
		return
	}

	var data DailyNoteEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyNoteResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&note).Select("", updateFields...).Updates(data.model(note.ProfileID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyNoteResponse{
			Error: &e,
		})
		return
	}

	r := newDailyNote(c, note)
	c.JSON(http.StatusOK, DailyNoteResponse{Data: &r})
}

// @Summary		Delete note
// @Description	Deletes a daily note
// @Tags			Notes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/notes/{id} [delete]
func DeleteDailyNote(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var note models.DailyNote
	err = models.DB.Where(&models.DailyNote{ProfileID: auth.ProfileID(c)}).First(&note, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&note).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
