package v1

import (
	"net/http"

	"github.com/doum4811/startbeyond-backend/internal/auth"
	"github.com/doum4811/startbeyond-backend/internal/httputil"
	"github.com/doum4811/startbeyond-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// RegisterMemoRoutes registers the routes for memos with the RouterGroup
// that is passed.
func RegisterMemoRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetMemos)
		r.POST("", CreateMemos)
	}

	// Memo with ID
	{
		r.OPTIONS("/:id", OptionsMemoDetail)
		r.GET("/:id", GetMemo)
		r.PATCH("/:id", UpdateMemo)
		r.DELETE("/:id", DeleteMemo)
	}
}

// checkMemoRecord verifies that a referenced daily record exists and
// belongs to the profile.
func checkMemoRecord(c *gin.Context, recordID *uuid.UUID) error {
	if recordID == nil {
		return nil
	}

	return models.DB.Where(&models.DailyRecord{ProfileID: auth.ProfileID(c)}).First(&models.DailyRecord{}, *recordID).Error
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Memos
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/memos/{id} [options]
func OptionsMemoDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Where(&models.Memo{ProfileID: auth.ProfileID(c)}).First(&models.Memo{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create memos
// @Description	Creates new memos, optionally attached to a daily record
// @Tags			Memos
// @Produce		json
// @Success		201		{object}	MemoCreateResponse
// @Failure		400		{object}	MemoCreateResponse
// @Failure		404		{object}	MemoCreateResponse
// @Failure		500		{object}	MemoCreateResponse
// @Param			memos	body		[]MemoEditable	true	"Memos"
// @Router			/v1/memos [post]
func CreateMemos(c *gin.Context) {
	var editables []MemoEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MemoCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := MemoCreateResponse{}

	for _, editable := range editables {
		memo := editable.model(auth.ProfileID(c))

		err = checkMemoRecord(c, memo.RecordID)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		err = models.DB.Create(&memo).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newMemo(c, memo)
		r.Data = append(r.Data, MemoResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get memos
// @Description	Returns the profile's memos
// @Tags			Memos
// @Produce		json
// @Success		200	{object}	MemoListResponse
// @Failure		400	{object}	MemoListResponse
// @Failure		500	{object}	MemoListResponse
// @Router			/v1/memos [get]
// @Param			record	query	string	false	"Filter by daily record ID"
// @Param			title	query	string	false	"Filter by title"
// @Param			search	query	string	false	"Search for this text in title and content"
// @Param			offset	query	uint	false	"The offset of the first memo returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of memos to return. Defaults to 50."
func GetMemos(c *gin.Context) {
	var filter MemoQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	filterModel := filter.model()

	q := models.DB.
		Where(&models.Memo{ProfileID: auth.ProfileID(c)}).
		Order("created_at DESC").
		Where(&filterModel, queryFields...)

	q = stringFilter(q, setFields, "Title", "title", filter.Title)
	q = searchFilter(models.DB, q, filter.Search, "title", "content")

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var memos []models.Memo
	err := q.Find(&memos).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MemoListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MemoListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Memo, 0, len(memos))
	for _, memo := range memos {
		data = append(data, newMemo(c, memo))
	}

	c.JSON(http.StatusOK, MemoListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get memo
// @Description	Returns a specific memo
// @Tags			Memos
// @Produce		json
// @Success		200	{object}	MemoResponse
// @Failure		400	{object}	MemoResponse
// @Failure		404	{object}	MemoResponse
// @Failure		500	{object}	MemoResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/memos/{id} [get]
func GetMemo(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MemoResponse{
			Error: &e,
		})
		return
	}

	var memo models.Memo
	err = models.DB.Where(&models.Memo{ProfileID: auth.ProfileID(c)}).First(&memo, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MemoResponse{
			Error: &e,
		})
		return
	}

	data := newMemo(c, memo)
	c.JSON(http.StatusOK, MemoResponse{Data: &data})
}

// @Summary		Update memo
// @Description	Updates an existing memo. Only values to be updated need to be specified.
// @Tags			Memos
// @Accept			json
// @Produce		json
// @Success		200		{object}	MemoResponse
// @Failure		400		{object}	MemoResponse
// @Failure		404		{object}	MemoResponse
// @Failure		500		{object}	MemoResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			memo	body		MemoEditable	true	"Memo"
// @Router			/v1/memos/{id} [patch]
func UpdateMemo(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MemoResponse{
			Error: &e,
		})
		return
	}

	var memo models.Memo
	err = models.DB.Where(&models.Memo{ProfileID: auth.ProfileID(c)}).First(&memo, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MemoResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, MemoEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MemoResponse{
			Error: &e,
		})
		return
	}

	var data MemoEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MemoResponse{
			Error: &e,
		})
		return
	}

	if slices.Contains(updateFields, any("RecordID")) {
		err = checkMemoRecord(c, data.RecordID)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), MemoResponse{
				Error: &e,
			})
			return
		}
	}

	err = models.DB.Model(&memo).Select("", updateFields...).Updates(data.model(memo.ProfileID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MemoResponse{
			Error: &e,
		})
		return
	}

	r := newMemo(c, memo)
	c.JSON(http.StatusOK, MemoResponse{Data: &r})
}

// @Summary		Delete memo
// @Description	Deletes a memo
// @Tags			Memos
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/memos/{id} [delete]
func DeleteMemo(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var memo models.Memo
	err = models.DB.Where(&models.Memo{ProfileID: auth.ProfileID(c)}).First(&memo, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&memo).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
