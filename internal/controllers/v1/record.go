package v1

import (
	"net/http"

	"github.com/doum4811/startbeyond-backend/internal/auth"
	"github.com/doum4811/startbeyond-backend/internal/httputil"
	"github.com/doum4811/startbeyond-backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterDailyRecordRoutes registers the routes for daily records with
// the RouterGroup that is passed.
func RegisterDailyRecordRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetDailyRecords)
		r.POST("", CreateDailyRecords)
	}

	// Record with ID
	{
		r.OPTIONS("/:id", OptionsDailyRecordDetail)
		r.GET("/:id", GetDailyRecord)
		r.PATCH("/:id", UpdateDailyRecord)
		r.DELETE("/:id", DeleteDailyRecord)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Records
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/records/{id} [options]
func OptionsDailyRecordDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Where(&models.DailyRecord{ProfileID: auth.ProfileID(c)}).First(&models.DailyRecord{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create records
// @Description	Creates new daily records. The category code of every record must be active in the profile's effective category list.
// @Tags			Records
// @Produce		json
// @Success		201		{object}	DailyRecordCreateResponse
// @Failure		400		{object}	DailyRecordCreateResponse
// @Failure		500		{object}	DailyRecordCreateResponse
// @Param			records	body		[]DailyRecordEditable	true	"Records"
// @Router			/v1/records [post]
func CreateDailyRecords(c *gin.Context) {
	var editables []DailyRecordEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyRecordCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := DailyRecordCreateResponse{}

	for _, editable := range editables {
		record := editable.model(auth.ProfileID(c))

		err = models.ValidateCategoryCode(models.DB, record.ProfileID, record.CategoryCode)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		err = models.DB.Create(&record).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newDailyRecord(c, record)
		r.Data = append(r.Data, DailyRecordResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get records
// @Description	Returns the profile's daily records
// @Tags			Records
// @Produce		json
// @Success		200	{object}	DailyRecordListResponse
// @Failure		400	{object}	DailyRecordListResponse
// @Failure		500	{object}	DailyRecordListResponse
// @Router			/v1/records [get]
// @Param			date			query	string	false	"Filter by exact date"
// @Param			from			query	string	false	"Records on or after this date"
// @Param			to				query	string	false	"Records on or before this date"
// @Param			categoryCode	query	string	false	"Filter by category code"
// @Param			isPublic		query	bool	false	"Is the record public?"
// @Param			search			query	string	false	"Search for this text in the comment"
// @Param			offset			query	uint	false	"The offset of the first record returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of records to return. Defaults to 50."
func GetDailyRecords(c *gin.Context) {
	var filter DailyRecordQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	filterModel := filter.model()

	q := models.DB.
		Where(&models.DailyRecord{ProfileID: auth.ProfileID(c)}).
		Order("date DESC, created_at DESC").
		Where(&filterModel, queryFields...)

	q = dateRangeFilter(q, "date", filter.From, filter.To)
	q = searchFilter(models.DB, q, filter.Search, "comment")

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var records []models.DailyRecord
	err := q.Find(&records).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyRecordListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyRecordListResponse{
			Error: &e,
		})
		return
	}

	data := make([]DailyRecord, 0, len(records))
	for _, record := range records {
		data = append(data, newDailyRecord(c, record))
	}

	c.JSON(http.StatusOK, DailyRecordListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get record
// @Description	Returns a specific daily record
// @Tags			Records
// @Produce		json
// @Success		200	{object}	DailyRecordResponse
// @Failure		400	{object}	DailyRecordResponse
// @Failure		404	{object}	DailyRecordResponse
// @Failure		500	{object}	DailyRecordResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/records/{id} [get]
func GetDailyRecord(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyRecordResponse{
			Error: &e,
		})
		return
	}

	var record models.DailyRecord
	err = models.DB.Where(&models.DailyRecord{ProfileID: auth.ProfileID(c)}).First(&record, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyRecordResponse{
			Error: &e,
		})
		return
	}

	data := newDailyRecord(c, record)
	c.JSON(http.StatusOK, DailyRecordResponse{Data: &data})
}

// @Summary		Update record
// @Description	Updates an existing daily record. Only values to be updated need to be specified.
// @Tags			Records
// @Accept			json
// @Produce		json
// @Success		200		{object}	DailyRecordResponse
// @Failure		400		{object}	DailyRecordResponse
// @Failure		404		{object}	DailyRecordResponse
// @Failure		500		{object}	DailyRecordResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			record	body		DailyRecordEditable	true	"Record"
// @Router			/v1/records/{id} [patch]
func UpdateDailyRecord(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyRecordResponse{
			Error: &e,
		})
		return
	}

	var record models.DailyRecord
	err = models.DB.Where(&models.DailyRecord{ProfileID: auth.ProfileID(c)}).First(&record, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyRecordResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, DailyRecordEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyRecordResponse{
			Error: &e,
		})
		return
	}

	var data DailyRecordEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyRecordResponse{
			Error: &e,
		})
		return
	}

	// A changed code is gated on the current effective list, existing
	// records keep theirs
	if slices.Contains(updateFields, any("CategoryCode")) {
		err = models.ValidateCategoryCode(models.DB, record.ProfileID, data.CategoryCode)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), DailyRecordResponse{
				Error: &e,
			})
			return
		}
	}

	err = models.DB.Model(&record).Select("", updateFields...).Updates(data.model(record.ProfileID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyRecordResponse{
			Error: &e,
		})
		return
	}

	r := newDailyRecord(c, record)
	c.JSON(http.StatusOK, DailyRecordResponse{Data: &r})
}

// @Summary		Delete record
// @Description	Deletes a daily record
// @Tags			Records
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/records/{id} [delete]
func DeleteDailyRecord(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var record models.DailyRecord
	err = models.DB.Where(&models.DailyRecord{ProfileID: auth.ProfileID(c)}).First(&record, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&record).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
