package v1

import (
	"net/http"
	"time"

	"github.com/doum4811/startbeyond-backend/internal/auth"
	"github.com/doum4811/startbeyond-backend/internal/httputil"
	"github.com/doum4811/startbeyond-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterMessageRoutes registers the routes for direct messages with
// the RouterGroup that is passed.
func RegisterMessageRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetMessages)
		r.POST("", CreateMessage)
	}

	// Message with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGet)
		r.GET("/:id", GetMessage)
	}

	// Read marker
	{
		r.OPTIONS("/:id/read", httputil.OptionsPost)
		r.POST("/:id/read", ReadMessage)
	}
}

// @Summary		Send message
// @Description	Sends a direct message to another profile
// @Tags			Messages
// @Produce		json
// @Success		201		{object}	MessageResponse
// @Failure		400		{object}	MessageResponse
// @Failure		404		{object}	MessageResponse
// @Failure		500		{object}	MessageResponse
// @Param			message	body		MessageEditable	true	"Message"
// @Router			/v1/messages [post]
func CreateMessage(c *gin.Context) {
	var editable MessageEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MessageResponse{
			Error: &e,
		})
		return
	}

	if editable.RecipientID == uuid.Nil {
		e := errRecipientRequired.Error()
		c.JSON(http.StatusBadRequest, MessageResponse{
			Error: &e,
		})
		return
	}

	if editable.RecipientID == auth.ProfileID(c) {
		e := errRecipientSelf.Error()
		c.JSON(http.StatusBadRequest, MessageResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.First(&models.Profile{}, editable.RecipientID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MessageResponse{
			Error: &e,
		})
		return
	}

	message := editable.model(auth.ProfileID(c))

	err = models.DB.Create(&message).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MessageResponse{
			Error: &e,
		})
		return
	}

	data := newMessage(c, message)
	c.JSON(http.StatusCreated, MessageResponse{Data: &data})
}

// @Summary		Get messages
// @Description	Returns the messages the profile sent or received, newest first
// @Tags			Messages
// @Produce		json
// @Success		200	{object}	MessageListResponse
// @Failure		400	{object}	MessageListResponse
// @Failure		500	{object}	MessageListResponse
// @Router			/v1/messages [get]
// @Param			with	query	string	false	"Only the conversation with this profile"
// @Param			unread	query	bool	false	"Only unread messages addressed to the profile"
// @Param			search	query	string	false	"Search for this text in the content"
// @Param			offset	query	uint	false	"The offset of the first message returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of messages to return. Defaults to 50."
func GetMessages(c *gin.Context) {
	var filter MessageQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	profileID := auth.ProfileID(c)

	q := models.DB.
		Order("created_at DESC")

	if filter.With.UUID != uuid.Nil {
		q = q.Where(
			models.DB.Where("sender_id = ? AND recipient_id = ?", profileID, filter.With.UUID).
				Or(models.DB.Where("sender_id = ? AND recipient_id = ?", filter.With.UUID, profileID)),
		)
	} else {
		q = q.Where(
			models.DB.Where("sender_id = ?", profileID).
				Or(models.DB.Where("recipient_id = ?", profileID)),
		)
	}

	if filter.Unread {
		q = q.Where("recipient_id = ? AND read_at IS NULL", profileID)
	}

	q = searchFilter(models.DB, q, filter.Search, "content")

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var messages []models.Message
	err := q.Find(&messages).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MessageListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MessageListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Message, 0, len(messages))
	for _, message := range messages {
		data = append(data, newMessage(c, message))
	}

	c.JSON(http.StatusOK, MessageListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// message loads a message the profile participates in. Non-participants
// get a not-found error, not a forbidden one, so that message IDs leak
// nothing.
func message(c *gin.Context, id uuid.UUID) (models.Message, error) {
	profileID := auth.ProfileID(c)

	var message models.Message
	err := models.DB.
		Where(
			models.DB.Where("sender_id = ?", profileID).
				Or(models.DB.Where("recipient_id = ?", profileID)),
		).
		First(&message, id).Error

	return message, err
}

// @Summary		Get message
// @Description	Returns a specific message. Only the sender and the recipient can read it.
// @Tags			Messages
// @Produce		json
// @Success		200	{object}	MessageResponse
// @Failure		400	{object}	MessageResponse
// @Failure		404	{object}	MessageResponse
// @Failure		500	{object}	MessageResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/messages/{id} [get]
func GetMessage(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MessageResponse{
			Error: &e,
		})
		return
	}

	msg, err := message(c, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MessageResponse{
			Error: &e,
		})
		return
	}

	data := newMessage(c, msg)
	c.JSON(http.StatusOK, MessageResponse{Data: &data})
}

// @Summary		Mark message as read
// @Description	Marks a message as read. Only the recipient can do this, the call is idempotent.
// @Tags			Messages
// @Produce		json
// @Success		200	{object}	MessageResponse
// @Failure		400	{object}	MessageResponse
// @Failure		403	{object}	MessageResponse
// @Failure		404	{object}	MessageResponse
// @Failure		500	{object}	MessageResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/messages/{id}/read [post]
func ReadMessage(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MessageResponse{
			Error: &e,
		})
		return
	}

	msg, err := message(c, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MessageResponse{
			Error: &e,
		})
		return
	}

	if msg.RecipientID != auth.ProfileID(c) {
		e := errNotYours.Error()
		c.JSON(status(errNotYours), MessageResponse{
			Error: &e,
		})
		return
	}

	if msg.ReadAt == nil {
		now := time.Now().In(time.UTC)
		msg.ReadAt = &now

		err = models.DB.Save(&msg).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), MessageResponse{
				Error: &e,
			})
			return
		}
	}

	data := newMessage(c, msg)
	c.JSON(http.StatusOK, MessageResponse{Data: &data})
}
