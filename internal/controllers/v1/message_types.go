package v1

import (
	"fmt"
	"time"

	"github.com/doum4811/startbeyond-backend/internal/models"
	ez_uuid "github.com/doum4811/startbeyond-backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MessageEditable represents all user configurable parameters
type MessageEditable struct {
	RecipientID uuid.UUID `json:"recipientId" example:"91cb4dcf-808c-4be0-bfe0-de741a171fee"` // Receiving profile
	Content     string    `json:"content" example:"See you at the gym tomorrow?"`             // Message text
}

func (editable MessageEditable) model(senderID uuid.UUID) models.Message {
	return models.Message{
		SenderID:    senderID,
		RecipientID: editable.RecipientID,
		Content:     editable.Content,
	}
}

type MessageLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/messages/d15851e4-eb9c-4702-a0e0-4c3b3f2b9e91"`      // The message itself
	Read string `json:"read" example:"https://example.com/api/v1/messages/d15851e4-eb9c-4702-a0e0-4c3b3f2b9e91/read"` // Marks the message as read
}

type Message struct {
	models.DefaultModel
	SenderID    uuid.UUID    `json:"senderId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`    // Sending profile
	RecipientID uuid.UUID    `json:"recipientId" example:"91cb4dcf-808c-4be0-bfe0-de741a171fee"` // Receiving profile
	Content     string       `json:"content" example:"See you at the gym tomorrow?"`             // Message text
	ReadAt      *time.Time   `json:"readAt" example:"2026-08-29T18:14:01.048145Z"`               // Set when the recipient marks the message as read
	Links       MessageLinks `json:"links"`
}

func newMessage(c *gin.Context, model models.Message) Message {
	url := c.GetString(string(models.DBContextURL))

	return Message{
		DefaultModel: model.DefaultModel,
		SenderID:     model.SenderID,
		RecipientID:  model.RecipientID,
		Content:      model.Content,
		ReadAt:       model.ReadAt,
		Links: MessageLinks{
			Self: fmt.Sprintf("%s/v1/messages/%s", url, model.ID),
			Read: fmt.Sprintf("%s/v1/messages/%s/read", url, model.ID),
		},
	}
}

type MessageListResponse struct {
	Data       []Message   `json:"data"`                                                          // List of messages
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type MessageResponse struct {
	Data  *Message `json:"data"`                                                // Data for the message
	Error *string  `json:"error" example:"the recipientId parameter must be set"` // The error, if any occurred
}

type MessageQueryFilter struct {
	With   ez_uuid.UUID `form:"with" filterField:"false"`   // Only the conversation with this profile
	Unread bool         `form:"unread" filterField:"false"` // Only unread messages addressed to the profile
	Search string       `form:"search" filterField:"false"` // By string in the content
	Offset uint         `form:"offset" filterField:"false"` // The offset of the first message returned. Defaults to 0.
	Limit  int          `form:"limit" filterField:"false"`  // Maximum number of messages to return. Defaults to 50.
}
