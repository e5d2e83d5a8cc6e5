package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is a direct message between two profiles. It is visible to the
// sender and the recipient only.
type Message struct {
	DefaultModel
	SenderID    uuid.UUID  `json:"senderId" gorm:"index" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`    // Sending profile
	RecipientID uuid.UUID  `json:"recipientId" gorm:"index" example:"91cb4dcf-808c-4be0-bfe0-de741a171fee"` // Receiving profile
	Content     string     `json:"content" example:"See you at the gym tomorrow?"`                          // Message text
	ReadAt      *time.Time `json:"readAt" example:"2026-08-29T18:14:01.048145Z"`                            // Set when the recipient marks the message as read
}
