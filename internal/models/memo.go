package models

import (
	"github.com/google/uuid"
)

// Memo is a free-form note, optionally attached to a daily record.
type Memo struct {
	DefaultModel
	ProfileID uuid.UUID  `json:"profileId" gorm:"index" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Owning profile
	RecordID  *uuid.UUID `json:"recordId" example:"b3a8b8ff-0b17-47e7-9acb-51acca8e6657"`               // Optional daily record the memo belongs to
	Title     string     `json:"title" example:"Shoe shopping" default:""`                              // Short title
	Content   string     `json:"content" example:"Look for trail shoes before the next long run."`     // Memo text
}
