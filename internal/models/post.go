package models

import (
	"github.com/google/uuid"
)

// Post is a community post. Posts are readable by all profiles but can
// only be changed by their author.
type Post struct {
	DefaultModel
	ProfileID    uuid.UUID `json:"profileId" gorm:"index" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Author
	Title        string    `json:"title" example:"30 days of running"`                                    // Post title
	Content      string    `json:"content" example:"Started a running streak, here is what helped."`     // Post body
	CategoryCode string    `json:"categoryCode" example:"EX" default:""`                                  // Optional effective category code
}

// PostReply is a reply to a community post.
type PostReply struct {
	DefaultModel
	PostID    uuid.UUID `json:"postId" gorm:"index" example:"a2f19b5d-e3f3-4c2a-87ba-9063a1c62b5c"`    // Post the reply belongs to
	ProfileID uuid.UUID `json:"profileId" gorm:"index" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Author
	Content   string    `json:"content" example:"Congrats on the streak!"`                             // Reply text
	Post      Post      `json:"-"`                                                                     // The post the reply belongs to
}
