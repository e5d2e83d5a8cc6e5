package v1

import (
	"fmt"

	"github.com/doum4811/startbeyond-backend/internal/models"
	ez_uuid "github.com/doum4811/startbeyond-backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PostEditable represents all user configurable parameters
type PostEditable struct {
	Title        string `json:"title" example:"30 days of running"`                                // Post title
	Content      string `json:"content" example:"Started a running streak, here is what helped."` // Post body
	CategoryCode string `json:"categoryCode" example:"EX" default:""`                              // Optional effective category code
}

func (editable PostEditable) model(profileID uuid.UUID) models.Post {
	return models.Post{
		ProfileID:    profileID,
		Title:        editable.Title,
		Content:      editable.Content,
		CategoryCode: editable.CategoryCode,
	}
}

type PostLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/posts/a2f19b5d-e3f3-4c2a-87ba-9063a1c62b5c"`            // The post itself
	Replies string `json:"replies" example:"https://example.com/api/v1/posts/a2f19b5d-e3f3-4c2a-87ba-9063a1c62b5c/replies"` // Replies to the post
}

type Post struct {
	models.DefaultModel
	PostEditable
	ProfileID uuid.UUID `json:"profileId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Author
	Links     PostLinks `json:"links"`
}

func newPost(c *gin.Context, model models.Post) Post {
	url := c.GetString(string(models.DBContextURL))

	return Post{
		DefaultModel: model.DefaultModel,
		ProfileID:    model.ProfileID,
		PostEditable: PostEditable{
			Title:        model.Title,
			Content:      model.Content,
			CategoryCode: model.CategoryCode,
		},
		Links: PostLinks{
			Self:    fmt.Sprintf("%s/v1/posts/%s", url, model.ID),
			Replies: fmt.Sprintf("%s/v1/posts/%s/replies", url, model.ID),
		},
	}
}

type PostListResponse struct {
	Data       []Post      `json:"data"`                                                          // List of posts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PostResponse struct {
	Data  *Post   `json:"data"`                                                     // Data for the post
	Error *string `json:"error" example:"you can only change your own resources"` // The error, if any occurred
}

type PostQueryFilter struct {
	ProfileID    ez_uuid.UUID `form:"profile"`                    // By ID of the author
	CategoryCode string       `form:"categoryCode"`               // By category code
	Title        string       `form:"title" filterField:"false"`  // By title
	Search       string       `form:"search" filterField:"false"` // By string in title and content
	Offset       uint         `form:"offset" filterField:"false"` // The offset of the first post returned. Defaults to 0.
	Limit        int          `form:"limit" filterField:"false"`  // Maximum number of posts to return. Defaults to 50.
}

func (f PostQueryFilter) model() models.Post {
	return models.Post{
		ProfileID:    f.ProfileID.UUID,
		CategoryCode: f.CategoryCode,
	}
}

// PostReplyEditable represents all user configurable parameters
type PostReplyEditable struct {
	Content string `json:"content" example:"Congrats on the streak!"` // Reply text
}

func (editable PostReplyEditable) model(postID, profileID uuid.UUID) models.PostReply {
	return models.PostReply{
		PostID:    postID,
		ProfileID: profileID,
		Content:   editable.Content,
	}
}

type PostReplyLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/posts/a2f19b5d-e3f3-4c2a-87ba-9063a1c62b5c/replies/bcb2bc3a-a3e7-4b16-9287-807cd9cf4e05"` // The reply itself
	Post string `json:"post" example:"https://example.com/api/v1/posts/a2f19b5d-e3f3-4c2a-87ba-9063a1c62b5c"`                                              // The post the reply belongs to
}

type PostReply struct {
	models.DefaultModel
	PostReplyEditable
	PostID    uuid.UUID      `json:"postId" example:"a2f19b5d-e3f3-4c2a-87ba-9063a1c62b5c"`    // Post the reply belongs to
	ProfileID uuid.UUID      `json:"profileId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Author
	Links     PostReplyLinks `json:"links"`
}

func newPostReply(c *gin.Context, model models.PostReply) PostReply {
	url := c.GetString(string(models.DBContextURL))

	return PostReply{
		DefaultModel: model.DefaultModel,
		PostID:       model.PostID,
		ProfileID:    model.ProfileID,
		PostReplyEditable: PostReplyEditable{
			Content: model.Content,
		},
		Links: PostReplyLinks{
			Self: fmt.Sprintf("%s/v1/posts/%s/replies/%s", url, model.PostID, model.ID),
			Post: fmt.Sprintf("%s/v1/posts/%s", url, model.PostID),
		},
	}
}

type PostReplyListResponse struct {
	Data       []PostReply `json:"data"`                                                          // List of replies
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PostReplyResponse struct {
	Data  *PostReply `json:"data"`                                                     // Data for the reply
	Error *string    `json:"error" example:"you can only change your own resources"` // The error, if any occurred
}

// URIReply is bound for routes addressing a reply within a post.
type URIReply struct {
	ID      ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"`      // ID of the post
	ReplyID ez_uuid.UUID `uri:"replyId" binding:"required" format:"UUID"` // ID of the reply
}
