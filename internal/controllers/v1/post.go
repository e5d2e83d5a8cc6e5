package v1

import (
	"net/http"

	"github.com/doum4811/startbeyond-backend/internal/auth"
	"github.com/doum4811/startbeyond-backend/internal/httputil"
	"github.com/doum4811/startbeyond-backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterPostRoutes registers the routes for community posts and their
// replies with the RouterGroup that is passed.
func RegisterPostRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetPosts)
		r.POST("", CreatePost)
	}

	// Post with ID
	{
		r.OPTIONS("/:id", OptionsPostDetail)
		r.GET("/:id", GetPost)
		r.PATCH("/:id", UpdatePost)
		r.DELETE("/:id", DeletePost)
	}

	// Replies
	{
		r.OPTIONS("/:id/replies", httputil.OptionsGetPost)
		r.GET("/:id/replies", GetPostReplies)
		r.POST("/:id/replies", CreatePostReply)

		r.OPTIONS("/:id/replies/:replyId", httputil.OptionsGetPatchDelete)
		r.GET("/:id/replies/:replyId", GetPostReply)
		r.PATCH("/:id/replies/:replyId", UpdatePostReply)
		r.DELETE("/:id/replies/:replyId", DeletePostReply)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Posts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/posts/{id} [options]
func OptionsPostDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Post{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create post
// @Description	Creates a new community post
// @Tags			Posts
// @Produce		json
// @Success		201		{object}	PostResponse
// @Failure		400		{object}	PostResponse
// @Failure		500		{object}	PostResponse
// @Param			post	body		PostEditable	true	"Post"
// @Router			/v1/posts [post]
func CreatePost(c *gin.Context) {
	var editable PostEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &e,
		})
		return
	}

	post := editable.model(auth.ProfileID(c))

	// A categorized post must reference a category the author can use
	if post.CategoryCode != "" {
		err = models.ValidateCategoryCode(models.DB, post.ProfileID, post.CategoryCode)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), PostResponse{
				Error: &e,
			})
			return
		}
	}

	err = models.DB.Create(&post).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &e,
		})
		return
	}

	data := newPost(c, post)
	c.JSON(http.StatusCreated, PostResponse{Data: &data})
}

// @Summary		Get posts
// @Description	Returns community posts from all profiles
// @Tags			Posts
// @Produce		json
// @Success		200	{object}	PostListResponse
// @Failure		400	{object}	PostListResponse
// @Failure		500	{object}	PostListResponse
// @Router			/v1/posts [get]
// @Param			profile			query	string	false	"Filter by author ID"
// @Param			categoryCode	query	string	false	"Filter by category code"
// @Param			title			query	string	false	"Filter by title"
// @Param			search			query	string	false	"Search for this text in title and content"
// @Param			offset			query	uint	false	"The offset of the first post returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of posts to return. Defaults to 50."
func GetPosts(c *gin.Context) {
	var filter PostQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	filterModel := filter.model()

	q := models.DB.
		Order("created_at DESC").
		Where(&filterModel, queryFields...)

	q = stringFilter(q, setFields, "Title", "title", filter.Title)
	q = searchFilter(models.DB, q, filter.Search, "title", "content")

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var posts []models.Post
	err := q.Find(&posts).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Post, 0, len(posts))
	for _, post := range posts {
		data = append(data, newPost(c, post))
	}

	c.JSON(http.StatusOK, PostListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get post
// @Description	Returns a specific community post
// @Tags			Posts
// @Produce		json
// @Success		200	{object}	PostResponse
// @Failure		400	{object}	PostResponse
// @Failure		404	{object}	PostResponse
// @Failure		500	{object}	PostResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/posts/{id} [get]
func GetPost(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &e,
		})
		return
	}

	var post models.Post
	err = models.DB.First(&post, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &e,
		})
		return
	}

	data := newPost(c, post)
	c.JSON(http.StatusOK, PostResponse{Data: &data})
}

// @Summary		Update post
// @Description	Updates an existing post. Only the author can update a post.
// @Tags			Posts
// @Accept			json
// @Produce		json
// @Success		200		{object}	PostResponse
// @Failure		400		{object}	PostResponse
// @Failure		403		{object}	PostResponse
// @Failure		404		{object}	PostResponse
// @Failure		500		{object}	PostResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			post	body		PostEditable	true	"Post"
// @Router			/v1/posts/{id} [patch]
func UpdatePost(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &e,
		})
		return
	}

	var post models.Post
	err = models.DB.First(&post, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &e,
		})
		return
	}

	if post.ProfileID != auth.ProfileID(c) {
		e := errNotYours.Error()
		c.JSON(status(errNotYours), PostResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PostEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &e,
		})
		return
	}

	var data PostEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &e,
		})
		return
	}

	// The category is optional and can be cleared, but a new non-empty
	// code is gated on the author's effective list
	if slices.Contains(updateFields, any("CategoryCode")) && data.CategoryCode != "" {
		err = models.ValidateCategoryCode(models.DB, post.ProfileID, data.CategoryCode)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), PostResponse{
				Error: &e,
			})
			return
		}
	}

	err = models.DB.Model(&post).Select("", updateFields...).Updates(data.model(post.ProfileID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &e,
		})
		return
	}

	r := newPost(c, post)
	c.JSON(http.StatusOK, PostResponse{Data: &r})
}

// @Summary		Delete post
// @Description	Deletes a post and its replies. Only the author can delete a post.
// @Tags			Posts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/posts/{id} [delete]
func DeletePost(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var post models.Post
	err = models.DB.First(&post, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if post.ProfileID != auth.ProfileID(c) {
		c.JSON(status(errNotYours), httpError{
			Error: errNotYours.Error(),
		})
		return
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(&models.PostReply{PostID: post.ID}).Delete(&models.PostReply{}).Error; err != nil {
			return err
		}

		return tx.Delete(&post).Error
	})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Create reply
// @Description	Creates a reply to a community post
// @Tags			Posts
// @Produce		json
// @Success		201		{object}	PostReplyResponse
// @Failure		400		{object}	PostReplyResponse
// @Failure		404		{object}	PostReplyResponse
// @Failure		500		{object}	PostReplyResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			reply	body		PostReplyEditable	true	"Reply"
// @Router			/v1/posts/{id}/replies [post]
func CreatePostReply(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostReplyResponse{
			Error: &e,
		})
		return
	}

	var post models.Post
	err = models.DB.First(&post, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostReplyResponse{
			Error: &e,
		})
		return
	}

	var editable PostReplyEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostReplyResponse{
			Error: &e,
		})
		return
	}

	reply := editable.model(post.ID, auth.ProfileID(c))

	err = models.DB.Create(&reply).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostReplyResponse{
			Error: &e,
		})
		return
	}

	data := newPostReply(c, reply)
	c.JSON(http.StatusCreated, PostReplyResponse{Data: &data})
}

// @Summary		Get replies
// @Description	Returns the replies to a community post, oldest first
// @Tags			Posts
// @Produce		json
// @Success		200	{object}	PostReplyListResponse
// @Failure		400	{object}	PostReplyListResponse
// @Failure		404	{object}	PostReplyListResponse
// @Failure		500	{object}	PostReplyListResponse
// @Param			id		path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			offset	query	uint	false	"The offset of the first reply returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of replies to return. Defaults to 50."
// @Router			/v1/posts/{id}/replies [get]
func GetPostReplies(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostReplyListResponse{
			Error: &e,
		})
		return
	}

	var post models.Post
	err = models.DB.First(&post, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostReplyListResponse{
			Error: &e,
		})
		return
	}

	var filter struct {
		Offset uint `form:"offset" filterField:"false"`
		Limit  int  `form:"limit" filterField:"false"`
	}
	_ = c.Bind(&filter)
	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Where(&models.PostReply{PostID: post.ID}).
		Order("created_at ASC")

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var replies []models.PostReply
	err = q.Find(&replies).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostReplyListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostReplyListResponse{
			Error: &e,
		})
		return
	}

	data := make([]PostReply, 0, len(replies))
	for _, reply := range replies {
		data = append(data, newPostReply(c, reply))
	}

	c.JSON(http.StatusOK, PostReplyListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// postReply loads a reply addressed by post and reply ID.
func postReply(uri URIReply) (models.PostReply, error) {
	var reply models.PostReply
	err := models.DB.Where(&models.PostReply{PostID: uri.ID.UUID}).First(&reply, uri.ReplyID.UUID).Error
	return reply, err
}

// @Summary		Get reply
// @Description	Returns a specific reply
// @Tags			Posts
// @Produce		json
// @Success		200		{object}	PostReplyResponse
// @Failure		400		{object}	PostReplyResponse
// @Failure		404		{object}	PostReplyResponse
// @Failure		500		{object}	PostReplyResponse
// @Param			id		path		string	true	"ID of the post"
// @Param			replyId	path		string	true	"ID of the reply"
// @Router			/v1/posts/{id}/replies/{replyId} [get]
func GetPostReply(c *gin.Context) {
	var uri URIReply
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostReplyResponse{
			Error: &e,
		})
		return
	}

	reply, err := postReply(uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostReplyResponse{
			Error: &e,
		})
		return
	}

	data := newPostReply(c, reply)
	c.JSON(http.StatusOK, PostReplyResponse{Data: &data})
}

// @Summary		Update reply
// @Description	Updates an existing reply. Only the author can update a reply.
// @Tags			Posts
// @Accept			json
// @Produce		json
// @Success		200		{object}	PostReplyResponse
// @Failure		400		{object}	PostReplyResponse
// @Failure		403		{object}	PostReplyResponse
// @Failure		404		{object}	PostReplyResponse
// @Failure		500		{object}	PostReplyResponse
// @Param			id		path		string				true	"ID of the post"
// @Param			replyId	path		string				true	"ID of the reply"
// @Param			reply	body		PostReplyEditable	true	"Reply"
// @Router			/v1/posts/{id}/replies/{replyId} [patch]
func UpdatePostReply(c *gin.Context) {
	var uri URIReply
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostReplyResponse{
			Error: &e,
		})
		return
	}

	reply, err := postReply(uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostReplyResponse{
			Error: &e,
		})
		return
	}

	if reply.ProfileID != auth.ProfileID(c) {
		e := errNotYours.Error()
		c.JSON(status(errNotYours), PostReplyResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PostReplyEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostReplyResponse{
			Error: &e,
		})
		return
	}

	var data PostReplyEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostReplyResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&reply).Select("", updateFields...).Updates(data.model(reply.PostID, reply.ProfileID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostReplyResponse{
			Error: &e,
		})
		return
	}

	r := newPostReply(c, reply)
	c.JSON(http.StatusOK, PostReplyResponse{Data: &r})
}

// @Summary		Delete reply
// @Description	Deletes a reply. The author of the reply and the author of the post can delete it.
// @Tags			Posts
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string	true	"ID of the post"
// @Param			replyId	path		string	true	"ID of the reply"
// @Router			/v1/posts/{id}/replies/{replyId} [delete]
func DeletePostReply(c *gin.Context) {
	var uri URIReply
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	reply, err := postReply(uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var post models.Post
	err = models.DB.First(&post, reply.PostID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Post authors moderate the replies under their posts
	if reply.ProfileID != auth.ProfileID(c) && post.ProfileID != auth.ProfileID(c) {
		c.JSON(status(errNotYours), httpError{
			Error: errNotYours.Error(),
		})
		return
	}

	err = models.DB.Delete(&reply).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
