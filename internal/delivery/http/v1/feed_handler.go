package v1

import (
	"net/http"

	"medconnect-backend/internal/delivery/http/response"
	"medconnect-backend/internal/domain"
	"medconnect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedUC domain.FeedUsecase
}

func NewFeedHandler(public *gin.RouterGroup, protected *gin.RouterGroup, feedUC domain.FeedUsecase) {
	handler := &FeedHandler{feedUC: feedUC}

	// The feed itself is readable without authentication
	public.GET("/feed", handler.GetFeed)

	posts := protected.Group("/posts")
	{
		posts.POST("", handler.CreatePost)
		posts.POST("/:id/like", handler.LikePost)
		posts.POST("/:id/comments", handler.AddComment)
	}
}

type CreatePostRequest struct {
	Content  string  `json:"content" binding:"required"`
	ImageURL *string `json:"image_url"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreatePost godoc
// @Summary      Create a post
// @Tags         feed
// @Accept       json
// @Produce      json
// @Param        body  body      CreatePostRequest  true  "Post JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /posts [post]
// @Security     BearerAuth
func (h *FeedHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	post, err := h.feedUC.CreatePost(c.Request.Context(), currentUserID(c), req.Content, req.ImageURL)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Post created", post)
}

// GetFeed godoc
// @Summary      Get the feed
// @Description  Newest-first page of posts with likes and comments
// @Tags         feed
// @Produce      json
// @Param        cursor  query     int  false  "Keyset cursor (post id)"
// @Param        limit   query     int  false  "Page size (max 50)"
// @Success      200     {object}  response.Response
// @Router       /feed [get]
func (h *FeedHandler) GetFeed(c *gin.Context) {
	cursor, ok := queryCursor(c)
	if !ok {
		c.Error(apperror.BadRequest("Invalid cursor"))
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		c.Error(apperror.BadRequest("Invalid limit"))
		return
	}

	page, err := h.feedUC.GetFeed(c.Request.Context(), cursor, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Feed retrieved", page)
}

// LikePost godoc
// @Summary      Toggle a like
// @Description  Likes the post, or removes the like if one already exists
// @Tags         feed
// @Produce      json
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /posts/{id}/like [post]
// @Security     BearerAuth
func (h *FeedHandler) LikePost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		c.Error(apperror.BadRequest("Invalid post id"))
		return
	}

	liked, err := h.feedUC.LikePost(c.Request.Context(), currentUserID(c), postID)
	if err != nil {
		c.Error(err)
		return
	}

	message := "Post liked"
	if !liked {
		message = "Like removed"
	}
	response.Success(c, http.StatusOK, message, gin.H{"liked": liked})
}

// AddComment godoc
// @Summary      Comment on a post
// @Tags         feed
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Post ID"
// @Param        body  body      AddCommentRequest  true  "Comment JSON"
// @Success      201   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /posts/{id}/comments [post]
// @Security     BearerAuth
func (h *FeedHandler) AddComment(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		c.Error(apperror.BadRequest("Invalid post id"))
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	comment, err := h.feedUC.AddComment(c.Request.Context(), currentUserID(c), postID, req.Content)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Comment added", comment)
}
