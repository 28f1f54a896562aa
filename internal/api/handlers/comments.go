package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hypechain/hypechain/internal/db"
	"github.com/hypechain/hypechain/internal/hype"
	"github.com/hypechain/hypechain/internal/middleware"
	"github.com/hypechain/hypechain/internal/models"
)

// CommentAPI exposes comment endpoints
type CommentAPI struct {
	repo   *db.Repository
	events *hype.Publisher
}

// NewCommentAPI creates a new comment API
func NewCommentAPI(repo *db.Repository, events *hype.Publisher) *CommentAPI {
	return &CommentAPI{repo: repo, events: events}
}

// commentView is the wire representation of a comment
type commentView struct {
	ID        int64     `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// ListComments handles GET /api/posts/:id/comments
func (h *CommentAPI) ListComments(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), 50, 200)

	comments := db.NewCommentRepository(h.repo)
	list, err := comments.ListByPost(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]commentView, 0, len(list))
	for _, comment := range list {
		view := commentView{
			ID:        comment.ID,
			PostID:    comment.PostID,
			UserID:    comment.UserID,
			Body:      comment.Body,
			CreatedAt: comment.CreatedAt,
		}
		if comment.Author != nil {
			view.Username = comment.Author.Username
			view.AvatarURL = comment.Author.AvatarURL.String
		}
		views = append(views, view)
	}
	c.JSON(http.StatusOK, gin.H{"comments": views})
}

// createCommentRequest is the comment request body
type createCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// CreateComment handles POST /api/posts/:id/comments
func (h *CommentAPI) CreateComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid parameters")
		return
	}
	body := strings.TrimSpace(req.Body)
	if body == "" {
		badRequest(c, "comment body must not be empty")
		return
	}

	postID := c.Param("id")
	actorID := middleware.CallerID(c)

	posts := db.NewPostRepository(h.repo)
	post, err := posts.GetByID(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err)
		return
	}
	if post == nil {
		respondError(c, hype.ErrPostNotFound)
		return
	}

	comment := &models.Comment{
		PostID:    postID,
		UserID:    actorID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	comments := db.NewCommentRepository(h.repo)
	if err := comments.Create(c.Request.Context(), comment); err != nil {
		respondError(c, err)
		return
	}
	if err := posts.IncrementCommentCount(c.Request.Context(), postID); err != nil {
		respondError(c, err)
		return
	}

	h.events.CommentPosted(c.Request.Context(), post.UserID, actorID, postID)

	c.JSON(http.StatusOK, gin.H{"success": true, "comment": commentView{
		ID:        comment.ID,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt,
	}})
}
