package handlers

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hypechain/hypechain/internal/db"
	"github.com/hypechain/hypechain/internal/hype"
	"github.com/hypechain/hypechain/internal/middleware"
	"github.com/hypechain/hypechain/internal/models"
)

// PostAPI exposes the feed and post endpoints
type PostAPI struct {
	repo *db.Repository
}

// NewPostAPI creates a new post API
func NewPostAPI(repo *db.Repository) *PostAPI {
	return &PostAPI{repo: repo}
}

// postView is the wire representation of a post
type postView struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Username     string    `json:"username,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	ImageURL     string    `json:"image_url"`
	Caption      string    `json:"caption,omitempty"`
	ChainID      string    `json:"chain_id,omitempty"`
	HypeCount    int64     `json:"hype_count"`
	CommentCount int64     `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
}

func toPostView(post *models.Post) postView {
	view := postView{
		ID:           post.ID,
		UserID:       post.UserID,
		ImageURL:     post.ImageURL,
		Caption:      post.Caption.String,
		ChainID:      post.ChainID.String,
		HypeCount:    post.HypeCount,
		CommentCount: post.CommentCount,
		CreatedAt:    post.CreatedAt,
	}
	if post.Owner != nil {
		view.Username = post.Owner.Username
		view.AvatarURL = post.Owner.AvatarURL.String
	}
	return view
}

// Feed handles GET /api/feed
func (h *PostAPI) Feed(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), 20, 100)

	var before *time.Time
	if raw := c.Query("before"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			badRequest(c, "invalid before timestamp")
			return
		}
		before = &t
	}

	posts := db.NewPostRepository(h.repo)
	recent, err := posts.ListRecent(c.Request.Context(), limit, before)
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]postView, 0, len(recent))
	for _, post := range recent {
		views = append(views, toPostView(post))
	}
	c.JSON(http.StatusOK, gin.H{"posts": views})
}

// GetPost handles GET /api/posts/:id
func (h *PostAPI) GetPost(c *gin.Context) {
	posts := db.NewPostRepository(h.repo)
	post, err := posts.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if post == nil {
		respondError(c, hype.ErrPostNotFound)
		return
	}
	c.JSON(http.StatusOK, toPostView(post))
}

// createPostRequest is the publish request body. The image itself is
// uploaded elsewhere; the post only references its URL.
type createPostRequest struct {
	ImageURL string `json:"image_url" binding:"required"`
	Caption  string `json:"caption"`
	ChainID  string `json:"chain_id"`
}

// CreatePost handles POST /api/posts
func (h *PostAPI) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid parameters")
		return
	}

	post := &models.Post{
		ID:        uuid.NewString(),
		UserID:    middleware.CallerID(c),
		ImageURL:  req.ImageURL,
		CreatedAt: time.Now().UTC(),
	}
	if req.Caption != "" {
		post.Caption = sql.NullString{String: req.Caption, Valid: true}
	}
	if req.ChainID != "" {
		post.ChainID = sql.NullString{String: req.ChainID, Valid: true}
	}

	posts := db.NewPostRepository(h.repo)
	if err := posts.Create(c.Request.Context(), post); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "post": toPostView(post)})
}

// parseLimit parses a limit query parameter with a default and ceiling
func parseLimit(raw string, def, max int) int {
	if raw == "" {
		return def
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
