package handlers

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hypechain/hypechain/internal/db"
	"github.com/hypechain/hypechain/internal/middleware"
	"github.com/hypechain/hypechain/internal/models"
)

// ChainAPI exposes chain endpoints
type ChainAPI struct {
	repo *db.Repository
}

// NewChainAPI creates a new chain API
func NewChainAPI(repo *db.Repository) *ChainAPI {
	return &ChainAPI{repo: repo}
}

// chainView is the wire representation of a chain
type chainView struct {
	ID          string    `json:"id"`
	CreatorID   string    `json:"creator_id"`
	Creator     string    `json:"creator,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	TotalHype   int64     `json:"total_hype"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func toChainView(chain *models.Chain) chainView {
	view := chainView{
		ID:          chain.ID,
		CreatorID:   chain.CreatorID,
		Title:       chain.Title,
		Description: chain.Description.String,
		TotalHype:   chain.TotalHype,
		IsActive:    chain.IsActive,
		CreatedAt:   chain.CreatedAt,
	}
	if chain.Creator != nil {
		view.Creator = chain.Creator.Username
	}
	return view
}

// ListChains handles GET /api/chains
func (h *ChainAPI) ListChains(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), 50, 200)

	chains := db.NewChainRepository(h.repo)
	list, err := chains.ListActive(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]chainView, 0, len(list))
	for _, chain := range list {
		views = append(views, toChainView(chain))
	}
	c.JSON(http.StatusOK, gin.H{"chains": views})
}

// GetChain handles GET /api/chains/:id
func (h *ChainAPI) GetChain(c *gin.Context) {
	chains := db.NewChainRepository(h.repo)
	chain, err := chains.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if chain == nil {
		badRequest(c, "chain not found")
		return
	}
	c.JSON(http.StatusOK, toChainView(chain))
}

// createChainRequest is the chain creation request body
type createChainRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// CreateChain handles POST /api/chains
func (h *ChainAPI) CreateChain(c *gin.Context) {
	var req createChainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid parameters")
		return
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		badRequest(c, "chain title must not be empty")
		return
	}

	chain := &models.Chain{
		ID:        uuid.NewString(),
		CreatorID: middleware.CallerID(c),
		Title:     title,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if req.Description != "" {
		chain.Description = sql.NullString{String: req.Description, Valid: true}
	}

	chains := db.NewChainRepository(h.repo)
	if err := chains.Create(c.Request.Context(), chain); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "chain": toChainView(chain)})
}
