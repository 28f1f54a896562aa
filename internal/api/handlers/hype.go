package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hypechain/hypechain/internal/hype"
	"github.com/hypechain/hypechain/internal/middleware"
)

// HypeAPI exposes the HYPE transfer endpoint
type HypeAPI struct {
	ledger *hype.Ledger
}

// NewHypeAPI creates a new hype API
func NewHypeAPI(ledger *hype.Ledger) *HypeAPI {
	return &HypeAPI{ledger: ledger}
}

// giveHypeRequest is the transfer request body
type giveHypeRequest struct {
	PostID   string `json:"post_id" binding:"required"`
	ToUserID string `json:"to_user_id" binding:"required"`
	Amount   int64  `json:"amount" binding:"required"`
}

// GiveHype handles POST /api/hype/give
func (h *HypeAPI) GiveHype(c *gin.Context) {
	var req giveHypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid parameters")
		return
	}

	split, err := h.ledger.GiveHype(c.Request.Context(), middleware.CallerID(c), req.PostID, req.ToUserID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"transaction": split,
	})
}
