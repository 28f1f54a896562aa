package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hypechain/hypechain/internal/db"
	"github.com/hypechain/hypechain/internal/hype"
	"github.com/hypechain/hypechain/internal/middleware"
)

// RewardAPI exposes the daily reward endpoints
type RewardAPI struct {
	engine *hype.RewardEngine
	repo   *db.Repository
}

// NewRewardAPI creates a new reward API
func NewRewardAPI(engine *hype.RewardEngine, repo *db.Repository) *RewardAPI {
	return &RewardAPI{engine: engine, repo: repo}
}

// ClaimDailyReward handles POST /api/rewards/claim
func (h *RewardAPI) ClaimDailyReward(c *gin.Context) {
	result, err := h.engine.ClaimDailyReward(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reward":  result,
	})
}

// RewardStatus handles GET /api/rewards/status. It reports whether the
// caller has already claimed today's reward and what the current streak is,
// so clients can render the claim dialog without attempting a claim.
func (h *RewardAPI) RewardStatus(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.CallerID(c)

	profiles := db.NewProfileRepository(h.repo)
	profile, err := profiles.GetByID(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if profile == nil {
		respondError(c, hype.ErrProfileNotFound)
		return
	}

	today := hype.Day(time.Now())
	rewards := db.NewRewardRepository(h.repo)
	claimed, err := rewards.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"claimed_today": claimed != nil,
		"streak_days":   profile.StreakDays,
	})
}
