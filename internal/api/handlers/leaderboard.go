package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hypechain/hypechain/internal/cache"
	"github.com/hypechain/hypechain/internal/db"
	"github.com/hypechain/hypechain/pkg/logging"
)

// LeaderboardAPI exposes the leaderboard endpoint
type LeaderboardAPI struct {
	repo     *db.Repository
	cache    *cache.Cache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewLeaderboardAPI creates a new leaderboard API
func NewLeaderboardAPI(repo *db.Repository, redisCache *cache.Cache, cacheTTL time.Duration) *LeaderboardAPI {
	return &LeaderboardAPI{
		repo:     repo,
		cache:    redisCache,
		cacheTTL: cacheTTL,
		logger:   logging.WithComponent("leaderboard"),
	}
}

// leaderboardEntry is one leaderboard row
type leaderboardEntry struct {
	Rank              int    `json:"rank"`
	UserID            string `json:"user_id"`
	Username          string `json:"username"`
	AvatarURL         string `json:"avatar_url,omitempty"`
	City              string `json:"city,omitempty"`
	State             string `json:"state,omitempty"`
	Country           string `json:"country,omitempty"`
	TotalHypeReceived int64  `json:"total_hype_received"`
}

// GetLeaderboard handles GET /api/leaderboard
func (h *LeaderboardAPI) GetLeaderboard(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), 50, 200)

	cacheKey := "leaderboard:" + cache.HashKey("global", strconv.Itoa(limit))
	if cached, err := h.cache.Get(cacheKey); err == nil {
		var entries []leaderboardEntry
		if err := json.Unmarshal([]byte(cached), &entries); err == nil {
			c.JSON(http.StatusOK, gin.H{"leaders": entries})
			return
		}
	}

	profiles := db.NewProfileRepository(h.repo)
	top, err := profiles.TopByHypeReceived(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	entries := make([]leaderboardEntry, 0, len(top))
	for i, profile := range top {
		entries = append(entries, leaderboardEntry{
			Rank:              i + 1,
			UserID:            profile.ID,
			Username:          profile.Username,
			AvatarURL:         profile.AvatarURL.String,
			City:              profile.City.String,
			State:             profile.State.String,
			Country:           profile.Country.String,
			TotalHypeReceived: profile.TotalHypeReceived,
		})
	}

	if data, err := json.Marshal(entries); err == nil {
		if err := h.cache.Set(cacheKey, data, h.cacheTTL); err != nil && err != cache.ErrCacheDisabled {
			h.logger.Warn("Failed to cache leaderboard", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"leaders": entries})
}
