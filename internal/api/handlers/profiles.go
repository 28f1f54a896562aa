package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hypechain/hypechain/internal/db"
	"github.com/hypechain/hypechain/internal/hype"
	"github.com/hypechain/hypechain/internal/middleware"
	"github.com/hypechain/hypechain/internal/models"
)

// ProfileAPI exposes profile endpoints
type ProfileAPI struct {
	repo *db.Repository
}

// NewProfileAPI creates a new profile API
func NewProfileAPI(repo *db.Repository) *ProfileAPI {
	return &ProfileAPI{repo: repo}
}

// profileView is the wire representation of a profile
type profileView struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	AvatarURL         string `json:"avatar_url,omitempty"`
	Bio               string `json:"bio,omitempty"`
	City              string `json:"city,omitempty"`
	State             string `json:"state,omitempty"`
	Country           string `json:"country,omitempty"`
	HypeBalance       int64  `json:"hype_balance"`
	TotalHypeGiven    int64  `json:"total_hype_given"`
	TotalHypeReceived int64  `json:"total_hype_received"`
	StreakDays        int64  `json:"streak_days"`
	LastDailyReward   string `json:"last_daily_reward,omitempty"`
}

func toProfileView(profile *models.Profile) profileView {
	view := profileView{
		ID:                profile.ID,
		Username:          profile.Username,
		AvatarURL:         profile.AvatarURL.String,
		Bio:               profile.Bio.String,
		City:              profile.City.String,
		State:             profile.State.String,
		Country:           profile.Country.String,
		HypeBalance:       profile.HypeBalance,
		TotalHypeGiven:    profile.TotalHypeGiven,
		TotalHypeReceived: profile.TotalHypeReceived,
		StreakDays:        profile.StreakDays,
	}
	if profile.LastDailyReward.Valid {
		view.LastDailyReward = profile.LastDailyReward.Time.Format("2006-01-02")
	}
	return view
}

// GetProfile handles GET /api/profiles/:id. The parameter is a
// profile id or, when no id matches, a username.
func (h *ProfileAPI) GetProfile(c *gin.Context) {
	ctx := c.Request.Context()
	ref := c.Param("id")

	profiles := db.NewProfileRepository(h.repo)
	profile, err := profiles.GetByID(ctx, ref)
	if err != nil {
		respondError(c, err)
		return
	}
	if profile == nil {
		profile, err = profiles.GetByUsername(ctx, ref)
		if err != nil {
			respondError(c, err)
			return
		}
	}
	if profile == nil {
		respondError(c, hype.ErrProfileNotFound)
		return
	}
	c.JSON(http.StatusOK, toProfileView(profile))
}

// updateProfileRequest is the profile upsert request body
type updateProfileRequest struct {
	Username  string `json:"username" binding:"required"`
	AvatarURL string `json:"avatar_url"`
	Bio       string `json:"bio"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
}

// UpdateProfile handles PUT /api/profiles/me. A caller without a
// profile row yet gets one created; identities come from the auth
// service, profile data lives here.
func (h *ProfileAPI) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid parameters")
		return
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		badRequest(c, "username must not be empty")
		return
	}

	ctx := c.Request.Context()
	userID := middleware.CallerID(c)

	profiles := db.NewProfileRepository(h.repo)
	profile, err := profiles.GetByID(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	created := false
	if profile == nil {
		profile = &models.Profile{
			ID:        userID,
			CreatedAt: time.Now().UTC(),
		}
		created = true
	}

	profile.Username = username
	profile.AvatarURL = nullString(req.AvatarURL)
	profile.Bio = nullString(req.Bio)
	profile.City = nullString(req.City)
	profile.State = nullString(req.State)
	profile.Country = nullString(req.Country)

	if created {
		err = profiles.Create(ctx, profile)
	} else {
		err = profiles.Update(ctx, profile)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			badRequest(c, "username is already taken")
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "profile": toProfileView(profile)})
}

func nullString(s string) sql.NullString {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// transactionView is the wire representation of a ledger entry
type transactionView struct {
	TransactionID  string    `json:"transaction_id"`
	FromUserID     string    `json:"from_user_id"`
	ToUserID       string    `json:"to_user_id"`
	PostID         string    `json:"post_id"`
	Amount         int64     `json:"amount"`
	BurnedAmount   int64     `json:"burned_amount"`
	PlatformAmount int64     `json:"platform_amount"`
	CreatorAmount  int64     `json:"creator_amount"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListTransactions handles GET /api/profiles/:id/transactions
func (h *ProfileAPI) ListTransactions(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), 50, 200)

	ledger := db.NewTransactionRepository(h.repo)
	txs, err := ledger.ListByUser(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]transactionView, 0, len(txs))
	for _, tx := range txs {
		views = append(views, transactionView{
			TransactionID:  tx.TransactionID,
			FromUserID:     tx.FromUserID,
			ToUserID:       tx.ToUserID,
			PostID:         tx.PostID,
			Amount:         tx.Amount,
			BurnedAmount:   tx.BurnedAmount,
			PlatformAmount: tx.PlatformAmount,
			CreatorAmount:  tx.CreatorAmount,
			CreatedAt:      tx.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"transactions": views})
}
