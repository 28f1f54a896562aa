package reconciler

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/hypechain/hypechain/internal/cache"
	"github.com/hypechain/hypechain/internal/db"
	"github.com/hypechain/hypechain/pkg/config"
	"github.com/hypechain/hypechain/pkg/logging"
	"github.com/hypechain/hypechain/pkg/telemetry"
)

const batchSize = 200

// Reconciler runs the periodic maintenance loop: it repairs
// denormalized hype counters against the transaction ledger (the
// ledger is the source of truth) and keeps the leaderboard cache warm.
type Reconciler struct {
	cfg    *config.Config
	db     *db.DB
	cache  *cache.Cache
	logger *zap.Logger
}

// New creates a new reconciler
func New(cfg *config.Config, database *db.DB, redisCache *cache.Cache) *Reconciler {
	return &Reconciler{
		cfg:    cfg,
		db:     database,
		cache:  redisCache,
		logger: logging.WithComponent("reconciler"),
	}
}

// Run starts the reconcile loop and blocks until the context is
// cancelled
func (r *Reconciler) Run(ctx context.Context) error {
	r.logger.Info("Starting reconciler",
		zap.Duration("interval", r.cfg.Reconciler.Interval))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			if err := r.runOnce(ctx); err != nil {
				r.logger.Error("Reconcile pass failed", zap.Error(err))
			}
			r.wait(ctx, r.cfg.Reconciler.Interval)
		}
	}
}

// runOnce executes a single reconcile pass
func (r *Reconciler) runOnce(ctx context.Context) error {
	ctx, span := telemetry.StartSpan(ctx, "reconciler.run_once")
	defer span.End()

	repaired, err := r.reconcilePosts(ctx)
	if err != nil {
		return fmt.Errorf("post reconciliation failed: %w", err)
	}
	if repaired > 0 {
		r.logger.Warn("Repaired drifted post counters", zap.Int("count", repaired))
	}

	if err := r.reconcileChains(ctx); err != nil {
		return fmt.Errorf("chain reconciliation failed: %w", err)
	}

	if err := r.refreshLeaderboard(ctx); err != nil {
		return fmt.Errorf("leaderboard refresh failed: %w", err)
	}

	return nil
}

// reconcilePosts recomputes each post's hype count from the ledger and
// overwrites any counter that drifted. Returns the number repaired.
func (r *Reconciler) reconcilePosts(ctx context.Context) (int, error) {
	repo := db.NewRepository(r.db.DB)
	posts := db.NewPostRepository(repo)
	ledger := db.NewTransactionRepository(repo)

	repaired := 0
	for offset := 0; ; offset += batchSize {
		ids, err := posts.ListIDs(ctx, offset, batchSize)
		if err != nil {
			return repaired, err
		}
		if len(ids) == 0 {
			break
		}

		for _, id := range ids {
			expected, err := ledger.SumAmountByPost(ctx, id)
			if err != nil {
				return repaired, err
			}
			post, err := posts.GetByID(ctx, id)
			if err != nil {
				return repaired, err
			}
			if post == nil || post.HypeCount == expected {
				continue
			}

			r.logger.Warn("Post counter drifted from ledger",
				zap.String("post_id", id),
				zap.Int64("stored", post.HypeCount),
				zap.Int64("expected", expected))
			if err := posts.SetHypeCount(ctx, id, expected); err != nil {
				return repaired, err
			}
			repaired++
		}
	}

	return repaired, nil
}

// reconcileChains recomputes chain totals from their member posts
func (r *Reconciler) reconcileChains(ctx context.Context) error {
	repo := db.NewRepository(r.db.DB)
	chains := db.NewChainRepository(repo)

	ids, err := chains.ListIDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := chains.RecalculateTotalHype(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// leaderboardEntry mirrors the API wire format so the warmed cache is
// served as-is by the leaderboard handler
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

// refreshLeaderboard warms the leaderboard cache for the default page
// size
func (r *Reconciler) refreshLeaderboard(ctx context.Context) error {
	size := r.cfg.Reconciler.LeaderboardSize

	repo := db.NewRepository(r.db.DB)
	profiles := db.NewProfileRepository(repo)
	top, err := profiles.TopByHypeReceived(ctx, size)
	if err != nil {
		return err
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

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	key := "leaderboard:" + cache.HashKey("global", strconv.Itoa(size))
	if err := r.cache.Set(key, data, r.cfg.Reconciler.LeaderboardTTL); err != nil && err != cache.ErrCacheDisabled {
		return err
	}
	return nil
}

// wait waits for the given duration or until the context is cancelled
func (r *Reconciler) wait(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
		return
	}
}
