package hype

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hypechain/hypechain/internal/db"
	"github.com/hypechain/hypechain/internal/models"
	"github.com/hypechain/hypechain/pkg/config"
	"github.com/hypechain/hypechain/pkg/logging"
	"github.com/hypechain/hypechain/pkg/telemetry"
)

// RewardEngine grants the streak-based daily reward. Claims are
// arbitrated by the unique (user_id, reward_date) constraint, so the
// first concurrent claim wins and every other one fails.
type RewardEngine struct {
	db      *db.DB
	economy config.EconomyConfig
	events  *Publisher
	logger  *zap.Logger
}

// NewRewardEngine creates a new reward engine
func NewRewardEngine(database *db.DB, economy config.EconomyConfig, events *Publisher) *RewardEngine {
	return &RewardEngine{
		db:      database,
		economy: economy,
		events:  events,
		logger:  logging.WithComponent("reward"),
	}
}

// RewardResult describes a successful claim
type RewardResult struct {
	Amount      int64 `json:"amount"`
	BaseReward  int64 `json:"base_reward"`
	StreakBonus int64 `json:"streak_bonus"`
	StreakDays  int64 `json:"streak_days"`
	NewBalance  int64 `json:"new_balance"`
}

// Day truncates t to its UTC calendar date
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NextStreak computes the streak a claim on today produces, given the
// date of the most recent claim. A claim yesterday continues the
// streak; any gap restarts it at 1.
func NextStreak(lastReward *time.Time, today time.Time, current int64) int64 {
	if lastReward != nil && Day(*lastReward).Equal(Day(today).AddDate(0, 0, -1)) {
		return current + 1
	}
	return 1
}

// RewardAmount computes the claim amount for a streak: the base plus a
// per-day bonus that stops growing once the streak reaches the cap.
func RewardAmount(streakDays int64, economy config.EconomyConfig) (total, base, bonus int64) {
	base = int64(economy.BaseReward)
	bonusDays := streakDays - 1
	if limit := int64(economy.StreakBonusCap - 1); bonusDays > limit {
		bonusDays = limit
	}
	if bonusDays < 0 {
		bonusDays = 0
	}
	bonus = bonusDays * int64(economy.StreakBonusStep)
	return base + bonus, base, bonus
}

// ClaimDailyReward grants the caller's reward for today, at most once
// per UTC calendar day.
func (r *RewardEngine) ClaimDailyReward(ctx context.Context, userID string) (*RewardResult, error) {
	ctx, span := telemetry.StartSpan(ctx, "reward.claim_daily")
	defer span.End()

	today := Day(time.Now())

	var result RewardResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := db.NewRepository(tx)
		profiles := db.NewProfileRepository(repo)

		profile, err := profiles.GetByIDForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to lock profile: %w", err)
		}
		if profile == nil {
			return ErrProfileNotFound
		}

		var lastReward *time.Time
		if profile.LastDailyReward.Valid {
			t := profile.LastDailyReward.Time
			lastReward = &t
		}
		if lastReward != nil && Day(*lastReward).Equal(today) {
			return ErrAlreadyClaimed
		}

		streak := NextStreak(lastReward, today, profile.StreakDays)
		total, base, bonus := RewardAmount(streak, r.economy)

		// The insert is the arbiter: a duplicate key here means a
		// concurrent claim won the race.
		rewards := db.NewRewardRepository(repo)
		if err := rewards.Create(ctx, &models.DailyReward{
			UserID:     userID,
			RewardDate: today,
			Amount:     total,
			StreakDays: streak,
			CreatedAt:  time.Now().UTC(),
		}); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyClaimed
			}
			return fmt.Errorf("failed to record claim: %w", err)
		}

		if err := tx.Model(&models.Profile{}).
			Where("id = ?", userID).
			UpdateColumns(map[string]interface{}{
				"hype_balance":      gorm.Expr("hype_balance + ?", total),
				"last_daily_reward": today,
				"streak_days":       streak,
			}).Error; err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}

		result = RewardResult{
			Amount:      total,
			BaseReward:  base,
			StreakBonus: bonus,
			StreakDays:  streak,
			NewBalance:  profile.HypeBalance + total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("Daily reward claimed",
		zap.String("user_id", userID),
		zap.Int64("amount", result.Amount),
		zap.Int64("streak_days", result.StreakDays))

	r.events.RewardClaimed(ctx, userID, result.Amount, result.StreakDays)

	return &result, nil
}
