package hype

import (
	"context"
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

// Ledger executes HYPE transfers. Every transfer runs as a single
// database transaction: balance check, both profile mutations, the
// post counter bump and the ledger append commit together or not at
// all.
type Ledger struct {
	db      *db.DB
	economy config.EconomyConfig
	events  *Publisher
	logger  *zap.Logger
}

// NewLedger creates a new ledger engine
func NewLedger(database *db.DB, economy config.EconomyConfig, events *Publisher) *Ledger {
	return &Ledger{
		db:      database,
		economy: economy,
		events:  events,
		logger:  logging.WithComponent("ledger"),
	}
}

// GiveHype transfers amount from actor to receiver against a post.
// The sender is debited the full amount; the receiver is credited only
// the creator share; the post counter records the gross amount.
func (l *Ledger) GiveHype(ctx context.Context, actorID, postID, receiverID string, amount int64) (*Split, error) {
	ctx, span := telemetry.StartSpan(ctx, "ledger.give_hype")
	defer span.End()

	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if actorID == receiverID {
		return nil, ErrSelfTransfer
	}

	split := ComputeSplit(amount, l.economy.BurnPercent, l.economy.PlatformPercent)
	transactionID := fmt.Sprintf("%s-%s-%d", actorID, postID, time.Now().UnixMilli())

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := db.NewRepository(tx)
		profiles := db.NewProfileRepository(repo)

		// Lock both profiles in id order so two opposing transfers
		// cannot deadlock.
		firstID, secondID := actorID, receiverID
		if secondID < firstID {
			firstID, secondID = secondID, firstID
		}
		first, err := profiles.GetByIDForUpdate(ctx, firstID)
		if err != nil {
			return fmt.Errorf("failed to lock profile %s: %w", firstID, err)
		}
		second, err := profiles.GetByIDForUpdate(ctx, secondID)
		if err != nil {
			return fmt.Errorf("failed to lock profile %s: %w", secondID, err)
		}

		sender, receiver := first, second
		if firstID != actorID {
			sender, receiver = second, first
		}
		if sender == nil || receiver == nil {
			return ErrProfileNotFound
		}

		// The lock makes this check race-free: no concurrent transfer
		// can drain the balance between check and debit.
		if sender.HypeBalance < amount {
			return ErrInsufficientBalance
		}

		if err := tx.Model(&models.Profile{}).
			Where("id = ?", actorID).
			UpdateColumns(map[string]interface{}{
				"hype_balance":     gorm.Expr("hype_balance - ?", amount),
				"total_hype_given": gorm.Expr("total_hype_given + ?", amount),
			}).Error; err != nil {
			return fmt.Errorf("failed to debit sender: %w", err)
		}

		if err := tx.Model(&models.Profile{}).
			Where("id = ?", receiverID).
			UpdateColumns(map[string]interface{}{
				"hype_balance":        gorm.Expr("hype_balance + ?", split.Creator),
				"total_hype_received": gorm.Expr("total_hype_received + ?", split.Creator),
			}).Error; err != nil {
			return fmt.Errorf("failed to credit receiver: %w", err)
		}

		posts := db.NewPostRepository(repo)
		post, err := posts.GetByID(ctx, postID)
		if err != nil {
			return fmt.Errorf("failed to load post: %w", err)
		}
		if post == nil {
			return ErrPostNotFound
		}
		if err := posts.IncrementHypeCount(ctx, postID, amount); err != nil {
			return fmt.Errorf("failed to update post hype count: %w", err)
		}

		ledger := db.NewTransactionRepository(repo)
		if err := ledger.Create(ctx, &models.HypeTransaction{
			TransactionID:  transactionID,
			FromUserID:     actorID,
			ToUserID:       receiverID,
			PostID:         postID,
			Amount:         split.Amount,
			BurnedAmount:   split.Burned,
			PlatformAmount: split.Platform,
			CreatorAmount:  split.Creator,
			CreatedAt:      time.Now().UTC(),
		}); err != nil {
			return fmt.Errorf("failed to record transaction: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	l.logger.Info("HYPE transferred",
		zap.String("from_user_id", actorID),
		zap.String("to_user_id", receiverID),
		zap.String("post_id", postID),
		zap.Int64("amount", split.Amount),
		zap.Int64("burned", split.Burned),
		zap.Int64("platform", split.Platform),
		zap.Int64("creator", split.Creator))

	// Published strictly after commit; never rolls the transfer back.
	l.events.HypeReceived(ctx, receiverID, actorID, postID, split.Creator)

	return &split, nil
}
