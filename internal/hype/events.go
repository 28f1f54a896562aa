package hype

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/hypechain/hypechain/internal/cache"
	"github.com/hypechain/hypechain/internal/db"
	"github.com/hypechain/hypechain/internal/models"
	"github.com/hypechain/hypechain/pkg/logging"
)

// Publisher emits outbound events after a successful commit: a
// notification row for polling clients and a best-effort redis publish
// for push delivery. Failures are logged, never propagated back into
// the operation that triggered them.
type Publisher struct {
	repo   *db.Repository
	cache  *cache.Cache
	logger *zap.Logger
}

// NewPublisher creates a new event publisher
func NewPublisher(repo *db.Repository, redisCache *cache.Cache) *Publisher {
	return &Publisher{
		repo:   repo,
		cache:  redisCache,
		logger: logging.WithComponent("events"),
	}
}

// Event is the wire format pushed on the per-user event channel
type Event struct {
	Type    string `json:"type"`
	UserID  string `json:"user_id"`
	ActorID string `json:"actor_id,omitempty"`
	PostID  string `json:"post_id,omitempty"`
	Amount  int64  `json:"amount"`
}

// HypeReceived notifies a user that a transfer credited their post
func (p *Publisher) HypeReceived(ctx context.Context, userID, actorID, postID string, creatorAmount int64) {
	notif := &models.Notification{
		Type:      models.NotifyTypeHypeReceived,
		UserID:    userID,
		ActorID:   sql.NullString{String: actorID, Valid: true},
		PostID:    sql.NullString{String: postID, Valid: true},
		Amount:    sql.NullInt64{Int64: creatorAmount, Valid: true},
		CreatedAt: time.Now().UTC(),
	}
	p.emit(ctx, notif, Event{
		Type:    models.NotifyTypeName(models.NotifyTypeHypeReceived),
		UserID:  userID,
		ActorID: actorID,
		PostID:  postID,
		Amount:  creatorAmount,
	})
}

// CommentPosted notifies a post owner about a new comment
func (p *Publisher) CommentPosted(ctx context.Context, ownerID, actorID, postID string) {
	// Commenting on your own post makes no notification.
	if ownerID == actorID {
		return
	}
	notif := &models.Notification{
		Type:      models.NotifyTypeComment,
		UserID:    ownerID,
		ActorID:   sql.NullString{String: actorID, Valid: true},
		PostID:    sql.NullString{String: postID, Valid: true},
		CreatedAt: time.Now().UTC(),
	}
	p.emit(ctx, notif, Event{
		Type:    models.NotifyTypeName(models.NotifyTypeComment),
		UserID:  ownerID,
		ActorID: actorID,
		PostID:  postID,
	})
}

// RewardClaimed notifies a user about their claimed daily reward
func (p *Publisher) RewardClaimed(ctx context.Context, userID string, amount, streakDays int64) {
	payload, _ := json.Marshal(map[string]int64{"streak_days": streakDays})
	notif := &models.Notification{
		Type:      models.NotifyTypeRewardClaimed,
		UserID:    userID,
		Amount:    sql.NullInt64{Int64: amount, Valid: true},
		Payload:   sql.NullString{String: string(payload), Valid: true},
		CreatedAt: time.Now().UTC(),
	}
	p.emit(ctx, notif, Event{
		Type:   models.NotifyTypeName(models.NotifyTypeRewardClaimed),
		UserID: userID,
		Amount: amount,
	})
}

func (p *Publisher) emit(ctx context.Context, notif *models.Notification, event Event) {
	notifs := db.NewNotificationRepository(p.repo)
	if err := notifs.Create(ctx, notif); err != nil {
		p.logger.Error("Failed to write notification",
			zap.String("type", models.NotifyTypeName(notif.Type)),
			zap.String("user_id", notif.UserID),
			zap.Error(err))
	}

	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := p.cache.Publish(ctx, "events:"+event.UserID, data); err != nil && err != cache.ErrCacheDisabled {
		p.logger.Warn("Failed to publish event",
			zap.String("type", event.Type),
			zap.String("user_id", event.UserID),
			zap.Error(err))
	}
}
