package db

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hypechain/hypechain/internal/models"
)

// Repository provides database access methods
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ProfileRepository provides profile-related database operations
type ProfileRepository struct {
	*Repository
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(repo *Repository) *ProfileRepository {
	return &ProfileRepository{Repository: repo}
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// GetByIDForUpdate retrieves a profile by ID under a row lock. Must be
// called inside a transaction.
func (r *ProfileRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// GetByUsername retrieves a profile by username
func (r *ProfileRepository) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Create creates a new profile
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// Update updates a profile
func (r *ProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// TopByHypeReceived retrieves the leaderboard: profiles ordered by
// total_hype_received descending
func (r *ProfileRepository) TopByHypeReceived(ctx context.Context, limit int) ([]*models.Profile, error) {
	var profiles []*models.Profile
	if err := r.db.WithContext(ctx).
		Order("total_hype_received DESC").
		Limit(limit).
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// PostRepository provides post-related database operations
type PostRepository struct {
	*Repository
}

// NewPostRepository creates a new post repository
func NewPostRepository(repo *Repository) *PostRepository {
	return &PostRepository{Repository: repo}
}

// GetByID retrieves a post by ID
func (r *PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Create creates a new post
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// IncrementHypeCount atomically adds amount to a post's hype count
func (r *PostRepository) IncrementHypeCount(ctx context.Context, id string, amount int64) error {
	return r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("hype_count", gorm.Expr("hype_count + ?", amount)).Error
}

// IncrementCommentCount atomically bumps a post's comment count
func (r *PostRepository) IncrementCommentCount(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).Error
}

// ListRecent retrieves the most recent posts, optionally before a
// given creation time
func (r *PostRepository) ListRecent(ctx context.Context, limit int, before *time.Time) ([]*models.Post, error) {
	query := r.db.WithContext(ctx).
		Preload("Owner").
		Order("created_at DESC").
		Limit(limit)
	if before != nil {
		query = query.Where("created_at < ?", *before)
	}
	var posts []*models.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListIDs retrieves all post IDs in batches for reconciliation
func (r *PostRepository) ListIDs(ctx context.Context, offset, limit int) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Order("created_at").
		Offset(offset).
		Limit(limit).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// SetHypeCount overwrites a post's hype count. Used only by the
// reconciler when the denormalized counter has drifted from the ledger.
func (r *PostRepository) SetHypeCount(ctx context.Context, id string, count int64) error {
	return r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("hype_count", count).Error
}

// TransactionRepository provides hype transaction ledger operations
type TransactionRepository struct {
	*Repository
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(repo *Repository) *TransactionRepository {
	return &TransactionRepository{Repository: repo}
}

// Create appends a ledger entry. Entries are immutable; there is no
// update or delete.
func (r *TransactionRepository) Create(ctx context.Context, tx *models.HypeTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

// ListByUser retrieves a user's transfer history, sent and received,
// newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.HypeTransaction, error) {
	var txs []*models.HypeTransaction
	if err := r.db.WithContext(ctx).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// SumAmountByPost computes the gross HYPE ever given to a post from
// the ledger
func (r *TransactionRepository) SumAmountByPost(ctx context.Context, postID string) (int64, error) {
	var sum int64
	if err := r.db.WithContext(ctx).
		Model(&models.HypeTransaction{}).
		Where("post_id = ?", postID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error; err != nil {
		return 0, err
	}
	return sum, nil
}

// RewardRepository provides daily reward database operations
type RewardRepository struct {
	*Repository
}

// NewRewardRepository creates a new reward repository
func NewRewardRepository(repo *Repository) *RewardRepository {
	return &RewardRepository{Repository: repo}
}

// Create inserts a claim row. A gorm.ErrDuplicatedKey result means the
// user already claimed on that date.
func (r *RewardRepository) Create(ctx context.Context, reward *models.DailyReward) error {
	return r.db.WithContext(ctx).Create(reward).Error
}

// GetByUserAndDate retrieves a claim for a specific calendar date
func (r *RewardRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*models.DailyReward, error) {
	var reward models.DailyReward
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND reward_date = ?", userID, date).
		First(&reward).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reward, nil
}

// CommentRepository provides comment-related database operations
type CommentRepository struct {
	*Repository
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(repo *Repository) *CommentRepository {
	return &CommentRepository{Repository: repo}
}

// Create creates a new comment
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// ListByPost retrieves a post's comments, oldest first
func (r *CommentRepository) ListByPost(ctx context.Context, postID string, limit int) ([]*models.Comment, error) {
	var comments []*models.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Limit(limit).
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// ChainRepository provides chain-related database operations
type ChainRepository struct {
	*Repository
}

// NewChainRepository creates a new chain repository
func NewChainRepository(repo *Repository) *ChainRepository {
	return &ChainRepository{Repository: repo}
}

// GetByID retrieves a chain by ID
func (r *ChainRepository) GetByID(ctx context.Context, id string) (*models.Chain, error) {
	var chain models.Chain
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&chain).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chain, nil
}

// Create creates a new chain
func (r *ChainRepository) Create(ctx context.Context, chain *models.Chain) error {
	return r.db.WithContext(ctx).Create(chain).Error
}

// ListActive retrieves active chains by total hype descending
func (r *ChainRepository) ListActive(ctx context.Context, limit int) ([]*models.Chain, error) {
	var chains []*models.Chain
	if err := r.db.WithContext(ctx).
		Preload("Creator").
		Where("is_active = ?", true).
		Order("total_hype DESC").
		Limit(limit).
		Find(&chains).Error; err != nil {
		return nil, err
	}
	return chains, nil
}

// RecalculateTotalHype overwrites a chain's total from its member
// posts' hype counts
func (r *ChainRepository) RecalculateTotalHype(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&models.Chain{}).
		Where("id = ?", id).
		UpdateColumn("total_hype", gorm.Expr(
			"(SELECT COALESCE(SUM(hype_count), 0) FROM posts WHERE chain_id = ?)", id)).Error
}

// ListIDs retrieves all chain IDs for reconciliation
func (r *ChainRepository) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&models.Chain{}).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// NotificationRepository provides notification database operations
type NotificationRepository struct {
	*Repository
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(repo *Repository) *NotificationRepository {
	return &NotificationRepository{Repository: repo}
}

// Create creates a new notification
func (r *NotificationRepository) Create(ctx context.Context, notif *models.Notification) error {
	return r.db.WithContext(ctx).Create(notif).Error
}

// ListByUser retrieves a user's notifications, newest first
func (r *NotificationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.Notification, error) {
	var notifs []*models.Notification
	if err := r.db.WithContext(ctx).
		Preload("Actor").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifs).Error; err != nil {
		return nil, err
	}
	return notifs, nil
}

// MarkAllRead marks all of a user's notifications as read
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		UpdateColumn("is_read", true).Error
}

// UnreadCount returns the number of unread notifications for a user
func (r *NotificationRepository) UnreadCount(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
