package models

import (
	"time"
)

// HypeTransaction is an append-only ledger entry for one HYPE transfer.
// Rows are never updated or deleted; amount always equals
// burned + platform + creator.
type HypeTransaction struct {
	ID             int64     `gorm:"primaryKey;autoIncrement;column:id"`
	TransactionID  string    `gorm:"type:varchar(128);not null;uniqueIndex:hype_transactions_txid_ux;column:transaction_id"`
	FromUserID     string    `gorm:"type:uuid;not null;index;column:from_user_id"`
	ToUserID       string    `gorm:"type:uuid;not null;index;column:to_user_id"`
	PostID         string    `gorm:"type:uuid;not null;index;column:post_id"`
	Amount         int64     `gorm:"not null;column:amount"`
	BurnedAmount   int64     `gorm:"not null;column:burned_amount"`
	PlatformAmount int64     `gorm:"not null;column:platform_amount"`
	CreatorAmount  int64     `gorm:"not null;column:creator_amount"`
	CreatedAt      time.Time `gorm:"not null;column:created_at"`

	// Relationships
	FromProfile *Profile `gorm:"foreignKey:FromUserID;references:ID"`
	ToProfile   *Profile `gorm:"foreignKey:ToUserID;references:ID"`
	Post        *Post    `gorm:"foreignKey:PostID;references:ID"`
}

// TableName specifies the table name for HypeTransaction
func (HypeTransaction) TableName() string {
	return "hype_transactions"
}
