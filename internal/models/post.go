package models

import (
	"database/sql"
	"time"
)

// Post represents a published image post
type Post struct {
	ID        string         `gorm:"type:uuid;primaryKey;column:id"`
	UserID    string         `gorm:"type:uuid;not null;index;column:user_id"`
	ImageURL  string         `gorm:"type:varchar(1024);not null;column:image_url"`
	Caption   sql.NullString `gorm:"type:varchar(2048);column:caption"`
	ChainID   sql.NullString `gorm:"type:uuid;index;column:chain_id"`
	CreatedAt time.Time      `gorm:"not null;column:created_at"`

	// Denormalized aggregates. HypeCount is the gross HYPE ever given
	// to the post, never decremented.
	HypeCount    int64 `gorm:"not null;default:0;column:hype_count"`
	CommentCount int64 `gorm:"not null;default:0;column:comment_count"`

	// Relationships
	Owner *Profile `gorm:"foreignKey:UserID;references:ID"`
	Chain *Chain   `gorm:"foreignKey:ChainID;references:ID"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "posts"
}
