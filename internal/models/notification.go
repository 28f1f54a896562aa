package models

import (
	"database/sql"
	"time"
)

// Notification represents a notification delivered to a user
type Notification struct {
	ID        int64          `gorm:"primaryKey;autoIncrement;column:id"`
	Type      int16          `gorm:"type:smallint;not null;column:type_id"`
	UserID    string         `gorm:"type:uuid;not null;index;column:user_id"`
	ActorID   sql.NullString `gorm:"type:uuid;column:actor_id"`
	PostID    sql.NullString `gorm:"type:uuid;column:post_id"`
	Amount    sql.NullInt64  `gorm:"column:amount"`
	Payload   sql.NullString `gorm:"type:text;column:payload"`
	IsRead    bool           `gorm:"not null;default:false;column:is_read"`
	CreatedAt time.Time      `gorm:"not null;column:created_at"`

	// Relationships
	Recipient *Profile `gorm:"foreignKey:UserID;references:ID"`
	Actor     *Profile `gorm:"foreignKey:ActorID;references:ID"`
	Post      *Post    `gorm:"foreignKey:PostID;references:ID"`
}

// TableName specifies the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}

// Notification type constants
const (
	NotifyTypeHypeReceived  int16 = 1
	NotifyTypeComment       int16 = 2
	NotifyTypeRewardClaimed int16 = 3
)

// NotifyTypeName returns the wire name for a notification type
func NotifyTypeName(typeID int16) string {
	switch typeID {
	case NotifyTypeHypeReceived:
		return "hype_received"
	case NotifyTypeComment:
		return "comment"
	case NotifyTypeRewardClaimed:
		return "reward_claimed"
	default:
		return "unknown"
	}
}
