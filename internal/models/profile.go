package models

import (
	"database/sql"
	"time"
)

// Profile represents a HypeChain user profile
type Profile struct {
	ID        string    `gorm:"type:uuid;primaryKey;column:id"`
	Username  string    `gorm:"type:varchar(32);not null;uniqueIndex:profiles_username_ux;column:username"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`

	// Profile fields
	AvatarURL sql.NullString `gorm:"type:varchar(1024);column:avatar_url"`
	Bio       sql.NullString `gorm:"type:varchar(160);column:bio"`
	City      sql.NullString `gorm:"type:varchar(64);column:city"`
	State     sql.NullString `gorm:"type:varchar(64);column:state"`
	Country   sql.NullString `gorm:"type:varchar(64);column:country"`

	// HYPE economy state. Balance never goes below zero; the totals
	// only ever grow.
	HypeBalance       int64 `gorm:"not null;default:0;check:hype_balance >= 0;column:hype_balance"`
	TotalHypeGiven    int64 `gorm:"not null;default:0;column:total_hype_given"`
	TotalHypeReceived int64 `gorm:"not null;default:0;column:total_hype_received"`

	// Daily reward streak state
	StreakDays      int64        `gorm:"not null;default:0;column:streak_days"`
	LastDailyReward sql.NullTime `gorm:"type:date;column:last_daily_reward"`
}

// TableName specifies the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
