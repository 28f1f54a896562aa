package models

import (
	"time"
)

// DailyReward records one successful daily claim. The unique index on
// (user_id, reward_date) is what arbitrates concurrent claims: the
// first insert wins, every later one fails.
type DailyReward struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;column:id"`
	UserID     string    `gorm:"type:uuid;not null;uniqueIndex:daily_rewards_user_date_ux;column:user_id"`
	RewardDate time.Time `gorm:"type:date;not null;uniqueIndex:daily_rewards_user_date_ux;column:reward_date"`
	Amount     int64     `gorm:"not null;column:amount"`
	StreakDays int64     `gorm:"not null;column:streak_days"`
	CreatedAt  time.Time `gorm:"not null;column:created_at"`

	// Relationships
	Profile *Profile `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for DailyReward
func (DailyReward) TableName() string {
	return "daily_rewards"
}
