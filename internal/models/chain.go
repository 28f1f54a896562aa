package models

import (
	"database/sql"
	"time"
)

// Chain is a collaborative collection of posts competing for HYPE as a
// group. TotalHype is denormalized from the member posts' hype counts.
type Chain struct {
	ID          string         `gorm:"type:uuid;primaryKey;column:id"`
	CreatorID   string         `gorm:"type:uuid;not null;index;column:creator_id"`
	Title       string         `gorm:"type:varchar(128);not null;column:title"`
	Description sql.NullString `gorm:"type:varchar(1024);column:description"`
	TotalHype   int64          `gorm:"not null;default:0;column:total_hype"`
	IsActive    bool           `gorm:"not null;default:true;column:is_active"`
	CreatedAt   time.Time      `gorm:"not null;column:created_at"`

	// Relationships
	Creator *Profile `gorm:"foreignKey:CreatorID;references:ID"`
	Posts   []Post   `gorm:"foreignKey:ChainID;references:ID"`
}

// TableName specifies the table name for Chain
func (Chain) TableName() string {
	return "chains"
}
