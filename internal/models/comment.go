package models

import (
	"time"
)

// Comment represents a comment on a post
type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	PostID    string    `gorm:"type:uuid;not null;index;column:post_id"`
	UserID    string    `gorm:"type:uuid;not null;column:user_id"`
	Body      string    `gorm:"type:varchar(2048);not null;column:body"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`

	// Relationships
	Post   *Post    `gorm:"foreignKey:PostID;references:ID"`
	Author *Profile `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
