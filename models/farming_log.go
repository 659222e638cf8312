package models

import "time"

// FarmingLog is a member activity-log entry shown on the homepage feed.
type FarmingLog struct {
	FarmingLogID uint      `gorm:"primaryKey;column:farming_log_id" json:"farming_log_id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	User         User      `gorm:"foreignKey:UserID" json:"-"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
