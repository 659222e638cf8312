package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records an admin mutation with before/after snapshots.
type AuditLog struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"index" json:"user_id"`
	Action       string         `gorm:"size:50;not null" json:"action"`
	ResourceType string         `gorm:"size:50;not null" json:"resource_type"`
	ResourceID   string         `gorm:"size:100" json:"resource_id"`
	OldData      datatypes.JSON `json:"old_data,omitempty"`
	NewData      datatypes.JSON `json:"new_data,omitempty"`
	IPAddress    string         `gorm:"size:45" json:"ip_address"`
	UserAgent    string         `gorm:"size:255" json:"user_agent"`
	Description  string         `gorm:"size:255" json:"description"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
