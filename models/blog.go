package models

import "time"

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "PENDING"
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	ApprovalStatusRejected ApprovalStatus = "REJECTED"
)

// Blog is a member-submitted blog link waiting for (or past) moderation.
type Blog struct {
	BlogID         uint           `gorm:"primaryKey;column:blog_id" json:"blog_id"`
	UserID         uint           `gorm:"not null;index" json:"user_id"`
	User           User           `gorm:"foreignKey:UserID" json:"-"`
	Link           string         `gorm:"size:512;not null" json:"link"`
	ApprovalStatus ApprovalStatus `gorm:"size:10;default:'PENDING';not null" json:"approval_status"`
	ApprovedByID   *uint          `gorm:"column:approved_by" json:"approved_by"`
	ApprovedBy     *User          `gorm:"foreignKey:ApprovedByID" json:"-"`
	ApprovedAt     *time.Time     `json:"approved_at"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// Approve marks the blog approved by the given admin.
func (b *Blog) Approve(admin *User, now time.Time) {
	b.ApprovalStatus = ApprovalStatusApproved
	b.ApprovedByID = &admin.UserID
	b.ApprovedBy = admin
	b.ApprovedAt = &now
}

// Reject marks the blog rejected by the given admin.
func (b *Blog) Reject(admin *User, now time.Time) {
	b.ApprovalStatus = ApprovalStatusRejected
	b.ApprovedByID = &admin.UserID
	b.ApprovedBy = admin
	b.ApprovedAt = &now
}
