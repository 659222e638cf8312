package models

import "time"

type UserRole string

const (
	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleMember UserRole = "MEMBER"
)

// User is a registered member of the organization (not an applicant).
type User struct {
	UserID          uint      `gorm:"primaryKey;column:user_id" json:"user_id"`
	StudentNumber   string    `gorm:"size:20;not null;unique" json:"student_number"`
	Password        string    `gorm:"size:255;not null" json:"-"`
	Name            string    `gorm:"size:50;not null" json:"name"`
	Major           *string   `gorm:"size:100" json:"major"`
	PhoneNumber     *string   `gorm:"size:20" json:"phone_number"`
	Email           *string   `gorm:"size:100" json:"email"`
	Track           *Track    `gorm:"size:20" json:"track"`
	Role            UserRole  `gorm:"size:10;default:'MEMBER';not null" json:"role"`
	ProfileImageURL *string   `gorm:"size:512" json:"profile_image_url"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
