package models

import "time"

type ApplyStatus string

const (
	ApplyStatusDraft ApplyStatus = "DRAFT"
	ApplyStatusSaved ApplyStatus = "SAVED"
)

// Apply is one candidate's application form. StudentNumber is deliberately
// not unique: several candidates may enter the same value and are told
// apart only by their password hash.
type Apply struct {
	ApplyID       uint        `gorm:"primaryKey;column:apply_id" json:"apply_id"`
	StudentNumber string      `gorm:"size:20;not null;index" json:"student_number"`
	Password      string      `gorm:"size:255;not null" json:"-"`
	Name          *string     `gorm:"size:50" json:"name"`
	Major         *string     `gorm:"size:100" json:"major"`
	PhoneNumber   *string     `gorm:"size:20" json:"phone_number"`
	Email         *string     `gorm:"size:100" json:"email"`
	Track         *Track      `gorm:"size:20" json:"track"`
	Status        ApplyStatus `gorm:"size:10;default:'DRAFT';not null" json:"status"`
	Answers       []Answer    `gorm:"foreignKey:ApplyID" json:"answers,omitempty"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Apply) TableName() string {
	return "apply"
}

// SubmittedApply is the marker row whose presence means "this student
// number has finalized an application". It is keyed by student number, not
// apply id, so the unique constraint enforces one submission per student
// even though apply rows may share a student number.
type SubmittedApply struct {
	StudentNumber string `gorm:"primaryKey;size:20;column:student_number"`
}

func (SubmittedApply) TableName() string {
	return "apply_status"
}
