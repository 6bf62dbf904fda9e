package models

import "time"

type ChangeStatus string

const (
	ChangeStatusPending  ChangeStatus = "pending"
	ChangeStatusUploaded ChangeStatus = "uploaded"
)

// RequestChange is one corrective item opened against a rejected request.
// The full set for a request is created atomically at rejection time and a
// request with any pending item must be REJECTED.
type RequestChange struct {
	ChangeID      string       `gorm:"primaryKey;size:36;column:change_id" json:"change_id"`
	RequestID     string       `gorm:"size:20;not null;index;column:request_id" json:"request_id"`
	RequirementID string       `gorm:"size:10;not null;column:requirement_id" json:"requirement_id"`
	Remarks       string       `gorm:"type:text" json:"remarks"`
	FileLink      *string      `gorm:"size:255;column:file_link" json:"file_link"`
	Status        ChangeStatus `gorm:"type:varchar(10);not null;default:'pending'" json:"status"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UploadedAt    *time.Time   `gorm:"column:uploaded_at" json:"uploaded_at"`
}
