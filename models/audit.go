package models

import "time"

// AuditLog entries are append-only. Status changes and assignment mutations
// are written in the same transaction as the log row.
type AuditLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ActorID     string    `gorm:"size:100;not null;index;column:actor_id" json:"actor_id"`
	Action      string    `gorm:"size:50;not null;index" json:"action"`
	RequestID   string    `gorm:"size:20;index;column:request_id" json:"request_id"`
	OldStatus   string    `gorm:"size:20;column:old_status" json:"old_status"`
	NewStatus   string    `gorm:"size:20;column:new_status" json:"new_status"`
	Description string    `gorm:"type:text" json:"description"`
	IPAddress   string    `gorm:"size:45;column:ip_address" json:"ip_address"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

const (
	AuditActionStatusChange = "Status Change"
	AuditActionAssign       = "Assign"
	AuditActionUnassign     = "Unassign"
	AuditActionReject       = "Reject"
	AuditActionReinstate    = "Reinstate"
	AuditActionPurge        = "Purge"
)
