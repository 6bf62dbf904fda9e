package models

import "time"

// RequestAssignment is the ownership relation between one request and one
// admin. The unique index on request_id is the concurrency backstop: two
// racing assigners cannot both win the same request.
type RequestAssignment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RequestID  string    `gorm:"size:20;not null;uniqueIndex;column:request_id" json:"request_id"`
	AdminID    string    `gorm:"size:100;not null;index;column:admin_id" json:"admin_id"`
	AssignedBy string    `gorm:"size:100;not null;column:assigned_by" json:"assigned_by"`
	AssignedAt time.Time `gorm:"column:assigned_at;autoCreateTime" json:"assigned_at"`
}
