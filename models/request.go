package models

import "time"

type RequestStatus string

const (
	RequestStatusUnconfirmed RequestStatus = "UNCONFIRMED"
	RequestStatusSubmitted   RequestStatus = "SUBMITTED"
	RequestStatusPending     RequestStatus = "PENDING"
	RequestStatusInProgress  RequestStatus = "IN-PROGRESS"
	RequestStatusDocReady    RequestStatus = "DOC-READY"
	RequestStatusReleased    RequestStatus = "RELEASED"
	RequestStatusRejected    RequestStatus = "REJECTED"
)

// ValidStatuses is the closed set accepted by the status engine. Anything
// outside it is a validation error regardless of caller.
var ValidStatuses = map[RequestStatus]bool{
	RequestStatusUnconfirmed: true,
	RequestStatusSubmitted:   true,
	RequestStatusPending:     true,
	RequestStatusInProgress:  true,
	RequestStatusDocReady:    true,
	RequestStatusReleased:    true,
	RequestStatusRejected:    true,
}

type Request struct {
	RequestID        string        `gorm:"primaryKey;size:20;column:request_id" json:"request_id"`
	RequesterID      string        `gorm:"size:20;not null;index;column:requester_id" json:"requester_id"`
	FullName         string        `gorm:"size:150;not null" json:"full_name"`
	ContactNumber    string        `gorm:"size:20" json:"contact_number"`
	Email            string        `gorm:"size:100" json:"email"`
	PreferredContact string        `gorm:"size:20;default:'SMS'" json:"preferred_contact"`
	Status           RequestStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	PaymentStatus    bool          `gorm:"default:false" json:"payment_status"`
	TotalCost        float64       `gorm:"type:numeric(10,2);default:0" json:"total_cost"`
	Remarks          string        `gorm:"type:text" json:"remarks"`
	RequestedAt      time.Time     `gorm:"column:requested_at;autoCreateTime" json:"requested_at"`
	CompletedAt      *time.Time    `gorm:"column:completed_at" json:"completed_at"`
}

type RequestDocument struct {
	RequestID string `gorm:"primaryKey;size:20;column:request_id" json:"request_id"`
	DocID     string `gorm:"primaryKey;size:10;column:doc_id" json:"doc_id"`
	Quantity  int    `gorm:"default:1" json:"quantity"`
}
