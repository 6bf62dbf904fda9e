package models

import "time"

// Document and Requirement mirror the catalog this core consumes. The core
// only reads them: documents for intake pricing, requirements to validate
// rejection deficiencies.
type Document struct {
	DocID       string  `gorm:"primaryKey;size:10;column:doc_id" json:"doc_id"`
	DocName     string  `gorm:"size:255;not null;column:doc_name" json:"doc_name"`
	Description string  `gorm:"size:255" json:"description"`
	Cost        float64 `gorm:"type:numeric(10,2);default:0" json:"cost"`
	Hidden      bool    `gorm:"default:false" json:"hidden"`
}

type Requirement struct {
	ReqID           string `gorm:"primaryKey;size:10;column:req_id" json:"req_id"`
	RequirementName string `gorm:"size:255;not null;column:requirement_name" json:"requirement_name"`
}

type DocumentRequirement struct {
	DocID string `gorm:"primaryKey;size:10;column:doc_id" json:"doc_id"`
	ReqID string `gorm:"primaryKey;size:10;column:req_id" json:"req_id"`
}

// RequestRequirementLink stores the file a requester supplied for a
// requirement at intake time.
type RequestRequirementLink struct {
	RequestID     string    `gorm:"primaryKey;size:20;column:request_id" json:"request_id"`
	RequirementID string    `gorm:"primaryKey;size:10;column:requirement_id" json:"requirement_id"`
	FileLink      string    `gorm:"size:255;not null;column:file_link" json:"file_link"`
	UploadedAt    time.Time `gorm:"autoCreateTime;column:uploaded_at" json:"uploaded_at"`
}
