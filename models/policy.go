package models

import (
	"time"

	"gorm.io/datatypes"
)

// IntakeRestriction is a singleton row (id = 1) holding the time-of-day
// window and the weekday allow-list. Times are stored as HH:MM:SS strings;
// unparsable values fall back to the configured defaults at evaluation time.
type IntakeRestriction struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	StartTime     string         `gorm:"size:8;column:start_time" json:"start_time"`
	EndTime       string         `gorm:"size:8;column:end_time" json:"end_time"`
	AvailableDays datatypes.JSON `gorm:"column:available_days" json:"available_days"`
	Announcement  string         `gorm:"type:text" json:"announcement"`
}

func (IntakeRestriction) TableName() string { return "open_request_restriction" }

// AvailableDate is an explicit per-date override. It beats the weekday rule
// in both directions.
type AvailableDate struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        time.Time `gorm:"type:date;uniqueIndex;not null" json:"date"`
	IsAvailable bool      `gorm:"not null;column:is_available" json:"is_available"`
	Reason      string    `gorm:"size:255" json:"reason"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
