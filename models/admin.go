package models

type AdminRole string

const (
	AdminRoleAdmin AdminRole = "admin"
	AdminRoleSuper AdminRole = "superadmin"
)

type Admin struct {
	Email          string  `gorm:"primaryKey;size:100" json:"email"`
	Role           string  `gorm:"size:20;not null;default:'admin'" json:"role"`
	ProfilePicture *string `gorm:"size:255" json:"profile_picture"`
}

// AdminSetting holds per-admin key/value overrides, e.g. max_requests.
type AdminSetting struct {
	AdminID string `gorm:"primaryKey;size:100;column:admin_id" json:"admin_id"`
	Key     string `gorm:"primaryKey;size:50" json:"key"`
	Value   string `gorm:"size:255;not null" json:"value"`
}

// AppSetting holds global key/value settings, e.g. the default max_requests.
type AppSetting struct {
	Key   string `gorm:"primaryKey;size:50" json:"key"`
	Value string `gorm:"size:255;not null" json:"value"`
}

const SettingMaxRequests = "max_requests"
