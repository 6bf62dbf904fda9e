package dto

type UpdateRestrictionDTO struct {
	StartTime     string   `json:"start_time" binding:"required"`
	EndTime       string   `json:"end_time" binding:"required"`
	AvailableDays []string `json:"available_days" binding:"required"`
	Announcement  string   `json:"announcement"`
}

type DateOverrideDTO struct {
	Date        string `json:"date" binding:"required"`
	IsAvailable bool   `json:"is_available"`
	Reason      string `json:"reason"`
}

type DateOverrideBatchDTO struct {
	Overrides []DateOverrideDTO `json:"overrides" binding:"required"`
}
