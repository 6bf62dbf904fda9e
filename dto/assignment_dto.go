package dto

type AutoAssignDTO struct {
	Count int `json:"count"`
}

type ManualAssignDTO struct {
	RequestIDs []string `json:"request_ids" binding:"required"`
	AdminID    string   `json:"admin_id" binding:"required"`
}

type UnassignDTO struct {
	RequestID string `json:"request_id" binding:"required"`
	AdminID   string `json:"admin_id" binding:"required"`
}
