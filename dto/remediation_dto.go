package dto

type RejectChangeDTO struct {
	RequirementID string  `json:"requirement_id" binding:"required"`
	Remarks       string  `json:"remarks"`
	FileLink      *string `json:"file_link"`
}

type RejectRequestDTO struct {
	Changes []RejectChangeDTO `json:"changes" binding:"required"`
}
