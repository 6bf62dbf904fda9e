package dto

type UpdateStatusDTO struct {
	Status string `json:"status" binding:"required"`
}

type CreateRequestDocumentDTO struct {
	DocID    string `json:"doc_id" binding:"required"`
	Quantity int    `json:"quantity"`
}

type CreateRequestFileDTO struct {
	RequirementID string `json:"requirement_id" binding:"required"`
	FileLink      string `json:"file_link" binding:"required"`
}

type CreateRequestDTO struct {
	RequesterID      string                     `json:"requester_id" binding:"required"`
	FullName         string                     `json:"full_name" binding:"required"`
	ContactNumber    string                     `json:"contact_number"`
	Email            string                     `json:"email"`
	PreferredContact string                     `json:"preferred_contact"`
	Documents        []CreateRequestDocumentDTO `json:"documents" binding:"required"`
	Files            []CreateRequestFileDTO     `json:"files"`
	AdminFee         float64                    `json:"admin_fee"`
	PaymentStatus    bool                       `json:"payment_status"`
	Remarks          string                     `json:"remarks"`
}

type TrackRequestDTO struct {
	TrackingNumber string `json:"tracking_number" binding:"required"`
	RequesterID    string `json:"requester_id" binding:"required"`
}

type PaymentCompleteDTO struct {
	TrackingNumber string `json:"tracking_number" binding:"required"`
}
