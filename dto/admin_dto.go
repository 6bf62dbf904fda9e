package dto

type AddAdminDTO struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"`
}

type UpdateAdminRoleDTO struct {
	Role string `json:"role" binding:"required"`
}

type MaxRequestsDTO struct {
	MaxRequests int `json:"max_requests" binding:"min=0"`
}
