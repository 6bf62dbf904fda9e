package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CreatedRequestResponse struct {
	Message        string  `json:"message"`
	TrackingNumber string  `json:"tracking_number"`
	TotalCost      float64 `json:"total_cost"`
	Status         string  `json:"status"`
}

type AssignCountResponse struct {
	Message  string `json:"message"`
	Assigned int    `json:"assigned"`
}

type IntakeStatusResponse struct {
	Allowed      bool   `json:"allowed"`
	Announcement string `json:"announcement,omitempty"`
}

type RemediationResponse struct {
	Message    string `json:"message"`
	Reinstated bool   `json:"reinstated"`
	FileLink   string `json:"file_link,omitempty"`
}
