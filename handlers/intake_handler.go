package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/odroffice/odr-go/dto"
	"github.com/odroffice/odr-go/response"
	"github.com/odroffice/odr-go/services"
)

type IntakeHandler struct {
	Intake *services.IntakeService
	Policy *services.PolicyService
}

func NewIntakeHandler(intake *services.IntakeService, policy *services.PolicyService) *IntakeHandler {
	return &IntakeHandler{Intake: intake, Policy: policy}
}

// GET /intake/status
func (h *IntakeHandler) IntakeStatus(c *gin.Context) {
	allowed := h.Policy.IsIntakeAllowed(time.Now())

	var announcement string
	if restriction, err := h.Policy.GetRestriction(); err == nil && restriction != nil {
		announcement = restriction.Announcement
	}
	c.JSON(http.StatusOK, response.IntakeStatusResponse{Allowed: allowed, Announcement: announcement})
}

// GET /documents
func (h *IntakeHandler) ListDocuments(c *gin.Context) {
	docs, err := h.Intake.AvailableDocuments()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// GET /documents/requirements?doc_ids=a,b,c
func (h *IntakeHandler) DocumentRequirements(c *gin.Context) {
	ids := strings.Split(c.Query("doc_ids"), ",")
	docIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			docIDs = append(docIDs, id)
		}
	}
	if len(docIDs) == 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "doc_ids is required"})
		return
	}

	reqs, err := h.Intake.RequirementsFor(docIDs)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// POST /requests (behind the intake-window middleware)
func (h *IntakeHandler) CreateRequest(c *gin.Context) {
	var input dto.CreateRequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	docs := make([]services.IntakeDocument, 0, len(input.Documents))
	for _, d := range input.Documents {
		docs = append(docs, services.IntakeDocument{DocID: d.DocID, Quantity: d.Quantity})
	}
	files := make([]services.IntakeFile, 0, len(input.Files))
	for _, f := range input.Files {
		files = append(files, services.IntakeFile{RequirementID: f.RequirementID, FileLink: f.FileLink})
	}

	req, err := h.Intake.CreateRequest(services.IntakeInput{
		RequesterID:      input.RequesterID,
		FullName:         input.FullName,
		ContactNumber:    input.ContactNumber,
		Email:            input.Email,
		PreferredContact: input.PreferredContact,
		Documents:        docs,
		Files:            files,
		AdminFee:         input.AdminFee,
		PaymentStatus:    input.PaymentStatus,
		Remarks:          input.Remarks,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.CreatedRequestResponse{
		Message:        "request received",
		TrackingNumber: req.RequestID,
		TotalCost:      req.TotalCost,
		Status:         string(req.Status),
	})
}

// POST /tracking
func (h *IntakeHandler) Track(c *gin.Context) {
	var input dto.TrackRequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	req, err := h.Intake.Track(input.TrackingNumber, input.RequesterID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// POST /tracking/payment
func (h *IntakeHandler) PaymentComplete(c *gin.Context) {
	var input dto.PaymentCompleteDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	requesterID := c.Query("requester_id")
	if requesterID == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "requester_id is required"})
		return
	}

	updated, err := h.Intake.MarkPaymentComplete(input.TrackingNumber, requesterID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "request not found"})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "payment recorded"})
}

// GET /requests/active?requester_id=
func (h *IntakeHandler) ActiveRequests(c *gin.Context) {
	requesterID := c.Query("requester_id")
	if requesterID == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "requester_id is required"})
		return
	}

	requests, err := h.Intake.ActiveRequests(requesterID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}
