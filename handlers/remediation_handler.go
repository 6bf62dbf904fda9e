package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/odroffice/odr-go/dto"
	"github.com/odroffice/odr-go/middleware"
	"github.com/odroffice/odr-go/response"
	"github.com/odroffice/odr-go/services"
	"github.com/odroffice/odr-go/storage"
)

type RemediationHandler struct {
	Remediation *services.RemediationService
	Files       storage.FileStore
}

func NewRemediationHandler(remediation *services.RemediationService, files storage.FileStore) *RemediationHandler {
	return &RemediationHandler{Remediation: remediation, Files: files}
}

// POST /admin/requests/:id/reject
func (h *RemediationHandler) RejectRequest(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "missing credentials"})
		return
	}

	var input dto.RejectRequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	deficiencies := make([]services.Deficiency, 0, len(input.Changes))
	for _, ch := range input.Changes {
		deficiencies = append(deficiencies, services.Deficiency{
			RequirementID: ch.RequirementID,
			Remarks:       ch.Remarks,
			FileLink:      ch.FileLink,
		})
	}

	changes, err := h.Remediation.RejectWithChanges(actor, c.Param("id"), deficiencies)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "request rejected",
		"changes": changes,
	})
}

// GET /admin/requests/:id/changes
func (h *RemediationHandler) ListChanges(c *gin.Context) {
	changes, err := h.Remediation.ListChanges(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, changes)
}

// POST /tracking/:id/changes/:change_id (multipart form, field "file")
func (h *RemediationHandler) SubmitRemediation(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "missing credentials"})
		return
	}

	requestID := c.Param("id")
	changeID := c.Param("change_id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	fileRef, err := h.Files.UploadChangeFile(
		c.Request.Context(),
		requestID,
		changeID,
		filepath.Base(fileHeader.Filename),
		file,
		fileHeader.Size,
		contentType,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "file upload failed: " + err.Error()})
		return
	}

	reinstated, err := h.Remediation.SubmitRemediation(actor, requestID, changeID, fileRef)
	if err != nil {
		abortWithError(c, err)
		return
	}

	msg := "change uploaded"
	if reinstated {
		msg = "change uploaded; request reinstated for processing"
	}
	c.JSON(http.StatusOK, response.RemediationResponse{Message: msg, Reinstated: reinstated, FileLink: fileRef})
}
