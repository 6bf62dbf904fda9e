package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/odroffice/odr-go/pkg/apperrors"
	"github.com/odroffice/odr-go/response"
	"github.com/odroffice/odr-go/services"
	"github.com/odroffice/odr-go/storage"
)

type Handlers struct {
	Request     *RequestHandler
	Assignment  *AssignmentHandler
	Remediation *RemediationHandler
	Intake      *IntakeHandler
	Policy      *PolicyHandler
	Admin       *AdminHandler
	Audit       *AuditHandler
}

func New(svc *services.Services, files storage.FileStore) *Handlers {
	return &Handlers{
		Request:     NewRequestHandler(svc.Status, svc.Scheduler),
		Assignment:  NewAssignmentHandler(svc.Scheduler),
		Remediation: NewRemediationHandler(svc.Remediation, files),
		Intake:      NewIntakeHandler(svc.Intake, svc.Policy),
		Policy:      NewPolicyHandler(svc.Policy),
		Admin:       NewAdminHandler(svc.Admin),
		Audit:       NewAuditHandler(svc.Audit),
	}
}

// statusOf maps service errors to HTTP status codes.
func statusOf(err error) int {
	kind, ok := apperrors.KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindAuthorization:
		return http.StatusForbidden
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusOf(err), response.ErrorResponse{Error: err.Error()})
}
