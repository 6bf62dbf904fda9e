package services

import (
	"fmt"
	"log"
	"time"

	"github.com/odroffice/odr-go/models"
	"github.com/odroffice/odr-go/pkg/apperrors"
	"github.com/odroffice/odr-go/repositories"
)

type StatusService struct {
	Repos  *repositories.Repos
	Notify Notifier
}

func NewStatusService(repos *repositories.Repos, notify Notifier) *StatusService {
	return &StatusService{Repos: repos, Notify: notify}
}

// TransitionStatus moves a request to the given target status. The target
// must belong to the closed status set; REJECTED is reachable only through
// RejectWithChanges so a rejection always carries its change items, and a
// request already in REJECTED leaves that state only via remediation.
func (s *StatusService) TransitionStatus(actor Actor, requestID string, target models.RequestStatus) (models.Request, error) {
	if !Can(actor, ActionTransitionStatus) {
		return models.Request{}, apperrors.Authorization("actor %s may not change request status", actor.ID)
	}
	if !models.ValidStatuses[target] {
		return models.Request{}, apperrors.Validation("invalid status %q", target)
	}
	if target == models.RequestStatusRejected {
		return models.Request{}, apperrors.Validation("a rejection requires change items; use the reject operation")
	}

	req, err := s.Repos.Request.GetByID(requestID)
	if err != nil {
		return models.Request{}, err
	}

	// Idempotent no-op: same target, no audit entry, no re-stamp.
	if req.Status == target {
		return req, nil
	}

	if req.Status == models.RequestStatusRejected {
		return models.Request{}, apperrors.Validation("request %s is rejected; it leaves REJECTED only when remediation completes", requestID)
	}

	old := req.Status
	req.Status = target
	if target == models.RequestStatusReleased && req.CompletedAt == nil {
		now := time.Now()
		req.CompletedAt = &now
	}

	audit := &models.AuditLog{
		ActorID:     actor.ID,
		Action:      models.AuditActionStatusChange,
		RequestID:   req.RequestID,
		OldStatus:   string(old),
		NewStatus:   string(target),
		Description: fmt.Sprintf("Changed status of request %s from %s to %s", req.RequestID, old, target),
	}
	if err := s.Repos.Request.UpdateStatusWithAudit(&req, audit); err != nil {
		return models.Request{}, err
	}

	// Notification failures never roll back the transition.
	if err := s.Notify.SendStatusUpdate(req.ContactNumber, req.FullName, req.RequestID, string(target)); err != nil {
		log.Printf("status update notification failed for %s: %v", req.RequestID, err)
	}

	return req, nil
}

func (s *StatusService) GetRequest(requestID string) (models.Request, error) {
	return s.Repos.Request.GetByID(requestID)
}

// RequestDetail bundles a request with its ordered document lines, uploaded
// requirement files, and outstanding change items.
type RequestDetail struct {
	Request   models.Request                     `json:"request"`
	Documents []repositories.RequestDocumentLine `json:"documents"`
	Files     []models.RequestRequirementLink    `json:"files"`
	Changes   []models.RequestChange             `json:"changes"`
	Assignee  *models.RequestAssignment          `json:"assignee,omitempty"`
	LastAudit *models.AuditLog                   `json:"last_audit,omitempty"`
}

func (s *StatusService) RequestDetail(requestID string) (RequestDetail, error) {
	req, err := s.Repos.Request.GetByID(requestID)
	if err != nil {
		return RequestDetail{}, err
	}
	docs, err := s.Repos.Catalog.RequestDocumentLines(requestID)
	if err != nil {
		return RequestDetail{}, err
	}
	files, err := s.Repos.Catalog.RequestFileLinks(requestID)
	if err != nil {
		return RequestDetail{}, err
	}
	changes, err := s.Repos.Change.ListByRequest(requestID)
	if err != nil {
		return RequestDetail{}, err
	}
	assignee, err := s.Repos.Assignment.GetByRequest(requestID)
	if err != nil {
		return RequestDetail{}, err
	}
	detail := RequestDetail{Request: req, Documents: docs, Files: files, Changes: changes, Assignee: assignee}
	logs, err := s.Repos.Audit.GetAuditLogs(repositories.AuditQueryParams{RequestID: &requestID, Limit: 1})
	if err != nil {
		return RequestDetail{}, err
	}
	if len(logs) > 0 {
		detail.LastAudit = &logs[0]
	}
	return detail, nil
}

func (s *StatusService) ListRequests(page, limit int, search string, adminID *string) (repositories.RequestPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.Repos.Request.ListPaged(page, limit, search, adminID)
}

// PurgeRequest is the explicit administrative delete; it cascades the
// assignment and remediation records.
func (s *StatusService) PurgeRequest(actor Actor, requestID string) (bool, error) {
	if !Can(actor, ActionPurge) {
		return false, apperrors.Authorization("actor %s may not purge requests", actor.ID)
	}
	audit := &models.AuditLog{
		ActorID:     actor.ID,
		Action:      models.AuditActionPurge,
		RequestID:   requestID,
		Description: fmt.Sprintf("Purged request %s and associated records", requestID),
	}
	return s.Repos.Request.Purge(requestID, audit)
}
