package services

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/odroffice/odr-go/models"
	"github.com/odroffice/odr-go/pkg/apperrors"
	"github.com/odroffice/odr-go/repositories"
)

type Deficiency struct {
	RequirementID string
	Remarks       string
	FileLink      *string
}

type RemediationService struct {
	Repos  *repositories.Repos
	Notify Notifier
}

func NewRemediationService(repos *repositories.Repos, notify Notifier) *RemediationService {
	return &RemediationService{Repos: repos, Notify: notify}
}

// RejectWithChanges drives the request into REJECTED and opens one change
// item per deficiency, all in one transaction. Deficiencies must reference
// requirements that exist in the catalog.
func (s *RemediationService) RejectWithChanges(actor Actor, requestID string, deficiencies []Deficiency) ([]models.RequestChange, error) {
	if !Can(actor, ActionReject) {
		return nil, apperrors.Authorization("actor %s may not reject requests", actor.ID)
	}
	if len(deficiencies) == 0 {
		return nil, apperrors.Validation("a rejection requires at least one deficiency")
	}

	req, err := s.Repos.Request.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if req.Status == models.RequestStatusRejected {
		return nil, apperrors.Conflict("request %s is already rejected", requestID)
	}
	if req.Status == models.RequestStatusReleased {
		return nil, apperrors.Validation("request %s is released and cannot be rejected", requestID)
	}

	ids := make([]string, 0, len(deficiencies))
	for _, d := range deficiencies {
		if d.RequirementID == "" {
			return nil, apperrors.Validation("deficiency is missing a requirement id")
		}
		ids = append(ids, d.RequirementID)
	}
	known, err := s.Repos.Catalog.RequirementsByIDs(ids)
	if err != nil {
		return nil, err
	}
	knownSet := make(map[string]bool, len(known))
	for _, r := range known {
		knownSet[r.ReqID] = true
	}
	for _, id := range ids {
		if !knownSet[id] {
			return nil, apperrors.Validation("unknown requirement %q", id)
		}
	}

	changes := make([]models.RequestChange, 0, len(deficiencies))
	for _, d := range deficiencies {
		changes = append(changes, models.RequestChange{
			ChangeID:      uuid.NewString(),
			RequestID:     requestID,
			RequirementID: d.RequirementID,
			Remarks:       d.Remarks,
			FileLink:      d.FileLink,
			Status:        models.ChangeStatusPending,
		})
	}

	audit := &models.AuditLog{
		ActorID:     actor.ID,
		Action:      models.AuditActionReject,
		RequestID:   requestID,
		OldStatus:   string(req.Status),
		NewStatus:   string(models.RequestStatusRejected),
		Description: fmt.Sprintf("Rejected request %s with %d change items", requestID, len(changes)),
	}
	if err := s.Repos.Change.CreateRejection(requestID, changes, audit); err != nil {
		return nil, err
	}

	if err := s.Notify.SendStatusUpdate(req.ContactNumber, req.FullName, req.RequestID, string(models.RequestStatusRejected)); err != nil {
		log.Printf("rejection notification failed for %s: %v", requestID, err)
	}
	return changes, nil
}

// SubmitRemediation records the corrective upload for one change item. The
// owning request must still be REJECTED and the item must not already be
// uploaded; both guards are re-verified inside the write transaction. When the
// upload completes the set, the request is reinstated to PENDING in the same
// transaction.
func (s *RemediationService) SubmitRemediation(actor Actor, requestID, changeID, fileRef string) (bool, error) {
	if !Can(actor, ActionSubmitRemediation) {
		return false, apperrors.Authorization("actor %s may not submit remediations", actor.ID)
	}
	if fileRef == "" {
		return false, apperrors.Validation("a file reference is required")
	}
	audit := &models.AuditLog{
		ActorID:     actor.ID,
		Action:      models.AuditActionReinstate,
		RequestID:   requestID,
		OldStatus:   string(models.RequestStatusRejected),
		NewStatus:   string(models.RequestStatusPending),
		Description: fmt.Sprintf("All change items resolved; request %s reinstated", requestID),
	}
	reinstated, err := s.Repos.Change.MarkUploaded(requestID, changeID, fileRef, audit)
	if err != nil {
		return false, err
	}
	if reinstated {
		if req, loadErr := s.Repos.Request.GetByID(requestID); loadErr == nil {
			if err := s.Notify.SendStatusUpdate(req.ContactNumber, req.FullName, req.RequestID, string(models.RequestStatusPending)); err != nil {
				log.Printf("reinstatement notification failed for %s: %v", requestID, err)
			}
		}
	}
	return reinstated, nil
}

func (s *RemediationService) ListChanges(requestID string) ([]models.RequestChange, error) {
	return s.Repos.Change.ListByRequest(requestID)
}
