package services

import (
	"fmt"
	"log"

	"github.com/odroffice/odr-go/config"
	"github.com/odroffice/odr-go/models"
	"github.com/odroffice/odr-go/pkg/apperrors"
	"github.com/odroffice/odr-go/repositories"
)

type SchedulerService struct {
	Repos *repositories.Repos
}

func NewSchedulerService(repos *repositories.Repos) *SchedulerService {
	return &SchedulerService{Repos: repos}
}

// AutoAssign distributes up to n of the oldest unassigned PENDING requests
// round-robin across admins with spare capacity. It returns the number
// actually placed; running out of capacity or demand is a normal outcome,
// not an error. Admins are walked in email order so a pass is reproducible
// given a consistent snapshot.
func (s *SchedulerService) AutoAssign(actor Actor, n int) (int, error) {
	if !Can(actor, ActionAssign) {
		return 0, apperrors.Authorization("actor %s may not assign requests", actor.ID)
	}
	if n <= 0 {
		return 0, apperrors.Validation("number of requests to assign must be positive")
	}

	requests, err := s.Repos.Assignment.ListUnassigned(n)
	if err != nil {
		return 0, err
	}
	if len(requests) == 0 {
		return 0, nil
	}

	admins, err := s.Repos.Admin.ListAdmins()
	if err != nil {
		return 0, err
	}
	counts, err := s.Repos.Assignment.ActiveCounts()
	if err != nil {
		return 0, err
	}

	// Spare capacity is read once per pass; the unique index on
	// request_assignments.request_id is the backstop against races.
	spare := make([]int, len(admins))
	for i, admin := range admins {
		max, err := s.Repos.Admin.EffectiveMaxRequests(admin.Email)
		if err != nil {
			return 0, err
		}
		spare[i] = max - counts[admin.Email]
	}

	placed := 0
	cursor := 0
	for _, req := range requests {
		idx := -1
		for probe := 0; probe < len(admins); probe++ {
			candidate := (cursor + probe) % len(admins)
			if spare[candidate] > 0 {
				idx = candidate
				break
			}
		}
		if idx == -1 {
			break // every admin is at capacity
		}

		admin := admins[idx]
		assignment := &models.RequestAssignment{
			RequestID:  req.RequestID,
			AdminID:    admin.Email,
			AssignedBy: actor.ID,
		}
		audit := &models.AuditLog{
			ActorID:     actor.ID,
			Action:      models.AuditActionAssign,
			RequestID:   req.RequestID,
			Description: fmt.Sprintf("Auto-assigned request %s to %s", req.RequestID, admin.Email),
		}
		err := s.Repos.Assignment.Create(assignment, audit)
		if apperrors.IsConflict(err) {
			// Another pass won this request; skip it without consuming
			// capacity or advancing the cursor.
			log.Printf("auto-assign: request %s taken concurrently, skipping", req.RequestID)
			continue
		}
		if err != nil {
			return placed, err
		}
		spare[idx]--
		placed++
		cursor = (idx + 1) % len(admins)
	}
	return placed, nil
}

// ManualAssign assigns each request to the given admin regardless of that
// admin's load: a human decided it, so capacity is not checked. Requests are
// processed independently; one failure does not abort the rest.
func (s *SchedulerService) ManualAssign(actor Actor, requestIDs []string, adminID string) (int, error) {
	if !Can(actor, ActionAssign) {
		return 0, apperrors.Authorization("actor %s may not assign requests", actor.ID)
	}
	if len(requestIDs) == 0 {
		return 0, apperrors.Validation("request_ids is required")
	}
	if _, err := s.Repos.Admin.GetByEmail(adminID); err != nil {
		return 0, err
	}

	assigned := 0
	for _, requestID := range requestIDs {
		if _, err := s.Repos.Request.GetByID(requestID); err != nil {
			log.Printf("manual-assign: skipping %s: %v", requestID, err)
			continue
		}
		assignment := &models.RequestAssignment{
			RequestID:  requestID,
			AdminID:    adminID,
			AssignedBy: actor.ID,
		}
		audit := &models.AuditLog{
			ActorID:     actor.ID,
			Action:      models.AuditActionAssign,
			RequestID:   requestID,
			Description: fmt.Sprintf("Manually assigned request %s to %s", requestID, adminID),
		}
		if err := s.Repos.Assignment.Replace(assignment, audit); err != nil {
			log.Printf("manual-assign: failed for %s: %v", requestID, err)
			continue
		}
		assigned++
	}
	return assigned, nil
}

// Unassign removes the assignment only if it currently points at the given
// admin. Returns whether a row was removed.
func (s *SchedulerService) Unassign(actor Actor, requestID, adminID string) (bool, error) {
	if !Can(actor, ActionUnassign) {
		return false, apperrors.Authorization("actor %s may not unassign requests", actor.ID)
	}
	audit := &models.AuditLog{
		ActorID:     actor.ID,
		Action:      models.AuditActionUnassign,
		RequestID:   requestID,
		Description: fmt.Sprintf("Unassigned request %s from %s", requestID, adminID),
	}
	return s.Repos.Assignment.DeleteByRequestAndAdmin(requestID, adminID, audit)
}

func (s *SchedulerService) Progress(adminID string) (repositories.AssignmentProgress, error) {
	return s.Repos.Assignment.Progress(adminID, config.CompletedStatuses)
}

func (s *SchedulerService) AdminsProgress() ([]repositories.AdminProgress, error) {
	return s.Repos.Admin.ProgressAll(config.CompletedStatuses)
}

func (s *SchedulerService) ListUnassigned(limit int) ([]models.Request, error) {
	return s.Repos.Assignment.ListUnassigned(limit)
}

func (s *SchedulerService) RequestsForAdmin(adminID string) ([]models.Request, error) {
	return s.Repos.Assignment.ListRequestsByAdmin(adminID)
}
