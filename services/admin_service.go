package services

import (
	"github.com/odroffice/odr-go/models"
	"github.com/odroffice/odr-go/pkg/apperrors"
	"github.com/odroffice/odr-go/repositories"
)

// AdminService manages the staff roster and capacity settings. Roster rows
// are identity records only; credentials live with the external identity
// provider.
type AdminService struct {
	Repos *repositories.Repos
}

func NewAdminService(repos *repositories.Repos) *AdminService {
	return &AdminService{Repos: repos}
}

func (s *AdminService) List() ([]models.Admin, error) {
	return s.Repos.Admin.ListAdmins()
}

func (s *AdminService) Add(actor Actor, email, role string, profilePicture *string) error {
	if !Can(actor, ActionManageSettings) {
		return apperrors.Authorization("actor %s may not manage admins", actor.ID)
	}
	if email == "" {
		return apperrors.Validation("email is required")
	}
	if role == "" {
		role = "admin"
	}
	return s.Repos.Admin.Add(&models.Admin{Email: email, Role: role, ProfilePicture: profilePicture})
}

func (s *AdminService) UpdateRole(actor Actor, email, role string) (bool, error) {
	if !Can(actor, ActionManageSettings) {
		return false, apperrors.Authorization("actor %s may not manage admins", actor.ID)
	}
	if role == "" {
		return false, apperrors.Validation("role is required")
	}
	return s.Repos.Admin.UpdateRole(email, role)
}

func (s *AdminService) Remove(actor Actor, email string) (bool, error) {
	if !Can(actor, ActionManageSettings) {
		return false, apperrors.Authorization("actor %s may not manage admins", actor.ID)
	}
	return s.Repos.Admin.Delete(email)
}

func (s *AdminService) MaxRequests(adminID string) (int, error) {
	return s.Repos.Admin.EffectiveMaxRequests(adminID)
}

func (s *AdminService) SetMaxRequests(actor Actor, adminID string, max int) error {
	if !Can(actor, ActionManageSettings) {
		return apperrors.Authorization("actor %s may not manage capacity settings", actor.ID)
	}
	if max < 0 {
		return apperrors.Validation("max_requests must not be negative")
	}
	return s.Repos.Admin.SetMaxRequests(adminID, max)
}

func (s *AdminService) GlobalMaxRequests() (int, error) {
	return s.Repos.Admin.GlobalMaxRequests()
}

func (s *AdminService) SetGlobalMaxRequests(actor Actor, max int) error {
	if !Can(actor, ActionManageSettings) {
		return apperrors.Authorization("actor %s may not manage capacity settings", actor.ID)
	}
	if max < 0 {
		return apperrors.Validation("max_requests must not be negative")
	}
	return s.Repos.Admin.SetGlobalMaxRequests(max)
}
