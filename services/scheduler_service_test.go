package services_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/odroffice/odr-go/models"
	"github.com/odroffice/odr-go/pkg/apperrors"
	"github.com/odroffice/odr-go/repositories"
	"github.com/odroffice/odr-go/repositories/mock_repositories"
	"github.com/odroffice/odr-go/services"
)

func setupSchedulerMocks(t *testing.T) (*services.SchedulerService,
	*mock_repositories.MockAssignmentRepo,
	*mock_repositories.MockAdminRepo,
	*mock_repositories.MockRequestRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockAssignment := mock_repositories.NewMockAssignmentRepo(ctrl)
	mockAdmin := mock_repositories.NewMockAdminRepo(ctrl)
	mockRequest := mock_repositories.NewMockRequestRepo(ctrl)

	repos := &repositories.Repos{
		Assignment: mockAssignment,
		Admin:      mockAdmin,
		Request:    mockRequest,
	}
	return services.NewSchedulerService(repos), mockAssignment, mockAdmin, mockRequest
}

func pendingRequests(ids ...string) []models.Request {
	out := make([]models.Request, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Request{RequestID: id, Status: models.RequestStatusPending})
	}
	return out
}

var assigner = services.Actor{ID: "dispatcher@example.com", Role: "admin"}

func TestAutoAssignRespectsCapacity(t *testing.T) {
	svc, mockAssignment, mockAdmin, _ := setupSchedulerMocks(t)

	admins := []models.Admin{{Email: "a@x"}, {Email: "b@x"}, {Email: "c@x"}}
	caps := map[string]int{"a@x": 2, "b@x": 1, "c@x": 1}

	mockAssignment.EXPECT().ListUnassigned(5).Return(pendingRequests("r1", "r2", "r3", "r4", "r5"), nil)
	mockAdmin.EXPECT().ListAdmins().Return(admins, nil)
	mockAssignment.EXPECT().ActiveCounts().Return(map[string]int{}, nil)
	for _, a := range admins {
		email := a.Email
		mockAdmin.EXPECT().EffectiveMaxRequests(email).Return(caps[email], nil)
	}

	got := map[string]int{}
	mockAssignment.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(a *models.RequestAssignment, audit *models.AuditLog) error {
			got[a.AdminID]++
			return nil
		}).Times(4)

	placed, err := svc.AutoAssign(assigner, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if placed != 4 {
		t.Fatalf("expected 4 placements with capacities {2,1,1}, got %d", placed)
	}
	if got["a@x"] != 2 || got["b@x"] != 1 || got["c@x"] != 1 {
		t.Fatalf("unexpected distribution: %v", got)
	}
}

func TestAutoAssignSkipsConflictedRequest(t *testing.T) {
	svc, mockAssignment, mockAdmin, _ := setupSchedulerMocks(t)

	mockAssignment.EXPECT().ListUnassigned(2).Return(pendingRequests("r1", "r2"), nil)
	mockAdmin.EXPECT().ListAdmins().Return([]models.Admin{{Email: "a@x"}}, nil)
	mockAssignment.EXPECT().ActiveCounts().Return(map[string]int{}, nil)
	mockAdmin.EXPECT().EffectiveMaxRequests("a@x").Return(5, nil)

	first := mockAssignment.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(apperrors.Conflict("request r1 is already assigned"))
	mockAssignment.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).After(first)

	placed, err := svc.AutoAssign(assigner, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if placed != 1 {
		t.Fatalf("a conflicted request must not count as placed, got %d", placed)
	}
}

func TestAutoAssignValidation(t *testing.T) {
	svc, _, _, _ := setupSchedulerMocks(t)

	if _, err := svc.AutoAssign(assigner, 0); !apperrors.IsValidation(err) {
		t.Fatalf("expected a validation error for n=0, got %v", err)
	}
	if _, err := svc.AutoAssign(services.Actor{ID: "u", Role: "user"}, 3); !apperrors.IsAuthorization(err) {
		t.Fatalf("expected an authorization error for a non-admin, got %v", err)
	}
}

func TestManualAssignIgnoresCapacity(t *testing.T) {
	svc, mockAssignment, mockAdmin, mockRequest := setupSchedulerMocks(t)

	// EffectiveMaxRequests is deliberately never expected here: a manual
	// assignment is a human override.
	mockAdmin.EXPECT().GetByEmail("a@x").Return(models.Admin{Email: "a@x"}, nil)
	mockRequest.EXPECT().GetByID("r1").Return(models.Request{RequestID: "r1"}, nil)
	mockRequest.EXPECT().GetByID("r2").Return(models.Request{RequestID: "r2"}, nil)
	mockAssignment.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	assigned, err := svc.ManualAssign(assigner, []string{"r1", "r2"}, "a@x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assigned != 2 {
		t.Fatalf("expected 2 assignments, got %d", assigned)
	}
}

func TestManualAssignSkipsMissingRequests(t *testing.T) {
	svc, mockAssignment, mockAdmin, mockRequest := setupSchedulerMocks(t)

	mockAdmin.EXPECT().GetByEmail("a@x").Return(models.Admin{Email: "a@x"}, nil)
	mockRequest.EXPECT().GetByID("gone").Return(models.Request{}, apperrors.NotFound("request gone not found"))
	mockRequest.EXPECT().GetByID("r2").Return(models.Request{RequestID: "r2"}, nil)
	mockAssignment.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(nil)

	assigned, err := svc.ManualAssign(assigner, []string{"gone", "r2"}, "a@x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assigned != 1 {
		t.Fatalf("expected 1 assignment, got %d", assigned)
	}
}

func TestUnassignWrongAdmin(t *testing.T) {
	svc, mockAssignment, _, _ := setupSchedulerMocks(t)

	mockAssignment.EXPECT().DeleteByRequestAndAdmin("r1", "other@x", gomock.Any()).Return(false, nil)

	removed, err := svc.Unassign(assigner, "r1", "other@x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed {
		t.Fatal("expected no removal when the request is assigned elsewhere")
	}
}
