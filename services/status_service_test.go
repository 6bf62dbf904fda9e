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

func setupStatusMocks(t *testing.T) (*services.StatusService, *mock_repositories.MockRequestRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockRequest := mock_repositories.NewMockRequestRepo(ctrl)
	repos := &repositories.Repos{Request: mockRequest}
	return services.NewStatusService(repos, services.NoopNotifier{}), mockRequest
}

var clerk = services.Actor{ID: "clerk@example.com", Role: "admin"}

func TestTransitionStatus(t *testing.T) {
	svc, mockRequest := setupStatusMocks(t)

	t.Run("moves through the pipeline with an audit entry", func(t *testing.T) {
		mockRequest.EXPECT().GetByID("r1").Return(models.Request{
			RequestID: "r1",
			Status:    models.RequestStatusPending,
		}, nil)
		mockRequest.EXPECT().UpdateStatusWithAudit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(req *models.Request, audit *models.AuditLog) error {
				if req.Status != models.RequestStatusInProgress {
					t.Fatalf("expected IN-PROGRESS, got %s", req.Status)
				}
				if audit.OldStatus != "PENDING" || audit.NewStatus != "IN-PROGRESS" {
					t.Fatalf("audit mismatch: %s -> %s", audit.OldStatus, audit.NewStatus)
				}
				return nil
			})

		req, err := svc.TransitionStatus(clerk, "r1", models.RequestStatusInProgress)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Status != models.RequestStatusInProgress {
			t.Fatalf("expected IN-PROGRESS, got %s", req.Status)
		}
	})

	t.Run("self-transition is a no-op", func(t *testing.T) {
		mockRequest.EXPECT().GetByID("r1").Return(models.Request{
			RequestID: "r1",
			Status:    models.RequestStatusPending,
		}, nil)
		// No UpdateStatusWithAudit expectation: nothing may be written.

		req, err := svc.TransitionStatus(clerk, "r1", models.RequestStatusPending)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Status != models.RequestStatusPending {
			t.Fatalf("expected PENDING, got %s", req.Status)
		}
	})

	t.Run("stamps completed_at on release", func(t *testing.T) {
		mockRequest.EXPECT().GetByID("r1").Return(models.Request{
			RequestID: "r1",
			Status:    models.RequestStatusDocReady,
		}, nil)
		mockRequest.EXPECT().UpdateStatusWithAudit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(req *models.Request, audit *models.AuditLog) error {
				if req.CompletedAt == nil {
					t.Fatal("expected completed_at to be stamped on RELEASED")
				}
				return nil
			})

		if _, err := svc.TransitionStatus(clerk, "r1", models.RequestStatusReleased); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		if _, err := svc.TransitionStatus(clerk, "r1", "SHIPPED"); !apperrors.IsValidation(err) {
			t.Fatalf("expected a validation error, got %v", err)
		}
	})

	t.Run("REJECTED is not a direct target", func(t *testing.T) {
		if _, err := svc.TransitionStatus(clerk, "r1", models.RequestStatusRejected); !apperrors.IsValidation(err) {
			t.Fatalf("expected a validation error, got %v", err)
		}
	})

	t.Run("a rejected request only leaves via remediation", func(t *testing.T) {
		mockRequest.EXPECT().GetByID("r1").Return(models.Request{
			RequestID: "r1",
			Status:    models.RequestStatusRejected,
		}, nil)

		if _, err := svc.TransitionStatus(clerk, "r1", models.RequestStatusPending); !apperrors.IsValidation(err) {
			t.Fatalf("expected a validation error, got %v", err)
		}
	})

	t.Run("requires the transition capability", func(t *testing.T) {
		requester := services.Actor{ID: "someone", Role: "user"}
		if _, err := svc.TransitionStatus(requester, "r1", models.RequestStatusPending); !apperrors.IsAuthorization(err) {
			t.Fatalf("expected an authorization error, got %v", err)
		}
	})
}

func TestPurgeRequest(t *testing.T) {
	svc, mockRequest := setupStatusMocks(t)

	mockRequest.EXPECT().Purge("r1", gomock.Any()).Return(true, nil)
	found, err := svc.PurgeRequest(clerk, "r1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected the purge to report the request as found")
	}

	if _, err := svc.PurgeRequest(services.Actor{ID: "u", Role: "user"}, "r1"); !apperrors.IsAuthorization(err) {
		t.Fatalf("expected an authorization error, got %v", err)
	}
}
