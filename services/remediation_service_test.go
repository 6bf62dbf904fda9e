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

func setupRemediationMocks(t *testing.T) (*services.RemediationService,
	*mock_repositories.MockRequestRepo,
	*mock_repositories.MockChangeRepo,
	*mock_repositories.MockCatalogRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockRequest := mock_repositories.NewMockRequestRepo(ctrl)
	mockChange := mock_repositories.NewMockChangeRepo(ctrl)
	mockCatalog := mock_repositories.NewMockCatalogRepo(ctrl)

	repos := &repositories.Repos{
		Request: mockRequest,
		Change:  mockChange,
		Catalog: mockCatalog,
	}
	svc := services.NewRemediationService(repos, services.NoopNotifier{})
	return svc, mockRequest, mockChange, mockCatalog
}

var reviewer = services.Actor{ID: "reviewer@example.com", Role: "admin"}
var requester = services.Actor{ID: "requester-7", Role: "user"}

func TestRejectWithChanges(t *testing.T) {
	svc, mockRequest, mockChange, mockCatalog := setupRemediationMocks(t)

	deficiencies := []services.Deficiency{
		{RequirementID: "req-a", Remarks: "photo is blurry"},
		{RequirementID: "req-b", Remarks: "signature missing"},
	}

	mockRequest.EXPECT().GetByID("r1").Return(models.Request{
		RequestID: "r1",
		Status:    models.RequestStatusInProgress,
	}, nil)
	mockCatalog.EXPECT().RequirementsByIDs([]string{"req-a", "req-b"}).Return([]models.Requirement{
		{ReqID: "req-a"}, {ReqID: "req-b"},
	}, nil)
	mockChange.EXPECT().CreateRejection("r1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(requestID string, changes []models.RequestChange, audit *models.AuditLog) error {
			if len(changes) != 2 {
				t.Fatalf("expected 2 change items, got %d", len(changes))
			}
			for _, ch := range changes {
				if ch.Status != models.ChangeStatusPending {
					t.Fatalf("expected a pending change, got %s", ch.Status)
				}
				if ch.ChangeID == "" {
					t.Fatal("expected a generated change id")
				}
			}
			if audit.NewStatus != "REJECTED" {
				t.Fatalf("expected a REJECTED audit entry, got %s", audit.NewStatus)
			}
			return nil
		})

	changes, err := svc.RejectWithChanges(reviewer, "r1", deficiencies)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(changes) != 2 {
		t.Fatalf("expected 2 change items, got %d", len(changes))
	}
}

func TestRejectWithChangesGuards(t *testing.T) {
	svc, mockRequest, _, mockCatalog := setupRemediationMocks(t)

	one := []services.Deficiency{{RequirementID: "req-a"}}

	if _, err := svc.RejectWithChanges(reviewer, "r1", nil); !apperrors.IsValidation(err) {
		t.Fatalf("expected a validation error for an empty change set, got %v", err)
	}

	mockRequest.EXPECT().GetByID("r1").Return(models.Request{
		RequestID: "r1",
		Status:    models.RequestStatusRejected,
	}, nil)
	if _, err := svc.RejectWithChanges(reviewer, "r1", one); !apperrors.IsConflict(err) {
		t.Fatalf("expected a conflict on an already-rejected request, got %v", err)
	}

	mockRequest.EXPECT().GetByID("r1").Return(models.Request{
		RequestID: "r1",
		Status:    models.RequestStatusReleased,
	}, nil)
	if _, err := svc.RejectWithChanges(reviewer, "r1", one); !apperrors.IsValidation(err) {
		t.Fatalf("expected a validation error on a released request, got %v", err)
	}

	mockRequest.EXPECT().GetByID("r1").Return(models.Request{
		RequestID: "r1",
		Status:    models.RequestStatusPending,
	}, nil)
	mockCatalog.EXPECT().RequirementsByIDs([]string{"req-a"}).Return(nil, nil)
	if _, err := svc.RejectWithChanges(reviewer, "r1", one); !apperrors.IsValidation(err) {
		t.Fatalf("expected a validation error for an unknown requirement, got %v", err)
	}
}

func TestSubmitRemediation(t *testing.T) {
	svc, mockRequest, mockChange, _ := setupRemediationMocks(t)

	t.Run("first upload leaves the request rejected", func(t *testing.T) {
		mockChange.EXPECT().MarkUploaded("r1", "ch-a", "files/a.pdf", gomock.Any()).Return(false, nil)

		reinstated, err := svc.SubmitRemediation(requester, "r1", "ch-a", "files/a.pdf")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reinstated {
			t.Fatal("one of two uploads must not reinstate the request")
		}
	})

	t.Run("last upload reinstates", func(t *testing.T) {
		mockChange.EXPECT().MarkUploaded("r1", "ch-b", "files/b.pdf", gomock.Any()).DoAndReturn(
			func(requestID, changeID, fileRef string, audit *models.AuditLog) (bool, error) {
				if audit.OldStatus != "REJECTED" || audit.NewStatus != "PENDING" {
					t.Fatalf("reinstate audit mismatch: %s -> %s", audit.OldStatus, audit.NewStatus)
				}
				return true, nil
			})
		mockRequest.EXPECT().GetByID("r1").Return(models.Request{
			RequestID: "r1",
			Status:    models.RequestStatusPending,
		}, nil)

		reinstated, err := svc.SubmitRemediation(requester, "r1", "ch-b", "files/b.pdf")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reinstated {
			t.Fatal("expected the final upload to reinstate the request")
		}
	})

	t.Run("requires a file reference", func(t *testing.T) {
		if _, err := svc.SubmitRemediation(requester, "r1", "ch-a", ""); !apperrors.IsValidation(err) {
			t.Fatalf("expected a validation error, got %v", err)
		}
	})

	t.Run("surfaces write-time conflicts", func(t *testing.T) {
		mockChange.EXPECT().MarkUploaded("r1", "ch-a", "files/a2.pdf", gomock.Any()).
			Return(false, apperrors.Conflict("change ch-a already has a file"))

		if _, err := svc.SubmitRemediation(requester, "r1", "ch-a", "files/a2.pdf"); !apperrors.IsConflict(err) {
			t.Fatalf("expected a conflict, got %v", err)
		}
	})
}
