package services_test

import (
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/odroffice/odr-go/models"
	"github.com/odroffice/odr-go/pkg/apperrors"
	"github.com/odroffice/odr-go/repositories"
	"github.com/odroffice/odr-go/repositories/mock_repositories"
	"github.com/odroffice/odr-go/services"
)

func setupIntakeMocks(t *testing.T) (*services.IntakeService,
	*mock_repositories.MockRequestRepo,
	*mock_repositories.MockCatalogRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockRequest := mock_repositories.NewMockRequestRepo(ctrl)
	mockCatalog := mock_repositories.NewMockCatalogRepo(ctrl)
	repos := &repositories.Repos{Request: mockRequest, Catalog: mockCatalog}
	return services.NewIntakeService(repos, services.NoopNotifier{}), mockRequest, mockCatalog
}

func TestCreateRequestPricesFromCatalog(t *testing.T) {
	svc, mockRequest, mockCatalog := setupIntakeMocks(t)

	mockCatalog.EXPECT().DocumentsByIDs([]string{"doc-1", "doc-2"}).Return([]models.Document{
		{DocID: "doc-1", Cost: 50},
		{DocID: "doc-2", Cost: 120},
	}, nil)
	mockRequest.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(req *models.Request, docs []models.RequestDocument, links []models.RequestRequirementLink) error {
			// 25 admin fee + 2*50 + 1*120
			if req.TotalCost != 245 {
				t.Fatalf("expected a total of 245, got %v", req.TotalCost)
			}
			if len(docs) != 2 {
				t.Fatalf("expected 2 document lines, got %d", len(docs))
			}
			if req.Status != models.RequestStatusUnconfirmed {
				t.Fatalf("an unpaid request must start UNCONFIRMED, got %s", req.Status)
			}
			return nil
		})

	req, err := svc.CreateRequest(services.IntakeInput{
		RequesterID: "requester-7",
		FullName:    "Dana Cruz",
		Documents: []services.IntakeDocument{
			{DocID: "doc-1", Quantity: 2},
			{DocID: "doc-2"},
		},
		AdminFee: 25,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(req.RequestID, "REQ-") || len(req.RequestID) != 14 {
		t.Fatalf("unexpected tracking number format: %q", req.RequestID)
	}
}

func TestCreateRequestPaidStartsPending(t *testing.T) {
	svc, mockRequest, mockCatalog := setupIntakeMocks(t)

	mockCatalog.EXPECT().DocumentsByIDs([]string{"doc-1"}).Return([]models.Document{
		{DocID: "doc-1", Cost: 10},
	}, nil)
	mockRequest.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(req *models.Request, docs []models.RequestDocument, links []models.RequestRequirementLink) error {
			if req.Status != models.RequestStatusPending {
				t.Fatalf("a paid request must start PENDING, got %s", req.Status)
			}
			return nil
		})

	_, err := svc.CreateRequest(services.IntakeInput{
		RequesterID:   "requester-7",
		FullName:      "Dana Cruz",
		Documents:     []services.IntakeDocument{{DocID: "doc-1"}},
		PaymentStatus: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateRequestValidation(t *testing.T) {
	svc, _, mockCatalog := setupIntakeMocks(t)

	if _, err := svc.CreateRequest(services.IntakeInput{FullName: "x"}); !apperrors.IsValidation(err) {
		t.Fatalf("expected a validation error without a requester, got %v", err)
	}
	if _, err := svc.CreateRequest(services.IntakeInput{RequesterID: "r", FullName: "x"}); !apperrors.IsValidation(err) {
		t.Fatalf("expected a validation error without documents, got %v", err)
	}

	mockCatalog.EXPECT().DocumentsByIDs([]string{"ghost"}).Return(nil, nil)
	_, err := svc.CreateRequest(services.IntakeInput{
		RequesterID: "r",
		FullName:    "x",
		Documents:   []services.IntakeDocument{{DocID: "ghost"}},
	})
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected a validation error for an uncatalogued document, got %v", err)
	}
}
