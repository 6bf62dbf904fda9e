package services

import (
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/odroffice/odr-go/models"
	"github.com/odroffice/odr-go/pkg/apperrors"
	"github.com/odroffice/odr-go/repositories"
)

type IntakeDocument struct {
	DocID    string
	Quantity int
}

type IntakeFile struct {
	RequirementID string
	FileLink      string
}

type IntakeInput struct {
	RequesterID      string
	FullName         string
	ContactNumber    string
	Email            string
	PreferredContact string
	Documents        []IntakeDocument
	Files            []IntakeFile
	AdminFee         float64
	PaymentStatus    bool
	Remarks          string
}

type IntakeService struct {
	Repos  *repositories.Repos
	Notify Notifier
}

func NewIntakeService(repos *repositories.Repos, notify Notifier) *IntakeService {
	return &IntakeService{Repos: repos, Notify: notify}
}

// CreateRequest admits a new request. Intake gating happens before this is
// called; here we price the document lines from the catalog, persist the
// request atomically and send the tracking number.
func (s *IntakeService) CreateRequest(input IntakeInput) (models.Request, error) {
	if input.RequesterID == "" || input.FullName == "" {
		return models.Request{}, apperrors.Validation("requester id and full name are required")
	}
	if len(input.Documents) == 0 {
		return models.Request{}, apperrors.Validation("at least one document must be requested")
	}

	ids := make([]string, 0, len(input.Documents))
	for _, d := range input.Documents {
		if d.DocID == "" {
			return models.Request{}, apperrors.Validation("document line is missing a doc id")
		}
		ids = append(ids, d.DocID)
	}
	docs, err := s.Repos.Catalog.DocumentsByIDs(ids)
	if err != nil {
		return models.Request{}, err
	}
	costs := make(map[string]float64, len(docs))
	for _, d := range docs {
		costs[d.DocID] = d.Cost
	}

	total := input.AdminFee
	lines := make([]models.RequestDocument, 0, len(input.Documents))
	for _, d := range input.Documents {
		cost, ok := costs[d.DocID]
		if !ok {
			return models.Request{}, apperrors.Validation("unknown document %q", d.DocID)
		}
		qty := d.Quantity
		if qty < 1 {
			qty = 1
		}
		total += cost * float64(qty)
		lines = append(lines, models.RequestDocument{DocID: d.DocID, Quantity: qty})
	}

	status := models.RequestStatusPending
	if !input.PaymentStatus {
		status = models.RequestStatusUnconfirmed
	}

	req := models.Request{
		RequestID:        GenerateTrackingNumber(),
		RequesterID:      input.RequesterID,
		FullName:         input.FullName,
		ContactNumber:    input.ContactNumber,
		Email:            input.Email,
		PreferredContact: input.PreferredContact,
		Status:           status,
		PaymentStatus:    input.PaymentStatus,
		TotalCost:        total,
		Remarks:          input.Remarks,
	}
	for i := range lines {
		lines[i].RequestID = req.RequestID
	}
	links := make([]models.RequestRequirementLink, 0, len(input.Files))
	for _, f := range input.Files {
		links = append(links, models.RequestRequirementLink{
			RequestID:     req.RequestID,
			RequirementID: f.RequirementID,
			FileLink:      f.FileLink,
		})
	}

	if err := s.Repos.Request.Create(&req, lines, links); err != nil {
		return models.Request{}, err
	}

	if err := s.Notify.SendTrackingNumber(req.ContactNumber, req.FullName, req.RequestID); err != nil {
		log.Printf("tracking notification failed for %s: %v", req.RequestID, err)
	}
	return req, nil
}

func (s *IntakeService) Track(trackingNumber, requesterID string) (models.Request, error) {
	return s.Repos.Request.GetByTracking(trackingNumber, requesterID)
}

func (s *IntakeService) MarkPaymentComplete(trackingNumber, requesterID string) (bool, error) {
	return s.Repos.Request.SetPaymentComplete(trackingNumber, requesterID)
}

func (s *IntakeService) ActiveRequests(requesterID string) ([]models.Request, error) {
	return s.Repos.Request.ListActiveByRequester(requesterID)
}

// AvailableDocuments lists the documents a requester may ask for, with the
// requirements each of them needs.
func (s *IntakeService) AvailableDocuments() ([]models.Document, error) {
	return s.Repos.Catalog.ListDocuments()
}

func (s *IntakeService) RequirementsFor(docIDs []string) ([]models.Requirement, error) {
	return s.Repos.Catalog.RequirementsForDocuments(docIDs)
}

// GenerateTrackingNumber produces an opaque request id, e.g. REQ-1A2B3C4D5E.
func GenerateTrackingNumber() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "REQ-" + raw[:10]
}
