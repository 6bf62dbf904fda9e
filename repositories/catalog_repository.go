package repositories

import (
	"github.com/odroffice/odr-go/db"
	"github.com/odroffice/odr-go/models"
	"github.com/odroffice/odr-go/pkg/apperrors"
)

type RequestDocumentLine struct {
	DocID    string  `json:"doc_id"`
	DocName  string  `json:"doc_name"`
	Quantity int     `json:"quantity"`
	Cost     float64 `json:"cost"`
}

// CatalogRepo is the read-only view on the document/requirement catalog.
// The core never mutates catalog rows.
type CatalogRepo interface {
	ListDocuments() ([]models.Document, error)
	DocumentsByIDs(ids []string) ([]models.Document, error)
	RequirementsByIDs(ids []string) ([]models.Requirement, error)
	RequirementsForDocuments(docIDs []string) ([]models.Requirement, error)
	RequestDocumentLines(requestID string) ([]RequestDocumentLine, error)
	RequestFileLinks(requestID string) ([]models.RequestRequirementLink, error)
}

type DBCatalogRepo struct{}

func (r *DBCatalogRepo) ListDocuments() ([]models.Document, error) {
	var docs []models.Document
	if err := db.DB.Where("hidden = false").Order("doc_id ASC").Find(&docs).Error; err != nil {
		return nil, apperrors.Storage("list documents", err)
	}
	return docs, nil
}

func (r *DBCatalogRepo) DocumentsByIDs(ids []string) ([]models.Document, error) {
	var docs []models.Document
	if len(ids) == 0 {
		return docs, nil
	}
	if err := db.DB.Where("doc_id IN ?", ids).Find(&docs).Error; err != nil {
		return nil, apperrors.Storage("load documents", err)
	}
	return docs, nil
}

func (r *DBCatalogRepo) RequirementsByIDs(ids []string) ([]models.Requirement, error) {
	var reqs []models.Requirement
	if len(ids) == 0 {
		return reqs, nil
	}
	if err := db.DB.Where("req_id IN ?", ids).Find(&reqs).Error; err != nil {
		return nil, apperrors.Storage("load requirements", err)
	}
	return reqs, nil
}

func (r *DBCatalogRepo) RequirementsForDocuments(docIDs []string) ([]models.Requirement, error) {
	var reqs []models.Requirement
	if len(docIDs) == 0 {
		return reqs, nil
	}
	err := db.DB.Model(&models.Requirement{}).
		Distinct("requirements.*").
		Joins("JOIN document_requirements dr ON dr.req_id = requirements.req_id").
		Where("dr.doc_id IN ?", docIDs).
		Find(&reqs).Error
	if err != nil {
		return nil, apperrors.Storage("load document requirements", err)
	}
	return reqs, nil
}

func (r *DBCatalogRepo) RequestDocumentLines(requestID string) ([]RequestDocumentLine, error) {
	var lines []RequestDocumentLine
	err := db.DB.Model(&models.RequestDocument{}).
		Select("request_documents.doc_id, d.doc_name, request_documents.quantity, d.cost").
		Joins("JOIN documents d ON d.doc_id = request_documents.doc_id").
		Where("request_documents.request_id = ?", requestID).
		Scan(&lines).Error
	if err != nil {
		return nil, apperrors.Storage("load request documents", err)
	}
	return lines, nil
}

func (r *DBCatalogRepo) RequestFileLinks(requestID string) ([]models.RequestRequirementLink, error) {
	var links []models.RequestRequirementLink
	if err := db.DB.Where("request_id = ?", requestID).Find(&links).Error; err != nil {
		return nil, apperrors.Storage("load request files", err)
	}
	return links, nil
}
