package repositories

import (
	"errors"

	"github.com/odroffice/odr-go/db"
	"github.com/odroffice/odr-go/models"
	"github.com/odroffice/odr-go/pkg/apperrors"
	"gorm.io/gorm"
)

type RequestPage struct {
	Requests []models.Request
	Total    int64
}

type RequestRepo interface {
	Create(req *models.Request, docs []models.RequestDocument, links []models.RequestRequirementLink) error
	GetByID(requestID string) (models.Request, error)
	GetByTracking(requestID, requesterID string) (models.Request, error)
	ListPaged(page, limit int, search string, adminID *string) (RequestPage, error)
	ListActiveByRequester(requesterID string) ([]models.Request, error)
	UpdateStatusWithAudit(req *models.Request, audit *models.AuditLog) error
	SetPaymentComplete(requestID, requesterID string) (bool, error)
	Purge(requestID string, audit *models.AuditLog) (bool, error)
}

type DBRequestRepo struct{}

func (r *DBRequestRepo) Create(req *models.Request, docs []models.RequestDocument, links []models.RequestRequirementLink) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(req).Error; err != nil {
			return err
		}
		if len(docs) > 0 {
			if err := tx.Create(&docs).Error; err != nil {
				return err
			}
		}
		if len(links) > 0 {
			if err := tx.Create(&links).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict("request %s already exists", req.RequestID)
	}
	if err != nil {
		return apperrors.Storage("create request", err)
	}
	return nil
}

func (r *DBRequestRepo) GetByID(requestID string) (models.Request, error) {
	var req models.Request
	err := db.DB.First(&req, "request_id = ?", requestID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return req, apperrors.NotFound("request %s not found", requestID)
	}
	if err != nil {
		return req, apperrors.Storage("load request", err)
	}
	return req, nil
}

func (r *DBRequestRepo) GetByTracking(requestID, requesterID string) (models.Request, error) {
	var req models.Request
	err := db.DB.First(&req, "request_id = ? AND requester_id = ?", requestID, requesterID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return req, apperrors.NotFound("invalid tracking number or requester id")
	}
	if err != nil {
		return req, apperrors.Storage("load request", err)
	}
	return req, nil
}

func (r *DBRequestRepo) ListPaged(page, limit int, search string, adminID *string) (RequestPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := db.DB.Model(&models.Request{})
	if adminID != nil {
		query = query.
			Joins("JOIN request_assignments ra ON ra.request_id = requests.request_id").
			Where("ra.admin_id = ?", *adminID)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("requests.request_id ILIKE ? OR requests.full_name ILIKE ? OR requests.requester_id ILIKE ?", like, like, like)
	}

	var result RequestPage
	if err := query.Count(&result.Total).Error; err != nil {
		return result, apperrors.Storage("count requests", err)
	}
	err := query.
		Order("requests.requested_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&result.Requests).Error
	if err != nil {
		return result, apperrors.Storage("list requests", err)
	}
	return result, nil
}

func (r *DBRequestRepo) ListActiveByRequester(requesterID string) ([]models.Request, error) {
	var reqs []models.Request
	err := db.DB.
		Where("requester_id = ? AND status <> ?", requesterID, models.RequestStatusReleased).
		Order("requested_at DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, apperrors.Storage("list active requests", err)
	}
	return reqs, nil
}

// UpdateStatusWithAudit persists the mutated request together with its audit
// entry. The two writes commit or roll back as a unit.
func (r *DBRequestRepo) UpdateStatusWithAudit(req *models.Request, audit *models.AuditLog) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(req).Error; err != nil {
			return err
		}
		return tx.Create(audit).Error
	})
	if err != nil {
		return apperrors.Storage("update request status", err)
	}
	return nil
}

func (r *DBRequestRepo) SetPaymentComplete(requestID, requesterID string) (bool, error) {
	res := db.DB.Model(&models.Request{}).
		Where("request_id = ? AND requester_id = ?", requestID, requesterID).
		Update("payment_status", true)
	if res.Error != nil {
		return false, apperrors.Storage("update payment status", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Purge removes a request and cascades its assignment, change items,
// document lines and intake file links. The audit entry survives the purge.
func (r *DBRequestRepo) Purge(requestID string, audit *models.AuditLog) (bool, error) {
	var removed bool
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Request{}, "request_id = ?", requestID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true
		for _, m := range []any{
			&models.RequestAssignment{},
			&models.RequestChange{},
			&models.RequestDocument{},
			&models.RequestRequirementLink{},
		} {
			if err := tx.Delete(m, "request_id = ?", requestID).Error; err != nil {
				return err
			}
		}
		return tx.Create(audit).Error
	})
	if err != nil {
		return false, apperrors.Storage("purge request", err)
	}
	return removed, nil
}
