package repositories

import (
	"errors"
	"time"

	"github.com/odroffice/odr-go/db"
	"github.com/odroffice/odr-go/models"
	"github.com/odroffice/odr-go/pkg/apperrors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChangeRepo interface {
	// CreateRejection inserts the full change set, drives the request into
	// REJECTED and writes the audit entry in one transaction.
	CreateRejection(requestID string, changes []models.RequestChange, audit *models.AuditLog) error
	ListByRequest(requestID string) ([]models.RequestChange, error)

	// MarkUploaded stores the file reference on a pending change and, when it
	// was the last pending item, reinstates the request to PENDING in the
	// same transaction. Returns whether reinstatement happened.
	MarkUploaded(requestID, changeID, fileRef string, reinstateAudit *models.AuditLog) (bool, error)
}

type DBChangeRepo struct{}

func (r *DBChangeRepo) CreateRejection(requestID string, changes []models.RequestChange, audit *models.AuditLog) error {
	now := time.Now()
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var req models.Request
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&req, "request_id = ?", requestID).Error; err != nil {
			return err
		}
		updates := map[string]any{"status": models.RequestStatusRejected}
		if req.CompletedAt == nil {
			updates["completed_at"] = now
		}
		if err := tx.Model(&models.Request{}).Where("request_id = ?", requestID).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Create(&changes).Error; err != nil {
			return err
		}
		return tx.Create(audit).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("request %s not found", requestID)
	}
	if err != nil {
		return apperrors.Storage("create rejection", err)
	}
	return nil
}

func (r *DBChangeRepo) ListByRequest(requestID string) ([]models.RequestChange, error) {
	var changes []models.RequestChange
	err := db.DB.Where("request_id = ?", requestID).Order("created_at ASC").Find(&changes).Error
	if err != nil {
		return nil, apperrors.Storage("list change items", err)
	}
	return changes, nil
}

func (r *DBChangeRepo) MarkUploaded(requestID, changeID, fileRef string, reinstateAudit *models.AuditLog) (bool, error) {
	var reinstated bool
	now := time.Now()
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		// Re-verify the owning request is still REJECTED at write time; a
		// stale client must not upload into an already-reinstated request.
		var req models.Request
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&req, "request_id = ?", requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("request %s not found", requestID)
			}
			return err
		}
		if req.Status != models.RequestStatusRejected {
			return apperrors.Conflict("request %s is no longer rejected, refresh and retry", requestID)
		}

		var change models.RequestChange
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&change, "change_id = ? AND request_id = ?", changeID, requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("change item %s not found for request %s", changeID, requestID)
			}
			return err
		}
		// The rejection may carry a staff reference file, so presence of a
		// file link alone does not mean the item is done; status does.
		if change.Status == models.ChangeStatusUploaded {
			return apperrors.Conflict("change item %s already has an upload", changeID)
		}

		err := tx.Model(&models.RequestChange{}).
			Where("change_id = ?", changeID).
			Updates(map[string]any{
				"status":      models.ChangeStatusUploaded,
				"file_link":   fileRef,
				"uploaded_at": now,
			}).Error
		if err != nil {
			return err
		}

		// Completion predicate, evaluated inside the same transaction so two
		// near-simultaneous uploads cannot both observe "not yet complete".
		var pending int64
		err = tx.Model(&models.RequestChange{}).
			Where("request_id = ? AND status = ?", requestID, models.ChangeStatusPending).
			Count(&pending).Error
		if err != nil {
			return err
		}
		if pending > 0 {
			return nil
		}

		// Tolerate partial-completion edge cases: any item still marked
		// pending at reinstatement time is flipped along with the request.
		err = tx.Model(&models.RequestChange{}).
			Where("request_id = ? AND status = ?", requestID, models.ChangeStatusPending).
			Updates(map[string]any{"status": models.ChangeStatusUploaded, "uploaded_at": now}).Error
		if err != nil {
			return err
		}

		err = tx.Model(&models.Request{}).
			Where("request_id = ?", requestID).
			Updates(map[string]any{"status": models.RequestStatusPending, "completed_at": nil}).Error
		if err != nil {
			return err
		}
		if err := tx.Create(reinstateAudit).Error; err != nil {
			return err
		}
		reinstated = true
		return nil
	})
	if err != nil {
		if _, ok := apperrors.KindOf(err); ok {
			return false, err
		}
		return false, apperrors.Storage("submit remediation", err)
	}
	return reinstated, nil
}
