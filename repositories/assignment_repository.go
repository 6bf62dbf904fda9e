package repositories

import (
	"errors"

	"github.com/odroffice/odr-go/db"
	"github.com/odroffice/odr-go/models"
	"github.com/odroffice/odr-go/pkg/apperrors"
	"gorm.io/gorm"
)

type AssignmentProgress struct {
	Assigned  int64 `json:"assigned"`
	Completed int64 `json:"completed"`
}

type AssignmentRepo interface {
	// ListUnassigned returns schedulable requests with no assignment row,
	// oldest first.
	ListUnassigned(limit int) ([]models.Request, error)
	ActiveCounts() (map[string]int, error)
	Create(a *models.RequestAssignment, audit *models.AuditLog) error
	Replace(a *models.RequestAssignment, audit *models.AuditLog) error
	DeleteByRequestAndAdmin(requestID, adminID string, audit *models.AuditLog) (bool, error)
	GetByRequest(requestID string) (*models.RequestAssignment, error)
	ListRequestsByAdmin(adminID string) ([]models.Request, error)
	Progress(adminID string, completedStatuses []string) (AssignmentProgress, error)
}

type DBAssignmentRepo struct{}

func (r *DBAssignmentRepo) ListUnassigned(limit int) ([]models.Request, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}
	var reqs []models.Request
	err := db.DB.
		Where("status = ?", models.RequestStatusPending).
		Where("request_id NOT IN (?)", db.DB.Model(&models.RequestAssignment{}).Select("request_id")).
		Order("requested_at ASC").
		Limit(limit).
		Find(&reqs).Error
	if err != nil {
		return nil, apperrors.Storage("list unassigned requests", err)
	}
	return reqs, nil
}

func (r *DBAssignmentRepo) ActiveCounts() (map[string]int, error) {
	var rows []struct {
		AdminID string
		N       int
	}
	err := db.DB.Model(&models.RequestAssignment{}).
		Select("admin_id, COUNT(*) AS n").
		Group("admin_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Storage("count active assignments", err)
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.AdminID] = row.N
	}
	return counts, nil
}

// Create inserts an assignment and its audit entry atomically. A uniqueness
// violation on request_id surfaces as a conflict so a racing scheduler pass
// can skip the request instead of corrupting the ledger.
func (r *DBAssignmentRepo) Create(a *models.RequestAssignment, audit *models.AuditLog) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(a).Error; err != nil {
			return err
		}
		return tx.Create(audit).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict("request %s is already assigned", a.RequestID)
	}
	if err != nil {
		return apperrors.Storage("create assignment", err)
	}
	return nil
}

// Replace models reassignment as delete-then-insert in one transaction.
func (r *DBAssignmentRepo) Replace(a *models.RequestAssignment, audit *models.AuditLog) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.RequestAssignment{}, "request_id = ?", a.RequestID).Error; err != nil {
			return err
		}
		if err := tx.Create(a).Error; err != nil {
			return err
		}
		return tx.Create(audit).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict("request %s is already assigned", a.RequestID)
	}
	if err != nil {
		return apperrors.Storage("replace assignment", err)
	}
	return nil
}

// DeleteByRequestAndAdmin removes the assignment only when it currently
// points at the given admin, so a stale client cannot unassign someone
// else's work.
func (r *DBAssignmentRepo) DeleteByRequestAndAdmin(requestID, adminID string, audit *models.AuditLog) (bool, error) {
	var removed bool
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.RequestAssignment{}, "request_id = ? AND admin_id = ?", requestID, adminID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true
		return tx.Create(audit).Error
	})
	if err != nil {
		return false, apperrors.Storage("delete assignment", err)
	}
	return removed, nil
}

func (r *DBAssignmentRepo) GetByRequest(requestID string) (*models.RequestAssignment, error) {
	var a models.RequestAssignment
	err := db.DB.First(&a, "request_id = ?", requestID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Storage("load assignment", err)
	}
	return &a, nil
}

func (r *DBAssignmentRepo) ListRequestsByAdmin(adminID string) ([]models.Request, error) {
	var reqs []models.Request
	err := db.DB.
		Joins("JOIN request_assignments ra ON ra.request_id = requests.request_id").
		Where("ra.admin_id = ?", adminID).
		Order("requests.requested_at ASC").
		Find(&reqs).Error
	if err != nil {
		return nil, apperrors.Storage("list assigned requests", err)
	}
	return reqs, nil
}

func (r *DBAssignmentRepo) Progress(adminID string, completedStatuses []string) (AssignmentProgress, error) {
	var p AssignmentProgress
	base := db.DB.Model(&models.RequestAssignment{}).
		Joins("JOIN requests r ON r.request_id = request_assignments.request_id").
		Where("request_assignments.admin_id = ?", adminID)

	if err := base.Session(&gorm.Session{}).Count(&p.Assigned).Error; err != nil {
		return p, apperrors.Storage("count assignments", err)
	}
	err := base.Session(&gorm.Session{}).
		Where("r.status IN ?", completedStatuses).
		Count(&p.Completed).Error
	if err != nil {
		return p, apperrors.Storage("count completed assignments", err)
	}
	return p, nil
}
