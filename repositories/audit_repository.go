package repositories

import (
	"time"

	"github.com/odroffice/odr-go/db"
	"github.com/odroffice/odr-go/models"
	"github.com/odroffice/odr-go/pkg/apperrors"
)

type AuditQueryParams struct {
	ActorID   *string
	Action    *string
	RequestID *string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Offset    int
}

type AuditRepo interface {
	GetAuditLogs(params AuditQueryParams) ([]models.AuditLog, error)
	CreateAuditLog(audit *models.AuditLog) error
}

type DBAuditRepo struct{}

func (r *DBAuditRepo) GetAuditLogs(params AuditQueryParams) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	query := db.DB.Model(&models.AuditLog{})

	if params.ActorID != nil {
		query = query.Where("actor_id = ?", *params.ActorID)
	}
	if params.Action != nil {
		query = query.Where("action = ?", *params.Action)
	}
	if params.RequestID != nil {
		query = query.Where("request_id = ?", *params.RequestID)
	}
	if params.StartTime != nil {
		query = query.Where("created_at >= ?", *params.StartTime)
	}
	if params.EndTime != nil {
		query = query.Where("created_at <= ?", *params.EndTime)
	}

	query = query.Order("created_at DESC")
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	if err := query.Find(&logs).Error; err != nil {
		return nil, apperrors.Storage("query audit logs", err)
	}
	return logs, nil
}

func (r *DBAuditRepo) CreateAuditLog(audit *models.AuditLog) error {
	if err := db.DB.Create(audit).Error; err != nil {
		return apperrors.Storage("create audit log", err)
	}
	return nil
}
