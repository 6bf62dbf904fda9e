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

type PolicyRepo interface {
	// GetRestriction returns the singleton window row, or nil when none has
	// been configured yet.
	GetRestriction() (*models.IntakeRestriction, error)
	UpsertRestriction(r *models.IntakeRestriction) error

	// GetDateOverride returns the override for the given calendar date, or
	// nil when the date has no explicit record.
	GetDateOverride(date time.Time) (*models.AvailableDate, error)
	UpsertDateOverride(d *models.AvailableDate) error
	DeleteDateOverride(date time.Time) (bool, error)
	ListDateOverrides() ([]models.AvailableDate, error)
	ListUpcoming(daysAhead int) ([]models.AvailableDate, error)
}

type DBPolicyRepo struct{}

func (r *DBPolicyRepo) GetRestriction() (*models.IntakeRestriction, error) {
	var row models.IntakeRestriction
	err := db.DB.First(&row, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Storage("load intake restriction", err)
	}
	return &row, nil
}

func (r *DBPolicyRepo) UpsertRestriction(row *models.IntakeRestriction) error {
	row.ID = 1
	err := db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"start_time", "end_time", "available_days", "announcement"}),
	}).Create(row).Error
	if err != nil {
		return apperrors.Storage("save intake restriction", err)
	}
	return nil
}

func (r *DBPolicyRepo) GetDateOverride(date time.Time) (*models.AvailableDate, error) {
	var row models.AvailableDate
	err := db.DB.First(&row, "date = ?", date.Format("2006-01-02")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Storage("load date override", err)
	}
	return &row, nil
}

func (r *DBPolicyRepo) UpsertDateOverride(d *models.AvailableDate) error {
	err := db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_available", "reason", "updated_at"}),
	}).Create(d).Error
	if err != nil {
		return apperrors.Storage("save date override", err)
	}
	return nil
}

func (r *DBPolicyRepo) DeleteDateOverride(date time.Time) (bool, error) {
	res := db.DB.Delete(&models.AvailableDate{}, "date = ?", date.Format("2006-01-02"))
	if res.Error != nil {
		return false, apperrors.Storage("delete date override", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *DBPolicyRepo) ListDateOverrides() ([]models.AvailableDate, error) {
	var rows []models.AvailableDate
	if err := db.DB.Order("date DESC").Find(&rows).Error; err != nil {
		return nil, apperrors.Storage("list date overrides", err)
	}
	return rows, nil
}

func (r *DBPolicyRepo) ListUpcoming(daysAhead int) ([]models.AvailableDate, error) {
	if daysAhead <= 0 {
		daysAhead = 30
	}
	now := time.Now()
	until := now.AddDate(0, 0, daysAhead)
	var rows []models.AvailableDate
	err := db.DB.
		Where("date >= ? AND date <= ?", now.Format("2006-01-02"), until.Format("2006-01-02")).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.Storage("list upcoming overrides", err)
	}
	return rows, nil
}
