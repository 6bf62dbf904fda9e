package repositories

import (
	"errors"
	"strconv"

	"github.com/odroffice/odr-go/config"
	"github.com/odroffice/odr-go/db"
	"github.com/odroffice/odr-go/models"
	"github.com/odroffice/odr-go/pkg/apperrors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AdminProgress struct {
	AdminID     string `json:"admin_id"`
	MaxRequests int    `json:"max_requests"`
	Total       int64  `json:"total"`
	Completed   int64  `json:"completed"`
}

type AdminRepo interface {
	// ListAdmins returns all admins ordered by email; the scheduler relies on
	// this ordering for deterministic round-robin passes.
	ListAdmins() ([]models.Admin, error)
	GetByEmail(email string) (models.Admin, error)
	Add(admin *models.Admin) error
	UpdateRole(email, role string) (bool, error)
	Delete(email string) (bool, error)

	// EffectiveMaxRequests resolves the per-admin override, falling back to
	// the global setting and then the configured default.
	EffectiveMaxRequests(adminID string) (int, error)
	SetMaxRequests(adminID string, max int) error
	GlobalMaxRequests() (int, error)
	SetGlobalMaxRequests(max int) error
	ProgressAll(completedStatuses []string) ([]AdminProgress, error)
}

type DBAdminRepo struct{}

func (r *DBAdminRepo) ListAdmins() ([]models.Admin, error) {
	var admins []models.Admin
	if err := db.DB.Order("email ASC").Find(&admins).Error; err != nil {
		return nil, apperrors.Storage("list admins", err)
	}
	return admins, nil
}

func (r *DBAdminRepo) GetByEmail(email string) (models.Admin, error) {
	var admin models.Admin
	err := db.DB.First(&admin, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return admin, apperrors.NotFound("admin %s not found", email)
	}
	if err != nil {
		return admin, apperrors.Storage("load admin", err)
	}
	return admin, nil
}

func (r *DBAdminRepo) Add(admin *models.Admin) error {
	err := db.DB.Create(admin).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict("admin %s already exists", admin.Email)
	}
	if err != nil {
		return apperrors.Storage("add admin", err)
	}
	return nil
}

func (r *DBAdminRepo) UpdateRole(email, role string) (bool, error) {
	res := db.DB.Model(&models.Admin{}).Where("email = ?", email).Update("role", role)
	if res.Error != nil {
		return false, apperrors.Storage("update admin role", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *DBAdminRepo) Delete(email string) (bool, error) {
	res := db.DB.Delete(&models.Admin{}, "email = ?", email)
	if res.Error != nil {
		return false, apperrors.Storage("delete admin", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *DBAdminRepo) EffectiveMaxRequests(adminID string) (int, error) {
	var setting models.AdminSetting
	err := db.DB.First(&setting, "admin_id = ? AND key = ?", adminID, models.SettingMaxRequests).Error
	if err == nil {
		if n, convErr := strconv.Atoi(setting.Value); convErr == nil && n >= 0 {
			return n, nil
		}
		return r.GlobalMaxRequests()
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.GlobalMaxRequests()
	}
	return 0, apperrors.Storage("load admin setting", err)
}

func (r *DBAdminRepo) SetMaxRequests(adminID string, max int) error {
	setting := models.AdminSetting{AdminID: adminID, Key: models.SettingMaxRequests, Value: strconv.Itoa(max)}
	err := db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "admin_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
	if err != nil {
		return apperrors.Storage("set admin max requests", err)
	}
	return nil
}

func (r *DBAdminRepo) GlobalMaxRequests() (int, error) {
	var setting models.AppSetting
	err := db.DB.First(&setting, "key = ?", models.SettingMaxRequests).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return config.DefaultMaxRequests, nil
	}
	if err != nil {
		return 0, apperrors.Storage("load global setting", err)
	}
	if n, convErr := strconv.Atoi(setting.Value); convErr == nil && n >= 0 {
		return n, nil
	}
	return config.DefaultMaxRequests, nil
}

func (r *DBAdminRepo) SetGlobalMaxRequests(max int) error {
	setting := models.AppSetting{Key: models.SettingMaxRequests, Value: strconv.Itoa(max)}
	err := db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
	if err != nil {
		return apperrors.Storage("set global max requests", err)
	}
	return nil
}

func (r *DBAdminRepo) ProgressAll(completedStatuses []string) ([]AdminProgress, error) {
	admins, err := r.ListAdmins()
	if err != nil {
		return nil, err
	}

	var rows []struct {
		AdminID   string
		Total     int64
		Completed int64
	}
	err = db.DB.Model(&models.RequestAssignment{}).
		Select("request_assignments.admin_id, COUNT(*) AS total, COUNT(*) FILTER (WHERE r.status IN ?) AS completed", completedStatuses).
		Joins("LEFT JOIN requests r ON r.request_id = request_assignments.request_id").
		Group("request_assignments.admin_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Storage("aggregate progress", err)
	}
	byAdmin := make(map[string]struct{ total, completed int64 }, len(rows))
	for _, row := range rows {
		byAdmin[row.AdminID] = struct{ total, completed int64 }{row.Total, row.Completed}
	}

	out := make([]AdminProgress, 0, len(admins))
	for _, admin := range admins {
		max, err := r.EffectiveMaxRequests(admin.Email)
		if err != nil {
			return nil, err
		}
		agg := byAdmin[admin.Email]
		out = append(out, AdminProgress{
			AdminID:     admin.Email,
			MaxRequests: max,
			Total:       agg.total,
			Completed:   agg.completed,
		})
	}
	return out, nil
}
