package repository

import (
	"github.com/yukikurage/hr-management-api/internal/models"
	"gorm.io/gorm"
)

// GormAuditLogRepository is a GORM implementation of AuditLogRepository
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new AuditLogRepository
func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Append writes one audit entry
func (r *GormAuditLogRepository) Append(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

// ListRecent returns the most recent entries for an organisation,
// newest-first, joined with the acting user's display name. The join is a
// LEFT JOIN so entries survive their user being removed.
func (r *GormAuditLogRepository) ListRecent(organisationID uint64, limit int) ([]AuditLogEntry, error) {
	var entries []AuditLogEntry
	err := r.db.Model(&models.AuditLog{}).
		Select("audit_logs.*, users.name AS user_name").
		Joins("LEFT JOIN users ON users.id = audit_logs.user_id").
		Where("audit_logs.organisation_id = ?", organisationID).
		Order("audit_logs.timestamp DESC, audit_logs.id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
