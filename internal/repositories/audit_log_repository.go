package repositories

import (
	"errors"
	"fmt"
	"time"

	"banco-ledger/internal/models"

	"gorm.io/gorm"
)

// AuditLogRepository handles database operations for audit logs
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) AuditLogRepositoryInterface {
	return &AuditLogRepository{
		db: db,
	}
}

// Create creates a new audit log entry
func (r *AuditLogRepository) Create(log *models.AuditLog) error {
	if log == nil {
		return errors.New("audit log cannot be nil")
	}

	if err := r.db.Create(log).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// ListByAccount retrieves an account's trail, newest first
func (r *AuditLogRepository) ListByAccount(accountID int64, offset, limit int) ([]*models.AuditLog, int64, error) {
	if limit <= 0 || limit > 1000 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var logs []*models.AuditLog
	var total int64

	query := r.db.Model(&models.AuditLog{}).Where("account_id = ?", accountID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get audit logs for account: %w", err)
	}

	return logs, total, nil
}

// DeleteOlderThan removes audit logs older than the specified duration
func (r *AuditLogRepository) DeleteOlderThan(duration time.Duration) (int64, error) {
	cutoffTime := time.Now().UTC().Add(-duration)

	result := r.db.Where("created_at < ?", cutoffTime).Delete(&models.AuditLog{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete old audit logs: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// noopAuditLogRepository is used when the audit trail is disabled.
type noopAuditLogRepository struct{}

// NewNoopAuditLogRepository returns a repository that stores nothing
func NewNoopAuditLogRepository() AuditLogRepositoryInterface {
	return noopAuditLogRepository{}
}

func (noopAuditLogRepository) Create(*models.AuditLog) error { return nil }

func (noopAuditLogRepository) ListByAccount(int64, int, int) ([]*models.AuditLog, int64, error) {
	return nil, 0, nil
}

func (noopAuditLogRepository) DeleteOlderThan(time.Duration) (int64, error) { return 0, nil }
