package repositories

import (
	"time"

	"banco-ledger/internal/models"
)

// LedgerStoreInterface defines the contract for the in-memory account table
type LedgerStoreInterface interface {
	Create(name, secret string, now time.Time) (*models.Account, error)
	GetByID(id int64) (*models.Account, error)
	All() []*models.Account
	Count() int
	NextID() int64
	Snapshot() models.Snapshot
	Restore(snapshot models.Snapshot) error
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	ListByAccount(accountID int64, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteOlderThan(duration time.Duration) (int64, error)
}
