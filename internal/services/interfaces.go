package services

import (
	"context"
	"time"

	"banco-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// LedgerServiceInterface defines account creation, authentication and the
// balance mutators. Mutators receive the live record returned by GetAccount,
// Authenticate or Login and change it in place.
type LedgerServiceInterface interface {
	CreateAccount(ctx context.Context, name, secret string) (*models.Account, error)
	GetAccount(id int64) (*models.Account, error)
	ListAccounts() []*models.Account
	Authenticate(ctx context.Context, id int64, secret string) (*models.Account, error)
	Login(ctx context.Context, id int64, secret string) (*models.Account, error)
	Summary(account *models.Account) models.Summary

	DepositWallet(ctx context.Context, account *models.Account, amount decimal.Decimal) error
	WithdrawWallet(ctx context.Context, account *models.Account, amount decimal.Decimal) error
	TransferWalletToSavings(ctx context.Context, account *models.Account, amount decimal.Decimal) error
	TransferSavingsToWallet(ctx context.Context, account *models.Account, amount decimal.Decimal) error

	AccrueSavings(ctx context.Context, account *models.Account) models.Accrual
	AccrueLoan(ctx context.Context, account *models.Account) models.Accrual
	DisburseLoan(ctx context.Context, account *models.Account, amount decimal.Decimal) error
	RepayLoan(ctx context.Context, account *models.Account, amount decimal.Decimal) error
}

// LoanServiceInterface defines the loan lifecycle on top of the ledger
type LoanServiceInterface interface {
	LoanLimit(wallet decimal.Decimal) decimal.Decimal
	Offer(ctx context.Context, account *models.Account) models.LoanOffer
	Request(ctx context.Context, account *models.Account, amount decimal.Decimal) error
	Repay(ctx context.Context, account *models.Account, amount decimal.Decimal) error
}

// LedgerLoggerInterface emits one structured record per domain event
type LedgerLoggerInterface interface {
	LogAccountCreated(ctx context.Context, account *models.Account)
	LogLoginFailed(ctx context.Context, accountID int64, reason string)
	LogBalanceUpdate(ctx context.Context, accountID int64, operation string, amount decimal.Decimal, summary models.Summary)
	LogOperationRejected(ctx context.Context, accountID int64, operation string, amount decimal.Decimal, reason error)
	LogInterestApplied(ctx context.Context, accountID int64, kind string, before decimal.Decimal, accrual models.Accrual)
	LogLoanClosed(ctx context.Context, accountID int64)
	LogAuditFailure(ctx context.Context, action string, accountID int64, err error)
	LogSnapshotLoadFailed(ctx context.Context, path string, err error)
	LogSnapshotLoaded(ctx context.Context, path string, accounts int, nextID int64, durationMs int64)
	LogSnapshotRecovered(ctx context.Context, path, backupPath string, warning error)
	LogSnapshotSaved(ctx context.Context, path string, accounts int, durationMs int64)
	LogSnapshotSaveFailed(ctx context.Context, path string, err error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// Clock returns the current instant; tests substitute a fixed one.
type Clock func() time.Time
