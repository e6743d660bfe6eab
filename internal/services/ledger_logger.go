package services

import (
	"context"
	"log/slog"
	"time"

	"banco-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type correlationIDKey struct{}

// WithCorrelationID tags ctx with the id every log record and audit entry of
// one invocation carries. An empty id generates a fresh one.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationID returns the id stored by WithCorrelationID, or "".
func CorrelationID(ctx context.Context) string {
	return getCorrelationID(ctx)
}

type LedgerLogger struct {
	logger *slog.Logger
}

func NewLedgerLogger(logger *slog.Logger) LedgerLoggerInterface {
	return &LedgerLogger{
		logger: logger,
	}
}

func (ll *LedgerLogger) LogAccountCreated(ctx context.Context, account *models.Account) {
	ll.logger.InfoContext(ctx, "account created",
		slog.String("event_type", "account_created"),
		slog.Int64("account_id", account.ID),
		slog.String("name", account.Name),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogLoginFailed(ctx context.Context, accountID int64, reason string) {
	ll.logger.WarnContext(ctx, "login failed",
		slog.String("event_type", "login_failed"),
		slog.Int64("account_id", accountID),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogBalanceUpdate(ctx context.Context, accountID int64, operation string, amount decimal.Decimal, summary models.Summary) {
	ll.logger.InfoContext(ctx, "balance update",
		slog.String("event_type", "balance_update"),
		slog.Int64("account_id", accountID),
		slog.String("operation", operation),
		slog.String("amount", amount.String()),
		slog.String("wallet", summary.Wallet.String()),
		slog.String("savings", summary.Savings.String()),
		slog.String("loan_balance", summary.LoanBalance.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogOperationRejected(ctx context.Context, accountID int64, operation string, amount decimal.Decimal, reason error) {
	ll.logger.InfoContext(ctx, "operation rejected",
		slog.String("event_type", "operation_rejected"),
		slog.Int64("account_id", accountID),
		slog.String("operation", operation),
		slog.String("amount", amount.String()),
		slog.String("error", reason.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogInterestApplied(ctx context.Context, accountID int64, kind string, before decimal.Decimal, accrual models.Accrual) {
	ll.logger.InfoContext(ctx, "interest applied",
		slog.String("event_type", "interest_applied"),
		slog.Int64("account_id", accountID),
		slog.String("kind", kind),
		slog.String("old_balance", before.String()),
		slog.String("new_balance", accrual.Balance.String()),
		slog.Int64("periods", accrual.Periods),
		slog.String("rate", accrual.Rate.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogLoanClosed(ctx context.Context, accountID int64) {
	ll.logger.InfoContext(ctx, "loan closed",
		slog.String("event_type", "loan_closed"),
		slog.Int64("account_id", accountID),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogAuditFailure(ctx context.Context, action string, accountID int64, err error) {
	ll.logger.ErrorContext(ctx, "failed to record audit entry",
		slog.String("event_type", "audit_failure"),
		slog.String("action", action),
		slog.Int64("account_id", accountID),
		slog.String("error", err.Error()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogSnapshotLoaded(ctx context.Context, path string, accounts int, nextID int64, durationMs int64) {
	ll.logger.DebugContext(ctx, "snapshot loaded",
		slog.String("event_type", "snapshot_loaded"),
		slog.String("path", path),
		slog.Int("accounts", accounts),
		slog.Int64("next_id", nextID),
		slog.Int64("duration_ms", durationMs),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogSnapshotRecovered(ctx context.Context, path, backupPath string, warning error) {
	attrs := []slog.Attr{
		slog.String("event_type", "snapshot_recovered"),
		slog.String("path", path),
		slog.String("warning", warning.Error()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	}
	if backupPath != "" {
		attrs = append(attrs, slog.String("backup_path", backupPath))
	}

	ll.logger.LogAttrs(ctx, slog.LevelWarn, "snapshot unreadable, starting empty", attrs...)
}

func (ll *LedgerLogger) LogSnapshotSaved(ctx context.Context, path string, accounts int, durationMs int64) {
	ll.logger.DebugContext(ctx, "snapshot saved",
		slog.String("event_type", "snapshot_saved"),
		slog.String("path", path),
		slog.Int("accounts", accounts),
		slog.Int64("duration_ms", durationMs),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogSnapshotLoadFailed(ctx context.Context, path string, err error) {
	ll.logger.ErrorContext(ctx, "snapshot load failed",
		slog.String("event_type", "snapshot_load_failed"),
		slog.String("path", path),
		slog.String("error", err.Error()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogSnapshotSaveFailed(ctx context.Context, path string, err error) {
	ll.logger.ErrorContext(ctx, "snapshot save failed",
		slog.String("event_type", "snapshot_save_failed"),
		slog.String("path", path),
		slog.String("error", err.Error()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return correlationID
	}

	return ""
}
