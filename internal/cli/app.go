package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"banco-ledger/internal/config"
	"banco-ledger/internal/database"
	apperrors "banco-ledger/internal/errors"
	"banco-ledger/internal/models"
	"banco-ledger/internal/repositories"
	"banco-ledger/internal/services"
	"banco-ledger/internal/storage"

	"go.uber.org/multierr"
)

// app holds everything one command invocation needs. It is opened before the
// command runs and closed after it, which saves the snapshot.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	events    services.LedgerLoggerInterface
	metrics   *services.PrometheusMetrics
	store     repositories.LedgerStoreInterface
	snapshots *storage.SnapshotStore
	audit     repositories.AuditLogRepositoryInterface
	db        *database.DB
	ledger    services.LedgerServiceInterface
	loans     services.LoanServiceInterface
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}
	if cfg.Log.Format == "json" || cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func openApp(ctx context.Context, flags *globalFlags, stderr io.Writer, clock services.Clock) (*app, error) {
	if err := config.LoadEnvFile(flags.envFile); err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flags.file != "" {
		cfg.Ledger.SnapshotPath = flags.file
	}

	logger := newLogger(cfg, stderr)
	a := &app{
		cfg:       cfg,
		logger:    logger,
		events:    services.NewLedgerLogger(logger),
		metrics:   services.NewPrometheusMetrics(nil),
		store:     repositories.NewLedgerStore(cfg.Ledger.IDBase, cfg.Ledger.MaxAccounts),
		snapshots: storage.NewSnapshotStore(cfg.Ledger.SnapshotPath),
		audit:     repositories.NewNoopAuditLogRepository(),
	}

	if cfg.Audit.Enabled {
		db, err := database.Initialize(&cfg.Audit, logger)
		if err != nil {
			logger.Warn("audit trail unavailable, continuing without it", slog.String("error", err.Error()))
		} else {
			a.db = db
			a.audit = services.NewGuardedAuditLogRepository(
				repositories.NewAuditLogRepository(db.DB),
				services.NewCircuitBreaker(services.NewCircuitBreakerConfig(cfg.Audit), nil),
				a.metrics,
			)
		}
	}

	if err := a.load(ctx, stderr); err != nil {
		if a.db != nil {
			_ = a.db.Close()
		}
		return nil, err
	}

	engine := services.NewInterestEngine(services.NewInterestPolicy(cfg.Interest))
	a.ledger = services.NewLedgerService(a.store, a.audit, engine, a.events, a.metrics, clock)
	a.loans = services.NewLoanService(a.ledger, a.events, a.metrics)

	return a, nil
}

// load restores the table from the snapshot file. A corrupt file is reported
// on stderr and the ledger starts empty; a file that cannot be read stops the
// command before anything is saved over it.
func (a *app) load(ctx context.Context, stderr io.Writer) error {
	start := time.Now()
	path := a.snapshots.Path()

	snapshot, report, err := a.snapshots.Load()
	if err != nil {
		a.events.LogSnapshotLoadFailed(ctx, path, err)
		return err
	}
	if report.Warning != nil {
		a.warn(ctx, stderr, report.Warning)
		a.events.LogSnapshotRecovered(ctx, path, report.BackupPath, report.Warning)
	}

	if err := a.store.Restore(snapshot); err != nil {
		a.warn(ctx, stderr, err)
		a.events.LogSnapshotRecovered(ctx, path, "", err)
		_ = a.store.Restore(models.Snapshot{NextID: snapshot.NextID})
	}

	elapsed := time.Since(start)
	a.metrics.RecordProcessingTime(services.MetricSnapshotLoad, elapsed)
	a.metrics.RecordGauge(services.MetricAccountsTotal, float64(a.store.Count()), nil)
	a.events.LogSnapshotLoaded(ctx, path, a.store.Count(), a.store.NextID(), elapsed.Milliseconds())
	return nil
}

func (a *app) warn(ctx context.Context, stderr io.Writer, err error) {
	response := apperrors.FromError(err, services.CorrelationID(ctx))
	fmt.Fprintf(stderr, "warning: %s\n", response.String())
}

// close saves the snapshot, exports metrics and releases the audit database.
// A save failure is added to the command's own error.
func (a *app) close(ctx context.Context, err error) error {
	start := time.Now()
	path := a.snapshots.Path()

	if saveErr := a.snapshots.Save(a.store.Snapshot()); saveErr != nil {
		a.events.LogSnapshotSaveFailed(ctx, path, saveErr)
		err = multierr.Append(err, saveErr)
	} else {
		elapsed := time.Since(start)
		a.metrics.RecordProcessingTime(services.MetricSnapshotSave, elapsed)
		a.events.LogSnapshotSaved(ctx, path, a.store.Count(), elapsed.Milliseconds())
	}

	if textfile := a.cfg.Metrics.TextfilePath; textfile != "" {
		if metricsErr := a.metrics.WriteTextfile(textfile); metricsErr != nil {
			a.logger.Warn("failed to write metrics textfile",
				slog.String("path", textfile),
				slog.String("error", metricsErr.Error()))
		}
	}

	if a.db != nil && a.cfg.Audit.Retention > 0 {
		pruned, pruneErr := a.audit.DeleteOlderThan(a.cfg.Audit.Retention)
		if pruneErr != nil {
			a.logger.Warn("failed to prune audit trail", slog.String("error", pruneErr.Error()))
		} else if pruned > 0 {
			a.logger.Info("pruned audit trail",
				slog.Int64("deleted", pruned),
				slog.Duration("retention", a.cfg.Audit.Retention))
		}
	}

	if a.db != nil {
		if closeErr := a.db.Close(); closeErr != nil {
			a.logger.Warn("failed to close audit database", slog.String("error", closeErr.Error()))
		}
	}

	return err
}
