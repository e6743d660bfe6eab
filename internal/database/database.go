package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"banco-ledger/internal/config"
	"banco-ledger/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	maxRetries    = 10
	retryInterval = time.Second
)

type DB struct {
	*gorm.DB
	config *config.AuditConfig
}

func dialectorFor(cfg *config.AuditConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.AuditDriverSQLite:
		return sqlite.Open(cfg.DSN), nil
	case config.AuditDriverPostgres:
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported audit database driver %q", cfg.Driver)
	}
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func New(cfg *config.AuditConfig) (*DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// NewFromConn wraps an already opened postgres connection pool.
func NewFromConn(sqlDB *sql.DB, cfg *config.AuditConfig) (*DB, error) {
	gcfg := gormConfig()
	gcfg.DisableAutomaticPing = true

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to wrap connection: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(&models.AuditLog{})
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// WaitForDatabase pings until the server answers or the retries run out.
func (db *DB) WaitForDatabase(log *slog.Logger) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		if err = db.HealthCheck(); err == nil {
			return nil
		}

		log.Warn("audit database not ready",
			slog.Int("attempt", i+1),
			slog.Int("max_attempts", maxRetries),
			slog.String("error", err.Error()))
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("database not ready after %d attempts: %w", maxRetries, err)
}

// Initialize opens the audit database and brings its schema up to date.
// Postgres uses the SQL migrations when AutoMigrate is set; otherwise and for
// sqlite the gorm model migration runs.
func Initialize(cfg *config.AuditConfig, log *slog.Logger) (*DB, error) {
	db, err := New(cfg)
	if err != nil {
		return nil, err
	}

	if err := db.WaitForDatabase(log); err != nil {
		_ = db.Close()
		return nil, err
	}

	if cfg.Driver == config.AuditDriverPostgres && cfg.AutoMigrate {
		sqlDB, err := db.DB.DB()
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := NewMigrationRunner(sqlDB, log).RunMigrations(); err != nil {
			log.Warn("migration runner failed, falling back to model migration", slog.String("error", err.Error()))
		} else {
			return db, nil
		}
	}

	if err := db.AutoMigrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
