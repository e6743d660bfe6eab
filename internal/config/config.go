package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"banco-ledger/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	AuditDriverSQLite   = "sqlite"
	AuditDriverPostgres = "postgres"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Environment string `validate:"oneof=development production testing"`
	Ledger      LedgerConfig
	Interest    InterestConfig
	Audit       AuditConfig
	Metrics     MetricsConfig
	Log         LogConfig
}

type LedgerConfig struct {
	SnapshotPath string `validate:"required"`
	IDBase       int64  `validate:"gt=0"`
	MaxAccounts  int    `validate:"gte=0"`
}

// InterestConfig carries the accrual policy. Rates are fractions (0.04 = 4%).
type InterestConfig struct {
	SavingsRate       decimal.Decimal
	SavingsPeriodDays int `validate:"gt=0"`
	LoanLowRate       decimal.Decimal
	LoanHighRate      decimal.Decimal
	LoanLowAfterDays  int `validate:"gte=0"`
	LoanHighAfterDays int `validate:"gtfield=LoanLowAfterDays"`
}

type AuditConfig struct {
	Enabled             bool
	Driver              string `validate:"oneof=sqlite postgres"`
	DSN                 string `validate:"required_if=Enabled true"`
	AutoMigrate         bool
	MaxConnections      int `validate:"gte=1"`
	MaxIdleConns        int `validate:"gte=0"`
	ConnMaxLifetime     time.Duration
	BreakerMaxFailures  int `validate:"gte=0"`
	BreakerResetTimeout time.Duration

	// Retention prunes older entries after each command; zero keeps everything.
	Retention time.Duration
}

type MetricsConfig struct {
	TextfilePath string
}

type LogConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Format string `validate:"oneof=json text"`
}

// LoadEnvFile merges a .env file into the process environment. Variables that
// are already set win. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func Load() (*Config, error) {
	config := &Config{
		Environment: getEnv("APP_ENV", "development"),
		Ledger: LedgerConfig{
			SnapshotPath: getEnv("LEDGER_SNAPSHOT_PATH", "BCszao.txt"),
			IDBase:       getInt64Env("LEDGER_ID_BASE", models.DefaultIDBase),
			MaxAccounts:  getIntEnv("LEDGER_MAX_ACCOUNTS", 0),
		},
		Interest: InterestConfig{
			SavingsRate:       getDecimalEnv("SAVINGS_RATE", decimal.RequireFromString("0.04")),
			SavingsPeriodDays: getIntEnv("SAVINGS_PERIOD_DAYS", 30),
			LoanLowRate:       getDecimalEnv("LOAN_LOW_RATE", decimal.RequireFromString("0.09")),
			LoanHighRate:      getDecimalEnv("LOAN_HIGH_RATE", decimal.RequireFromString("0.20")),
			LoanLowAfterDays:  getIntEnv("LOAN_LOW_AFTER_DAYS", 30),
			LoanHighAfterDays: getIntEnv("LOAN_HIGH_AFTER_DAYS", 120),
		},
		Audit: AuditConfig{
			Enabled:         getBoolEnv("AUDIT_ENABLED", false),
			Driver:          getEnv("AUDIT_DB_DRIVER", AuditDriverSQLite),
			DSN:             getEnv("AUDIT_DB_DSN", "ledger_audit.db"),
			AutoMigrate:     getBoolEnv("AUDIT_AUTO_MIGRATE", false),
			MaxConnections:  getIntEnv("AUDIT_DB_MAX_CONNECTIONS", 1),
			MaxIdleConns:    getIntEnv("AUDIT_DB_MAX_IDLE_CONNS", 1),
			ConnMaxLifetime: getDurationEnv("AUDIT_DB_CONN_MAX_LIFETIME", time.Hour),

			BreakerMaxFailures:  getIntEnv("AUDIT_BREAKER_MAX_FAILURES", 3),
			BreakerResetTimeout: getDurationEnv("AUDIT_BREAKER_RESET_TIMEOUT", 30*time.Second),
			Retention:           getDurationEnv("AUDIT_RETENTION", 0),
		},
		Metrics: MetricsConfig{
			TextfilePath: getEnv("METRICS_TEXTFILE", ""),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "warn")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks struct tags and the rate invariants the tags cannot express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	rates := map[string]decimal.Decimal{
		"SAVINGS_RATE":   c.Interest.SavingsRate,
		"LOAN_LOW_RATE":  c.Interest.LoanLowRate,
		"LOAN_HIGH_RATE": c.Interest.LoanHighRate,
	}
	for name, rate := range rates {
		if rate.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, name)
		}
	}

	return nil
}

// SlogLevel maps the configured level name onto slog.
func (c *LogConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return defaultValue
}
