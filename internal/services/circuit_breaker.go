package services

import (
	"errors"
	"sync"
	"time"

	"banco-ledger/internal/config"
	"banco-ledger/internal/models"
	"banco-ledger/internal/repositories"
)

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
)

// CircuitState is the position of a CircuitBreaker.
type CircuitState int

const (
	StateClosed CircuitState = iota
	StateOpen
	StateHalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     3,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 1,
	}
}

// NewCircuitBreakerConfig reads the audit breaker settings; zero values fall
// back to the defaults.
func NewCircuitBreakerConfig(cfg config.AuditConfig) CircuitBreakerConfig {
	cbc := DefaultCircuitBreakerConfig()
	if cfg.BreakerMaxFailures > 0 {
		cbc.MaxFailures = cfg.BreakerMaxFailures
	}
	if cfg.BreakerResetTimeout > 0 {
		cbc.ResetTimeout = cfg.BreakerResetTimeout
	}
	return cbc
}

// CircuitBreaker opens after MaxFailures consecutive failures and lets a
// trial call through once ResetTimeout has passed since the last failure.
type CircuitBreaker struct {
	mu                sync.RWMutex
	config            CircuitBreakerConfig
	clock             Clock
	state             CircuitState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig, clock Clock) *CircuitBreaker {
	if clock == nil {
		clock = time.Now
	}
	return &CircuitBreaker{
		config: config,
		clock:  clock,
		state:  StateClosed,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && cb.clock().Sub(cb.lastFailureTime) > cb.config.ResetTimeout {
		cb.state = StateHalfOpen
		cb.halfOpenSuccesses = 0
		return false
	}

	return cb.state == StateOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.state = StateClosed
			cb.failures = 0
			cb.halfOpenSuccesses = 0
		}
	case StateClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = cb.clock()

	switch cb.state {
	case StateHalfOpen:
		cb.state = StateOpen
		cb.halfOpenSuccesses = 0
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.state = StateOpen
		}
	}
}

func (cb *CircuitBreaker) State() CircuitState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

func (cb *CircuitBreaker) FailureCount() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failures
}

// guardedAuditLogRepository drops audit writes while its breaker is open.
// Reads go straight to the wrapped repository.
type guardedAuditLogRepository struct {
	repositories.AuditLogRepositoryInterface
	breaker *CircuitBreaker
	metrics MetricsRecorderInterface
}

func NewGuardedAuditLogRepository(
	repo repositories.AuditLogRepositoryInterface,
	breaker *CircuitBreaker,
	metrics MetricsRecorderInterface,
) repositories.AuditLogRepositoryInterface {
	return &guardedAuditLogRepository{
		AuditLogRepositoryInterface: repo,
		breaker:                     breaker,
		metrics:                     metrics,
	}
}

func (r *guardedAuditLogRepository) Create(log *models.AuditLog) error {
	if r.breaker.IsOpen() {
		r.metrics.IncrementCounter(MetricAuditSkipped, map[string]string{"action": log.Action})
		return ErrCircuitBreakerOpen
	}

	if err := r.AuditLogRepositoryInterface.Create(log); err != nil {
		r.breaker.RecordFailure()
		return err
	}

	r.breaker.RecordSuccess()
	return nil
}
