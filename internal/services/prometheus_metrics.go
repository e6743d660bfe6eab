package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by MetricsRecorderInterface implementations.
const (
	MetricOperation       = "ledger.operation"
	MetricInterestApplied = "interest.applied"
	MetricAccountsTotal   = "accounts_total"
	MetricLoanOutstanding = "loan_outstanding"
	MetricSnapshotLoad    = "snapshot.load"
	MetricSnapshotSave    = "snapshot.save"
	MetricAuditSkipped    = "audit.skipped"
	StatusSuccess         = "success"
	StatusRejected        = "rejected"
	InterestKindSavings   = "savings"
	InterestKindLoan      = "loan"
)

type PrometheusMetrics struct {
	registry             *prometheus.Registry
	operationsTotal      *prometheus.CounterVec
	interestApplications *prometheus.CounterVec
	snapshotDuration     *prometheus.HistogramVec
	accountsTotal        prometheus.Gauge
	loanOutstanding      prometheus.Gauge
	auditSkipped         prometheus.Counter
}

// NewPrometheusMetrics registers the ledger collectors on reg, or on a fresh
// registry when reg is nil.
func NewPrometheusMetrics(reg *prometheus.Registry) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		registry: reg,
		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_operations_total",
				Help: "Total number of ledger operations by outcome",
			},
			[]string{"operation", "status"},
		),
		interestApplications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_interest_applications_total",
				Help: "Total number of interest accruals applied",
			},
			[]string{"kind"},
		),
		snapshotDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_snapshot_duration_milliseconds",
				Help:    "Snapshot load and save duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"phase"},
		),
		accountsTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_accounts_total",
				Help: "Current number of accounts in the ledger",
			},
		),
		loanOutstanding: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_loan_outstanding",
				Help: "Sum of outstanding loan balances",
			},
		),
		auditSkipped: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_audit_writes_skipped_total",
				Help: "Audit entries dropped while the audit circuit breaker was open",
			},
		),
	}
}

func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile dumps the registry in the node exporter textfile format.
func (m *PrometheusMetrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricOperation:
		if operation := tags["operation"]; operation != "" {
			status := tags["status"]
			if status == "" {
				status = StatusSuccess
			}
			m.operationsTotal.WithLabelValues(operation, status).Inc()
		}
	case MetricInterestApplied:
		if kind := tags["kind"]; kind != "" {
			m.interestApplications.WithLabelValues(kind).Inc()
		}
	case MetricAuditSkipped:
		m.auditSkipped.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricSnapshotLoad:
		m.snapshotDuration.WithLabelValues("load").Observe(float64(duration.Milliseconds()))
	case MetricSnapshotSave:
		m.snapshotDuration.WithLabelValues("save").Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricAccountsTotal:
		m.accountsTotal.Set(value)
	case MetricLoanOutstanding:
		m.loanOutstanding.Set(value)
	}
}

type noopMetrics struct{}

// NewNoopMetrics returns a recorder that drops everything.
func NewNoopMetrics() MetricsRecorderInterface {
	return noopMetrics{}
}

func (noopMetrics) IncrementCounter(string, map[string]string)     {}
func (noopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}
