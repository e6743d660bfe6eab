package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics_Counters(t *testing.T) {
	m := NewPrometheusMetrics(prometheus.NewRegistry())

	m.IncrementCounter(MetricOperation, map[string]string{"operation": OpDeposit, "status": StatusSuccess})
	m.IncrementCounter(MetricOperation, map[string]string{"operation": OpDeposit})
	m.IncrementCounter(MetricOperation, map[string]string{"operation": OpWithdraw, "status": StatusRejected})
	m.IncrementCounter(MetricOperation, map[string]string{})
	m.IncrementCounter(MetricInterestApplied, map[string]string{"kind": InterestKindLoan})
	m.IncrementCounter("unknown", nil)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.operationsTotal.WithLabelValues(OpDeposit, StatusSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.operationsTotal.WithLabelValues(OpWithdraw, StatusRejected)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.interestApplications.WithLabelValues(InterestKindLoan)))
}

func TestPrometheusMetrics_GaugesAndDurations(t *testing.T) {
	m := NewPrometheusMetrics(nil)

	m.RecordGauge(MetricAccountsTotal, 3, nil)
	m.RecordGauge(MetricLoanOutstanding, 2500.5, nil)
	m.RecordProcessingTime(MetricSnapshotSave, 4*time.Millisecond)
	m.RecordProcessingTime(MetricSnapshotLoad, 2*time.Millisecond)

	assert.Equal(t, float64(3), testutil.ToFloat64(m.accountsTotal))
	assert.Equal(t, 2500.5, testutil.ToFloat64(m.loanOutstanding))
	assert.Equal(t, 2, testutil.CollectAndCount(m.snapshotDuration))
}

func TestPrometheusMetrics_WriteTextfile(t *testing.T) {
	m := NewPrometheusMetrics(nil)
	m.IncrementCounter(MetricOperation, map[string]string{"operation": OpCreate, "status": StatusSuccess})
	m.RecordGauge(MetricAccountsTotal, 1, nil)

	path := filepath.Join(t.TempDir(), "ledger.prom")
	require.NoError(t, m.WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `ledger_operations_total{operation="create",status="success"} 1`)
	assert.Contains(t, string(content), "ledger_accounts_total 1")

	err = testutil.GatherAndCompare(m.Registry(), strings.NewReader(`
# HELP ledger_accounts_total Current number of accounts in the ledger
# TYPE ledger_accounts_total gauge
ledger_accounts_total 1
`), "ledger_accounts_total")
	assert.NoError(t, err)
}

func TestNoopMetrics(t *testing.T) {
	m := NewNoopMetrics()
	assert.NotPanics(t, func() {
		m.IncrementCounter(MetricOperation, nil)
		m.RecordProcessingTime(MetricSnapshotSave, time.Second)
		m.RecordGauge(MetricAccountsTotal, 1, nil)
	})
}
