package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"banco-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogger() (LedgerLoggerInterface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewLedgerLogger(slog.New(handler)), buf
}

func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var records []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		record := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		records = append(records, record)
	}
	return records
}

func TestWithCorrelationID(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "abc")
	assert.Equal(t, "abc", CorrelationID(ctx))

	generated := CorrelationID(WithCorrelationID(context.Background(), ""))
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	assert.Equal(t, "", CorrelationID(context.Background()))
}

func TestLedgerLogger_BalanceUpdate(t *testing.T) {
	logger, buf := captureLogger()
	ctx := WithCorrelationID(context.Background(), "run-7")

	account := models.NewAccount(models.DefaultIDBase, "Ana", "pw", anchorTime)
	account.Wallet = decimal.RequireFromString("150.5")

	logger.LogBalanceUpdate(ctx, account.ID, OpDeposit, decimal.RequireFromString("150.5"), account.Summary())

	records := decodeRecords(t, buf)
	require.Len(t, records, 1)
	assert.Equal(t, "balance update", records[0]["msg"])
	assert.Equal(t, "balance_update", records[0]["event_type"])
	assert.Equal(t, float64(models.DefaultIDBase), records[0]["account_id"])
	assert.Equal(t, "150.5", records[0]["amount"])
	assert.Equal(t, "150.5", records[0]["wallet"])
	assert.Equal(t, "run-7", records[0]["correlation_id"])
}

func TestLedgerLogger_NeverLogsSecret(t *testing.T) {
	logger, buf := captureLogger()
	account := models.NewAccount(models.DefaultIDBase, "Ana", "hunter2", anchorTime)

	logger.LogAccountCreated(context.Background(), account)
	logger.LogLoginFailed(context.Background(), account.ID, "incorrect secret")

	assert.NotContains(t, buf.String(), "hunter2")
	records := decodeRecords(t, buf)
	require.Len(t, records, 2)
	assert.Equal(t, "WARN", records[1]["level"])
}

func TestLedgerLogger_SnapshotRecovered(t *testing.T) {
	logger, buf := captureLogger()

	logger.LogSnapshotRecovered(context.Background(), "ledger.txt", "ledger.txt.corrupt", errors.New("line 3: bad amount"))
	logger.LogSnapshotRecovered(context.Background(), "ledger.txt", "", errors.New("read failed"))

	records := decodeRecords(t, buf)
	require.Len(t, records, 2)
	assert.Equal(t, "ledger.txt.corrupt", records[0]["backup_path"])
	assert.Equal(t, "line 3: bad amount", records[0]["warning"])
	_, hasBackup := records[1]["backup_path"]
	assert.False(t, hasBackup)
}

func TestLedgerLogger_SnapshotLoadFailed(t *testing.T) {
	logger, buf := captureLogger()

	logger.LogSnapshotLoadFailed(context.Background(), "ledger.txt", errors.New("permission denied"))

	records := decodeRecords(t, buf)
	require.Len(t, records, 1)
	assert.Equal(t, "ERROR", records[0]["level"])
	assert.Equal(t, "snapshot_load_failed", records[0]["event_type"])
	assert.Equal(t, "permission denied", records[0]["error"])
}

func TestLedgerLogger_InterestApplied(t *testing.T) {
	logger, buf := captureLogger()

	logger.LogInterestApplied(context.Background(), 1, InterestKindSavings, decimal.NewFromInt(1000), models.Accrual{
		Balance: decimal.RequireFromString("1081.6"),
		Periods: 2,
		Rate:    decimal.RequireFromString("0.04"),
		Applied: true,
	})

	records := decodeRecords(t, buf)
	require.Len(t, records, 1)
	assert.Equal(t, "1000", records[0]["old_balance"])
	assert.Equal(t, "1081.6", records[0]["new_balance"])
	assert.Equal(t, float64(2), records[0]["periods"])
}
