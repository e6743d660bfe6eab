package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"banco-ledger/internal/models"
	"banco-ledger/internal/storage"

	"github.com/stretchr/testify/suite"
)

type CLITestSuite struct {
	suite.Suite
	dir  string
	file string
	now  time.Time
}

func TestCLITestSuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.file = filepath.Join(s.dir, "ledger.txt")
	s.now = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	s.T().Setenv("AUDIT_ENABLED", "false")
	s.T().Setenv("METRICS_TEXTFILE", "")
	s.T().Setenv("LOG_LEVEL", "error")
}

func (s *CLITestSuite) run(args ...string) (string, string, int) {
	var stdout, stderr bytes.Buffer
	args = append(args, "--file", s.file, "--env-file", "")
	code := Run(context.Background(), args, &stdout, &stderr, Options{
		Now: func() time.Time { return s.now },
	})
	return stdout.String(), stderr.String(), code
}

func (s *CLITestSuite) mustRun(args ...string) string {
	stdout, stderr, code := s.run(args...)
	s.Require().Equal(0, code, "stderr: %s", stderr)
	return stdout
}

func (s *CLITestSuite) snapshot() models.Snapshot {
	f, err := os.Open(s.file)
	s.Require().NoError(err)
	defer f.Close()

	snap, err := storage.Decode(f)
	s.Require().NoError(err)
	return snap
}

func (s *CLITestSuite) TestCreateListAndSummary() {
	s.Contains(s.mustRun("create", "--name", "Ana", "--secret", "pw1"), "Account 66671001 created for Ana")
	s.Contains(s.mustRun("create", "--name", "Bruno", "--secret", "pw2"), "Account 66671002 created")

	out := s.mustRun("list")
	s.Contains(out, "66671001  Ana\n")
	s.Contains(out, "66671002  Bruno\n")

	out = s.mustRun("summary", "--id", "66671001", "--secret", "pw1")
	s.Contains(out, "Wallet:  0.00")
	s.Contains(out, "Loan:    0.00 (no_loan)")

	snap := s.snapshot()
	s.Equal(2, snap.Len())
	s.Equal(int64(66671003), snap.NextID)
}

func (s *CLITestSuite) TestListEmpty() {
	s.Equal("No accounts\n", s.mustRun("list"))
}

func (s *CLITestSuite) TestEndToEndLoanCycle() {
	s.mustRun("create", "--name", "Carla", "--secret", "pw")
	auth := []string{"--id", "66671001", "--secret", "pw"}

	s.mustRun(append([]string{"deposit", "--amount", "30000"}, auth...)...)
	s.Contains(s.mustRun(append([]string{"loan-limit"}, auth...)...), "Loan limit:  20000.00")

	out := s.mustRun(append([]string{"loan-request", "--amount", "20000"}, auth...)...)
	s.Contains(out, "Wallet:  50000.00")
	s.Contains(out, "Loan:    20000.00 (active)")

	out = s.mustRun(append([]string{"loan-repay", "--amount", "25000"}, auth...)...)
	s.Contains(out, "Wallet:  25000.00")
	s.Contains(out, "Loan:    0.00 (no_loan)")

	account := s.snapshot().Accounts[0]
	s.Nil(account.LoanAnchor)
	s.True(account.LoanBalance.IsZero())
	s.NoError(account.Validate())
}

func (s *CLITestSuite) TestSavingsInterestAccruesAcrossRuns() {
	s.mustRun("create", "--name", "Ana", "--secret", "pw")
	auth := []string{"--id", "66671001", "--secret", "pw"}

	s.mustRun(append([]string{"deposit", "--amount", "1000"}, auth...)...)
	s.mustRun(append([]string{"save-to-savings", "--amount", "1000"}, auth...)...)

	s.now = s.now.AddDate(0, 0, 60)
	s.Contains(s.mustRun(append([]string{"summary"}, auth...)...), "Savings: 1081.60")

	out := s.mustRun(append([]string{"withdraw-savings", "--amount", "81.60"}, auth...)...)
	s.Contains(out, "Wallet:  81.60")
	s.Contains(out, "Savings: 1000.00")
}

func (s *CLITestSuite) TestErrorCodes() {
	s.mustRun("create", "--name", "Ana", "--secret", "pw")
	s.mustRun("deposit", "--amount", "100", "--id", "66671001", "--secret", "pw")

	tests := []struct {
		name string
		args []string
		code string
	}{
		{"wrong secret", []string{"summary", "--id", "66671001", "--secret", "nope"}, "[AUTH_001]"},
		{"unknown account", []string{"summary", "--id", "1", "--secret", "pw"}, "[LEDGER_003]"},
		{"overdraw", []string{"withdraw", "--amount", "100.01", "--id", "66671001", "--secret", "pw"}, "[LEDGER_002]"},
		{"not a number", []string{"deposit", "--amount", "ten", "--id", "66671001", "--secret", "pw"}, "[LEDGER_001]"},
		{"zero amount", []string{"deposit", "--amount", "0", "--id", "66671001", "--secret", "pw"}, "[LEDGER_001]"},
		{"not eligible", []string{"loan-request", "--amount", "10", "--id", "66671001", "--secret", "pw"}, "[LOAN_001]"},
		{"missing flag", []string{"deposit", "--id", "66671001", "--secret", "pw"}, "[VALIDATION_001]"},
		{"unknown flag", []string{"list", "--verbose"}, "[VALIDATION_001]"},
		{"bad name", []string{"create", "--name", "A, B", "--secret", "pw"}, "[VALIDATION_001]"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			stdout, stderr, code := s.run(tt.args...)
			s.Equal(1, code)
			s.Empty(stdout)
			s.Contains(stderr, tt.code)
		})
	}

	account := s.snapshot().Accounts[0]
	s.Equal("100", account.Wallet.String())
}

func (s *CLITestSuite) TestCorruptSnapshotStartsEmpty() {
	s.Require().NoError(os.WriteFile(s.file, []byte("2\n66671005\ngarbage\n"), 0o644))

	stdout, stderr, code := s.run("list")
	s.Equal(0, code)
	s.Equal("No accounts\n", stdout)
	s.Contains(stderr, "warning: [STORAGE_001]")

	backup, err := os.ReadFile(s.file + storage.CorruptSuffix)
	s.Require().NoError(err)
	s.Equal("2\n66671005\ngarbage\n", string(backup))

	s.Contains(s.mustRun("create", "--name", "Ana", "--secret", "pw"), "Account 66671005 created")
}

func (s *CLITestSuite) TestUnreadableSnapshotIsNotOverwritten() {
	if os.Geteuid() == 0 {
		s.T().Skip("file permissions do not apply to root")
	}
	s.mustRun("create", "--name", "Ana", "--secret", "pw")
	s.Require().NoError(os.Chmod(s.file, 0))
	s.T().Cleanup(func() { _ = os.Chmod(s.file, 0o644) })

	_, stderr, code := s.run("list")
	s.Equal(1, code)
	s.Contains(stderr, "[STORAGE_002]")

	s.Require().NoError(os.Chmod(s.file, 0o644))
	snap := s.snapshot()
	s.Require().Equal(1, snap.Len())
	s.Equal("Ana", snap.Accounts[0].Name)

	_, statErr := os.Stat(s.file + storage.CorruptSuffix)
	s.True(os.IsNotExist(statErr))
}

func (s *CLITestSuite) TestSnapshotPathIsDirectory() {
	s.Require().NoError(os.Mkdir(s.file, 0o755))

	_, stderr, code := s.run("create", "--name", "Ana", "--secret", "pw")
	s.Equal(1, code)
	s.Contains(stderr, "[STORAGE_002]")
	s.NotContains(stderr, "Account")

	entries, err := os.ReadDir(s.dir)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.True(entries[0].IsDir())
}

func (s *CLITestSuite) TestHistoryWithAuditTrail() {
	s.T().Setenv("AUDIT_ENABLED", "true")
	s.T().Setenv("AUDIT_DB_DRIVER", "sqlite")
	s.T().Setenv("AUDIT_DB_DSN", filepath.Join(s.dir, "audit.db"))

	s.mustRun("create", "--name", "Ana", "--secret", "pw")
	s.mustRun("deposit", "--amount", "50", "--id", "66671001", "--secret", "pw")

	out := s.mustRun("history", "--id", "66671001", "--secret", "pw")
	s.Contains(out, "wallet_deposit")
	s.Contains(out, "account_created")
	s.Contains(out, "2 of 2 entries")
}

func (s *CLITestSuite) TestAuditRetentionPrunes() {
	s.T().Setenv("AUDIT_ENABLED", "true")
	s.T().Setenv("AUDIT_DB_DRIVER", "sqlite")
	s.T().Setenv("AUDIT_DB_DSN", filepath.Join(s.dir, "audit.db"))
	s.T().Setenv("AUDIT_RETENTION", "1ns")

	s.mustRun("create", "--name", "Ana", "--secret", "pw")
	s.mustRun("deposit", "--amount", "50", "--id", "66671001", "--secret", "pw")

	s.T().Setenv("AUDIT_RETENTION", "0")
	s.Contains(s.mustRun("history", "--id", "66671001", "--secret", "pw"), "0 of 0 entries")
}

func (s *CLITestSuite) TestHistoryDisabled() {
	s.mustRun("create", "--name", "Ana", "--secret", "pw")
	s.Contains(s.mustRun("history", "--id", "66671001", "--secret", "pw"), "Audit trail is disabled")
}

func (s *CLITestSuite) TestMetricsTextfile() {
	path := filepath.Join(s.dir, "ledger.prom")
	s.T().Setenv("METRICS_TEXTFILE", path)

	s.mustRun("create", "--name", "Ana", "--secret", "pw")

	content, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Contains(string(content), `ledger_operations_total{operation="create",status="success"} 1`)
	s.Contains(string(content), "ledger_accounts_total 1")
}

func (s *CLITestSuite) TestSaveFailureIsReported() {
	s.file = filepath.Join(s.dir, "missing", "ledger.txt")

	_, stderr, code := s.run("create", "--name", "Ana", "--secret", "pw")
	s.Equal(1, code)
	s.Contains(stderr, "[STORAGE_002]")
}

func (s *CLITestSuite) TestDemoSeedsLedger() {
	out := s.mustRun("demo", "--count", "3", "--seed", "5")
	s.Contains(out, "66671001  ")
	s.Contains(out, "66671003  ")

	snap := s.snapshot()
	s.Equal(3, snap.Len())
	for _, account := range snap.Accounts {
		s.NoError(account.Validate())
	}
}
