package errors

import (
	"errors"
	"fmt"
	"testing"

	"banco-ledger/internal/config"
	"banco-ledger/internal/repositories"
	"banco-ledger/internal/services"
	"banco-ledger/internal/storage"
	"banco-ledger/internal/validation"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Ledger Insufficient Funds",
			code:     LedgerInsufficientFunds,
			expected: "Insufficient balance for this operation",
		},
		{
			name:     "Loan Not Eligible",
			code:     LoanNotEligible,
			expected: "Wallet balance does not qualify for a loan",
		},
		{
			name:     "Auth Invalid Credentials",
			code:     AuthInvalidCredentials,
			expected: "Incorrect account id or secret",
		},
		{
			name:     "Storage Corrupt Snapshot",
			code:     StorageCorruptSnapshot,
			expected: "Snapshot file is corrupt",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	validCodes := []ErrorCode{
		LedgerInvalidAmount,
		LedgerInsufficientFunds,
		LedgerAccountNotFound,
		LedgerCapacityExceeded,
		LedgerInconsistentTable,
		LoanNotEligible,
		AuthInvalidCredentials,
		ValidationGeneral,
		StorageCorruptSnapshot,
		StoragePersistenceFailed,
		SystemInternalError,
		SystemConfigurationError,
	}

	for _, code := range validCodes {
		s.True(IsValidErrorCode(code), "code %s should be registered", code)
	}

	s.False(IsValidErrorCode("LEDGER_999"))
	s.False(IsValidErrorCode(""))
}

// every sentinel in the table maps to a registered code
func (s *CodesTestSuite) TestSentinelCodesAreRegistered() {
	for _, sc := range sentinelCodes {
		s.True(IsValidErrorCode(sc.code), "sentinel %v maps to unregistered %s", sc.err, sc.code)
	}
}

func (s *CodesTestSuite) TestCodeFor() {
	testCases := []struct {
		name     string
		err      error
		expected ErrorCode
	}{
		{"invalid amount", services.ErrInvalidAmount, LedgerInvalidAmount},
		{"wrapped insufficient funds", fmt.Errorf("withdraw: %w", services.ErrInsufficientFunds), LedgerInsufficientFunds},
		{"service not found", services.ErrAccountNotFound, LedgerAccountNotFound},
		{"store not found", repositories.ErrAccountNotFound, LedgerAccountNotFound},
		{"capacity", fmt.Errorf("%w: full", services.ErrCapacityExceeded), LedgerCapacityExceeded},
		{"duplicate id", repositories.ErrDuplicateID, LedgerInconsistentTable},
		{"not eligible", services.ErrNotEligible, LoanNotEligible},
		{"auth", services.ErrAuthFailure, AuthInvalidCredentials},
		{"validation", fmt.Errorf("%w: name is required", validation.ErrInvalidInput), ValidationGeneral},
		{"corrupt", &storage.CorruptSnapshotError{Line: 3, Err: errors.New("bad amount")}, StorageCorruptSnapshot},
		{"persistence", fmt.Errorf("%w: disk full", storage.ErrPersistence), StoragePersistenceFailed},
		{"config", fmt.Errorf("%w: bad level", config.ErrInvalidConfig), SystemConfigurationError},
		{"unknown", errors.New("boom"), SystemInternalError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, CodeFor(tc.err))
		})
	}
}
