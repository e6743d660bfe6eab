package errors

import (
	"errors"

	"banco-ledger/internal/config"
	"banco-ledger/internal/repositories"
	"banco-ledger/internal/services"
	"banco-ledger/internal/storage"
	"banco-ledger/internal/validation"
)

// ErrorCode represents a standardized error code shown to ledger users
type ErrorCode string

// Ledger error codes (LEDGER_*)
const (
	LedgerInvalidAmount     ErrorCode = "LEDGER_001"
	LedgerInsufficientFunds ErrorCode = "LEDGER_002"
	LedgerAccountNotFound   ErrorCode = "LEDGER_003"
	LedgerCapacityExceeded  ErrorCode = "LEDGER_004"
	LedgerInconsistentTable ErrorCode = "LEDGER_005"
)

// Loan error codes (LOAN_*)
const (
	LoanNotEligible ErrorCode = "LOAN_001"
)

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral ErrorCode = "VALIDATION_001"
)

// Storage error codes (STORAGE_*)
const (
	StorageCorruptSnapshot   ErrorCode = "STORAGE_001"
	StoragePersistenceFailed ErrorCode = "STORAGE_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemConfigurationError ErrorCode = "SYSTEM_002"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	LedgerInvalidAmount:     "Amount must be a positive number",
	LedgerInsufficientFunds: "Insufficient balance for this operation",
	LedgerAccountNotFound:   "Account not found",
	LedgerCapacityExceeded:  "No more accounts can be opened",
	LedgerInconsistentTable: "Account table is inconsistent",

	LoanNotEligible: "Wallet balance does not qualify for a loan",

	AuthInvalidCredentials: "Incorrect account id or secret",

	ValidationGeneral: "Validation failed",

	StorageCorruptSnapshot:   "Snapshot file is corrupt",
	StoragePersistenceFailed: "Snapshot file could not be read or written",

	SystemInternalError:      "An unexpected error occurred",
	SystemConfigurationError: "Invalid configuration",
}

// sentinelCodes is checked in order; the first sentinel found in the chain wins.
var sentinelCodes = []struct {
	err  error
	code ErrorCode
}{
	{services.ErrInvalidAmount, LedgerInvalidAmount},
	{services.ErrInsufficientFunds, LedgerInsufficientFunds},
	{services.ErrAccountNotFound, LedgerAccountNotFound},
	{repositories.ErrAccountNotFound, LedgerAccountNotFound},
	{services.ErrCapacityExceeded, LedgerCapacityExceeded},
	{repositories.ErrCapacityExceeded, LedgerCapacityExceeded},
	{repositories.ErrDuplicateID, LedgerInconsistentTable},
	{repositories.ErrIDCounterTooSmall, LedgerInconsistentTable},
	{services.ErrNotEligible, LoanNotEligible},
	{services.ErrAuthFailure, AuthInvalidCredentials},
	{validation.ErrInvalidInput, ValidationGeneral},
	{storage.ErrCorruptSnapshot, StorageCorruptSnapshot},
	{storage.ErrPersistence, StoragePersistenceFailed},
	{config.ErrInvalidConfig, SystemConfigurationError},
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

// CodeFor classifies err by the sentinel it wraps. Unknown errors are
// SystemInternalError.
func CodeFor(err error) ErrorCode {
	for _, sc := range sentinelCodes {
		if errors.Is(err, sc.err) {
			return sc.code
		}
	}
	return SystemInternalError
}
