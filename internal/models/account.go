package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultIDBase is the first account id handed out by an empty ledger.
const DefaultIDBase int64 = 66671001

const (
	LoanStateNone   LoanState = "no_loan"
	LoanStateActive LoanState = "active"
)

var (
	ErrInvalidBalance     = errors.New("balance cannot be negative")
	ErrLoanAnchorMismatch = errors.New("loan anchor must be set exactly when a loan is outstanding")
	ErrNameRequired       = errors.New("account name is required")
	ErrSecretRequired     = errors.New("account secret is required")
	ErrInvalidAccountID   = errors.New("account id must be positive")
)

// LoanState is the position of an account in the loan lifecycle.
type LoanState string

// Account is one row of the ledger table. ID, Name and Secret never change
// after creation; the balances and anchors are updated in place.
type Account struct {
	ID     int64
	Name   string
	Secret string

	Wallet      decimal.Decimal
	Savings     decimal.Decimal
	LoanBalance decimal.Decimal

	// SavingsAnchor starts the current uncompounded savings interval.
	SavingsAnchor *time.Time
	// LoanAnchor is the last disbursement or loan interest application.
	// It is nil exactly when LoanBalance is zero.
	LoanAnchor *time.Time
}

// NewAccount returns a zero-balance account whose savings interval starts at now.
func NewAccount(id int64, name, secret string, now time.Time) *Account {
	return &Account{
		ID:            id,
		Name:          name,
		Secret:        secret,
		Wallet:        decimal.Zero,
		Savings:       decimal.Zero,
		LoanBalance:   decimal.Zero,
		SavingsAnchor: TimePtr(now),
	}
}

// Validate checks the record invariants.
func (a *Account) Validate() error {
	if a.ID <= 0 {
		return ErrInvalidAccountID
	}

	if a.Name == "" {
		return ErrNameRequired
	}

	if a.Secret == "" {
		return ErrSecretRequired
	}

	if a.Wallet.IsNegative() || a.Savings.IsNegative() || a.LoanBalance.IsNegative() {
		return ErrInvalidBalance
	}

	if a.LoanBalance.IsPositive() != (a.LoanAnchor != nil) {
		return ErrLoanAnchorMismatch
	}

	return nil
}

// HasLoan returns true if a loan is outstanding
func (a *Account) HasLoan() bool {
	return a.LoanBalance.IsPositive()
}

// LoanState derives the lifecycle state from the loan balance.
func (a *Account) LoanState() LoanState {
	if a.HasLoan() {
		return LoanStateActive
	}
	return LoanStateNone
}

// CloseLoan zeroes the loan balance and drops its anchor.
func (a *Account) CloseLoan() {
	a.LoanBalance = decimal.Zero
	a.LoanAnchor = nil
}

// Summary returns the read-only balance projection.
func (a *Account) Summary() Summary {
	return Summary{
		Wallet:      a.Wallet,
		Savings:     a.Savings,
		LoanBalance: a.LoanBalance,
	}
}

// Clone returns a deep copy so callers cannot reach the ledger's own record.
func (a *Account) Clone() *Account {
	cp := *a
	cp.SavingsAnchor = copyTime(a.SavingsAnchor)
	cp.LoanAnchor = copyTime(a.LoanAnchor)
	return &cp
}

// String renders the account without its secret.
func (a *Account) String() string {
	return fmt.Sprintf("Account[ID: %d, Name: %s, Wallet: %s, Savings: %s, Loan: %s, State: %s]",
		a.ID, a.Name, a.Wallet.StringFixed(2), a.Savings.StringFixed(2), a.LoanBalance.StringFixed(2), a.LoanState())
}

// TimePtr returns a pointer to a copy of t.
func TimePtr(t time.Time) *time.Time {
	return &t
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	return TimePtr(*t)
}
