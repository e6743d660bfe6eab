package models

import "github.com/shopspring/decimal"

// Summary is the balance view shown to an account holder.
type Summary struct {
	Wallet      decimal.Decimal `json:"wallet"`
	Savings     decimal.Decimal `json:"savings"`
	LoanBalance decimal.Decimal `json:"loan_balance"`
}

// Snapshot is the full ledger table together with its id counter.
type Snapshot struct {
	NextID   int64
	Accounts []*Account
}

// Len returns the number of accounts in the snapshot
func (s Snapshot) Len() int {
	return len(s.Accounts)
}

// LoanOffer is what the loan screen shows: the current limit and the accrued
// outstanding balance.
type LoanOffer struct {
	Limit    decimal.Decimal `json:"limit"`
	Balance  decimal.Decimal `json:"balance"`
	State    LoanState       `json:"state"`
	Eligible bool            `json:"eligible"`
}
