package services

import (
	"time"

	"banco-ledger/internal/config"
	"banco-ledger/internal/models"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// InterestPolicy holds the accrual rates and day thresholds. Rates are
// fractions per application (0.04 = 4%).
type InterestPolicy struct {
	SavingsRate       decimal.Decimal
	SavingsPeriodDays int64
	LoanLowRate       decimal.Decimal
	LoanHighRate      decimal.Decimal
	LoanLowAfterDays  int64
	LoanHighAfterDays int64
}

// DefaultInterestPolicy is 4% savings per 30 days, 9% loan escalation after
// 30 days and 20% after 120.
func DefaultInterestPolicy() InterestPolicy {
	return InterestPolicy{
		SavingsRate:       decimal.RequireFromString("0.04"),
		SavingsPeriodDays: 30,
		LoanLowRate:       decimal.RequireFromString("0.09"),
		LoanHighRate:      decimal.RequireFromString("0.20"),
		LoanLowAfterDays:  30,
		LoanHighAfterDays: 120,
	}
}

func NewInterestPolicy(cfg config.InterestConfig) InterestPolicy {
	return InterestPolicy{
		SavingsRate:       cfg.SavingsRate,
		SavingsPeriodDays: int64(cfg.SavingsPeriodDays),
		LoanLowRate:       cfg.LoanLowRate,
		LoanHighRate:      cfg.LoanHighRate,
		LoanLowAfterDays:  int64(cfg.LoanLowAfterDays),
		LoanHighAfterDays: int64(cfg.LoanHighAfterDays),
	}
}

// InterestEngine computes accruals. It never reads the clock; callers pass now.
type InterestEngine struct {
	policy InterestPolicy
}

func NewInterestEngine(policy InterestPolicy) InterestEngine {
	return InterestEngine{policy: policy}
}

func (e InterestEngine) Policy() InterestPolicy {
	return e.policy
}

// ElapsedDays counts whole 24h days from anchor to now. A clock that went
// backwards yields a negative count, which no rule treats as due.
func ElapsedDays(anchor, now time.Time) int64 {
	return int64(now.Sub(anchor) / day)
}

// Savings compounds balance once per full period since anchor and moves the
// anchor to now. Leftover days are dropped. The result is not rounded; each
// period adds the rate's decimal places to the balance.
func (e InterestEngine) Savings(balance decimal.Decimal, anchor *time.Time, now time.Time) models.Accrual {
	unchanged := models.Accrual{Balance: balance, Anchor: anchor}
	if anchor == nil || !balance.IsPositive() || e.policy.SavingsPeriodDays <= 0 {
		return unchanged
	}

	elapsed := ElapsedDays(*anchor, now)
	if elapsed < e.policy.SavingsPeriodDays {
		return unchanged
	}

	periods := elapsed / e.policy.SavingsPeriodDays
	factor := decimal.NewFromInt(1).Add(e.policy.SavingsRate)
	result := balance
	for i := int64(0); i < periods; i++ {
		result = result.Mul(factor)
	}

	return models.Accrual{
		Balance: result,
		Anchor:  models.TimePtr(now),
		Periods: periods,
		Rate:    e.policy.SavingsRate,
		Applied: true,
	}
}

// Loan applies at most one escalation per call: the high rate past the high
// threshold, otherwise the low rate past the low threshold.
func (e InterestEngine) Loan(balance decimal.Decimal, anchor *time.Time, now time.Time) models.Accrual {
	unchanged := models.Accrual{Balance: balance, Anchor: anchor}
	if anchor == nil || !balance.IsPositive() {
		return unchanged
	}

	elapsed := ElapsedDays(*anchor, now)

	var rate decimal.Decimal
	switch {
	case elapsed > e.policy.LoanHighAfterDays:
		rate = e.policy.LoanHighRate
	case elapsed > e.policy.LoanLowAfterDays:
		rate = e.policy.LoanLowRate
	default:
		return unchanged
	}

	return models.Accrual{
		Balance: balance.Mul(decimal.NewFromInt(1).Add(rate)),
		Anchor:  models.TimePtr(now),
		Periods: 1,
		Rate:    rate,
		Applied: true,
	}
}

// ApplySavings writes a savings accrual into the account.
func (e InterestEngine) ApplySavings(account *models.Account, now time.Time) models.Accrual {
	accrual := e.Savings(account.Savings, account.SavingsAnchor, now)
	if accrual.Applied {
		account.Savings = accrual.Balance
		account.SavingsAnchor = accrual.Anchor
	}
	return accrual
}

// ApplyLoan writes a loan accrual into the account.
func (e InterestEngine) ApplyLoan(account *models.Account, now time.Time) models.Accrual {
	accrual := e.Loan(account.LoanBalance, account.LoanAnchor, now)
	if accrual.Applied {
		account.LoanBalance = accrual.Balance
		account.LoanAnchor = accrual.Anchor
	}
	return accrual
}
