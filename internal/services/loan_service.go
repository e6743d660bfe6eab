package services

import (
	"context"

	"banco-ledger/internal/models"

	"github.com/shopspring/decimal"
)

var (
	tier1Floor   = decimal.NewFromInt(10000)
	tier1Ceiling = decimal.NewFromInt(20000)
	tier2Ceiling = decimal.NewFromInt(25000)
	tier3Floor   = decimal.NewFromInt(30000)
	tier3Ceiling = decimal.NewFromInt(50000)

	tier1Limit = decimal.NewFromInt(5000)
	tier2Limit = decimal.NewFromInt(10000)
	tier3Limit = decimal.NewFromInt(20000)
	tier4Limit = decimal.NewFromInt(30000)
)

// LoanLimit maps a wallet balance to the largest loan it qualifies for.
// Tiers are checked in order so exactly 20000 gets the first tier. Wallets
// between 25000 and 30000 qualify for nothing.
func LoanLimit(wallet decimal.Decimal) decimal.Decimal {
	switch {
	case wallet.GreaterThanOrEqual(tier1Floor) && wallet.LessThanOrEqual(tier1Ceiling):
		return tier1Limit
	case wallet.GreaterThanOrEqual(tier1Ceiling) && wallet.LessThan(tier2Ceiling):
		return tier2Limit
	case wallet.GreaterThanOrEqual(tier3Floor) && wallet.LessThanOrEqual(tier3Ceiling):
		return tier3Limit
	case wallet.GreaterThan(tier3Ceiling):
		return tier4Limit
	default:
		return decimal.Zero
	}
}

// loanService implements LoanServiceInterface
type loanService struct {
	ledger  LedgerServiceInterface
	logger  LedgerLoggerInterface
	metrics MetricsRecorderInterface
}

func NewLoanService(ledger LedgerServiceInterface, logger LedgerLoggerInterface, metrics MetricsRecorderInterface) LoanServiceInterface {
	return &loanService{
		ledger:  ledger,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *loanService) LoanLimit(wallet decimal.Decimal) decimal.Decimal {
	return LoanLimit(wallet)
}

// Offer brings loan interest current before reporting the balance
func (s *loanService) Offer(ctx context.Context, account *models.Account) models.LoanOffer {
	s.ledger.AccrueLoan(ctx, account)

	limit := LoanLimit(account.Wallet)
	return models.LoanOffer{
		Limit:    limit,
		Balance:  account.LoanBalance,
		State:    account.LoanState(),
		Eligible: limit.IsPositive(),
	}
}

// Request disburses amount when the wallet qualifies and amount is within the limit
func (s *loanService) Request(ctx context.Context, account *models.Account, amount decimal.Decimal) error {
	s.ledger.AccrueLoan(ctx, account)

	limit := LoanLimit(account.Wallet)
	if !limit.IsPositive() {
		return s.reject(ctx, account, amount, ErrNotEligible)
	}
	if !amount.IsPositive() || amount.GreaterThan(limit) {
		return s.reject(ctx, account, amount, ErrInvalidAmount)
	}

	return s.ledger.DisburseLoan(ctx, account, amount)
}

// Repay accrues loan interest and then pays amount from the wallet
func (s *loanService) Repay(ctx context.Context, account *models.Account, amount decimal.Decimal) error {
	s.ledger.AccrueLoan(ctx, account)
	return s.ledger.RepayLoan(ctx, account, amount)
}

func (s *loanService) reject(ctx context.Context, account *models.Account, amount decimal.Decimal, reason error) error {
	s.logger.LogOperationRejected(ctx, account.ID, OpLoanRequest, amount, reason)
	s.metrics.IncrementCounter(MetricOperation, map[string]string{
		"operation": OpLoanRequest,
		"status":    StatusRejected,
	})
	return reason
}
