package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"banco-ledger/internal/models"
	"banco-ledger/internal/repositories"
	"banco-ledger/internal/validation"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotEligible       = errors.New("balance does not qualify for a loan")
	ErrAccountNotFound   = errors.New("account not found")
	ErrAuthFailure       = errors.New("incorrect secret")
	ErrCapacityExceeded  = errors.New("account capacity exceeded")
)

// Operation names used for logging, metrics and rejected-operation records.
const (
	OpCreate          = "create"
	OpLogin           = "login"
	OpDeposit         = "deposit"
	OpWithdraw        = "withdraw"
	OpSaveToSavings   = "save_to_savings"
	OpWithdrawSavings = "withdraw_savings"
	OpLoanRequest     = "loan_request"
	OpLoanRepay       = "loan_repay"
)

// ledgerService implements LedgerServiceInterface
type ledgerService struct {
	store     repositories.LedgerStoreInterface
	auditRepo repositories.AuditLogRepositoryInterface
	engine    InterestEngine
	logger    LedgerLoggerInterface
	metrics   MetricsRecorderInterface
	validator *validation.Validator
	clock     Clock
}

// NewLedgerService wires the account table to the interest engine and the
// audit and metrics sinks. A nil clock reads the wall clock in UTC.
func NewLedgerService(
	store repositories.LedgerStoreInterface,
	auditRepo repositories.AuditLogRepositoryInterface,
	engine InterestEngine,
	logger LedgerLoggerInterface,
	metrics MetricsRecorderInterface,
	clock Clock,
) LedgerServiceInterface {
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	return &ledgerService{
		store:     store,
		auditRepo: auditRepo,
		engine:    engine,
		logger:    logger,
		metrics:   metrics,
		validator: validation.GetValidator(),
		clock:     clock,
	}
}

// CreateAccount validates the credentials and appends a zero-balance account
func (s *ledgerService) CreateAccount(ctx context.Context, name, secret string) (*models.Account, error) {
	if err := s.validator.Struct(validation.NewAccountInput{Name: name, Secret: secret}); err != nil {
		s.countOperation(OpCreate, StatusRejected)
		return nil, err
	}

	account, err := s.store.Create(name, secret, s.clock())
	if err != nil {
		s.countOperation(OpCreate, StatusRejected)
		if errors.Is(err, repositories.ErrCapacityExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrCapacityExceeded, err)
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.audit(ctx, account, models.AuditActionAccountCreated, decimal.Zero)
	s.logger.LogAccountCreated(ctx, account)
	s.countOperation(OpCreate, StatusSuccess)
	s.metrics.RecordGauge(MetricAccountsTotal, float64(s.store.Count()), nil)

	return account, nil
}

func (s *ledgerService) GetAccount(id int64) (*models.Account, error) {
	account, err := s.store.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return account, nil
}

// ListAccounts returns every account in creation order
func (s *ledgerService) ListAccounts() []*models.Account {
	return s.store.All()
}

// Authenticate checks secret against the stored one without accruing interest
func (s *ledgerService) Authenticate(ctx context.Context, id int64, secret string) (*models.Account, error) {
	account, err := s.GetAccount(id)
	if err != nil {
		s.logger.LogLoginFailed(ctx, id, "account not found")
		s.countOperation(OpLogin, StatusRejected)
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(account.Secret), []byte(secret)) != 1 {
		s.logger.LogLoginFailed(ctx, id, "incorrect secret")
		s.audit(ctx, account, models.AuditActionLoginFailed, decimal.Zero)
		s.countOperation(OpLogin, StatusRejected)
		return nil, ErrAuthFailure
	}

	return account, nil
}

// Login authenticates and brings savings then loan interest current
func (s *ledgerService) Login(ctx context.Context, id int64, secret string) (*models.Account, error) {
	account, err := s.Authenticate(ctx, id, secret)
	if err != nil {
		return nil, err
	}

	s.AccrueSavings(ctx, account)
	s.AccrueLoan(ctx, account)
	s.countOperation(OpLogin, StatusSuccess)

	return account, nil
}

// Summary is a read-only projection; it accrues nothing.
func (s *ledgerService) Summary(account *models.Account) models.Summary {
	return account.Summary()
}

func (s *ledgerService) DepositWallet(ctx context.Context, account *models.Account, amount decimal.Decimal) error {
	if err := s.checkAmount(ctx, account, OpDeposit, amount); err != nil {
		return err
	}

	account.Wallet = account.Wallet.Add(amount)

	s.recordMovement(ctx, account, OpDeposit, models.AuditActionWalletDeposit, amount)
	return nil
}

func (s *ledgerService) WithdrawWallet(ctx context.Context, account *models.Account, amount decimal.Decimal) error {
	if err := s.checkAmount(ctx, account, OpWithdraw, amount); err != nil {
		return err
	}
	if err := s.checkFunds(ctx, account, OpWithdraw, account.Wallet, amount); err != nil {
		return err
	}

	account.Wallet = account.Wallet.Sub(amount)

	s.recordMovement(ctx, account, OpWithdraw, models.AuditActionWalletWithdraw, amount)
	return nil
}

// TransferWalletToSavings moves amount into savings. Savings that are empty
// start a fresh interest interval at now.
func (s *ledgerService) TransferWalletToSavings(ctx context.Context, account *models.Account, amount decimal.Decimal) error {
	if err := s.checkAmount(ctx, account, OpSaveToSavings, amount); err != nil {
		return err
	}

	s.AccrueSavings(ctx, account)

	if err := s.checkFunds(ctx, account, OpSaveToSavings, account.Wallet, amount); err != nil {
		return err
	}

	if account.Savings.IsZero() {
		account.SavingsAnchor = models.TimePtr(s.clock())
	}
	account.Wallet = account.Wallet.Sub(amount)
	account.Savings = account.Savings.Add(amount)

	s.recordMovement(ctx, account, OpSaveToSavings, models.AuditActionSavingsDeposit, amount)
	return nil
}

func (s *ledgerService) TransferSavingsToWallet(ctx context.Context, account *models.Account, amount decimal.Decimal) error {
	if err := s.checkAmount(ctx, account, OpWithdrawSavings, amount); err != nil {
		return err
	}

	s.AccrueSavings(ctx, account)

	if err := s.checkFunds(ctx, account, OpWithdrawSavings, account.Savings, amount); err != nil {
		return err
	}

	account.Savings = account.Savings.Sub(amount)
	account.Wallet = account.Wallet.Add(amount)

	s.recordMovement(ctx, account, OpWithdrawSavings, models.AuditActionSavingsWithdraw, amount)
	return nil
}

// AccrueSavings compounds due savings interest into the account
func (s *ledgerService) AccrueSavings(ctx context.Context, account *models.Account) models.Accrual {
	before := account.Savings
	accrual := s.engine.ApplySavings(account, s.clock())
	if accrual.Applied {
		s.recordInterest(ctx, account, InterestKindSavings, models.AuditActionSavingsInterestApplied, before, accrual)
	}
	return accrual
}

// AccrueLoan applies a due loan escalation to the account
func (s *ledgerService) AccrueLoan(ctx context.Context, account *models.Account) models.Accrual {
	before := account.LoanBalance
	accrual := s.engine.ApplyLoan(account, s.clock())
	if accrual.Applied {
		s.recordInterest(ctx, account, InterestKindLoan, models.AuditActionLoanInterestApplied, before, accrual)
	}
	return accrual
}

// DisburseLoan credits a loan to the wallet and restarts the loan interval.
// Eligibility is the loan service's concern.
func (s *ledgerService) DisburseLoan(ctx context.Context, account *models.Account, amount decimal.Decimal) error {
	if err := s.checkAmount(ctx, account, OpLoanRequest, amount); err != nil {
		return err
	}

	account.LoanBalance = account.LoanBalance.Add(amount)
	account.Wallet = account.Wallet.Add(amount)
	account.LoanAnchor = models.TimePtr(s.clock())

	s.recordMovement(ctx, account, OpLoanRequest, models.AuditActionLoanRequested, amount)
	s.recordLoanOutstanding()
	return nil
}

// RepayLoan takes amount from the wallet and reduces the loan, clamping at
// zero. The whole amount leaves the wallet even when it exceeds the loan.
func (s *ledgerService) RepayLoan(ctx context.Context, account *models.Account, amount decimal.Decimal) error {
	if err := s.checkAmount(ctx, account, OpLoanRepay, amount); err != nil {
		return err
	}
	if err := s.checkFunds(ctx, account, OpLoanRepay, account.Wallet, amount); err != nil {
		return err
	}

	hadLoan := account.HasLoan()
	account.Wallet = account.Wallet.Sub(amount)
	account.LoanBalance = account.LoanBalance.Sub(amount)
	if !account.LoanBalance.IsPositive() {
		account.CloseLoan()
	}

	s.recordMovement(ctx, account, OpLoanRepay, models.AuditActionLoanRepaid, amount)
	if hadLoan && !account.HasLoan() {
		s.audit(ctx, account, models.AuditActionLoanClosed, decimal.Zero)
		s.logger.LogLoanClosed(ctx, account.ID)
	}
	s.recordLoanOutstanding()
	return nil
}

func (s *ledgerService) checkAmount(ctx context.Context, account *models.Account, operation string, amount decimal.Decimal) error {
	if amount.IsPositive() {
		return nil
	}
	return s.reject(ctx, account, operation, amount, ErrInvalidAmount)
}

func (s *ledgerService) checkFunds(ctx context.Context, account *models.Account, operation string, available, amount decimal.Decimal) error {
	if available.GreaterThanOrEqual(amount) {
		return nil
	}
	return s.reject(ctx, account, operation, amount, ErrInsufficientFunds)
}

func (s *ledgerService) reject(ctx context.Context, account *models.Account, operation string, amount decimal.Decimal, reason error) error {
	s.logger.LogOperationRejected(ctx, account.ID, operation, amount, reason)
	s.countOperation(operation, StatusRejected)
	return reason
}

func (s *ledgerService) recordMovement(ctx context.Context, account *models.Account, operation, action string, amount decimal.Decimal) {
	s.audit(ctx, account, action, amount)
	s.logger.LogBalanceUpdate(ctx, account.ID, operation, amount, account.Summary())
	s.countOperation(operation, StatusSuccess)
}

func (s *ledgerService) recordInterest(ctx context.Context, account *models.Account, kind, action string, before decimal.Decimal, accrual models.Accrual) {
	entry := models.NewAuditLog(account, action, accrual.Balance.Sub(before))
	entry.SetMetadata("periods", accrual.Periods)
	entry.SetMetadata("rate", accrual.Rate.String())
	s.createAudit(ctx, entry)

	s.logger.LogInterestApplied(ctx, account.ID, kind, before, accrual)
	s.metrics.IncrementCounter(MetricInterestApplied, map[string]string{"kind": kind})
	if kind == InterestKindLoan {
		s.recordLoanOutstanding()
	}
}

func (s *ledgerService) recordLoanOutstanding() {
	total := decimal.Zero
	for _, a := range s.store.All() {
		total = total.Add(a.LoanBalance)
	}
	s.metrics.RecordGauge(MetricLoanOutstanding, total.InexactFloat64(), nil)
}

func (s *ledgerService) countOperation(operation, status string) {
	s.metrics.IncrementCounter(MetricOperation, map[string]string{
		"operation": operation,
		"status":    status,
	})
}

func (s *ledgerService) audit(ctx context.Context, account *models.Account, action string, amount decimal.Decimal) {
	s.createAudit(ctx, models.NewAuditLog(account, action, amount))
}

// createAudit never fails the operation; a broken audit sink is only logged.
func (s *ledgerService) createAudit(ctx context.Context, entry *models.AuditLog) {
	entry.CorrelationID = getCorrelationID(ctx)
	if err := s.auditRepo.Create(entry); err != nil {
		s.logger.LogAuditFailure(ctx, entry.Action, entry.AccountID, err)
	}
}
