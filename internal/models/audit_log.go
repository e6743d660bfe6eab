package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AuditActionAccountCreated         = "account_created"
	AuditActionLoginFailed            = "login_failed"
	AuditActionWalletDeposit          = "wallet_deposit"
	AuditActionWalletWithdraw         = "wallet_withdraw"
	AuditActionSavingsDeposit         = "savings_deposit"
	AuditActionSavingsWithdraw        = "savings_withdraw"
	AuditActionLoanRequested          = "loan_requested"
	AuditActionLoanRepaid             = "loan_repaid"
	AuditActionLoanClosed             = "loan_closed"
	AuditActionSavingsInterestApplied = "savings_interest_applied"
	AuditActionLoanInterestApplied    = "loan_interest_applied"
)

// AuditLog is one entry of an account's activity trail. Balances are the
// values after the action was applied.
type AuditLog struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID     int64           `gorm:"not null;index" json:"account_id"`
	Action        string          `gorm:"type:varchar(64);not null;index" json:"action"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"amount"`
	Wallet        decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"wallet"`
	Savings       decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"savings"`
	LoanBalance   decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"loan_balance"`
	CorrelationID string          `gorm:"type:varchar(64);index" json:"correlation_id,omitempty"`
	Metadata      JSONBMap        `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt     time.Time       `gorm:"not null;index" json:"created_at"`
}

// NewAuditLog builds an entry carrying the account's current balances.
func NewAuditLog(account *Account, action string, amount decimal.Decimal) *AuditLog {
	return &AuditLog{
		AccountID:   account.ID,
		Action:      action,
		Amount:      amount,
		Wallet:      account.Wallet,
		Savings:     account.Savings,
		LoanBalance: account.LoanBalance,
	}
}

func (al *AuditLog) SetMetadata(key string, value interface{}) {
	if al.Metadata == nil {
		al.Metadata = make(JSONBMap)
	}
	al.Metadata[key] = value
}

func (al *AuditLog) GetMetadata(key string, defaultValue interface{}) interface{} {
	if al.Metadata == nil {
		return defaultValue
	}

	if value, exists := al.Metadata[key]; exists {
		return value
	}

	return defaultValue
}

func (al *AuditLog) String() string {
	return fmt.Sprintf("AuditLog[Account: %d, Action: %s, Amount: %s, Wallet: %s, Savings: %s, Loan: %s, Time: %s]",
		al.AccountID, al.Action, al.Amount.StringFixed(2), al.Wallet.StringFixed(2),
		al.Savings.StringFixed(2), al.LoanBalance.StringFixed(2), al.CreatedAt.Format(time.RFC3339))
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}

	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now().UTC()
	}
	return nil
}

// JSONBMap is a free-form metadata map stored as JSON text
type JSONBMap map[string]interface{}

// Value implements driver.Valuer interface
func (m JSONBMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	// Return string for SQLite compatibility
	return string(bytes), nil
}

func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(bytes, m)
}
