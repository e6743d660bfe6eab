package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Accrual is the outcome of bringing one balance current. When Applied is
// false Balance and Anchor are the inputs unchanged.
type Accrual struct {
	Balance decimal.Decimal
	Anchor  *time.Time
	Periods int64
	Rate    decimal.Decimal
	Applied bool
}
