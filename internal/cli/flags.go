package cli

import (
	"fmt"
	"io"
	"strings"

	"banco-ledger/internal/models"
	"banco-ledger/internal/services"
	"banco-ledger/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type credentials struct {
	id     int64
	secret string
}

func (c *credentials) setupFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&c.id, "id", 0, "account id")
	cmd.Flags().StringVar(&c.secret, "secret", "", "account secret")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("secret")
}

// parseAmount reads a decimal amount. Anything that is not a positive number
// is an invalid amount.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", services.ErrInvalidAmount, s)
	}
	if err := validation.GetValidator().Struct(validation.AmountInput{Amount: amount}); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", services.ErrInvalidAmount, err)
	}
	return amount, nil
}

func printBalances(w io.Writer, summary models.Summary, state models.LoanState) {
	fmt.Fprintf(w, "Wallet:  %s\n", summary.Wallet.StringFixed(2))
	fmt.Fprintf(w, "Savings: %s\n", summary.Savings.StringFixed(2))
	fmt.Fprintf(w, "Loan:    %s (%s)\n", summary.LoanBalance.StringFixed(2), state)
}
