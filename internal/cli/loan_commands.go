package cli

import (
	"context"
	"fmt"

	"banco-ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func (r *rootRunner) loanLimitCommand() *cobra.Command {
	var creds credentials

	c := &cobra.Command{
		Use:   "loan-limit",
		Short: "show the loan limit for the current wallet balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(ctx context.Context, a *app) error {
				account, err := a.ledger.Login(ctx, creds.id, creds.secret)
				if err != nil {
					return err
				}

				offer := a.loans.Offer(ctx, account)
				fmt.Fprintf(cmd.OutOrStdout(), "Loan limit:  %s\n", offer.Limit.StringFixed(2))
				fmt.Fprintf(cmd.OutOrStdout(), "Outstanding: %s (%s)\n", offer.Balance.StringFixed(2), offer.State)
				if !offer.Eligible {
					fmt.Fprintln(cmd.OutOrStdout(), "Not eligible for a loan")
				}
				return nil
			})
		},
	}
	creds.setupFlags(c)
	return c
}

func (r *rootRunner) loanRequestCommand() *cobra.Command {
	return r.movementCommand("loan-request", "borrow up to the loan limit into the wallet",
		func(ctx context.Context, a *app, account *models.Account, amount decimal.Decimal) error {
			return a.loans.Request(ctx, account, amount)
		})
}

func (r *rootRunner) loanRepayCommand() *cobra.Command {
	return r.movementCommand("loan-repay", "repay the loan from the wallet",
		func(ctx context.Context, a *app, account *models.Account, amount decimal.Decimal) error {
			return a.loans.Repay(ctx, account, amount)
		})
}
