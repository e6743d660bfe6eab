package cli

import (
	"context"

	"banco-ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// movement is an operation on one logged-in account with a user supplied amount.
type movement func(ctx context.Context, a *app, account *models.Account, amount decimal.Decimal) error

func (r *rootRunner) movementCommand(use, short string, op movement) *cobra.Command {
	var creds credentials
	var amount string

	c := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(ctx context.Context, a *app) error {
				account, err := a.ledger.Login(ctx, creds.id, creds.secret)
				if err != nil {
					return err
				}
				value, err := parseAmount(amount)
				if err != nil {
					return err
				}
				if err := op(ctx, a, account, value); err != nil {
					return err
				}
				printBalances(cmd.OutOrStdout(), a.ledger.Summary(account), account.LoanState())
				return nil
			})
		},
	}
	creds.setupFlags(c)
	c.Flags().StringVar(&amount, "amount", "", "amount, e.g. 150.50")
	_ = c.MarkFlagRequired("amount")
	return c
}

func (r *rootRunner) depositCommand() *cobra.Command {
	return r.movementCommand("deposit", "add money to the wallet",
		func(ctx context.Context, a *app, account *models.Account, amount decimal.Decimal) error {
			return a.ledger.DepositWallet(ctx, account, amount)
		})
}

func (r *rootRunner) withdrawCommand() *cobra.Command {
	return r.movementCommand("withdraw", "take money out of the wallet",
		func(ctx context.Context, a *app, account *models.Account, amount decimal.Decimal) error {
			return a.ledger.WithdrawWallet(ctx, account, amount)
		})
}

func (r *rootRunner) saveToSavingsCommand() *cobra.Command {
	return r.movementCommand("save-to-savings", "move money from the wallet into savings",
		func(ctx context.Context, a *app, account *models.Account, amount decimal.Decimal) error {
			return a.ledger.TransferWalletToSavings(ctx, account, amount)
		})
}

func (r *rootRunner) withdrawSavingsCommand() *cobra.Command {
	return r.movementCommand("withdraw-savings", "move money from savings back into the wallet",
		func(ctx context.Context, a *app, account *models.Account, amount decimal.Decimal) error {
			return a.ledger.TransferSavingsToWallet(ctx, account, amount)
		})
}
