package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

const defaultHistoryLimit = 20

func (r *rootRunner) createCommand() *cobra.Command {
	var name, secret string

	c := &cobra.Command{
		Use:   "create",
		Short: "open a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(ctx context.Context, a *app) error {
				account, err := a.ledger.CreateAccount(ctx, name, secret)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Account %d created for %s\n", account.ID, account.Name)
				return nil
			})
		},
	}
	c.Flags().StringVar(&name, "name", "", "account holder name")
	c.Flags().StringVar(&secret, "secret", "", "account secret")
	_ = c.MarkFlagRequired("name")
	_ = c.MarkFlagRequired("secret")
	return c
}

func (r *rootRunner) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list account ids and names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(ctx context.Context, a *app) error {
				accounts := a.ledger.ListAccounts()
				if len(accounts) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No accounts")
					return nil
				}
				for _, account := range accounts {
					fmt.Fprintf(cmd.OutOrStdout(), "%d  %s\n", account.ID, account.Name)
				}
				return nil
			})
		},
	}
}

func (r *rootRunner) summaryCommand() *cobra.Command {
	var creds credentials

	c := &cobra.Command{
		Use:   "summary",
		Short: "log in and show wallet, savings and loan balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(ctx context.Context, a *app) error {
				account, err := a.ledger.Login(ctx, creds.id, creds.secret)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Account %d (%s)\n", account.ID, account.Name)
				printBalances(cmd.OutOrStdout(), a.ledger.Summary(account), account.LoanState())
				return nil
			})
		},
	}
	creds.setupFlags(c)
	return c
}

func (r *rootRunner) historyCommand() *cobra.Command {
	var creds credentials
	var limit int

	c := &cobra.Command{
		Use:   "history",
		Short: "show the audit trail of an account, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(ctx context.Context, a *app) error {
				account, err := a.ledger.Login(ctx, creds.id, creds.secret)
				if err != nil {
					return err
				}
				if a.db == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "Audit trail is disabled")
					return nil
				}

				entries, total, err := a.audit.ListByAccount(account.ID, 0, limit)
				if err != nil {
					return fmt.Errorf("failed to read audit trail: %w", err)
				}
				for _, e := range entries {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %-24s %12s  wallet %s  savings %s  loan %s\n",
						e.CreatedAt.Format("2006-01-02 15:04:05"), e.Action, e.Amount.StringFixed(2),
						e.Wallet.StringFixed(2), e.Savings.StringFixed(2), e.LoanBalance.StringFixed(2))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d of %d entries\n", len(entries), total)
				return nil
			})
		},
	}
	creds.setupFlags(c)
	c.Flags().IntVar(&limit, "limit", defaultHistoryLimit, "maximum number of entries")
	return c
}
