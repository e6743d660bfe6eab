// Package cli is the bancoledger command line.
package cli

import (
	"context"
	"fmt"
	"io"

	apperrors "banco-ledger/internal/errors"
	"banco-ledger/internal/services"
	"banco-ledger/internal/validation"

	"github.com/spf13/cobra"
)

// Options configures a root command. The zero value is what the binary uses.
type Options struct {
	// Now replaces the wall clock for interest calculations.
	Now services.Clock
}

type globalFlags struct {
	file    string
	envFile string
}

type rootRunner struct {
	opts  Options
	flags globalFlags

	// started is set once a command body runs; errors before that are usage errors.
	started bool
}

// CreateRootCommand creates the bancoledger command with all subcommands.
func CreateRootCommand(opts Options) *cobra.Command {
	r := &rootRunner{opts: opts}
	return r.command()
}

func (r *rootRunner) command() *cobra.Command {
	c := &cobra.Command{
		Use:           "bancoledger",
		Short:         "bancoledger keeps the accounts of a retail branch",
		Long:          `bancoledger keeps wallet, savings and loan balances for the accounts of one branch in a plain text snapshot file.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	c.PersistentFlags().StringVar(&r.flags.file, "file", "", "snapshot file (defaults to LEDGER_SNAPSHOT_PATH)")
	c.PersistentFlags().StringVar(&r.flags.envFile, "env-file", ".env", "optional .env file read before the environment")

	c.AddCommand(
		r.createCommand(),
		r.listCommand(),
		r.summaryCommand(),
		r.historyCommand(),
		r.depositCommand(),
		r.withdrawCommand(),
		r.saveToSavingsCommand(),
		r.withdrawSavingsCommand(),
		r.loanLimitCommand(),
		r.loanRequestCommand(),
		r.loanRepayCommand(),
		r.demoCommand(),
	)
	return c
}

// withApp opens the ledger, runs fn and saves the ledger again, whether or
// not fn succeeded.
func (r *rootRunner) withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) (err error) {
	r.started = true
	ctx := cmd.Context()

	a, err := openApp(ctx, &r.flags, cmd.ErrOrStderr(), r.opts.Now)
	if err != nil {
		return err
	}
	defer func() {
		err = a.close(ctx, err)
	}()

	return fn(ctx, a)
}

// Run executes the command line and returns the process exit status. Errors
// are printed to stderr as "[CODE] message".
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, opts Options) int {
	ctx = services.WithCorrelationID(ctx, "")

	r := &rootRunner{opts: opts}
	c := r.command()
	c.SetArgs(args)
	c.SetOut(stdout)
	c.SetErr(stderr)

	if err := c.ExecuteContext(ctx); err != nil {
		if !r.started {
			err = fmt.Errorf("%w: %v", validation.ErrInvalidInput, err)
		}
		_ = apperrors.FromError(err, services.CorrelationID(ctx)).Write(stderr)
		return 1
	}
	return 0
}
