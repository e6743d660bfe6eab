package cli

import (
	"context"
	"fmt"

	"banco-ledger/internal/services"

	"github.com/spf13/cobra"
)

func (r *rootRunner) demoCommand() *cobra.Command {
	var count int
	var seed uint64

	c := &cobra.Command{
		Use:    "demo",
		Short:  "add generated demo accounts to the ledger",
		Long:   `Create demo accounts with random names, deposits, savings and loans. The same seed gives the same accounts.`,
		Args:   cobra.NoArgs,
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(ctx context.Context, a *app) error {
				created, err := services.NewDemoGenerator(seed, a.ledger, a.loans).Populate(ctx, count)
				for _, demo := range created {
					fmt.Fprintf(cmd.OutOrStdout(), "%d  %s  %s\n", demo.ID, demo.Name, demo.Secret)
				}
				return err
			})
		},
	}
	c.Flags().IntVar(&count, "count", 10, "number of accounts to create")
	c.Flags().Uint64Var(&seed, "seed", 1, "random seed to create reproducible results")
	return c
}
