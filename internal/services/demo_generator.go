package services

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// DemoAccount is a generated account together with the secret needed to log in.
type DemoAccount struct {
	ID     int64
	Name   string
	Secret string
}

// DemoGenerator fills a ledger with plausible accounts. The same seed always
// produces the same accounts and balances.
type DemoGenerator struct {
	faker  *gofakeit.Faker
	ledger LedgerServiceInterface
	loans  LoanServiceInterface
}

func NewDemoGenerator(seed uint64, ledger LedgerServiceInterface, loans LoanServiceInterface) *DemoGenerator {
	return &DemoGenerator{
		faker:  gofakeit.New(seed),
		ledger: ledger,
		loans:  loans,
	}
}

func (g *DemoGenerator) amount(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(g.faker.Float64Range(min, max)).Round(2)
}

// Populate creates count accounts through the regular ledger operations: a
// wallet deposit, sometimes a savings transfer, and sometimes a loan when the
// wallet qualifies.
func (g *DemoGenerator) Populate(ctx context.Context, count int) ([]DemoAccount, error) {
	created := make([]DemoAccount, 0, count)

	for i := 0; i < count; i++ {
		name := g.faker.FirstName() + " " + g.faker.LastName()
		secret := g.faker.Password(true, true, true, false, false, 10)

		account, err := g.ledger.CreateAccount(ctx, name, secret)
		if err != nil {
			return created, fmt.Errorf("failed to create demo account %d: %w", i+1, err)
		}
		created = append(created, DemoAccount{ID: account.ID, Name: account.Name, Secret: secret})

		if err := g.ledger.DepositWallet(ctx, account, g.amount(100, 60000)); err != nil {
			return created, err
		}

		if g.faker.Bool() {
			share := decimal.NewFromFloat(g.faker.Float64Range(0.1, 0.5))
			if err := g.ledger.TransferWalletToSavings(ctx, account, account.Wallet.Mul(share).Round(2)); err != nil {
				return created, err
			}
		}

		if limit := g.loans.LoanLimit(account.Wallet); limit.IsPositive() && g.faker.Bool() {
			share := decimal.NewFromFloat(g.faker.Float64Range(0.2, 1))
			if err := g.loans.Request(ctx, account, limit.Mul(share).Round(2)); err != nil {
				return created, err
			}
		}
	}

	return created, nil
}
