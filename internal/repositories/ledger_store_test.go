package repositories

import (
	"testing"
	"time"

	"banco-ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerStoreSuite struct {
	suite.Suite
	store LedgerStoreInterface
	now   time.Time
}

func TestLedgerStoreSuite(t *testing.T) {
	suite.Run(t, new(LedgerStoreSuite))
}

func (s *LedgerStoreSuite) SetupTest() {
	s.store = NewLedgerStore(models.DefaultIDBase, 0)
	s.now = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
}

func (s *LedgerStoreSuite) TestCreate_SequentialIDs() {
	first, err := s.store.Create("Ana", "pw1", s.now)
	s.Require().NoError(err)
	second, err := s.store.Create("Bruno", "pw2", s.now)
	s.Require().NoError(err)

	s.Equal(models.DefaultIDBase, first.ID)
	s.Equal(models.DefaultIDBase+1, second.ID)
	s.Equal(models.DefaultIDBase+2, s.store.NextID())
	s.Equal(2, s.store.Count())
}

func (s *LedgerStoreSuite) TestCreate_ZeroBalancesAndSavingsAnchor() {
	account, err := s.store.Create("Ana", "pw1", s.now)
	s.Require().NoError(err)

	s.True(account.Wallet.IsZero())
	s.True(account.Savings.IsZero())
	s.True(account.LoanBalance.IsZero())
	s.Require().NotNil(account.SavingsAnchor)
	s.True(account.SavingsAnchor.Equal(s.now))
	s.Nil(account.LoanAnchor)
}

func (s *LedgerStoreSuite) TestCreate_DefaultBaseWhenNotPositive() {
	store := NewLedgerStore(0, 0)

	account, err := store.Create("Ana", "pw1", s.now)
	s.Require().NoError(err)
	s.Equal(models.DefaultIDBase, account.ID)
}

func (s *LedgerStoreSuite) TestCreate_CapacityExceeded() {
	store := NewLedgerStore(100, 2)

	_, err := store.Create("a", "1", s.now)
	s.Require().NoError(err)
	_, err = store.Create("b", "2", s.now)
	s.Require().NoError(err)

	_, err = store.Create("c", "3", s.now)
	s.ErrorIs(err, ErrCapacityExceeded)
	s.Equal(2, store.Count())
	s.Equal(int64(102), store.NextID())
}

func (s *LedgerStoreSuite) TestGetByID() {
	created, err := s.store.Create("Ana", "pw1", s.now)
	s.Require().NoError(err)

	found, err := s.store.GetByID(created.ID)
	s.Require().NoError(err)
	s.Same(created, found)

	_, err = s.store.GetByID(created.ID + 1)
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *LedgerStoreSuite) TestAll_CreationOrder() {
	for _, name := range []string{"c", "a", "b"} {
		_, err := s.store.Create(name, "x", s.now)
		s.Require().NoError(err)
	}

	all := s.store.All()
	s.Require().Len(all, 3)
	s.Equal("c", all[0].Name)
	s.Equal("a", all[1].Name)
	s.Equal("b", all[2].Name)

	all[0] = nil
	s.NotNil(s.store.All()[0])
}

func (s *LedgerStoreSuite) TestSnapshot_DeepCopy() {
	account, err := s.store.Create("Ana", "pw1", s.now)
	s.Require().NoError(err)
	account.Wallet = decimal.NewFromInt(50)

	snap := s.store.Snapshot()
	s.Require().Len(snap.Accounts, 1)
	s.Equal(s.store.NextID(), snap.NextID)

	snap.Accounts[0].Wallet = decimal.NewFromInt(999)
	*snap.Accounts[0].SavingsAnchor = s.now.Add(time.Hour)

	s.True(account.Wallet.Equal(decimal.NewFromInt(50)))
	s.True(account.SavingsAnchor.Equal(s.now))
}

func (s *LedgerStoreSuite) TestRestore_ReplacesTable() {
	_, err := s.store.Create("old", "x", s.now)
	s.Require().NoError(err)

	restored := models.NewAccount(66671005, "Carla", "pw", s.now)
	restored.Wallet = decimal.NewFromInt(10)

	err = s.store.Restore(models.Snapshot{NextID: 66671006, Accounts: []*models.Account{restored}})
	s.Require().NoError(err)

	s.Equal(1, s.store.Count())
	s.Equal(int64(66671006), s.store.NextID())

	found, err := s.store.GetByID(66671005)
	s.Require().NoError(err)
	s.Equal("Carla", found.Name)
	s.NotSame(restored, found)

	_, err = s.store.GetByID(models.DefaultIDBase)
	s.ErrorIs(err, ErrAccountNotFound)

	next, err := s.store.Create("Dora", "pw", s.now)
	s.Require().NoError(err)
	s.Equal(int64(66671006), next.ID)
}

func (s *LedgerStoreSuite) TestRestore_RaisesCounterToBase() {
	err := s.store.Restore(models.Snapshot{NextID: 5})
	s.Require().NoError(err)

	s.Equal(models.DefaultIDBase, s.store.NextID())
}

func (s *LedgerStoreSuite) TestRestore_RejectsDuplicateIDs() {
	_, err := s.store.Create("keep", "x", s.now)
	s.Require().NoError(err)

	a := models.NewAccount(66671001, "a", "1", s.now)
	b := models.NewAccount(66671001, "b", "2", s.now)

	err = s.store.Restore(models.Snapshot{NextID: 66671010, Accounts: []*models.Account{a, b}})
	s.ErrorIs(err, ErrDuplicateID)

	s.Equal(1, s.store.Count())
	s.Equal("keep", s.store.All()[0].Name)
}

func (s *LedgerStoreSuite) TestRestore_RejectsSmallCounter() {
	a := models.NewAccount(66671009, "a", "1", s.now)

	err := s.store.Restore(models.Snapshot{NextID: 66671009, Accounts: []*models.Account{a}})
	s.ErrorIs(err, ErrIDCounterTooSmall)
	s.Equal(0, s.store.Count())
}
