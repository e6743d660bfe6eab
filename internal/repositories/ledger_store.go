package repositories

import (
	"errors"
	"fmt"
	"time"

	"banco-ledger/internal/models"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrCapacityExceeded  = errors.New("account table is full")
	ErrDuplicateID       = errors.New("duplicate account id")
	ErrIDCounterTooSmall = errors.New("next id counter does not exceed existing ids")
)

// ledgerStore keeps accounts in creation order with an id index beside them.
// It is not safe for concurrent use; the ledger has a single actor.
type ledgerStore struct {
	accounts    []*models.Account
	index       map[int64]int
	nextID      int64
	idBase      int64
	maxAccounts int
}

// NewLedgerStore creates an empty table. maxAccounts <= 0 means unlimited.
func NewLedgerStore(idBase int64, maxAccounts int) LedgerStoreInterface {
	if idBase <= 0 {
		idBase = models.DefaultIDBase
	}
	return &ledgerStore{
		index:       make(map[int64]int),
		nextID:      idBase,
		idBase:      idBase,
		maxAccounts: maxAccounts,
	}
}

// Create appends a zero-balance account under the next id.
func (s *ledgerStore) Create(name, secret string, now time.Time) (*models.Account, error) {
	if s.maxAccounts > 0 && len(s.accounts) >= s.maxAccounts {
		return nil, fmt.Errorf("%w: limit is %d accounts", ErrCapacityExceeded, s.maxAccounts)
	}

	account := models.NewAccount(s.nextID, name, secret, now)
	s.nextID++

	s.index[account.ID] = len(s.accounts)
	s.accounts = append(s.accounts, account)
	return account, nil
}

// GetByID returns the stored record itself; services mutate it in place.
func (s *ledgerStore) GetByID(id int64) (*models.Account, error) {
	i, ok := s.index[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return s.accounts[i], nil
}

// All returns the accounts in creation order
func (s *ledgerStore) All() []*models.Account {
	out := make([]*models.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

func (s *ledgerStore) Count() int {
	return len(s.accounts)
}

func (s *ledgerStore) NextID() int64 {
	return s.nextID
}

// Snapshot deep-copies the table for persistence.
func (s *ledgerStore) Snapshot() models.Snapshot {
	snap := models.Snapshot{
		NextID:   s.nextID,
		Accounts: make([]*models.Account, 0, len(s.accounts)),
	}
	for _, a := range s.accounts {
		snap.Accounts = append(snap.Accounts, a.Clone())
	}
	return snap
}

// Restore replaces the whole table. A counter at or below the configured base
// is raised to the base so an empty snapshot never hands out small ids.
func (s *ledgerStore) Restore(snapshot models.Snapshot) error {
	accounts := make([]*models.Account, 0, len(snapshot.Accounts))
	index := make(map[int64]int, len(snapshot.Accounts))

	nextID := snapshot.NextID
	if nextID < s.idBase {
		nextID = s.idBase
	}

	for _, a := range snapshot.Accounts {
		if _, dup := index[a.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateID, a.ID)
		}
		if a.ID >= nextID {
			return fmt.Errorf("%w: account %d, counter %d", ErrIDCounterTooSmall, a.ID, nextID)
		}
		index[a.ID] = len(accounts)
		accounts = append(accounts, a.Clone())
	}

	s.accounts = accounts
	s.index = index
	s.nextID = nextID
	return nil
}
