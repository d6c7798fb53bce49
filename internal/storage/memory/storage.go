package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/mhollis/wakefieldbank/internal/model"
	"github.com/mhollis/wakefieldbank/internal/storage"
)

// Storage is an in-memory implementation of the account store, used for
// tests and ephemeral runs.
type Storage struct {
	mu       sync.RWMutex
	accounts map[string]model.Account // keyed by trimmed username
}

// New creates an in-memory storage seeded with the given accounts.
func New(accounts ...model.Account) *Storage {
	s := &Storage{accounts: make(map[string]model.Account)}
	for _, acct := range accounts {
		s.accounts[strings.TrimSpace(acct.Username)] = acct
	}
	return s
}

// Ensure Storage implements the interface
var _ storage.AccountStore = (*Storage)(nil)

func (s *Storage) LoadAll(ctx context.Context) ([]model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.accounts))
	for name := range s.accounts {
		names = append(names, name)
	}
	sort.Strings(names)

	accounts := make([]model.Account, 0, len(names))
	for _, name := range names {
		accounts = append(accounts, s.accounts[name])
	}
	return accounts, nil
}

func (s *Storage) FindByUsername(ctx context.Context, username string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acct, ok := s.accounts[strings.TrimSpace(username)]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return &acct, nil
}

func (s *Storage) UpdateBalance(ctx context.Context, username string, balance decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.TrimSpace(username)
	acct, ok := s.accounts[name]
	if !ok {
		return model.ErrAccountNotFound
	}
	acct.Balance = balance
	s.accounts[name] = acct
	return nil
}
