package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/mhollis/wakefieldbank/internal/model"
	"github.com/mhollis/wakefieldbank/internal/storage"
)

// header is the exact column layout of the record store.
var header = []string{"username", "password", "balance"}

// Storage is the canonical flat-file implementation of the account store:
// a CSV file with a header row and one account per row. The file is read
// in full on every query and rewritten in full on every mutation.
type Storage struct {
	path string

	// mu serializes read-modify-write sequences so a balance update is
	// never interleaved with another ledger call in this process.
	mu sync.Mutex
}

// New creates a CSV-file storage backed by the given path.
// The file is not opened until the first operation.
func New(path string) *Storage {
	return &Storage{path: path}
}

// Ensure Storage implements the interface
var _ storage.AccountStore = (*Storage)(nil)

func (s *Storage) LoadAll(ctx context.Context) ([]model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

func (s *Storage) FindByUsername(ctx context.Context, username string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.find(username)
}

func (s *Storage) UpdateBalance(ctx context.Context, username string, balance decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.readAll()
	if err != nil {
		return err
	}

	name := strings.TrimSpace(username)
	found := false
	for i := range accounts {
		if strings.TrimSpace(accounts[i].Username) == name {
			accounts[i].Balance = balance
			found = true
			break
		}
	}
	if !found {
		return model.ErrAccountNotFound
	}

	return writeAll(s.path, accounts)
}

// readAll opens the file, checks the header and parses every row.
// Any I/O failure or malformed content maps to ErrStoreUnavailable.
func (s *Storage) readAll() ([]model.Account, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing header row", model.ErrStoreUnavailable)
	}

	if len(rows[0]) != len(header) {
		return nil, fmt.Errorf("%w: unexpected header %v", model.ErrStoreUnavailable, rows[0])
	}
	for i, col := range header {
		if strings.TrimSpace(rows[0][i]) != col {
			return nil, fmt.Errorf("%w: unexpected header %v", model.ErrStoreUnavailable, rows[0])
		}
	}

	accounts := make([]model.Account, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("%w: row has %d fields", model.ErrStoreUnavailable, len(row))
		}
		balance, err := decimal.NewFromString(strings.TrimSpace(row[2]))
		if err != nil || balance.IsNegative() {
			return nil, fmt.Errorf("%w: bad balance %q for %q", model.ErrStoreUnavailable, row[2], row[0])
		}
		accounts = append(accounts, model.Account{
			Username: row[0],
			Password: row[1],
			Balance:  balance,
		})
	}

	return accounts, nil
}

func (s *Storage) find(username string) (*model.Account, error) {
	accounts, err := s.readAll()
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(username)
	for i := range accounts {
		if strings.TrimSpace(accounts[i].Username) == name {
			acct := accounts[i]
			return &acct, nil
		}
	}
	return nil, model.ErrAccountNotFound
}

// writeAll rewrites the whole record set atomically: the new content goes
// to a temp file in the same directory which then replaces the store via
// rename, so a crash mid-write never corrupts the previous durable state.
func writeAll(path string, accounts []model.Account) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}
	tmpName := tmp.Name()

	w := csv.NewWriter(tmp)
	rows := make([][]string, 0, len(accounts)+1)
	rows = append(rows, header)
	for _, acct := range accounts {
		rows = append(rows, []string{acct.Username, acct.Password, acct.Balance.StringFixed(2)})
	}
	if err := w.WriteAll(rows); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}
	return nil
}

// Write creates or replaces a record store file with the given accounts.
// Account provisioning is outside the ledger engine; this exists for the
// seed command and for test fixtures.
func Write(path string, accounts []model.Account) error {
	return writeAll(path, accounts)
}
