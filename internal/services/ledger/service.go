package ledger

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/mhollis/wakefieldbank/internal/model"
	"github.com/mhollis/wakefieldbank/internal/storage"
)

// Service exposes balance query, deposit and withdraw for an authenticated
// session. Every balance a caller sees is re-read from the record store;
// nothing is computed from a cached in-memory value, so the displayed
// balance can never drift from the durable one.
type Service struct {
	store  storage.AccountStore
	logger *slog.Logger

	// mu makes each read-modify-write sequence a critical section:
	// a mutation's re-read and write-back are never interleaved with
	// another ledger call.
	mu sync.Mutex
}

// New creates a new ledger Service
func New(store storage.AccountStore, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Balance returns the stored balance for the session's identity.
func (s *Service) Balance(ctx context.Context, session *model.Session) (decimal.Decimal, error) {
	if !session.Authenticated() {
		return decimal.Zero, model.ErrNotAuthenticated
	}

	acct, err := s.currentAccount(ctx, session.Identity)
	if err != nil {
		return decimal.Zero, err
	}
	return acct.Balance, nil
}

// Deposit parses and validates the raw amount text, adds it to the current
// stored balance and persists the result, returning the new balance.
// Nothing is persisted or reported unless the write succeeds.
func (s *Service) Deposit(ctx context.Context, session *model.Session, amountText string) (decimal.Decimal, error) {
	return s.mutate(ctx, session, amountText, func(current, amount decimal.Decimal) (decimal.Decimal, error) {
		return current.Add(amount), nil
	})
}

// Withdraw parses and validates the raw amount text, subtracts it from the
// current stored balance and persists the result, returning the new
// balance. Withdrawing more than the current balance fails with
// ErrInsufficientFunds and changes nothing.
func (s *Service) Withdraw(ctx context.Context, session *model.Session, amountText string) (decimal.Decimal, error) {
	return s.mutate(ctx, session, amountText, func(current, amount decimal.Decimal) (decimal.Decimal, error) {
		if amount.GreaterThan(current) {
			return decimal.Zero, model.ErrInsufficientFunds
		}
		return current.Sub(amount), nil
	})
}

// mutate runs one validated read-modify-write transaction. Validation
// happens fully before any read or write; the store write happens only
// after apply succeeds.
func (s *Service) mutate(
	ctx context.Context,
	session *model.Session,
	amountText string,
	apply func(current, amount decimal.Decimal) (decimal.Decimal, error),
) (decimal.Decimal, error) {
	if !session.Authenticated() {
		return decimal.Zero, model.ErrNotAuthenticated
	}

	amount, err := model.ParseAmount(amountText)
	if err != nil {
		return decimal.Zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acct, err := s.currentAccount(ctx, session.Identity)
	if err != nil {
		return decimal.Zero, err
	}

	newBalance, err := apply(acct.Balance, amount)
	if err != nil {
		return decimal.Zero, err
	}

	if err := s.store.UpdateBalance(ctx, acct.Username, newBalance); err != nil {
		return decimal.Zero, err
	}

	s.logger.Info("balance updated",
		slog.String("username", acct.Username),
		slog.String("balance", newBalance.StringFixed(2)))
	return newBalance, nil
}

// currentAccount re-reads the authoritative record for an identity.
// A missing record after a successful login means the store is
// inconsistent, which is worth a log line before the error propagates.
func (s *Service) currentAccount(ctx context.Context, identity string) (*model.Account, error) {
	acct, err := s.store.FindByUsername(ctx, identity)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			s.logger.Warn("account record missing for authenticated session",
				slog.String("username", identity))
		}
		return nil, err
	}
	return acct, nil
}
