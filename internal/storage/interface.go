package storage

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mhollis/wakefieldbank/internal/model"
)

// AccountStore defines the interface for account record persistence.
// It is the only surface that touches the storage medium; every read is an
// authoritative re-read of durable state, never a cached view.
type AccountStore interface {
	// LoadAll reads every account record from the backing store, in
	// stable order. Returns model.ErrStoreUnavailable when the medium
	// cannot be opened or is malformed; callers treat that as "no
	// accounts known", never as a zero balance for an existing user.
	LoadAll(ctx context.Context) ([]model.Account, error)

	// FindByUsername returns the single record whose trimmed username
	// matches the trimmed argument, or model.ErrAccountNotFound.
	FindByUsername(ctx context.Context, username string) (*model.Account, error)

	// UpdateBalance persists a new balance for the named account,
	// leaving all other records and fields unchanged. The update is
	// atomic with respect to observers: a reader sees fully the old or
	// fully the new record set, never a mix.
	UpdateBalance(ctx context.Context, username string, balance decimal.Decimal) error
}
