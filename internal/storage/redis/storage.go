package redis

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/mhollis/wakefieldbank/internal/model"
	"github.com/mhollis/wakefieldbank/internal/storage"
)

const (
	fieldPassword = "password"
	fieldBalance  = "balance"
)

// Storage is a Redis-backed implementation of the account store. Each
// account lives in a hash keyed by username, with a roster set tracking
// the full record set.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}

	return &Storage{client: client, cfg: cfg}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{client: client, cfg: cfg}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.AccountStore = (*Storage)(nil)

func (s *Storage) LoadAll(ctx context.Context) ([]model.Account, error) {
	names, err := s.client.SMembers(ctx, rosterKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}
	sort.Strings(names)

	accounts := make([]model.Account, 0, len(names))
	for _, name := range names {
		acct, err := s.get(ctx, name)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *acct)
	}
	return accounts, nil
}

func (s *Storage) FindByUsername(ctx context.Context, username string) (*model.Account, error) {
	return s.get(ctx, strings.TrimSpace(username))
}

func (s *Storage) UpdateBalance(ctx context.Context, username string, balance decimal.Decimal) error {
	key := accountKey(username)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}
	if exists == 0 {
		return model.ErrAccountNotFound
	}

	if err := s.client.HSet(ctx, key, fieldBalance, balance.StringFixed(2)).Err(); err != nil {
		return fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *Storage) get(ctx context.Context, username string) (*model.Account, error) {
	fields, err := s.client.HGetAll(ctx, accountKey(username)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}
	if len(fields) == 0 {
		return nil, model.ErrAccountNotFound
	}

	balance, err := decimal.NewFromString(fields[fieldBalance])
	if err != nil || balance.IsNegative() {
		return nil, fmt.Errorf("%w: bad balance %q for %q", model.ErrStoreUnavailable, fields[fieldBalance], username)
	}

	return &model.Account{
		Username: username,
		Password: fields[fieldPassword],
		Balance:  balance,
	}, nil
}

// Seed writes the given accounts into Redis. Provisioning is outside the
// ledger engine; this exists for tests and operator setup.
func (s *Storage) Seed(ctx context.Context, accounts []model.Account) error {
	pipe := s.client.Pipeline()
	for _, acct := range accounts {
		name := strings.TrimSpace(acct.Username)
		pipe.HSet(ctx, accountKey(name),
			fieldPassword, acct.Password,
			fieldBalance, acct.Balance.StringFixed(2))
		pipe.SAdd(ctx, rosterKey, name)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}
	return nil
}
