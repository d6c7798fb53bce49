package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mhollis/wakefieldbank/internal/dependencies/clock"
	"github.com/mhollis/wakefieldbank/internal/services/auth"
	"github.com/mhollis/wakefieldbank/internal/services/ledger"
	"github.com/mhollis/wakefieldbank/internal/storage"
	"github.com/mhollis/wakefieldbank/internal/storage/csvfile"
	"github.com/mhollis/wakefieldbank/internal/storage/memory"
	redisstorage "github.com/mhollis/wakefieldbank/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeFile   = "file"
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Store storage.AccountStore

	// External dependencies
	Clock clock.Clock

	// Services
	AuthService   *auth.Service
	LedgerService *ledger.Service
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the storage backend ("file", "memory" or "redis")
	// If empty, defaults to "file"
	StorageType string
	// AccountsFile is the CSV record store path (required for "file" storage)
	AccountsFile string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.AccountStore
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeFile
	}

	switch storageType {
	case StorageTypeFile:
		if cfg.AccountsFile == "" {
			return nil, errors.New("AccountsFile required when StorageType is file")
		}
		store = csvfile.New(cfg.AccountsFile)
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'file', 'memory' or 'redis'")
	}

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clock.New(), authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.AccountStore, clk clock.Clock, authCfg auth.Config, logger *slog.Logger) *App {
	return &App{
		Store:         store,
		Clock:         clk,
		AuthService:   auth.New(store, clk, authCfg, logger),
		LedgerService: ledger.New(store, logger),
	}
}
