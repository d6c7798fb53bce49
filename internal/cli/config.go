package cli

import (
	env "github.com/caarlos0/env/v11"
)

// Config holds CLI configuration, defaulted from the environment and
// overridable by flags.
type Config struct {
	// AccountsFile is the CSV record store path for the file backend
	AccountsFile string `env:"WAKEBANK_ACCOUNTS_FILE" envDefault:"accounts.csv"`
	// Storage selects the backend: file, memory or redis
	Storage string `env:"WAKEBANK_STORAGE" envDefault:"file"`
	// RedisURL is the connection URL for the redis backend
	RedisURL string `env:"WAKEBANK_REDIS_URL" envDefault:"redis://localhost:6379"`
	// Output is the output format: text or json
	Output string `env:"WAKEBANK_OUTPUT" envDefault:"text"`
	// Verbose enables debug logging
	Verbose bool `env:"WAKEBANK_VERBOSE"`
}

// LoadConfig returns a Config populated from the environment
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	return cfg, err
}
