package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhollis/wakefieldbank/internal/factory"
	redisstorage "github.com/mhollis/wakefieldbank/internal/storage/redis"
)

var (
	cfg *Config
	app *factory.App
	out *Output
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg, _ = LoadConfig()

	rootCmd := &cobra.Command{
		Use:   "wakebank",
		Short: "Wakefield Bank account ledger",
		Long: `wakebank is the Wakefield Bank account ledger terminal client.

Run it without arguments for an interactive session (log in, then check
your balance, deposit or withdraw), or use the one-shot subcommands with
explicit credentials.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))

			factoryCfg := factory.Config{
				StorageType:  cfg.Storage,
				AccountsFile: cfg.AccountsFile,
				Logger:       logger,
			}
			if cfg.Storage == factory.StorageTypeRedis {
				redisCfg := redisstorage.DefaultConfig()
				redisCfg.URL = cfg.RedisURL
				factoryCfg.RedisConfig = &redisCfg
			}

			var err error
			app, err = factory.New(factoryCfg)
			if err != nil {
				return err
			}

			out = NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Output)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.AccountsFile, "accounts-file", cfg.AccountsFile, "Record store CSV path (env: WAKEBANK_ACCOUNTS_FILE)")
	rootCmd.PersistentFlags().StringVar(&cfg.Storage, "storage", cfg.Storage, "Storage backend: file, memory, redis (env: WAKEBANK_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for the redis backend (env: WAKEBANK_REDIS_URL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newBalanceCmd())
	rootCmd.AddCommand(newDepositCmd())
	rootCmd.AddCommand(newWithdrawCmd())
	rootCmd.AddCommand(newSeedCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		if out != nil {
			out.PrintError(err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}
