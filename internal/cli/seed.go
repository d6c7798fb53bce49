package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mhollis/wakefieldbank/internal/factory"
	"github.com/mhollis/wakefieldbank/internal/model"
	"github.com/mhollis/wakefieldbank/internal/storage/csvfile"
	redisstorage "github.com/mhollis/wakefieldbank/internal/storage/redis"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <username:password:balance> [...]",
		Short: "Create or replace the record store with the given accounts",
		Long: `seed provisions account records, which is otherwise outside the ledger's
scope. Each argument is one account as username:password:balance, e.g.

  wakebank seed alice:hunter2:100.00 bob:swordfish:50.00`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts := make([]model.Account, 0, len(args))
			seen := make(map[string]bool)
			for _, arg := range args {
				parts := strings.SplitN(arg, ":", 3)
				if len(parts) != 3 {
					return fmt.Errorf("bad account %q: want username:password:balance", arg)
				}
				name := strings.TrimSpace(parts[0])
				if name == "" || seen[name] {
					return fmt.Errorf("bad account %q: empty or duplicate username", arg)
				}
				seen[name] = true

				// Unlike transaction amounts, a starting balance of
				// zero is legal.
				balance, err := decimal.NewFromString(strings.TrimSpace(parts[2]))
				if err != nil || balance.IsNegative() || !balance.Equal(balance.Round(2)) {
					return fmt.Errorf("bad balance %q for %q", parts[2], name)
				}
				accounts = append(accounts, model.Account{
					Username: name,
					Password: parts[1],
					Balance:  balance,
				})
			}

			switch cfg.Storage {
			case factory.StorageTypeFile, "":
				if err := csvfile.Write(cfg.AccountsFile, accounts); err != nil {
					return err
				}
			case factory.StorageTypeRedis:
				store, ok := app.Store.(*redisstorage.Storage)
				if !ok {
					return fmt.Errorf("redis storage not configured")
				}
				if err := store.Seed(cmd.Context(), accounts); err != nil {
					return err
				}
			default:
				return fmt.Errorf("seed supports the file and redis backends, not %q", cfg.Storage)
			}

			out.PrintMessage(fmt.Sprintf("Seeded %d account(s)", len(accounts)))
			return nil
		},
	}
}
