package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mhollis/wakefieldbank/internal/model"
)

func newBalanceCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the current account balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, username, password, func(ctx context.Context, session *model.Session) error {
				balance, err := app.LedgerService.Balance(ctx, session)
				if err != nil {
					return err
				}
				out.Print(BalanceResult{
					Username: session.Identity,
					Balance:  balance.StringFixed(2),
				})
				return nil
			})
		},
	}

	credentialFlags(cmd, &username, &password)
	return cmd
}
