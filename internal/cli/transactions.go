package cli

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mhollis/wakefieldbank/internal/model"
)

func newDepositCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "deposit <amount>",
		Short: "Deposit an amount into the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransaction(cmd, username, password, "Deposit", args[0], app.LedgerService.Deposit)
		},
	}

	credentialFlags(cmd, &username, &password)
	return cmd
}

func newWithdrawCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "withdraw <amount>",
		Short: "Withdraw an amount from the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransaction(cmd, username, password, "Withdrawal", args[0], app.LedgerService.Withdraw)
		},
	}

	credentialFlags(cmd, &username, &password)
	return cmd
}

func runTransaction(
	cmd *cobra.Command,
	username, password, operation, amountText string,
	op func(ctx context.Context, session *model.Session, amountText string) (decimal.Decimal, error),
) error {
	return withSession(cmd, username, password, func(ctx context.Context, session *model.Session) error {
		newBalance, err := op(ctx, session, amountText)
		if err != nil {
			return err
		}

		// Echo the amount back normalized to two places; validation
		// already guaranteed it parses.
		amount, _ := model.ParseAmount(amountText)
		out.Print(TransactionResult{
			Username:   session.Identity,
			Operation:  operation,
			Amount:     amount.StringFixed(2),
			NewBalance: newBalance.StringFixed(2),
		})
		return nil
	})
}
