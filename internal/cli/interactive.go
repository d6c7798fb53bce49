package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mhollis/wakefieldbank/internal/model"
)

// runInteractive drives the welcome → login → menu flow: log in, then
// check balance, deposit or withdraw until logout or exit. Failures are
// shown inline and the prompt repeats; only a session or store problem
// sends the user back to the login screen.
func runInteractive(cmd *cobra.Command) error {
	w := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())

	fmt.Fprintln(w, "Welcome to Wakefield Bank")

	for {
		fmt.Fprintln(w)
		choice, err := promptLine(cmd, reader, "[l]og in or [q]uit: ")
		if err != nil {
			return quietEOF(err)
		}

		switch choice {
		case "l", "login":
			if err := interactiveSession(cmd, reader); err != nil {
				return quietEOF(err)
			}
		case "q", "quit", "exit":
			fmt.Fprintln(w, "Goodbye")
			return nil
		}
	}
}

// interactiveSession handles one login and the menu loop that follows.
func interactiveSession(cmd *cobra.Command, reader *bufio.Reader) error {
	ctx := cmd.Context()
	w := cmd.OutOrStdout()

	username, err := promptLine(cmd, reader, "Username: ")
	if err != nil {
		return err
	}
	password, err := promptSecret(cmd, reader, "Password: ")
	if err != nil {
		return err
	}

	session, err := app.AuthService.Login(ctx, username, password)
	if err != nil {
		fmt.Fprintln(w, userMessage(err))
		return nil
	}
	defer app.AuthService.Logout(session)

	fmt.Fprintf(w, "Logged in as %s\n", session.Identity)

	for {
		fmt.Fprintln(w)
		choice, err := promptLine(cmd, reader, "[b]alance, [d]eposit, [w]ithdraw, [l]og out: ")
		if err != nil {
			return err
		}

		switch choice {
		case "b", "balance":
			balance, err := app.LedgerService.Balance(ctx, session)
			if err != nil {
				if !showInline(w, err) {
					return nil
				}
				continue
			}
			fmt.Fprintf(w, "Balance: $%s\n", balance.StringFixed(2))

		case "d", "deposit":
			amount, err := promptLine(cmd, reader, "How much would you like to deposit? ")
			if err != nil {
				return err
			}
			newBalance, err := app.LedgerService.Deposit(ctx, session, amount)
			if err != nil {
				if !showInline(w, err) {
					return nil
				}
				continue
			}
			fmt.Fprintf(w, "New balance: $%s\n", newBalance.StringFixed(2))

		case "w", "withdraw":
			amount, err := promptLine(cmd, reader, "How much would you like to withdraw? ")
			if err != nil {
				return err
			}
			newBalance, err := app.LedgerService.Withdraw(ctx, session, amount)
			if err != nil {
				if !showInline(w, err) {
					return nil
				}
				continue
			}
			fmt.Fprintf(w, "New balance: $%s\n", newBalance.StringFixed(2))

		case "l", "logout":
			fmt.Fprintln(w, "Logged out")
			return nil
		}
	}
}

// showInline prints the failure and reports whether the menu should keep
// going. Input and business-rule errors are retryable; an unauthenticated
// or broken session forces a return to the login screen.
func showInline(w io.Writer, err error) bool {
	fmt.Fprintln(w, userMessage(err))
	return !errors.Is(err, model.ErrNotAuthenticated) && !errors.Is(err, model.ErrSessionExpired)
}

// quietEOF treats end of input as a normal exit for the interactive loop.
func quietEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
