package cli

import (
	"bufio"
	"context"

	"github.com/spf13/cobra"

	"github.com/mhollis/wakefieldbank/internal/model"
)

// credentialFlags adds the shared --username/--password flags to a
// one-shot command.
func credentialFlags(cmd *cobra.Command, username, password *string) {
	cmd.Flags().StringVarP(username, "username", "u", "", "Account username")
	cmd.Flags().StringVarP(password, "password", "p", "", "Account password (prompted when omitted)")
}

// withSession logs in (prompting for missing credentials), runs fn with
// the resulting session, and logs out again. The session never outlives
// the command.
func withSession(cmd *cobra.Command, username, password string, fn func(ctx context.Context, session *model.Session) error) error {
	ctx := cmd.Context()
	reader := bufio.NewReader(cmd.InOrStdin())

	var err error
	if username == "" {
		if username, err = promptLine(cmd, reader, "Username: "); err != nil {
			return err
		}
	}
	if password == "" {
		if password, err = promptSecret(cmd, reader, "Password: "); err != nil {
			return err
		}
	}

	session, err := app.AuthService.Login(ctx, username, password)
	if err != nil {
		return err
	}
	defer app.AuthService.Logout(session)

	return fn(ctx, session)
}
