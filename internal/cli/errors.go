package cli

import (
	"errors"

	"github.com/mhollis/wakefieldbank/internal/model"
)

// userMessage maps ledger errors to what the terminal shows. Credential
// failures stay deliberately vague, store trouble becomes "try again
// later", and input errors explain what to fix.
func userMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, model.ErrStoreUnavailable):
		return "The bank is temporarily unavailable, please try again later"
	case errors.Is(err, model.ErrAccountNotFound):
		return "Something went wrong with your account, please contact the bank"
	case errors.Is(err, model.ErrNotAuthenticated):
		return "You are not logged in"
	case errors.Is(err, model.ErrSessionExpired):
		return "Your session has expired, please log in again"
	case errors.Is(err, model.ErrInvalidAmount):
		return "Enter a positive amount with at most two decimal places"
	case errors.Is(err, model.ErrInsufficientFunds):
		return "Insufficient funds"
	default:
		return err.Error()
	}
}
