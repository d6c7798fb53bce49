package model

import "github.com/shopspring/decimal"

// Account is one record in the bank's record store.
type Account struct {
	// Username is the unique, case-sensitive login name.
	// Comparisons always trim surrounding whitespace first.
	Username string

	// Password is the stored credential. Plaintext records compare by
	// exact string equality; values with a bcrypt prefix ("$2") are
	// verified as hashes instead.
	Password string

	// Balance is the single source of truth for the account's funds.
	// Always non-negative with two fractional digits.
	Balance decimal.Decimal
}
