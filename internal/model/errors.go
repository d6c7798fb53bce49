package model

import "errors"

// Common errors used across the application
var (
	// Store errors
	ErrStoreUnavailable = errors.New("record store unavailable")
	ErrAccountNotFound  = errors.New("account not found")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrSessionExpired     = errors.New("session expired")

	// Ledger errors
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
