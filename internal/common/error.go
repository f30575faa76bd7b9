// Package common defines shared constants and sentinel errors used across
// client and server layers of Keysafe. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Ledger errors. Only ErrorInsufficientBalance is produced by a balance
	// precondition; the other two are arithmetic guards.
	ErrorInsufficientBalance = errors.New("insufficient balance")
	ErrorBalanceUnderflow    = errors.New("balance underflow")
	ErrorBalanceOverflow     = errors.New("balance overflow")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
