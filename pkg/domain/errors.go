// Package domain holds the error taxonomy shared by services and storage.
package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested account does not exist.
	// Failed authentication collapses into this error as well, so a caller
	// cannot tell a bad password from an unknown or deactivated account.
	ErrNotFound = errors.New("account not found")
	// ErrConflict is returned when a unique field (email, contact number,
	// account number) is already taken.
	ErrConflict = errors.New("already exists")
	// ErrInvalidArgument is returned when input fails validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInsufficientFunds is returned when a debit or transfer would drive
	// the balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInternal is returned for unexpected storage failures.
	ErrInternal = errors.New("internal error")
)
