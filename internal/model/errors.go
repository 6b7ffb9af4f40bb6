package model

import "errors"

// Common errors used across the application
var (
	// Reference data errors
	ErrPlayerNotFound      = errors.New("player not found")
	ErrPenaltyTypeNotFound = errors.New("penalty type not found")
	ErrAlreadyExists       = errors.New("already exists")

	// Ledger errors
	ErrPenaltyNotFound = errors.New("penalty not found")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidAmount   = errors.New("amount must not be negative")
	ErrEmptyName       = errors.New("name must not be empty")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidSession   = errors.New("invalid or expired session")
	ErrInvalidCode      = errors.New("invalid access code")
)
