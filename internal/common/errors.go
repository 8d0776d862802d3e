// Package common defines the sentinel errors shared across the storage,
// repository, and service layers. Callers match them with errors.Is.
package common

import "errors"

var (
	// Validation / input errors.
	ErrValidation       = errors.New("missing required field")
	ErrPasswordMismatch = errors.New("passwords do not match")

	// User directory errors.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Lookup errors.
	ErrNotFound = errors.New("not found")

	// Favorites errors.
	ErrAlreadyFavorited = errors.New("recipe already in favorites")

	// Storage errors.
	ErrMalformedData    = errors.New("malformed stored data")
	ErrStoreUnavailable = errors.New("storage unavailable")
)
