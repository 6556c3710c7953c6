package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLLMUnavailable indicates no completion provider is configured.
	// AI-assisted features degrade to deterministic fallbacks.
	ErrLLMUnavailable = errors.New("completion provider unavailable")

	// ErrRateLimited indicates a completion provider rejected the request
	// with a rate-limit response. The provider is skipped for a cool-down
	// window before being tried again.
	ErrRateLimited = errors.New("rate limited")

	// ErrStoreUnavailable indicates the proposal store is not configured.
	ErrStoreUnavailable = errors.New("proposal store unavailable")
)
