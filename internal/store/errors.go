package store

import "errors"

// Error taxonomy for domain mutations. Handlers map these onto HTTP statuses
// with errors.Is; everything is wrapped with context at the call site.
var (
	// ErrNotFound means a referenced id is absent from the store.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition means a state-machine edge is not permitted.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrInvalidState means a precondition on overlay fields is not met.
	ErrInvalidState = errors.New("invalid state")

	// ErrValidation means the input itself is malformed.
	ErrValidation = errors.New("validation failed")
)
