package model

import "errors"

// Error taxonomy of the client core. Every failure surfaced by the remote
// boundary or the local guards wraps exactly one of these sentinels.
var (
	// ErrNetwork: transport failure, backend unreachable.
	ErrNetwork = errors.New("network error")

	// ErrUnauthorized: HTTP 401. Handled globally (session teardown),
	// never a per-call retry condition.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation: a client-side precondition failed before any
	// network call was made.
	ErrValidation = errors.New("validation failed")

	// ErrInsufficientFunds: withdrawal amount exceeds the last known
	// fund balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrOperationFailed: non-2xx response for an otherwise valid
	// request; the wrapping error carries the response body as detail.
	ErrOperationFailed = errors.New("operation failed")
)
