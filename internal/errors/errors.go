package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Services return these (usually wrapped with fmt.Errorf and %w) instead of
// HTTP status codes; the API layer maps them with errors.Is. This keeps the
// business layer free of transport concerns.

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// Mapped to 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that client input failed validation.
	// Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrRateLimited signifies the per-client fixed-window limit was hit.
	// Mapped to 429 Too Many Requests with a Retry-After header.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrQuotaExceeded signifies the brand's daily generation quota was hit.
	// This is independent of ErrRateLimited: it is scoped to the brand, not
	// the network client. Mapped to 429 Too Many Requests.
	ErrQuotaExceeded = errors.New("daily generation quota exceeded")

	// ErrModelInvocation signifies an upstream model call failed (timeout,
	// quota, malformed response). Mapped to 500.
	ErrModelInvocation = errors.New("model invocation failed")

	// ErrExtraction signifies style extraction failed, either the model call
	// itself or schema validation of its output. Non-fatal inside the chat
	// flow; fatal only for direct callers.
	ErrExtraction = errors.New("style extraction failed")

	// ErrNotImplemented signifies an intentionally unavailable capability.
	// Mapped to 501 Not Implemented.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInternal signifies an unexpected server-side failure. Mapped to 500
	// with a generic message so implementation details do not leak.
	ErrInternal = errors.New("internal server error")
)
