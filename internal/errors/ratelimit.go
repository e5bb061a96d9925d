package errors

import "fmt"

// RateLimitedError carries the seconds until the client's window resets so
// the API layer can emit a Retry-After header. errors.Is matches it against
// ErrRateLimited.
type RateLimitedError struct {
	RetryAfter int
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limit exceeded, try again in %d seconds", e.RetryAfter)
}

func (e *RateLimitedError) Is(target error) bool {
	return target == ErrRateLimited
}
