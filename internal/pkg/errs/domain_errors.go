package errs

import "errors"

// Taxonomy marks. Usecases mark their errors with exactly one of these and the
// HTTP layer maps them to status codes.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal error")

	// ErrUpstream covers every failure of an external provider.
	ErrUpstream = errors.New("upstream error")
	// ErrRateLimited is always combined with ErrUpstream.
	ErrRateLimited = errors.New("upstream rate limited")
)

// Upstream marks err as an upstream failure.
func Upstream(err error) error {
	return Mark(err, ErrUpstream)
}

// RateLimited marks err as an upstream failure caused by the call budget.
func RateLimited(err error) error {
	return Mark(Mark(err, ErrUpstream), ErrRateLimited)
}
