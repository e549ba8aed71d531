package timeedit

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a course code has no search result.
	ErrNotFound = errors.New("timeedit: not found")

	// ErrMalformedData is returned when the feed violates its expected
	// shape (missing reservations field, short column rows, bad dates).
	ErrMalformedData = errors.New("timeedit: malformed data")
)

// StatusError is returned when TimeEdit answers with a non-2xx status.
// Body holds the response body so callers can inspect what came back.
type StatusError struct {
	Status int
	Body   []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("timeedit: unexpected status %d", e.Status)
}
