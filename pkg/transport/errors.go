package transport

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMaxRetriesExceeded is returned once every attempt of a retried call failed
	ErrMaxRetriesExceeded = errors.New("maximum retries exceeded")

	// ErrCircuitOpen is returned without calling the server while the breaker is open
	ErrCircuitOpen = errors.New("circuit breaker is open")

	// ErrConnectionFailed marks a call that never reached a serving engine
	ErrConnectionFailed = errors.New("connection failed")
)

// TemporaryError marks a failure the same call may get past later. RetryAfter
// is the server's hint for the earliest useful retry; zero means none was
// given.
type TemporaryError struct {
	Err        error
	RetryAfter time.Duration
}

func (e *TemporaryError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%v (retry after %v)", e.Err, e.RetryAfter)
	}
	return e.Err.Error()
}

func (e *TemporaryError) Unwrap() error {
	return e.Err
}

// Temporary marks err as worth retrying
func Temporary(err error) error {
	return &TemporaryError{Err: err}
}

// TemporaryAfter marks err as worth retrying no sooner than after d
func TemporaryAfter(err error, d time.Duration) error {
	return &TemporaryError{Err: err, RetryAfter: d}
}

// IsTemporary reports whether err, or any error it wraps, is temporary
func IsTemporary(err error) bool {
	var tempErr *TemporaryError
	return errors.As(err, &tempErr)
}

// RetryAfter returns the retry hint carried by err, or zero
func RetryAfter(err error) time.Duration {
	var tempErr *TemporaryError
	if errors.As(err, &tempErr) {
		return tempErr.RetryAfter
	}
	return 0
}
