package engine

import (
	"errors"
	"fmt"

	"github.com/KevoDB/chunkbench/pkg/codec"
	"github.com/KevoDB/chunkbench/pkg/ordmap"
	"github.com/KevoDB/chunkbench/pkg/region"
	"github.com/KevoDB/chunkbench/pkg/slot"
)

var (
	// ErrEngineClosed is returned when operations are performed on a closed engine
	ErrEngineClosed = errors.New("engine is closed")
	// ErrAbsentEntry is returned when a load finds no stored record for a key
	ErrAbsentEntry = errors.New("absent entry")
	// ErrSizeExceeded is returned when a value is larger than its namespace allows
	ErrSizeExceeded = errors.New("size exceeded")
	// ErrOutOfBounds is returned for reads past the buffer or region, and for
	// any access to a buffer that was never initialized
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrInvalidEncoding is returned when a buffer range is not valid UTF-8
	ErrInvalidEncoding = errors.New("invalid encoding")
	// ErrResourceExhausted is returned when a region cannot grow far enough
	ErrResourceExhausted = errors.New("resource exhausted")
	// ErrCorrupt is returned when stored records cannot be decoded
	ErrCorrupt = errors.New("corrupt storage")
)

// classify wraps err with the engine sentinel for its kind. The component
// error stays in the chain so errors.Is matches both.
func classify(err error) error {
	var kind error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrEngineClosed), errors.Is(err, ErrAbsentEntry),
		errors.Is(err, ErrSizeExceeded), errors.Is(err, ErrOutOfBounds),
		errors.Is(err, ErrInvalidEncoding), errors.Is(err, ErrResourceExhausted),
		errors.Is(err, ErrCorrupt):
		return err
	case errors.Is(err, codec.ErrSizeExceeded):
		kind = ErrSizeExceeded
	case errors.Is(err, slot.ErrOutOfBounds), errors.Is(err, region.ErrOutOfBounds):
		kind = ErrOutOfBounds
	case errors.Is(err, slot.ErrInvalidEncoding):
		kind = ErrInvalidEncoding
	case errors.Is(err, region.ErrResourceExhausted):
		kind = ErrResourceExhausted
	case errors.Is(err, ordmap.ErrCorrupt), errors.Is(err, codec.ErrCorruptPayload):
		kind = ErrCorrupt
	case errors.Is(err, ordmap.ErrClosed), errors.Is(err, region.ErrClosed):
		kind = ErrEngineClosed
	default:
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}

// ErrorType names the kind of err for statistics and metrics
func ErrorType(err error) string {
	switch {
	case errors.Is(err, ErrEngineClosed):
		return "engine_closed"
	case errors.Is(err, ErrAbsentEntry):
		return "absent_entry"
	case errors.Is(err, ErrSizeExceeded):
		return "size_exceeded"
	case errors.Is(err, ErrOutOfBounds):
		return "out_of_bounds"
	case errors.Is(err, ErrInvalidEncoding):
		return "invalid_encoding"
	case errors.Is(err, ErrResourceExhausted):
		return "resource_exhausted"
	case errors.Is(err, ErrCorrupt):
		return "corrupt"
	default:
		return "internal"
	}
}
