// Package region provides linear, page-granular, growable memory regions and a
// manager that hands them out by small integer IDs.
package region

import (
	"errors"
	"io"
)

// PageSize is the granularity of region growth (64 KiB)
const PageSize = 64 * 1024

var (
	// ErrOutOfBounds is returned when an access falls outside the region
	ErrOutOfBounds = errors.New("region: access out of bounds")
	// ErrResourceExhausted is returned when a region cannot grow any further
	ErrResourceExhausted = errors.New("region: resource exhausted")
	// ErrClosed is returned when a closed region or manager is used
	ErrClosed = errors.New("region: closed")
	// ErrBackendUnsupported is returned when a backend is not available on this platform
	ErrBackendUnsupported = errors.New("region: backend unsupported")
)

// Memory is a linear addressable region whose size is a whole number of pages.
// Regions only ever grow. Implementations are safe for concurrent use.
type Memory interface {
	io.ReaderAt
	io.WriterAt

	// Size returns the current size in pages
	Size() uint64

	// Grow extends the region by the given number of pages. Growing by zero
	// pages is a no-op. On failure the size is left unchanged.
	Grow(pages uint64) error

	// Sync flushes the region to its backing store, if it has one
	Sync() error

	// Close releases the region
	Close() error
}

// SizeBytes returns the size of a region in bytes
func SizeBytes(mem Memory) uint64 {
	return mem.Size() * PageSize
}

// checkRange validates an access of n bytes at off against a region of size bytes
func checkRange(off int64, n int, size uint64) error {
	if off < 0 {
		return ErrOutOfBounds
	}
	end := uint64(off) + uint64(n)
	if end < uint64(off) || end > size {
		return ErrOutOfBounds
	}
	return nil
}

// checkGrowth returns the new page count after growing current by pages,
// enforcing maxPages (zero means unlimited)
func checkGrowth(current, pages, maxPages uint64) (uint64, error) {
	next := current + pages
	if next < current {
		return current, ErrResourceExhausted
	}
	if maxPages > 0 && next > maxPages {
		return current, ErrResourceExhausted
	}
	// Guard the byte size against overflow as well
	if next > (1<<63-1)/PageSize {
		return current, ErrResourceExhausted
	}
	return next, nil
}
