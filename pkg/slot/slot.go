// Package slot holds the single active buffer that store operations read from
// and load operations replace.
package slot

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"unicode/utf8"
)

var (
	// ErrOutOfBounds is returned for ranges outside the buffer and for
	// negative sizes or counts
	ErrOutOfBounds = errors.New("slot: out of bounds")
	// ErrUninitialized is returned when the buffer has never been created.
	// It matches ErrOutOfBounds as well.
	ErrUninitialized = fmt.Errorf("%w: buffer not initialized", ErrOutOfBounds)
	// ErrInvalidEncoding is returned when a range is not valid UTF-8
	ErrInvalidEncoding = errors.New("slot: invalid utf-8")
)

// Slot is a nullable byte buffer guarded by a mutex. The zero value is an
// empty, uninitialized slot ready for use.
type Slot struct {
	mu          sync.Mutex
	buf         []byte
	initialized bool
}

// New creates an empty slot
func New() *Slot {
	return &Slot{}
}

// Append appends times copies of text, creating the buffer on first use with
// room for exactly len(text)*times bytes. It returns the new length.
func (s *Slot) Append(text string, times int) (int, error) {
	if times < 0 {
		return 0, fmt.Errorf("%w: negative repeat count %d", ErrOutOfBounds, times)
	}
	if times > 0 && len(text) > math.MaxInt/times {
		return 0, fmt.Errorf("%w: %d x %d bytes overflows", ErrOutOfBounds, times, len(text))
	}
	extra := len(text) * times

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		s.buf = make([]byte, 0, extra)
		s.initialized = true
	}
	if len(s.buf) > math.MaxInt-extra {
		return 0, fmt.Errorf("%w: buffer of %d bytes cannot grow by %d", ErrOutOfBounds, len(s.buf), extra)
	}

	for i := 0; i < times; i++ {
		s.buf = append(s.buf, text...)
	}
	return len(s.buf), nil
}

// Clear truncates the buffer to zero length and keeps its capacity. It does
// nothing on an uninitialized slot.
func (s *Slot) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		s.buf = s.buf[:0]
	}
}

// Zero overwrites every byte with 0 and keeps the length. It does nothing on
// an uninitialized slot.
func (s *Slot) Zero() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.buf)
}

// ReadRange returns size bytes starting at offset as a string
func (s *Slot) ReadRange(offset, size int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return "", ErrUninitialized
	}
	if offset < 0 || size < 0 || offset > len(s.buf) || size > len(s.buf)-offset {
		return "", fmt.Errorf("%w: range [%d, +%d) of %d bytes", ErrOutOfBounds, offset, size, len(s.buf))
	}

	part := s.buf[offset : offset+size]
	if !utf8.Valid(part) {
		return "", fmt.Errorf("%w: range [%d, +%d)", ErrInvalidEncoding, offset, size)
	}
	return string(part), nil
}

// Size returns the buffer length
func (s *Slot) Size() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return 0, ErrUninitialized
	}
	return len(s.buf), nil
}

// Initialized reports whether the buffer exists
func (s *Slot) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// View calls fn with the buffer while holding the lock. fn must not retain or
// modify the slice.
func (s *Slot) View(fn func(buf []byte) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return ErrUninitialized
	}
	return fn(s.buf)
}

// Replace installs buf as the buffer, initializing the slot if needed. The
// slot takes ownership of buf.
func (s *Slot) Replace(buf []byte) {
	if buf == nil {
		buf = []byte{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf = buf
	s.initialized = true
}
