package region

import (
	"fmt"
	"sync"
)

// HeapMemory is a region backed by an in-process byte slice. Its contents live
// as long as the process does.
type HeapMemory struct {
	mu       sync.RWMutex
	data     []byte
	maxPages uint64
	closed   bool
}

// NewHeapMemory creates an empty heap region that may grow to maxPages pages
// (zero means unlimited)
func NewHeapMemory(maxPages uint64) *HeapMemory {
	return &HeapMemory{maxPages: maxPages}
}

// Size returns the current size in pages
func (m *HeapMemory) Size() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return uint64(len(m.data)) / PageSize
}

// Grow extends the region by the given number of zeroed pages
func (m *HeapMemory) Grow(pages uint64) error {
	if pages == 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	current := uint64(len(m.data)) / PageSize
	next, err := checkGrowth(current, pages, m.maxPages)
	if err != nil {
		return fmt.Errorf("%w: grow by %d pages from %d (max %d)", err, pages, current, m.maxPages)
	}

	extra := int((next - current) * PageSize)
	if cap(m.data)-len(m.data) >= extra {
		// Reslicing exposes bytes that are still zero: the region never shrinks,
		// so spare capacity has never been written
		m.data = m.data[:len(m.data)+extra]
	} else {
		m.data = append(m.data, make([]byte, extra)...)
	}
	return nil
}

// ReadAt implements io.ReaderAt
func (m *HeapMemory) ReadAt(p []byte, off int64) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return 0, ErrClosed
	}
	if err := checkRange(off, len(p), uint64(len(m.data))); err != nil {
		return 0, fmt.Errorf("%w: read %d bytes at %d, size %d", err, len(p), off, len(m.data))
	}
	return copy(p, m.data[off:]), nil
}

// WriteAt implements io.WriterAt
func (m *HeapMemory) WriteAt(p []byte, off int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return 0, ErrClosed
	}
	if err := checkRange(off, len(p), uint64(len(m.data))); err != nil {
		return 0, fmt.Errorf("%w: write %d bytes at %d, size %d", err, len(p), off, len(m.data))
	}
	return copy(m.data[off:], p), nil
}

// Sync is a no-op for heap regions
func (m *HeapMemory) Sync() error {
	return nil
}

// Close releases the backing slice
func (m *HeapMemory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.data = nil
	return nil
}
