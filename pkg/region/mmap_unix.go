//go:build unix

package region

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// MmapMemory is a region backed by a file mapped read/write into memory.
// Growing the region extends the file and remaps it, so the contents survive
// process restarts.
type MmapMemory struct {
	mu       sync.RWMutex
	path     string
	f        *os.File
	data     []byte
	maxPages uint64
	closed   bool
}

// OpenMmapMemory opens or creates the region file at path. A file whose size is
// not a whole number of pages is extended to the next page boundary.
func OpenMmapMemory(path string, maxPages uint64) (*MmapMemory, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("region: open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("region: stat %s: %w", path, err)
	}

	m := &MmapMemory{path: path, f: f, maxPages: maxPages}

	size := info.Size()
	if rem := size % PageSize; rem != 0 {
		size += PageSize - rem
		if err := f.Truncate(size); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("region: align %s: %w", path, err)
		}
	}

	if err := m.remap(size); err != nil {
		_ = f.Close()
		return nil, err
	}
	return m, nil
}

// remap replaces the current mapping with one covering size bytes
func (m *MmapMemory) remap(size int64) error {
	if m.data != nil {
		if err := unix.Munmap(m.data); err != nil {
			return fmt.Errorf("region: munmap %s: %w", m.path, err)
		}
		m.data = nil
	}
	if size == 0 {
		return nil
	}

	data, err := unix.Mmap(int(m.f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return fmt.Errorf("region: mmap %s: %w", m.path, err)
	}
	m.data = data
	return nil
}

// Size returns the current size in pages
func (m *MmapMemory) Size() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return uint64(len(m.data)) / PageSize
}

// Grow extends the backing file and remaps it
func (m *MmapMemory) Grow(pages uint64) error {
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

	size := int64(next * PageSize)
	if err := m.f.Truncate(size); err != nil {
		return fmt.Errorf("%w: extend %s: %v", ErrResourceExhausted, m.path, err)
	}
	if err := m.remap(size); err != nil {
		// The old mapping is gone; restore one matching the previous size
		_ = m.f.Truncate(int64(current * PageSize))
		if rerr := m.remap(int64(current * PageSize)); rerr != nil {
			return rerr
		}
		return fmt.Errorf("%w: %v", ErrResourceExhausted, err)
	}
	return nil
}

// ReadAt implements io.ReaderAt
func (m *MmapMemory) ReadAt(p []byte, off int64) (int, error) {
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
func (m *MmapMemory) WriteAt(p []byte, off int64) (int, error) {
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

// Sync flushes dirty pages to the backing file
func (m *MmapMemory) Sync() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed || m.data == nil {
		return nil
	}
	if err := unix.Msync(m.data, unix.MS_SYNC); err != nil {
		return fmt.Errorf("region: msync %s: %w", m.path, err)
	}
	return nil
}

// Close syncs, unmaps and closes the backing file
func (m *MmapMemory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	var firstErr error
	if m.data != nil {
		if err := unix.Msync(m.data, unix.MS_SYNC); err != nil {
			firstErr = fmt.Errorf("region: msync %s: %w", m.path, err)
		}
		if err := unix.Munmap(m.data); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("region: munmap %s: %w", m.path, err)
		}
		m.data = nil
	}
	if err := m.f.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("region: close %s: %w", m.path, err)
	}
	return firstErr
}
