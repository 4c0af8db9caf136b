// Package flatmem writes buffers directly into a flat region, growing the region
// on demand so that every write is in bounds by construction.
package flatmem

import (
	"fmt"
	"sync/atomic"

	"github.com/KevoDB/chunkbench/pkg/region"
)

// PagesRequired returns the number of pages needed to address n bytes
func PagesRequired(n uint64) uint64 {
	pages := n / region.PageSize
	if n%region.PageSize != 0 {
		pages++
	}
	return pages
}

// EnsureCapacity grows mem so that it covers at least required bytes. It returns
// the number of pages added. Regions never shrink, so a region that is already
// large enough is left alone.
func EnsureCapacity(mem region.Memory, required uint64) (uint64, error) {
	needed := PagesRequired(required)
	current := mem.Size()
	if current >= needed {
		return 0, nil
	}

	delta := needed - current
	if err := mem.Grow(delta); err != nil {
		return 0, fmt.Errorf("flatmem: grow to %d pages: %w", needed, err)
	}
	return delta, nil
}

// Write copies buf into mem starting at offset, growing the region first
func Write(mem region.Memory, offset uint64, buf []byte) (uint64, error) {
	end := offset + uint64(len(buf))
	if end < offset || end > 1<<63-1 {
		return 0, fmt.Errorf("flatmem: write of %d bytes at %d: %w", len(buf), offset, region.ErrResourceExhausted)
	}

	grown, err := EnsureCapacity(mem, end)
	if err != nil {
		return 0, err
	}
	if len(buf) == 0 {
		return grown, nil
	}

	if _, err := mem.WriteAt(buf, int64(offset)); err != nil {
		return grown, fmt.Errorf("flatmem: write at %d: %w", offset, err)
	}
	return grown, nil
}

// Read copies size bytes starting at offset out of mem
func Read(mem region.Memory, offset uint64, size int) ([]byte, error) {
	if size < 0 || offset > 1<<63-1 {
		return nil, fmt.Errorf("flatmem: read of %d bytes at %d: %w", size, offset, region.ErrOutOfBounds)
	}
	buf := make([]byte, size)
	if size == 0 {
		return buf, nil
	}
	if _, err := mem.ReadAt(buf, int64(offset)); err != nil {
		return nil, fmt.Errorf("flatmem: read at %d: %w", offset, err)
	}
	return buf, nil
}

// Stats describes the activity of a Writer
type Stats struct {
	Writes       uint64 `json:"writes"`
	BytesWritten uint64 `json:"bytes_written"`
	PagesGrown   uint64 `json:"pages_grown"`
	Pages        uint64 `json:"pages"`
}

// Writer is a flat region together with counters for its write activity
type Writer struct {
	mem          region.Memory
	writes       atomic.Uint64
	bytesWritten atomic.Uint64
	pagesGrown   atomic.Uint64
}

// NewWriter wraps a region
func NewWriter(mem region.Memory) *Writer {
	return &Writer{mem: mem}
}

// Write writes buf at offset and returns the number of bytes written
func (w *Writer) Write(offset uint64, buf []byte) (int, error) {
	grown, err := Write(w.mem, offset, buf)
	w.pagesGrown.Add(grown)
	if err != nil {
		return 0, err
	}
	w.writes.Add(1)
	w.bytesWritten.Add(uint64(len(buf)))
	return len(buf), nil
}

// Read reads size bytes at offset
func (w *Writer) Read(offset uint64, size int) ([]byte, error) {
	return Read(w.mem, offset, size)
}

// Memory returns the underlying region
func (w *Writer) Memory() region.Memory {
	return w.mem
}

// Stats returns a snapshot of the writer counters
func (w *Writer) Stats() Stats {
	return Stats{
		Writes:       w.writes.Load(),
		BytesWritten: w.bytesWritten.Load(),
		PagesGrown:   w.pagesGrown.Load(),
		Pages:        w.mem.Size(),
	}
}
