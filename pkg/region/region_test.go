package region

import (
	"bytes"
	"errors"
	"runtime"
	"testing"
)

func testMemoryContract(t *testing.T, mem Memory) {
	t.Helper()

	if mem.Size() != 0 {
		t.Fatalf("Expected new region to be empty, got %d pages", mem.Size())
	}

	// Nothing is addressable before the first grow
	if _, err := mem.WriteAt([]byte{1}, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds writing to empty region, got %v", err)
	}

	if err := mem.Grow(0); err != nil {
		t.Errorf("Grow(0) should be a no-op, got %v", err)
	}
	if err := mem.Grow(2); err != nil {
		t.Fatalf("Failed to grow region: %v", err)
	}
	if mem.Size() != 2 {
		t.Errorf("Expected 2 pages, got %d", mem.Size())
	}

	// New pages read as zero
	buf := make([]byte, 16)
	if _, err := mem.ReadAt(buf, PageSize+100); err != nil {
		t.Fatalf("Failed to read grown page: %v", err)
	}
	if !bytes.Equal(buf, make([]byte, 16)) {
		t.Errorf("Expected zeroed page, got %x", buf)
	}

	// Writes spanning a page boundary
	data := []byte("hello, region")
	off := int64(PageSize - 5)
	if _, err := mem.WriteAt(data, off); err != nil {
		t.Fatalf("Failed to write: %v", err)
	}
	got := make([]byte, len(data))
	if _, err := mem.ReadAt(got, off); err != nil {
		t.Fatalf("Failed to read: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Expected %q, got %q", data, got)
	}

	// Contents survive growth
	if err := mem.Grow(1); err != nil {
		t.Fatalf("Failed to grow region: %v", err)
	}
	if _, err := mem.ReadAt(got, off); err != nil {
		t.Fatalf("Failed to read after grow: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Expected %q after grow, got %q", data, got)
	}

	// Past the end
	if _, err := mem.ReadAt(make([]byte, 2), 3*PageSize-1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds, got %v", err)
	}
	if _, err := mem.ReadAt(make([]byte, 1), -1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds for negative offset, got %v", err)
	}
}

func TestHeapMemory(t *testing.T) {
	mem := NewHeapMemory(0)
	defer mem.Close()
	testMemoryContract(t, mem)
}

func TestHeapMemoryExhaustion(t *testing.T) {
	mem := NewHeapMemory(3)
	defer mem.Close()

	if err := mem.Grow(2); err != nil {
		t.Fatalf("Failed to grow: %v", err)
	}
	if err := mem.Grow(2); !errors.Is(err, ErrResourceExhausted) {
		t.Errorf("Expected ErrResourceExhausted, got %v", err)
	}
	if mem.Size() != 2 {
		t.Errorf("Failed grow must leave size unchanged, got %d pages", mem.Size())
	}
	if err := mem.Grow(1); err != nil {
		t.Errorf("Expected growth up to the limit to succeed, got %v", err)
	}
}

func TestHeapMemoryClosed(t *testing.T) {
	mem := NewHeapMemory(0)
	mem.Close()

	if err := mem.Grow(1); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
}

func TestManager(t *testing.T) {
	m, err := NewManager(Options{})
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}
	defer m.Close()

	a, err := m.Get(IDWholeMap)
	if err != nil {
		t.Fatalf("Failed to get region: %v", err)
	}
	b, err := m.Get(IDChunkMap)
	if err != nil {
		t.Fatalf("Failed to get region: %v", err)
	}
	again, _ := m.Get(IDWholeMap)
	if again != a {
		t.Errorf("Expected the same region for the same ID")
	}

	// Regions are independent
	if err := a.Grow(1); err != nil {
		t.Fatalf("Failed to grow: %v", err)
	}
	if b.Size() != 0 {
		t.Errorf("Growing one region must not affect another")
	}

	ids := m.IDs()
	if len(ids) != 2 || ids[0] != IDWholeMap || ids[1] != IDChunkMap {
		t.Errorf("Unexpected IDs %v", ids)
	}

	if err := m.Close(); err != nil {
		t.Fatalf("Failed to close manager: %v", err)
	}
	if _, err := m.Get(IDFlat); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed after close, got %v", err)
	}
}

func TestManagerUnknownBackend(t *testing.T) {
	if _, err := NewManager(Options{Backend: "tape"}); !errors.Is(err, ErrBackendUnsupported) {
		t.Errorf("Expected ErrBackendUnsupported, got %v", err)
	}
	if _, err := NewManager(Options{Backend: BackendMmap}); err == nil {
		t.Errorf("Expected error for mmap backend without a directory")
	}
}

func TestMmapMemoryPersists(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("mmap backend is unix only")
	}

	dir := t.TempDir()
	m, err := NewManager(Options{Backend: BackendMmap, Dir: dir})
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}
	mem, err := m.Get(IDFlat)
	if err != nil {
		t.Fatalf("Failed to open region: %v", err)
	}
	testMemoryContract(t, mem)

	if _, err := mem.WriteAt([]byte("durable"), 42); err != nil {
		t.Fatalf("Failed to write: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Failed to close manager: %v", err)
	}

	m, err = NewManager(Options{Backend: BackendMmap, Dir: dir})
	if err != nil {
		t.Fatalf("Failed to reopen manager: %v", err)
	}
	defer m.Close()

	mem, err = m.Get(IDFlat)
	if err != nil {
		t.Fatalf("Failed to reopen region: %v", err)
	}
	if mem.Size() != 3 {
		t.Errorf("Expected 3 pages after reopen, got %d", mem.Size())
	}
	got := make([]byte, 7)
	if _, err := mem.ReadAt(got, 42); err != nil {
		t.Fatalf("Failed to read: %v", err)
	}
	if string(got) != "durable" {
		t.Errorf("Expected %q, got %q", "durable", got)
	}
}
