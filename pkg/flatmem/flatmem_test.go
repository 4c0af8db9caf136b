package flatmem

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/KevoDB/chunkbench/pkg/region"
)

func TestPagesRequired(t *testing.T) {
	tests := []struct {
		bytes uint64
		pages uint64
	}{
		{0, 0},
		{1, 1},
		{region.PageSize - 1, 1},
		{region.PageSize, 1},
		{region.PageSize + 1, 2},
		{10 * region.PageSize, 10},
	}

	for _, tt := range tests {
		if got := PagesRequired(tt.bytes); got != tt.pages {
			t.Errorf("PagesRequired(%d) = %d, want %d", tt.bytes, got, tt.pages)
		}
	}
}

func TestEnsureCapacity(t *testing.T) {
	mem := region.NewHeapMemory(0)

	grown, err := EnsureCapacity(mem, region.PageSize+1)
	if err != nil {
		t.Fatalf("EnsureCapacity failed: %v", err)
	}
	if grown != 2 || mem.Size() != 2 {
		t.Errorf("Expected to grow to 2 pages, grew %d to %d", grown, mem.Size())
	}

	// Already large enough
	grown, err = EnsureCapacity(mem, 10)
	if err != nil {
		t.Fatalf("EnsureCapacity failed: %v", err)
	}
	if grown != 0 || mem.Size() != 2 {
		t.Errorf("Expected no growth, grew %d to %d", grown, mem.Size())
	}
}

func TestWriteGrowsMonotonically(t *testing.T) {
	mem := region.NewHeapMemory(0)
	w := NewWriter(mem)

	writes := []struct {
		offset uint64
		size   int
	}{
		{0, 10},
		{3 * region.PageSize, 100},
		{5, 5},
		{region.PageSize - 2, 4},
		{0, 0},
		{7*region.PageSize + 1, region.PageSize},
	}

	var lastPages uint64
	for _, wr := range writes {
		buf := bytes.Repeat([]byte{0xAB}, wr.size)
		n, err := w.Write(wr.offset, buf)
		if err != nil {
			t.Fatalf("Write(%d, %d) failed: %v", wr.offset, wr.size, err)
		}
		if n != wr.size {
			t.Errorf("Expected %d bytes written, got %d", wr.size, n)
		}

		pages := mem.Size()
		if pages < lastPages {
			t.Fatalf("Region shrank from %d to %d pages", lastPages, pages)
		}
		if pages < PagesRequired(wr.offset+uint64(wr.size)) {
			t.Errorf("Region of %d pages does not cover write end %d", pages, wr.offset+uint64(wr.size))
		}
		lastPages = pages

		got, err := w.Read(wr.offset, wr.size)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if !bytes.Equal(got, buf) {
			t.Errorf("Read back mismatch at offset %d", wr.offset)
		}
	}

	stats := w.Stats()
	if stats.Writes != uint64(len(writes)) {
		t.Errorf("Expected %d writes, got %d", len(writes), stats.Writes)
	}
	if stats.Pages != 9 || stats.PagesGrown != 9 {
		t.Errorf("Expected 9 pages grown, got %+v", stats)
	}
}

func TestWriteOverwrites(t *testing.T) {
	mem := region.NewHeapMemory(0)

	if _, err := Write(mem, 100, []byte("aaaaaa")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := Write(mem, 102, []byte("bb")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Read(mem, 100, 6)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(got) != "aabbaa" {
		t.Errorf("Expected %q, got %q", "aabbaa", got)
	}
}

func TestWriteExhaustion(t *testing.T) {
	mem := region.NewHeapMemory(1)

	if _, err := Write(mem, region.PageSize, []byte{1}); !errors.Is(err, region.ErrResourceExhausted) {
		t.Errorf("Expected ErrResourceExhausted, got %v", err)
	}
	if mem.Size() != 0 {
		t.Errorf("Failed write must not grow the region, got %d pages", mem.Size())
	}

	if _, err := Write(mem, math.MaxUint64, []byte{1}); !errors.Is(err, region.ErrResourceExhausted) {
		t.Errorf("Expected ErrResourceExhausted for overflowing offset, got %v", err)
	}
}
