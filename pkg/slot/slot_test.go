package slot

import (
	"errors"
	"sync"
	"testing"
)

func TestSlotUninitialized(t *testing.T) {
	s := New()

	if _, err := s.Size(); !errors.Is(err, ErrUninitialized) {
		t.Errorf("Expected ErrUninitialized from Size, got %v", err)
	}
	if _, err := s.ReadRange(0, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds from ReadRange, got %v", err)
	}
	if err := s.View(func([]byte) error { return nil }); !errors.Is(err, ErrUninitialized) {
		t.Errorf("Expected ErrUninitialized from View, got %v", err)
	}

	// Clear and Zero do nothing and do not initialize
	s.Clear()
	s.Zero()
	if s.Initialized() {
		t.Errorf("Clear on an uninitialized slot must not create a buffer")
	}
}

func TestSlotAppend(t *testing.T) {
	s := New()

	n, err := s.Append("ab", 3)
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if n != 6 {
		t.Errorf("Expected length 6, got %d", n)
	}
	if cap(s.buf) != 6 {
		t.Errorf("Expected first append to pre-size capacity 6, got %d", cap(s.buf))
	}

	n, _ = s.Append("c", 2)
	if n != 8 {
		t.Errorf("Expected length 8, got %d", n)
	}

	got, err := s.ReadRange(0, 8)
	if err != nil {
		t.Fatalf("ReadRange failed: %v", err)
	}
	if got != "abababcc" {
		t.Errorf("Expected 'abababcc', got %q", got)
	}

	// Zero repetitions still initialize
	empty := New()
	if n, err := empty.Append("x", 0); err != nil || n != 0 {
		t.Errorf("Append with times=0: n=%d err=%v", n, err)
	}
	if size, err := empty.Size(); err != nil || size != 0 {
		t.Errorf("Expected initialized empty slot, got size=%d err=%v", size, err)
	}

	if _, err := s.Append("x", -1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds for negative count, got %v", err)
	}
}

func TestSlotClearZero(t *testing.T) {
	s := New()
	_, _ = s.Append("hello", 10)
	capacity := cap(s.buf)

	s.Zero()
	size, _ := s.Size()
	if size != 50 {
		t.Errorf("Zero must keep the length, got %d", size)
	}
	for i, b := range s.buf {
		if b != 0 {
			t.Fatalf("Byte %d not zeroed: %d", i, b)
		}
	}

	s.Clear()
	size, _ = s.Size()
	if size != 0 {
		t.Errorf("Clear must truncate, got length %d", size)
	}
	if cap(s.buf) != capacity {
		t.Errorf("Clear must keep capacity %d, got %d", capacity, cap(s.buf))
	}
}

func TestSlotReadRange(t *testing.T) {
	s := New()
	_, _ = s.Append("héllo", 1) // é is two bytes

	tests := []struct {
		offset, size int
		want         string
		err          error
	}{
		{0, 1, "h", nil},
		{1, 2, "é", nil},
		{0, 6, "héllo", nil},
		{6, 0, "", nil},
		{1, 1, "", ErrInvalidEncoding},
		{0, 7, "", ErrOutOfBounds},
		{7, 0, "", ErrOutOfBounds},
		{-1, 1, "", ErrOutOfBounds},
		{0, -1, "", ErrOutOfBounds},
	}

	for _, test := range tests {
		got, err := s.ReadRange(test.offset, test.size)
		if test.err != nil {
			if !errors.Is(err, test.err) {
				t.Errorf("ReadRange(%d, %d): expected %v, got %v", test.offset, test.size, test.err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ReadRange(%d, %d) failed: %v", test.offset, test.size, err)
			continue
		}
		if got != test.want {
			t.Errorf("ReadRange(%d, %d): expected %q, got %q", test.offset, test.size, test.want, got)
		}
	}
}

func TestSlotReplace(t *testing.T) {
	s := New()
	s.Replace([]byte("loaded"))

	size, err := s.Size()
	if err != nil || size != 6 {
		t.Fatalf("Expected 6 bytes after Replace, got %d (%v)", size, err)
	}

	s.Replace(nil)
	size, err = s.Size()
	if err != nil || size != 0 {
		t.Errorf("Replace(nil) should leave an initialized empty buffer, got %d (%v)", size, err)
	}

	_, _ = s.Append("x", 3)
	snap, _ := s.snapshot()
	snap[0] = 'y'
	if got, _ := s.ReadRange(0, 3); got != "xxx" {
		t.Errorf("snapshot must be a copy, slot now holds %q", got)
	}
}

func TestSlotConcurrentAppend(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _ = s.Append("ab", 1)
			}
		}()
	}
	wg.Wait()

	size, _ := s.Size()
	if size != 8*100*2 {
		t.Errorf("Expected %d bytes, got %d", 8*100*2, size)
	}
}

// snapshot returns a copy of the buffer
func (s *Slot) snapshot() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return nil, ErrUninitialized
	}
	return append([]byte(nil), s.buf...), nil
}
