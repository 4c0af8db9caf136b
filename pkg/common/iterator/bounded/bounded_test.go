package bounded

import (
	"encoding/binary"
	"sort"
	"testing"
)

// sliceIterator is a simple in-memory iterator over sorted keys
type sliceIterator struct {
	keys   []string
	values map[string]string
	index  int
}

func newSliceIterator(data map[string]string) *sliceIterator {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &sliceIterator{keys: keys, values: data, index: -1}
}

func (s *sliceIterator) SeekToFirst() {
	s.index = -1
	if len(s.keys) > 0 {
		s.index = 0
	}
}

func (s *sliceIterator) Seek(target []byte) bool {
	s.index = sort.SearchStrings(s.keys, string(target))
	if s.index >= len(s.keys) {
		s.index = -1
		return false
	}
	return true
}

func (s *sliceIterator) Next() bool {
	if s.index >= 0 && s.index < len(s.keys)-1 {
		s.index++
		return true
	}
	s.index = -1
	return false
}

func (s *sliceIterator) Key() []byte {
	if !s.Valid() {
		return nil
	}
	return []byte(s.keys[s.index])
}

func (s *sliceIterator) Value() []byte {
	if !s.Valid() {
		return nil
	}
	return []byte(s.values[s.keys[s.index]])
}

func (s *sliceIterator) Valid() bool {
	return s.index >= 0 && s.index < len(s.keys)
}

func collectKeys(b *BoundedIterator) []string {
	var keys []string
	for b.SeekToFirst(); b.Valid(); b.Next() {
		keys = append(keys, string(b.Key()))
	}
	return keys
}

func equalKeys(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var letters = map[string]string{"a": "1", "b": "2", "c": "3", "d": "4", "e": "5"}

func TestBoundedIterator_NoBounds(t *testing.T) {
	it := NewBoundedIterator(newSliceIterator(letters), nil, nil)

	got := collectKeys(it)
	want := []string{"a", "b", "c", "d", "e"}
	if !equalKeys(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if it.Next() {
		t.Error("Expected Next() to return false after all elements")
	}
}

func TestBoundedIterator_HalfOpen(t *testing.T) {
	it := NewBoundedIterator(newSliceIterator(letters), []byte("b"), []byte("d"))

	got := collectKeys(it)
	want := []string{"b", "c"}
	if !equalKeys(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	it.SeekToFirst()
	if string(it.Value()) != "2" {
		t.Errorf("Expected value '2', got '%s'", it.Value())
	}

	// Only a start bound
	it.SetBounds([]byte("c"), nil)
	if got := collectKeys(it); !equalKeys(got, []string{"c", "d", "e"}) {
		t.Errorf("Expected [c d e], got %v", got)
	}

	// Empty range
	it.SetBounds([]byte("c"), []byte("c"))
	if got := collectKeys(it); len(got) != 0 {
		t.Errorf("Expected empty range, got %v", got)
	}
}

func TestBoundedIterator_Seek(t *testing.T) {
	it := NewBoundedIterator(newSliceIterator(letters), []byte("b"), []byte("d"))

	tests := []struct {
		target      string
		expectValid bool
		expectKey   string
	}{
		{"a", true, "b"},  // before range, clamps to start bound
		{"b", true, "b"},  // at range start
		{"bc", true, "c"}, // between b and c
		{"c", true, "c"},
		{"d", false, ""}, // end is exclusive
		{"e", false, ""},
	}

	for i, test := range tests {
		found := it.Seek([]byte(test.target))
		if found != test.expectValid {
			t.Errorf("Test %d: Seek(%s) returned %v, expected %v", i, test.target, found, test.expectValid)
		}
		if test.expectValid && string(it.Key()) != test.expectKey {
			t.Errorf("Test %d: Seek(%s) key is '%s', expected '%s'", i, test.target, it.Key(), test.expectKey)
		}
	}
}

func TestBoundedIterator_SetBounds(t *testing.T) {
	it := NewBoundedIterator(newSliceIterator(letters), nil, nil)
	it.Seek([]byte("c"))

	it.SetBounds([]byte("b"), []byte("e"))
	if !it.Valid() || string(it.Key()) != "c" {
		t.Fatalf("Iterator should remain valid at 'c' after setting bounds that include it")
	}

	it.SetBounds([]byte("d"), []byte("f"))
	if it.Valid() {
		t.Fatal("Iterator should be invalid after setting bounds that exclude current position")
	}

	it.SeekToFirst()
	if !it.Valid() || string(it.Key()) != "d" {
		t.Errorf("Expected SeekToFirst to land on 'd', got '%s'", it.Key())
	}
}

func TestBoundedIterator_CompositeKeys(t *testing.T) {
	key := func(id, idx uint64) string {
		buf := make([]byte, 16)
		binary.BigEndian.PutUint64(buf[:8], id)
		binary.BigEndian.PutUint64(buf[8:], idx)
		return string(buf)
	}

	data := map[string]string{}
	for id := uint64(1); id <= 3; id++ {
		for idx := uint64(0); idx < 300; idx += 100 {
			data[key(id, idx)] = "x"
		}
	}

	it := NewBoundedIterator(newSliceIterator(data), []byte(key(2, 0)), []byte(key(3, 0)))
	got := collectKeys(it)
	want := []string{key(2, 0), key(2, 100), key(2, 200)}
	if !equalKeys(got, want) {
		t.Errorf("Expected only buffer 2 chunks in index order, got %d keys", len(got))
	}
}
