package ordmap

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/KevoDB/chunkbench/pkg/codec"
	"github.com/KevoDB/chunkbench/pkg/common/log"
	"github.com/KevoDB/chunkbench/pkg/region"
)

func openTestMap(t *testing.T, mem region.Memory, bound codec.Bound) *Map {
	t.Helper()
	m, err := Open(mem, Options{Name: "test", Bound: bound, Logger: log.Discard()})
	if err != nil {
		t.Fatalf("Failed to open map: %v", err)
	}
	return m
}

func TestMapInsertGet(t *testing.T) {
	m := openTestMap(t, region.NewHeapMemory(0), codec.Bound{})

	if err := m.Insert([]byte("alpha"), []byte("one")); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	value, found, err := m.Get([]byte("alpha"))
	if err != nil || !found {
		t.Fatalf("Get failed: found=%v err=%v", found, err)
	}
	if string(value) != "one" {
		t.Errorf("Expected 'one', got '%s'", value)
	}

	// Absent keys are not errors
	value, found, err = m.Get([]byte("beta"))
	if err != nil || found || value != nil {
		t.Errorf("Expected absent key, got value=%q found=%v err=%v", value, found, err)
	}

	// Overwrite keeps a single live key
	if err := m.Insert([]byte("alpha"), []byte("uno")); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}
	value, _, _ = m.Get([]byte("alpha"))
	if string(value) != "uno" {
		t.Errorf("Expected 'uno' after overwrite, got '%s'", value)
	}
	if m.Len() != 1 {
		t.Errorf("Expected 1 live key, got %d", m.Len())
	}

	// Empty values are legal
	if err := m.Insert([]byte("empty"), nil); err != nil {
		t.Fatalf("Insert of empty value failed: %v", err)
	}
	value, found, _ = m.Get([]byte("empty"))
	if !found || len(value) != 0 {
		t.Errorf("Expected empty value, got %q found=%v", value, found)
	}

	if err := m.Insert(nil, []byte("x")); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("Expected ErrEmptyKey, got %v", err)
	}

	stats := m.Stats()
	if stats.Puts != 3 || stats.Records != 3 || stats.LiveKeys != 2 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestMapSizeBound(t *testing.T) {
	mem := region.NewHeapMemory(0)
	m := openTestMap(t, mem, codec.Bound{MaxSize: 8})

	if err := m.Insert([]byte("k"), bytes.Repeat([]byte("x"), 8)); err != nil {
		t.Fatalf("Insert at the bound failed: %v", err)
	}

	before := m.Stats().LogBytes
	err := m.Insert([]byte("k2"), bytes.Repeat([]byte("x"), 9))
	if !errors.Is(err, codec.ErrSizeExceeded) {
		t.Fatalf("Expected ErrSizeExceeded, got %v", err)
	}
	if m.Stats().LogBytes != before {
		t.Errorf("Rejected insert must not write, log grew from %d to %d", before, m.Stats().LogBytes)
	}
	if m.contains([]byte("k2")) {
		t.Errorf("Rejected key should not be present")
	}
}

func TestMapDelete(t *testing.T) {
	m := openTestMap(t, region.NewHeapMemory(0), codec.Bound{})

	for i := 0; i < 5; i++ {
		key := []byte(fmt.Sprintf("key%d", i))
		if err := m.Insert(key, key); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	found, err := m.Delete([]byte("key2"))
	if err != nil || !found {
		t.Fatalf("Delete failed: found=%v err=%v", found, err)
	}
	if _, ok, _ := m.Get([]byte("key2")); ok {
		t.Errorf("Deleted key should be absent")
	}

	found, err = m.Delete([]byte("key2"))
	if err != nil || found {
		t.Errorf("Second delete should report absent, got found=%v err=%v", found, err)
	}

	if m.Len() != 4 {
		t.Errorf("Expected 4 live keys, got %d", m.Len())
	}
	if m.Stats().Deletes != 1 {
		t.Errorf("Expected 1 delete record, got %d", m.Stats().Deletes)
	}
}

func TestMapRangeHalfOpen(t *testing.T) {
	m := openTestMap(t, region.NewHeapMemory(0), codec.ChunkBound)

	// Insert out of order across three buffers
	for _, id := range []uint64{3, 1, 2} {
		for _, idx := range []uint64{2, 0, 1} {
			key := codec.ChunkKey{BufferID: id, Index: idx}
			if err := m.Insert(key.Encode(), []byte(key.String())); err != nil {
				t.Fatalf("Insert %s failed: %v", key, err)
			}
		}
	}

	start, end := codec.ChunkRange(2)
	var got []string
	err := m.Range(start, end, func(key, value []byte) error {
		got = append(got, string(value))
		return nil
	})
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}

	want := []string{"(2,0)", "(2,1)", "(2,2)"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// Open bounds visit everything in order
	var all []string
	it := m.NewRangeIterator(nil, nil)
	for it.Next() {
		k, err := codec.DecodeChunkKey(it.Key())
		if err != nil {
			t.Fatalf("Bad key: %v", err)
		}
		if string(it.Value()) != k.String() {
			t.Errorf("Value %q does not match key %s", it.Value(), k)
		}
		all = append(all, k.String())
	}
	if err := it.Err(); err != nil {
		t.Fatalf("Iterator failed: %v", err)
	}
	if len(all) != 9 || all[0] != "(1,0)" || all[8] != "(3,2)" {
		t.Errorf("Unexpected full scan order: %v", all)
	}

	// Errors from the callback stop the scan
	stop := errors.New("stop")
	calls := 0
	err = m.Range(nil, nil, func(key, value []byte) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) || calls != 1 {
		t.Errorf("Expected scan to stop after 1 call, got %d calls, err=%v", calls, err)
	}
}

func TestMapReplay(t *testing.T) {
	mem := region.NewHeapMemory(0)
	m := openTestMap(t, mem, codec.Bound{})

	for i := 0; i < 100; i++ {
		if err := m.Insert([]byte(fmt.Sprintf("key%03d", i)), []byte(fmt.Sprintf("v%d", i))); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}
	if err := m.Insert([]byte("key010"), []byte("updated")); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}
	if _, err := m.Delete([]byte("key050")); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	// Reopen over the same region
	reopened := openTestMap(t, mem, codec.Bound{})
	rs := reopened.ReplayStats()
	if rs.Records != 102 || rs.Puts != 101 || rs.Deletes != 1 {
		t.Errorf("Unexpected replay stats: %+v", rs)
	}
	if reopened.Len() != 99 {
		t.Errorf("Expected 99 live keys after replay, got %d", reopened.Len())
	}

	value, _, _ := reopened.Get([]byte("key010"))
	if string(value) != "updated" {
		t.Errorf("Expected replayed overwrite, got '%s'", value)
	}
	if _, found, _ := reopened.Get([]byte("key050")); found {
		t.Errorf("Deleted key came back after replay")
	}
}

func TestMapReplayMmap(t *testing.T) {
	dir := t.TempDir()
	mgr, err := region.NewManager(region.Options{Backend: region.BackendMmap, Dir: dir})
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}
	mem, err := mgr.Get(region.IDChunkMap)
	if errors.Is(err, region.ErrBackendUnsupported) {
		t.Skip("mmap backend not supported on this platform")
	}
	if err != nil {
		t.Fatalf("Failed to get region: %v", err)
	}

	m := openTestMap(t, mem, codec.ChunkBound)
	payload := bytes.Repeat([]byte{0xAB}, codec.ChunkSize)
	for i := uint64(0); i < 40; i++ {
		if err := m.Insert(codec.ChunkKey{BufferID: 9, Index: i}.Encode(), payload); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}
	if err := mgr.Close(); err != nil {
		t.Fatalf("Failed to close manager: %v", err)
	}

	mgr, err = region.NewManager(region.Options{Backend: region.BackendMmap, Dir: dir})
	if err != nil {
		t.Fatalf("Failed to reopen manager: %v", err)
	}
	defer mgr.Close()
	mem, err = mgr.Get(region.IDChunkMap)
	if err != nil {
		t.Fatalf("Failed to get region: %v", err)
	}

	reopened := openTestMap(t, mem, codec.ChunkBound)
	if reopened.Len() != 40 {
		t.Fatalf("Expected 40 chunks after reopen, got %d", reopened.Len())
	}
	value, found, err := reopened.Get(codec.ChunkKey{BufferID: 9, Index: 39}.Encode())
	if err != nil || !found || !bytes.Equal(value, payload) {
		t.Errorf("Last chunk did not survive reopen: found=%v err=%v", found, err)
	}
}

func TestMapCorruption(t *testing.T) {
	mem := region.NewHeapMemory(0)
	m := openTestMap(t, mem, codec.Bound{})
	if err := m.Insert([]byte("key"), []byte("value")); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	// Flip a byte inside the value of the first record
	off := int64(headerSize + recordHeaderSize + len("key"))
	if _, err := mem.WriteAt([]byte{'V'}, off); err != nil {
		t.Fatalf("Failed to corrupt region: %v", err)
	}

	if _, err := Open(mem, Options{Logger: log.Discard()}); !errors.Is(err, ErrCorrupt) {
		t.Errorf("Expected ErrCorrupt, got %v", err)
	}

	// A foreign header is rejected as well
	other := region.NewHeapMemory(0)
	if err := other.Grow(1); err != nil {
		t.Fatalf("Grow failed: %v", err)
	}
	if _, err := other.WriteAt([]byte("NOPE"), 0); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := Open(other, Options{Logger: log.Discard()}); !errors.Is(err, ErrCorrupt) {
		t.Errorf("Expected ErrCorrupt for bad magic, got %v", err)
	}
}

func TestMapRegionExhaustion(t *testing.T) {
	m := openTestMap(t, region.NewHeapMemory(1), codec.Bound{})

	big := make([]byte, region.PageSize)
	err := m.Insert([]byte("big"), big)
	if !errors.Is(err, region.ErrResourceExhausted) {
		t.Fatalf("Expected ErrResourceExhausted, got %v", err)
	}
	if m.contains([]byte("big")) {
		t.Errorf("Failed insert should not be indexed")
	}

	// The map is still usable afterwards
	if err := m.Insert([]byte("small"), []byte("ok")); err != nil {
		t.Errorf("Insert after exhaustion failed: %v", err)
	}
}

func TestMapClosed(t *testing.T) {
	m := openTestMap(t, region.NewHeapMemory(0), codec.Bound{})
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := m.Insert([]byte("k"), []byte("v")); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
	if _, _, err := m.Get([]byte("k")); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
}

// contains reports whether key has a value
func (m *Map) contains(key []byte) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.index.find(key)
	return ok
}
