package chunker

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/KevoDB/chunkbench/pkg/codec"
	"github.com/KevoDB/chunkbench/pkg/common/log"
	"github.com/KevoDB/chunkbench/pkg/ordmap"
	"github.com/KevoDB/chunkbench/pkg/region"
)

func newChunkMap(t *testing.T) *ordmap.Map {
	t.Helper()
	m, err := ordmap.Open(region.NewHeapMemory(0), ordmap.Options{
		Name:   "chunks",
		Bound:  codec.ChunkBound,
		Logger: log.Discard(),
	})
	if err != nil {
		t.Fatalf("Failed to open chunk map: %v", err)
	}
	return m
}

func pattern(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i % 251)
	}
	return buf
}

func TestSplit(t *testing.T) {
	tests := []struct {
		size      int
		chunkSize int
		chunks    int
		lastSize  int
	}{
		{0, 4096, 0, 0},
		{1, 4096, 1, 1},
		{4096, 4096, 1, 4096},
		{4097, 4096, 2, 1},
		{10000, 4096, 3, 10000 - 2*4096},
		{6, 4, 2, 2},
		{5, math.MaxInt/2 + 1, 1, 5},
		{5, math.MaxInt, 1, 5},
	}

	for _, test := range tests {
		buf := pattern(test.size)
		chunks, err := Split(buf, test.chunkSize)
		if err != nil {
			t.Fatalf("Split(%d, %d) failed: %v", test.size, test.chunkSize, err)
		}
		if len(chunks) != test.chunks || Count(test.size, test.chunkSize) != test.chunks {
			t.Errorf("Split(%d, %d): expected %d chunks, got %d", test.size, test.chunkSize, test.chunks, len(chunks))
			continue
		}
		if test.chunks == 0 {
			continue
		}

		for i, c := range chunks[:len(chunks)-1] {
			if len(c.Data) != test.chunkSize {
				t.Errorf("Chunk %d has %d bytes, expected %d", i, len(c.Data), test.chunkSize)
			}
		}
		if last := chunks[len(chunks)-1]; len(last.Data) != test.lastSize {
			t.Errorf("Last chunk has %d bytes, expected %d", len(last.Data), test.lastSize)
		}

		var joined []byte
		for i, c := range chunks {
			if c.Index != uint64(i) {
				t.Errorf("Expected index %d, got %d", i, c.Index)
			}
			joined = append(joined, c.Data...)
		}
		if !bytes.Equal(joined, buf) {
			t.Errorf("Concatenated chunks do not reproduce a %d byte buffer", test.size)
		}
	}
}

func TestSplitCopies(t *testing.T) {
	buf := []byte("abcdef")
	chunks, err := Split(buf, 4)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	buf[0] = 'X'
	if string(chunks[0].Data) != "abcd" {
		t.Errorf("Chunk aliases the source buffer: %q", chunks[0].Data)
	}
}

func TestInvalidChunkSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := Split([]byte("abc"), size); !errors.Is(err, ErrInvalidChunkSize) {
			t.Errorf("Split with chunk size %d: expected ErrInvalidChunkSize, got %v", size, err)
		}
	}
}

func TestStoreAndJoin(t *testing.T) {
	m := newChunkMap(t)
	buf := pattern(5*codec.ChunkSize + 123)

	res, err := Store(m, 42, buf, codec.ChunkSize)
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if res.Chunks != 6 || res.Bytes != len(buf) {
		t.Errorf("Unexpected store result: %+v", res)
	}

	seq, seqRes, err := JoinByLookup(m, 42)
	if err != nil {
		t.Fatalf("JoinByLookup failed: %v", err)
	}
	ranged, rangeRes, err := JoinByRange(m, 42)
	if err != nil {
		t.Fatalf("JoinByRange failed: %v", err)
	}

	if !bytes.Equal(seq, buf) || !bytes.Equal(ranged, buf) {
		t.Errorf("Round trip mismatch: sequential=%d bytes ranged=%d bytes, want %d", len(seq), len(ranged), len(buf))
	}
	if seqRes != rangeRes {
		t.Errorf("Join results differ: %+v vs %+v", seqRes, rangeRes)
	}

	if _, found, err := FindGap(m, 42); err != nil || found {
		t.Errorf("Expected no gap, got found=%v err=%v", found, err)
	}

	// Neighbouring buffers are not picked up by the range
	if _, err := Store(m, 43, []byte("neighbour"), codec.ChunkSize); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	ranged, _, _ = JoinByRange(m, 42)
	if !bytes.Equal(ranged, buf) {
		t.Errorf("Range join leaked into another buffer")
	}
}

func TestStoreOverwriteIsIdempotent(t *testing.T) {
	m := newChunkMap(t)
	buf := pattern(3 * codec.ChunkSize)

	for i := 0; i < 2; i++ {
		if _, err := Store(m, 1, buf, codec.ChunkSize); err != nil {
			t.Fatalf("Store %d failed: %v", i, err)
		}
	}
	if m.Len() != 3 {
		t.Errorf("Expected 3 chunks after storing twice, got %d", m.Len())
	}
}

func TestGapTruncation(t *testing.T) {
	const chunkSize = 16
	m := newChunkMap(t)
	buf := pattern(5 * chunkSize)

	if _, err := Store(m, 5, buf, chunkSize); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if _, err := m.Delete(codec.ChunkKey{BufferID: 5, Index: 2}.Encode()); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	seq, seqRes, err := JoinByLookup(m, 5)
	if err != nil {
		t.Fatalf("JoinByLookup failed: %v", err)
	}
	if len(seq) != 2*chunkSize || seqRes.Chunks != 2 {
		t.Errorf("Sequential join should stop at the gap, got %d bytes in %d chunks", len(seq), seqRes.Chunks)
	}

	ranged, rangeRes, err := JoinByRange(m, 5)
	if err != nil {
		t.Fatalf("JoinByRange failed: %v", err)
	}
	if rangeRes.Chunks != 4 || len(ranged) != 4*chunkSize {
		t.Errorf("Range join should skip the gap, got %d bytes in %d chunks", len(ranged), rangeRes.Chunks)
	}
	want := append(append([]byte{}, buf[:2*chunkSize]...), buf[3*chunkSize:]...)
	if !bytes.Equal(ranged, want) {
		t.Errorf("Range join returned the wrong bytes")
	}

	gap, found, err := FindGap(m, 5)
	if err != nil || !found {
		t.Fatalf("Expected a gap, got found=%v err=%v", found, err)
	}
	if gap.Index != 2 || gap.Present != 2 {
		t.Errorf("Expected gap at 2 with 2 chunks after it, got %+v", gap)
	}
}

func TestStoreShorterOverwrite(t *testing.T) {
	const chunkSize = 8
	m := newChunkMap(t)

	long := bytes.Repeat([]byte("a"), 20)
	if _, err := Store(m, 5, long, chunkSize); err != nil {
		t.Fatalf("Store of long buffer failed: %v", err)
	}
	if m.Len() != 3 {
		t.Fatalf("Expected 3 chunks, got %d", m.Len())
	}

	res, err := Store(m, 5, []byte("bbbb"), chunkSize)
	if err != nil {
		t.Fatalf("Store of short buffer failed: %v", err)
	}
	if res.Chunks != 1 || res.Trimmed != 2 {
		t.Errorf("Expected 1 chunk written and 2 trimmed, got %+v", res)
	}
	if m.Len() != 1 {
		t.Errorf("Expected 1 chunk left, got %d", m.Len())
	}

	for name, join := range map[string]func(*ordmap.Map, uint64) ([]byte, Result, error){
		"lookup": func(m *ordmap.Map, id uint64) ([]byte, Result, error) { return JoinByLookup(m, id) },
		"range":  func(m *ordmap.Map, id uint64) ([]byte, Result, error) { return JoinByRange(m, id) },
	} {
		got, _, err := join(m, 5)
		if err != nil {
			t.Fatalf("Join by %s failed: %v", name, err)
		}
		if string(got) != "bbbb" {
			t.Errorf("Join by %s: expected %q, got %q", name, "bbbb", got)
		}
	}
}

func TestStoreTrimLeavesOtherBuffers(t *testing.T) {
	const chunkSize = 8
	m := newChunkMap(t)

	if _, err := Store(m, 5, pattern(3*chunkSize), chunkSize); err != nil {
		t.Fatalf("Store 5 failed: %v", err)
	}
	if _, err := Store(m, 6, pattern(2*chunkSize), chunkSize); err != nil {
		t.Fatalf("Store 6 failed: %v", err)
	}
	if _, err := Store(m, 5, nil, chunkSize); err != nil {
		t.Fatalf("Empty store failed: %v", err)
	}

	if _, res, _ := JoinByRange(m, 5); res.Chunks != 0 {
		t.Errorf("Expected no chunks left for 5, got %d", res.Chunks)
	}
	got, _, err := JoinByRange(m, 6)
	if err != nil {
		t.Fatalf("JoinByRange failed: %v", err)
	}
	if !bytes.Equal(got, pattern(2*chunkSize)) {
		t.Errorf("Buffer 6 changed by trimming buffer 5")
	}
}

// failingInserter fails after a fixed number of inserts
type failingInserter struct {
	*ordmap.Map
	limit int
}

var errInjected = errors.New("injected failure")

func (f *failingInserter) Insert(key, value []byte) error {
	if f.limit == 0 {
		return errInjected
	}
	f.limit--
	return f.Map.Insert(key, value)
}

func TestStorePartialFailure(t *testing.T) {
	m := newChunkMap(t)
	buf := pattern(4 * codec.ChunkSize)

	res, err := Store(&failingInserter{Map: m, limit: 2}, 3, buf, codec.ChunkSize)
	if !errors.Is(err, errInjected) {
		t.Fatalf("Expected injected failure, got %v", err)
	}
	if res.Chunks != 2 || res.Bytes != 2*codec.ChunkSize {
		t.Errorf("Expected partial result of 2 chunks, got %+v", res)
	}

	// The prefix stays persisted
	got, _, _ := JoinByLookup(m, 3)
	if !bytes.Equal(got, buf[:2*codec.ChunkSize]) {
		t.Errorf("Expected persisted prefix of %d bytes, got %d", 2*codec.ChunkSize, len(got))
	}
}

func TestStoreRejectsOversizedChunks(t *testing.T) {
	m := newChunkMap(t)

	res, err := Store(m, 1, pattern(2*codec.ChunkSize), 2*codec.ChunkSize)
	if !errors.Is(err, codec.ErrSizeExceeded) {
		t.Fatalf("Expected ErrSizeExceeded, got %v", err)
	}
	if res.Chunks != 0 || m.Len() != 0 {
		t.Errorf("Nothing should be stored, got %+v and %d keys", res, m.Len())
	}
}

func BenchmarkJoinByLookup(b *testing.B) {
	m, _ := ordmap.Open(region.NewHeapMemory(0), ordmap.Options{Bound: codec.ChunkBound, Logger: log.Discard()})
	_, _ = Store(m, 1, pattern(256*codec.ChunkSize), codec.ChunkSize)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = JoinByLookup(m, 1)
	}
}

func BenchmarkJoinByRange(b *testing.B) {
	m, _ := ordmap.Open(region.NewHeapMemory(0), ordmap.Options{Bound: codec.ChunkBound, Logger: log.Discard()})
	_, _ = Store(m, 1, pattern(256*codec.ChunkSize), codec.ChunkSize)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = JoinByRange(m, 1)
	}
}
