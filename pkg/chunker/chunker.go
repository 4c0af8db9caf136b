// Package chunker splits buffers into fixed-size chunks keyed by
// (buffer id, chunk index) and reassembles them from an ordered map.
package chunker

import (
	"errors"
	"fmt"

	"github.com/KevoDB/chunkbench/pkg/codec"
)

// ErrInvalidChunkSize is returned for chunk sizes that are not positive
var ErrInvalidChunkSize = errors.New("chunker: chunk size must be positive")

// Chunk is one piece of a buffer
type Chunk struct {
	Index uint64
	Data  []byte
}

// Result summarizes a store or join
type Result struct {
	Bytes  int
	Chunks int
	// Trimmed counts stale chunks a store removed past the new last index
	Trimmed int
}

// Inserter stores values under encoded keys
type Inserter interface {
	Insert(key, value []byte) error
}

// Getter looks up single keys. A missing key is reported through found.
type Getter interface {
	Get(key []byte) (value []byte, found bool, err error)
}

// Ranger visits the keys of a half-open range in ascending order
type Ranger interface {
	Range(start, end []byte, fn func(key, value []byte) error) error
}

// Writer is the map chunks are stored in. Deletes drop the indices a longer,
// earlier buffer left behind.
type Writer interface {
	Inserter
	Ranger
	Delete(key []byte) (bool, error)
}

// SplitFunc calls fn with every chunk of buf in index order. Chunk payloads
// are copies, never views of buf. Iteration stops at the first error fn returns.
func SplitFunc(buf []byte, chunkSize int, fn func(Chunk) error) error {
	if chunkSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChunkSize, chunkSize)
	}

	n := len(buf)
	var idx uint64
	for lower := 0; lower < n; idx++ {
		upper := lower + min(chunkSize, n-lower)

		data := make([]byte, upper-lower)
		copy(data, buf[lower:upper])
		if err := fn(Chunk{Index: idx, Data: data}); err != nil {
			return err
		}
		lower = upper
	}
	return nil
}

// Split returns every chunk of buf in index order
func Split(buf []byte, chunkSize int) ([]Chunk, error) {
	chunks := make([]Chunk, 0, Count(len(buf), chunkSize))
	err := SplitFunc(buf, chunkSize, func(c Chunk) error {
		chunks = append(chunks, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return chunks, nil
}

// Count returns ceil(n / chunkSize), the number of chunks a buffer of n bytes
// splits into
func Count(n, chunkSize int) int {
	if chunkSize <= 0 || n <= 0 {
		return 0
	}
	count := n / chunkSize
	if n%chunkSize != 0 {
		count++
	}
	return count
}

// Store writes each chunk of buf under ChunkKey{bufferID, index} and then
// removes any index at or past the new chunk count, so the stored indices are
// exactly [0, n). Inserts are not rolled back: on failure the chunks already
// written stay persisted, nothing is trimmed, and the partial result is
// returned with the error.
func Store(w Writer, bufferID uint64, buf []byte, chunkSize int) (Result, error) {
	var res Result
	err := SplitFunc(buf, chunkSize, func(c Chunk) error {
		key := codec.ChunkKey{BufferID: bufferID, Index: c.Index}
		if err := w.Insert(key.Encode(), c.Data); err != nil {
			return fmt.Errorf("store chunk %s: %w", key, err)
		}
		res.Chunks++
		res.Bytes += len(c.Data)
		return nil
	})
	if err != nil {
		return res, err
	}

	res.Trimmed, err = trim(w, bufferID, uint64(res.Chunks))
	return res, err
}

// trim deletes the chunks of bufferID with index >= from
func trim(w Writer, bufferID, from uint64) (int, error) {
	start := codec.ChunkKey{BufferID: bufferID, Index: from}.Encode()
	_, end := codec.ChunkRange(bufferID)

	// Keys are collected first; the map cannot be written during a scan
	var stale [][]byte
	err := w.Range(start, end, func(key, _ []byte) error {
		stale = append(stale, append([]byte(nil), key...))
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scan stale chunks of %d: %w", bufferID, err)
	}

	trimmed := 0
	for _, key := range stale {
		if _, err := w.Delete(key); err != nil {
			return trimmed, fmt.Errorf("trim chunk of %d: %w", bufferID, err)
		}
		trimmed++
	}
	return trimmed, nil
}

// JoinByLookup reassembles a buffer with one point lookup per chunk, starting
// at index 0 and stopping at the first missing index. Chunks after a gap are
// not returned.
func JoinByLookup(r Getter, bufferID uint64) ([]byte, Result, error) {
	var (
		buf []byte
		res Result
	)
	for idx := uint64(0); ; idx++ {
		key := codec.ChunkKey{BufferID: bufferID, Index: idx}
		value, found, err := r.Get(key.Encode())
		if err != nil {
			return nil, res, fmt.Errorf("lookup chunk %s: %w", key, err)
		}
		if !found {
			return buf, res, nil
		}
		buf = append(buf, value...)
		res.Chunks++
		res.Bytes += len(value)
	}
}

// JoinByRange reassembles a buffer with a single range scan over every key of
// bufferID, concatenating payloads in key order. Missing indices are skipped.
func JoinByRange(r Ranger, bufferID uint64) ([]byte, Result, error) {
	var (
		buf []byte
		res Result
	)
	start, end := codec.ChunkRange(bufferID)
	err := r.Range(start, end, func(key, value []byte) error {
		buf = append(buf, value...)
		res.Chunks++
		res.Bytes += len(value)
		return nil
	})
	if err != nil {
		return nil, res, fmt.Errorf("range over buffer %d: %w", bufferID, err)
	}
	return buf, res, nil
}

// Gap describes the first missing chunk of a buffer
type Gap struct {
	// Index is the first missing chunk index
	Index uint64 `json:"index"`
	// Present is the number of chunks stored after the gap
	Present int `json:"present"`
}

// FindGap scans the chunks of bufferID and reports the first missing index
// when a later index is present. A buffer with contiguous indices [0, n) has
// no gap.
func FindGap(r Ranger, bufferID uint64) (Gap, bool, error) {
	var (
		gap   Gap
		found bool
		next  uint64
	)
	start, end := codec.ChunkRange(bufferID)
	err := r.Range(start, end, func(key, _ []byte) error {
		ck, err := codec.DecodeChunkKey(key)
		if err != nil {
			return err
		}
		if !found && ck.Index != next {
			found = true
			gap.Index = next
		}
		if found {
			gap.Present++
		}
		next = ck.Index + 1
		return nil
	})
	if err != nil {
		return Gap{}, false, fmt.Errorf("scan buffer %d: %w", bufferID, err)
	}
	return gap, found, nil
}
