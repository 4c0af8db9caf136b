// Package codec defines the storable units of the buffer store: the fixed-size
// chunk, the variable-length whole-buffer payload, their size bounds, and the
// byte encodings of the keys they are stored under.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

const (
	// ChunkSize is the fixed size of a chunk payload. Only the final chunk of a
	// buffer may be shorter.
	ChunkSize = 4096

	// WholeMaxSize is the largest buffer that can be stored as a single record.
	WholeMaxSize = 150_000_000

	// KeySize is the encoded size of a whole-buffer key.
	KeySize = 8

	// ChunkKeySize is the encoded size of a chunk key.
	ChunkKeySize = 16
)

var (
	// ErrSizeExceeded is returned when a value is larger than its bound allows
	ErrSizeExceeded = errors.New("codec: value exceeds size bound")
	// ErrCorruptPayload is returned when a whole-buffer payload cannot be decoded
	ErrCorruptPayload = errors.New("codec: corrupt payload")
	// ErrInvalidKey is returned when an encoded key has the wrong length
	ErrInvalidKey = errors.New("codec: invalid key")
)

// Bound describes the size limits of a value stored in a map.
type Bound struct {
	MaxSize   uint32
	FixedSize bool
}

var (
	// WholeBound bounds whole-buffer records.
	WholeBound = Bound{MaxSize: WholeMaxSize}
	// ChunkBound bounds chunk records.
	ChunkBound = Bound{MaxSize: ChunkSize}
)

// Check verifies that a value of n bytes satisfies the bound
func (b Bound) Check(n int) error {
	if n < 0 || uint64(n) > uint64(b.MaxSize) {
		return fmt.Errorf("%w: %d bytes, max %d", ErrSizeExceeded, n, b.MaxSize)
	}
	if b.FixedSize && uint64(n) != uint64(b.MaxSize) {
		return fmt.Errorf("%w: %d bytes, fixed size %d", ErrSizeExceeded, n, b.MaxSize)
	}
	return nil
}

// Unbounded reports whether the bound places no limit on value size.
func (b Bound) Unbounded() bool {
	return b.MaxSize == 0
}

// EncodeKey encodes a whole-buffer key. Keys are big-endian so that byte order
// equals numeric order.
func EncodeKey(key uint64) []byte {
	buf := make([]byte, KeySize)
	binary.BigEndian.PutUint64(buf, key)
	return buf
}

// DecodeKey decodes a key produced by EncodeKey
func DecodeKey(buf []byte) (uint64, error) {
	if len(buf) != KeySize {
		return 0, fmt.Errorf("%w: %d bytes", ErrInvalidKey, len(buf))
	}
	return binary.BigEndian.Uint64(buf), nil
}

// ChunkKey addresses one chunk of one buffer.
type ChunkKey struct {
	BufferID uint64
	Index    uint64
}

// Encode returns the 16 byte encoding of the key: BufferID then Index, both
// big-endian, so that bytes.Compare orders keys by BufferID first and Index
// second.
func (k ChunkKey) Encode() []byte {
	buf := make([]byte, ChunkKeySize)
	binary.BigEndian.PutUint64(buf[:8], k.BufferID)
	binary.BigEndian.PutUint64(buf[8:], k.Index)
	return buf
}

// String implements fmt.Stringer
func (k ChunkKey) String() string {
	return fmt.Sprintf("(%d,%d)", k.BufferID, k.Index)
}

// DecodeChunkKey decodes a key produced by ChunkKey.Encode
func DecodeChunkKey(buf []byte) (ChunkKey, error) {
	if len(buf) != ChunkKeySize {
		return ChunkKey{}, fmt.Errorf("%w: %d bytes", ErrInvalidKey, len(buf))
	}
	return ChunkKey{
		BufferID: binary.BigEndian.Uint64(buf[:8]),
		Index:    binary.BigEndian.Uint64(buf[8:]),
	}, nil
}

// Compare orders two chunk keys lexicographically over (BufferID, Index).
// Returns negative if a < b, 0 if equal, positive if a > b.
func Compare(a, b ChunkKey) int {
	switch {
	case a.BufferID < b.BufferID:
		return -1
	case a.BufferID > b.BufferID:
		return 1
	case a.Index < b.Index:
		return -1
	case a.Index > b.Index:
		return 1
	}
	return 0
}

// ChunkRange returns the half-open encoded key range [(id,0), (id+1,0)) that
// holds every chunk of bufferID. The end bound is nil for the last buffer id.
func ChunkRange(bufferID uint64) (start, end []byte) {
	start = ChunkKey{BufferID: bufferID}.Encode()
	if bufferID == math.MaxUint64 {
		return start, nil
	}
	return start, ChunkKey{BufferID: bufferID + 1}.Encode()
}
