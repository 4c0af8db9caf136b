package codec

import (
	"encoding/binary"
	"fmt"
)

// EncodeWhole serializes a whole buffer as a uvarint length prefix followed by
// the bytes. The buffer itself must satisfy WholeBound.
func EncodeWhole(buf []byte) ([]byte, error) {
	if err := WholeBound.Check(len(buf)); err != nil {
		return nil, err
	}

	out := make([]byte, binary.MaxVarintLen64+len(buf))
	n := binary.PutUvarint(out, uint64(len(buf)))
	copy(out[n:], buf)
	return out[:n+len(buf)], nil
}

// DecodeWhole reverses EncodeWhole. The returned slice aliases data.
func DecodeWhole(data []byte) ([]byte, error) {
	length, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, fmt.Errorf("%w: bad length prefix", ErrCorruptPayload)
	}
	if uint64(len(data)-n) != length {
		return nil, fmt.Errorf("%w: prefix says %d bytes, have %d", ErrCorruptPayload, length, len(data)-n)
	}
	return data[n:], nil
}

// WholeEncodedSize returns the encoded size of a whole buffer of n bytes
func WholeEncodedSize(n int) int {
	var tmp [binary.MaxVarintLen64]byte
	return binary.PutUvarint(tmp[:], uint64(n)) + n
}
