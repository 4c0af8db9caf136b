package ordmap

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/KevoDB/chunkbench/pkg/flatmem"
	"github.com/KevoDB/chunkbench/pkg/region"
)

// Region layout:
//
//	header:  magic[4] | version u16 | reserved u16 | tail u64
//	record:  checksum u64 | kind u8 | keyLen u32 | valLen u32 | key | value
//
// Integers are little-endian. The checksum is xxhash64 over everything in the
// record after the checksum field. tail is the offset just past the last
// complete record.
const (
	logMagic         = "CBOM"
	logVersion       = 1
	headerSize       = 16
	tailOffset       = 8
	recordHeaderSize = 17
)

type recordKind uint8

const (
	kindPut    recordKind = 1
	kindDelete recordKind = 2
)

// recordLog appends records to a region and reads them back
type recordLog struct {
	mem  region.Memory
	tail uint64
}

// openLog initializes an empty region or validates the header of an existing one
func openLog(mem region.Memory) (*recordLog, bool, error) {
	l := &recordLog{mem: mem}

	if mem.Size() == 0 {
		return l, false, l.initHeader()
	}

	hdr := make([]byte, headerSize)
	if _, err := mem.ReadAt(hdr, 0); err != nil {
		return nil, false, fmt.Errorf("read log header: %w", err)
	}

	// A region that was grown but never written to is still fresh
	if bytes.Equal(hdr, make([]byte, headerSize)) {
		return l, false, l.initHeader()
	}

	if string(hdr[:4]) != logMagic {
		return nil, false, fmt.Errorf("%w: bad magic %q", ErrCorrupt, hdr[:4])
	}
	if v := binary.LittleEndian.Uint16(hdr[4:6]); v != logVersion {
		return nil, false, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, v)
	}

	l.tail = binary.LittleEndian.Uint64(hdr[tailOffset:])
	if l.tail < headerSize || l.tail > region.SizeBytes(mem) {
		return nil, false, fmt.Errorf("%w: tail %d outside region of %d bytes", ErrCorrupt, l.tail, region.SizeBytes(mem))
	}
	return l, true, nil
}

func (l *recordLog) initHeader() error {
	if _, err := flatmem.EnsureCapacity(l.mem, headerSize); err != nil {
		return err
	}

	hdr := make([]byte, headerSize)
	copy(hdr, logMagic)
	binary.LittleEndian.PutUint16(hdr[4:6], logVersion)
	binary.LittleEndian.PutUint64(hdr[tailOffset:], headerSize)
	if _, err := l.mem.WriteAt(hdr, 0); err != nil {
		return fmt.Errorf("write log header: %w", err)
	}
	l.tail = headerSize
	return nil
}

func checksum(head []byte, key, value []byte) uint64 {
	d := xxhash.New()
	_, _ = d.Write(head)
	_, _ = d.Write(key)
	_, _ = d.Write(value)
	return d.Sum64()
}

// append writes one record at the tail and returns the location of its value.
// The tail in the header is only advanced once the record is fully written.
func (l *recordLog) append(kind recordKind, key, value []byte) (location, uint64, error) {
	size := uint64(recordHeaderSize + len(key) + len(value))
	start := l.tail

	grown, err := flatmem.EnsureCapacity(l.mem, start+size)
	if err != nil {
		return location{}, 0, err
	}

	head := make([]byte, recordHeaderSize+len(key))
	head[8] = byte(kind)
	binary.LittleEndian.PutUint32(head[9:13], uint32(len(key)))
	binary.LittleEndian.PutUint32(head[13:17], uint32(len(value)))
	copy(head[recordHeaderSize:], key)
	binary.LittleEndian.PutUint64(head[:8], checksum(head[8:recordHeaderSize], key, value))

	if _, err := l.mem.WriteAt(head, int64(start)); err != nil {
		return location{}, grown, fmt.Errorf("write record header: %w", err)
	}
	valueOffset := start + uint64(len(head))
	if len(value) > 0 {
		if _, err := l.mem.WriteAt(value, int64(valueOffset)); err != nil {
			return location{}, grown, fmt.Errorf("write record value: %w", err)
		}
	}

	var tail [8]byte
	binary.LittleEndian.PutUint64(tail[:], start+size)
	if _, err := l.mem.WriteAt(tail[:], tailOffset); err != nil {
		return location{}, grown, fmt.Errorf("advance log tail: %w", err)
	}
	l.tail = start + size

	return location{offset: valueOffset, length: uint32(len(value))}, grown, nil
}

// read copies the value at loc out of the region
func (l *recordLog) read(loc location) ([]byte, error) {
	buf := make([]byte, loc.length)
	if loc.length == 0 {
		return buf, nil
	}
	if _, err := l.mem.ReadAt(buf, int64(loc.offset)); err != nil {
		return nil, fmt.Errorf("read value at %d: %w", loc.offset, err)
	}
	return buf, nil
}

// record is one decoded log record
type record struct {
	kind  recordKind
	key   []byte
	value location
	size  uint64
}

// replay visits every record between the header and the tail in log order
func (l *recordLog) replay(fn func(r record) error) error {
	off := uint64(headerSize)
	head := make([]byte, recordHeaderSize)

	for off < l.tail {
		if l.tail-off < recordHeaderSize {
			return fmt.Errorf("%w: truncated record header at %d", ErrCorrupt, off)
		}
		if _, err := l.mem.ReadAt(head, int64(off)); err != nil {
			return fmt.Errorf("read record at %d: %w", off, err)
		}

		kind := recordKind(head[8])
		keyLen := uint64(binary.LittleEndian.Uint32(head[9:13]))
		valLen := uint64(binary.LittleEndian.Uint32(head[13:17]))
		size := recordHeaderSize + keyLen + valLen
		if off+size > l.tail {
			return fmt.Errorf("%w: record at %d overruns tail", ErrCorrupt, off)
		}
		if kind != kindPut && kind != kindDelete {
			return fmt.Errorf("%w: unknown record kind %d at %d", ErrCorrupt, kind, off)
		}

		body := make([]byte, keyLen+valLen)
		if _, err := l.mem.ReadAt(body, int64(off+recordHeaderSize)); err != nil {
			return fmt.Errorf("read record body at %d: %w", off, err)
		}
		key, value := body[:keyLen], body[keyLen:]
		if checksum(head[8:], key, value) != binary.LittleEndian.Uint64(head[:8]) {
			return fmt.Errorf("%w: checksum mismatch at %d", ErrCorrupt, off)
		}

		r := record{
			kind:  kind,
			key:   key,
			value: location{offset: off + recordHeaderSize + keyLen, length: uint32(valLen)},
			size:  size,
		}
		if err := fn(r); err != nil {
			return err
		}
		off += size
	}
	return nil
}
