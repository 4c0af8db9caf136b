package ordmap

import (
	"github.com/KevoDB/chunkbench/pkg/common/iterator"
	"github.com/KevoDB/chunkbench/pkg/common/iterator/bounded"
)

// indexIterator adapts the skip list to the common iterator interface. Values
// are read from the record log only when asked for. Callers hold the map lock.
type indexIterator struct {
	log *recordLog
	it  *listIterator
	err error
}

// Ensure indexIterator implements iterator.Iterator
var _ iterator.Iterator = (*indexIterator)(nil)

func newIndexIterator(m *Map) *indexIterator {
	return &indexIterator{
		log: m.log,
		it:  m.index.newIterator(),
	}
}

// SeekToFirst positions the iterator at the first key
func (a *indexIterator) SeekToFirst() {
	a.it.seekToFirst()
}

// Seek positions the iterator at the first key >= target
func (a *indexIterator) Seek(target []byte) bool {
	a.it.seek(target)
	return a.it.valid()
}

// Next advances the iterator to the next key
func (a *indexIterator) Next() bool {
	a.it.next()
	return a.it.valid()
}

// Key returns the current key
func (a *indexIterator) Key() []byte {
	if !a.it.valid() {
		return nil
	}
	return a.it.current.key
}

// Value reads the current value from the region. Read failures are kept in err.
func (a *indexIterator) Value() []byte {
	if !a.it.valid() {
		return nil
	}
	v, err := a.log.read(a.it.current.loc)
	if err != nil {
		a.err = err
		return nil
	}
	return v
}

// Valid returns true if the iterator is positioned at a valid entry
func (a *indexIterator) Valid() bool {
	return a.it.valid()
}

func boundedOver(it iterator.Iterator, start, end []byte) *bounded.BoundedIterator {
	return bounded.NewBoundedIterator(it, start, end)
}

// RangeIterator walks the keys of a half-open range in ascending order.
//
//	it := m.NewRangeIterator(start, end)
//	for it.Next() {
//		use(it.Key(), it.Value())
//	}
//	if err := it.Err(); err != nil { ... }
type RangeIterator struct {
	m       *Map
	it      *indexIterator
	bi      *bounded.BoundedIterator
	started bool
	value   []byte
	err     error
}

// NewRangeIterator returns an iterator over [start, end). Nil bounds are open.
func (m *Map) NewRangeIterator(start, end []byte) *RangeIterator {
	it := newIndexIterator(m)
	return &RangeIterator{
		m:  m,
		it: it,
		bi: boundedOver(it, start, end),
	}
}

// Next advances to the next key in range and loads its value
func (r *RangeIterator) Next() bool {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	r.value = nil
	if r.err != nil {
		return false
	}
	if r.m.closed {
		r.err = ErrClosed
		return false
	}

	if !r.started {
		r.started = true
		r.bi.SeekToFirst()
	} else {
		r.bi.Next()
	}
	if !r.bi.Valid() {
		return false
	}

	r.value = r.bi.Value()
	if r.it.err != nil {
		r.err = r.it.err
		r.value = nil
		return false
	}
	return true
}

// Key returns the current key
func (r *RangeIterator) Key() []byte {
	if r.value == nil {
		return nil
	}
	return r.bi.Key()
}

// Value returns the current value
func (r *RangeIterator) Value() []byte {
	return r.value
}

// Err returns the error that stopped iteration, if any
func (r *RangeIterator) Err() error {
	return r.err
}
