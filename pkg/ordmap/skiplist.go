package ordmap

import (
	"bytes"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"
)

const (
	// MaxHeight is the maximum height of the skip list
	MaxHeight = 12

	// BranchingFactor determines the probability of increasing the height
	BranchingFactor = 4
)

// location is where the latest value of a key lives in the record log
type location struct {
	offset uint64
	length uint32
}

// node represents a node in the skip list
type node struct {
	key    []byte
	loc    location
	height int32
	// next contains pointers to the next nodes at each level
	next [MaxHeight]unsafe.Pointer
}

func newNode(key []byte, loc location, height int) *node {
	return &node{
		key:    key,
		loc:    loc,
		height: int32(height),
	}
}

// getNext returns the next node at the given level
func (n *node) getNext(level int) *node {
	return (*node)(atomic.LoadPointer(&n.next[level]))
}

// setNext sets the next node at the given level
func (n *node) setNext(level int, next *node) {
	atomic.StorePointer(&n.next[level], unsafe.Pointer(next))
}

// skipList is the in-memory index of the map: one node per live key, ordered by
// bytes.Compare. Writers must be serialized by the caller.
type skipList struct {
	head      *node
	maxHeight int32
	rnd       *rand.Rand
	rndMtx    sync.Mutex
	count     int64
}

func newSkipList() *skipList {
	return &skipList{
		head:      newNode(nil, location{}, MaxHeight),
		maxHeight: 1,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// randomHeight generates a random height for a new node
func (s *skipList) randomHeight() int {
	s.rndMtx.Lock()
	defer s.rndMtx.Unlock()

	height := 1
	for height < MaxHeight && s.rnd.Intn(BranchingFactor) == 0 {
		height++
	}
	return height
}

func (s *skipList) getCurrentHeight() int {
	return int(atomic.LoadInt32(&s.maxHeight))
}

// findGreaterOrEqual returns the first node with key >= target. When prev is
// non-nil it is filled with the rightmost node before target at every level.
func (s *skipList) findGreaterOrEqual(target []byte, prev *[MaxHeight]*node) *node {
	current := s.head
	for level := s.getCurrentHeight() - 1; level >= 0; level-- {
		for next := current.getNext(level); next != nil; next = current.getNext(level) {
			if bytes.Compare(next.key, target) >= 0 {
				break
			}
			current = next
		}
		if prev != nil {
			prev[level] = current
		}
	}
	return current.getNext(0)
}

// upsert points key at loc, inserting a node if the key is new. It returns the
// previous location when the key already existed.
func (s *skipList) upsert(key []byte, loc location) (location, bool) {
	var prev [MaxHeight]*node
	if n := s.findGreaterOrEqual(key, &prev); n != nil && bytes.Equal(n.key, key) {
		old := n.loc
		n.loc = loc
		return old, true
	}

	height := s.randomHeight()
	currHeight := s.getCurrentHeight()
	if height > currHeight {
		// Levels above the old height start at head
		for level := currHeight; level < height; level++ {
			prev[level] = s.head
		}
		atomic.StoreInt32(&s.maxHeight, int32(height))
	}

	n := newNode(key, loc, height)
	for level := 0; level < height; level++ {
		n.setNext(level, prev[level].getNext(level))
		prev[level].setNext(level, n)
	}
	atomic.AddInt64(&s.count, 1)
	return location{}, false
}

// find returns the location stored for key
func (s *skipList) find(key []byte) (location, bool) {
	n := s.findGreaterOrEqual(key, nil)
	if n == nil || !bytes.Equal(n.key, key) {
		return location{}, false
	}
	return n.loc, true
}

// remove unlinks key from the list and returns its last location
func (s *skipList) remove(key []byte) (location, bool) {
	var prev [MaxHeight]*node
	n := s.findGreaterOrEqual(key, &prev)
	if n == nil || !bytes.Equal(n.key, key) {
		return location{}, false
	}

	for level := int(n.height) - 1; level >= 0; level-- {
		if prev[level].getNext(level) == n {
			prev[level].setNext(level, n.getNext(level))
		}
	}
	atomic.AddInt64(&s.count, -1)
	return n.loc, true
}

// len returns the number of live keys
func (s *skipList) len() int {
	return int(atomic.LoadInt64(&s.count))
}

// listIterator provides sequential access to the skip list nodes
type listIterator struct {
	list    *skipList
	current *node
}

func (s *skipList) newIterator() *listIterator {
	return &listIterator{list: s}
}

func (it *listIterator) valid() bool {
	return it.current != nil
}

func (it *listIterator) next() {
	if it.current != nil {
		it.current = it.current.getNext(0)
	}
}

func (it *listIterator) seekToFirst() {
	it.current = it.list.head.getNext(0)
}

func (it *listIterator) seek(target []byte) {
	it.current = it.list.findGreaterOrEqual(target, nil)
}
