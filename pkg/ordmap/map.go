// Package ordmap implements a byte-keyed ordered map whose records persist in a
// region. Every write is appended to a record log inside the region and an
// in-memory skip list indexes the latest value of each live key.
package ordmap

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KevoDB/chunkbench/pkg/codec"
	"github.com/KevoDB/chunkbench/pkg/common/log"
	"github.com/KevoDB/chunkbench/pkg/region"
	"github.com/KevoDB/chunkbench/pkg/telemetry"
)

var (
	// ErrCorrupt is returned when the record log in a region cannot be replayed
	ErrCorrupt = errors.New("ordmap: corrupt record log")
	// ErrEmptyKey is returned for zero-length keys
	ErrEmptyKey = errors.New("ordmap: empty key")
	// ErrClosed is returned when a closed map is used
	ErrClosed = errors.New("ordmap: closed")
)

// Options configures a Map
type Options struct {
	// Name identifies the map in logs and metrics
	Name string
	// Bound limits the size of values; the zero Bound is unbounded
	Bound codec.Bound
	// Logger defaults to the package default logger
	Logger log.Logger
	// Metrics defaults to a no-op implementation
	Metrics MapMetrics
}

// Stats describes the contents of a map
type Stats struct {
	Name       string `json:"name"`
	LiveKeys   int    `json:"live_keys"`
	Records    uint64 `json:"records"`
	Puts       uint64 `json:"puts"`
	Deletes    uint64 `json:"deletes"`
	LogBytes   uint64 `json:"log_bytes"`
	Pages      uint64 `json:"pages"`
	PagesGrown uint64 `json:"pages_grown"`
}

// ReplayStats describes the rebuild of the index when a map is opened
type ReplayStats struct {
	Records  uint64
	Puts     uint64
	Deletes  uint64
	Bytes    uint64
	Duration time.Duration
}

// Map is an ordered map persisted in a region. It is safe for concurrent use.
type Map struct {
	mu      sync.RWMutex
	name    string
	bound   codec.Bound
	log     *recordLog
	index   *skipList
	logger  log.Logger
	metrics MapMetrics

	records    uint64
	puts       uint64
	deletes    uint64
	pagesGrown uint64
	replay     ReplayStats
	closed     bool
}

// Open opens the map stored in mem, replaying any existing record log
func Open(mem region.Memory, opts Options) (*Map, error) {
	if opts.Name == "" {
		opts.Name = "map"
	}
	if opts.Logger == nil {
		opts.Logger = log.GetDefaultLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = NewNoopMapMetrics()
	}

	rl, existing, err := openLog(mem)
	if err != nil {
		return nil, fmt.Errorf("open map %s: %w", opts.Name, err)
	}

	m := &Map{
		name:    opts.Name,
		bound:   opts.Bound,
		log:     rl,
		index:   newSkipList(),
		logger:  opts.Logger.WithField("map", opts.Name),
		metrics: opts.Metrics,
	}

	if existing {
		if err := m.replayLog(); err != nil {
			return nil, fmt.Errorf("open map %s: %w", opts.Name, err)
		}
		m.logger.Info("Replayed %d records (%d live keys) in %v",
			m.replay.Records, m.index.len(), m.replay.Duration)
	} else {
		m.logger.Debug("Initialized empty map")
	}

	return m, nil
}

func (m *Map) replayLog() error {
	start := time.Now()
	var rs ReplayStats

	err := m.log.replay(func(r record) error {
		rs.Records++
		rs.Bytes += r.size
		switch r.kind {
		case kindPut:
			rs.Puts++
			m.index.upsert(append([]byte(nil), r.key...), r.value)
		case kindDelete:
			rs.Deletes++
			m.index.remove(r.key)
		}
		return nil
	})
	if err != nil {
		return err
	}

	rs.Duration = time.Since(start)
	m.records, m.puts, m.deletes = rs.Records, rs.Puts, rs.Deletes
	m.replay = rs
	m.metrics.RecordReplay(context.Background(), m.name, rs)
	return nil
}

// Name returns the map name
func (m *Map) Name() string {
	return m.name
}

// Bound returns the value bound of the map
func (m *Map) Bound() codec.Bound {
	return m.bound
}

// Insert stores value under key, replacing any previous value. Values that do
// not satisfy the map bound are rejected before anything is written.
func (m *Map) Insert(key, value []byte) (err error) {
	start := time.Now()
	defer func() {
		m.metrics.RecordOperation(context.Background(), m.name, telemetry.OpTypePut, time.Since(start), len(value), err)
	}()

	if len(key) == 0 {
		return ErrEmptyKey
	}
	if !m.bound.Unbounded() {
		if err := m.bound.Check(len(value)); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	loc, grown, err := m.log.append(kindPut, key, value)
	m.recordGrowth(grown)
	if err != nil {
		return fmt.Errorf("insert into %s: %w", m.name, err)
	}

	m.index.upsert(append([]byte(nil), key...), loc)
	m.records++
	m.puts++
	return nil
}

// Get returns the value stored under key. A missing key is reported through
// found, not as an error.
func (m *Map) Get(key []byte) (value []byte, found bool, err error) {
	start := time.Now()
	defer func() {
		m.metrics.RecordOperation(context.Background(), m.name, telemetry.OpTypeGet, time.Since(start), len(value), err)
	}()

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, false, ErrClosed
	}

	loc, ok := m.index.find(key)
	if !ok {
		return nil, false, nil
	}
	value, err = m.log.read(loc)
	if err != nil {
		return nil, false, fmt.Errorf("get from %s: %w", m.name, err)
	}
	return value, true, nil
}

// Delete removes key. It reports whether the key was present; deleting a
// missing key writes nothing.
func (m *Map) Delete(key []byte) (found bool, err error) {
	start := time.Now()
	defer func() {
		m.metrics.RecordOperation(context.Background(), m.name, telemetry.OpTypeDelete, time.Since(start), 0, err)
	}()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return false, ErrClosed
	}
	if _, ok := m.index.find(key); !ok {
		return false, nil
	}

	_, grown, err := m.log.append(kindDelete, key, nil)
	m.recordGrowth(grown)
	if err != nil {
		return false, fmt.Errorf("delete from %s: %w", m.name, err)
	}

	m.index.remove(key)
	m.records++
	m.deletes++
	return true, nil
}

// Range calls fn for every key in [start, end) in ascending order. A nil bound
// leaves that side open. Iteration stops at the first error fn returns.
func (m *Map) Range(start, end []byte, fn func(key, value []byte) error) (err error) {
	began := time.Now()
	total := 0
	defer func() {
		m.metrics.RecordOperation(context.Background(), m.name, telemetry.OpTypeScan, time.Since(began), total, err)
	}()

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return ErrClosed
	}

	it := newIndexIterator(m)
	bi := boundedOver(it, start, end)
	for bi.SeekToFirst(); bi.Valid(); bi.Next() {
		value := bi.Value()
		if it.err != nil {
			return fmt.Errorf("range over %s: %w", m.name, it.err)
		}
		total += len(value)
		if err := fn(bi.Key(), value); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of live keys
func (m *Map) Len() int {
	return m.index.len()
}

// Stats returns a snapshot of the map counters
func (m *Map) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Stats{
		Name:       m.name,
		LiveKeys:   m.index.len(),
		Records:    m.records,
		Puts:       m.puts,
		Deletes:    m.deletes,
		LogBytes:   m.log.tail,
		Pages:      m.log.mem.Size(),
		PagesGrown: m.pagesGrown,
	}
}

// ReplayStats returns the statistics of the replay performed by Open
func (m *Map) ReplayStats() ReplayStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.replay
}

// Sync flushes the underlying region
func (m *Map) Sync() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return ErrClosed
	}
	return m.log.mem.Sync()
}

// Close marks the map closed. The region itself belongs to its manager.
func (m *Map) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true
	return m.metrics.Close()
}

func (m *Map) recordGrowth(pages uint64) {
	if pages == 0 {
		return
	}
	m.pagesGrown += pages
	m.metrics.RecordGrowth(context.Background(), m.name, pages)
}
