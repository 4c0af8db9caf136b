package stats

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// OperationType defines the type of operation being tracked
type OperationType string

// Engine operation types
const (
	OpAppend                OperationType = "append"
	OpClear                 OperationType = "clear"
	OpZero                  OperationType = "zero"
	OpReadRange             OperationType = "read_range"
	OpSize                  OperationType = "size"
	OpStoreWhole            OperationType = "store_whole"
	OpStoreChunked          OperationType = "store_chunked"
	OpStoreFlat             OperationType = "store_flat"
	OpLoadWhole             OperationType = "load_whole"
	OpLoadChunkedSequential OperationType = "load_chunked_sequential"
	OpLoadChunkedRanged     OperationType = "load_chunked_ranged"
	OpLoadFlat              OperationType = "load_flat"
	OpDeleteChunk           OperationType = "delete_chunk"
)

// AtomicCollector provides centralized statistics collection with minimal contention
// using atomic operations for thread safety
type AtomicCollector struct {
	// Operation counters using atomic values
	counts   map[OperationType]*atomic.Uint64
	countsMu sync.RWMutex // Only used when creating new counter entries

	// Timing measurements for last operation timestamps
	lastOpTime   map[OperationType]time.Time
	lastOpTimeMu sync.RWMutex // Only used for timestamp updates

	// Usage metrics
	bufferSize        atomic.Uint64
	totalBytesRead    atomic.Uint64
	totalBytesWritten atomic.Uint64
	chunksWritten     atomic.Uint64
	chunksRead        atomic.Uint64
	pagesGrown        atomic.Uint64

	// Error tracking
	errors   map[string]*atomic.Uint64
	errorsMu sync.RWMutex // Only used when creating new error entries

	// Replay statistics
	replayStats ReplayStats

	// Latency tracking
	latencies   map[OperationType]*LatencyTracker
	latenciesMu sync.RWMutex // Only used when creating new latency trackers

	// Cost tracking, in cost counter units
	costs   map[OperationType]*LatencyTracker
	costsMu sync.RWMutex
}

// ReplayStats tracks the rebuild of map indexes when an engine opens
type ReplayStats struct {
	MapsReplayed    atomic.Uint64
	RecordsReplayed atomic.Uint64
	BytesReplayed   atomic.Uint64
	ReplayDuration  atomic.Int64 // nanoseconds
}

// LatencyTracker maintains running statistics about a per-operation measurement
type LatencyTracker struct {
	count atomic.Uint64
	sum   atomic.Uint64
	max   atomic.Uint64
	min   atomic.Uint64 // zero until the first sample
}

func (t *LatencyTracker) record(v uint64) {
	t.count.Add(1)
	t.sum.Add(v)

	// Update max (using compare-and-swap pattern)
	for {
		current := t.max.Load()
		if v <= current {
			break
		}
		if t.max.CompareAndSwap(current, v) {
			break
		}
	}

	// Update min (using compare-and-swap pattern)
	for {
		current := t.min.Load()
		if current == 0 {
			if t.min.CompareAndSwap(0, v) {
				break
			}
			continue // Race condition, try again
		}
		if v >= current {
			break
		}
		if t.min.CompareAndSwap(current, v) {
			break
		}
	}
}

func (t *LatencyTracker) snapshot(unit string) map[string]interface{} {
	count := t.count.Load()
	sum := t.sum.Load()
	out := map[string]interface{}{"count": count}
	out["avg_"+unit] = sum / count
	out["total_"+unit] = sum

	// Only include min/max if we have values
	if min := t.min.Load(); min != 0 {
		out["min_"+unit] = min
	}
	if max := t.max.Load(); max != 0 {
		out["max_"+unit] = max
	}
	return out
}

// NewAtomicCollector creates a new atomic statistics collector
func NewAtomicCollector() *AtomicCollector {
	return &AtomicCollector{
		counts:     make(map[OperationType]*atomic.Uint64),
		lastOpTime: make(map[OperationType]time.Time),
		errors:     make(map[string]*atomic.Uint64),
		latencies:  make(map[OperationType]*LatencyTracker),
		costs:      make(map[OperationType]*LatencyTracker),
	}
}

// TrackOperation increments the counter for the specified operation type
func (c *AtomicCollector) TrackOperation(op OperationType) {
	counter := c.getOrCreateCounter(op)
	counter.Add(1)

	// Update last operation time (less critical, can use mutex)
	c.lastOpTimeMu.Lock()
	c.lastOpTime[op] = time.Now()
	c.lastOpTimeMu.Unlock()
}

// TrackOperationWithLatency tracks an operation and its latency
func (c *AtomicCollector) TrackOperationWithLatency(op OperationType, latencyNs uint64) {
	c.TrackOperation(op)
	getOrCreateTracker(&c.latenciesMu, c.latencies, op).record(latencyNs)
}

// TrackCost records the cost counter delta measured around one operation
func (c *AtomicCollector) TrackCost(op OperationType, cost uint64) {
	getOrCreateTracker(&c.costsMu, c.costs, op).record(cost)
}

// TrackError increments the counter for the specified error type
func (c *AtomicCollector) TrackError(errorType string) {
	c.errorsMu.RLock()
	counter, exists := c.errors[errorType]
	c.errorsMu.RUnlock()

	if !exists {
		c.errorsMu.Lock()
		if counter, exists = c.errors[errorType]; !exists {
			counter = &atomic.Uint64{}
			c.errors[errorType] = counter
		}
		c.errorsMu.Unlock()
	}

	counter.Add(1)
}

// TrackBytes adds the specified number of bytes to the read or write counter
func (c *AtomicCollector) TrackBytes(isWrite bool, bytes uint64) {
	if isWrite {
		c.totalBytesWritten.Add(bytes)
	} else {
		c.totalBytesRead.Add(bytes)
	}
}

// TrackChunks adds to the chunks written or read counter
func (c *AtomicCollector) TrackChunks(isWrite bool, chunks uint64) {
	if isWrite {
		c.chunksWritten.Add(chunks)
	} else {
		c.chunksRead.Add(chunks)
	}
}

// TrackPagesGrown adds region pages grown by an operation
func (c *AtomicCollector) TrackPagesGrown(pages uint64) {
	c.pagesGrown.Add(pages)
}

// TrackBufferSize records the current length of the active buffer
func (c *AtomicCollector) TrackBufferSize(size uint64) {
	c.bufferSize.Store(size)
}

// StartReplay initializes replay statistics
func (c *AtomicCollector) StartReplay() time.Time {
	c.replayStats.MapsReplayed.Store(0)
	c.replayStats.RecordsReplayed.Store(0)
	c.replayStats.BytesReplayed.Store(0)
	c.replayStats.ReplayDuration.Store(0)

	return time.Now()
}

// FinishReplay completes replay statistics
func (c *AtomicCollector) FinishReplay(startTime time.Time, maps, records, bytes uint64) {
	c.replayStats.MapsReplayed.Store(maps)
	c.replayStats.RecordsReplayed.Store(records)
	c.replayStats.BytesReplayed.Store(bytes)
	c.replayStats.ReplayDuration.Store(time.Since(startTime).Nanoseconds())
}

// GetStats returns all statistics as a map
func (c *AtomicCollector) GetStats() map[string]interface{} {
	stats := make(map[string]interface{})

	// Add operation counters
	c.countsMu.RLock()
	for op, counter := range c.counts {
		stats[string(op)+"_ops"] = counter.Load()
	}
	c.countsMu.RUnlock()

	// Add timing information
	c.lastOpTimeMu.RLock()
	for op, timestamp := range c.lastOpTime {
		stats["last_"+string(op)+"_time"] = timestamp.UnixNano()
	}
	c.lastOpTimeMu.RUnlock()

	// Add usage metrics
	stats["buffer_size"] = c.bufferSize.Load()
	stats["total_bytes_read"] = c.totalBytesRead.Load()
	stats["total_bytes_written"] = c.totalBytesWritten.Load()
	stats["chunks_read"] = c.chunksRead.Load()
	stats["chunks_written"] = c.chunksWritten.Load()
	stats["pages_grown"] = c.pagesGrown.Load()

	// Add error statistics
	c.errorsMu.RLock()
	errorStats := make(map[string]uint64)
	for errType, counter := range c.errors {
		errorStats[errType] = counter.Load()
	}
	c.errorsMu.RUnlock()
	stats["errors"] = errorStats

	// Add replay statistics
	replayStats := map[string]interface{}{
		"maps_replayed":    c.replayStats.MapsReplayed.Load(),
		"records_replayed": c.replayStats.RecordsReplayed.Load(),
		"bytes_replayed":   c.replayStats.BytesReplayed.Load(),
	}
	if d := c.replayStats.ReplayDuration.Load(); d > 0 {
		replayStats["replay_duration_ms"] = d / int64(time.Millisecond)
	}
	stats["replay"] = replayStats

	// Add latency and cost statistics
	c.latenciesMu.RLock()
	for op, tracker := range c.latencies {
		if tracker.count.Load() > 0 {
			stats[string(op)+"_latency"] = tracker.snapshot("ns")
		}
	}
	c.latenciesMu.RUnlock()

	c.costsMu.RLock()
	for op, tracker := range c.costs {
		if tracker.count.Load() > 0 {
			stats[string(op)+"_cost"] = tracker.snapshot("units")
		}
	}
	c.costsMu.RUnlock()

	return stats
}

// GetStatsFiltered returns statistics filtered by prefix
func (c *AtomicCollector) GetStatsFiltered(prefix string) map[string]interface{} {
	allStats := c.GetStats()
	filtered := make(map[string]interface{})

	for key, value := range allStats {
		if strings.HasPrefix(key, prefix) {
			filtered[key] = value
		}
	}

	return filtered
}

// getOrCreateCounter gets or creates an atomic counter for the operation
func (c *AtomicCollector) getOrCreateCounter(op OperationType) *atomic.Uint64 {
	// Try read lock first (fast path)
	c.countsMu.RLock()
	counter, exists := c.counts[op]
	c.countsMu.RUnlock()

	if !exists {
		// Slow path with write lock
		c.countsMu.Lock()
		if counter, exists = c.counts[op]; !exists {
			counter = &atomic.Uint64{}
			c.counts[op] = counter
		}
		c.countsMu.Unlock()
	}

	return counter
}

// getOrCreateTracker gets or creates a tracker for the operation in trackers
func getOrCreateTracker(mu *sync.RWMutex, trackers map[OperationType]*LatencyTracker, op OperationType) *LatencyTracker {
	mu.RLock()
	tracker, exists := trackers[op]
	mu.RUnlock()

	if !exists {
		mu.Lock()
		if tracker, exists = trackers[op]; !exists {
			tracker = &LatencyTracker{}
			trackers[op] = tracker
		}
		mu.Unlock()
	}

	return tracker
}
