package stats

import "time"

// Provider defines the interface for components that provide statistics
type Provider interface {
	// GetStats returns all statistics
	GetStats() map[string]interface{}

	// GetStatsFiltered returns statistics filtered by prefix
	GetStatsFiltered(prefix string) map[string]interface{}
}

// Collector interface defines methods for collecting statistics
type Collector interface {
	Provider

	// TrackOperation records a single operation
	TrackOperation(op OperationType)

	// TrackOperationWithLatency records an operation with its latency
	TrackOperationWithLatency(op OperationType, latencyNs uint64)

	// TrackCost records the cost counter delta of an operation
	TrackCost(op OperationType, cost uint64)

	// TrackError increments the counter for the specified error type
	TrackError(errorType string)

	// TrackBytes adds the specified number of bytes to the read or write counter
	TrackBytes(isWrite bool, bytes uint64)

	// TrackChunks adds the specified number of chunks to the read or write counter
	TrackChunks(isWrite bool, chunks uint64)

	// TrackPagesGrown adds region pages grown by an operation
	TrackPagesGrown(pages uint64)

	// TrackBufferSize records the current length of the active buffer
	TrackBufferSize(size uint64)

	// StartReplay initializes replay statistics
	StartReplay() time.Time

	// FinishReplay completes replay statistics
	FinishReplay(startTime time.Time, maps, records, bytes uint64)
}

// Ensure AtomicCollector implements the Collector interface
var _ Collector = (*AtomicCollector)(nil)
