// ABOUTME: Engine-level telemetry for benchmark operations, region sizes and startup
// ABOUTME: Records duration, cost and byte metrics per storage strategy through the telemetry interface

package engine

import (
	"context"
	"runtime"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/KevoDB/chunkbench/pkg/region"
	"github.com/KevoDB/chunkbench/pkg/telemetry"
)

// EngineMetrics defines the interface for engine-level telemetry
type EngineMetrics interface {
	telemetry.ComponentMetrics

	// Operation tracing
	RecordOperation(ctx context.Context, operation, strategy string, duration time.Duration, cost uint64, bytes int, err error)

	// Resource monitoring
	RecordRegionSize(ctx context.Context, id region.ID, backend region.Backend, pages uint64)
	RecordMemoryUsage(ctx context.Context)

	// Component initialization
	RecordStartup(ctx context.Context, duration time.Duration, replayedRecords uint64)

	// Error tracking
	RecordError(ctx context.Context, errorType, operation string)
}

// engineMetrics implements EngineMetrics using the telemetry interface
type engineMetrics struct {
	tel telemetry.Telemetry
}

// NewEngineMetrics creates a new EngineMetrics instance. A nil telemetry
// yields the no-op implementation.
func NewEngineMetrics(tel telemetry.Telemetry) EngineMetrics {
	if tel == nil {
		return &noopEngineMetrics{}
	}
	return &engineMetrics{
		tel: tel,
	}
}

// NewNoopEngineMetrics creates a no-op EngineMetrics for testing or when telemetry is disabled
func NewNoopEngineMetrics() EngineMetrics {
	return &noopEngineMetrics{}
}

// RecordOperation records duration, cost and bytes moved by one engine operation
func (m *engineMetrics) RecordOperation(ctx context.Context, operation, strategy string, duration time.Duration, cost uint64, bytes int, err error) {
	status := telemetry.StatusSuccess
	if err != nil {
		status = telemetry.StatusError
	}

	attrs := []attribute.KeyValue{
		attribute.String(telemetry.AttrComponent, telemetry.ComponentEngine),
		attribute.String(telemetry.AttrOperationName, operation),
		attribute.String(telemetry.AttrStrategy, strategy),
		attribute.String(telemetry.AttrStatus, status),
	}

	m.tel.RecordHistogram(ctx, "chunkbench.engine.operation.duration", duration.Seconds(), attrs...)
	m.tel.RecordCounter(ctx, "chunkbench.engine.operations.total", 1, attrs...)

	if err != nil {
		return
	}

	m.tel.RecordHistogram(ctx, "chunkbench.engine.operation.cost", float64(cost), attrs[:3]...)
	if bytes > 0 {
		telemetry.RecordBytes(ctx, m.tel, "chunkbench.engine.bytes", int64(bytes), attrs[:3]...)
	}
}

// RecordRegionSize records the current size of a region in pages
func (m *engineMetrics) RecordRegionSize(ctx context.Context, id region.ID, backend region.Backend, pages uint64) {
	m.tel.RecordHistogram(ctx, "chunkbench.engine.region.pages", float64(pages),
		attribute.String(telemetry.AttrComponent, telemetry.ComponentRegion),
		attribute.String(telemetry.AttrRegionID, strconv.Itoa(int(id))),
		attribute.String(telemetry.AttrBackend, string(backend)),
	)
}

// RecordMemoryUsage records the Go heap in use by the process
func (m *engineMetrics) RecordMemoryUsage(ctx context.Context) {
	heapAlloc, _, _ := GetMemoryStats()
	m.tel.RecordHistogram(ctx, "chunkbench.engine.memory.heap_bytes", float64(heapAlloc),
		attribute.String(telemetry.AttrComponent, telemetry.ComponentEngine),
	)
}

// RecordStartup records how long opening the engine took
func (m *engineMetrics) RecordStartup(ctx context.Context, duration time.Duration, replayedRecords uint64) {
	attrs := []attribute.KeyValue{
		attribute.String(telemetry.AttrComponent, telemetry.ComponentEngine),
	}
	m.tel.RecordHistogram(ctx, "chunkbench.engine.startup.duration", duration.Seconds(), attrs...)
	m.tel.RecordCounter(ctx, "chunkbench.engine.startup.replayed_records", int64(replayedRecords), attrs...)
}

// RecordError records engine errors by kind
func (m *engineMetrics) RecordError(ctx context.Context, errorType, operation string) {
	m.tel.RecordCounter(ctx, "chunkbench.engine.errors.total", 1,
		attribute.String(telemetry.AttrErrorType, errorType),
		attribute.String(telemetry.AttrOperationName, operation),
		attribute.String(telemetry.AttrComponent, telemetry.ComponentEngine),
	)
}

// Close closes the metrics and cleans up resources
func (m *engineMetrics) Close() error {
	// Engine metrics doesn't own the telemetry instance, so we don't close it
	return nil
}

// noopEngineMetrics provides a no-op implementation for testing or disabled telemetry
type noopEngineMetrics struct{}

func (n *noopEngineMetrics) RecordOperation(ctx context.Context, operation, strategy string, duration time.Duration, cost uint64, bytes int, err error) {
}
func (n *noopEngineMetrics) RecordRegionSize(ctx context.Context, id region.ID, backend region.Backend, pages uint64) {
}
func (n *noopEngineMetrics) RecordMemoryUsage(ctx context.Context) {}
func (n *noopEngineMetrics) RecordStartup(ctx context.Context, duration time.Duration, replayedRecords uint64) {
}
func (n *noopEngineMetrics) RecordError(ctx context.Context, errorType, operation string) {}
func (n *noopEngineMetrics) Close() error                                                 { return nil }

// GetMemoryStats retrieves current memory statistics using runtime
func GetMemoryStats() (heapAlloc, heapSys, stackInuse int64) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return int64(m.HeapAlloc), int64(m.HeapSys), int64(m.StackInuse)
}
