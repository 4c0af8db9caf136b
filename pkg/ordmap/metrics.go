// ABOUTME: Ordered map telemetry metrics interface and implementation for tracking record log activity
// ABOUTME: Provides instrumentation for map operations, value sizes, region growth and log replay

package ordmap

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/KevoDB/chunkbench/pkg/telemetry"
)

// MapMetrics defines the interface for ordered map telemetry operations.
// All metrics are optional - implementations can safely be no-op.
type MapMetrics interface {
	telemetry.ComponentMetrics

	// RecordOperation records metrics for individual map operations (put/get/delete/scan).
	RecordOperation(ctx context.Context, mapName, opType string, duration time.Duration, valueSize int, err error)

	// RecordGrowth records pages added to the map's region.
	RecordGrowth(ctx context.Context, mapName string, pages uint64)

	// RecordReplay records the outcome of rebuilding the index from the log.
	RecordReplay(ctx context.Context, mapName string, stats ReplayStats)
}

// mapMetrics implements MapMetrics using the telemetry interface.
type mapMetrics struct {
	tel telemetry.Telemetry
}

// NewMapMetrics creates a new map metrics implementation.
// If tel is nil, returns a no-op implementation.
func NewMapMetrics(tel telemetry.Telemetry) MapMetrics {
	if tel == nil {
		return &noopMapMetrics{}
	}
	return &mapMetrics{tel: tel}
}

// NewNoopMapMetrics creates a no-op map metrics implementation for testing.
func NewNoopMapMetrics() MapMetrics {
	return &noopMapMetrics{}
}

// RecordOperation records map operation metrics.
func (m *mapMetrics) RecordOperation(ctx context.Context, mapName, opType string, duration time.Duration, valueSize int, err error) {
	status := telemetry.StatusSuccess
	if err != nil {
		status = telemetry.StatusError
	}

	m.tel.RecordHistogram(ctx, "chunkbench.ordmap.operation.duration", duration.Seconds(),
		attribute.String(telemetry.AttrComponent, telemetry.ComponentOrdMap),
		attribute.String(telemetry.AttrMapName, mapName),
		attribute.String(telemetry.AttrOperationType, opType),
	)

	m.tel.RecordCounter(ctx, "chunkbench.ordmap.operations.total", 1,
		attribute.String(telemetry.AttrComponent, telemetry.ComponentOrdMap),
		attribute.String(telemetry.AttrMapName, mapName),
		attribute.String(telemetry.AttrOperationType, opType),
		attribute.String(telemetry.AttrStatus, status),
	)

	if valueSize > 0 {
		m.tel.RecordHistogram(ctx, "chunkbench.ordmap.value.size", float64(valueSize),
			attribute.String(telemetry.AttrComponent, telemetry.ComponentOrdMap),
			attribute.String(telemetry.AttrMapName, mapName),
			attribute.String(telemetry.AttrOperationType, opType),
		)
	}
}

// RecordGrowth records region growth caused by appends.
func (m *mapMetrics) RecordGrowth(ctx context.Context, mapName string, pages uint64) {
	m.tel.RecordCounter(ctx, "chunkbench.ordmap.pages.grown", int64(pages),
		attribute.String(telemetry.AttrComponent, telemetry.ComponentOrdMap),
		attribute.String(telemetry.AttrMapName, mapName),
	)
}

// RecordReplay records log replay metrics.
func (m *mapMetrics) RecordReplay(ctx context.Context, mapName string, stats ReplayStats) {
	m.tel.RecordHistogram(ctx, "chunkbench.ordmap.replay.duration", stats.Duration.Seconds(),
		attribute.String(telemetry.AttrComponent, telemetry.ComponentOrdMap),
		attribute.String(telemetry.AttrMapName, mapName),
	)

	m.tel.RecordCounter(ctx, "chunkbench.ordmap.replay.records", int64(stats.Records),
		attribute.String(telemetry.AttrComponent, telemetry.ComponentOrdMap),
		attribute.String(telemetry.AttrMapName, mapName),
	)
}

// Close releases any resources held by the metrics implementation.
func (m *mapMetrics) Close() error {
	// No resources to clean up for this implementation
	return nil
}

// noopMapMetrics provides a no-operation implementation for testing or disabled telemetry.
type noopMapMetrics struct{}

// RecordOperation is a no-op.
func (n *noopMapMetrics) RecordOperation(ctx context.Context, mapName, opType string, duration time.Duration, valueSize int, err error) {
	// No-op
}

// RecordGrowth is a no-op.
func (n *noopMapMetrics) RecordGrowth(ctx context.Context, mapName string, pages uint64) {
	// No-op
}

// RecordReplay is a no-op.
func (n *noopMapMetrics) RecordReplay(ctx context.Context, mapName string, stats ReplayStats) {
	// No-op
}

// Close is a no-op.
func (n *noopMapMetrics) Close() error {
	return nil
}
