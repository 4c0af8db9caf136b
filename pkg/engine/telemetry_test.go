// ABOUTME: Tests for engine-level telemetry: operation, region, startup and error metrics
// ABOUTME: Uses a capturing telemetry server to validate what the engine reports per strategy

package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/KevoDB/chunkbench/pkg/config"
	"github.com/KevoDB/chunkbench/pkg/region"
	"github.com/KevoDB/chunkbench/pkg/telemetry"
)

// mockTelemetryServer captures telemetry calls for validation (infrastructure mocking only)
type mockTelemetryServer struct {
	mu         sync.Mutex
	histograms []mockHistogramCall
	counters   []mockCounterCall
	spans      []string
}

type mockHistogramCall struct {
	name  string
	value float64
	attrs []attribute.KeyValue
}

type mockCounterCall struct {
	name  string
	value int64
	attrs []attribute.KeyValue
}

func (m *mockTelemetryServer) RecordHistogram(ctx context.Context, name string, value float64, attrs ...attribute.KeyValue) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.histograms = append(m.histograms, mockHistogramCall{name: name, value: value, attrs: attrs})
}

func (m *mockTelemetryServer) RecordCounter(ctx context.Context, name string, value int64, attrs ...attribute.KeyValue) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters = append(m.counters, mockCounterCall{name: name, value: value, attrs: attrs})
}

func (m *mockTelemetryServer) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.spans = append(m.spans, name)
	return ctx, trace.SpanFromContext(ctx)
}

func (m *mockTelemetryServer) Shutdown(ctx context.Context) error {
	return nil
}

func (m *mockTelemetryServer) findHistogram(name string) (mockHistogramCall, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, h := range m.histograms {
		if h.name == name {
			return h, true
		}
	}
	return mockHistogramCall{}, false
}

func (m *mockTelemetryServer) findCounter(name string) (mockCounterCall, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.counters {
		if c.name == name {
			return c, true
		}
	}
	return mockCounterCall{}, false
}

func (m *mockTelemetryServer) hasSpan(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.spans {
		if s == name {
			return true
		}
	}
	return false
}

func attrValue(attrs []attribute.KeyValue, key string) string {
	for _, a := range attrs {
		if string(a.Key) == key {
			return a.Value.Emit()
		}
	}
	return ""
}

func TestNewEngineMetrics(t *testing.T) {
	if _, ok := NewEngineMetrics(&mockTelemetryServer{}).(*engineMetrics); !ok {
		t.Error("Expected *engineMetrics for a telemetry instance")
	}

	if _, ok := NewEngineMetrics(nil).(*noopEngineMetrics); !ok {
		t.Error("Expected *noopEngineMetrics for nil telemetry")
	}

	if _, ok := NewNoopEngineMetrics().(*noopEngineMetrics); !ok {
		t.Error("Expected *noopEngineMetrics")
	}
}

func TestEngineMetrics_RecordOperation(t *testing.T) {
	mockTel := &mockTelemetryServer{}
	metrics := NewEngineMetrics(mockTel)
	ctx := context.Background()

	metrics.RecordOperation(ctx, "store_chunked", telemetry.StrategyChunked, 50*time.Millisecond, 1234, 8192, nil)

	duration, ok := mockTel.findHistogram("chunkbench.engine.operation.duration")
	if !ok {
		t.Fatal("Expected operation duration histogram to be recorded")
	}
	if duration.value != (50 * time.Millisecond).Seconds() {
		t.Errorf("Expected duration 0.05, got %f", duration.value)
	}
	if got := attrValue(duration.attrs, telemetry.AttrStrategy); got != telemetry.StrategyChunked {
		t.Errorf("Expected strategy attribute %q, got %q", telemetry.StrategyChunked, got)
	}
	if got := attrValue(duration.attrs, telemetry.AttrStatus); got != telemetry.StatusSuccess {
		t.Errorf("Expected status %q, got %q", telemetry.StatusSuccess, got)
	}

	cost, ok := mockTel.findHistogram("chunkbench.engine.operation.cost")
	if !ok || cost.value != 1234 {
		t.Errorf("Expected cost histogram with 1234, got %+v", cost)
	}

	bytesCounter, ok := mockTel.findCounter("chunkbench.engine.bytes")
	if !ok || bytesCounter.value != 8192 {
		t.Errorf("Expected bytes counter with 8192, got %+v", bytesCounter)
	}
}

func TestEngineMetrics_RecordOperationError(t *testing.T) {
	mockTel := &mockTelemetryServer{}
	metrics := NewEngineMetrics(mockTel)

	metrics.RecordOperation(context.Background(), "load_whole", telemetry.StrategyWhole, time.Millisecond, 10, 0, errors.New("boom"))

	count, ok := mockTel.findCounter("chunkbench.engine.operations.total")
	if !ok {
		t.Fatal("Expected operation counter to be recorded")
	}
	if got := attrValue(count.attrs, telemetry.AttrStatus); got != telemetry.StatusError {
		t.Errorf("Expected status %q, got %q", telemetry.StatusError, got)
	}

	// Failed operations report no cost or bytes
	if _, ok := mockTel.findHistogram("chunkbench.engine.operation.cost"); ok {
		t.Error("Cost recorded for a failed operation")
	}
}

func TestEngineMetrics_Resources(t *testing.T) {
	mockTel := &mockTelemetryServer{}
	metrics := NewEngineMetrics(mockTel)
	ctx := context.Background()

	metrics.RecordRegionSize(ctx, region.IDFlat, region.BackendHeap, 7)
	pages, ok := mockTel.findHistogram("chunkbench.engine.region.pages")
	if !ok || pages.value != 7 {
		t.Errorf("Expected region pages histogram with 7, got %+v", pages)
	}
	if got := attrValue(pages.attrs, telemetry.AttrRegionID); got != "120" {
		t.Errorf("Expected region id 120, got %q", got)
	}

	metrics.RecordMemoryUsage(ctx)
	heap, ok := mockTel.findHistogram("chunkbench.engine.memory.heap_bytes")
	if !ok || heap.value <= 0 {
		t.Errorf("Expected a positive heap size, got %+v", heap)
	}

	metrics.RecordStartup(ctx, 2*time.Second, 99)
	replayed, ok := mockTel.findCounter("chunkbench.engine.startup.replayed_records")
	if !ok || replayed.value != 99 {
		t.Errorf("Expected 99 replayed records, got %+v", replayed)
	}

	metrics.RecordError(ctx, "absent_entry", "load_whole")
	errCounter, ok := mockTel.findCounter("chunkbench.engine.errors.total")
	if !ok || attrValue(errCounter.attrs, telemetry.AttrErrorType) != "absent_entry" {
		t.Errorf("Expected error counter for absent_entry, got %+v", errCounter)
	}
}

func TestNoopEngineMetrics(t *testing.T) {
	metrics := NewNoopEngineMetrics()
	ctx := context.Background()

	// None of these may panic
	metrics.RecordOperation(ctx, "append", "", time.Second, 1, 1, nil)
	metrics.RecordRegionSize(ctx, region.IDProfiling, region.BackendMmap, 1)
	metrics.RecordMemoryUsage(ctx)
	metrics.RecordStartup(ctx, time.Second, 0)
	metrics.RecordError(ctx, "internal", "append")

	if err := metrics.Close(); err != nil {
		t.Errorf("Close returned error: %v", err)
	}
}

func TestEngineReportsTelemetry(t *testing.T) {
	mockTel := &mockTelemetryServer{}
	engine := setupTestEngine(t, func(c *config.Config) { c.ChunkSize = 4 }, WithTelemetry(mockTel))

	if _, err := engine.Append("ab", 3); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if _, err := engine.StoreChunked(7); err != nil {
		t.Fatalf("StoreChunked failed: %v", err)
	}
	if _, err := engine.LoadWhole(8); !errors.Is(err, ErrAbsentEntry) {
		t.Fatalf("Expected ErrAbsentEntry, got %v", err)
	}

	if !mockTel.hasSpan("engine.store_chunked") {
		t.Error("Expected a span for store_chunked")
	}
	if _, ok := mockTel.findHistogram("chunkbench.engine.startup.duration"); !ok {
		t.Error("Expected startup duration to be recorded")
	}
	if _, ok := mockTel.findCounter("chunkbench.ordmap.operations.total"); !ok {
		t.Error("Expected the chunk map to report through the same telemetry")
	}

	errCounter, ok := mockTel.findCounter("chunkbench.engine.errors.total")
	if !ok || attrValue(errCounter.attrs, telemetry.AttrErrorType) != "absent_entry" {
		t.Errorf("Expected an absent_entry error metric, got %+v", errCounter)
	}
}
