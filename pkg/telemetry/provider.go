// ABOUTME: OpenTelemetry provider implementation with metric and trace provider setup for chunkbench telemetry
// ABOUTME: Handles provider lifecycle, resource attributes, instrument caching, and sampling configuration

package telemetry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/KevoDB/chunkbench"

// TelemetryProvider implements the Telemetry interface using OpenTelemetry SDK.
type TelemetryProvider struct {
	config         Config
	meterProvider  *sdkmetric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
	meter          metric.Meter
	tracer         oteltrace.Tracer
	resource       *sdkresource.Resource
	registry       *prometheus.Registry

	// Instruments are created once per name
	histograms sync.Map // name -> metric.Float64Histogram
	counters   sync.Map // name -> metric.Int64Counter
}

// New creates a new TelemetryProvider with the given configuration.
// A disabled configuration yields the no-op implementation.
func New(cfg Config) (Telemetry, error) {
	if !cfg.Enabled {
		return NewNoop(), nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid telemetry config: %w", err)
	}

	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	return provider, nil
}

// NewProvider builds the OpenTelemetry meter and tracer providers for cfg
func NewProvider(cfg Config) (*TelemetryProvider, error) {
	res := sdkresource.NewSchemaless(
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("service.version", cfg.ServiceVersion),
	)

	registry := prometheus.NewRegistry()
	readers, err := createMetricReaders(cfg, registry)
	if err != nil {
		return nil, err
	}

	meterOpts := []sdkmetric.Option{sdkmetric.WithResource(res)}
	for _, reader := range readers {
		meterOpts = append(meterOpts, sdkmetric.WithReader(reader))
	}
	meterProvider := sdkmetric.NewMeterProvider(meterOpts...)

	spanExporters, err := createTraceExporters(cfg)
	if err != nil {
		_ = meterProvider.Shutdown(context.Background())
		return nil, err
	}

	traceOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRate))),
	}
	for _, exporter := range spanExporters {
		traceOpts = append(traceOpts, sdktrace.WithBatcher(exporter,
			sdktrace.WithBatchTimeout(cfg.BatchTimeout),
			sdktrace.WithExportTimeout(cfg.ExportTimeout),
			sdktrace.WithMaxQueueSize(cfg.MaxQueueSize),
			sdktrace.WithMaxExportBatchSize(cfg.MaxExportBatchSize),
		))
	}
	tracerProvider := sdktrace.NewTracerProvider(traceOpts...)

	return &TelemetryProvider{
		config:         cfg,
		meterProvider:  meterProvider,
		tracerProvider: tracerProvider,
		meter:          meterProvider.Meter(instrumentationName),
		tracer:         tracerProvider.Tracer(instrumentationName),
		resource:       res,
		registry:       registry,
	}, nil
}

// RecordHistogram records a histogram value with optional attributes.
func (p *TelemetryProvider) RecordHistogram(ctx context.Context, name string, value float64, attrs ...attribute.KeyValue) {
	if ctx == nil {
		ctx = context.Background()
	}

	var hist metric.Float64Histogram
	if v, ok := p.histograms.Load(name); ok {
		hist = v.(metric.Float64Histogram)
	} else {
		created, err := p.meter.Float64Histogram(name)
		if err != nil {
			return
		}
		v, _ := p.histograms.LoadOrStore(name, created)
		hist = v.(metric.Float64Histogram)
	}

	hist.Record(ctx, value, metric.WithAttributes(attrs...))
}

// RecordCounter records a counter increment with optional attributes.
func (p *TelemetryProvider) RecordCounter(ctx context.Context, name string, value int64, attrs ...attribute.KeyValue) {
	if ctx == nil {
		ctx = context.Background()
	}

	var counter metric.Int64Counter
	if v, ok := p.counters.Load(name); ok {
		counter = v.(metric.Int64Counter)
	} else {
		created, err := p.meter.Int64Counter(name)
		if err != nil {
			return
		}
		v, _ := p.counters.LoadOrStore(name, created)
		counter = v.(metric.Int64Counter)
	}

	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

// StartSpan creates a new tracing span with the given name and attributes.
func (p *TelemetryProvider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, oteltrace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	return p.tracer.Start(ctx, name, oteltrace.WithAttributes(attrs...))
}

// Registry returns the Prometheus registry that the prometheus exporter
// registers with. It is empty when that exporter is not configured.
func (p *TelemetryProvider) Registry() *prometheus.Registry {
	return p.registry
}

// Config returns the configuration the provider was built from
func (p *TelemetryProvider) Config() Config {
	return p.config
}

// Shutdown flushes and stops the trace and metric providers.
func (p *TelemetryProvider) Shutdown(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return errors.Join(
		p.tracerProvider.Shutdown(ctx),
		p.meterProvider.Shutdown(ctx),
	)
}

// Ensure TelemetryProvider implements Telemetry
var _ Telemetry = (*TelemetryProvider)(nil)
