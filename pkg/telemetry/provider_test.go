// ABOUTME: Tests for telemetry provider creation and configuration handling using real provider operations
// ABOUTME: Validates provider initialization, Prometheus exposition, configuration validation, and no-op fallback

package telemetry

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		expectNoop  bool
		expectError bool
	}{
		{
			name:        "disabled telemetry returns noop",
			cfg:         Config{Enabled: false},
			expectNoop:  true,
			expectError: false,
		},
		{
			name: "invalid config returns error",
			cfg: Config{
				Enabled:     true,
				ServiceName: "", // Invalid: empty service name
			},
			expectError: true,
		},
		{
			name: "valid config returns provider",
			cfg: func() Config {
				cfg := DefaultConfig()
				cfg.Enabled = true
				return cfg
			}(),
			expectNoop: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tel, err := New(tt.cfg)

			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got none")
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			defer tel.Shutdown(context.Background())

			_, isNoop := tel.(*NoopTelemetry)
			if isNoop != tt.expectNoop {
				t.Errorf("Expected noop=%v, got %T", tt.expectNoop, tel)
			}

			// Operations must not panic either way
			tel.RecordHistogram(context.Background(), "test", 1.0)
			tel.RecordCounter(context.Background(), "test", 1)
		})
	}
}

func TestProviderPrometheusExposition(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Exporters = []string{"prometheus"}

	provider, err := NewProvider(cfg)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}
	defer provider.Shutdown(context.Background())

	ctx := context.Background()
	provider.RecordCounter(ctx, "chunkbench.test.bytes", 4096,
		attribute.String(AttrStrategy, StrategyChunked))
	provider.RecordCounter(ctx, "chunkbench.test.bytes", 4096,
		attribute.String(AttrStrategy, StrategyChunked))
	provider.RecordHistogram(ctx, "chunkbench.test.duration", 0.25)

	families, err := provider.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}

	var names []string
	var total float64
	for _, mf := range families {
		names = append(names, mf.GetName())
		if strings.HasPrefix(mf.GetName(), "chunkbench_test_bytes") {
			for _, m := range mf.GetMetric() {
				total += m.GetCounter().GetValue()
			}
		}
	}

	if total != 8192 {
		t.Errorf("Expected counter total 8192, got %v (families: %v)", total, names)
	}

	found := false
	for _, name := range names {
		if strings.HasPrefix(name, "chunkbench_test_duration") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a duration histogram family, got %v", names)
	}
}

func TestProviderSpans(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true

	tel, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	ctx, span := tel.StartSpan(context.Background(), "engine.store_whole",
		attribute.String(AttrStrategy, StrategyWhole))
	if !span.SpanContext().IsValid() {
		t.Error("Expected a recording span with a valid context")
	}
	if ctx == nil {
		t.Error("StartSpan returned nil context")
	}
	span.End()

	if err := tel.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown failed: %v", err)
	}
}

func TestNewWithInvalidConfigs(t *testing.T) {
	invalidConfigs := []Config{
		{
			Enabled:     true,
			ServiceName: "", // Empty service name
		},
		{
			Enabled:        true,
			ServiceName:    "test",
			ServiceVersion: "", // Empty service version
		},
		{
			Enabled:        true,
			ServiceName:    "test",
			ServiceVersion: "1.0.0",
			SampleRate:     1.1, // Invalid sample rate
		},
		{
			Enabled:        true,
			ServiceName:    "test",
			ServiceVersion: "1.0.0",
			SampleRate:     1.0,
			PrometheusPort: 0, // Invalid port
		},
	}

	for i, cfg := range invalidConfigs {
		t.Run(fmt.Sprintf("invalid_config_%d", i), func(t *testing.T) {
			tel, err := New(cfg)

			if err == nil {
				t.Error("Expected error for invalid config but got none")
			}

			if tel != nil {
				t.Error("Expected nil telemetry for invalid config but got instance")
			}
		})
	}
}
