// ABOUTME: Request-level telemetry for the gRPC service: duration and status per method
// ABOUTME: Provides the unary interceptor that logs and measures every request

package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/KevoDB/chunkbench/pkg/common/log"
	"github.com/KevoDB/chunkbench/pkg/telemetry"
)

// ServiceMetrics defines the interface for service-level telemetry
type ServiceMetrics interface {
	telemetry.ComponentMetrics

	// RecordRequest records one handled request and its status code
	RecordRequest(ctx context.Context, method string, duration time.Duration, code string)
}

type serviceMetrics struct {
	tel telemetry.Telemetry
}

// NewServiceMetrics creates ServiceMetrics reporting through tel. A nil
// telemetry yields the no-op implementation.
func NewServiceMetrics(tel telemetry.Telemetry) ServiceMetrics {
	if tel == nil {
		return &noopServiceMetrics{}
	}
	return &serviceMetrics{tel: tel}
}

// NewNoopServiceMetrics creates a no-op ServiceMetrics
func NewNoopServiceMetrics() ServiceMetrics {
	return &noopServiceMetrics{}
}

func (m *serviceMetrics) RecordRequest(ctx context.Context, method string, duration time.Duration, code string) {
	attrs := []attribute.KeyValue{
		attribute.String(telemetry.AttrComponent, telemetry.ComponentService),
		attribute.String(telemetry.AttrOperationName, method),
		attribute.String(telemetry.AttrStatus, code),
	}
	m.tel.RecordHistogram(ctx, "chunkbench.service.request.duration", duration.Seconds(), attrs...)
	m.tel.RecordCounter(ctx, "chunkbench.service.requests.total", 1, attrs...)
}

func (m *serviceMetrics) Close() error {
	return nil
}

type noopServiceMetrics struct{}

func (n *noopServiceMetrics) RecordRequest(ctx context.Context, method string, duration time.Duration, code string) {
}
func (n *noopServiceMetrics) Close() error { return nil }

func unaryInterceptor(metrics ServiceMetrics, logger log.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		code := status.Code(err)
		metrics.RecordRequest(ctx, info.FullMethod, elapsed, code.String())
		if err != nil {
			logger.Debug("%s failed in %v: %v", info.FullMethod, elapsed, err)
		}
		return resp, err
	}
}
