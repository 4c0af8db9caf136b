package client

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/KevoDB/chunkbench/pkg/common/log"
	"github.com/KevoDB/chunkbench/pkg/config"
	"github.com/KevoDB/chunkbench/pkg/engine"
	"github.com/KevoDB/chunkbench/pkg/grpc/service"
	grpctransport "github.com/KevoDB/chunkbench/pkg/grpc/transport"
	"github.com/KevoDB/chunkbench/pkg/transport"
)

func setupTestClient(t *testing.T, mutate func(*config.Config), svcOpts ...service.Option) (*Client, *engine.Engine) {
	t.Helper()

	cfg := config.NewDefaultConfig("")
	cfg.ProfilingPages = 1
	if mutate != nil {
		mutate(cfg)
	}
	eng, err := engine.New(cfg, engine.WithLogger(log.Discard()))
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	t.Cleanup(func() { eng.Close() })

	svc := service.NewService(eng, append([]service.Option{service.WithLogger(log.Discard())}, svcOpts...)...)
	srv, err := grpctransport.NewServer(svc, grpctransport.ServerOptions{Logger: log.Discard()})
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}
	lis := bufconn.Listen(1024 * 1024)
	go srv.Serve(lis)
	t.Cleanup(func() { srv.Stop(context.Background()) })

	opts := DefaultOptions()
	opts.Endpoint = "passthrough:///bufnet"
	opts.RequestTimeout = 5 * time.Second
	opts.Dialer = func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}
	c, err := NewClient(opts)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c, eng
}

func TestClient_EndToEnd(t *testing.T) {
	c, _ := setupTestClient(t, func(cfg *config.Config) { cfg.ChunkSize = 4 })
	ctx := context.Background()

	size, err := c.Append(ctx, "ab", 3)
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if size != 6 {
		t.Fatalf("Expected size 6, got %d", size)
	}

	stored, err := c.StoreChunked(ctx, 7)
	if err != nil {
		t.Fatalf("StoreChunked failed: %v", err)
	}
	if stored.Chunks != 2 {
		t.Errorf("Expected 2 chunks, got %d", stored.Chunks)
	}
	if _, err := c.StoreWhole(ctx, 7); err != nil {
		t.Fatalf("StoreWhole failed: %v", err)
	}
	if _, err := c.StoreFlat(ctx, 100); err != nil {
		t.Fatalf("StoreFlat failed: %v", err)
	}

	if err := c.Zero(ctx); err != nil {
		t.Fatalf("Zero failed: %v", err)
	}
	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	loads := []struct {
		name string
		load func() (engine.LoadResult, error)
	}{
		{"whole", func() (engine.LoadResult, error) { return c.LoadWhole(ctx, 7) }},
		{"sequential", func() (engine.LoadResult, error) { return c.LoadChunkedSequential(ctx, 7) }},
		{"ranged", func() (engine.LoadResult, error) { return c.LoadChunkedRanged(ctx, 7) }},
		{"flat", func() (engine.LoadResult, error) { return c.LoadFlat(ctx, 100, 6) }},
	}
	for _, l := range loads {
		res, err := l.load()
		if err != nil {
			t.Fatalf("%s load failed: %v", l.name, err)
		}
		if res.Bytes != 6 {
			t.Errorf("%s load: expected 6 bytes, got %d", l.name, res.Bytes)
		}
		text, err := c.ReadRange(ctx, 0, 6)
		if err != nil {
			t.Fatalf("ReadRange failed: %v", err)
		}
		if text != "ababab" {
			t.Errorf("%s load: expected %q, got %q", l.name, "ababab", text)
		}
	}

	if n, err := c.Size(ctx); err != nil || n != 6 {
		t.Errorf("Expected size 6, got %d (%v)", n, err)
	}
}

func TestClient_GapDiagnostics(t *testing.T) {
	c, _ := setupTestClient(t, func(cfg *config.Config) { cfg.ChunkSize = 16 })
	ctx := context.Background()

	if _, err := c.Append(ctx, "0123456789abcdef", 5); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if _, err := c.StoreChunked(ctx, 3); err != nil {
		t.Fatalf("StoreChunked failed: %v", err)
	}
	if err := c.DeleteChunk(ctx, 3, 2); err != nil {
		t.Fatalf("DeleteChunk failed: %v", err)
	}

	res, err := c.LoadChunkedSequential(ctx, 3)
	if err != nil {
		t.Fatalf("LoadChunkedSequential failed: %v", err)
	}
	if res.Bytes != 32 || res.Chunks != 2 {
		t.Errorf("Expected 32 bytes in 2 chunks, got %+v", res)
	}

	gap, found, err := c.FindGap(ctx, 3)
	if err != nil {
		t.Fatalf("FindGap failed: %v", err)
	}
	if !found || gap.Index != 2 || gap.Present != 2 {
		t.Errorf("Expected gap at 2 with 2 chunks after it, got %+v (found %v)", gap, found)
	}

	st, err := c.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if st.ChunkMap.LiveKeys != 4 {
		t.Errorf("Expected 4 live chunk keys, got %d", st.ChunkMap.LiveKeys)
	}
}

func TestClient_ErrorsMatchEngine(t *testing.T) {
	c, _ := setupTestClient(t, func(cfg *config.Config) { cfg.MaxPages = 2 })
	ctx := context.Background()

	if _, err := c.Size(ctx); !errors.Is(err, engine.ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds for an uninitialized buffer, got %v", err)
	}
	if _, err := c.LoadWhole(ctx, 42); !errors.Is(err, engine.ErrAbsentEntry) {
		t.Errorf("Expected ErrAbsentEntry, got %v", err)
	}
	if err := c.DeleteChunk(ctx, 42, 0); !errors.Is(err, engine.ErrAbsentEntry) {
		t.Errorf("Expected ErrAbsentEntry, got %v", err)
	}

	if _, err := c.Append(ctx, "abc", 1); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if _, err := c.ReadRange(ctx, 2, 10); !errors.Is(err, engine.ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds, got %v", err)
	}
	if _, err := c.StoreFlat(ctx, 1<<40); !errors.Is(err, engine.ErrResourceExhausted) {
		t.Errorf("Expected ErrResourceExhausted, got %v", err)
	}
}

func TestClient_RequiresEndpoint(t *testing.T) {
	if _, err := NewClient(Options{}); err == nil {
		t.Error("Expected an error without an endpoint")
	}
}

func TestClient_UnreachableServerIsTemporary(t *testing.T) {
	opts := DefaultOptions()
	opts.Endpoint = "passthrough:///unreachable"
	opts.RequestTimeout = time.Second
	opts.RetryPolicy.MaxRetries = 1
	opts.RetryPolicy.InitialBackoff = time.Millisecond
	opts.Dialer = func(ctx context.Context, _ string) (net.Conn, error) {
		return nil, errors.New("connection refused")
	}

	c, err := NewClient(opts)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer c.Close()

	_, err = c.Size(context.Background())
	if !transport.IsTemporary(err) {
		t.Fatalf("Expected a temporary error, got %v", err)
	}
	if !errors.Is(err, transport.ErrConnectionFailed) || !errors.Is(err, transport.ErrMaxRetriesExceeded) {
		t.Errorf("Expected a connection failure after retries, got %v", err)
	}
}

func TestFromStatus(t *testing.T) {
	tests := []struct {
		err  error
		want error
	}{
		{status.Error(codes.NotFound, "absent entry: whole record 1"), engine.ErrAbsentEntry},
		{status.Error(codes.InvalidArgument, "size exceeded: 5000 > 4096"), engine.ErrSizeExceeded},
		{status.Error(codes.InvalidArgument, "out of bounds: read past end"), engine.ErrOutOfBounds},
		{status.Error(codes.InvalidArgument, "invalid encoding: range"), engine.ErrInvalidEncoding},
		{status.Error(codes.ResourceExhausted, "resource exhausted"), engine.ErrResourceExhausted},
		{status.Error(codes.DataLoss, "corrupt storage: checksum"), engine.ErrCorrupt},
		{status.Error(codes.Unavailable, "engine is closed"), engine.ErrEngineClosed},
		{status.Error(codes.Unavailable, "connection reset"), transport.ErrConnectionFailed},
		{status.Error(codes.DeadlineExceeded, "deadline"), context.DeadlineExceeded},
	}

	for _, tt := range tests {
		if got := FromStatus(tt.err); !errors.Is(got, tt.want) {
			t.Errorf("FromStatus(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}

	if got := FromStatus(status.Error(codes.NotFound, "absent entry: whole record 1")); got.Error() != "absent entry: whole record 1" {
		t.Errorf("Expected the server message to be preserved, got %q", got.Error())
	}
	if FromStatus(nil) != nil {
		t.Error("Expected nil for a nil error")
	}
	if transport.IsTemporary(FromStatus(status.Error(codes.Unavailable, "engine is closed"))) {
		t.Error("A closed engine without a retry hint must not be retried")
	}

	hinted, err := status.New(codes.Unavailable, "engine is closed").
		WithDetails(&errdetails.RetryInfo{RetryDelay: durationpb.New(40 * time.Millisecond)})
	if err != nil {
		t.Fatalf("WithDetails failed: %v", err)
	}
	got := FromStatus(hinted.Err())
	if !errors.Is(got, engine.ErrEngineClosed) || !transport.IsTemporary(got) {
		t.Errorf("Expected a temporary closed-engine error, got %v", got)
	}
	if d := transport.RetryAfter(got); d != 40*time.Millisecond {
		t.Errorf("Expected a 40ms retry hint, got %v", d)
	}
}

func TestClient_ClosedEngineHonorsRetryHint(t *testing.T) {
	const hint = 30 * time.Millisecond
	c, eng := setupTestClient(t, nil, service.WithRetryDelay(hint))
	c.opts.RetryPolicy = transport.RetryPolicy{
		MaxRetries:     1,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     time.Millisecond,
		BackoffFactor:  1,
		Retryable:      transport.IsTemporary,
	}

	if err := eng.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	start := time.Now()
	_, err := c.StoreChunked(context.Background(), 5)
	if !errors.Is(err, engine.ErrEngineClosed) {
		t.Fatalf("Expected ErrEngineClosed, got %v", err)
	}
	if !errors.Is(err, transport.ErrMaxRetriesExceeded) {
		t.Errorf("Expected the hinted error to be retried, got %v", err)
	}
	if d := transport.RetryAfter(err); d != hint {
		t.Errorf("Expected a %v retry hint, got %v", hint, d)
	}
	if elapsed := time.Since(start); elapsed < hint {
		t.Errorf("Expected the retry to wait for the hint, waited %v", elapsed)
	}
}
