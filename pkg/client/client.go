// Package client is the Go client of the chunkbench.Bench gRPC service. It
// returns the same engine errors a local engine would.
package client

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KevoDB/chunkbench/pkg/chunker"
	"github.com/KevoDB/chunkbench/pkg/engine"
	"github.com/KevoDB/chunkbench/pkg/grpc/service"
	grpctransport "github.com/KevoDB/chunkbench/pkg/grpc/transport"
	"github.com/KevoDB/chunkbench/pkg/transport"
	pb "github.com/KevoDB/chunkbench/proto/chunkbench"
)

// Options configures a Client
type Options struct {
	// Endpoint is the gRPC target of the server
	Endpoint string
	// RequestTimeout bounds each attempt of a call; zero disables it
	RequestTimeout time.Duration
	// MaxMessageSize bounds messages in both directions
	MaxMessageSize int
	// TLS enables TLS when set
	TLS *grpctransport.TLSConfig
	// RetryPolicy applies to calls that can be repeated without changing the
	// outcome
	RetryPolicy transport.RetryPolicy
	// CircuitBreakerThreshold opens the circuit after that many consecutive
	// connection failures; zero disables the breaker
	CircuitBreakerThreshold int
	CircuitBreakerReset     time.Duration
	// Dialer replaces the default network dialer
	Dialer func(ctx context.Context, addr string) (net.Conn, error)
}

// DefaultOptions returns the default client options
func DefaultOptions() Options {
	return Options{
		Endpoint:                "localhost:7070",
		RequestTimeout:          30 * time.Second,
		MaxMessageSize:          grpctransport.DefaultMaxMessageSize,
		RetryPolicy:             transport.DefaultRetryPolicy(),
		CircuitBreakerThreshold: 5,
		CircuitBreakerReset:     5 * time.Second,
	}
}

// Client calls the bench service
type Client struct {
	opts    Options
	conn    *grpc.ClientConn
	bench   pb.BenchClient
	breaker *transport.CircuitBreaker

	mu     sync.Mutex
	closed bool
}

// NewClient creates a client for opts.Endpoint. The connection is
// established lazily by the first call.
func NewClient(opts Options) (*Client, error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}
	if opts.MaxMessageSize <= 0 {
		opts.MaxMessageSize = grpctransport.DefaultMaxMessageSize
	}

	creds := insecure.NewCredentials()
	if opts.TLS != nil {
		tlsConfig, err := grpctransport.LoadClientTLSConfigFromStruct(opts.TLS)
		if err != nil {
			return nil, err
		}
		creds = credentials.NewTLS(tlsConfig)
	}

	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(opts.MaxMessageSize),
			grpc.MaxCallSendMsgSize(opts.MaxMessageSize),
		),
	}
	if opts.Dialer != nil {
		dialOpts = append(dialOpts, grpc.WithContextDialer(opts.Dialer))
	}

	conn, err := grpc.NewClient(opts.Endpoint, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client for %s: %w", opts.Endpoint, err)
	}

	c := &Client{opts: opts, conn: conn, bench: pb.NewBenchClient(conn)}
	if opts.CircuitBreakerThreshold > 0 {
		c.breaker = transport.NewCircuitBreaker(opts.CircuitBreakerThreshold, opts.CircuitBreakerReset)
	}
	return c, nil
}

// Close closes the connection
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close()
}

// invoke runs call once per attempt. Only idempotent calls are retried.
func (c *Client) invoke(ctx context.Context, idempotent bool, call func(ctx context.Context) error) error {
	once := func(ctx context.Context) error {
		if c.opts.RequestTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, c.opts.RequestTimeout)
			defer cancel()
		}
		return FromStatus(call(ctx))
	}

	attempt := once
	if c.breaker != nil {
		attempt = func(ctx context.Context) error {
			return c.breaker.Execute(ctx, once)
		}
	}

	if !idempotent {
		return attempt(ctx)
	}
	return transport.WithRetry(ctx, c.opts.RetryPolicy, attempt)
}

// Append appends times copies of text to the server's active buffer and
// returns the new length
func (c *Client) Append(ctx context.Context, text string, times int) (int, error) {
	var resp *pb.AppendResponse
	err := c.invoke(ctx, false, func(ctx context.Context) (err error) {
		resp, err = c.bench.Append(ctx, &pb.AppendRequest{Text: text, Times: int64(times)})
		return err
	})
	if err != nil {
		return 0, err
	}
	return int(resp.GetSize()), nil
}

// Clear empties the active buffer
func (c *Client) Clear(ctx context.Context) error {
	return c.invoke(ctx, true, func(ctx context.Context) error {
		_, err := c.bench.Clear(ctx, &pb.Empty{})
		return err
	})
}

// Zero zeroes the active buffer
func (c *Client) Zero(ctx context.Context) error {
	return c.invoke(ctx, true, func(ctx context.Context) error {
		_, err := c.bench.Zero(ctx, &pb.Empty{})
		return err
	})
}

// ReadRange returns buffer bytes [offset, offset+size) as text
func (c *Client) ReadRange(ctx context.Context, offset, size int) (string, error) {
	var resp *pb.ReadRangeResponse
	err := c.invoke(ctx, true, func(ctx context.Context) (err error) {
		resp, err = c.bench.ReadRange(ctx, &pb.ReadRangeRequest{Offset: int64(offset), Size: int64(size)})
		return err
	})
	if err != nil {
		return "", err
	}
	return resp.GetText(), nil
}

// Size returns the active buffer length
func (c *Client) Size(ctx context.Context) (int, error) {
	var resp *pb.SizeResponse
	err := c.invoke(ctx, true, func(ctx context.Context) (err error) {
		resp, err = c.bench.Size(ctx, &pb.Empty{})
		return err
	})
	if err != nil {
		return 0, err
	}
	return int(resp.GetSize()), nil
}

// StoreWhole stores the active buffer as one record under key
func (c *Client) StoreWhole(ctx context.Context, key uint64) (engine.StoreResult, error) {
	return c.store(ctx, func(ctx context.Context) (*pb.StoreResponse, error) {
		return c.bench.StoreWhole(ctx, &pb.KeyRequest{Key: key})
	})
}

// StoreChunked stores the active buffer as chunk records under key
func (c *Client) StoreChunked(ctx context.Context, key uint64) (engine.StoreResult, error) {
	return c.store(ctx, func(ctx context.Context) (*pb.StoreResponse, error) {
		return c.bench.StoreChunked(ctx, &pb.KeyRequest{Key: key})
	})
}

// StoreFlat stores the active buffer in the flat region at offset
func (c *Client) StoreFlat(ctx context.Context, offset uint64) (engine.StoreResult, error) {
	return c.store(ctx, func(ctx context.Context) (*pb.StoreResponse, error) {
		return c.bench.StoreFlat(ctx, &pb.FlatStoreRequest{Offset: offset})
	})
}

// LoadWhole loads the record stored under key into the active buffer
func (c *Client) LoadWhole(ctx context.Context, key uint64) (engine.LoadResult, error) {
	return c.load(ctx, func(ctx context.Context) (*pb.LoadResponse, error) {
		return c.bench.LoadWhole(ctx, &pb.KeyRequest{Key: key})
	})
}

// LoadChunkedSequential loads the chunks stored under key one lookup at a time
func (c *Client) LoadChunkedSequential(ctx context.Context, key uint64) (engine.LoadResult, error) {
	return c.load(ctx, func(ctx context.Context) (*pb.LoadResponse, error) {
		return c.bench.LoadChunkedSequential(ctx, &pb.KeyRequest{Key: key})
	})
}

// LoadChunkedRanged loads the chunks stored under key with one range scan
func (c *Client) LoadChunkedRanged(ctx context.Context, key uint64) (engine.LoadResult, error) {
	return c.load(ctx, func(ctx context.Context) (*pb.LoadResponse, error) {
		return c.bench.LoadChunkedRanged(ctx, &pb.KeyRequest{Key: key})
	})
}

// LoadFlat loads size bytes at offset from the flat region
func (c *Client) LoadFlat(ctx context.Context, offset uint64, size int) (engine.LoadResult, error) {
	return c.load(ctx, func(ctx context.Context) (*pb.LoadResponse, error) {
		return c.bench.LoadFlat(ctx, &pb.FlatLoadRequest{Offset: offset, Size: int64(size)})
	})
}

// DeleteChunk removes chunk index of the buffer stored under key
func (c *Client) DeleteChunk(ctx context.Context, key, index uint64) error {
	return c.invoke(ctx, false, func(ctx context.Context) error {
		_, err := c.bench.DeleteChunk(ctx, &pb.DeleteChunkRequest{Key: key, Index: index})
		return err
	})
}

// FindGap reports the first missing chunk of the buffer stored under key
func (c *Client) FindGap(ctx context.Context, key uint64) (chunker.Gap, bool, error) {
	var resp *pb.FindGapResponse
	err := c.invoke(ctx, true, func(ctx context.Context) (err error) {
		resp, err = c.bench.FindGap(ctx, &pb.KeyRequest{Key: key})
		return err
	})
	if err != nil {
		return chunker.Gap{}, false, err
	}
	return chunker.Gap{Index: resp.GetIndex(), Present: int(resp.GetPresent())}, resp.GetFound(), nil
}

// Stats returns the server's engine statistics. Operation counters are
// decoded as float64.
func (c *Client) Stats(ctx context.Context) (engine.Stats, error) {
	var resp *pb.StatsResponse
	err := c.invoke(ctx, true, func(ctx context.Context) (err error) {
		resp, err = c.bench.Stats(ctx, &pb.Empty{})
		return err
	})
	if err != nil {
		return engine.Stats{}, err
	}
	return service.StatsFromProto(resp), nil
}

func (c *Client) store(ctx context.Context, call func(context.Context) (*pb.StoreResponse, error)) (engine.StoreResult, error) {
	var resp *pb.StoreResponse
	err := c.invoke(ctx, true, func(ctx context.Context) (err error) {
		resp, err = call(ctx)
		return err
	})
	if err != nil {
		return engine.StoreResult{}, err
	}
	return engine.StoreResult{Cost: resp.GetCost(), Bytes: int(resp.GetBytes()), Chunks: int(resp.GetChunks())}, nil
}

func (c *Client) load(ctx context.Context, call func(context.Context) (*pb.LoadResponse, error)) (engine.LoadResult, error) {
	var resp *pb.LoadResponse
	err := c.invoke(ctx, true, func(ctx context.Context) (err error) {
		resp, err = call(ctx)
		return err
	})
	if err != nil {
		return engine.LoadResult{}, err
	}
	return engine.LoadResult{Cost: resp.GetCost(), Bytes: int(resp.GetBytes()), Chunks: int(resp.GetChunks())}, nil
}
