// Package service exposes the engine operations as the gRPC service
// chunkbench.Bench defined in proto/chunkbench/bench.proto.
package service

import (
	"context"
	"time"

	"google.golang.org/grpc"

	"github.com/KevoDB/chunkbench/pkg/chunker"
	"github.com/KevoDB/chunkbench/pkg/common/log"
	"github.com/KevoDB/chunkbench/pkg/engine"
	"github.com/KevoDB/chunkbench/pkg/telemetry"
	pb "github.com/KevoDB/chunkbench/proto/chunkbench"
)

// DefaultRetryDelay is the retry hint sent with Unavailable statuses
const DefaultRetryDelay = time.Second

// Engine is the set of engine operations served remotely
type Engine interface {
	Append(text string, times int) (int, error)
	Clear() error
	Zero() error
	ReadRange(offset, size int) (string, error)
	Size() (int, error)
	StoreWhole(key uint64) (engine.StoreResult, error)
	StoreChunked(key uint64) (engine.StoreResult, error)
	StoreFlat(offset uint64) (engine.StoreResult, error)
	LoadWhole(key uint64) (engine.LoadResult, error)
	LoadChunkedSequential(key uint64) (engine.LoadResult, error)
	LoadChunkedRanged(key uint64) (engine.LoadResult, error)
	LoadFlat(offset uint64, size int) (engine.LoadResult, error)
	DeleteChunk(key, index uint64) error
	FindGap(key uint64) (chunker.Gap, bool, error)
	Stats() (engine.Stats, error)
}

var _ Engine = (*engine.Engine)(nil)

// Service implements pb.BenchServer on top of an engine
type Service struct {
	pb.UnimplementedBenchServer

	engine     Engine
	logger     log.Logger
	metrics    ServiceMetrics
	retryDelay time.Duration
}

// Option configures a Service
type Option func(*Service)

// WithLogger sets the logger
func WithLogger(logger log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTelemetry reports request metrics through tel
func WithTelemetry(tel telemetry.Telemetry) Option {
	return func(s *Service) {
		s.metrics = NewServiceMetrics(tel)
	}
}

// WithRetryDelay sets the retry hint sent when the engine is unavailable. A
// zero delay sends no hint.
func WithRetryDelay(d time.Duration) Option {
	return func(s *Service) {
		s.retryDelay = d
	}
}

// NewService creates a service serving eng
func NewService(eng Engine, opts ...Option) *Service {
	s := &Service{engine: eng, retryDelay: DefaultRetryDelay}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.GetDefaultLogger()
	}
	s.logger = s.logger.WithField("component", telemetry.ComponentService)
	if s.metrics == nil {
		s.metrics = NewNoopServiceMetrics()
	}
	return s
}

// UnaryInterceptor returns the interceptor that logs and measures requests
func (s *Service) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return unaryInterceptor(s.metrics, s.logger)
}

// Register registers s as the chunkbench.Bench implementation on srv
func Register(srv grpc.ServiceRegistrar, s pb.BenchServer) {
	pb.RegisterBenchServer(srv, s)
}

func (s *Service) fail(err error) error {
	return ToStatus(err, s.retryDelay)
}

// Append appends text to the active buffer
func (s *Service) Append(ctx context.Context, req *pb.AppendRequest) (*pb.AppendResponse, error) {
	size, err := s.engine.Append(req.GetText(), int(req.GetTimes()))
	if err != nil {
		return nil, s.fail(err)
	}
	return &pb.AppendResponse{Size: int64(size)}, nil
}

// Clear empties the active buffer
func (s *Service) Clear(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	if err := s.engine.Clear(); err != nil {
		return nil, s.fail(err)
	}
	return &pb.Empty{}, nil
}

// Zero zeroes the active buffer
func (s *Service) Zero(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	if err := s.engine.Zero(); err != nil {
		return nil, s.fail(err)
	}
	return &pb.Empty{}, nil
}

// ReadRange returns a slice of the active buffer as text
func (s *Service) ReadRange(ctx context.Context, req *pb.ReadRangeRequest) (*pb.ReadRangeResponse, error) {
	text, err := s.engine.ReadRange(int(req.GetOffset()), int(req.GetSize()))
	if err != nil {
		return nil, s.fail(err)
	}
	return &pb.ReadRangeResponse{Text: text}, nil
}

// Size returns the active buffer length
func (s *Service) Size(ctx context.Context, _ *pb.Empty) (*pb.SizeResponse, error) {
	size, err := s.engine.Size()
	if err != nil {
		return nil, s.fail(err)
	}
	return &pb.SizeResponse{Size: int64(size)}, nil
}

// StoreWhole stores the active buffer as one record
func (s *Service) StoreWhole(ctx context.Context, req *pb.KeyRequest) (*pb.StoreResponse, error) {
	return s.storeResponse(s.engine.StoreWhole(req.GetKey()))
}

// StoreChunked stores the active buffer as chunk records
func (s *Service) StoreChunked(ctx context.Context, req *pb.KeyRequest) (*pb.StoreResponse, error) {
	return s.storeResponse(s.engine.StoreChunked(req.GetKey()))
}

// StoreFlat stores the active buffer in the flat region
func (s *Service) StoreFlat(ctx context.Context, req *pb.FlatStoreRequest) (*pb.StoreResponse, error) {
	return s.storeResponse(s.engine.StoreFlat(req.GetOffset()))
}

// LoadWhole loads a whole record into the active buffer
func (s *Service) LoadWhole(ctx context.Context, req *pb.KeyRequest) (*pb.LoadResponse, error) {
	return s.loadResponse(s.engine.LoadWhole(req.GetKey()))
}

// LoadChunkedSequential loads chunk records one lookup at a time
func (s *Service) LoadChunkedSequential(ctx context.Context, req *pb.KeyRequest) (*pb.LoadResponse, error) {
	return s.loadResponse(s.engine.LoadChunkedSequential(req.GetKey()))
}

// LoadChunkedRanged loads chunk records with one range scan
func (s *Service) LoadChunkedRanged(ctx context.Context, req *pb.KeyRequest) (*pb.LoadResponse, error) {
	return s.loadResponse(s.engine.LoadChunkedRanged(req.GetKey()))
}

// LoadFlat loads bytes from the flat region into the active buffer
func (s *Service) LoadFlat(ctx context.Context, req *pb.FlatLoadRequest) (*pb.LoadResponse, error) {
	return s.loadResponse(s.engine.LoadFlat(req.GetOffset(), int(req.GetSize())))
}

// DeleteChunk removes one chunk record
func (s *Service) DeleteChunk(ctx context.Context, req *pb.DeleteChunkRequest) (*pb.Empty, error) {
	if err := s.engine.DeleteChunk(req.GetKey(), req.GetIndex()); err != nil {
		return nil, s.fail(err)
	}
	return &pb.Empty{}, nil
}

// FindGap reports the first missing chunk of a stored buffer
func (s *Service) FindGap(ctx context.Context, req *pb.KeyRequest) (*pb.FindGapResponse, error) {
	gap, found, err := s.engine.FindGap(req.GetKey())
	if err != nil {
		return nil, s.fail(err)
	}
	return &pb.FindGapResponse{Found: found, Index: gap.Index, Present: int64(gap.Present)}, nil
}

// Stats returns the engine statistics
func (s *Service) Stats(ctx context.Context, _ *pb.Empty) (*pb.StatsResponse, error) {
	st, err := s.engine.Stats()
	if err != nil {
		return nil, s.fail(err)
	}
	resp, err := StatsToProto(st)
	if err != nil {
		s.logger.Error("Failed to encode stats: %v", err)
		return nil, s.fail(err)
	}
	return resp, nil
}

func (s *Service) storeResponse(res engine.StoreResult, err error) (*pb.StoreResponse, error) {
	if err != nil {
		return nil, s.fail(err)
	}
	return &pb.StoreResponse{Cost: res.Cost, Bytes: int64(res.Bytes), Chunks: int64(res.Chunks)}, nil
}

func (s *Service) loadResponse(res engine.LoadResult, err error) (*pb.LoadResponse, error) {
	if err != nil {
		return nil, s.fail(err)
	}
	return &pb.LoadResponse{Cost: res.Cost, Bytes: int64(res.Bytes), Chunks: int64(res.Chunks)}, nil
}
