package transport

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/keepalive"

	"github.com/KevoDB/chunkbench/pkg/common/log"
	"github.com/KevoDB/chunkbench/pkg/grpc/service"
)

// DefaultMaxMessageSize bounds request and response messages. Buffers read
// back with ReadRange travel in one message.
const DefaultMaxMessageSize = 256 * 1024 * 1024

// ServerOptions configures a Server
type ServerOptions struct {
	// Address is the TCP address Start listens on
	Address string
	// TLS enables TLS when set
	TLS *TLSConfig
	// MaxMessageSize bounds messages in both directions
	MaxMessageSize int
	Logger         log.Logger
}

// Server serves the bench service over gRPC
type Server struct {
	opts     ServerOptions
	server   *grpc.Server
	listener net.Listener
	logger   log.Logger
	mu       sync.Mutex
	started  bool
}

// NewServer creates a gRPC server with svc registered on it
func NewServer(svc *service.Service, opts ServerOptions) (*Server, error) {
	if opts.MaxMessageSize <= 0 {
		opts.MaxMessageSize = DefaultMaxMessageSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefaultLogger()
	}

	serverOpts := []grpc.ServerOption{
		grpc.UnaryInterceptor(svc.UnaryInterceptor()),
		grpc.MaxRecvMsgSize(opts.MaxMessageSize),
		grpc.MaxSendMsgSize(opts.MaxMessageSize),
	}

	// Configure TLS if enabled
	if opts.TLS != nil {
		tlsConfig, err := LoadServerTLSConfigFromStruct(opts.TLS)
		if err != nil {
			return nil, err
		}
		serverOpts = append(serverOpts, grpc.Creds(credentials.NewTLS(tlsConfig)))
	}

	// Configure keepalive parameters
	keepaliveParams := keepalive.ServerParameters{
		MaxConnectionIdle:     60 * time.Second,
		MaxConnectionAge:      5 * time.Minute,
		MaxConnectionAgeGrace: 5 * time.Second,
		Time:                  15 * time.Second,
		Timeout:               5 * time.Second,
	}

	keepalivePolicy := keepalive.EnforcementPolicy{
		MinTime:             5 * time.Second,
		PermitWithoutStream: true,
	}

	serverOpts = append(serverOpts,
		grpc.KeepaliveParams(keepaliveParams),
		grpc.KeepaliveEnforcementPolicy(keepalivePolicy),
	)

	s := &Server{
		opts:   opts,
		server: grpc.NewServer(serverOpts...),
		logger: logger.WithField("component", "grpc"),
	}
	service.Register(s.server, svc)
	return s, nil
}

// Start listens on the configured address and serves in the background
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.opts.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.opts.Address, err)
	}

	if err := s.claim(listener); err != nil {
		listener.Close()
		return err
	}

	go func() {
		if err := s.server.Serve(listener); err != nil {
			s.logger.Error("gRPC server error: %v", err)
		}
	}()
	return nil
}

// Serve serves on listener and blocks until the server is stopped
func (s *Server) Serve(listener net.Listener) error {
	if err := s.claim(listener); err != nil {
		return err
	}
	return s.server.Serve(listener)
}

func (s *Server) claim(listener net.Listener) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return fmt.Errorf("server already started")
	}
	s.listener = listener
	s.started = true
	s.logger.Info("gRPC server listening on %s", listener.Addr())
	return nil
}

// Addr returns the listening address, or nil before the server starts
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Stop stops the server gracefully, forcing it down when ctx ends first
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}

	stopped := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		// Server stopped gracefully
	case <-ctx.Done():
		// Context deadline exceeded, force stop
		s.server.Stop()
	}

	s.started = false
	return nil
}
