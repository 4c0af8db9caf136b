package transport

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KevoDB/chunkbench/pkg/common/log"
	"github.com/KevoDB/chunkbench/pkg/config"
	"github.com/KevoDB/chunkbench/pkg/engine"
	"github.com/KevoDB/chunkbench/pkg/grpc/service"
	pb "github.com/KevoDB/chunkbench/proto/chunkbench"
)

func newTestService(t *testing.T) *service.Service {
	t.Helper()

	cfg := config.NewDefaultConfig("")
	cfg.ProfilingPages = 1
	eng, err := engine.New(cfg, engine.WithLogger(log.Discard()))
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	t.Cleanup(func() { eng.Close() })
	return service.NewService(eng, service.WithLogger(log.Discard()))
}

func TestServer_ServeAndStop(t *testing.T) {
	srv, err := NewServer(newTestService(t), ServerOptions{Logger: log.Discard()})
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	if srv.Addr() != nil {
		t.Error("Expected no address before serving")
	}

	lis := bufconn.Listen(1024 * 1024)
	done := make(chan error, 1)
	go func() { done <- srv.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("Failed to create client connection: %v", err)
	}
	defer conn.Close()

	resp, err := pb.NewBenchClient(conn).Append(context.Background(), &pb.AppendRequest{Text: "hello", Times: 2})
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if resp.GetSize() != 10 {
		t.Errorf("Expected size 10, got %d", resp.GetSize())
	}

	if err := srv.Serve(bufconn.Listen(1024)); err == nil {
		t.Error("Expected an error serving twice")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after Stop")
	}
}

func TestServer_StartOnTCP(t *testing.T) {
	srv, err := NewServer(newTestService(t), ServerOptions{Address: "127.0.0.1:0", Logger: log.Discard()})
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	if err := srv.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer srv.Stop(context.Background())

	if srv.Addr() == nil {
		t.Fatal("Expected a listening address")
	}
	if err := srv.Start(); err == nil {
		t.Error("Expected an error starting twice")
	}
}

func TestServer_InvalidTLS(t *testing.T) {
	_, err := NewServer(newTestService(t), ServerOptions{TLS: &TLSConfig{}})
	if err == nil {
		t.Error("Expected an error for TLS without certificate files")
	}
}
