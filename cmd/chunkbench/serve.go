package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/gops/agent"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"

	"github.com/KevoDB/chunkbench/pkg/common/log"
	"github.com/KevoDB/chunkbench/pkg/config"
	"github.com/KevoDB/chunkbench/pkg/engine"
	"github.com/KevoDB/chunkbench/pkg/grpc/service"
	grpctransport "github.com/KevoDB/chunkbench/pkg/grpc/transport"
	"github.com/KevoDB/chunkbench/pkg/telemetry"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "serve an engine over gRPC",
		Action: serve,
		Flags: append(engineFlags(),
			&cli.StringFlag{Name: "listen", Aliases: []string{"l"}, Value: ":7070", Usage: "gRPC listen address"},
			&cli.StringFlag{Name: "metrics-addr", Usage: "serve Prometheus metrics on this address"},
			&cli.BoolFlag{Name: "gops", Usage: "start the gops diagnostics agent"},
			&cli.DurationFlag{Name: "retry-after", Value: service.DefaultRetryDelay, Usage: "retry hint sent to clients while the engine is unavailable"},
			&cli.StringFlag{Name: "tls-cert", Usage: "TLS certificate file"},
			&cli.StringFlag{Name: "tls-key", Usage: "TLS key file"},
			&cli.StringFlag{Name: "tls-ca", Usage: "CA file for client certificates"},
		),
	}
}

func serve(c *cli.Context) error {
	logger := log.GetDefaultLogger()

	if c.Bool("gops") {
		if err := agent.Listen(agent.Options{ShutdownCleanup: true}); err != nil {
			logger.Warn("gops: %v", err)
		}
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if c.String("metrics-addr") != "" {
		cfg.Telemetry.Enabled = true
		if !cfg.Telemetry.HasExporter("prometheus") {
			cfg.Telemetry.Exporters = append(cfg.Telemetry.Exporters, "prometheus")
		}
	}

	tel, err := telemetry.New(cfg.Telemetry)
	if err != nil {
		return err
	}
	defer tel.Shutdown(context.Background())

	eng, err := openEngine(c, cfg, engine.WithLogger(logger), engine.WithTelemetry(tel))
	if err != nil {
		return err
	}
	defer eng.Close()

	opts := grpctransport.ServerOptions{Address: c.String("listen"), Logger: logger}
	if cert := c.String("tls-cert"); cert != "" {
		opts.TLS = &grpctransport.TLSConfig{CertFile: cert, KeyFile: c.String("tls-key"), CAFile: c.String("tls-ca")}
	}
	svc := service.NewService(eng,
		service.WithLogger(logger),
		service.WithTelemetry(tel),
		service.WithRetryDelay(c.Duration("retry-after")),
	)
	srv, err := grpctransport.NewServer(svc, opts)
	if err != nil {
		return err
	}
	if err := srv.Start(); err != nil {
		return err
	}

	var metricsSrv *http.Server
	if addr := c.String("metrics-addr"); addr != "" {
		metricsSrv, err = startMetrics(tel, addr, logger)
		if err != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if stopErr := srv.Stop(ctx); stopErr != nil {
				logger.Warn("stop server: %v", stopErr)
			}
			return err
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("Received %s, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(ctx)
	}
	return srv.Stop(ctx)
}

// startMetrics serves the Prometheus registry of tel on addr under /metrics
func startMetrics(tel telemetry.Telemetry, addr string, logger log.Logger) (*http.Server, error) {
	provider, ok := tel.(*telemetry.TelemetryProvider)
	if !ok {
		return nil, fmt.Errorf("metrics endpoint requires telemetry")
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(provider.Registry(), promhttp.HandlerOpts{}))
	metricsSrv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server: %v", err)
		}
	}()
	logger.Info("Prometheus metrics on %s/metrics", addr)
	return metricsSrv, nil
}

// openEngine reopens a data directory with its manifest configuration when no
// configuration file is given
func openEngine(c *cli.Context, cfg *config.Config, opts ...engine.Option) (*engine.Engine, error) {
	if cfg.DataDir != "" && !c.IsSet("config") {
		if _, err := config.LoadConfigFromManifest(cfg.DataDir); err == nil {
			logger := log.GetDefaultLogger()
			logger.Info("Opening %s with its stored configuration", cfg.DataDir)
			return engine.Open(cfg.DataDir, opts...)
		}
	}
	return engine.New(cfg, opts...)
}
