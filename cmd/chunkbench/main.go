// Command chunkbench benchmarks whole, chunked and flat buffer persistence,
// either locally (run) or behind a gRPC server (serve, shell, stats).
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/KevoDB/chunkbench/pkg/common/log"
	"github.com/KevoDB/chunkbench/pkg/config"
)

const version = "1.0.0"

func main() {
	app := &cli.App{
		Name:    "chunkbench",
		Usage:   "compare whole, chunked and flat buffer persistence",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (debug, info, warn, error)",
				EnvVars: []string{"CHUNKBENCH_LOG_LEVEL"},
			},
		},
		Before: setLogger,
		Commands: []*cli.Command{
			runCommand(),
			serveCommand(),
			shellCommand(),
			statsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setLogger(c *cli.Context) error {
	level, err := log.ParseLevel(c.String("log-level"))
	if err != nil {
		return err
	}
	log.SetDefaultLogger(log.NewStandardLogger(log.WithLevel(level), log.WithOutput(os.Stderr)))
	return nil
}

// engineFlags are shared by the commands that open an engine
func engineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "configuration file (.json, .yaml)"},
		&cli.StringFlag{Name: "data-dir", Aliases: []string{"d"}, Usage: "data directory; selects the mmap backend"},
		&cli.StringFlag{Name: "backend", Usage: "storage backend (heap, mmap)"},
		&cli.IntFlag{Name: "chunk-size", Usage: "chunk size in bytes"},
		&cli.Uint64Flag{Name: "max-pages", Usage: "page cap per region (0 is unlimited)"},
		&cli.StringFlag{Name: "cost", Usage: "cost counter (clock, bytes)"},
	}
}

// loadConfig builds the engine configuration from the config file, the
// environment and the command line, in increasing precedence
func loadConfig(c *cli.Context) (*config.Config, error) {
	var cfg *config.Config
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.LoadFile(path); err != nil {
			return nil, err
		}
	} else {
		cfg = config.NewDefaultConfig(c.String("data-dir"))
	}
	cfg.LoadFromEnv()

	if c.IsSet("data-dir") {
		cfg.DataDir = c.String("data-dir")
		if !c.IsSet("backend") {
			cfg.Backend = "mmap"
		}
	}
	if c.IsSet("backend") {
		cfg.Backend = c.String("backend")
	}
	if c.IsSet("chunk-size") {
		cfg.ChunkSize = c.Int("chunk-size")
	}
	if c.IsSet("max-pages") {
		cfg.MaxPages = c.Uint64("max-pages")
	}
	if c.IsSet("cost") {
		cfg.CostCounter = c.String("cost")
	}
	cfg.LogLevel = c.String("log-level")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printJSON(v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json: %w", err)
	}
	fmt.Println(string(output))
	return nil
}
