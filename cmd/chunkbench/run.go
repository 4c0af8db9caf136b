package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/KevoDB/chunkbench/pkg/common/log"
	"github.com/KevoDB/chunkbench/pkg/engine"
	"github.com/KevoDB/chunkbench/pkg/telemetry"
)

func runCommand() *cli.Command {
	return &cli.Command{
		Name:   "run",
		Usage:  "run the persistence benchmark against a local engine",
		Action: runBench,
		Flags: append(engineFlags(),
			&cli.IntFlag{Name: "size", Aliases: []string{"s"}, Value: 1_000_000, Usage: "buffer size in bytes"},
			&cli.StringFlag{Name: "text", Value: "chunkbench", Usage: "text repeated to fill the buffer"},
			&cli.IntFlag{Name: "iterations", Aliases: []string{"n"}, Value: 10, Usage: "store/load round trips per strategy"},
			&cli.StringSliceFlag{Name: "strategy", Usage: "strategies to run (default: all)"},
			&cli.StringFlag{Name: "results", Usage: "append results to this CSV file"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "no progress bar"},
		),
	}
}

func runBench(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := log.GetDefaultLogger()

	tel, err := telemetry.New(cfg.Telemetry)
	if err != nil {
		return err
	}
	defer tel.Shutdown(context.Background())

	eng, err := engine.New(cfg, engine.WithLogger(logger), engine.WithTelemetry(tel))
	if err != nil {
		return err
	}
	defer eng.Close()

	strategies := c.StringSlice("strategy")
	if len(strategies) == 0 {
		strategies = AllStrategies
	}
	for _, name := range strategies {
		if _, err := strategyByName(name); err != nil {
			return err
		}
	}

	runID := uuid.New().String()
	iterations := c.Int("iterations")
	progress, bar := newProgressBar("benchmark", int64(len(strategies)*iterations), c.Bool("quiet"))

	logger.Info("Run %s: %d strategies, %d iterations, %d byte buffer", runID, len(strategies), iterations, c.Int("size"))
	results, err := runBenchmark(eng, benchConfig{
		RunID:       runID,
		Text:        c.String("text"),
		Size:        c.Int("size"),
		Iterations:  iterations,
		Strategies:  strategies,
		ChunkSize:   cfg.ChunkSize,
		CostCounter: cfg.CostCounter,
		Step:        bar.Increment,
	})
	// Strategies that failed early leave the bar short
	bar.SetTotal(bar.Current(), true)
	progress.Wait()
	if err != nil {
		return err
	}

	fmt.Printf("Run %s (%s backend, cost=%s)\n", runID, cfg.Backend, cfg.CostCounter)
	PrintResultTable(os.Stdout, results)

	if path := c.String("results"); path != "" {
		if err := SaveResultCSV(results, path); err != nil {
			return fmt.Errorf("failed to save results: %w", err)
		}
		logger.Info("Results appended to %s", path)
	}

	var failed []string
	for _, r := range results {
		if !r.Verified {
			failed = append(failed, r.Strategy)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("strategies failed: %s", strings.Join(failed, ", "))
	}
	return nil
}

// newProgressBar renders to stdout only when it is a terminal
func newProgressBar(title string, total int64, quiet bool) (*mpb.Progress, *mpb.Bar) {
	var progress *mpb.Progress
	if !quiet && isatty.IsTerminal(os.Stdout.Fd()) {
		progress = mpb.New(mpb.WithWidth(64))
	} else {
		progress = mpb.New(mpb.WithWidth(64), mpb.WithOutput(nil))
	}
	bar := progress.AddBar(total,
		mpb.PrependDecorators(
			decor.Name(title, decor.WCSyncWidth),
			decor.CountersNoUnit("%d / %d"),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Percentage(decor.WC{W: 5}), "done"),
		),
	)
	return progress, bar
}
