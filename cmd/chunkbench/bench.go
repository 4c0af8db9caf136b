package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KevoDB/chunkbench/pkg/engine"
)

// benchEngine is the part of the engine a benchmark run drives
type benchEngine interface {
	Append(text string, times int) (int, error)
	Clear() error
	Size() (int, error)
	ReadRange(offset, size int) (string, error)
	StoreWhole(key uint64) (engine.StoreResult, error)
	StoreChunked(key uint64) (engine.StoreResult, error)
	StoreFlat(offset uint64) (engine.StoreResult, error)
	LoadWhole(key uint64) (engine.LoadResult, error)
	LoadChunkedSequential(key uint64) (engine.LoadResult, error)
	LoadChunkedRanged(key uint64) (engine.LoadResult, error)
	LoadFlat(offset uint64, size int) (engine.LoadResult, error)
}

// Strategy names used in reports
const (
	StrategyWhole             = "whole"
	StrategyChunkedSequential = "chunked-sequential"
	StrategyChunkedRanged     = "chunked-ranged"
	StrategyFlat              = "flat"
)

// AllStrategies lists the strategies in report order
var AllStrategies = []string{StrategyWhole, StrategyChunkedSequential, StrategyChunkedRanged, StrategyFlat}

// strategy stores the active buffer under key and loads it back
type strategy struct {
	name  string
	store func(e benchEngine, key uint64) (engine.StoreResult, error)
	load  func(e benchEngine, key uint64, size int) (engine.LoadResult, error)
}

func strategyByName(name string) (strategy, error) {
	switch name {
	case StrategyWhole:
		return strategy{
			name:  name,
			store: func(e benchEngine, key uint64) (engine.StoreResult, error) { return e.StoreWhole(key) },
			load:  func(e benchEngine, key uint64, _ int) (engine.LoadResult, error) { return e.LoadWhole(key) },
		}, nil
	case StrategyChunkedSequential:
		return strategy{
			name:  name,
			store: func(e benchEngine, key uint64) (engine.StoreResult, error) { return e.StoreChunked(key) },
			load: func(e benchEngine, key uint64, _ int) (engine.LoadResult, error) {
				return e.LoadChunkedSequential(key)
			},
		}, nil
	case StrategyChunkedRanged:
		return strategy{
			name:  name,
			store: func(e benchEngine, key uint64) (engine.StoreResult, error) { return e.StoreChunked(key) },
			load: func(e benchEngine, key uint64, _ int) (engine.LoadResult, error) {
				return e.LoadChunkedRanged(key)
			},
		}, nil
	case StrategyFlat:
		// Keys are ignored; every iteration overwrites the region from offset 0
		return strategy{
			name:  name,
			store: func(e benchEngine, _ uint64) (engine.StoreResult, error) { return e.StoreFlat(0) },
			load:  func(e benchEngine, _ uint64, size int) (engine.LoadResult, error) { return e.LoadFlat(0, size) },
		}, nil
	default:
		return strategy{}, fmt.Errorf("unknown strategy %q", name)
	}
}

// benchConfig describes one benchmark run
type benchConfig struct {
	RunID       string
	Text        string
	Size        int
	Iterations  int
	Strategies  []string
	ChunkSize   int
	CostCounter string
	// Step is called after every iteration
	Step func()
}

// fillTimes returns how many copies of text make a buffer of at least size
// bytes
func fillTimes(text string, size int) int {
	if size <= 0 {
		return 1
	}
	return (size + len(text) - 1) / len(text)
}

// runBenchmark builds the buffer once per strategy and runs the store/load
// round trips, verifying every reload against the original bytes
func runBenchmark(e benchEngine, cfg benchConfig) ([]BenchmarkResult, error) {
	if cfg.Text == "" {
		return nil, errors.New("text must not be empty")
	}
	if cfg.Iterations <= 0 {
		return nil, errors.New("iterations must be positive")
	}

	times := fillTimes(cfg.Text, cfg.Size)
	expected := strings.Repeat(cfg.Text, times)

	results := make([]BenchmarkResult, 0, len(cfg.Strategies))
	for i, name := range cfg.Strategies {
		s, err := strategyByName(name)
		if err != nil {
			return nil, err
		}

		res := BenchmarkResult{
			RunID:       cfg.RunID,
			Timestamp:   time.Now(),
			Strategy:    s.name,
			BufferSize:  len(expected),
			ChunkSize:   cfg.ChunkSize,
			CostCounter: cfg.CostCounter,
			Verified:    true,
		}
		if err := runStrategy(e, s, cfg, uint64(i+1)*1_000_000, times, expected, &res); err != nil {
			res.Verified = false
			res.Error = err.Error()
		}
		results = append(results, res)
	}
	return results, nil
}

func runStrategy(e benchEngine, s strategy, cfg benchConfig, baseKey uint64, times int, expected string, res *BenchmarkResult) error {
	if err := e.Clear(); err != nil {
		return err
	}
	if _, err := e.Append(cfg.Text, times); err != nil {
		return fmt.Errorf("build buffer: %w", err)
	}

	var storeCost, loadCost uint64
	var storeTime, loadTime time.Duration
	for iter := 0; iter < cfg.Iterations; iter++ {
		key := baseKey + uint64(iter)

		start := time.Now()
		stored, err := s.store(e, key)
		storeTime += time.Since(start)
		if err != nil {
			return fmt.Errorf("store %d: %w", key, err)
		}
		storeCost += stored.Cost
		res.Chunks = stored.Chunks

		if err := e.Clear(); err != nil {
			return err
		}

		start = time.Now()
		loaded, err := s.load(e, key, len(expected))
		loadTime += time.Since(start)
		if err != nil {
			return fmt.Errorf("load %d: %w", key, err)
		}
		loadCost += loaded.Cost
		res.Iterations++

		if err := verifyBuffer(e, expected); err != nil {
			return fmt.Errorf("verify %d: %w", key, err)
		}
		if cfg.Step != nil {
			cfg.Step()
		}
	}

	n := float64(res.Iterations)
	res.StoreCost = float64(storeCost) / n
	res.LoadCost = float64(loadCost) / n
	res.StoreLatency = float64(storeTime.Microseconds()) / n
	res.LoadLatency = float64(loadTime.Microseconds()) / n
	return nil
}

func verifyBuffer(e benchEngine, expected string) error {
	size, err := e.Size()
	if err != nil {
		return err
	}
	if size != len(expected) {
		return fmt.Errorf("reloaded %d bytes, stored %d", size, len(expected))
	}
	text, err := e.ReadRange(0, size)
	if err != nil {
		return err
	}
	if text != expected {
		return errors.New("reloaded bytes differ from the stored buffer")
	}
	return nil
}
