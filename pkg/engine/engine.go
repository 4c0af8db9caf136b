// Package engine runs the buffer persistence benchmark operations: it owns the
// active buffer slot, the whole-buffer and chunk maps, the flat region and the
// measurement plumbing, and executes one operation at a time.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/KevoDB/chunkbench/pkg/codec"
	"github.com/KevoDB/chunkbench/pkg/common/log"
	"github.com/KevoDB/chunkbench/pkg/config"
	"github.com/KevoDB/chunkbench/pkg/flatmem"
	"github.com/KevoDB/chunkbench/pkg/ordmap"
	"github.com/KevoDB/chunkbench/pkg/region"
	"github.com/KevoDB/chunkbench/pkg/slot"
	"github.com/KevoDB/chunkbench/pkg/stats"
	"github.com/KevoDB/chunkbench/pkg/telemetry"
)

// Map names used in logs and metrics
const (
	WholeMapName = "whole"
	ChunkMapName = "chunks"
)

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger
func WithLogger(logger log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithTelemetry sets the telemetry the engine and its maps report to
func WithTelemetry(tel telemetry.Telemetry) Option {
	return func(e *Engine) {
		e.tel = tel
	}
}

// WithCostCounter overrides the cost counter selected by the configuration
func WithCostCounter(c stats.CostCounter) Option {
	return func(e *Engine) {
		e.cost = c
	}
}

// WithCollector sets the statistics collector
func WithCollector(c stats.Collector) Option {
	return func(e *Engine) {
		e.stats = c
	}
}

// Engine executes buffer operations against its regions. It is safe for
// concurrent use; operations are serialized.
type Engine struct {
	cfg *config.Config

	// opMu serializes operations
	opMu sync.Mutex

	regions  *region.Manager
	slot     *slot.Slot
	whole    *ordmap.Map
	chunks   *ordmap.Map
	flat     *flatmem.Writer
	profiler region.Memory

	chunkSize int
	wholeMax  uint32

	cost  stats.CostCounter
	work  *stats.ManualCounter // non-nil when cost counts bytes moved
	stats stats.Collector

	tel     telemetry.Telemetry
	metrics EngineMetrics
	logger  log.Logger

	closed bool
}

// Open opens the engine stored in dataDir, loading its configuration from the
// manifest or creating a default one.
func Open(dataDir string, opts ...Option) (*Engine, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg, err := config.LoadConfigFromManifest(dataDir)
	if err != nil {
		if !errors.Is(err, config.ErrManifestNotFound) {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = config.NewDefaultConfig(dataDir)
		if err := cfg.SaveManifest(dataDir); err != nil {
			return nil, fmt.Errorf("failed to save configuration: %w", err)
		}
	}
	cfg.DataDir = dataDir

	return New(cfg, opts...)
}

// New creates an engine from cfg
func New(cfg *config.Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig("")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Clone()

	e := &Engine{
		cfg:       cfg,
		slot:      slot.New(),
		chunkSize: cfg.ChunkSize,
		wholeMax:  cfg.WholeMaxSize,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = log.GetDefaultLogger()
	}
	e.logger = e.logger.WithField("component", telemetry.ComponentEngine)
	if e.tel == nil {
		e.tel = telemetry.NewNoop()
	}
	e.metrics = NewEngineMetrics(e.tel)
	if e.stats == nil {
		e.stats = stats.NewAtomicCollector()
	}
	if e.cost == nil {
		switch cfg.CostCounter {
		case config.CostBytes:
			e.work = stats.NewManualCounter()
			e.cost = e.work
		default:
			e.cost = stats.NewClockCounter()
		}
	}

	start := time.Now()
	if err := e.openRegions(); err != nil {
		if e.regions != nil {
			_ = e.regions.Close()
		}
		return nil, err
	}

	replayed := e.whole.ReplayStats().Records + e.chunks.ReplayStats().Records
	e.metrics.RecordStartup(context.Background(), time.Since(start), replayed)
	e.logger.Info("Engine opened: backend=%s chunk_size=%d whole_max=%d cost=%s",
		e.regions.Backend(), e.chunkSize, e.wholeMax, cfg.CostCounter)

	return e, nil
}

func (e *Engine) openRegions() error {
	mgr, err := region.NewManager(region.Options{
		Backend:  region.Backend(e.cfg.Backend),
		Dir:      e.cfg.DataDir,
		MaxPages: e.cfg.MaxPages,
	})
	if err != nil {
		return classify(fmt.Errorf("failed to create region manager: %w", err))
	}
	e.regions = mgr

	e.profiler, err = mgr.Get(region.IDProfiling)
	if err != nil {
		return classify(fmt.Errorf("failed to open profiling region: %w", err))
	}
	if _, err := flatmem.EnsureCapacity(e.profiler, e.cfg.ProfilingPages*region.PageSize); err != nil {
		return classify(fmt.Errorf("failed to reserve profiling region: %w", err))
	}

	mapMetrics := ordmap.NewMapMetrics(e.tel)
	replayStart := e.stats.StartReplay()

	wholeMem, err := mgr.Get(region.IDWholeMap)
	if err != nil {
		return classify(fmt.Errorf("failed to open whole map region: %w", err))
	}
	e.whole, err = ordmap.Open(wholeMem, ordmap.Options{
		Name:    WholeMapName,
		Bound:   codec.Bound{MaxSize: uint32(codec.WholeEncodedSize(int(e.wholeMax)))},
		Logger:  e.logger,
		Metrics: mapMetrics,
	})
	if err != nil {
		return classify(err)
	}

	chunkMem, err := mgr.Get(region.IDChunkMap)
	if err != nil {
		return classify(fmt.Errorf("failed to open chunk map region: %w", err))
	}
	e.chunks, err = ordmap.Open(chunkMem, ordmap.Options{
		Name:    ChunkMapName,
		Bound:   codec.Bound{MaxSize: uint32(e.chunkSize)},
		Logger:  e.logger,
		Metrics: mapMetrics,
	})
	if err != nil {
		return classify(err)
	}

	wr, cr := e.whole.ReplayStats(), e.chunks.ReplayStats()
	e.stats.FinishReplay(replayStart, 2, wr.Records+cr.Records, wr.Bytes+cr.Bytes)

	flatMem, err := mgr.Get(region.IDFlat)
	if err != nil {
		return classify(fmt.Errorf("failed to open flat region: %w", err))
	}
	e.flat = flatmem.NewWriter(flatMem)

	return nil
}

// Config returns a copy of the engine configuration
func (e *Engine) Config() *config.Config {
	return e.cfg.Clone()
}

// GetStatsProvider returns the statistics collector
func (e *Engine) GetStatsProvider() stats.Provider {
	return e.stats
}

// Stats describes the engine and its regions
type Stats struct {
	Backend        string                 `json:"backend"`
	ChunkSize      int                    `json:"chunk_size"`
	CostCounter    string                 `json:"cost_counter"`
	BufferSize     int                    `json:"buffer_size"`
	Initialized    bool                   `json:"initialized"`
	ProfilingPages uint64                 `json:"profiling_pages"`
	WholeMap       ordmap.Stats           `json:"whole_map"`
	ChunkMap       ordmap.Stats           `json:"chunk_map"`
	Flat           flatmem.Stats          `json:"flat"`
	HeapAlloc      int64                  `json:"heap_alloc"`
	Operations     map[string]interface{} `json:"operations"`
}

// Stats returns a snapshot of the engine state and operation statistics
func (e *Engine) Stats() (Stats, error) {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	if e.closed {
		return Stats{}, ErrEngineClosed
	}

	heapAlloc, _, _ := GetMemoryStats()
	st := Stats{
		Backend:        string(e.regions.Backend()),
		ChunkSize:      e.chunkSize,
		CostCounter:    e.cfg.CostCounter,
		Initialized:    e.slot.Initialized(),
		ProfilingPages: e.profiler.Size(),
		WholeMap:       e.whole.Stats(),
		ChunkMap:       e.chunks.Stats(),
		Flat:           e.flat.Stats(),
		HeapAlloc:      heapAlloc,
		Operations:     e.stats.GetStats(),
	}
	if size, err := e.slot.Size(); err == nil {
		st.BufferSize = size
	}

	ctx := context.Background()
	backend := e.regions.Backend()
	e.metrics.RecordRegionSize(ctx, region.IDProfiling, backend, st.ProfilingPages)
	e.metrics.RecordRegionSize(ctx, region.IDWholeMap, backend, st.WholeMap.Pages)
	e.metrics.RecordRegionSize(ctx, region.IDChunkMap, backend, st.ChunkMap.Pages)
	e.metrics.RecordRegionSize(ctx, region.IDFlat, backend, st.Flat.Pages)
	e.metrics.RecordMemoryUsage(ctx)

	return st, nil
}

// Sync flushes every region to its backing store
func (e *Engine) Sync() error {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}
	return classify(e.regions.Sync())
}

// Close syncs and closes all regions. For file-backed engines the region sizes
// are recorded in the manifest.
func (e *Engine) Close() error {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true

	var errs []error
	if err := e.regions.Sync(); err != nil {
		errs = append(errs, fmt.Errorf("sync regions: %w", err))
	}

	if e.regions.Backend() == region.BackendMmap {
		if err := e.saveManifest(); err != nil {
			errs = append(errs, err)
		}
	}

	if err := e.whole.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := e.chunks.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := e.regions.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close regions: %w", err))
	}
	if err := e.metrics.Close(); err != nil {
		errs = append(errs, err)
	}

	e.logger.Info("Engine closed")
	return errors.Join(errs...)
}

func (e *Engine) saveManifest() error {
	m, err := config.LoadManifest(e.cfg.DataDir)
	if err != nil {
		if !errors.Is(err, config.ErrManifestNotFound) {
			return fmt.Errorf("load manifest: %w", err)
		}
		if m, err = config.NewManifest(e.cfg.DataDir, e.cfg.Clone()); err != nil {
			return fmt.Errorf("create manifest: %w", err)
		}
	}

	for _, id := range e.regions.IDs() {
		mem, err := e.regions.Get(id)
		if err != nil {
			return fmt.Errorf("region %d: %w", id, err)
		}
		m.RecordRegion(id, mem.Size())
	}

	if err := m.Save(); err != nil {
		return fmt.Errorf("save manifest: %w", err)
	}
	return nil
}
