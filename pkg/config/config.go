package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KevoDB/chunkbench/pkg/codec"
	"github.com/KevoDB/chunkbench/pkg/common/log"
	"github.com/KevoDB/chunkbench/pkg/region"
	"github.com/KevoDB/chunkbench/pkg/telemetry"
)

const (
	DefaultManifestFileName = "MANIFEST"
	CurrentManifestVersion  = 1

	// DefaultProfilingPages reserves 1MB for the profiling region so that a
	// heap-backed engine does not allocate 256MB at open
	DefaultProfilingPages = 16
)

var (
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrManifestNotFound = errors.New("manifest not found")
	ErrInvalidManifest  = errors.New("invalid manifest")
)

// Cost counters
const (
	// CostClock measures operations in monotonic nanoseconds
	CostClock = "clock"
	// CostBytes measures operations in bytes moved between the buffer and storage
	CostBytes = "bytes"
)

type Config struct {
	Version int `json:"version" yaml:"version"`

	// Region configuration
	Backend        string `json:"backend" yaml:"backend"`
	DataDir        string `json:"data_dir" yaml:"data_dir"`
	MaxPages       uint64 `json:"max_pages" yaml:"max_pages"`
	// ProfilingPages sizes the reserved profiling region. The default is
	// DefaultProfilingPages; set 4096 to reserve the full 256MB region.
	ProfilingPages uint64 `json:"profiling_pages" yaml:"profiling_pages"`

	// Record configuration
	ChunkSize    int    `json:"chunk_size" yaml:"chunk_size"`
	WholeMaxSize uint32 `json:"whole_max_size" yaml:"whole_max_size"`

	// Measurement
	CostCounter string `json:"cost_counter" yaml:"cost_counter"`

	// Ambient
	LogLevel  string           `json:"log_level" yaml:"log_level"`
	Telemetry telemetry.Config `json:"telemetry" yaml:"telemetry"`

	mu sync.RWMutex
}

// NewDefaultConfig creates a Config with recommended default values. An empty
// dataDir selects the heap backend.
func NewDefaultConfig(dataDir string) *Config {
	backend := string(region.BackendMmap)
	if dataDir == "" {
		backend = string(region.BackendHeap)
	}

	return &Config{
		Version: CurrentManifestVersion,

		// Region defaults
		Backend:        backend,
		DataDir:        dataDir,
		MaxPages:       0,  // unlimited
		ProfilingPages: DefaultProfilingPages,

		// Record defaults
		ChunkSize:    codec.ChunkSize,
		WholeMaxSize: codec.WholeMaxSize,

		CostCounter: CostClock,

		LogLevel:  "info",
		Telemetry: telemetry.DefaultConfig(),
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.Version <= 0 {
		return fmt.Errorf("%w: invalid version %d", ErrInvalidConfig, c.Version)
	}

	switch region.Backend(c.Backend) {
	case region.BackendHeap:
	case region.BackendMmap:
		if c.DataDir == "" {
			return fmt.Errorf("%w: mmap backend requires a data directory", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}

	if c.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size must be positive", ErrInvalidConfig)
	}

	if c.WholeMaxSize == 0 {
		return fmt.Errorf("%w: whole record max size must be positive", ErrInvalidConfig)
	}

	if c.WholeMaxSize > codec.WholeMaxSize {
		return fmt.Errorf("%w: whole record max size %d exceeds limit %d", ErrInvalidConfig, c.WholeMaxSize, codec.WholeMaxSize)
	}

	if uint64(c.ChunkSize) > uint64(c.WholeMaxSize) {
		return fmt.Errorf("%w: chunk size %d exceeds whole record max size %d", ErrInvalidConfig, c.ChunkSize, c.WholeMaxSize)
	}

	if c.MaxPages > 0 && c.ProfilingPages > c.MaxPages {
		return fmt.Errorf("%w: profiling pages %d exceed max pages %d", ErrInvalidConfig, c.ProfilingPages, c.MaxPages)
	}

	if c.CostCounter != CostClock && c.CostCounter != CostBytes {
		return fmt.Errorf("%w: unknown cost counter %q", ErrInvalidConfig, c.CostCounter)
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if c.Telemetry.Enabled {
		if err := c.Telemetry.Validate(); err != nil {
			return fmt.Errorf("%w: telemetry: %v", ErrInvalidConfig, err)
		}
	}

	return nil
}

// LoadFile reads a configuration file. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON. Fields missing from the file keep
// their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := NewDefaultConfig("")
	cfg.Backend = ""
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	if cfg.Backend == "" {
		cfg.Backend = string(region.BackendHeap)
		if cfg.DataDir != "" {
			cfg.Backend = string(region.BackendMmap)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv overrides fields from CHUNKBENCH_* environment variables.
// Unparseable values are ignored.
func (c *Config) LoadFromEnv() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if val := os.Getenv("CHUNKBENCH_BACKEND"); val != "" {
		c.Backend = val
	}

	if val := os.Getenv("CHUNKBENCH_DATA_DIR"); val != "" {
		c.DataDir = val
	}

	if val := os.Getenv("CHUNKBENCH_MAX_PAGES"); val != "" {
		if pages, err := strconv.ParseUint(val, 10, 64); err == nil {
			c.MaxPages = pages
		}
	}

	if val := os.Getenv("CHUNKBENCH_PROFILING_PAGES"); val != "" {
		if pages, err := strconv.ParseUint(val, 10, 64); err == nil {
			c.ProfilingPages = pages
		}
	}

	if val := os.Getenv("CHUNKBENCH_CHUNK_SIZE"); val != "" {
		if size, err := strconv.Atoi(val); err == nil {
			c.ChunkSize = size
		}
	}

	if val := os.Getenv("CHUNKBENCH_COST_COUNTER"); val != "" {
		c.CostCounter = val
	}

	if val := os.Getenv("CHUNKBENCH_LOG_LEVEL"); val != "" {
		c.LogLevel = val
	}

	c.Telemetry.LoadFromEnv()
}

// LoadConfigFromManifest loads just the configuration portion from the manifest file
func LoadConfigFromManifest(dataDir string) (*Config, error) {
	m, err := LoadManifest(dataDir)
	if err != nil {
		return nil, err
	}
	return m.GetConfig(), nil
}

// SaveManifest saves the configuration to the manifest file
func (c *Config) SaveManifest(dataDir string) error {
	m, err := NewManifest(dataDir, c)
	if err != nil {
		return err
	}
	return m.Save()
}

// Update applies the given function to modify the configuration
func (c *Config) Update(fn func(*Config)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c)
}

// Clone returns a deep copy of the configuration
func (c *Config) Clone() *Config {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := &Config{
		Version:        c.Version,
		Backend:        c.Backend,
		DataDir:        c.DataDir,
		MaxPages:       c.MaxPages,
		ProfilingPages: c.ProfilingPages,
		ChunkSize:      c.ChunkSize,
		WholeMaxSize:   c.WholeMaxSize,
		CostCounter:    c.CostCounter,
		LogLevel:       c.LogLevel,
		Telemetry:      c.Telemetry,
	}
	out.Telemetry.Exporters = append([]string(nil), c.Telemetry.Exporters...)
	return out
}
