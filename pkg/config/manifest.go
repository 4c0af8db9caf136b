package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/KevoDB/chunkbench/pkg/region"
)

type ManifestEntry struct {
	Timestamp int64                `json:"timestamp"`
	Version   int                  `json:"version"`
	Config    *Config              `json:"config"`
	Regions   map[region.ID]uint64 `json:"regions,omitempty"` // Region ID to size in pages
}

// Manifest records the configuration history of a data directory and the
// last known size of each region in it.
type Manifest struct {
	DataDir    string
	Entries    []ManifestEntry
	Current    *ManifestEntry
	LastUpdate time.Time
	mu         sync.RWMutex
}

// NewManifest creates a new manifest for the given data directory
func NewManifest(dataDir string, config *Config) (*Manifest, error) {
	if config == nil {
		config = NewDefaultConfig(dataDir)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	entry := ManifestEntry{
		Timestamp: time.Now().Unix(),
		Version:   CurrentManifestVersion,
		Config:    config,
	}

	m := &Manifest{
		DataDir:    dataDir,
		Entries:    []ManifestEntry{entry},
		Current:    &entry,
		LastUpdate: time.Now(),
	}

	return m, nil
}

// LoadManifest loads an existing manifest from the data directory
func LoadManifest(dataDir string) (*Manifest, error) {
	manifestPath := filepath.Join(dataDir, DefaultManifestFileName)
	file, err := os.Open(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrManifestNotFound
		}
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no entries in manifest", ErrInvalidManifest)
	}

	current := &entries[len(entries)-1]
	if current.Config == nil {
		return nil, fmt.Errorf("%w: entry without config", ErrInvalidManifest)
	}
	if err := current.Config.Validate(); err != nil {
		return nil, err
	}

	m := &Manifest{
		DataDir:    dataDir,
		Entries:    entries,
		Current:    current,
		LastUpdate: time.Now(),
	}

	return m, nil
}

// Save persists the manifest to disk
func (m *Manifest) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.Current.Config.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(m.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	manifestPath := filepath.Join(m.DataDir, DefaultManifestFileName)
	tempPath := manifestPath + ".tmp"

	data, err := json.MarshalIndent(m.Entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	if err := os.Rename(tempPath, manifestPath); err != nil {
		return fmt.Errorf("failed to rename manifest: %w", err)
	}

	m.LastUpdate = time.Now()
	return nil
}

// UpdateConfig creates a new configuration entry. Region sizes carry over.
func (m *Manifest) UpdateConfig(fn func(*Config)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	newConfig := m.Current.Config.Clone()
	fn(newConfig)

	if err := newConfig.Validate(); err != nil {
		return err
	}

	entry := ManifestEntry{
		Timestamp: time.Now().Unix(),
		Version:   CurrentManifestVersion,
		Config:    newConfig,
		Regions:   copyRegions(m.Current.Regions),
	}

	m.Entries = append(m.Entries, entry)
	m.Current = &m.Entries[len(m.Entries)-1]

	return nil
}

// RecordRegion stores the current size in pages of a region
func (m *Manifest) RecordRegion(id region.ID, pages uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Current.Regions == nil {
		m.Current.Regions = make(map[region.ID]uint64)
	}
	m.Current.Regions[id] = pages
}

// RemoveRegion forgets a region
func (m *Manifest) RemoveRegion(id region.ID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.Current.Regions, id)
}

// GetConfig returns the current configuration
func (m *Manifest) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.Current.Config
}

// GetRegions returns the recorded region sizes
func (m *Manifest) GetRegions() map[region.ID]uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent concurrent map access
	return copyRegions(m.Current.Regions)
}

func copyRegions(in map[region.ID]uint64) map[region.ID]uint64 {
	out := make(map[region.ID]uint64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
