package region

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// ID identifies a region within a manager
type ID uint8

// Well-known region IDs used by the engine. Whole-buffer and chunk records live
// in different regions so their keyspaces never collide.
const (
	IDProfiling ID = 100
	IDWholeMap  ID = 110
	IDChunkMap  ID = 111
	IDFlat      ID = 120
)

// Backend selects how regions are stored
type Backend string

const (
	// BackendHeap keeps regions in process memory
	BackendHeap Backend = "heap"
	// BackendMmap keeps each region in a memory-mapped file
	BackendMmap Backend = "mmap"
)

// Options configures a Manager
type Options struct {
	Backend Backend
	// Dir holds region files for the mmap backend
	Dir string
	// MaxPages caps the size of every region (zero means unlimited)
	MaxPages uint64
}

// Manager hands out independently addressed, independently growable regions.
// Asking for the same ID twice returns the same region.
type Manager struct {
	mu      sync.Mutex
	opts    Options
	regions map[ID]Memory
	closed  bool
}

// NewManager creates a region manager
func NewManager(opts Options) (*Manager, error) {
	if opts.Backend == "" {
		opts.Backend = BackendHeap
	}

	switch opts.Backend {
	case BackendHeap:
	case BackendMmap:
		if opts.Dir == "" {
			return nil, fmt.Errorf("region: mmap backend requires a directory")
		}
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, fmt.Errorf("region: create directory: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrBackendUnsupported, opts.Backend)
	}

	return &Manager{
		opts:    opts,
		regions: make(map[ID]Memory),
	}, nil
}

// Get returns the region with the given ID, creating it on first use
func (m *Manager) Get(id ID) (Memory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrClosed
	}

	if mem, ok := m.regions[id]; ok {
		return mem, nil
	}

	var mem Memory
	switch m.opts.Backend {
	case BackendMmap:
		mm, err := OpenMmapMemory(m.regionPath(id), m.opts.MaxPages)
		if err != nil {
			return nil, err
		}
		mem = mm
	default:
		mem = NewHeapMemory(m.opts.MaxPages)
	}

	m.regions[id] = mem
	return mem, nil
}

// IDs returns the IDs of all regions created so far, in ascending order
func (m *Manager) IDs() []ID {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]ID, 0, len(m.regions))
	for id := range m.regions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Backend returns the backend the manager was configured with
func (m *Manager) Backend() Backend {
	return m.opts.Backend
}

// Sync flushes every region
func (m *Manager) Sync() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for id, mem := range m.regions {
		if err := mem.Sync(); err != nil {
			errs = append(errs, fmt.Errorf("region %d: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

// Close closes every region. The manager cannot be used afterwards.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	var errs []error
	for id, mem := range m.regions {
		if err := mem.Close(); err != nil {
			errs = append(errs, fmt.Errorf("region %d: %w", id, err))
		}
	}
	m.regions = nil
	return errors.Join(errs...)
}

func (m *Manager) regionPath(id ID) string {
	return filepath.Join(m.opts.Dir, fmt.Sprintf("region-%03d.mem", id))
}
