//go:build !unix

package region

// OpenMmapMemory is not available on this platform
func OpenMmapMemory(path string, maxPages uint64) (Memory, error) {
	return nil, ErrBackendUnsupported
}
