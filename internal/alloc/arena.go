package alloc

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sys/unix"
)

type ArenaConfig struct {
	// FreeThreshold is the number of free regions of each size the arena
	// can hold before starting to release memory back to the operating
	// system. A value of 0 disables pooling; every Free unmaps.
	FreeThreshold int
}

func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{FreeThreshold: 16}
}

func (c ArenaConfig) Validate() error {
	if c.FreeThreshold < 0 {
		return errors.New("invalid config: FreeThreshold must be >= 0")
	}
	return nil
}

// Arena is an Allocator that serves regions of anonymous mmap'd memory,
// keeping buffer backing stores off the Go heap. Freed regions are
// pooled in per-size free lists for reuse; when a free list grows past
// the configured threshold, half of it is unmapped to prevent thrashing
// around the threshold.
//
// Unlike [Heap], Alloc can fail, which makes the arena the allocator of
// choice for exercising the buffers' allocation-failure contracts.
type Arena struct {
	mu            sync.Mutex
	logger        *slog.Logger
	free          map[int][][]byte
	freeThreshold int
}

// NewArena creates an empty arena. Unmap failures during Free are
// reported through the provided logger; a nil logger falls back to
// slog.Default.
func NewArena(logger *slog.Logger, config ArenaConfig) (*Arena, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Arena{
		logger:        logger,
		free:          make(map[int][][]byte),
		freeThreshold: config.FreeThreshold,
	}, nil
}

// Alloc returns a region of exactly size bytes, reusing a pooled region
// when one is available. Reused regions are not zeroed.
func (a *Arena) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("invalid allocation size %d", size)
	}
	if size == 0 {
		return []byte{}, nil
	}

	a.mu.Lock()
	if list := a.free[size]; len(list) > 0 {
		n := len(list) - 1
		region := list[n]
		a.free[size] = list[:n]
		a.mu.Unlock()
		return region, nil
	}
	a.mu.Unlock()

	// Anonymous mmap keeps the region outside the Go heap, so the GC
	// never scans buffer payloads.
	region, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot allocate %d bytes via mmap: %w", size, err)
	}
	return region[:size:size], nil
}

// Free returns a region to the arena's free list, trimming the list if
// it exceeds the free threshold.
func (a *Arena) Free(b []byte) {
	if b == nil || cap(b) == 0 {
		return
	}
	size := cap(b)
	b = b[:size]

	if a.freeThreshold == 0 {
		a.unmap(b)
		return
	}

	var toUnmap [][]byte
	a.mu.Lock()
	a.free[size] = append(a.free[size], b)
	if len(a.free[size]) > a.freeThreshold {
		// Release half of the free regions.
		n := len(a.free[size]) / 2
		toUnmap = a.free[size][:n]
		a.free[size] = a.free[size][n:]
	}
	a.mu.Unlock()

	// Unmap outside the lock to avoid blocking other operations.
	for _, region := range toUnmap {
		a.unmap(region)
	}
}

func (a *Arena) unmap(b []byte) {
	if err := unix.Munmap(b); err != nil {
		a.logger.Error("failed to unmap arena region", "size", cap(b), "error", err)
	}
}

// numFree returns the number of pooled regions for a given size.
// It is primarily intended as helper method in tests.
func (a *Arena) numFree(size int) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.free[size])
}
