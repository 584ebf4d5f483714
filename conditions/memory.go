package conditions

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/hazeltet845/cmssw/errors"
)

type memoryEntry struct {
	iov    IOV
	record SimBeamSpot
}

// MemoryStore keeps records in a slice ordered by IOV.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []memoryEntry
}

// NewMemoryStore ...
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Put stores record, replacing one with the same iov.
func (s *MemoryStore) Put(ctx context.Context, iov IOV, record SimBeamSpot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := sort.Search(len(s.entries), func(i int) bool { return !s.entries[i].iov.Less(iov) })
	if i < len(s.entries) && s.entries[i].iov == iov {
		s.entries[i].record = record
		return nil
	}
	s.entries = append(s.entries, memoryEntry{})
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = memoryEntry{iov: iov, record: record}
	return nil
}

// Lookup ...
func (s *MemoryStore) Lookup(ctx context.Context, at IOV) (IOV, error) {
	if err := ctx.Err(); err != nil {
		return IOV{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := sort.Search(len(s.entries), func(i int) bool { return at.Less(s.entries[i].iov) })
	if i == 0 {
		return IOV{}, fmt.Errorf("%w: no beam spot interval covers %s", errors.ErrNotFound, at)
	}
	return s.entries[i-1].iov, nil
}

// Get ...
func (s *MemoryStore) Get(ctx context.Context, iov IOV) (SimBeamSpot, error) {
	if err := ctx.Err(); err != nil {
		return SimBeamSpot{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, entry := range s.entries {
		if entry.iov == iov {
			return entry.record, nil
		}
	}
	return SimBeamSpot{}, fmt.Errorf("%w: no beam spot stored for %s", errors.ErrNotFound, iov)
}
