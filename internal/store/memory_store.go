package store

import (
	"sync"
	"time"
)

// Status is the lifecycle state of a published slice.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusErrored Status = "errored"
)

// Snapshot is a point-in-time copy of a slice's state.
type Snapshot[T any] struct {
	Status     Status    `json:"status" yaml:"status"`
	Value      T         `json:"value" yaml:"value"`
	Error      string    `json:"error,omitempty" yaml:"error,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt" yaml:"updatedAt"`
	Generation uint64    `json:"-" yaml:"-"`
}

// Loading reports whether a fetch cycle is in flight.
func (s Snapshot[T]) Loading() bool {
	return s.Status == StatusLoading
}

// MemoryStore keeps one thread-safe published value in memory.
// Writers open a cycle with Begin or Reset and settle it with Commit or Fail;
// settling an older cycle than the latest begun one is ignored.
type MemoryStore[T any] struct {
	mu    sync.RWMutex
	state Snapshot[T]
	now   func() time.Time
}

// NewMemoryStore constructs an idle MemoryStore.
func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{
		state: Snapshot[T]{Status: StatusIdle},
		now:   time.Now,
	}
}

// Begin starts a fetch cycle, keeping the current value.
func (s *MemoryStore[T]) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Generation++
	s.state.Status = StatusLoading
	s.state.Error = ""
	return s.state.Generation
}

// Reset starts a fetch cycle and discards the current value.
func (s *MemoryStore[T]) Reset() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.state.Generation++
	s.state.Status = StatusLoading
	s.state.Error = ""
	s.state.Value = zero
	s.state.UpdatedAt = time.Time{}
	return s.state.Generation
}

// Commit replaces the value if gen is the current cycle.
func (s *MemoryStore[T]) Commit(gen uint64, value T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.state.Generation {
		return false
	}
	s.state.Value = value
	s.state.Status = StatusReady
	s.state.Error = ""
	s.state.UpdatedAt = s.now()
	return true
}

// Fail records a display message if gen is the current cycle. The value is retained.
func (s *MemoryStore[T]) Fail(gen uint64, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.state.Generation {
		return false
	}
	s.state.Status = StatusErrored
	s.state.Error = message
	return true
}

// Snapshot returns a copy of the current state.
func (s *MemoryStore[T]) Snapshot() Snapshot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
