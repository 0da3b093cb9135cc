// Package cache provides a single-slot TTL cache. The transaction pipeline
// only ever caches one value (the last enriched list), so there is no keying
// or eviction policy beyond freshness.
package cache

import (
	"sync"
	"time"
)

// Slot holds one value and the time it was stored. Get reports a miss once
// the value is older than the TTL; callers then refresh and Set again.
type Slot[T any] struct {
	mu       sync.Mutex
	ttl      time.Duration
	value    T
	storedAt time.Time
	present  bool

	now func() time.Time // overridable in tests
}

// NewSlot creates an empty slot with the given freshness window.
func NewSlot[T any](ttl time.Duration) *Slot[T] {
	return &Slot[T]{ttl: ttl, now: time.Now}
}

// Get returns the cached value if one is present and still fresh.
func (s *Slot[T]) Get() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if !s.present {
		return zero, false
	}
	if s.now().Sub(s.storedAt) >= s.ttl {
		return zero, false
	}
	return s.value, true
}

// Set stores a value and resets the freshness clock.
func (s *Slot[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = v
	s.storedAt = s.now()
	s.present = true
}

// Clear empties the slot.
func (s *Slot[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.value = zero
	s.present = false
}
