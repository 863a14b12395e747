// Package keylock provides non-blocking per-key mutual exclusion.
package keylock

import "sync"

// Set tracks which keys are currently held. Different keys never contend
// beyond the map guard.
type Set struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func New() *Set {
	return &Set{held: make(map[string]struct{})}
}

// TryLock acquires key if it is free. The returned func releases it and is
// safe to call more than once.
func (s *Set) TryLock(key string) (func(), bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.held[key]; busy {
		return nil, false
	}
	s.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.held, key)
			s.mu.Unlock()
		})
	}, true
}

// Held reports whether key is currently locked.
func (s *Set) Held(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, busy := s.held[key]
	return busy
}
