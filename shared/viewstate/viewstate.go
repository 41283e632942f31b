// Package viewstate holds keyed, ordered view state shared by concurrent handlers.
// It backs the wizard and console registries; it is not an entity cache.
package viewstate

import (
	"sync"
	"time"
)

type Store[K comparable, V any] struct {
	mu      sync.Mutex
	key     func(V) K
	items   map[K]V
	order   []K
	touched map[K]time.Time
	idle    time.Duration
	onEvict func(V)
	now     func() time.Time
}

func New[K comparable, V any](key func(V) K) *Store[K, V] {
	return &Store[K, V]{
		key:     key,
		items:   map[K]V{},
		touched: map[K]time.Time{},
		now:     time.Now,
	}
}

// WithIdleTimeout drops items nobody has fetched with Get for longer than idle. Expiry is
// lazy: every call sweeps first. onEvict, when set, runs for each dropped item outside the lock.
// A zero idle keeps items until they are deleted.
func (s *Store[K, V]) WithIdleTimeout(idle time.Duration, onEvict func(V)) *Store[K, V] {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.idle = idle
	s.onEvict = onEvict

	return s
}

// ReplaceAll swaps the whole content, keeping the order of items.
func (s *Store[K, V]) ReplaceAll(items []V) {
	s.mu.Lock()

	s.items = make(map[K]V, len(items))
	s.order = make([]K, 0, len(items))
	s.touched = make(map[K]time.Time, len(items))

	for _, item := range items {
		s.put(item)
	}

	s.mu.Unlock()
}

// Insert appends item. An item with the same key is replaced in place.
func (s *Store[K, V]) Insert(item V) {
	s.mu.Lock()
	evicted := s.sweep()
	s.put(item)
	s.mu.Unlock()

	s.evict(evicted)
}

// Update replaces the stored item with the same key. It reports false when no such item exists.
func (s *Store[K, V]) Update(item V) bool {
	s.mu.Lock()
	evicted := s.sweep()

	key := s.key(item)

	_, ok := s.items[key]
	if ok {
		s.items[key] = item
		s.touched[key] = s.now()
	}

	s.mu.Unlock()

	s.evict(evicted)

	return ok
}

func (s *Store[K, V]) Delete(key K) bool {
	s.mu.Lock()
	evicted := s.sweep()
	ok := s.remove(key)
	s.mu.Unlock()

	s.evict(evicted)

	return ok
}

// Get returns the item and marks it as used.
func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	evicted := s.sweep()

	item, ok := s.items[key]
	if ok {
		s.touched[key] = s.now()
	}

	s.mu.Unlock()

	s.evict(evicted)

	return item, ok
}

// List returns a copy in insertion order. It does not mark items as used.
func (s *Store[K, V]) List() []V {
	s.mu.Lock()
	evicted := s.sweep()

	res := make([]V, 0, len(s.order))
	for _, key := range s.order {
		res = append(res, s.items[key])
	}

	s.mu.Unlock()

	s.evict(evicted)

	return res
}

func (s *Store[K, V]) Len() int {
	s.mu.Lock()
	evicted := s.sweep()
	n := len(s.items)
	s.mu.Unlock()

	s.evict(evicted)

	return n
}

func (s *Store[K, V]) put(item V) {
	key := s.key(item)
	if _, ok := s.items[key]; !ok {
		s.order = append(s.order, key)
	}

	s.items[key] = item
	s.touched[key] = s.now()
}

func (s *Store[K, V]) remove(key K) bool {
	if _, ok := s.items[key]; !ok {
		return false
	}

	delete(s.items, key)
	delete(s.touched, key)

	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return true
}

// sweep removes idle items; callers hold mu.
func (s *Store[K, V]) sweep() []V {
	if s.idle <= 0 {
		return nil
	}

	deadline := s.now().Add(-s.idle)

	var evicted []V

	for _, key := range append([]K(nil), s.order...) {
		if s.touched[key].Before(deadline) {
			evicted = append(evicted, s.items[key])
			s.remove(key)
		}
	}

	return evicted
}

func (s *Store[K, V]) evict(items []V) {
	if s.onEvict == nil {
		return
	}

	for _, item := range items {
		s.onEvict(item)
	}
}
