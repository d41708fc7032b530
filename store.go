package persistcache

import "sync"

// memstore is the in-memory mapping and its exclusion discipline. It is
// the single shared mutable resource behind a Store: one RWMutex makes
// every insert/remove atomic end-to-end while lookups run concurrently
// with each other.
//
// Insertion order is tracked so snapshots (and therefore the persisted
// file) are reproducible for a given push history. A re-insert under an
// existing key keeps the key's original position.
type memstore[V any] struct {
	mu    sync.RWMutex
	items map[Key[V]]V
	order []Key[V] // live keys, oldest first
}

func newMemstore[V any]() *memstore[V] {
	return &memstore[V]{items: make(map[Key[V]]V)}
}

// insert records the entry under its key, replacing any previous value
// (last-write-wins). Reports whether a previous value was replaced.
func (s *memstore[V]) insert(e Entry[V]) (replaced bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, replaced = s.items[e.key]
	if !replaced {
		s.order = append(s.order, e.key)
	}
	s.items[e.key] = e.value
	return replaced
}

func (s *memstore[V]) lookup(k Key[V]) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[k]
	return v, ok
}

// remove deletes the entry under k. Reports whether an entry existed.
func (s *memstore[V]) remove(k Key[V]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[k]; !ok {
		return false
	}
	delete(s.items, k)
	for i, live := range s.order {
		if live == k {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// snapshot returns a consistent point-in-time copy of all entries in
// insertion order. The copy is taken under the read lock, so it always
// reflects a state some insert history actually produced.
func (s *memstore[V]) snapshot() []Entry[V] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry[V], 0, len(s.order))
	for _, k := range s.order {
		out = append(out, Entry[V]{key: k, value: s.items[k]})
	}
	return out
}

func (s *memstore[V]) size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
