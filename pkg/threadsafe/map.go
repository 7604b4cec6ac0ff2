package threadsafe

import (
	"cmp"
	"slices"
	"sync"
)

// Map is a map guarded by a RWMutex, safe for use by concurrent workers.
type Map[K cmp.Ordered, V any] struct {
	m  map[K]V
	mu sync.RWMutex
}

// NewMap creates an empty Map.
func NewMap[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{
		m: make(map[K]V),
	}
}

// Set adds or replaces the value stored under key.
func (m *Map[K, V]) Set(key K, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.m[key] = value
}

// Get retrieves the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	val, ok := m.m[key]
	return val, ok
}

func (m *Map[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.m)
}

// Range calls fn for every entry in ascending key order.
// The iteration stops if fn returns false.
func (m *Map[K, V]) Range(fn func(K, V) bool) {
	m.mu.RLock()
	keys := make([]K, 0, len(m.m))
	for k := range m.m {
		keys = append(keys, k)
	}
	m.mu.RUnlock()

	slices.Sort(keys)
	for _, k := range keys {
		v, ok := m.Get(k)
		if !ok {
			continue
		}
		if !fn(k, v) {
			break
		}
	}
}
