package utils

import (
	"sync"
	"time"
)

// TTLMap provides a thread-safe map with expiring entries. Reads through
// Touch and GetOrCreate extend an entry's lifetime.
type TTLMap[K comparable, V any] struct {
	mu       sync.RWMutex
	data     map[K]V
	expires  map[K]time.Time
	ttl      time.Duration
	onExpire func(K, V)
	done     chan struct{}
	stopOnce sync.Once
}

// NewTTLMap creates a new TTLMap with the specified TTL duration. The
// optional callback runs for every entry removed by expiry, outside the lock.
func NewTTLMap[K comparable, V any](ttl time.Duration, onExpire func(K, V)) *TTLMap[K, V] {
	m := &TTLMap[K, V]{
		data:     make(map[K]V),
		expires:  make(map[K]time.Time),
		ttl:      ttl,
		onExpire: onExpire,
		done:     make(chan struct{}),
	}

	go m.cleanup()

	return m
}

// Get retrieves a value from the map.
// Returns the value and whether it exists/is valid.
func (m *TTLMap[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, exists := m.data[key]
	if !exists || time.Now().After(m.expires[key]) {
		var zero V
		return zero, false
	}

	return value, true
}

// Touch retrieves a value and restarts its lifetime.
func (m *TTLMap[K, V]) Touch(key K) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, exists := m.data[key]
	if !exists || time.Now().After(m.expires[key]) {
		var zero V
		return zero, false
	}

	m.expires[key] = time.Now().Add(m.ttl)

	return value, true
}

// GetOrCreate returns the live value for key, creating it when absent.
// The boolean is true when the value was created by this call.
func (m *TTLMap[K, V]) GetOrCreate(key K, create func() V) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if value, exists := m.data[key]; exists && !time.Now().After(m.expires[key]) {
		m.expires[key] = time.Now().Add(m.ttl)
		return value, false
	}

	value := create()
	m.data[key] = value
	m.expires[key] = time.Now().Add(m.ttl)

	return value, true
}

// Set adds or updates a value in the map.
func (m *TTLMap[K, V]) Set(key K, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
	m.expires[key] = time.Now().Add(m.ttl)
}

// Delete removes a key from the map.
func (m *TTLMap[K, V]) Delete(key K) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	delete(m.expires, key)
}

// Len returns the number of live entries.
func (m *TTLMap[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	now := time.Now()
	count := 0

	for _, expires := range m.expires {
		if !now.After(expires) {
			count++
		}
	}

	return count
}

// Stop ends the cleanup goroutine.
func (m *TTLMap[K, V]) Stop() {
	m.stopOnce.Do(func() { close(m.done) })
}

// cleanup periodically removes expired entries.
func (m *TTLMap[K, V]) cleanup() {
	ticker := time.NewTicker(m.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}

func (m *TTLMap[K, V]) sweep() {
	type expired struct {
		key   K
		value V
	}

	var removed []expired

	m.mu.Lock()
	now := time.Now()
	for key, expires := range m.expires {
		if now.After(expires) {
			removed = append(removed, expired{key: key, value: m.data[key]})
			delete(m.data, key)
			delete(m.expires, key)
		}
	}
	m.mu.Unlock()

	if m.onExpire != nil {
		for _, e := range removed {
			m.onExpire(e.key, e.value)
		}
	}
}
