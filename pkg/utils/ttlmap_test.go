package utils_test

import (
	"sync"
	"testing"
	"time"

	"github.com/robalyx/warden/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLMap(t *testing.T) {
	t.Parallel()

	t.Run("basic set and get", func(t *testing.T) {
		t.Parallel()

		m := utils.NewTTLMap[string, int](time.Minute, nil)
		t.Cleanup(m.Stop)

		m.Set("test1", 123)
		value, exists := m.Get("test1")
		assert.True(t, exists)
		assert.Equal(t, 123, value)
		assert.Equal(t, 1, m.Len())
	})

	t.Run("expiration", func(t *testing.T) {
		t.Parallel()

		ttl := 50 * time.Millisecond
		m := utils.NewTTLMap[string, int](ttl, nil)
		t.Cleanup(m.Stop)

		m.Set("test2", 456)
		time.Sleep(ttl + 30*time.Millisecond)

		_, exists := m.Get("test2")
		assert.False(t, exists)

		_, exists = m.Touch("test2")
		assert.False(t, exists)
		assert.Zero(t, m.Len())
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		m := utils.NewTTLMap[string, int](time.Minute, nil)
		t.Cleanup(m.Stop)

		m.Set("test3", 789)
		m.Delete("test3")

		_, exists := m.Get("test3")
		assert.False(t, exists)
	})

	t.Run("get or create", func(t *testing.T) {
		t.Parallel()

		m := utils.NewTTLMap[string, int](time.Minute, nil)
		t.Cleanup(m.Stop)

		value, created := m.GetOrCreate("key", func() int { return 1 })
		assert.True(t, created)
		assert.Equal(t, 1, value)

		value, created = m.GetOrCreate("key", func() int { return 2 })
		assert.False(t, created)
		assert.Equal(t, 1, value)
	})
}

func TestTTLMapTouchExtendsLifetime(t *testing.T) {
	t.Parallel()

	ttl := 200 * time.Millisecond
	m := utils.NewTTLMap[string, int](ttl, nil)
	t.Cleanup(m.Stop)

	m.Set("key", 1)

	for range 4 {
		time.Sleep(ttl / 2)

		_, exists := m.Touch("key")
		require.True(t, exists)
	}
}

func TestTTLMapOnExpire(t *testing.T) {
	t.Parallel()

	expired := make(chan string, 1)
	m := utils.NewTTLMap[string, int](20*time.Millisecond, func(key string, _ int) {
		expired <- key
	})
	t.Cleanup(m.Stop)

	m.Set("gone", 1)

	select {
	case key := <-expired:
		assert.Equal(t, "gone", key)
	case <-time.After(time.Second):
		t.Fatal("expiry callback not called")
	}
}

func TestTTLMapConcurrent(t *testing.T) {
	t.Parallel()

	m := utils.NewTTLMap[string, int](time.Minute, nil)
	t.Cleanup(m.Stop)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)

	for range 50 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if _, ok := m.GetOrCreate("shared", func() int { return 7 }); ok {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, created)
}
