package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time { return f.t }

func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCache(capacity int, ttl time.Duration) (*LRUCache[string, int], *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	c := NewLRUCache[string, int](capacity, ttl)
	c.now = clock.now
	return c, clock
}

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(t *testing.T, c *LRUCache[string, int], clock *fakeClock)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache[string, int], _ *fakeClock) {
				c.Set("a", 1)
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, 1, v)
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(t *testing.T, c *LRUCache[string, int], clock *fakeClock) {
				c.Set("a", 1)
				clock.advance(60 * time.Millisecond)
				_, ok := c.Get("a")
				assert.False(t, ok)
				assert.Equal(t, 0, c.Size())
			},
		},
		{
			name:     "evict least recently used when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache[string, int], _ *fakeClock) {
				c.Set("a", 1)
				c.Set("b", 2)
				c.Get("a")
				c.Set("c", 3)

				_, ok := c.Get("b")
				assert.False(t, ok, "b should be evicted")
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, 1, v)
				v, ok = c.Get("c")
				assert.True(t, ok)
				assert.Equal(t, 3, v)
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(t *testing.T, c *LRUCache[string, int], clock *fakeClock) {
				c.Set("a", 1)
				clock.advance(30 * time.Millisecond)
				c.Set("a", 2)
				clock.advance(30 * time.Millisecond)
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, 2, v)
			},
		},
		{
			name:     "zero ttl disables caching",
			capacity: 2,
			ttl:      0,
			actions: func(t *testing.T, c *LRUCache[string, int], _ *fakeClock) {
				c.Set("a", 1)
				_, ok := c.Get("a")
				assert.False(t, ok)
			},
		},
		{
			name:     "delete removes entry",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache[string, int], _ *fakeClock) {
				c.Set("a", 1)
				c.Delete("a")
				_, ok := c.Get("a")
				assert.False(t, ok)
			},
		},
		{
			name:     "cleanup removes expired",
			capacity: 3,
			ttl:      50 * time.Millisecond,
			actions: func(t *testing.T, c *LRUCache[string, int], clock *fakeClock) {
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()
				assert.NoError(t, c.Start(ctx))

				c.Set("a", 1)
				clock.advance(30 * time.Millisecond)
				c.Set("b", 2)
				clock.advance(30 * time.Millisecond)

				c.cleanup()

				assert.Equal(t, 1, c.Size())
				_, ok := c.Get("b")
				assert.True(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clock := newTestCache(tt.capacity, tt.ttl)
			tt.actions(t, c, clock)
		})
	}
}
