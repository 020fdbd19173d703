package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSetGet(t *testing.T) {
	c := New[string, int]()
	c.Set("a", 1, 0)
	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = c.Get("missing")
	require.False(t, ok)
}

func TestExpiration(t *testing.T) {
	c := New[string, string]()
	base := time.Now()
	now = func() time.Time { return base }
	defer func() { now = time.Now }()

	c.Set("k", "v", 5*time.Second)
	_, ok := c.Get("k")
	require.True(t, ok)

	now = func() time.Time { return base.Add(6 * time.Second) }
	_, ok = c.Get("k")
	require.False(t, ok)

	require.Equal(t, 0, c.Len())
	c.PurgeExpired()
	c.mu.RLock()
	require.Empty(t, c.items)
	c.mu.RUnlock()
}

func TestDeleteAndClear(t *testing.T) {
	c := New[string, int]()
	c.Set("a", 1, 0)
	c.Set("b", 2, 0)
	c.Delete("a")
	require.Equal(t, 1, c.Len())
	c.Clear()
	require.Equal(t, 0, c.Len())
}
