package tw

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCacheDisabled(t *testing.T) {
	c := NewCache(0, nil)
	c.Set("a", "1")

	_, ok := c.Get("a")
	assert.False(t, ok)

	stats := c.Stats()
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, uint64(0), stats.Sets)
	assert.Equal(t, 0, stats.Size)
}

func TestCacheGetSet(t *testing.T) {
	c := NewCache(10, nil)

	_, ok := c.Get("p-2 p-4")
	assert.False(t, ok)

	c.Set("p-2 p-4", "p-4")
	got, ok := c.Get("p-2 p-4")
	require.True(t, ok)
	assert.Equal(t, "p-4", got)

	c.Set("p-2 p-4", "p-4")
	stats := c.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, uint64(2), stats.Sets)
	assert.Equal(t, 1, stats.Size)
}

func TestCacheGenerationRollover(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c := NewCache(2, zap.New(core))

	c.Set("a", "1")
	c.Set("b", "2")
	assert.Equal(t, uint64(0), c.Stats().Rollovers)

	// exceeding the capacity retires the current generation
	c.Set("c", "3")
	assert.Equal(t, uint64(1), c.Stats().Rollovers)
	assert.Equal(t, 1, logs.FilterMessage("Cache generation rollover").Len())

	// a hit in the previous generation is promoted
	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "1", got)

	c.Set("d", "4")
	c.Set("e", "5")
	assert.Equal(t, uint64(2), c.Stats().Rollovers)

	// "b" was never promoted and has now aged out
	_, ok = c.Get("b")
	assert.False(t, ok)
	for _, key := range []string{"a", "d", "e"} {
		_, ok := c.Get(key)
		assert.True(t, ok, key)
	}
}

func TestCacheSizeCountsPromotedKeysOnce(t *testing.T) {
	c := NewCache(1, nil)

	c.Set("p-1", "p-1")
	c.Set("p-2", "p-2")
	require.Equal(t, uint64(1), c.Stats().Rollovers)

	_, ok := c.Get("p-1")
	require.True(t, ok)
	assert.Equal(t, 2, c.Stats().Size)

	_, ok = c.Get("p-2")
	require.True(t, ok)
	assert.Equal(t, 2, c.Stats().Size)
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := NewCache(16, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				key := fmt.Sprintf("k%d", (worker+j)%40)
				if v, ok := c.Get(key); ok {
					assert.Equal(t, "v-"+key, v)
					continue
				}
				c.Set(key, "v-"+key)
			}
		}(i)
	}
	wg.Wait()

	stats := c.Stats()
	assert.Equal(t, uint64(8*200), stats.Hits+stats.Misses)
	assert.LessOrEqual(t, stats.Size, 2*(16+1))
}
