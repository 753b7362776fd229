package utils_test

import (
	"sync"
	"testing"
	"time"

	"tracker/src/utils"

	"github.com/stretchr/testify/assert"
)

func TestCache(t *testing.T) {
	t.Run("empty cache is a miss", func(t *testing.T) {
		cache := utils.NewCache[[]string]()
		_, ok := cache.Get()
		assert.False(t, ok)
	})

	t.Run("set then get within ttl", func(t *testing.T) {
		cache := utils.NewCache[[]string]()
		cache.Set([]string{"bitcoin"}, time.Minute)

		value, ok := cache.Get()
		assert.True(t, ok)
		assert.Equal(t, []string{"bitcoin"}, value)
	})

	t.Run("expired value is a miss", func(t *testing.T) {
		cache := utils.NewCache[int]()
		cache.Set(42, -time.Second)

		_, ok := cache.Get()
		assert.False(t, ok)
	})

	t.Run("clear drops the value", func(t *testing.T) {
		cache := utils.NewCache[int]()
		cache.Set(42, time.Minute)
		cache.Clear()

		_, ok := cache.Get()
		assert.False(t, ok)
	})

	t.Run("concurrent readers and writers", func(t *testing.T) {
		cache := utils.NewCache[int]()

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(2)
			go func(v int) {
				defer wg.Done()
				cache.Set(v, time.Minute)
			}(i)
			go func() {
				defer wg.Done()
				cache.Get()
			}()
		}
		wg.Wait()

		value, ok := cache.Get()
		assert.True(t, ok)
		assert.GreaterOrEqual(t, value, 0)
		assert.Less(t, value, 10)
	})
}
