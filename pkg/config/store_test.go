package config_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/entitykit/pkg/config"
)

func TestStore_SetGet(t *testing.T) {
	t.Parallel()

	s := config.NewStore()

	assert.Equal(t, 100, s.Get("max_users", 100), "fallback for absent key")
	assert.False(t, s.Has("max_users"))

	s.Set("max_users", 250)
	assert.Equal(t, 250, s.Get("max_users", 100))
	assert.True(t, s.Has("max_users"))

	s.Set("max_users", 500)
	assert.Equal(t, 500, s.Get("max_users", 100), "set overwrites")
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	s := config.NewStore()
	s.Set("feature", true)

	s.Delete("feature")
	assert.False(t, s.Has("feature"))

	// Deleting an absent key is a no-op.
	s.Delete("feature")
}

func TestStore_SharedReference(t *testing.T) {
	t.Parallel()

	// Two components holding the same store observe each other's mutations.
	shared := config.NewStore()
	writer := shared
	reader := shared

	writer.Set("max_users", 100)
	assert.Equal(t, 100, reader.Get("max_users", 0))
}

func TestStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := config.NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key-%d", j%10)
				s.Set(key, i)
				_ = s.Get(key, nil)
				_ = s.Has(key)
			}
		}(i)
	}
	wg.Wait()

	for j := 0; j < 10; j++ {
		assert.True(t, s.Has(fmt.Sprintf("key-%d", j)))
	}
}
