package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// typeCache stores parsed configuration structs keyed by their type name.
// Each key holds a sync.Once, so the expensive parse runs at most once per
// configuration type for the lifetime of the process even under concurrent
// first access.
type typeCache struct {
	values map[string]any
	onces  map[string]*sync.Once
	mu     sync.RWMutex
}

var (
	cache = &typeCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	dotenvOnce sync.Once
)

// Load populates v from environment variables using `env` struct tags.
//
// The default .env file is loaded once per process before the first parse.
// Each configuration type is parsed exactly once: the first successful Load
// wins, and later calls for the same type receive the cached copy without
// re-running initialization.
//
//	type ServiceConfig struct {
//		Name    string `env:"SERVICE_NAME" envDefault:"entitykit"`
//		Channel string `env:"NOTIFY_CHANNEL" envDefault:"EMAIL"`
//	}
//
//	var cfg ServiceConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	dotenvOnce.Do(func() {
		// A missing .env file is fine; the process environment still applies.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeName[T]()

	cache.mu.RLock()
	if cached, ok := cache.values[key]; ok {
		*v = cached.(T)
		cache.mu.RUnlock()
		return nil
	}
	cache.mu.RUnlock()

	cache.mu.Lock()
	once, exists := cache.onces[key]
	if !exists {
		once = new(sync.Once)
		cache.onces[key] = once
	}
	cache.mu.Unlock()

	var parseErr error
	once.Do(func() {
		if err := env.Parse(v); err != nil {
			parseErr = errors.Join(ErrParsingConfig, err)
			return
		}

		cache.mu.Lock()
		// A copy is stored so later mutation of v cannot leak into the cache.
		cache.values[key] = *v
		cache.mu.Unlock()
	})
	if parseErr != nil {
		return parseErr
	}

	cache.mu.RLock()
	defer cache.mu.RUnlock()
	if cached, ok := cache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	// The once ran in another goroutine and failed there.
	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics when loading fails.
// Intended for configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// typeName returns a string identifier for the generic type T.
func typeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
