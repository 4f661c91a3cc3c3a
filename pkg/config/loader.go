package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// registry caches parsed configuration structs by type so each type is read
// from the environment at most once per process. A per-type sync.Once guards
// the parse; the mutex guards the maps themselves.
type registry struct {
	mu      sync.RWMutex
	loaded  map[string]any
	pending map[string]*sync.Once
}

var (
	cache = &registry{
		loaded:  make(map[string]any),
		pending: make(map[string]*sync.Once),
	}

	defaultEnvOnce sync.Once
)

// LoadEnv loads the named .env files into the process environment, earlier
// files first so later files win on conflicting keys. With no arguments it
// loads the default .env from the working directory. Values already present
// in the environment are overridden.
func LoadEnv(files ...string) error {
	if err := godotenv.Overload(files...); err != nil {
		return errors.Join(ErrLoadingEnv, err)
	}
	return nil
}

// MustLoadEnv is LoadEnv but panics on failure, for program setup where a
// missing env file should stop the process.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// Load populates v from the environment based on its `env` field tags. The
// first Load in the process also attempts the default .env file, silently
// skipping it when absent. Each configuration type is parsed once; later
// calls for the same type are served from the cache, so a type observes the
// environment as it was on first load.
func Load[T any](v *T) error {
	defaultEnvOnce.Do(func() {
		// The default .env is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()

	if cached, ok := lookup(key); ok {
		*v = cached.(T)
		return nil
	}

	cache.mu.Lock()
	once, ok := cache.pending[key]
	if !ok {
		once = new(sync.Once)
		cache.pending[key] = once
	}
	cache.mu.Unlock()

	var parseErr error
	once.Do(func() {
		if err := env.Parse(v); err != nil {
			parseErr = errors.Join(ErrParsingConfig, err)
			return
		}
		cache.mu.Lock()
		// Stored by value so callers cannot mutate the cached copy.
		cache.loaded[key] = *v
		cache.mu.Unlock()
	})
	if parseErr != nil {
		return parseErr
	}

	// A concurrent caller may have run the Once; read the result back.
	if cached, ok := lookup(key); ok {
		*v = cached.(T)
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad is Load but panics on failure, for configuration the program
// cannot run without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig re-parses v's type from the current environment,
// replacing the cached copy. Intended for tests that change the environment
// after a type was already loaded.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()

	cache.mu.Lock()
	delete(cache.loaded, key)
	delete(cache.pending, key)
	cache.mu.Unlock()

	return Load(v)
}

// ResetCache drops every cached configuration so the next Load of each type
// parses the environment again. Intended for tests.
func ResetCache() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.loaded = make(map[string]any)
	cache.pending = make(map[string]*sync.Once)
}

func lookup(key string) (any, bool) {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	v, ok := cache.loaded[key]
	return v, ok
}

// typeKey returns a stable cache key for T.
func typeKey[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		// T is an interface type.
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
