package config

import "errors"

var (
	// ErrLoadingEnv is returned when an explicitly named .env file cannot
	// be loaded.
	ErrLoadingEnv = errors.New("failed to load env file")

	// ErrParsingConfig is returned when the environment cannot be parsed
	// into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrConfigNotLoaded is returned when a config type's parse was claimed
	// by a concurrent caller that failed, leaving nothing in the cache.
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is passed to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
