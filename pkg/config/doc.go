// Package config loads typed configuration from environment variables, with
// optional .env file bootstrapping and a per-type cache.
//
// Configuration is described by a struct with `env` field tags
// (github.com/caarlos0/env/v11 does the parsing; github.com/joho/godotenv
// reads .env files):
//
//	type ThemeConfig struct {
//		ErrorClass   string `env:"FORMKIT_ERROR_FIELD_CLASS" envDefault:"is-invalid"`
//		SuccessClass string `env:"FORMKIT_SUCCESS_FIELD_CLASS"`
//	}
//
//	var theme ThemeConfig
//	if err := config.Load(&theme); err != nil {
//		return err
//	}
//
// The first Load in a process also attempts the default .env file in the
// working directory; a missing file is not an error. Additional files can be
// loaded explicitly with LoadEnv before any Load call:
//
//	if err := config.LoadEnv(".env.local", ".env.test"); err != nil {
//		return err
//	}
//
// Each configuration type is parsed at most once and then served from an
// in-process cache, so a type sees the environment as it was on first load.
// Tests that mutate the environment can call ResetCache to drop everything
// or ForceReloadConfig to re-parse one type.
//
// Failures are reported through sentinel errors comparable with errors.Is:
// ErrLoadingEnv, ErrParsingConfig, ErrConfigNotLoaded and ErrNilPointer.
//
// Within formkit the package backs styles.FromEnv, which reads the
// FORMKIT_* style variables into the validator's default style.
package config
