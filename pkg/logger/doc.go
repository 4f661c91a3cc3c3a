// Package logger provides a small factory over log/slog with sensible
// presets and the attribute helpers used across formkit.
//
// The zero-option logger is production-safe: JSON records at info level on
// stdout. Presets flip the whole configuration at once:
//
//	log := logger.New(logger.WithDevelopment(), logger.WithComponent("formkit"))
//	log.Debug("field registered", logger.Selector("#email"))
//
// Library types that accept an optional *slog.Logger default to
// logger.Discard(), so embedding formkit in a program produces no output
// unless the caller wires a logger in:
//
//	v, err := formkit.New(doc, "#signup",
//		formkit.WithLogger(logger.New(logger.WithDevelopment())),
//	)
//
// SetAsDefault installs a logger as the process-wide slog default for
// programs that log through the slog package functions.
package logger
