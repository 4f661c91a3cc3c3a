package i18n

import "log/slog"

// Option is a function that configures a Translator instance.
type Option func(*Translator)

// WithDefaultLanguage sets the fallback language consulted when the
// requested language has no entry for a key. The default is "en".
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey determines whether T returns the key itself when no
// translation is found. Default is true.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger provides a customizable logger for the translator.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}
