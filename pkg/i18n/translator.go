package i18n

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"regexp"
	"sort"
)

// DefaultLanguage is the language used when a requested language has no
// catalog entry.
const DefaultLanguage = "en"

// Translator resolves translation keys against an immutable catalog. The
// catalog maps language codes to flat maps of dot-notation keys, so lookups
// are single map reads and the Translator is safe for concurrent use.
type Translator struct {
	catalog       map[string]map[string]string
	defaultLang   string
	fallbackToKey bool
	logger        *slog.Logger
}

// New creates a Translator from the given catalog. The catalog is copied, so
// later changes to the caller's maps do not affect the Translator. Returns
// ErrEmptyCatalog when no translations are provided and ErrInvalidCatalog
// when a language code is empty or its map is nil.
func New(catalog map[string]map[string]string, options ...Option) (*Translator, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}

	copied := make(map[string]map[string]string, len(catalog))
	for lang, translations := range catalog {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidCatalog)
		}
		if translations == nil {
			return nil, fmt.Errorf("%w: nil translations for language %q", ErrInvalidCatalog, lang)
		}
		copied[lang] = maps.Clone(translations)
	}

	t := &Translator{
		catalog:       copied,
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
	}
	for _, option := range options {
		if option != nil {
			option(t)
		}
	}

	t.logger.Debug("translations loaded", "languages", t.Languages())
	return t, nil
}

// Languages returns the sorted language codes the catalog covers.
func (t *Translator) Languages() []string {
	langs := make([]string, 0, len(t.catalog))
	for lang := range t.catalog {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Has checks if a translation exists for the given language and key.
func (t *Translator) Has(lang, key string) bool {
	translations, ok := t.catalog[lang]
	if !ok {
		return false
	}
	_, ok = translations[key]
	return ok
}

// lookup resolves key in lang, falling back to the default language when the
// requested language misses.
func (t *Translator) lookup(lang, key string) (string, bool) {
	if translations, ok := t.catalog[lang]; ok {
		if tmpl, ok := translations[key]; ok {
			return tmpl, true
		}
	}
	if lang == t.defaultLang {
		return "", false
	}
	if translations, ok := t.catalog[t.defaultLang]; ok {
		if tmpl, ok := translations[key]; ok {
			return tmpl, true
		}
	}
	return "", false
}

// T translates a key for the given language.
// It supports formatting with additional arguments provided as key-value pairs.
// For example: t.T("en", "welcome", "name", "John") substitutes "%{name}" in
// the template. A language without the key falls back to the default
// language; when both miss, the key itself is returned (or an empty string
// when fallback to key is disabled).
func (t *Translator) T(lang, key string, args ...string) string {
	if tmpl, ok := t.lookup(lang, key); ok {
		return t.sprintf(tmpl, args)
	}

	t.logger.Debug("translation not found", "lang", lang, "key", key)
	if t.fallbackToKey {
		return t.sprintf(key, args)
	}
	return ""
}

// Td translates a key with a default fallback if not found.
// Provides an explicit fallback rather than using the key itself, which fits
// callers that always carry a ready-made message.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if tmpl, ok := t.lookup(lang, key); ok {
		return t.sprintf(tmpl, args)
	}

	t.logger.Debug("translation not found, using default", "lang", lang, "key", key)
	return t.sprintf(defaultValue, args)
}

// buildParams converts a slice of strings (expected as key, value, key, value, …)
// into a map. If the number of arguments is odd, the last one is ignored.
func (t *Translator) buildParams(args []string) map[string]string {
	params := make(map[string]string)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf performs substitution of named placeholders in the form "%{key}"
// using the provided key-value argument pairs. Placeholders without a
// matching argument are left as-is.
func (t *Translator) sprintf(tmpl string, args []string) string {
	if len(args) == 0 {
		return tmpl
	}

	params := t.buildParams(args)
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}
