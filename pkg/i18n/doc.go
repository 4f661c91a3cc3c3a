// Package i18n provides a small catalog-backed translator for validation
// messages, with named-placeholder interpolation and YAML catalog parsing.
//
// # Architecture
//
// A Translator wraps an immutable catalog mapping language codes to flat
// translation maps whose keys use dot notation ("validation.required").
// Immutability makes a Translator safe for concurrent use without locking:
// New copies the catalog it is given and nothing mutates it afterwards.
//
// Templates interpolate named parameters written as %{name}:
//
//	validation.min_length: "Needs at least %{min} characters."
//
// # Usage
//
//	catalog, err := i18n.ParseYAML(yamlBytes)
//	if err != nil {
//		return err
//	}
//
//	t, err := i18n.New(catalog)
//	if err != nil {
//		return err
//	}
//
//	msg := t.T("de", "validation.min_length", "min", "8")
//
// Td resolves with an explicit fallback instead of the key itself, which
// suits validation rules that always carry a literal message:
//
//	msg := t.Td("de", "validation.required", "This field is required.")
//
// # Error Handling
//
// Construction and parsing report sentinel errors (ErrEmptyCatalog,
// ErrInvalidCatalog, ErrFailedToParseYAML) that can be checked with
// errors.Is. Lookup methods never fail: a missing translation falls back to
// the key or the provided default.
package i18n
