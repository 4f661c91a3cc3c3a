package i18n

import "errors"

// Package errors use descriptive messages for debugging while avoiding implementation details.
var (
	// ErrEmptyCatalog is returned when a translator is constructed with no
	// translations at all.
	ErrEmptyCatalog = errors.New("translation catalog is empty")

	// ErrInvalidCatalog is returned when a catalog carries an empty language
	// code or a nil translation map.
	ErrInvalidCatalog = errors.New("translation catalog is invalid")

	// ErrFailedToParseYAML is returned when YAML catalog content cannot be
	// decoded or does not have the expected language-to-map shape.
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
)
