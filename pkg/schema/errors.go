package schema

import "errors"

var (
	// ErrEmptyDefinition is returned when a definition has no form selector
	// or nothing to validate.
	ErrEmptyDefinition = errors.New("definition is empty")

	// ErrMissingSelector is returned when a field definition has no selector.
	ErrMissingSelector = errors.New("field definition is missing a selector")

	// ErrBadDefinition is returned when a definition cannot be decoded or
	// fails structural checks beyond a missing selector.
	ErrBadDefinition = errors.New("bad validation definition")
)
