package formkit

import "errors"

// Operational errors surfaced by validator construction and evaluation.
// Rule failures are not errors; they are false results with local message
// display.
var (
	// ErrNilDocument is returned by New when no document is supplied.
	ErrNilDocument = errors.New("document is nil")

	// ErrFormNotFound is returned when the form selector matches nothing,
	// at construction or at the start of an evaluation pass.
	ErrFormNotFound = errors.New("form not found")

	// ErrFieldNotRegistered is returned when a selector was never registered
	// with AddField.
	ErrFieldNotRegistered = errors.New("field selector not registered")

	// ErrGroupNotRegistered is returned when a group name was never
	// registered with AddRequiredGroup.
	ErrGroupNotRegistered = errors.New("group not registered")

	// ErrNotAnInput is returned when a registered selector resolves to
	// nothing input-capable: fields must be input, textarea or select
	// elements inside the form.
	ErrNotAnInput = errors.New("not an input element")
)
