package htmlform

import "errors"

var (
	// ErrMalformedMarkup is returned when form markup cannot be parsed.
	ErrMalformedMarkup = errors.New("malformed form markup")

	// ErrNotAForm is returned when the bind selector resolves to an element
	// that is not a <form>.
	ErrNotAForm = errors.New("selector does not resolve to a form")
)
