package dom

import "errors"

var (
	// ErrNoMatch is returned when a selector resolves to no element.
	ErrNoMatch = errors.New("no element matches selector")

	// ErrBadSelector is returned for selector syntax outside the supported
	// subset: tag, #id, .class, [attr], [attr=value], compounds and the
	// descendant combinator.
	ErrBadSelector = errors.New("unsupported selector syntax")
)
