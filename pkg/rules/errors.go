package rules

import "errors"

// Registry construction errors.
var (
	// ErrUnknownRule is returned when a registry is asked for a rule name it
	// does not hold.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrBadRuleParam is returned when a factory cannot parse the parameter
	// accompanying a rule name.
	ErrBadRuleParam = errors.New("invalid rule parameter")
)
