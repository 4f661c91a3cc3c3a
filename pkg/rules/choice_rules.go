package rules

import (
	"fmt"
	"slices"
	"strings"
)

// OneOf passes when the value equals one of the allowed options. An empty
// value passes.
func OneOf(allowed ...string) *Rule {
	return &Rule{
		Name:           "one_of",
		Message:        fmt.Sprintf("Must be one of: %s.", strings.Join(allowed, ", ")),
		TranslationKey: "validation.one_of",
		TranslationValues: map[string]any{
			"options": strings.Join(allowed, ", "),
		},
		Check: func(s State) bool {
			v := s.Value()
			return v == "" || slices.Contains(allowed, v)
		},
	}
}

// Checked passes when the field is in a checked state, as wanted for a
// consent checkbox that must be ticked.
func Checked() *Rule {
	return &Rule{
		Name:           "checked",
		Message:        "This box must be checked.",
		TranslationKey: "validation.checked",
		Check: func(s State) bool {
			return s.Checked()
		},
	}
}
