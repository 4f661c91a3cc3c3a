package rules

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Required passes when the value is not empty after trimming whitespace.
func Required() *Rule {
	return &Rule{
		Name:           "required",
		Message:        "This field is required.",
		TranslationKey: "validation.required",
		Check: func(s State) bool {
			return strings.TrimSpace(s.Value()) != ""
		},
	}
}

// MinLen passes when the value has at least min characters. Length is counted
// in runes, not bytes. An empty value passes; combine with Required to force
// presence.
func MinLen(min int) *Rule {
	return &Rule{
		Name:           "min_length",
		Message:        fmt.Sprintf("Must be at least %d characters long.", min),
		TranslationKey: "validation.min_length",
		TranslationValues: map[string]any{
			"min": min,
		},
		Check: func(s State) bool {
			v := s.Value()
			return v == "" || utf8.RuneCountInString(v) >= min
		},
	}
}

// MaxLen passes when the value has at most max characters, counted in runes.
func MaxLen(max int) *Rule {
	return &Rule{
		Name:           "max_length",
		Message:        fmt.Sprintf("Must be at most %d characters long.", max),
		TranslationKey: "validation.max_length",
		TranslationValues: map[string]any{
			"max": max,
		},
		Check: func(s State) bool {
			return utf8.RuneCountInString(s.Value()) <= max
		},
	}
}

// ExactLen passes when the value has exactly n characters, counted in runes.
// An empty value passes.
func ExactLen(n int) *Rule {
	return &Rule{
		Name:           "exact_length",
		Message:        fmt.Sprintf("Must be exactly %d characters long.", n),
		TranslationKey: "validation.exact_length",
		TranslationValues: map[string]any{
			"length": n,
		},
		Check: func(s State) bool {
			v := s.Value()
			return v == "" || utf8.RuneCountInString(v) == n
		},
	}
}

// NoWhitespace passes when the value contains no whitespace characters, as
// wanted for usernames and codes.
func NoWhitespace() *Rule {
	return &Rule{
		Name:           "no_whitespace",
		Message:        "Must not contain spaces.",
		TranslationKey: "validation.no_whitespace",
		Check: func(s State) bool {
			return !strings.ContainsFunc(s.Value(), unicode.IsSpace)
		},
	}
}
