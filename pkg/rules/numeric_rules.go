package rules

import (
	"fmt"
	"strconv"
	"strings"
)

// Numeric passes when the value parses as a decimal number.
func Numeric() *Rule {
	return &Rule{
		Name:           "numeric",
		Message:        "Must be a number.",
		TranslationKey: "validation.numeric",
		Check: func(s State) bool {
			value := strings.TrimSpace(s.Value())
			if value == "" {
				return true
			}
			_, err := strconv.ParseFloat(value, 64)
			return err == nil
		},
	}
}

// MinNumber passes when the value parses as a number greater than or equal
// to min. A non-empty value that does not parse fails.
func MinNumber(min float64) *Rule {
	return &Rule{
		Name:           "min",
		Message:        fmt.Sprintf("Must be at least %s.", formatNumber(min)),
		TranslationKey: "validation.min",
		TranslationValues: map[string]any{
			"min": formatNumber(min),
		},
		Check: func(s State) bool {
			value := strings.TrimSpace(s.Value())
			if value == "" {
				return true
			}
			n, err := strconv.ParseFloat(value, 64)
			return err == nil && n >= min
		},
	}
}

// MaxNumber passes when the value parses as a number less than or equal to
// max. A non-empty value that does not parse fails.
func MaxNumber(max float64) *Rule {
	return &Rule{
		Name:           "max",
		Message:        fmt.Sprintf("Must be at most %s.", formatNumber(max)),
		TranslationKey: "validation.max",
		TranslationValues: map[string]any{
			"max": formatNumber(max),
		},
		Check: func(s State) bool {
			value := strings.TrimSpace(s.Value())
			if value == "" {
				return true
			}
			n, err := strconv.ParseFloat(value, 64)
			return err == nil && n <= max
		},
	}
}

// formatNumber renders a bound without a trailing fraction when it is whole,
// so messages read "at least 18" rather than "at least 18.000000".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
