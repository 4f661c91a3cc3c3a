package rules

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Factory builds a rule from the string parameter that accompanies a rule
// name in declarative definitions; "min_length=3" reaches the "min_length"
// factory with param "3". Factories validate their parameter and return
// ErrBadRuleParam instead of panicking, since definitions are user input.
type Factory func(param string) (*Rule, error)

// Registry maps rule names to factories for name-addressed construction.
type Registry map[string]Factory

// Build constructs a rule by name. Unknown names return ErrUnknownRule.
func (reg Registry) Build(name, param string) (*Rule, error) {
	f, ok := reg[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRule, name)
	}
	return f(param)
}

// Register adds or replaces a factory under name.
func (reg Registry) Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	reg[name] = f
}

// DefaultRegistry returns a registry covering every built-in rule:
// "required", "checked", "email", "url", "numeric", "no_whitespace",
// "min_length", "max_length", "exact_length", "min", "max", "pattern" and
// "one_of". Callers may Register additional factories on the returned value.
func DefaultRegistry() Registry {
	return Registry{
		"required":      plain(Required),
		"checked":       plain(Checked),
		"email":         plain(ValidEmail),
		"url":           plain(ValidURL),
		"numeric":       plain(Numeric),
		"no_whitespace": plain(NoWhitespace),
		"min_length":    intParam("min_length", MinLen),
		"max_length":    intParam("max_length", MaxLen),
		"exact_length":  intParam("exact_length", ExactLen),
		"min":           floatParam("min", MinNumber),
		"max":           floatParam("max", MaxNumber),
		"pattern": func(param string) (*Rule, error) {
			if param == "" {
				return nil, fmt.Errorf("%w: pattern needs an expression", ErrBadRuleParam)
			}
			if _, err := regexp.Compile(param); err != nil {
				return nil, errors.Join(ErrBadRuleParam, err)
			}
			return Pattern(param, ""), nil
		},
		"one_of": func(param string) (*Rule, error) {
			var allowed []string
			for _, opt := range strings.Split(param, ",") {
				if opt = strings.TrimSpace(opt); opt != "" {
					allowed = append(allowed, opt)
				}
			}
			if len(allowed) == 0 {
				return nil, fmt.Errorf("%w: one_of needs a comma-separated option list", ErrBadRuleParam)
			}
			return OneOf(allowed...), nil
		},
	}
}

func plain(ctor func() *Rule) Factory {
	return func(string) (*Rule, error) {
		return ctor(), nil
	}
}

func intParam(name string, ctor func(int) *Rule) Factory {
	return func(param string) (*Rule, error) {
		n, err := strconv.Atoi(strings.TrimSpace(param))
		if err != nil {
			return nil, fmt.Errorf("%w: %s needs an integer, got %q", ErrBadRuleParam, name, param)
		}
		return ctor(n), nil
	}
}

func floatParam(name string, ctor func(float64) *Rule) Factory {
	return func(param string) (*Rule, error) {
		f, err := strconv.ParseFloat(strings.TrimSpace(param), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s needs a number, got %q", ErrBadRuleParam, name, param)
		}
		return ctor(f), nil
	}
}
