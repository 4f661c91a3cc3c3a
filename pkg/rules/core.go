package rules

import (
	"errors"
	"fmt"
	"strings"
)

// State is the view of a form field a predicate evaluates against. A
// dom.Element satisfies it; tests can use any two-method stub.
type State interface {
	// Value returns the field's current value.
	Value() string
	// Checked reports whether the field is in a checked state. Only radio
	// and checkbox inputs can be checked; other fields report false.
	Checked() bool
}

// Rule pairs a named predicate with the message displayed when it fails.
// TranslationKey and TranslationValues let the displayed message be localized
// without changing the rule. A Rule is immutable once constructed; identity
// is pointer identity.
type Rule struct {
	Name              string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
	Check             func(State) bool
}

// New constructs a custom rule from a name, a failure message and a
// predicate.
func New(name, message string, check func(State) bool) *Rule {
	return &Rule{Name: name, Message: message, Check: check}
}

// Eval runs the rules in order against s and returns the first rule whose
// predicate fails, or nil when every rule passes. Evaluation stops at the
// first failure, so the returned rule decides which message the user sees.
// Nil rules and rules without a predicate are skipped.
func Eval(s State, rs ...*Rule) *Rule {
	for _, r := range rs {
		if r == nil || r.Check == nil {
			continue
		}
		if !r.Check(s) {
			return r
		}
	}
	return nil
}

// Apply runs every rule against s and aggregates the failures into a
// ValidationErrors value. Unlike Eval it does not short-circuit; use it when
// every problem should be reported at once.
func Apply(s State, rs ...*Rule) error {
	var errs ValidationErrors
	for _, r := range rs {
		if r == nil || r.Check == nil {
			continue
		}
		if !r.Check(s) {
			errs = append(errs, r)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ValidationErrors collects the rules that failed during Apply.
type ValidationErrors []*Rule

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, r := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", r.Name, r.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether a rule with the given name failed.
func (ve ValidationErrors) Has(name string) bool {
	for _, r := range ve {
		if r.Name == name {
			return true
		}
	}
	return false
}

// Get returns the messages of every failed rule with the given name.
func (ve ValidationErrors) Get(name string) []string {
	var messages []string
	for _, r := range ve {
		if r.Name == name {
			messages = append(messages, r.Message)
		}
	}
	return messages
}

// Names returns the distinct names of the failed rules in failure order.
func (ve ValidationErrors) Names() []string {
	var names []string
	seen := make(map[string]bool)
	for _, r := range ve {
		if !seen[r.Name] {
			names = append(names, r.Name)
			seen[r.Name] = true
		}
	}
	return names
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors unwraps ValidationErrors from an error chain, or
// returns nil when err carries none.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}

	return nil
}

// IsValidationError reports whether err carries rule failures rather than an
// operational problem.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var verrs ValidationErrors
	return errors.As(err, &verrs)
}
