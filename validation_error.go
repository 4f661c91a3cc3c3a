package formkit

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError collects the messages of fields and groups that failed
// their most recent evaluation, keyed by field selector or group name.
// It's based on url.Values to leverage built-in string slice handling.
type ValidationError url.Values

// Error implements the error interface.
// Returns a human-readable error message summarizing validation failures.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "Validation failed"
	}

	var parts []string
	for key, messages := range e {
		if len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", key, messages[0]))
		}
	}

	return fmt.Sprintf("validation error: %s", strings.Join(parts, ", "))
}

// NewValidationError creates a new validation error.
func NewValidationError() ValidationError {
	return make(ValidationError)
}

// Add adds an error message for a key.
func (e ValidationError) Add(key, message string) {
	url.Values(e).Add(key, message)
}

// Get returns the first error message for a key.
func (e ValidationError) Get(key string) string {
	return url.Values(e).Get(key)
}

// Has checks if a key has any errors.
func (e ValidationError) Has(key string) bool {
	return len(e[key]) > 0
}

// IsEmpty returns true if there are no validation errors.
func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}

// Errors reports the current failures as a ValidationError. Fields appear
// under their selector with the message of the rule that rejected them;
// groups appear under their name with their configured message. Entries that
// have never been evaluated are skipped, so the result reflects only what
// the last validation pass actually saw.
func (v *Validator) Errors() ValidationError {
	errs := NewValidationError()

	for _, selector := range v.fieldOrder {
		entry := v.fields[selector]
		if entry.evaluated && !entry.valid {
			errs.Add(selector, entry.lastMessage)
		}
	}
	for _, name := range v.groupOrder {
		entry := v.groups[name]
		if entry.evaluated && !entry.valid {
			errs.Add(name, entry.message)
		}
	}

	return errs
}
