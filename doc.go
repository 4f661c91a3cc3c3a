// Package formkit provides declarative form validation over a DOM-like
// document model, with per-field rules, required groups of checkable inputs,
// visual error and success feedback, and submit interception.
//
// FormKit is built for programs that hold a form as a live element tree — an
// in-memory document, a parsed HTML fragment, or any implementation of
// dom.Document — and want the validation ergonomics of a browser-side helper:
// register rules per field, let a validation pass paint messages and styles,
// and only let submit through when everything holds.
//
// Key Features:
//
//   - Fluent field registration with ordered, deduplicated rule lists
//   - Required groups for radio and checkbox sets
//   - Automatic message elements wired to fields via aria-describedby
//   - Class- and inline-style-based feedback, customizable per field
//   - Submit interception that blocks invalid forms
//   - Optional message translation through pkg/i18n
//
// Basic Usage:
//
//	doc := dom.NewMemoryDocument()
//	// ... build or parse a form into the document ...
//
//	v, err := formkit.New(doc, "#signup")
//	if err != nil {
//		return err
//	}
//
//	v.AddField("#email", []*rules.Rule{rules.Required(), rules.ValidEmail()}).
//		AddField("#password", []*rules.Rule{rules.Required(), rules.MinLen(8)}).
//		AddRequiredGroup("plan", "").
//		OnSubmit(func() {
//			// runs only when every field and group is valid
//		})
//
//	ok, err := v.Validate()
//
// Styling:
//
// Each field starts from the validator's default style and can be adjusted
// at registration time:
//
//	v.AddField("#email", emailRules,
//		styles.WithErrorFieldClass("is-invalid"),
//		styles.WithMessageContainer("#email-errors"),
//	)
//
// Validator-wide defaults come from options:
//
//	v, err := formkit.New(doc, "#signup",
//		formkit.WithStyle(styles.WithErrorMsgClass("form-error")),
//		formkit.WithLogger(logger.New(logger.WithDevelopment())),
//	)
//
// Submit Interception:
//
// When the form element supports events, New attaches a submit listener. An
// invalid form prevents the event's default action and stops remaining
// listeners; a valid form runs the OnSubmit callback and lets the event
// proceed.
//
// Error Handling:
//
// Operational failures are reported through sentinel errors that can be
// checked with errors.Is:
//
//	ok, err := v.ValidateField("#email")
//	switch {
//	case errors.Is(err, formkit.ErrFieldNotRegistered):
//		// selector was never added
//	case errors.Is(err, formkit.ErrNotAnInput):
//		// selector resolves to nothing validatable
//	}
//
// Validation outcomes are not errors: a failing rule yields ok == false with
// a nil error, and the collected messages are available through Errors().
package formkit
