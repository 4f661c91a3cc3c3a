// Package rules provides the validation rules evaluated against form fields:
// a Rule pairs a named predicate with the failure message shown to the user,
// plus translation metadata for localized display.
//
// Rules are lazy: a predicate receives the field's State (current value and
// checked flag) at evaluation time, so the same *Rule can be registered on
// any number of fields and re-evaluated as the field changes. Constructors
// return pointers and identity is pointer identity — registering the same
// *Rule twice on a field is a no-op, while two separately constructed
// equal-looking rules are distinct.
//
// # Architecture
//
// Each source file groups a family of constructors (string_rules.go,
// format_rules.go, numeric_rules.go, choice_rules.go). Every constructor
// simply builds and returns a *Rule; the package holds no global state and
// all rules are safe for concurrent evaluation.
//
// Two evaluators cover the two consumption modes:
//   - Eval    – returns the FIRST failing rule (insertion order, short
//     circuit); this drives interactive field validation where exactly one
//     message is displayed.
//   - Apply   – runs every rule and aggregates all failures into a
//     ValidationErrors value implementing error; useful for headless
//     revalidation where every problem should surface at once.
//
// Except for Required and Checked, built-in rules pass on an empty value, the
// way HTML constraint validation skips optional empty fields. Combine with
// Required to force presence.
//
// # Usage
//
//	err := rules.Apply(field,
//	    rules.Required(),
//	    rules.ValidEmail(),
//	    rules.MaxLen(254),
//	)
//
// The Registry maps rule names like "min_length" to parameterized factories
// so declarative definitions can construct rules by name; DefaultRegistry
// covers every built-in.
package rules
