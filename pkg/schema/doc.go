// Package schema loads declarative validation definitions from YAML or JSON
// and builds validators from them.
//
// # Architecture
//
// A Definition is a plain data description of one form's validation setup:
// the form selector, fields with rule lists, required groups, optional style
// overrides and a display language. Load/LoadBytes (YAML) and LoadJSON
// decode and structurally validate a Definition; Build materializes it into
// a formkit.Validator against a document, resolving rule names through a
// rules.Registry.
//
// Rules are written in two forms. The scalar form names a rule, with an
// optional parameter after "=":
//
//	rules:
//	  - required
//	  - min_length=8
//
// The mapping form adds a custom display message:
//
//	rules:
//	  - name: pattern
//	    param: "[A-Za-z0-9]+"
//	    message: "Letters and digits only."
//
// A custom message replaces the rule's built-in message and opts the rule
// out of translation.
//
// # Usage
//
//	def, err := schema.LoadBytes(yamlBytes)
//	if err != nil {
//		return err
//	}
//
//	v, err := def.Build(doc)
//	if err != nil {
//		return err
//	}
//
//	ok, err := v.Validate()
//
// Build accepts options: WithRegistry swaps the rule registry, and
// WithValidatorOptions forwards options to the underlying formkit.New so a
// logger or translator can be attached.
//
// # Error Handling
//
// Structural problems surface as ErrEmptyDefinition, ErrMissingSelector or
// ErrBadDefinition. Build reports unresolvable rules with the registry's
// errors (rules.ErrUnknownRule, rules.ErrBadRuleParam). All support
// errors.Is.
package schema
