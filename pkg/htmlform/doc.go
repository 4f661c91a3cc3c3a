// Package htmlform imports form markup into the dom document model and
// derives validation setup from HTML constraint attributes.
//
// # Architecture
//
// The package has three layers. Parse turns well-formed markup into a
// dom.MemoryDocument, copying tags, attributes and leaf text. Constraints
// reads the constraint attributes of a single control (required, minlength,
// maxlength, pattern, type, min, max) and derives the matching rule list.
// Bind ties both together: it builds a formkit.Validator for a parsed form
// and auto-registers every addressable control that carries constraints,
// turning required radio sets and multi-checkbox sets into required groups.
//
// Markup must be well-formed: attribute values quoted and void elements
// self-closed (<input ... />), as produced by templating systems and XHTML
// serializers.
//
// # Usage
//
//	doc, err := htmlform.ParseBytes(markup)
//	if err != nil {
//		return err
//	}
//
//	v, err := htmlform.Bind(doc, "#signup")
//	if err != nil {
//		return err
//	}
//
//	ok, err := v.Validate()
//
// Bind accepts the same options as formkit.New, so styling, logging and
// translation configure the bound validator the usual way:
//
//	v, err := htmlform.Bind(doc, "#signup",
//		formkit.WithStyle(styles.WithErrorFieldClass("is-invalid")),
//	)
//
// # Error Handling
//
// Parse and ParseBytes report ErrMalformedMarkup joined with the decoder's
// error. Bind reports ErrNotAForm when the selector resolves to an element
// other than <form>, and passes through construction errors from
// formkit.New. All errors support errors.Is.
package htmlform
