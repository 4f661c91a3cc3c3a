package htmlform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kohguanzeh/formkit"
	"github.com/kohguanzeh/formkit/pkg/dom"
)

// checkableSet accumulates what Bind knows about the inputs sharing one name
// attribute.
type checkableSet struct {
	count    int
	required bool
}

// Bind builds a validator for the form matched by formSelector and registers
// every control the markup's constraint attributes describe. Fields are
// addressed by "#id" when the control has an id, otherwise by its name
// attribute. Radio sets and multi-checkbox sets carrying a required member
// become required groups; a lone required checkbox becomes a field with a
// checked rule. Controls of type submit, button, reset, image or hidden are
// ignored, as are controls with no constraints or no usable address.
//
// The options are passed through to formkit.New, so the bound validator
// styles, logs and translates like a hand-assembled one.
func Bind(doc dom.Document, formSelector string, opts ...formkit.Option) (*formkit.Validator, error) {
	if doc == nil {
		return nil, formkit.ErrNilDocument
	}

	// The tag is checked before formkit.New runs so a non-form target never
	// gets a submit listener attached.
	form, err := doc.Resolve(formSelector)
	if err != nil {
		return nil, errors.Join(formkit.ErrFormNotFound, err)
	}
	if form.Tag() != "form" {
		return nil, fmt.Errorf("%w: %s resolves to <%s>", ErrNotAForm, formSelector, form.Tag())
	}

	v, err := formkit.New(doc, formSelector, opts...)
	if err != nil {
		return nil, err
	}

	var controls []dom.Element
	for _, tag := range []string{"input", "textarea", "select"} {
		found, err := form.FindAll(tag)
		if err != nil {
			return nil, err
		}
		controls = append(controls, found...)
	}

	radios := make(map[string]*checkableSet)
	checkboxes := make(map[string]*checkableSet)
	for _, el := range controls {
		name := el.Attr("name")
		if el.Tag() != "input" || name == "" {
			continue
		}

		var set map[string]*checkableSet
		switch strings.ToLower(el.Attr("type")) {
		case "radio":
			set = radios
		case "checkbox":
			set = checkboxes
		default:
			continue
		}

		entry, ok := set[name]
		if !ok {
			entry = &checkableSet{}
			set[name] = entry
		}
		entry.count++
		entry.required = entry.required || el.HasAttr("required")
	}

	registered := make(map[string]bool)
	for _, el := range controls {
		typ := strings.ToLower(el.Attr("type"))
		if ignoredType(typ) {
			continue
		}
		name := el.Attr("name")

		if el.Tag() == "input" && typ == "radio" {
			if name != "" && radios[name].required && !registered[name] {
				v.AddRequiredGroup(name, "")
				registered[name] = true
			}
			continue
		}
		if el.Tag() == "input" && typ == "checkbox" && name != "" && checkboxes[name].count > 1 {
			if checkboxes[name].required && !registered[name] {
				v.AddRequiredGroup(name, "")
				registered[name] = true
			}
			continue
		}

		selector := fieldSelector(el)
		if selector == "" || registered[selector] {
			continue
		}
		rs := Constraints(el)
		if len(rs) == 0 {
			continue
		}
		v.AddField(selector, rs)
		registered[selector] = true
	}

	return v, nil
}

// ignoredType reports whether an input type takes no part in validation.
func ignoredType(typ string) bool {
	switch typ {
	case "submit", "button", "reset", "image", "hidden":
		return true
	}
	return false
}

// fieldSelector picks the address a control is registered and re-resolved
// under: its id when present, its name attribute otherwise.
func fieldSelector(el dom.Element) string {
	if id := el.Attr("id"); id != "" {
		return "#" + id
	}
	if name := el.Attr("name"); name != "" {
		return fmt.Sprintf("[name=%q]", name)
	}
	return ""
}
