package htmlform

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kohguanzeh/formkit/pkg/dom"
	"github.com/kohguanzeh/formkit/pkg/rules"
)

// Constraints derives the rule list a control's constraint attributes call
// for, in a fixed order: required first, then length bounds, pattern, and
// type-derived format and range rules.
//
// The required attribute maps by control type: checkboxes get a checked
// rule, radios get nothing (a required radio is group semantics, handled by
// Bind), everything else gets a non-blank rule. Attributes with values that
// do not parse, such as a non-integer minlength or a pattern that does not
// compile, are skipped rather than failing the import.
func Constraints(el dom.Element) []*rules.Rule {
	typ := strings.ToLower(el.Attr("type"))

	var rs []*rules.Rule
	if el.HasAttr("required") {
		switch typ {
		case "checkbox":
			rs = append(rs, rules.Checked())
		case "radio":
		default:
			rs = append(rs, rules.Required())
		}
	}

	if n, err := strconv.Atoi(el.Attr("minlength")); err == nil && n >= 0 {
		rs = append(rs, rules.MinLen(n))
	}
	if n, err := strconv.Atoi(el.Attr("maxlength")); err == nil && n >= 0 {
		rs = append(rs, rules.MaxLen(n))
	}

	if expr := el.Attr("pattern"); expr != "" {
		if _, err := regexp.Compile(expr); err == nil {
			rs = append(rs, rules.Pattern(expr, el.Attr("title")))
		}
	}

	switch typ {
	case "email":
		rs = append(rs, rules.ValidEmail())
	case "url":
		rs = append(rs, rules.ValidURL())
	case "number", "range":
		rs = append(rs, rules.Numeric())
		if f, err := strconv.ParseFloat(el.Attr("min"), 64); err == nil {
			rs = append(rs, rules.MinNumber(f))
		}
		if f, err := strconv.ParseFloat(el.Attr("max"), 64); err == nil {
			rs = append(rs, rules.MaxNumber(f))
		}
	}

	return rs
}
