package dom

import (
	"fmt"
	"strings"
)

// selector is a parsed chain of compound selectors joined by the descendant
// combinator: the last compound must match the element itself and each
// earlier compound some strictly higher ancestor, in order.
type selector struct {
	compounds []compound
}

// compound matches a single element: an optional tag plus any number of id,
// class and attribute conditions.
type compound struct {
	tag     string
	id      string
	classes []string
	attrs   []attrCond
}

type attrCond struct {
	name     string
	value    string
	hasValue bool
}

// parseSelector parses the supported CSS subset. See ErrBadSelector for the
// grammar.
func parseSelector(s string) (selector, error) {
	parts := splitCompounds(s)
	if len(parts) == 0 {
		return selector{}, fmt.Errorf("%w: empty selector", ErrBadSelector)
	}

	sel := selector{compounds: make([]compound, 0, len(parts))}
	for _, part := range parts {
		c, err := parseCompound(part)
		if err != nil {
			return selector{}, err
		}
		sel.compounds = append(sel.compounds, c)
	}
	return sel, nil
}

// splitCompounds splits a selector on whitespace while keeping bracketed
// attribute conditions, including quoted values with spaces, intact.
func splitCompounds(s string) []string {
	var parts []string
	var quote byte
	depth := 0
	start := -1

	for i := 0; i < len(s); i++ {
		ch := s[i]
		if quote != 0 {
			if ch == quote {
				quote = 0
			}
			continue
		}
		switch ch {
		case '"', '\'':
			if depth > 0 {
				quote = ch
			}
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ' ', '\t':
			if depth == 0 {
				if start >= 0 {
					parts = append(parts, s[start:i])
					start = -1
				}
				continue
			}
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		parts = append(parts, s[start:])
	}
	return parts
}

func parseCompound(s string) (compound, error) {
	var c compound
	i := 0

	start := i
	for i < len(s) && isNameChar(s[i]) {
		i++
	}
	if i > start {
		c.tag = strings.ToLower(s[start:i])
	}

	for i < len(s) {
		switch s[i] {
		case '#':
			i++
			start = i
			for i < len(s) && isNameChar(s[i]) {
				i++
			}
			if i == start {
				return compound{}, fmt.Errorf("%w: missing id after # in %q", ErrBadSelector, s)
			}
			c.id = s[start:i]

		case '.':
			i++
			start = i
			for i < len(s) && isNameChar(s[i]) {
				i++
			}
			if i == start {
				return compound{}, fmt.Errorf("%w: missing class after . in %q", ErrBadSelector, s)
			}
			c.classes = append(c.classes, s[start:i])

		case '[':
			cond, next, err := parseAttrCond(s, i+1)
			if err != nil {
				return compound{}, err
			}
			c.attrs = append(c.attrs, cond)
			i = next

		default:
			return compound{}, fmt.Errorf("%w: unexpected %q in %q", ErrBadSelector, string(s[i]), s)
		}
	}
	return c, nil
}

// parseAttrCond parses "[name]" or "[name=value]" starting just past the
// opening bracket and returns the condition plus the index past the closing
// bracket.
func parseAttrCond(s string, i int) (attrCond, int, error) {
	start := i
	for i < len(s) && s[i] != '=' && s[i] != ']' {
		i++
	}
	if i >= len(s) {
		return attrCond{}, 0, fmt.Errorf("%w: unterminated attribute in %q", ErrBadSelector, s)
	}

	name := strings.TrimSpace(s[start:i])
	if name == "" {
		return attrCond{}, 0, fmt.Errorf("%w: missing attribute name in %q", ErrBadSelector, s)
	}

	if s[i] == ']' {
		return attrCond{name: name}, i + 1, nil
	}

	// Past the '='; the value may be quoted.
	i++
	var value string
	if i < len(s) && (s[i] == '"' || s[i] == '\'') {
		q := s[i]
		i++
		start = i
		for i < len(s) && s[i] != q {
			i++
		}
		if i >= len(s) {
			return attrCond{}, 0, fmt.Errorf("%w: unterminated quote in %q", ErrBadSelector, s)
		}
		value = s[start:i]
		i++
	} else {
		start = i
		for i < len(s) && s[i] != ']' {
			i++
		}
		value = s[start:i]
	}

	if i >= len(s) || s[i] != ']' {
		return attrCond{}, 0, fmt.Errorf("%w: unterminated attribute in %q", ErrBadSelector, s)
	}
	return attrCond{name: name, value: value, hasValue: true}, i + 1, nil
}

func isNameChar(ch byte) bool {
	return ch >= 'a' && ch <= 'z' ||
		ch >= 'A' && ch <= 'Z' ||
		ch >= '0' && ch <= '9' ||
		ch == '-' || ch == '_'
}

func (c compound) matches(el Element) bool {
	if c.tag != "" && el.Tag() != c.tag {
		return false
	}
	if c.id != "" && el.Attr("id") != c.id {
		return false
	}
	for _, class := range c.classes {
		if !el.HasClass(class) {
			return false
		}
	}
	for _, a := range c.attrs {
		if !a.hasValue {
			if !el.HasAttr(a.name) {
				return false
			}
			continue
		}
		if el.Attr(a.name) != a.value {
			return false
		}
	}
	return true
}

func (sel selector) matches(el Element) bool {
	last := len(sel.compounds) - 1
	if !sel.compounds[last].matches(el) {
		return false
	}

	ancestor := el.Parent()
	for i := last - 1; i >= 0; i-- {
		for {
			if ancestor == nil {
				return false
			}
			if sel.compounds[i].matches(ancestor) {
				break
			}
			ancestor = ancestor.Parent()
		}
		ancestor = ancestor.Parent()
	}
	return true
}
