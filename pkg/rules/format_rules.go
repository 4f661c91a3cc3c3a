package rules

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

// ValidEmail passes when the value is a well-formed email address for typical
// web use: parseable per RFC 5322 with a dotted, non-empty domain.
func ValidEmail() *Rule {
	return &Rule{
		Name:           "email",
		Message:        "Must be a valid email address.",
		TranslationKey: "validation.email",
		Check: func(s State) bool {
			value := strings.TrimSpace(s.Value())
			if value == "" {
				return true
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" {
				return false
			}

			// The mail parser accepts dotless domains; web forms should not.
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
	}
}

// ValidURL passes when the value is an absolute URL with a scheme and host.
func ValidURL() *Rule {
	return &Rule{
		Name:           "url",
		Message:        "Must be a valid URL.",
		TranslationKey: "validation.url",
		Check: func(s State) bool {
			value := strings.TrimSpace(s.Value())
			if value == "" {
				return true
			}

			u, err := url.ParseRequestURI(value)
			if err != nil {
				return false
			}

			return u.Scheme != "" && u.Host != ""
		},
	}
}

// Pattern passes when the whole value matches expr, mirroring the HTML
// pattern attribute's implicit anchoring. The optional desc becomes the
// failure message. An invalid expression panics at construction; use the
// registry when the expression comes from untrusted input.
func Pattern(expr, desc string) *Rule {
	re := regexp.MustCompile("^(?:" + expr + ")$")
	if desc == "" {
		desc = fmt.Sprintf("Must match the required format (%s).", expr)
	}
	return &Rule{
		Name:           "pattern",
		Message:        desc,
		TranslationKey: "validation.pattern",
		TranslationValues: map[string]any{
			"pattern": expr,
		},
		Check: func(s State) bool {
			v := s.Value()
			return v == "" || re.MatchString(v)
		},
	}
}
