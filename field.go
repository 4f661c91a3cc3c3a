package formkit

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kohguanzeh/formkit/pkg/dom"
	"github.com/kohguanzeh/formkit/pkg/logger"
	"github.com/kohguanzeh/formkit/pkg/rules"
	"github.com/kohguanzeh/formkit/pkg/styles"
)

// fieldEntry tracks one registered field: its ordered rules, resolved style
// and the state written during evaluation.
type fieldEntry struct {
	selector string
	rules    []*rules.Rule
	style    styles.Options

	evaluated   bool
	valid       bool
	lastMessage string

	// message is created lazily on first evaluation; originalStyle keeps the
	// field's style attribute from before the validator touched it.
	message       dom.Element
	originalStyle string
}

// groupEntry tracks one required group: its message, resolved style and the
// result of the last evaluation.
type groupEntry struct {
	name    string
	message string
	style   styles.Options

	evaluated bool
	valid     bool
}

// AddField registers the field matched by selector with the given rules. The
// first call for a selector creates the entry with the validator's default
// style plus the supplied overrides; later calls append rules and overlay
// further overrides onto the entry's current style. A *Rule already present
// on the entry is skipped, so re-registering a rule cannot duplicate it.
func (v *Validator) AddField(selector string, rs []*rules.Rule, ovs ...styles.Override) *Validator {
	entry, ok := v.fields[selector]
	if !ok {
		entry = &fieldEntry{
			selector: selector,
			style:    styles.Merge(v.defaultStyle, ovs...),
		}
		v.fields[selector] = entry
		v.fieldOrder = append(v.fieldOrder, selector)
	} else if len(ovs) > 0 {
		entry.style = styles.Merge(entry.style, ovs...)
	}

	for _, r := range rs {
		if r == nil || slices.Contains(entry.rules, r) {
			continue
		}
		entry.rules = append(entry.rules, r)
	}

	v.log.Debug("field registered", logger.Selector(selector), "rules", len(entry.rules))
	return v
}

// AddRequiredGroup registers a required radio/checkbox group by its name
// attribute: the group validates when at least one member is checked. An
// empty message gets a default derived from the humanized group name. Later
// calls overwrite the message and overlay style overrides.
func (v *Validator) AddRequiredGroup(name, message string, ovs ...styles.Override) *Validator {
	if message == "" {
		message = fmt.Sprintf("Please select an option for %s.", humanize(name))
	}

	entry, ok := v.groups[name]
	if !ok {
		entry = &groupEntry{
			name:    name,
			message: message,
			style:   styles.Merge(v.defaultStyle, ovs...),
		}
		v.groups[name] = entry
		v.groupOrder = append(v.groupOrder, name)
	} else {
		entry.message = message
		if len(ovs) > 0 {
			entry.style = styles.Merge(entry.style, ovs...)
		}
	}

	v.log.Debug("group registered", logger.GroupName(name))
	return v
}

// FieldValid reports the result of the selector's last evaluation; ok is
// false when the field is unregistered or not yet evaluated.
func (v *Validator) FieldValid(selector string) (valid, ok bool) {
	entry, found := v.fields[selector]
	if !found || !entry.evaluated {
		return false, false
	}
	return entry.valid, true
}

// GroupValid reports the result of the group's last evaluation; ok is false
// when the group is unregistered or not yet evaluated.
func (v *Validator) GroupValid(name string) (valid, ok bool) {
	entry, found := v.groups[name]
	if !found || !entry.evaluated {
		return false, false
	}
	return entry.valid, true
}

// humanize turns an attribute-style name like "plan_type" or "plan-type"
// into a label like "Plan Type".
func humanize(name string) string {
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return cases.Title(language.English).String(strings.TrimSpace(name))
}
