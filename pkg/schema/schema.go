package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kohguanzeh/formkit/pkg/styles"
)

// Definition describes one form's validation setup as plain data.
type Definition struct {
	// Form is the selector the validator binds to.
	Form string `yaml:"form" json:"form"`

	// Lang selects the display language for translated messages.
	Lang string `yaml:"lang,omitempty" json:"lang,omitempty"`

	// Style overlays the validator's default style.
	Style *StyleDef `yaml:"style,omitempty" json:"style,omitempty"`

	Fields []FieldDef `yaml:"fields,omitempty" json:"fields,omitempty"`
	Groups []GroupDef `yaml:"groups,omitempty" json:"groups,omitempty"`
}

// FieldDef describes one validated field.
type FieldDef struct {
	Selector string    `yaml:"selector" json:"selector"`
	Rules    []RuleDef `yaml:"rules" json:"rules"`
	Style    *StyleDef `yaml:"style,omitempty" json:"style,omitempty"`
}

// GroupDef describes one required group of checkable inputs.
type GroupDef struct {
	Name    string    `yaml:"name" json:"name"`
	Message string    `yaml:"message,omitempty" json:"message,omitempty"`
	Style   *StyleDef `yaml:"style,omitempty" json:"style,omitempty"`
}

// RuleDef names a rule from the registry, with an optional parameter and an
// optional replacement message. It decodes from either a scalar
// ("min_length=8") or a mapping ({name, param, message}).
type RuleDef struct {
	Name    string `yaml:"name" json:"name"`
	Param   string `yaml:"param,omitempty" json:"param,omitempty"`
	Message string `yaml:"message,omitempty" json:"message,omitempty"`
}

// UnmarshalYAML implements yaml.Unmarshaler, accepting the scalar and
// mapping rule forms.
func (r *RuleDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var spec string
		if err := node.Decode(&spec); err != nil {
			return err
		}
		r.setSpec(spec)
		return nil
	case yaml.MappingNode:
		type alias RuleDef
		var a alias
		if err := node.Decode(&a); err != nil {
			return err
		}
		*r = RuleDef(a)
		return nil
	}
	return fmt.Errorf("rule must be a scalar or a mapping, got node kind %d", node.Kind)
}

// UnmarshalJSON implements json.Unmarshaler, accepting the string and
// object rule forms.
func (r *RuleDef) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var spec string
		if err := json.Unmarshal(data, &spec); err != nil {
			return err
		}
		r.setSpec(spec)
		return nil
	}

	type alias RuleDef
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = RuleDef(a)
	return nil
}

// setSpec splits the scalar "name=param" form.
func (r *RuleDef) setSpec(spec string) {
	name, param, _ := strings.Cut(spec, "=")
	r.Name = strings.TrimSpace(name)
	r.Param = strings.TrimSpace(param)
}

// StyleDef carries optional style overrides. Pointer fields distinguish an
// explicitly empty value, which clears the key, from an absent one, which
// keeps the default.
type StyleDef struct {
	ErrorMsgClass     *string `yaml:"error_msg_class,omitempty" json:"error_msg_class,omitempty"`
	ErrorMsgStyle     *string `yaml:"error_msg_style,omitempty" json:"error_msg_style,omitempty"`
	ErrorFieldClass   *string `yaml:"error_field_class,omitempty" json:"error_field_class,omitempty"`
	ErrorFieldStyle   *string `yaml:"error_field_style,omitempty" json:"error_field_style,omitempty"`
	SuccessMsgClass   *string `yaml:"success_msg_class,omitempty" json:"success_msg_class,omitempty"`
	SuccessMsgStyle   *string `yaml:"success_msg_style,omitempty" json:"success_msg_style,omitempty"`
	SuccessFieldClass *string `yaml:"success_field_class,omitempty" json:"success_field_class,omitempty"`
	SuccessFieldStyle *string `yaml:"success_field_style,omitempty" json:"success_field_style,omitempty"`
	MessageContainer  *string `yaml:"message_container,omitempty" json:"message_container,omitempty"`
}

// overrides converts the set keys into style overrides; a nil StyleDef
// yields none.
func (s *StyleDef) overrides() []styles.Override {
	if s == nil {
		return nil
	}

	var ovs []styles.Override
	add := func(val *string, with func(string) styles.Override) {
		if val != nil {
			ovs = append(ovs, with(*val))
		}
	}
	add(s.ErrorMsgClass, styles.WithErrorMsgClass)
	add(s.ErrorMsgStyle, styles.WithErrorMsgStyle)
	add(s.ErrorFieldClass, styles.WithErrorFieldClass)
	add(s.ErrorFieldStyle, styles.WithErrorFieldStyle)
	add(s.SuccessMsgClass, styles.WithSuccessMsgClass)
	add(s.SuccessMsgStyle, styles.WithSuccessMsgStyle)
	add(s.SuccessFieldClass, styles.WithSuccessFieldClass)
	add(s.SuccessFieldStyle, styles.WithSuccessFieldStyle)
	add(s.MessageContainer, styles.WithMessageContainer)
	return ovs
}

// Validate checks the definition's structure: a form selector, at least one
// field or group, selectors and rule names everywhere they are required.
// Rule names are not resolved here; Build does that against its registry.
func (d *Definition) Validate() error {
	if d == nil {
		return ErrEmptyDefinition
	}
	if strings.TrimSpace(d.Form) == "" {
		return fmt.Errorf("%w: no form selector", ErrEmptyDefinition)
	}
	if len(d.Fields) == 0 && len(d.Groups) == 0 {
		return fmt.Errorf("%w: no fields or groups", ErrEmptyDefinition)
	}

	for i, f := range d.Fields {
		if strings.TrimSpace(f.Selector) == "" {
			return fmt.Errorf("%w: field %d", ErrMissingSelector, i)
		}
		if len(f.Rules) == 0 {
			return fmt.Errorf("%w: field %s has no rules", ErrBadDefinition, f.Selector)
		}
		for _, r := range f.Rules {
			if strings.TrimSpace(r.Name) == "" {
				return fmt.Errorf("%w: field %s has an unnamed rule", ErrBadDefinition, f.Selector)
			}
		}
	}
	for i, g := range d.Groups {
		if strings.TrimSpace(g.Name) == "" {
			return fmt.Errorf("%w: group %d has no name", ErrBadDefinition, i)
		}
	}
	return nil
}
