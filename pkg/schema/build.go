package schema

import (
	"fmt"

	"github.com/kohguanzeh/formkit"
	"github.com/kohguanzeh/formkit/pkg/dom"
	"github.com/kohguanzeh/formkit/pkg/rules"
)

type buildConfig struct {
	registry rules.Registry
	vopts    []formkit.Option
}

// BuildOption configures how a definition is materialized.
type BuildOption func(*buildConfig)

// WithRegistry resolves rule names through reg instead of the default
// registry.
func WithRegistry(reg rules.Registry) BuildOption {
	return func(c *buildConfig) {
		if reg != nil {
			c.registry = reg
		}
	}
}

// WithValidatorOptions forwards options to the underlying formkit.New.
// Forwarded options are applied after the ones the definition derives, so a
// caller can override the definition's language or style keys.
func WithValidatorOptions(opts ...formkit.Option) BuildOption {
	return func(c *buildConfig) {
		c.vopts = append(c.vopts, opts...)
	}
}

// Build materializes the definition into a validator bound to doc. Rule
// names resolve through the registry; a rule definition carrying a message
// gets a copy of the built rule with that message and no translation key, so
// the explicit text always wins.
func (d *Definition) Build(doc dom.Document, opts ...BuildOption) (*formkit.Validator, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	cfg := buildConfig{registry: rules.DefaultRegistry()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var vopts []formkit.Option
	if d.Lang != "" {
		vopts = append(vopts, formkit.WithLanguage(d.Lang))
	}
	if ovs := d.Style.overrides(); len(ovs) > 0 {
		vopts = append(vopts, formkit.WithStyle(ovs...))
	}
	vopts = append(vopts, cfg.vopts...)

	v, err := formkit.New(doc, d.Form, vopts...)
	if err != nil {
		return nil, err
	}

	for _, f := range d.Fields {
		rs := make([]*rules.Rule, 0, len(f.Rules))
		for _, def := range f.Rules {
			r, err := cfg.registry.Build(def.Name, def.Param)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", f.Selector, err)
			}
			if def.Message != "" {
				r = withMessage(r, def.Message)
			}
			rs = append(rs, r)
		}
		v.AddField(f.Selector, rs, f.Style.overrides()...)
	}

	for _, g := range d.Groups {
		v.AddRequiredGroup(g.Name, g.Message, g.Style.overrides()...)
	}

	return v, nil
}

// withMessage copies a rule with its displayed message replaced and its
// translation cleared.
func withMessage(r *rules.Rule, message string) *rules.Rule {
	copied := *r
	copied.Message = message
	copied.TranslationKey = ""
	copied.TranslationValues = nil
	return &copied
}
