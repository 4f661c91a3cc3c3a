package htmlform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kohguanzeh/formkit/pkg/dom"
	"github.com/kohguanzeh/formkit/pkg/htmlform"
)

func newControl(tag string, attrs map[string]string) dom.Element {
	el := dom.NewMemoryDocument().CreateElement(tag)
	for name, value := range attrs {
		el.SetAttr(name, value)
	}
	return el
}

func TestConstraints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		tag   string
		attrs map[string]string
		want  []string
	}{
		{
			name:  "required text input",
			tag:   "input",
			attrs: map[string]string{"type": "text", "required": "required"},
			want:  []string{"required"},
		},
		{
			name:  "required checkbox",
			tag:   "input",
			attrs: map[string]string{"type": "checkbox", "required": "required"},
			want:  []string{"checked"},
		},
		{
			name:  "required radio derives nothing",
			tag:   "input",
			attrs: map[string]string{"type": "radio", "required": "required"},
			want:  nil,
		},
		{
			name:  "length bounds",
			tag:   "input",
			attrs: map[string]string{"type": "text", "minlength": "2", "maxlength": "10"},
			want:  []string{"min_length", "max_length"},
		},
		{
			name:  "required email keeps the order",
			tag:   "input",
			attrs: map[string]string{"type": "email", "required": "required"},
			want:  []string{"required", "email"},
		},
		{
			name:  "url type",
			tag:   "input",
			attrs: map[string]string{"type": "url"},
			want:  []string{"url"},
		},
		{
			name:  "number with bounds",
			tag:   "input",
			attrs: map[string]string{"type": "number", "min": "1", "max": "10"},
			want:  []string{"numeric", "min", "max"},
		},
		{
			name:  "range type",
			tag:   "input",
			attrs: map[string]string{"type": "range"},
			want:  []string{"numeric"},
		},
		{
			name:  "pattern",
			tag:   "input",
			attrs: map[string]string{"type": "text", "pattern": "[a-z]+"},
			want:  []string{"pattern"},
		},
		{
			name:  "invalid pattern is skipped",
			tag:   "input",
			attrs: map[string]string{"type": "text", "pattern": "[unclosed"},
			want:  nil,
		},
		{
			name:  "non-integer minlength is skipped",
			tag:   "input",
			attrs: map[string]string{"type": "text", "minlength": "abc"},
			want:  nil,
		},
		{
			name:  "non-numeric bounds are skipped",
			tag:   "input",
			attrs: map[string]string{"type": "number", "min": "low"},
			want:  []string{"numeric"},
		},
		{
			name:  "textarea length",
			tag:   "textarea",
			attrs: map[string]string{"minlength": "10"},
			want:  []string{"min_length"},
		},
		{
			name:  "required select",
			tag:   "select",
			attrs: map[string]string{"required": "required"},
			want:  []string{"required"},
		},
		{
			name:  "unconstrained control",
			tag:   "input",
			attrs: map[string]string{"type": "text", "name": "nickname"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rs := htmlform.Constraints(newControl(tt.tag, tt.attrs))

			var names []string
			for _, r := range rs {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}

	t.Run("pattern title becomes the message", func(t *testing.T) {
		t.Parallel()

		rs := htmlform.Constraints(newControl("input", map[string]string{
			"pattern": "[a-z]+",
			"title":   "Lowercase letters only.",
		}))
		require.Len(t, rs, 1)
		assert.Equal(t, "Lowercase letters only.", rs[0].Message)
	})
}
