package styles_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kohguanzeh/formkit/pkg/styles"
)

func TestDefault(t *testing.T) {
	t.Run("returns independent copies", func(t *testing.T) {
		a := styles.Default()
		b := styles.Default()
		a.ErrorMsgClass = "changed"
		assert.Empty(t, b.ErrorMsgClass)
	})

	t.Run("is fully populated for the style keys", func(t *testing.T) {
		d := styles.Default()
		assert.NotEmpty(t, d.ErrorMsgStyle)
		assert.NotEmpty(t, d.ErrorFieldStyle)
		assert.NotEmpty(t, d.SuccessMsgStyle)
		assert.NotEmpty(t, d.SuccessFieldStyle)
		assert.Empty(t, d.MessageContainer)
	})
}

func TestMerge(t *testing.T) {
	t.Run("no overrides returns the base unchanged", func(t *testing.T) {
		base := styles.Default()
		assert.Equal(t, base, styles.Merge(base))
	})

	t.Run("writes only the overridden key", func(t *testing.T) {
		base := styles.Default()
		merged := styles.Merge(base, styles.WithErrorMsgClass("error-text"))

		assert.Equal(t, "error-text", merged.ErrorMsgClass)

		// Every other key keeps the base value.
		merged.ErrorMsgClass = base.ErrorMsgClass
		assert.Equal(t, base, merged)
	})

	t.Run("does not mutate the base", func(t *testing.T) {
		base := styles.Default()
		snapshot := base
		styles.Merge(base,
			styles.WithErrorMsgClass("a"),
			styles.WithSuccessFieldStyle("border: 1px solid;"),
		)
		assert.Equal(t, snapshot, base)
	})

	t.Run("later override of the same key wins", func(t *testing.T) {
		merged := styles.Merge(styles.Default(),
			styles.WithMessageContainer("#first"),
			styles.WithMessageContainer("#second"),
		)
		assert.Equal(t, "#second", merged.MessageContainer)
	})

	t.Run("message container is replaced wholesale", func(t *testing.T) {
		base := styles.Merge(styles.Default(), styles.WithMessageContainer("#errors"))
		merged := styles.Merge(base, styles.WithMessageContainer("#other"))
		assert.Equal(t, "#other", merged.MessageContainer)
	})

	t.Run("nil overrides are skipped", func(t *testing.T) {
		base := styles.Default()
		assert.Equal(t, base, styles.Merge(base, nil, nil))
	})
}

// overrideForKey pairs every Options key with its Override constructor and a
// getter so merge behavior can be checked key by key.
var overrideForKey = []struct {
	name string
	with func(string) styles.Override
	get  func(styles.Options) string
}{
	{"ErrorMsgClass", styles.WithErrorMsgClass, func(o styles.Options) string { return o.ErrorMsgClass }},
	{"ErrorMsgStyle", styles.WithErrorMsgStyle, func(o styles.Options) string { return o.ErrorMsgStyle }},
	{"ErrorFieldClass", styles.WithErrorFieldClass, func(o styles.Options) string { return o.ErrorFieldClass }},
	{"ErrorFieldStyle", styles.WithErrorFieldStyle, func(o styles.Options) string { return o.ErrorFieldStyle }},
	{"SuccessMsgClass", styles.WithSuccessMsgClass, func(o styles.Options) string { return o.SuccessMsgClass }},
	{"SuccessMsgStyle", styles.WithSuccessMsgStyle, func(o styles.Options) string { return o.SuccessMsgStyle }},
	{"SuccessFieldClass", styles.WithSuccessFieldClass, func(o styles.Options) string { return o.SuccessFieldClass }},
	{"SuccessFieldStyle", styles.WithSuccessFieldStyle, func(o styles.Options) string { return o.SuccessFieldStyle }},
	{"MessageContainer", styles.WithMessageContainer, func(o styles.Options) string { return o.MessageContainer }},
}

func TestMergeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	baseWithAllKeys := func(value string) styles.Options {
		var base styles.Options
		for _, key := range overrideForKey {
			key.with(value)(&base)
		}
		return base
	}

	properties.Property("merging no overrides is the identity", prop.ForAll(
		func(value string) bool {
			base := baseWithAllKeys(value)
			return styles.Merge(base) == base
		},
		gen.AlphaString(),
	))

	properties.Property("a single override touches exactly one key", prop.ForAll(
		func(keyIndex int, baseValue, overrideValue string) bool {
			key := overrideForKey[keyIndex]
			base := baseWithAllKeys(baseValue)
			merged := styles.Merge(base, key.with(overrideValue))

			if key.get(merged) != overrideValue {
				return false
			}
			for i, other := range overrideForKey {
				if i == keyIndex {
					continue
				}
				if other.get(merged) != baseValue {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, len(overrideForKey)-1),
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("the last override of a key wins", prop.ForAll(
		func(keyIndex int, first, second string) bool {
			key := overrideForKey[keyIndex]
			merged := styles.Merge(styles.Options{}, key.with(first), key.with(second))
			return key.get(merged) == second
		},
		gen.IntRange(0, len(overrideForKey)-1),
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		overlay  string
		expected string
	}{
		{"both empty", "", "", ""},
		{"empty text", "", "color: red;", "color: red;"},
		{"empty overlay", "width: 10px;", "", "width: 10px;"},
		{"appends with existing semicolon", "width: 10px;", "color: red;", "width: 10px; color: red;"},
		{"inserts missing semicolon", "width: 10px", "color: red;", "width: 10px; color: red;"},
		{"trims surrounding whitespace", "  width: 10px; ", " color: red; ", "width: 10px; color: red;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, styles.Compose(tt.text, tt.overlay))
		})
	}
}

func TestFromConfig(t *testing.T) {
	t.Run("empty config keeps the defaults", func(t *testing.T) {
		assert.Equal(t, styles.Default(), styles.FromConfig(styles.EnvConfig{}))
	})

	t.Run("set keys override the defaults", func(t *testing.T) {
		o := styles.FromConfig(styles.EnvConfig{
			ErrorFieldClass:  "is-invalid",
			MessageContainer: "#form-errors",
		})
		assert.Equal(t, "is-invalid", o.ErrorFieldClass)
		assert.Equal(t, "#form-errors", o.MessageContainer)
		assert.Equal(t, styles.Default().ErrorMsgStyle, o.ErrorMsgStyle)
	})
}

func TestFromEnv(t *testing.T) {
	t.Setenv("FORMKIT_ERROR_MSG_CLASS", "env-error")
	t.Setenv("FORMKIT_SUCCESS_FIELD_STYLE", "border-color: teal;")

	o, err := styles.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "env-error", o.ErrorMsgClass)
	assert.Equal(t, "border-color: teal;", o.SuccessFieldStyle)
	assert.Equal(t, styles.Default().ErrorFieldStyle, o.ErrorFieldStyle)
}
