package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kohguanzeh/formkit/pkg/i18n"
)

func testCatalog() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"validation.required":   "This field is required.",
			"validation.min_length": "Needs at least %{min} characters.",
			"welcome":               "Hello, %{name}!",
		},
		"de": {
			"validation.required": "Dieses Feld ist erforderlich.",
		},
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("valid catalog", func(t *testing.T) {
		t.Parallel()

		tr, err := i18n.New(testCatalog())
		require.NoError(t, err)
		require.NotNil(t, tr)
	})

	t.Run("empty catalog", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.New(nil)
		require.ErrorIs(t, err, i18n.ErrEmptyCatalog)

		_, err = i18n.New(map[string]map[string]string{})
		require.ErrorIs(t, err, i18n.ErrEmptyCatalog)
	})

	t.Run("empty language code", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.New(map[string]map[string]string{
			"": {"key": "value"},
		})
		require.ErrorIs(t, err, i18n.ErrInvalidCatalog)
	})

	t.Run("nil translations map", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.New(map[string]map[string]string{
			"en": nil,
		})
		require.ErrorIs(t, err, i18n.ErrInvalidCatalog)
	})

	t.Run("catalog is copied", func(t *testing.T) {
		t.Parallel()

		catalog := testCatalog()
		tr, err := i18n.New(catalog)
		require.NoError(t, err)

		catalog["en"]["validation.required"] = "mutated"
		assert.Equal(t, "This field is required.", tr.T("en", "validation.required"))
	})
}

func TestT(t *testing.T) {
	t.Parallel()

	tr, err := i18n.New(testCatalog())
	require.NoError(t, err)

	t.Run("direct hit", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "This field is required.", tr.T("en", "validation.required"))
	})

	t.Run("interpolation", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Needs at least 8 characters.", tr.T("en", "validation.min_length", "min", "8"))
		assert.Equal(t, "Hello, John!", tr.T("en", "welcome", "name", "John"))
	})

	t.Run("unknown placeholder kept", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Hello, %{name}!", tr.T("en", "welcome", "other", "x"))
	})

	t.Run("odd trailing argument ignored", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Hello, John!", tr.T("en", "welcome", "name", "John", "dangling"))
	})

	t.Run("falls back to default language", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Needs at least 3 characters.", tr.T("de", "validation.min_length", "min", "3"))
	})

	t.Run("missing everywhere returns key", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "validation.unknown", tr.T("en", "validation.unknown"))
		assert.Equal(t, "validation.unknown", tr.T("fr", "validation.unknown"))
	})

	t.Run("fallback to key disabled", func(t *testing.T) {
		t.Parallel()

		strict, err := i18n.New(testCatalog(), i18n.WithFallbackToKey(false))
		require.NoError(t, err)

		assert.Empty(t, strict.T("en", "validation.unknown"))
		assert.Equal(t, "This field is required.", strict.T("en", "validation.required"))
	})
}

func TestTd(t *testing.T) {
	t.Parallel()

	tr, err := i18n.New(testCatalog())
	require.NoError(t, err)

	t.Run("translation wins over default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Dieses Feld ist erforderlich.",
			tr.Td("de", "validation.required", "This field is required."))
	})

	t.Run("missing key uses default value", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Must be a valid email address.",
			tr.Td("de", "validation.email", "Must be a valid email address."))
	})

	t.Run("default value interpolates", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "At most 20 characters.",
			tr.Td("fr", "validation.max_length", "At most %{max} characters.", "max", "20"))
	})
}

func TestHas(t *testing.T) {
	t.Parallel()

	tr, err := i18n.New(testCatalog())
	require.NoError(t, err)

	assert.True(t, tr.Has("en", "validation.required"))
	assert.True(t, tr.Has("de", "validation.required"))
	assert.False(t, tr.Has("de", "validation.min_length"))
	assert.False(t, tr.Has("fr", "validation.required"))
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	tr, err := i18n.New(testCatalog())
	require.NoError(t, err)

	assert.Equal(t, []string{"de", "en"}, tr.Languages())
}

func TestWithDefaultLanguage(t *testing.T) {
	t.Parallel()

	tr, err := i18n.New(testCatalog(), i18n.WithDefaultLanguage("de"))
	require.NoError(t, err)

	// French has no catalog; the configured default language takes over.
	assert.Equal(t, "Dieses Feld ist erforderlich.", tr.T("fr", "validation.required"))
}
