package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kohguanzeh/formkit/pkg/logger"
)

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("wraps error under error key", func(t *testing.T) {
		t.Parallel()

		err := errors.New("boom")
		attr := logger.Error(err)
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, err, attr.Value.Any())
	})

	t.Run("nil error yields empty attr", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, slog.Attr{}, logger.Error(nil))
	})
}

func TestDomainAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.String("component", "formkit"), logger.Component("formkit"))
	assert.Equal(t, slog.String("selector", "#email"), logger.Selector("#email"))
	assert.Equal(t, slog.String("rule", "required"), logger.RuleName("required"))
	assert.Equal(t, slog.String("group", "plan"), logger.GroupName("plan"))
}
