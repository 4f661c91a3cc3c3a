package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kohguanzeh/formkit/pkg/dom"
)

func submitTarget(t *testing.T) dom.EventTarget {
	t.Helper()

	doc := dom.NewMemoryDocument()
	form := doc.CreateElement("form")
	doc.Root().AppendChild(form)

	target, ok := form.(dom.EventTarget)
	require.True(t, ok, "memory elements support event listeners")
	return target
}

func TestDispatchEvent(t *testing.T) {
	t.Run("listeners run in registration order", func(t *testing.T) {
		target := submitTarget(t)

		var order []string
		target.AddEventListener(dom.EventSubmit, func(*dom.Event) { order = append(order, "first") })
		target.AddEventListener(dom.EventSubmit, func(*dom.Event) { order = append(order, "second") })

		proceed := target.DispatchEvent(dom.NewEvent(dom.EventSubmit))
		assert.True(t, proceed)
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("prevent default is reported by dispatch", func(t *testing.T) {
		target := submitTarget(t)
		target.AddEventListener(dom.EventSubmit, func(e *dom.Event) { e.PreventDefault() })

		e := dom.NewEvent(dom.EventSubmit)
		proceed := target.DispatchEvent(e)
		assert.False(t, proceed)
		assert.True(t, e.DefaultPrevented())
	})

	t.Run("stop immediate propagation halts delivery", func(t *testing.T) {
		target := submitTarget(t)

		reached := false
		target.AddEventListener(dom.EventSubmit, func(e *dom.Event) { e.StopImmediatePropagation() })
		target.AddEventListener(dom.EventSubmit, func(*dom.Event) { reached = true })

		target.DispatchEvent(dom.NewEvent(dom.EventSubmit))
		assert.False(t, reached)
	})

	t.Run("events of other types are not delivered", func(t *testing.T) {
		target := submitTarget(t)

		called := false
		target.AddEventListener("change", func(*dom.Event) { called = true })

		target.DispatchEvent(dom.NewEvent(dom.EventSubmit))
		assert.False(t, called)
	})

	t.Run("dispatch with no listeners proceeds", func(t *testing.T) {
		target := submitTarget(t)
		assert.True(t, target.DispatchEvent(dom.NewEvent(dom.EventSubmit)))
	})
}
