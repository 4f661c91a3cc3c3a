package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kohguanzeh/formkit/pkg/dom"
)

// buildDocument assembles a small signup form:
//
//	<body>
//	  <form id="signup" class="narrow">
//	    <div class="field">
//	      <input id="email" name="email" type="text"/>
//	    </div>
//	    <input name="plan" type="radio" value="basic"/>
//	    <input name="plan" type="radio" value="pro"/>
//	    <div id="messages"></div>
//	  </form>
//	</body>
func buildDocument(t *testing.T) (*dom.MemoryDocument, dom.Element) {
	t.Helper()

	doc := dom.NewMemoryDocument()
	form := doc.CreateElement("form")
	form.SetAttr("id", "signup")
	form.SetAttr("class", "narrow")
	doc.Root().AppendChild(form)

	field := doc.CreateElement("div")
	field.SetAttr("class", "field")
	form.AppendChild(field)

	email := doc.CreateElement("input")
	email.SetAttr("id", "email")
	email.SetAttr("name", "email")
	email.SetAttr("type", "text")
	field.AppendChild(email)

	for _, plan := range []string{"basic", "pro"} {
		radio := doc.CreateElement("input")
		radio.SetAttr("name", "plan")
		radio.SetAttr("type", "radio")
		radio.SetAttr("value", plan)
		form.AppendChild(radio)
	}

	messages := doc.CreateElement("div")
	messages.SetAttr("id", "messages")
	form.AppendChild(messages)

	return doc, form
}

func TestResolve(t *testing.T) {
	doc, form := buildDocument(t)

	t.Run("by id", func(t *testing.T) {
		el, err := doc.Resolve("#signup")
		require.NoError(t, err)
		assert.Equal(t, "form", el.Tag())
	})

	t.Run("by tag", func(t *testing.T) {
		el, err := doc.Resolve("input")
		require.NoError(t, err)
		assert.Equal(t, "email", el.Attr("id"))
	})

	t.Run("by class", func(t *testing.T) {
		el, err := doc.Resolve(".field")
		require.NoError(t, err)
		assert.Equal(t, "div", el.Tag())
	})

	t.Run("by attribute presence", func(t *testing.T) {
		el, err := doc.Resolve("[name]")
		require.NoError(t, err)
		assert.Equal(t, "email", el.Attr("name"))
	})

	t.Run("by attribute value", func(t *testing.T) {
		el, err := doc.Resolve("[name=plan]")
		require.NoError(t, err)
		assert.Equal(t, "basic", el.Attr("value"))
	})

	t.Run("by quoted attribute value", func(t *testing.T) {
		el, err := doc.Resolve(`[name="plan"]`)
		require.NoError(t, err)
		assert.Equal(t, "basic", el.Attr("value"))
	})

	t.Run("compound", func(t *testing.T) {
		el, err := doc.Resolve("input#email[type=text]")
		require.NoError(t, err)
		assert.Equal(t, "email", el.Attr("id"))
	})

	t.Run("descendant combinator", func(t *testing.T) {
		el, err := doc.Resolve("form .field input")
		require.NoError(t, err)
		assert.Equal(t, "email", el.Attr("id"))
	})

	t.Run("descendant combinator skips non-descendants", func(t *testing.T) {
		_, err := doc.Resolve(".field [name=plan]")
		assert.ErrorIs(t, err, dom.ErrNoMatch)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := doc.Resolve("#missing")
		assert.ErrorIs(t, err, dom.ErrNoMatch)
	})

	t.Run("bad selector", func(t *testing.T) {
		_, err := doc.Resolve("input::after")
		assert.ErrorIs(t, err, dom.ErrBadSelector)
	})

	t.Run("scoped find excludes the scope element", func(t *testing.T) {
		_, err := form.Find("#signup")
		assert.ErrorIs(t, err, dom.ErrNoMatch)
	})
}

func TestResolveAll(t *testing.T) {
	doc, form := buildDocument(t)

	t.Run("returns all matches in document order", func(t *testing.T) {
		els, err := doc.ResolveAll("[name=plan]")
		require.NoError(t, err)
		require.Len(t, els, 2)
		assert.Equal(t, "basic", els[0].Attr("value"))
		assert.Equal(t, "pro", els[1].Attr("value"))
	})

	t.Run("no match yields an empty result", func(t *testing.T) {
		els, err := doc.ResolveAll("select")
		require.NoError(t, err)
		assert.Empty(t, els)
	})

	t.Run("scoped variant", func(t *testing.T) {
		els, err := form.FindAll("input")
		require.NoError(t, err)
		assert.Len(t, els, 3)
	})
}

func TestElementState(t *testing.T) {
	doc := dom.NewMemoryDocument()

	t.Run("value falls back to the attribute until set", func(t *testing.T) {
		el := doc.CreateElement("input")
		el.SetAttr("value", "from-attr")
		assert.Equal(t, "from-attr", el.Value())

		el.SetValue("typed")
		assert.Equal(t, "typed", el.Value())

		el.SetValue("")
		assert.Equal(t, "", el.Value())
	})

	t.Run("checked honours only radio and checkbox inputs", func(t *testing.T) {
		box := doc.CreateElement("input")
		box.SetAttr("type", "checkbox")
		assert.False(t, box.Checked())
		box.SetChecked(true)
		assert.True(t, box.Checked())

		text := doc.CreateElement("input")
		text.SetAttr("type", "text")
		text.SetChecked(true)
		assert.False(t, text.Checked())
	})

	t.Run("checked attribute is the default state", func(t *testing.T) {
		radio := doc.CreateElement("input")
		radio.SetAttr("type", "radio")
		radio.SetAttr("checked", "")
		assert.True(t, radio.Checked())

		radio.SetChecked(false)
		assert.False(t, radio.Checked())
	})

	t.Run("classes", func(t *testing.T) {
		el := doc.CreateElement("div")
		el.AddClass("a b")
		el.AddClass("b", "c")
		assert.True(t, el.HasClass("a"))
		assert.True(t, el.HasClass("b"))
		assert.True(t, el.HasClass("c"))
		assert.Equal(t, "a b c", el.Attr("class"))

		el.RemoveClass("b")
		assert.False(t, el.HasClass("b"))
		assert.Equal(t, "a c", el.Attr("class"))

		el.RemoveClass("a c")
		assert.False(t, el.HasAttr("class"))
	})

	t.Run("empty class names are ignored", func(t *testing.T) {
		el := doc.CreateElement("div")
		el.AddClass("")
		assert.False(t, el.HasAttr("class"))
	})

	t.Run("visibility is the hidden attribute", func(t *testing.T) {
		el := doc.CreateElement("span")
		assert.True(t, el.Visible())

		el.SetVisible(false)
		assert.False(t, el.Visible())
		assert.True(t, el.HasAttr("hidden"))

		el.SetVisible(true)
		assert.True(t, el.Visible())
		assert.False(t, el.HasAttr("hidden"))
	})

	t.Run("style text", func(t *testing.T) {
		el := doc.CreateElement("input")
		el.SetStyle("color: red;")
		assert.Equal(t, "color: red;", el.Style())

		el.SetStyle("")
		assert.False(t, el.HasAttr("style"))
	})

	t.Run("text content", func(t *testing.T) {
		parent := doc.CreateElement("label")
		child := doc.CreateElement("span")
		child.SetText("inner")
		parent.AppendChild(child)
		assert.Equal(t, "inner", parent.Text())

		parent.SetText("replaced")
		assert.Equal(t, "replaced", parent.Text())
		assert.Nil(t, child.Parent())
	})
}

func TestTree(t *testing.T) {
	doc := dom.NewMemoryDocument()

	t.Run("created elements are detached", func(t *testing.T) {
		el := doc.CreateElement("span")
		assert.Nil(t, el.Parent())

		_, err := doc.Resolve("span")
		assert.ErrorIs(t, err, dom.ErrNoMatch)
	})

	t.Run("append attaches and reparents", func(t *testing.T) {
		a := doc.CreateElement("div")
		b := doc.CreateElement("div")
		child := doc.CreateElement("span")
		doc.Root().AppendChild(a)
		doc.Root().AppendChild(b)

		a.AppendChild(child)
		assert.Equal(t, a, child.Parent())

		b.AppendChild(child)
		assert.Equal(t, b, child.Parent())

		els, err := a.FindAll("span")
		require.NoError(t, err)
		assert.Empty(t, els)
	})

	t.Run("tag names are lower-cased", func(t *testing.T) {
		el := doc.CreateElement("INPUT")
		assert.Equal(t, "input", el.Tag())
	})
}
