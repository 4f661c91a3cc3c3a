package dom

import (
	"fmt"
	"slices"
	"strings"
)

// MemoryDocument is the in-process Document implementation used in tests and
// for imported markup. A fresh document holds a single "body" root; elements
// created with CreateElement join the tree once appended under it.
type MemoryDocument struct {
	root *memoryElement
}

// NewMemoryDocument returns an empty document.
func NewMemoryDocument() *MemoryDocument {
	return &MemoryDocument{root: newMemoryElement("body")}
}

// Root returns the document's root element.
func (d *MemoryDocument) Root() Element {
	return d.root
}

func (d *MemoryDocument) Resolve(sel string) (Element, error) {
	parsed, err := parseSelector(sel)
	if err != nil {
		return nil, err
	}

	var found *memoryElement
	walk(d.root, func(el *memoryElement) bool {
		if parsed.matches(el) {
			found = el
			return false
		}
		return true
	})
	if found == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, sel)
	}
	return found, nil
}

func (d *MemoryDocument) ResolveAll(sel string) ([]Element, error) {
	parsed, err := parseSelector(sel)
	if err != nil {
		return nil, err
	}

	var found []Element
	walk(d.root, func(el *memoryElement) bool {
		if parsed.matches(el) {
			found = append(found, el)
		}
		return true
	})
	return found, nil
}

func (d *MemoryDocument) CreateElement(tag string) Element {
	return newMemoryElement(strings.ToLower(tag))
}

// walk visits el and its descendants depth-first in document order; visit
// returns false to stop early.
func walk(el *memoryElement, visit func(*memoryElement) bool) bool {
	if !visit(el) {
		return false
	}
	for _, child := range el.children {
		if !walk(child, visit) {
			return false
		}
	}
	return true
}

type memoryElement struct {
	dispatcher

	tag      string
	attrs    map[string]string
	parent   *memoryElement
	children []*memoryElement
	text     string

	// value and checked shadow the corresponding attributes once set,
	// mirroring the property/attribute split of live documents.
	value      string
	valueSet   bool
	checked    bool
	checkedSet bool
}

func newMemoryElement(tag string) *memoryElement {
	return &memoryElement{tag: tag, attrs: make(map[string]string)}
}

func (el *memoryElement) Tag() string {
	return el.tag
}

func (el *memoryElement) Attr(name string) string {
	return el.attrs[name]
}

func (el *memoryElement) SetAttr(name, value string) {
	if name == "" {
		return
	}
	el.attrs[name] = value
}

func (el *memoryElement) HasAttr(name string) bool {
	_, ok := el.attrs[name]
	return ok
}

func (el *memoryElement) RemoveAttr(name string) {
	delete(el.attrs, name)
}

func (el *memoryElement) Value() string {
	if el.valueSet {
		return el.value
	}
	return el.attrs["value"]
}

func (el *memoryElement) SetValue(value string) {
	el.value = value
	el.valueSet = true
}

func (el *memoryElement) Checked() bool {
	if !el.checkable() {
		return false
	}
	if el.checkedSet {
		return el.checked
	}
	return el.HasAttr("checked")
}

func (el *memoryElement) SetChecked(checked bool) {
	el.checked = checked
	el.checkedSet = true
}

func (el *memoryElement) checkable() bool {
	if el.tag != "input" {
		return false
	}
	typ := el.attrs["type"]
	return typ == "checkbox" || typ == "radio"
}

func (el *memoryElement) Text() string {
	if len(el.children) == 0 {
		return el.text
	}
	var b strings.Builder
	b.WriteString(el.text)
	for _, child := range el.children {
		b.WriteString(child.Text())
	}
	return b.String()
}

func (el *memoryElement) SetText(text string) {
	for _, child := range el.children {
		child.parent = nil
	}
	el.children = nil
	el.text = text
}

func (el *memoryElement) Style() string {
	return el.attrs["style"]
}

func (el *memoryElement) SetStyle(cssText string) {
	if cssText == "" {
		delete(el.attrs, "style")
		return
	}
	el.attrs["style"] = cssText
}

func (el *memoryElement) AddClass(names ...string) {
	classes := strings.Fields(el.attrs["class"])
	for _, group := range names {
		for _, name := range strings.Fields(group) {
			if !slices.Contains(classes, name) {
				classes = append(classes, name)
			}
		}
	}
	if len(classes) > 0 {
		el.attrs["class"] = strings.Join(classes, " ")
	}
}

func (el *memoryElement) RemoveClass(names ...string) {
	classes := strings.Fields(el.attrs["class"])
	if len(classes) == 0 {
		return
	}
	for _, group := range names {
		for _, name := range strings.Fields(group) {
			if i := slices.Index(classes, name); i >= 0 {
				classes = slices.Delete(classes, i, i+1)
			}
		}
	}
	if len(classes) == 0 {
		delete(el.attrs, "class")
		return
	}
	el.attrs["class"] = strings.Join(classes, " ")
}

func (el *memoryElement) HasClass(name string) bool {
	return slices.Contains(strings.Fields(el.attrs["class"]), name)
}

func (el *memoryElement) Visible() bool {
	return !el.HasAttr("hidden")
}

func (el *memoryElement) SetVisible(visible bool) {
	if visible {
		el.RemoveAttr("hidden")
		return
	}
	el.SetAttr("hidden", "")
}

func (el *memoryElement) Parent() Element {
	if el.parent == nil {
		return nil
	}
	return el.parent
}

// AppendChild accepts elements of this document implementation only; foreign
// elements are ignored.
func (el *memoryElement) AppendChild(child Element) {
	mc, ok := child.(*memoryElement)
	if !ok || mc == nil || mc == el {
		return
	}
	if mc.parent != nil {
		mc.parent.removeChild(mc)
	}
	mc.parent = el
	el.children = append(el.children, mc)
}

func (el *memoryElement) removeChild(mc *memoryElement) {
	for i, child := range el.children {
		if child == mc {
			el.children = slices.Delete(el.children, i, i+1)
			mc.parent = nil
			return
		}
	}
}

func (el *memoryElement) Find(sel string) (Element, error) {
	parsed, err := parseSelector(sel)
	if err != nil {
		return nil, err
	}

	var found *memoryElement
	for _, child := range el.children {
		walk(child, func(m *memoryElement) bool {
			if parsed.matches(m) {
				found = m
				return false
			}
			return true
		})
		if found != nil {
			break
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, sel)
	}
	return found, nil
}

func (el *memoryElement) FindAll(sel string) ([]Element, error) {
	parsed, err := parseSelector(sel)
	if err != nil {
		return nil, err
	}

	var found []Element
	for _, child := range el.children {
		walk(child, func(m *memoryElement) bool {
			if parsed.matches(m) {
				found = append(found, m)
			}
			return true
		})
	}
	return found, nil
}

func (el *memoryElement) AddEventListener(typ string, h Handler) {
	el.addListener(typ, h)
}

func (el *memoryElement) DispatchEvent(e *Event) bool {
	return el.dispatch(e)
}
