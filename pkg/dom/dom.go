package dom

// Document is the root capability the validator needs from a document:
// resolving selectors and creating elements.
type Document interface {
	// Resolve returns the first element matching selector in document order,
	// or an error wrapping ErrNoMatch.
	Resolve(selector string) (Element, error)

	// ResolveAll returns every element matching selector in document order.
	// No match is not an error; the result is empty.
	ResolveAll(selector string) ([]Element, error)

	// CreateElement returns a detached element with the given tag. It joins
	// the document once placed with AppendChild.
	CreateElement(tag string) Element
}

// Element is a single document node with the capabilities form validation
// relies on. Class methods accept space-separated class lists; visibility is
// backed by the hidden attribute.
type Element interface {
	// Tag returns the lower-case tag name.
	Tag() string

	Attr(name string) string
	SetAttr(name, value string)
	HasAttr(name string) bool
	RemoveAttr(name string)

	// Value is the field's current value; it falls back to the value
	// attribute until explicitly set.
	Value() string
	SetValue(value string)

	// Checked reports the checked state. Only radio and checkbox inputs can
	// be checked; any other element reports false.
	Checked() bool
	SetChecked(checked bool)

	// Text returns the node's text content including descendants. SetText
	// replaces any children with the given text.
	Text() string
	SetText(text string)

	// Style is the element's inline style text.
	Style() string
	SetStyle(cssText string)

	AddClass(names ...string)
	RemoveClass(names ...string)
	HasClass(name string) bool

	Visible() bool
	SetVisible(visible bool)

	// Parent returns the parent element, or nil for a detached element or
	// the document root.
	Parent() Element

	// AppendChild places child last under this element, detaching it from
	// any previous parent.
	AppendChild(child Element)

	// Find returns the first descendant matching selector, or an error
	// wrapping ErrNoMatch. The element itself is not considered.
	Find(selector string) (Element, error)

	// FindAll returns every descendant matching selector in document order.
	FindAll(selector string) ([]Element, error)
}

// Handler receives a dispatched event.
type Handler func(*Event)

// EventTarget is implemented by elements that support event listeners.
// Callers discover it with a type assertion; elements without it simply
// cannot be listened to.
type EventTarget interface {
	// AddEventListener registers h for events of the given type. Listeners
	// run in registration order.
	AddEventListener(typ string, h Handler)

	// DispatchEvent delivers e to the listeners registered for its type and
	// reports whether the default action may proceed, i.e. no listener
	// called PreventDefault.
	DispatchEvent(e *Event) bool
}
