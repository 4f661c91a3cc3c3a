package styles

import "strings"

// Options holds the presentation for a field and its message element across
// validation outcomes. Class fields carry space-separated class lists, Style
// fields carry inline CSS text, and MessageContainer is a selector resolved
// within the bound form; when it is empty the message element is placed next
// to the field itself.
type Options struct {
	ErrorMsgClass     string
	ErrorMsgStyle     string
	ErrorFieldClass   string
	ErrorFieldStyle   string
	SuccessMsgClass   string
	SuccessMsgStyle   string
	SuccessFieldClass string
	SuccessFieldStyle string
	MessageContainer  string
}

// Default returns the baseline configuration: no classes, red error and green
// success inline styles, no message container. Options is a value type, so
// every call hands out an independent copy.
func Default() Options {
	return Options{
		ErrorMsgStyle:     "color: red;",
		ErrorFieldStyle:   "border-color: red;",
		SuccessMsgStyle:   "color: green;",
		SuccessFieldStyle: "border-color: green;",
	}
}

// Merge returns a copy of base with the overrides applied in order. Keys
// without an override keep base's value; later overrides of the same key win.
// Neither base nor any shared configuration is mutated.
func Merge(base Options, ovs ...Override) Options {
	merged := base
	for _, ov := range ovs {
		if ov != nil {
			ov(&merged)
		}
	}
	return merged
}

// Compose appends an inline-style overlay to existing style text, inserting
// the separating semicolon when needed. It is used to lay an error or success
// style over a field's original style attribute without losing it.
func Compose(text, overlay string) string {
	text = strings.TrimSpace(text)
	overlay = strings.TrimSpace(overlay)
	switch {
	case text == "":
		return overlay
	case overlay == "":
		return text
	}
	if !strings.HasSuffix(text, ";") {
		text += ";"
	}
	return text + " " + overlay
}
