package htmlform

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/agentflare-ai/go-xmldom"

	"github.com/kohguanzeh/formkit/pkg/dom"
)

// Parse reads form markup from r and imports it into a fresh memory
// document. See ParseBytes for the markup requirements.
func Parse(r io.Reader) (*dom.MemoryDocument, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrMalformedMarkup, err)
	}
	return ParseBytes(data)
}

// ParseBytes imports well-formed form markup into a fresh memory document.
// Tag and attribute names are lowercased on import, so lookups and selectors
// behave the same regardless of the source's casing. Element-free leaves
// keep their trimmed text content. Returns ErrMalformedMarkup when the
// markup cannot be decoded.
func ParseBytes(markup []byte) (*dom.MemoryDocument, error) {
	decoder := xmldom.NewDecoderFromBytes(markup)
	parsed, err := decoder.Decode()
	if err != nil {
		return nil, errors.Join(ErrMalformedMarkup, err)
	}

	root := parsed.DocumentElement()
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedMarkup)
	}

	doc := dom.NewMemoryDocument()
	doc.Root().AppendChild(convert(doc, root))
	return doc, nil
}

// convert copies one markup element and its subtree into doc's element
// model.
func convert(doc *dom.MemoryDocument, src xmldom.Element) dom.Element {
	el := doc.CreateElement(string(src.TagName()))

	attrs := src.Attributes()
	for i := uint(0); i < attrs.Length(); i++ {
		attr := attrs.Item(i)
		if attr == nil {
			continue
		}
		el.SetAttr(strings.ToLower(string(attr.NodeName())), string(attr.NodeValue()))
	}

	children := src.Children()
	if children.Length() == 0 {
		el.SetText(strings.TrimSpace(string(src.TextContent())))
		return el
	}
	for i := uint(0); i < children.Length(); i++ {
		child := children.Item(i)
		if child == nil {
			continue
		}
		el.AppendChild(convert(doc, child))
	}
	return el
}
