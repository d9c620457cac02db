// Package xmldoc provides a small nested-element XML document builder.
//
// Serializers in this module build an [Element] tree in memory —
// attributes and children keep the order they were added, so repeated
// serialization of the same tree is byte-identical — then render it with
// [Element.WriteTo]. Escaping of text and attribute values is delegated to
// encoding/xml.
package xmldoc

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Attr is a single name="value" attribute on an element.
type Attr struct {
	Name  string
	Value string
}

// Element is one node of an XML document: a name, ordered attributes,
// optional text content, and ordered child elements.
type Element struct {
	name     string
	attrs    []Attr
	text     string
	children []*Element
}

// NewElement creates an element with the given tag name.
func NewElement(name string) *Element {
	return &Element{name: name}
}

// Name returns the element's tag name.
func (e *Element) Name() string { return e.name }

// SetAttribute appends or replaces the attribute with the given name.
// First-set order is preserved on replacement.
func (e *Element) SetAttribute(name, value string) {
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
}

// SetFloatAttribute sets an attribute to the shortest decimal form that
// round-trips the given float64.
func (e *Element) SetFloatAttribute(name string, value float64) {
	e.SetAttribute(name, strconv.FormatFloat(value, 'g', -1, 64))
}

// Attribute returns the value of the named attribute, or "" when absent.
func (e *Element) Attribute(name string) string {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// Attrs returns the element's attributes in the order they were set. The
// returned slice is owned by the element and must not be modified.
func (e *Element) Attrs() []Attr { return e.attrs }

// SetText sets the element's character data.
func (e *Element) SetText(text string) { e.text = text }

// Text returns the element's character data.
func (e *Element) Text() string { return e.text }

// AddChild appends a child element.
func (e *Element) AddChild(c *Element) {
	e.children = append(e.children, c)
}

// Children returns the child elements in the order they were added. The
// returned slice is owned by the element and must not be modified.
func (e *Element) Children() []*Element { return e.children }

// Find returns the first descendant (depth-first, including e itself) with
// the given tag name, or nil when none exists.
func (e *Element) Find(name string) *Element {
	if e.name == name {
		return e
	}
	for _, c := range e.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant (depth-first, including e itself) with
// the given tag name.
func (e *Element) FindAll(name string) []*Element {
	var out []*Element
	if e.name == name {
		out = append(out, e)
	}
	for _, c := range e.children {
		out = append(out, c.FindAll(name)...)
	}
	return out
}

// WriteTo serializes the element tree to w, indenting nested elements with
// the given indent string per depth level. A trailing newline follows the
// closing tag. The first write error encountered is returned.
func (e *Element) WriteTo(w io.Writer, indent string) error {
	bw := bufio.NewWriter(w)
	e.write(bw, indent, 0)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write xml: %w", err)
	}
	return nil
}

// String renders the element tree with two-space indentation.
func (e *Element) String() string {
	var sb strings.Builder
	_ = e.WriteTo(&sb, "  ")
	return sb.String()
}

func (e *Element) write(bw *bufio.Writer, indent string, depth int) {
	prefix := strings.Repeat(indent, depth)
	bw.WriteString(prefix)
	bw.WriteByte('<')
	bw.WriteString(e.name)
	for _, a := range e.attrs {
		bw.WriteByte(' ')
		bw.WriteString(a.Name)
		bw.WriteString(`="`)
		writeEscaped(bw, a.Value)
		bw.WriteByte('"')
	}

	if len(e.children) == 0 && e.text == "" {
		bw.WriteString("/>\n")
		return
	}

	bw.WriteByte('>')
	if e.text != "" {
		writeEscaped(bw, e.text)
	}
	if len(e.children) > 0 {
		bw.WriteByte('\n')
		for _, c := range e.children {
			c.write(bw, indent, depth+1)
		}
		bw.WriteString(prefix)
	}
	bw.WriteString("</")
	bw.WriteString(e.name)
	bw.WriteString(">\n")
}

// writeEscaped writes s with XML special characters escaped. EscapeText
// only fails when the underlying writer does; bufio defers that error to
// Flush, which WriteTo checks.
func writeEscaped(bw *bufio.Writer, s string) {
	_ = xml.EscapeText(bw, []byte(s))
}
