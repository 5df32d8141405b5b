// Package xmltree wraps github.com/beevik/etree behind the narrow XML
// capability xdfgo needs: build a tree, parse one, read/write a single child
// element's text, and serialize back to bytes. Every XDF chunk that carries
// structured metadata (FileHeader, StreamHeader, StreamFooter) is an XML
// document at the wire level, and this package is the only place that talks
// to an XML library directly.
package xmltree

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/arloliu/xdfgo/errs"
)

// Element is a single node in an XML tree, rooted either by New or Parse.
type Element struct {
	el *etree.Element
}

// New creates a standalone element with the given tag name.
func New(tag string) *Element {
	return &Element{el: etree.NewElement(tag)}
}

// Parse parses an XDF XML payload and returns its root element.
func Parse(data []byte) (*Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidXML, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", errs.ErrInvalidXML)
	}

	return &Element{el: root}, nil
}

// Child returns the first direct child element named name, or nil if absent.
func (e *Element) Child(name string) *Element {
	if e == nil || e.el == nil {
		return nil
	}

	child := e.el.SelectElement(name)
	if child == nil {
		return nil
	}

	return &Element{el: child}
}

// Text returns the element's text content, trimmed of surrounding whitespace.
// Returns "" if the element is nil.
func (e *Element) Text() string {
	if e == nil || e.el == nil {
		return ""
	}

	return strings.TrimSpace(e.el.Text())
}

// RequireChildText returns name's text content, or ErrBadElement if the
// child is missing or empty.
func (e *Element) RequireChildText(name string) (string, error) {
	child := e.Child(name)
	if child == nil {
		return "", fmt.Errorf("%w: %s", errs.ErrBadElement, name)
	}

	text := child.Text()
	if text == "" {
		return "", fmt.Errorf("%w: %s is empty", errs.ErrBadElement, name)
	}

	return text, nil
}

// AppendChild appends a new child element named name with the given text and
// returns it, so callers can attach grandchildren (e.g. <desc> subtrees).
func (e *Element) AppendChild(name, text string) *Element {
	child := e.el.CreateElement(name)
	if text != "" {
		child.SetText(text)
	}

	return &Element{el: child}
}

// SetChildTextOverwrite sets name's text content, replacing any existing
// child of that name rather than appending a duplicate sibling.
func (e *Element) SetChildTextOverwrite(name, text string) *Element {
	if existing := e.el.SelectElement(name); existing != nil {
		e.el.RemoveChild(existing)
	}

	return e.AppendChild(name, text)
}

// AppendElement attaches an already-built subtree as a direct child,
// replacing any existing child of the same tag name. Used to graft a <desc>
// subtree accumulated separately onto a stream's <info> root.
func (e *Element) AppendElement(child *Element) {
	if existing := e.el.SelectElement(child.el.Tag); existing != nil {
		e.el.RemoveChild(existing)
	}

	e.el.AddChild(child.el.Copy())
}

// Bytes serializes the element (as the root of its own document) to XML
// bytes, with no leading XML declaration, matching the compact XDF
// convention of bare <info>...</info> / <info><desc>...</desc></info> blobs.
func (e *Element) Bytes() []byte {
	doc := etree.NewDocument()
	doc.SetRoot(e.el.Copy())

	data, err := doc.WriteToBytes()
	if err != nil {
		// etree only fails to serialize on an io.Writer error; WriteToBytes
		// writes to an in-memory buffer, so this path is unreachable.
		panic(err)
	}

	return data
}
