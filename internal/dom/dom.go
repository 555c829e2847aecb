// Package dom is a small mutable HTML document built on golang.org/x/net/html,
// enough to find containers by id and rewrite their contents.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"folio.dev/internal/page"
)

// Document is a parsed HTML page
type Document struct {
	root *html.Node
}

// Parse reads a complete HTML document
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return &Document{root: root}, nil
}

// ElementByID returns the first element with the given id, or nil
func (d *Document) ElementByID(id string) *Element {
	for n := range d.root.Descendants() {
		if n.Type == html.ElementNode && attr(n, "id") == id {
			return &Element{n: n}
		}
	}
	return nil
}

// Lookup adapts ElementByID to page.Lookup
func (d *Document) Lookup(id string) page.Element {
	if el := d.ElementByID(id); el != nil {
		return el
	}
	return nil
}

// Render writes the document as HTML
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document, ignoring write errors
func (d *Document) String() string {
	var buf bytes.Buffer
	_ = d.Render(&buf)
	return buf.String()
}

// Element is one element node of a document
type Element struct {
	n *html.Node
}

// NewElement creates a detached element, used to render a container on its own
func NewElement(tag, id string) *Element {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	if id != "" {
		n.Attr = []html.Attribute{{Key: "id", Val: id}}
	}
	return &Element{n: n}
}

// ID returns the element's id attribute
func (e *Element) ID() string { return attr(e.n, "id") }

// Clear removes all children
func (e *Element) Clear() {
	for c := e.n.FirstChild; c != nil; {
		next := c.NextSibling
		e.n.RemoveChild(c)
		c = next
	}
}

// SetInnerHTML replaces the element's children with the parsed markup
func (e *Element) SetInnerHTML(markup string) error {
	nodes, err := e.parse(markup)
	if err != nil {
		return err
	}
	e.Clear()
	for _, c := range nodes {
		e.n.AppendChild(c)
	}
	return nil
}

// AppendHTML parses markup and appends it after the existing children
func (e *Element) AppendHTML(markup string) error {
	nodes, err := e.parse(markup)
	if err != nil {
		return err
	}
	for _, c := range nodes {
		e.n.AppendChild(c)
	}
	return nil
}

// InnerHTML renders the element's children
func (e *Element) InnerHTML() (string, error) {
	var buf bytes.Buffer
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// HasClass reports whether name is in the class list
func (e *Element) HasClass(name string) bool {
	return slices.Contains(strings.Fields(attr(e.n, "class")), name)
}

// ToggleClass adds name to the class list if absent, removes it otherwise,
// and reports whether it is now present.
func (e *Element) ToggleClass(name string) bool {
	classes := strings.Fields(attr(e.n, "class"))
	present := false
	if i := slices.Index(classes, name); i >= 0 {
		classes = slices.Delete(classes, i, i+1)
	} else {
		classes = append(classes, name)
		present = true
	}
	e.SetAttr("class", strings.Join(classes, " "))
	return present
}

// Attr returns an attribute value
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces an attribute
func (e *Element) SetAttr(key, value string) {
	for i, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == key {
			e.n.Attr[i].Val = value
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: key, Val: value})
}

func (e *Element) parse(markup string) ([]*html.Node, error) {
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.n)
	if err != nil {
		return nil, fmt.Errorf("parsing fragment for #%s: %w", e.ID(), err)
	}
	return nodes, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}
