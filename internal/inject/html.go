package inject

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoHead is returned when a document has no head element to append to.
var ErrNoHead = errors.New("document has no head element")

// HTMLDocument is a Document backed by a parsed HTML tree, for applying the
// palette to static pages.
type HTMLDocument struct {
	root *html.Node
}

// ParseHTML parses an HTML document. Missing html, head and body elements are
// synthesized by the parser.
func ParseHTML(r io.Reader) (*HTMLDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &HTMLDocument{root: root}, nil
}

// ReadHTMLFile parses the HTML file at path.
func ReadHTMLFile(path string) (*HTMLDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ParseHTML(f)
}

// Render writes the document as HTML.
func (d *HTMLDocument) Render(w io.Writer) error {
	if d == nil || d.root == nil {
		return errors.New("document is empty")
	}
	return html.Render(w, d.root)
}

// WriteFile renders the document to path.
func (d *HTMLDocument) WriteFile(path string) error {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// HasElement implements Document.
func (d *HTMLDocument) HasElement(id string) bool {
	return d.elementByID(id) != nil
}

// RemoveElement implements Document.
func (d *HTMLDocument) RemoveElement(id string) bool {
	n := d.elementByID(id)
	if n == nil || n.Parent == nil {
		return false
	}
	n.Parent.RemoveChild(n)
	return true
}

// AppendStyle implements Document.
func (d *HTMLDocument) AppendStyle(id, css string) error {
	head := d.find(func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Head
	})
	if head == nil {
		return ErrNoHead
	}

	style := &html.Node{
		Type:     html.ElementNode,
		Data:     "style",
		DataAtom: atom.Style,
		Attr:     []html.Attribute{{Key: "id", Val: id}},
	}
	style.AppendChild(&html.Node{Type: html.TextNode, Data: css})
	head.AppendChild(style)
	return nil
}

// CountElements returns how many elements carry id.
func (d *HTMLDocument) CountElements(id string) int {
	count := 0
	d.walk(func(n *html.Node) bool {
		if hasID(n, id) {
			count++
		}
		return false
	})
	return count
}

func (d *HTMLDocument) elementByID(id string) *html.Node {
	return d.find(func(n *html.Node) bool { return hasID(n, id) })
}

func (d *HTMLDocument) find(match func(*html.Node) bool) *html.Node {
	var found *html.Node
	d.walk(func(n *html.Node) bool {
		if match(n) {
			found = n
			return true
		}
		return false
	})
	return found
}

// walk visits nodes depth first until visit returns true.
func (d *HTMLDocument) walk(visit func(*html.Node) bool) {
	if d == nil || d.root == nil {
		return
	}
	var rec func(*html.Node) bool
	rec = func(n *html.Node) bool {
		if visit(n) {
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if rec(c) {
				return true
			}
		}
		return false
	}
	rec(d.root)
}

func hasID(n *html.Node, id string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Key == "id" && attr.Val == id {
			return true
		}
	}
	return false
}
