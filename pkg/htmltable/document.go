package htmltable

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dmitrymomot/rowfilter/pkg/rowfilter"
)

// Document is a parsed HTML document.
type Document struct {
	root *html.Node
}

var _ rowfilter.Document = (*Document)(nil)

// Parse reads an HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Join(ErrParse, err)
	}
	return &Document{root: root}, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Render writes the document to w. A nil Document renders nothing.
func (d *Document) Render(w io.Writer) error {
	if d == nil || d.root == nil {
		return nil
	}
	if err := html.Render(w, d.root); err != nil {
		return errors.Join(ErrRender, err)
	}
	return nil
}

// String renders the document to a string, or returns "" if rendering fails.
func (d *Document) String() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return ""
	}
	return b.String()
}

// InputValue returns the value attribute of the element with the given id.
// An element without a value attribute has an empty value.
func (d *Document) InputValue(id string) (string, bool) {
	n := d.byID(id)
	if n == nil {
		return "", false
	}
	v, _ := attr(n, "value")
	return v, true
}

// SetInputValue sets the value attribute of the element with the given id.
func (d *Document) SetInputValue(id, value string) bool {
	n := d.byID(id)
	if n == nil {
		return false
	}
	setAttr(n, "value", value)
	return true
}

// Table returns the element with the given id as a rowfilter.Table.
func (d *Document) Table(id string) (rowfilter.Table, bool) {
	n := d.byID(id)
	if n == nil {
		return nil, false
	}
	return &Table{node: n}, true
}

// byID returns nil when d is nil or holds no element with the id.
func (d *Document) byID(id string) *html.Node {
	if d == nil || d.root == nil || id == "" {
		return nil
	}
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		if v, ok := attr(n, "id"); ok && v == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Table is a table element inside a Document.
type Table struct {
	node *html.Node
}

// Rows returns every <tr> descendant of the table in document order,
// including rows of nested tables.
func (t *Table) Rows() []rowfilter.Row {
	if t == nil || t.node == nil {
		return nil
	}
	var rows []rowfilter.Row
	for _, n := range descendants(t.node, atom.Tr) {
		rows = append(rows, &Row{node: n})
	}
	return rows
}

// Row is a <tr> element.
type Row struct {
	node *html.Node
}

// FirstCell returns the first <td> descendant of the row.
// Rows made only of <th> cells have no first cell.
func (r *Row) FirstCell() (rowfilter.Cell, bool) {
	cells := descendants(r.node, atom.Td)
	if len(cells) == 0 {
		return nil, false
	}
	return cell{node: cells[0]}, true
}

// Visible reports whether the row has no "display: none" declaration.
func (r *Row) Visible() bool {
	style, _ := attr(r.node, "style")
	return !strings.EqualFold(styleDisplay(style), "none")
}

// SetVisible clears the display declaration or sets it to none.
func (r *Row) SetVisible(visible bool) {
	style, _ := attr(r.node, "style")
	value := "none"
	if visible {
		value = ""
	}
	style = setStyleDisplay(style, value)
	if style == "" {
		removeAttr(r.node, "style")
		return
	}
	setAttr(r.node, "style", style)
}

type cell struct {
	node *html.Node
}

// Text returns the text a reader sees in the cell: the concatenated text
// nodes, leaving out the contents of script, style and template elements.
func (c cell) Text() string {
	var b strings.Builder
	visibleText(&b, c.node)
	return b.String()
}

func visibleText(b *strings.Builder, n *html.Node) {
	switch {
	case n.Type == html.TextNode:
		b.WriteString(n.Data)
		return
	case n.Type == html.ElementNode && hiddenContent(n.DataAtom):
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		visibleText(b, c)
	}
}

func hiddenContent(a atom.Atom) bool {
	switch a {
	case atom.Script, atom.Style, atom.Template, atom.Noscript:
		return true
	default:
		return false
	}
}

// walk visits n and its descendants depth-first until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

func descendants(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, func(d *html.Node) bool {
			if d.Type == html.ElementNode && d.DataAtom == a {
				out = append(out, d)
			}
			return true
		})
	}
	return out
}
