// Package dom provides low-level primitives over golang.org/x/net/html node
// trees: attribute access, guarded child removal, and form value fields. The
// helpers in pkg/domutil and the CLI commands build on these.
package dom

import (
	"errors"
	"strings"

	"golang.org/x/net/html"
)

// ErrNotChild is returned when a removal names a node that is not currently
// a direct child of the given parent. This is the platform NotFoundError
// analog and is never wrapped by callers.
var ErrNotChild = errors.New("dom: node is not a child of the given parent")

// Attr returns the value of the named attribute, or "" when absent.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present, regardless of its
// value.
func HasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// SetAttr sets the named attribute, replacing an existing value in place.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes the named attribute if present.
func RemoveAttr(n *html.Node, key string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// Value returns the node's form value field.
func Value(n *html.Node) string { return Attr(n, "value") }

// SetValue overwrites the node's form value field.
func SetValue(n *html.Node, v string) { SetAttr(n, "value", v) }

// RemoveChild unlinks child from parent. When child is not currently a
// direct child of parent it returns ErrNotChild and the tree is untouched.
func RemoveChild(parent, child *html.Node) error {
	if child.Parent != parent {
		return ErrNotChild
	}
	parent.RemoveChild(child)
	return nil
}

// Children returns a snapshot of parent's direct element children in
// document order. Text and comment nodes are skipped; grandchildren are not
// visited.
func Children(parent *html.Node) []*html.Node {
	var out []*html.Node
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// Tag returns the node's tag name in upper case, the way the DOM reports
// tagName for HTML elements. Empty for non-element nodes.
func Tag(n *html.Node) string {
	if n.Type != html.ElementNode {
		return ""
	}
	return strings.ToUpper(n.Data)
}

// Body returns the document's body element, or nil when the tree has none.
func Body(doc *html.Node) *html.Node {
	if doc.Type == html.ElementNode && doc.Data == "body" {
		return doc
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if b := Body(c); b != nil {
			return b
		}
	}
	return nil
}
