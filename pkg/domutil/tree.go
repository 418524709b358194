package domutil

import (
	"strings"

	"golang.org/x/net/html"

	"domkit/internal/dom"
)

// IsDescendant reports whether node sits anywhere inside ancestor's subtree.
// The walk starts at node's parent, so a node does not count as its own
// descendant.
func IsDescendant(ancestor, node *html.Node) bool {
	for p := node.Parent; p != nil; p = p.Parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// RemoveChildren removes the listed nodes from parent, in order. A node that
// is not currently a child of parent stops the sweep with dom.ErrNotChild;
// removals already applied are not rolled back.
func RemoveChildren(parent *html.Node, children ...*html.Node) error {
	for _, c := range children {
		if err := dom.RemoveChild(parent, c); err != nil {
			return err
		}
	}
	return nil
}

// FindTag scans parent's direct children for the given upper-case tag name.
// Later matches overwrite earlier ones, so the LAST matching child in
// document order is returned. Nil when no child matches.
func FindTag(parent *html.Node, tag string) *html.Node {
	var found *html.Node
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && strings.ToUpper(c.Data) == tag {
			found = c
		}
	}
	return found
}
