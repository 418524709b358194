package domutil

import (
	"golang.org/x/net/html"

	"domkit/internal/dom"
)

// DisabledAttr is the marker attribute toggled by DisableChildren and
// EnableChildren.
const DisabledAttr = "disabled"

// DisableChildren marks every direct element child of container as disabled,
// in document order. Grandchildren are left alone.
func DisableChildren(container *html.Node) {
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			dom.SetAttr(c, DisabledAttr, DisabledAttr)
		}
	}
}

// EnableChildren clears the disabled marker from every direct element child
// of container.
func EnableChildren(container *html.Node) {
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			dom.RemoveAttr(c, DisabledAttr)
		}
	}
}

// MirrorValue copies current's value onto opposite, overwriting whatever was
// there. Nothing is validated and no events fire.
func MirrorValue(current, opposite *html.Node) {
	dom.SetValue(opposite, dom.Value(current))
}
