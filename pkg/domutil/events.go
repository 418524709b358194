package domutil

import "golang.org/x/net/html"

// KeyCodeEscape is the legacy keyCode of the Escape key.
const KeyCodeEscape = 27

// Event carries the fields of a keyboard or pointer event that the
// dispatchers below consume. Target is the node the event fired on; it is
// unused for pure key events.
type Event struct {
	KeyCode int
	Target  *html.Node
}

// OnEscape invokes fn synchronously when ev carries the Escape key code. The
// event itself is not suppressed.
func OnEscape(ev Event, fn func()) {
	if ev.KeyCode == KeyCodeEscape {
		fn()
	}
}

// OnClickOutside invokes fn when ev's target is neither ref itself nor a
// node inside ref's subtree. Attaching and detaching the listener that feeds
// events here is the caller's job.
func OnClickOutside(ev Event, ref *html.Node, fn func()) {
	if ev.Target == ref || IsDescendant(ref, ev.Target) {
		return
	}
	fn()
}
