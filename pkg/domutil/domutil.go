// Package domutil is a flat collection of standalone DOM and browser helper
// functions: count-based pluralization, ancestor checks, batch child removal,
// escape-key and outside-click dispatch, coordinate resolution, form value
// mirroring, deep object merge, range clamping, tag lookup, form
// enable/disable, and debouncing.
//
// Node trees are golang.org/x/net/html nodes. Every helper is stateless and
// synchronous except the debounce wrapper, whose only persisted state is the
// timer handle inside its closure.
package domutil
