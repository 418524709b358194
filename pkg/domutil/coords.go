package domutil

// Rect is an element's bounding rectangle in viewport coordinates, as
// reported by a bounding-box query. Fields follow the Geometry Interfaces
// shape.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Point is a resolved top/left coordinate pair.
type Point struct {
	Top  float64
	Left float64
}

// Metrics captures the page scroll and client-offset state at measurement
// time. Browsers disagree about where the scroll position lives, so all
// three historical sources are carried and resolved by priority.
type Metrics struct {
	WindowScrollX float64 // window.pageXOffset
	WindowScrollY float64 // window.pageYOffset
	RootScrollX   float64 // documentElement.scrollLeft
	RootScrollY   float64 // documentElement.scrollTop
	BodyScrollX   float64 // body.scrollLeft
	BodyScrollY   float64 // body.scrollTop

	RootClientTop  float64 // documentElement.clientTop
	RootClientLeft float64 // documentElement.clientLeft
	BodyClientTop  float64 // body.clientTop
	BodyClientLeft float64 // body.clientLeft
}

// GetCoords resolves box to a top/left pair. Viewport-relative by default;
// with pageRelative set, the current scroll offset is added and the document
// client border subtracted. Scroll and client values each come from the
// first non-zero source in window, root, body priority order, mirroring the
// cross-browser fallback chain.
func GetCoords(box Rect, m Metrics, pageRelative bool) Point {
	if !pageRelative {
		return Point{Top: box.Top, Left: box.Left}
	}
	scrollTop := firstNonZero(m.WindowScrollY, m.RootScrollY, m.BodyScrollY)
	scrollLeft := firstNonZero(m.WindowScrollX, m.RootScrollX, m.BodyScrollX)
	clientTop := firstNonZero(m.RootClientTop, m.BodyClientTop)
	clientLeft := firstNonZero(m.RootClientLeft, m.BodyClientLeft)
	return Point{
		Top:  box.Top + scrollTop - clientTop,
		Left: box.Left + scrollLeft - clientLeft,
	}
}

func firstNonZero(vs ...float64) float64 {
	for _, v := range vs {
		if v != 0 {
			return v
		}
	}
	return 0
}
