// Package measure resolves live element geometry through a headless
// browser. It is the production source for the Rect and Metrics values that
// domutil.GetCoords consumes; the browser itself stays an opaque
// collaborator behind this package.
package measure

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/google/uuid"

	"domkit/pkg/domutil"
)

// Options controls how the browser is launched.
type Options struct {
	Headless bool
	Timeout  time.Duration
}

// DefaultOptions returns the settings the CLI uses.
func DefaultOptions() Options {
	return Options{Headless: true, Timeout: 30 * time.Second}
}

// Session owns one browser page pointed at a single URL.
type Session struct {
	ID      string
	browser *rod.Browser
	page    *rod.Page
}

// NewSession launches a browser, opens url and waits for the load event.
func NewSession(ctx context.Context, url string, opts Options) (*Session, error) {
	controlURL, err := launcher.New().Headless(opts.Headless).Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chrome: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		_ = browser.Close()
		return nil, fmt.Errorf("open page: %w", err)
	}
	if opts.Timeout > 0 {
		page = page.Timeout(opts.Timeout)
	}
	if err := page.WaitLoad(); err != nil {
		_ = browser.Close()
		return nil, fmt.Errorf("wait for load: %w", err)
	}

	return &Session{
		ID:      uuid.NewString(),
		browser: browser,
		page:    page,
	}, nil
}

// Close tears the page and browser down.
func (s *Session) Close() error {
	if s.browser == nil {
		return nil
	}
	err := s.browser.Close()
	s.browser = nil
	s.page = nil
	return err
}

// Rect returns the bounding rectangle of the first element matching the CSS
// selector, in viewport coordinates.
func (s *Session) Rect(selector string) (domutil.Rect, error) {
	res, err := s.page.Evaluate(&rod.EvalOptions{
		JS: `(sel) => {
			const el = document.querySelector(sel);
			if (!el) return null;
			const r = el.getBoundingClientRect();
			return { top: r.top, left: r.left, width: r.width, height: r.height };
		}`,
		JSArgs:  []interface{}{selector},
		ByValue: true,
	})
	if err != nil {
		return domutil.Rect{}, fmt.Errorf("query %q: %w", selector, err)
	}
	if res == nil || res.Value.Nil() {
		return domutil.Rect{}, fmt.Errorf("no element matches %q", selector)
	}
	v := res.Value
	return domutil.Rect{
		Top:    v.Get("top").Num(),
		Left:   v.Get("left").Num(),
		Width:  v.Get("width").Num(),
		Height: v.Get("height").Num(),
	}, nil
}

// Metrics reads the page's current scroll and client-offset state.
func (s *Session) Metrics() (domutil.Metrics, error) {
	res, err := s.page.Evaluate(&rod.EvalOptions{
		JS: `() => ({
			wx: window.pageXOffset, wy: window.pageYOffset,
			rx: document.documentElement.scrollLeft, ry: document.documentElement.scrollTop,
			bx: document.body ? document.body.scrollLeft : 0, by: document.body ? document.body.scrollTop : 0,
			rct: document.documentElement.clientTop, rcl: document.documentElement.clientLeft,
			bct: document.body ? document.body.clientTop : 0, bcl: document.body ? document.body.clientLeft : 0
		})`,
		ByValue: true,
	})
	if err != nil {
		return domutil.Metrics{}, fmt.Errorf("read page metrics: %w", err)
	}
	v := res.Value
	return domutil.Metrics{
		WindowScrollX:  v.Get("wx").Num(),
		WindowScrollY:  v.Get("wy").Num(),
		RootScrollX:    v.Get("rx").Num(),
		RootScrollY:    v.Get("ry").Num(),
		BodyScrollX:    v.Get("bx").Num(),
		BodyScrollY:    v.Get("by").Num(),
		RootClientTop:  v.Get("rct").Num(),
		RootClientLeft: v.Get("rcl").Num(),
		BodyClientTop:  v.Get("bct").Num(),
		BodyClientLeft: v.Get("bcl").Num(),
	}, nil
}

// Coords measures selector and resolves it with domutil.GetCoords, either
// viewport- or page-relative.
func (s *Session) Coords(selector string, pageRelative bool) (domutil.Point, error) {
	rect, err := s.Rect(selector)
	if err != nil {
		return domutil.Point{}, err
	}
	metrics, err := s.Metrics()
	if err != nil {
		return domutil.Point{}, err
	}
	return domutil.GetCoords(rect, metrics, pageRelative), nil
}
