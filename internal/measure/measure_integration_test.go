//go:build integration

package measure_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"domkit/internal/measure"
)

func TestSession_Coords_Integration(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `<html><body style="margin:0">
			<div style="height:2000px"></div>
			<div id="probe" style="position:absolute;top:1500px;left:40px;width:100px;height:20px"></div>
			<script>window.scrollTo(0, 600)</script>
		</body></html>`)
	}))
	defer ts.Close()

	sess, err := measure.NewSession(context.Background(), ts.URL, measure.DefaultOptions())
	require.NoError(t, err)
	defer sess.Close()

	rect, err := sess.Rect("#probe")
	require.NoError(t, err)
	assert.InDelta(t, 100, rect.Width, 1)

	// Page-relative coordinates are scroll-independent.
	page, err := sess.Coords("#probe", true)
	require.NoError(t, err)
	assert.InDelta(t, 1500, page.Top, 2)
	assert.InDelta(t, 40, page.Left, 2)

	// Viewport-relative coordinates shift with the scroll position.
	viewport, err := sess.Coords("#probe", false)
	require.NoError(t, err)
	assert.InDelta(t, 900, viewport.Top, 2)

	_, err = sess.Rect("#missing")
	assert.Error(t, err)
}
