package domutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/net/html"

	"domkit/internal/dom"
)

func TestMain(m *testing.M) {
	// The debounce wrapper owns timers; make sure no test leaks one.
	goleak.VerifyTestMain(m)
}

// parseBody parses an HTML fragment and returns the resulting body element.
func parseBody(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	require.NoError(t, err)
	body := dom.Body(doc)
	require.NotNil(t, body)
	return body
}
