package domutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"domkit/internal/dom"
)

func TestDisableEnableChildren(t *testing.T) {
	body := parseBody(t, `
		<fieldset>
			<input id="one">
			<select id="two"><option id="grand">x</option></select>
			<button id="three">go</button>
		</fieldset>`)
	fieldset := dom.Children(body)[0]
	kids := dom.Children(fieldset)
	require.Len(t, kids, 3)
	grand := dom.Children(kids[1])[0]

	DisableChildren(fieldset)
	for _, c := range kids {
		assert.True(t, dom.HasAttr(c, DisabledAttr), "child %s", dom.Attr(c, "id"))
	}
	// Grandchildren stay untouched in both directions.
	assert.False(t, dom.HasAttr(grand, DisabledAttr))
	assert.False(t, dom.HasAttr(fieldset, DisabledAttr))

	EnableChildren(fieldset)
	for _, c := range kids {
		assert.False(t, dom.HasAttr(c, DisabledAttr), "child %s", dom.Attr(c, "id"))
	}
	assert.False(t, dom.HasAttr(grand, DisabledAttr))
}

func TestEnableChildren_ClearsPreexistingMarker(t *testing.T) {
	body := parseBody(t, `<form><input disabled><input></form>`)
	form := dom.Children(body)[0]

	EnableChildren(form)
	for _, c := range dom.Children(form) {
		assert.False(t, dom.HasAttr(c, DisabledAttr))
	}
}

func TestMirrorValue(t *testing.T) {
	body := parseBody(t, `<input id="cur" value="typed"><input id="opp" value="stale">`)
	kids := dom.Children(body)
	cur, opp := kids[0], kids[1]

	MirrorValue(cur, opp)
	assert.Equal(t, "typed", dom.Value(opp))

	// Empty value still overwrites.
	dom.SetValue(cur, "")
	MirrorValue(cur, opp)
	assert.Equal(t, "", dom.Value(opp))
}
