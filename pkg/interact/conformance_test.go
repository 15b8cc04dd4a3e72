//go:build conformance

package interact

import (
	"net/url"
	"testing"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probehq/domsim/pkg/dom"
)

// Compares the synthesized click sequence against what a real Chromium
// dispatches. Run with: go test -tags conformance ./pkg/interact
//
// Requires a local Chromium; the launcher downloads one on first use.

const conformancePage = `<!DOCTYPE html>
<html><body>
<button id="btn">go</button>
<script>
window.__events = [];
const types = [
	"pointerover","pointerenter","mouseover","mouseenter",
	"pointerdown","mousedown","focus","focusin",
	"pointerup","mouseup","click"
];
for (const t of types) {
	document.getElementById("btn").addEventListener(t, e => window.__events.push(e.type));
}
</script>
</body></html>`

func TestClickOrderMatchesChromium(t *testing.T) {
	u := launcher.New().Headless(true).MustLaunch()
	browser := rod.New().ControlURL(u).MustConnect()
	defer browser.MustClose()

	page := browser.MustPage("data:text/html," + url.PathEscape(conformancePage))
	page.MustElement("#btn").MustClick()

	var real []string
	for _, v := range page.MustEval("() => window.__events").Arr() {
		real = append(real, v.Str())
	}
	require.NotEmpty(t, real)

	doc, err := dom.ParseString(`<button id="btn">go</button>`)
	require.NoError(t, err)
	rec := NewRecorder(doc)
	defer rec.Close()
	require.NoError(t, New(Options{Document: doc}).Click(doc.GetElementByID("btn")))

	assert.Equal(t, real, rec.Types())
}
