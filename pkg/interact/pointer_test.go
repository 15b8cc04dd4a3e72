package interact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probehq/domsim/internal/errs"
	"github.com/probehq/domsim/pkg/dom"
)

func TestPointerPairsMouseEvents(t *testing.T) {
	doc, rec, s := fixture(t, `<div id="box">x</div>`)
	box := doc.GetElementByID("box")

	require.NoError(t, s.Pointer(
		PointerStep{Target: box, Kind: "over"},
		PointerStep{Kind: "down"},
		PointerStep{Kind: "up"},
	))
	assert.Equal(t, []string{
		"pointerover", "mouseover",
		"pointerdown", "mousedown",
		"pointerup", "mouseup",
	}, rec.Types())
}

func TestPointerStickyTarget(t *testing.T) {
	doc, rec, s := fixture(t, `<div id="a">x</div><div id="b">y</div>`)
	a, b := doc.GetElementByID("a"), doc.GetElementByID("b")

	require.NoError(t, s.Pointer(
		PointerStep{Target: a, Kind: "move"},
		PointerStep{Kind: "move"},
		PointerStep{Target: b, Kind: "move"},
	))
	entries := rec.Entries()
	var targets []*dom.Element
	for _, e := range entries {
		if e.Type == "pointermove" {
			targets = append(targets, e.Target)
		}
	}
	require.Len(t, targets, 3)
	assert.Same(t, a, targets[0])
	assert.Same(t, a, targets[1], "a targetless step reuses the previous target")
	assert.Same(t, b, targets[2])
}

func TestPointerMissingTargetFailsBeforeDispatch(t *testing.T) {
	_, rec, s := fixture(t, `<div id="a">x</div>`)
	err := s.Pointer(PointerStep{Kind: "move"})
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.InvalidArgument))
	assert.Empty(t, rec.Entries())
}

func TestPointerUnknownKindFails(t *testing.T) {
	doc, _, s := fixture(t, `<div id="a">x</div>`)
	err := s.Pointer(PointerStep{Target: doc.GetElementByID("a"), Kind: "warp"})
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.InvalidArgument))
	assert.Contains(t, err.Error(), "warp")
}

func TestPointerMissingKindFails(t *testing.T) {
	doc, _, s := fixture(t, `<div id="a">x</div>`)
	err := s.Pointer(PointerStep{Target: doc.GetElementByID("a")})
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.InvalidArgument))
}

func TestPointerDownDefaultsButtonsAndFocuses(t *testing.T) {
	doc, rec, s := fixture(t, `<button id="btn">go</button>`)
	btn := doc.GetElementByID("btn")

	require.NoError(t, s.Pointer(PointerStep{Target: btn, Kind: "down"}))
	assert.Same(t, btn, doc.ActiveElement())

	for _, e := range rec.Entries() {
		if e.Type == "pointerdown" || e.Type == "mousedown" {
			assert.Equal(t, 1, e.Buttons, e.Type)
			assert.Equal(t, 0, e.Button, e.Type)
		}
	}
}

func TestPointerExplicitButtonsAreKept(t *testing.T) {
	doc, rec, s := fixture(t, `<div id="a">x</div>`)
	require.NoError(t, s.Pointer(PointerStep{
		Target: doc.GetElementByID("a"), Kind: "down", Button: 2, Buttons: 2,
	}))
	for _, e := range rec.Entries() {
		assert.Equal(t, 2, e.Buttons, e.Type)
		assert.Equal(t, 2, e.Button, e.Type)
	}
}

func TestPointerNonMouseDeviceSkipsMouseEvents(t *testing.T) {
	doc, rec, s := fixture(t, `<div id="a">x</div>`)
	require.NoError(t, s.Pointer(
		PointerStep{Target: doc.GetElementByID("a"), Kind: "down", Pointer: "touch"},
		PointerStep{Kind: "up", Pointer: "touch"},
	))
	assert.Equal(t, []string{"pointerdown", "pointerup"}, rec.Types())
}

func TestPointerCancelHasNoMousePair(t *testing.T) {
	doc, rec, s := fixture(t, `<div id="a">x</div>`)
	require.NoError(t, s.Pointer(PointerStep{Target: doc.GetElementByID("a"), Kind: "cancel"}))
	assert.Equal(t, []string{"pointercancel"}, rec.Types())
}

func TestPointerSkipsDisabledTarget(t *testing.T) {
	doc, rec, s := fixture(t, `<button id="off" disabled>x</button><button id="on">y</button>`)
	require.NoError(t, s.Pointer(
		PointerStep{Target: doc.GetElementByID("off"), Kind: "down"},
		PointerStep{Target: doc.GetElementByID("on"), Kind: "down"},
	))
	for _, e := range rec.Entries() {
		assert.Same(t, doc.GetElementByID("on"), e.Target, e.Type)
	}
	assert.Equal(t, 2, len(rec.Entries()))
}
