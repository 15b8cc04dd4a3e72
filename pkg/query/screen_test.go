package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probehq/domsim/internal/errs"
	"github.com/probehq/domsim/pkg/dom"
)

func resetGlobals(t *testing.T) {
	t.Helper()
	Reset()
	SetDefaultDocument(nil)
	t.Cleanup(func() {
		Reset()
		SetDefaultDocument(nil)
	})
}

func TestUseCachesUntilRootChanges(t *testing.T) {
	resetGlobals(t)
	docA, err := dom.ParseString(`<div id="a">x</div>`)
	require.NoError(t, err)
	docB, err := dom.ParseString(`<div id="b">y</div>`)
	require.NoError(t, err)

	q1 := Use(docA.Root())
	q2 := Use(docA.Root())
	assert.Same(t, q1, q2, "same root must not rebind")

	q3 := Use(docB.Root())
	assert.NotSame(t, q1, q3, "a new root rebinds")
	assert.Same(t, docB.Root(), q3.Root())

	// Screen hands back the active binding.
	s, err := Screen()
	require.NoError(t, err)
	assert.Same(t, q3, s)
}

func TestScreenFallsBackToDefaultDocument(t *testing.T) {
	resetGlobals(t)
	doc, err := dom.ParseString(`<input id="in">`)
	require.NoError(t, err)

	_, err = Screen()
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.Unavailable))

	SetDefaultDocument(doc)
	s, err := Screen()
	require.NoError(t, err)
	assert.Same(t, doc.Root(), s.Root())
}

func TestResetClearsActiveBinding(t *testing.T) {
	resetGlobals(t)
	doc, err := dom.ParseString(`<div>x</div>`)
	require.NoError(t, err)

	Use(doc.Root())
	Reset()

	_, err = Screen()
	require.Error(t, err, "no default document installed")

	SetDefaultDocument(doc)
	s, err := Screen()
	require.NoError(t, err)
	assert.Same(t, doc.Root(), s.Root())
}
