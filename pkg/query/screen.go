package query

import (
	"sync"

	"github.com/probehq/domsim/internal/errs"
	"github.com/probehq/domsim/pkg/dom"
)

// The process-wide binding cache. At most one root is active at a time; the
// cached table is recomputed only when the designated root reference
// changes, so repeated Use/Screen calls across many test cases never leak
// stale bindings.

var (
	mu         sync.Mutex
	activeRoot *dom.Element
	cached     *Queries
	defaultDoc *dom.Document
)

// Use designates root as the active default root, rebinding the cached
// table iff the root changed. Returns the bound table.
func Use(root *dom.Element) *Queries {
	mu.Lock()
	defer mu.Unlock()
	if cached == nil || activeRoot != root {
		activeRoot = root
		cached = New(root)
	}
	return cached
}

// Screen returns the table bound to the active root. With no active root it
// falls back to the default document's root, if one was installed.
func Screen() (*Queries, error) {
	mu.Lock()
	defer mu.Unlock()
	if cached != nil {
		return cached, nil
	}
	if defaultDoc != nil {
		return New(defaultDoc.Root()), nil
	}
	return nil, errs.New(errs.Unavailable, "no DOM environment: no active root or default document")
}

// Reset clears the active binding. Subsequent Screen calls fall back to the
// default document.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	activeRoot = nil
	cached = nil
}

// SetDefaultDocument installs the document Screen falls back to when no
// root is active.
func SetDefaultDocument(doc *dom.Document) {
	mu.Lock()
	defer mu.Unlock()
	defaultDoc = doc
}
