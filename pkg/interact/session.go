// Package interact synthesizes realistic low-level browser event sequences
// for high-level user gestures, so a UI under test reacts exactly as it
// would to genuine input.
package interact

import (
	"log/slog"
	"time"

	"github.com/probehq/domsim/pkg/dom"
)

// Options configures a Session.
type Options struct {
	// Delay is the default wait before each keystroke of Type and
	// Keyboard. Zero means no wait.
	Delay time.Duration
	// AdvanceTimers, when set, replaces real sleeping with a
	// caller-supplied hook, letting virtual or fake clocks drive the
	// inter-keystroke delays.
	AdvanceTimers func(time.Duration)
	// Document is the fallback document for operations with no target
	// element (Keyboard, Tab) and for targets detached from any document.
	Document *dom.Document
	// Logger, when set, debug-logs every dispatched event.
	Logger *slog.Logger
}

// Session is a configured interaction simulator. All gestures on a session
// run synchronously on the calling goroutine; the only suspension points
// are the configured inter-keystroke delays.
type Session struct {
	opts Options
}

// New creates a session with the given options.
func New(opts Options) *Session {
	return &Session{opts: opts}
}

// Default is a ready-to-use session with no configuration.
var Default = New(Options{})

func (s *Session) wait(d time.Duration) {
	if d <= 0 {
		return
	}
	if s.opts.AdvanceTimers != nil {
		s.opts.AdvanceTimers(d)
		return
	}
	time.Sleep(d)
}

// document resolves the document for an operation: the target's owner when
// attached, else the session fallback.
func (s *Session) document(el *dom.Element) *dom.Document {
	if el != nil {
		if doc := el.Document(); doc != nil {
			return doc
		}
	}
	return s.opts.Document
}

// TypeOption overrides per-call typing behavior.
type TypeOption func(*typeConfig)

type typeConfig struct {
	delay time.Duration
}

// WithDelay overrides the session's inter-keystroke delay for one call.
func WithDelay(d time.Duration) TypeOption {
	return func(c *typeConfig) { c.delay = d }
}

// Click simulates a primary-button click via the default session.
func Click(el *dom.Element) error { return Default.Click(el) }

// DblClick simulates a double click via the default session.
func DblClick(el *dom.Element) error { return Default.DblClick(el) }

// TripleClick simulates a triple click via the default session.
func TripleClick(el *dom.Element) error { return Default.TripleClick(el) }

// RightClick simulates a secondary-button click via the default session.
func RightClick(el *dom.Element) error { return Default.RightClick(el) }

// Hover simulates the pointer entering the element via the default session.
func Hover(el *dom.Element) error { return Default.Hover(el) }

// Unhover simulates the pointer leaving the element via the default session.
func Unhover(el *dom.Element) error { return Default.Unhover(el) }

// Focus focuses the element via the default session.
func Focus(el *dom.Element) error { return Default.Focus(el) }

// Blur removes focus from the element via the default session.
func Blur(el *dom.Element) error { return Default.Blur(el) }

// Type types text into the element via the default session.
func Type(el *dom.Element, text string, opts ...TypeOption) error {
	return Default.Type(el, text, opts...)
}

// Clear empties the element's value via the default session.
func Clear(el *dom.Element) error { return Default.Clear(el) }

// Paste pastes text into the element via the default session.
func Paste(el *dom.Element, text string) error { return Default.Paste(el, text) }

// Upload assigns files to a file input via the default session.
func Upload(el *dom.Element, files ...dom.File) error { return Default.Upload(el, files...) }

// SelectOptions selects options on a select element via the default session.
func SelectOptions(el *dom.Element, values ...string) error {
	return Default.SelectOptions(el, values...)
}

// DeselectOptions deselects options on a multi-select via the default session.
func DeselectOptions(el *dom.Element, values ...string) error {
	return Default.DeselectOptions(el, values...)
}

// Pointer runs a pointer-action sequence via the default session.
func Pointer(steps ...PointerStep) error { return Default.Pointer(steps...) }

// Keyboard types into the active element via the default session. The
// default session has no document configured, so this fails until one is
// set; prefer a session created with Options.Document.
func Keyboard(text string, opts ...TypeOption) error {
	return Default.Keyboard(text, opts...)
}

// Tab moves focus through the tab order via the default session.
func Tab(opts TabOptions) error { return Default.Tab(opts) }
