package interact

import "github.com/probehq/domsim/pkg/dom"

// TraceEntry is one recorded dispatch.
type TraceEntry struct {
	Type      string
	Target    *dom.Element
	Key       string
	Button    int
	Buttons   int
	InputType string
	Data      string
}

// Recorder captures every event dispatched within a document, in dispatch
// order, including non-bubbling events a root listener would miss. Used by
// the engine's tests and the replay tool's trace output.
type Recorder struct {
	entries []TraceEntry
	remove  func()
}

// NewRecorder starts recording dispatches in the document.
func NewRecorder(doc *dom.Document) *Recorder {
	r := &Recorder{}
	r.remove = doc.AddDispatchHook(func(ev *dom.Event) {
		r.entries = append(r.entries, TraceEntry{
			Type:      ev.Type,
			Target:    ev.Target,
			Key:       ev.Key,
			Button:    ev.Button,
			Buttons:   ev.Buttons,
			InputType: ev.InputType,
			Data:      ev.Data,
		})
	})
	return r
}

// Entries returns the recorded dispatches in order.
func (r *Recorder) Entries() []TraceEntry { return r.entries }

// Types returns just the event type names, in dispatch order.
func (r *Recorder) Types() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Type
	}
	return out
}

// TypesFor returns the event type names dispatched to one target.
func (r *Recorder) TypesFor(target *dom.Element) []string {
	var out []string
	for _, e := range r.entries {
		if e.Target == target {
			out = append(out, e.Type)
		}
	}
	return out
}

// Count returns how many events of the given type were recorded.
func (r *Recorder) Count(typ string) int {
	n := 0
	for _, e := range r.entries {
		if e.Type == typ {
			n++
		}
	}
	return n
}

// Reset discards recorded entries, keeping the subscription.
func (r *Recorder) Reset() { r.entries = nil }

// Close stops recording.
func (r *Recorder) Close() { r.remove() }
