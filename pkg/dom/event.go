package dom

// Event is a single dispatched DOM event. One flat struct covers every
// category; unused payload fields stay zero.
type Event struct {
	Type       string
	Bubbles    bool
	Cancelable bool

	Target        *Element
	CurrentTarget *Element

	// Pointer / mouse payload.
	Button      int
	Buttons     int
	ClientX     float64
	ClientY     float64
	PointerID   int
	PointerType string
	IsPrimary   bool
	Detail      int

	// Keyboard payload.
	Key      string
	Code     string
	ShiftKey bool

	// Input payload.
	InputType string
	Data      string

	// Clipboard payload.
	Clipboard *DataTransfer

	prevented bool
	stopped   bool
}

// PreventDefault marks the event's default action as cancelled. Ignored for
// non-cancelable events.
func (ev *Event) PreventDefault() {
	if ev.Cancelable {
		ev.prevented = true
	}
}

// DefaultPrevented reports whether PreventDefault was honored.
func (ev *Event) DefaultPrevented() bool { return ev.prevented }

// StopPropagation halts bubbling after the current listener batch.
func (ev *Event) StopPropagation() { ev.stopped = true }

// DispatchEvent delivers the event to this element and, for bubbling
// events, to each ancestor in turn. Listeners run synchronously: each one
// observes the event before the next dispatch begins. Reports whether the
// default action remains, i.e. !DefaultPrevented.
func (e *Element) DispatchEvent(ev *Event) bool {
	ev.Target = e
	if e.doc != nil {
		e.doc.notifyDispatch(ev)
	}
	for node := e; node != nil; node = node.parent {
		ev.CurrentTarget = node
		for _, l := range append([]*listener(nil), node.listeners[ev.Type]...) {
			l.fn(ev)
		}
		if ev.stopped || !ev.Bubbles {
			break
		}
	}
	ev.CurrentTarget = nil
	return !ev.prevented
}
