package interact

import "github.com/probehq/domsim/pkg/dom"

// Event synthesis. Interactive events (pointer, mouse, keyboard, clipboard)
// bubble and are cancelable; input/change and focus-internal events are not
// cancelable. Enter/leave transitions do not bubble, matching the DOM.

func (s *Session) dispatch(el *dom.Element, ev *dom.Event) bool {
	if s.opts.Logger != nil {
		s.opts.Logger.Debug("dispatch",
			"event", ev.Type,
			"target", describeElement(el),
			"key", ev.Key,
			"button", ev.Button,
			"inputType", ev.InputType,
		)
	}
	return el.DispatchEvent(ev)
}

func describeElement(el *dom.Element) string {
	if el == nil {
		return "<nil>"
	}
	if id := el.ID(); id != "" {
		return el.TagName() + "#" + id
	}
	return el.TagName()
}

type mouseInit struct {
	button  int
	buttons int
	x, y    float64
	detail  int
	shift   bool
}

var noBubble = map[string]bool{
	"pointerenter": true,
	"pointerleave": true,
	"mouseenter":   true,
	"mouseleave":   true,
}

// firePointer dispatches one pointer event. Environments without pointer
// event constructors skip the dispatch silently; the paired mouse event
// still fires.
func (s *Session) firePointer(el *dom.Element, typ, pointerType string, init mouseInit) {
	if doc := el.Document(); doc != nil && !doc.SupportsPointerEvents() {
		return
	}
	s.dispatch(el, &dom.Event{
		Type:        typ,
		Bubbles:     !noBubble[typ],
		Cancelable:  true,
		Button:      init.button,
		Buttons:     init.buttons,
		ClientX:     init.x,
		ClientY:     init.y,
		PointerID:   1,
		IsPrimary:   true,
		PointerType: pointerType,
	})
}

func (s *Session) fireMouse(el *dom.Element, typ string, init mouseInit) bool {
	return s.dispatch(el, &dom.Event{
		Type:       typ,
		Bubbles:    !noBubble[typ],
		Cancelable: true,
		Button:     init.button,
		Buttons:    init.buttons,
		ClientX:    init.x,
		ClientY:    init.y,
		Detail:     init.detail,
		ShiftKey:   init.shift,
	})
}

func (s *Session) fireKey(el *dom.Element, typ, key, code string, shift bool) bool {
	return s.dispatch(el, &dom.Event{
		Type:       typ,
		Bubbles:    true,
		Cancelable: true,
		Key:        key,
		Code:       code,
		ShiftKey:   shift,
	})
}

// fireInput dispatches an input event. Environments without input event
// constructors fall back to a generic event so listeners still fire, at the
// cost of the inputType/data payload.
func (s *Session) fireInput(el *dom.Element, inputType, data string) {
	ev := &dom.Event{Type: "input", Bubbles: true}
	if doc := el.Document(); doc == nil || doc.SupportsInputEvents() {
		ev.InputType = inputType
		ev.Data = data
	}
	s.dispatch(el, ev)
}

func (s *Session) fireChange(el *dom.Element) {
	s.dispatch(el, &dom.Event{Type: "change", Bubbles: true})
}

func (s *Session) fireClipboard(el *dom.Element, typ, text string) {
	dt := dom.NewDataTransfer()
	dt.SetData("text/plain", text)
	s.dispatch(el, &dom.Event{
		Type:       typ,
		Bubbles:    true,
		Cancelable: true,
		Clipboard:  dt,
	})
}
