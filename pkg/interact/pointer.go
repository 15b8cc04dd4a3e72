package interact

import (
	"github.com/probehq/domsim/internal/errs"
	"github.com/probehq/domsim/pkg/dom"
)

// PointerStep is one element of a pointer-action sequence.
type PointerStep struct {
	// Target is the element the step applies to. A nil target reuses the
	// previous step's target; the first step must carry one.
	Target *dom.Element
	// Kind is the pointer transition: move, down, up, over, out, enter,
	// leave or cancel.
	Kind string
	// Pointer is the device kind, defaulting to "mouse". Only mouse
	// pointers produce the paired mouse events.
	Pointer string
	// Buttons and Button override the pressed-button state. When both are
	// zero, down steps default to buttons=1, button=0.
	Buttons int
	Button  int
	// ClientX and ClientY are the pointer coordinates.
	ClientX float64
	ClientY float64
}

var pointerMouseEvents = map[string]string{
	"move":  "mousemove",
	"down":  "mousedown",
	"up":    "mouseup",
	"over":  "mouseover",
	"out":   "mouseout",
	"enter": "mouseenter",
	"leave": "mouseleave",
	// cancel has no mouse equivalent
}

// Pointer replays an ordered pointer-action sequence. The target set by a
// step is sticky: later steps without an explicit target reuse it. A step
// needing a target before one was ever set fails the whole call.
func (s *Session) Pointer(steps ...PointerStep) error {
	var current *dom.Element
	for i, step := range steps {
		if step.Target != nil {
			current = step.Target
		}
		if current == nil {
			return errs.Newf(errs.InvalidArgument,
				"pointer step %d has no target and none was set before it", i)
		}
		if step.Kind == "" {
			return errs.Newf(errs.InvalidArgument, "pointer step %d has no kind", i)
		}
		mouseType, known := pointerMouseEvents[step.Kind]
		if !known && step.Kind != "cancel" {
			return errs.Newf(errs.InvalidArgument,
				"pointer step %d: unknown kind %q", i, step.Kind)
		}
		if IsDisabled(current) {
			continue
		}
		device := step.Pointer
		if device == "" {
			device = "mouse"
		}
		buttons, button := step.Buttons, step.Button
		if buttons == 0 && button == 0 && step.Kind == "down" {
			buttons = 1
		}
		init := mouseInit{
			button:  button,
			buttons: buttons,
			x:       step.ClientX,
			y:       step.ClientY,
		}
		s.firePointer(current, "pointer"+step.Kind, device, init)
		if device == "mouse" && step.Kind != "cancel" {
			s.fireMouse(current, mouseType, init)
		}
		if step.Kind == "down" && IsFocusable(current) {
			s.focusElement(current)
		}
	}
	return nil
}
