package interact

import "github.com/probehq/domsim/pkg/dom"

// focusableSelector collects interactive tags and anything with an explicit
// tabindex. Disabled elements are filtered afterwards.
const focusableSelector = "input, select, textarea, button, a[href], [tabindex]"

// focusElement moves focus to the element. Already-focused targets are a
// no-op. Attached elements use the document's native focus management;
// detached ones get the focusin/focus pair synthesized directly.
func (s *Session) focusElement(el *dom.Element) {
	if doc := el.Document(); doc != nil {
		if doc.ActiveElement() == el {
			return
		}
		el.Focus()
		return
	}
	s.dispatch(el, &dom.Event{Type: "focusin", Bubbles: true})
	s.dispatch(el, &dom.Event{Type: "focus"})
}

// blurElement removes focus from the element, synthesizing the
// focusout/blur pair when no native focus management exists.
func (s *Session) blurElement(el *dom.Element) {
	if doc := el.Document(); doc != nil {
		if doc.ActiveElement() != el {
			return
		}
		el.Blur()
		return
	}
	s.dispatch(el, &dom.Event{Type: "focusout", Bubbles: true})
	s.dispatch(el, &dom.Event{Type: "blur"})
}

func focusableElements(doc *dom.Document) []*dom.Element {
	var out []*dom.Element
	for _, el := range doc.QuerySelectorAll(focusableSelector) {
		if !IsDisabled(el) {
			out = append(out, el)
		}
	}
	return out
}

// moveFocus advances focus through the tab order, wrapping at both ends.
// Returns the newly focused element, or nil when nothing is focusable.
func (s *Session) moveFocus(doc *dom.Document, backward bool) *dom.Element {
	els := focusableElements(doc)
	if len(els) == 0 {
		return nil
	}
	current := -1
	if active := doc.ActiveElement(); active != nil {
		for i, el := range els {
			if el == active {
				current = i
				break
			}
		}
	}
	var next int
	switch {
	case current < 0 && backward:
		next = len(els) - 1
	case current < 0:
		next = 0
	case backward:
		next = (current - 1 + len(els)) % len(els)
	default:
		next = (current + 1) % len(els)
	}
	s.focusElement(els[next])
	return els[next]
}
