package interact

import (
	"strings"

	"github.com/probehq/domsim/internal/errs"
	"github.com/probehq/domsim/pkg/dom"
)

// The sequencer composes classifier, synthesizer and mutator calls into the
// exact event order a real browser produces for each gesture. Disabled
// targets make every gesture a successful no-op that dispatches nothing.

// resolveLabel retargets a label to its bound control: the element named by
// its for attribute, else the first control nested inside it.
func resolveLabel(el *dom.Element) *dom.Element {
	if !IsLabel(el) {
		return el
	}
	if forID := el.GetAttribute("for"); forID != "" {
		if doc := el.Document(); doc != nil {
			if control := doc.GetElementByID(forID); control != nil {
				return control
			}
		}
	}
	if control := el.QuerySelector("input, select, textarea, button"); control != nil {
		return control
	}
	return el
}

// Click simulates a primary-button click: the full pointer/mouse press
// cycle, conditional focus, and the element-specific state change a browser
// applies after the click event (option selection, checkbox toggle, radio
// group move).
func (s *Session) Click(el *dom.Element) error {
	el = resolveLabel(el)
	if IsDisabled(el) {
		return nil
	}
	s.pressCycle(el)
	return nil
}

func (s *Session) pressCycle(el *dom.Element) {
	checkedBefore := el.Checked()

	s.firePointer(el, "pointerover", "mouse", mouseInit{})
	s.firePointer(el, "pointerenter", "mouse", mouseInit{})
	s.fireMouse(el, "mouseover", mouseInit{})
	s.fireMouse(el, "mouseenter", mouseInit{})
	s.firePointer(el, "pointerdown", "mouse", mouseInit{buttons: 1})
	s.fireMouse(el, "mousedown", mouseInit{buttons: 1, detail: 1})
	if IsFocusable(el) {
		s.focusElement(el)
	}
	s.firePointer(el, "pointerup", "mouse", mouseInit{})
	s.fireMouse(el, "mouseup", mouseInit{detail: 1})
	s.fireMouse(el, "click", mouseInit{detail: 1})

	s.applyClickEffects(el, checkedBefore)
}

func (s *Session) applyClickEffects(el *dom.Element, checkedBefore bool) {
	if IsOption(el) {
		if sel := el.Closest("select"); sel != nil {
			if sel.HasAttribute("multiple") {
				el.SetSelected(!el.Selected())
			} else {
				selectSingle(sel, el)
			}
			s.fireInput(sel, "", "")
			s.fireChange(sel)
		}
		return
	}
	if isCheckbox(el) && el.Checked() == checkedBefore {
		el.SetChecked(!checkedBefore)
		s.fireInput(el, "", "")
		s.fireChange(el)
		return
	}
	if isRadio(el) && !el.Checked() {
		el.SetChecked(true)
		uncheckRadioGroup(el)
		s.fireInput(el, "", "")
		s.fireChange(el)
	}
}

func selectSingle(sel, chosen *dom.Element) {
	for _, opt := range sel.QuerySelectorAll("option") {
		opt.SetSelected(opt == chosen)
	}
}

func uncheckRadioGroup(radio *dom.Element) {
	doc := radio.Document()
	name := radio.GetAttribute("name")
	if doc == nil || name == "" {
		return
	}
	for _, other := range doc.QuerySelectorAll("input[type=radio]") {
		if other != radio && other.GetAttribute("name") == name {
			other.SetChecked(false)
		}
	}
}

// DblClick simulates two click cycles followed by a dblclick event.
func (s *Session) DblClick(el *dom.Element) error {
	el = resolveLabel(el)
	if IsDisabled(el) {
		return nil
	}
	s.pressCycle(el)
	s.pressCycle(el)
	s.fireMouse(el, "dblclick", mouseInit{detail: 2})
	return nil
}

// TripleClick simulates three click cycles. The dblclick event fires after
// the second cycle only, matching browser behavior.
func (s *Session) TripleClick(el *dom.Element) error {
	el = resolveLabel(el)
	if IsDisabled(el) {
		return nil
	}
	s.pressCycle(el)
	s.pressCycle(el)
	s.fireMouse(el, "dblclick", mouseInit{detail: 2})
	s.pressCycle(el)
	return nil
}

// RightClick simulates a secondary-button press ending in a contextmenu
// event. No click event fires.
func (s *Session) RightClick(el *dom.Element) error {
	el = resolveLabel(el)
	if IsDisabled(el) {
		return nil
	}
	s.firePointer(el, "pointerdown", "mouse", mouseInit{button: 2, buttons: 2})
	s.fireMouse(el, "mousedown", mouseInit{button: 2, buttons: 2, detail: 1})
	if IsFocusable(el) {
		s.focusElement(el)
	}
	s.firePointer(el, "pointerup", "mouse", mouseInit{button: 2})
	s.fireMouse(el, "mouseup", mouseInit{button: 2, detail: 1})
	s.fireMouse(el, "contextmenu", mouseInit{button: 2})
	return nil
}

// Hover simulates the pointer entering the element. Focus is unchanged.
func (s *Session) Hover(el *dom.Element) error {
	if IsDisabled(el) {
		return nil
	}
	s.firePointer(el, "pointerover", "mouse", mouseInit{})
	s.firePointer(el, "pointerenter", "mouse", mouseInit{})
	s.fireMouse(el, "mouseover", mouseInit{})
	s.fireMouse(el, "mouseenter", mouseInit{})
	return nil
}

// Unhover simulates the pointer leaving the element. Focus is unchanged.
func (s *Session) Unhover(el *dom.Element) error {
	if IsDisabled(el) {
		return nil
	}
	s.firePointer(el, "pointerout", "mouse", mouseInit{})
	s.firePointer(el, "pointerleave", "mouse", mouseInit{})
	s.fireMouse(el, "mouseout", mouseInit{})
	s.fireMouse(el, "mouseleave", mouseInit{})
	return nil
}

// Focus moves focus to the element.
func (s *Session) Focus(el *dom.Element) error {
	if IsDisabled(el) {
		return nil
	}
	s.focusElement(el)
	return nil
}

// Blur removes focus from the element.
func (s *Session) Blur(el *dom.Element) error {
	s.blurElement(el)
	return nil
}

// Type focuses the target, tokenizes the text and replays it keystroke by
// keystroke, waiting the configured delay before each one.
func (s *Session) Type(el *dom.Element, text string, opts ...TypeOption) error {
	if IsDisabled(el) {
		return nil
	}
	cfg := typeConfig{delay: s.opts.Delay}
	for _, opt := range opts {
		opt(&cfg)
	}
	s.focusElement(el)
	for _, tok := range Tokenize(text) {
		s.wait(cfg.delay)
		if err := s.applyToken(el, tok); err != nil {
			return err
		}
	}
	return nil
}

// Keyboard replays keystrokes against the document's active element. It
// fails when no element holds focus. Focus moves (e.g. a {tab} token)
// redirect the remaining keystrokes to the newly focused element.
func (s *Session) Keyboard(text string, opts ...TypeOption) error {
	doc := s.opts.Document
	if doc == nil {
		return errs.New(errs.Unavailable, "no DOM environment: keyboard needs a document")
	}
	cfg := typeConfig{delay: s.opts.Delay}
	for _, opt := range opts {
		opt(&cfg)
	}
	for _, tok := range Tokenize(text) {
		active := doc.ActiveElement()
		if active == nil {
			return errs.New(errs.FailedPrecondition, "no element is focused")
		}
		s.wait(cfg.delay)
		if err := s.applyToken(active, tok); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) applyToken(el *dom.Element, tok Token) error {
	if tok.Kind == TokenChar {
		return s.typeChar(el, string(tok.Char))
	}
	def, known := LookupKey(tok.Name)
	if !known {
		lit := "{" + tok.Name + "}"
		s.fireKey(el, "keydown", lit, lit, false)
		s.fireKey(el, "keypress", lit, lit, false)
		s.fireKey(el, "keyup", lit, lit, false)
		return nil
	}
	switch tok.Name {
	case "tab", "shift+tab":
		backward := tok.Name == "shift+tab"
		s.fireKey(el, "keydown", def.Key, def.Code, backward)
		s.fireKey(el, "keyup", def.Key, def.Code, backward)
		if doc := s.document(el); doc != nil {
			s.moveFocus(doc, backward)
		}
		return nil
	case "backspace", "delete":
		s.fireKey(el, "keydown", def.Key, def.Code, false)
		if value, ok := GetValue(el); ok && value != "" {
			runes := []rune(value)
			if err := SetValue(el, string(runes[:len(runes)-1])); err != nil {
				return err
			}
			s.fireInput(el, "deleteContentBackward", "")
		}
		s.fireKey(el, "keyup", def.Key, def.Code, false)
		return nil
	}
	s.fireKey(el, "keydown", def.Key, def.Code, false)
	if def.Char != "" {
		if err := s.insertText(el, def.Char); err != nil {
			return err
		}
	}
	s.fireKey(el, "keyup", def.Key, def.Code, false)
	return nil
}

func (s *Session) typeChar(el *dom.Element, ch string) error {
	s.fireKey(el, "keydown", ch, ch, false)
	s.fireKey(el, "keypress", ch, ch, false)
	if err := s.insertText(el, ch); err != nil {
		return err
	}
	s.fireKey(el, "keyup", ch, ch, false)
	return nil
}

func (s *Session) insertText(el *dom.Element, text string) error {
	value, _ := GetValue(el)
	if err := SetValue(el, value+text); err != nil {
		return err
	}
	s.fireInput(el, "insertText", text)
	return nil
}

// Clear focuses the target and empties its value, firing input and change
// unconditionally, even when the value was already empty.
func (s *Session) Clear(el *dom.Element) error {
	if IsDisabled(el) {
		return nil
	}
	s.focusElement(el)
	if err := SetValue(el, ""); err != nil {
		return err
	}
	s.fireInput(el, "deleteContentBackward", "")
	s.fireChange(el)
	return nil
}

// Paste focuses the target, dispatches a paste clipboard event carrying the
// text, then appends the text to the current value. No change event fires.
func (s *Session) Paste(el *dom.Element, text string) error {
	if IsDisabled(el) {
		return nil
	}
	s.focusElement(el)
	s.fireClipboard(el, "paste", text)
	value, _ := GetValue(el)
	if err := SetValue(el, value+text); err != nil {
		return err
	}
	s.fireInput(el, "insertFromPaste", text)
	return nil
}

// Upload assigns the files to a file input and fires input and change.
func (s *Session) Upload(el *dom.Element, files ...dom.File) error {
	if IsDisabled(el) {
		return nil
	}
	if !IsInput(el) || InputType(el) != "file" {
		return errs.Newf(errs.FailedPrecondition,
			"upload target %s is not a file input", describeElement(el))
	}
	assignFiles(el, files)
	s.fireInput(el, "insertReplacementText", "")
	s.fireChange(el)
	return nil
}

// SelectOptions marks the options matching the requested values as
// selected. Values resolve by exact option value first, then exact text
// content; an unmatched value aborts the call before any mutation. On a
// single select only the first resolved option ends up selected.
func (s *Session) SelectOptions(el *dom.Element, values ...string) error {
	if IsDisabled(el) {
		return nil
	}
	resolved, err := resolveOptions(el, values)
	if err != nil {
		return err
	}
	if el.HasAttribute("multiple") {
		for _, opt := range resolved {
			opt.SetSelected(true)
		}
	} else if len(resolved) > 0 {
		selectSingle(el, resolved[0])
	}
	s.fireInput(el, "insertReplacementText", "")
	s.fireChange(el)
	return nil
}

// DeselectOptions unmarks the options matching the requested values. The
// target must be a multi-select.
func (s *Session) DeselectOptions(el *dom.Element, values ...string) error {
	if IsDisabled(el) {
		return nil
	}
	if !IsSelect(el) || !el.HasAttribute("multiple") {
		return errs.Newf(errs.FailedPrecondition,
			"deselect target %s is not a multiple select", describeElement(el))
	}
	resolved, err := resolveOptions(el, values)
	if err != nil {
		return err
	}
	for _, opt := range resolved {
		opt.SetSelected(false)
	}
	s.fireInput(el, "deleteContentBackward", "")
	s.fireChange(el)
	return nil
}

func resolveOptions(el *dom.Element, values []string) ([]*dom.Element, error) {
	if !IsSelect(el) {
		return nil, errs.Newf(errs.FailedPrecondition,
			"target %s is not a select element", describeElement(el))
	}
	options := el.QuerySelectorAll("option")
	var resolved []*dom.Element
	for _, v := range values {
		var match *dom.Element
		for _, opt := range options {
			if opt.Value() == v {
				match = opt
				break
			}
		}
		if match == nil {
			for _, opt := range options {
				if strings.TrimSpace(opt.TextContent()) == v {
					match = opt
					break
				}
			}
		}
		if match == nil {
			return nil, errs.Newf(errs.NotFound, "option not found: %q", v)
		}
		resolved = append(resolved, match)
	}
	return resolved, nil
}

// TabOptions configures a Tab gesture.
type TabOptions struct {
	Shift bool
}

// Tab dispatches a Tab keydown on the focused element, moves focus through
// the tab order (backward with Shift), and dispatches the keyup on the
// newly focused element.
func (s *Session) Tab(opts TabOptions) error {
	doc := s.opts.Document
	if doc == nil {
		return errs.New(errs.Unavailable, "no DOM environment: tab needs a document")
	}
	if prev := doc.ActiveElement(); prev != nil {
		s.fireKey(prev, "keydown", "Tab", "Tab", opts.Shift)
	}
	s.moveFocus(doc, opts.Shift)
	if next := doc.ActiveElement(); next != nil {
		s.fireKey(next, "keyup", "Tab", "Tab", opts.Shift)
	}
	return nil
}
