package dom

import "strings"

// Kind identifies the realized constructor of an element within its owning
// document. Elements built by hand (DOM shims, detached nodes) carry
// KindGeneric; consumers that need a semantic role must fall back to the
// tag name in that case.
type Kind int

const (
	KindGeneric Kind = iota
	KindInput
	KindTextArea
	KindSelect
	KindOption
	KindButton
	KindLabel
	KindForm
	KindAnchor
)

func kindForTag(tag string) Kind {
	switch tag {
	case "input":
		return KindInput
	case "textarea":
		return KindTextArea
	case "select":
		return KindSelect
	case "option":
		return KindOption
	case "button":
		return KindButton
	case "label":
		return KindLabel
	case "form":
		return KindForm
	case "a":
		return KindAnchor
	default:
		return KindGeneric
	}
}

// Element is a single node in the simulated tree. It carries the control
// state (value, checked, selected, files) that gesture simulation mutates.
type Element struct {
	doc      *Document
	parent   *Element
	children []*Element
	tag      string
	kind     Kind
	attrs    map[string]string
	text     string

	value    string
	checked  bool
	selected bool
	files    []File

	listeners map[string][]*listener
}

type listener struct {
	fn func(*Event)
}

// NewElement creates a detached element with no owning document. Its Kind
// stays KindGeneric even for known tags, mimicking a foreign-realm shim.
func NewElement(tag string) *Element {
	return &Element{
		tag:   strings.ToLower(tag),
		attrs: map[string]string{},
	}
}

// TagName returns the lowercase tag name.
func (e *Element) TagName() string { return e.tag }

// Kind returns the document-assigned realization kind.
func (e *Element) Kind() Kind { return e.kind }

// Document returns the owning document, or nil for detached elements.
func (e *Element) Document() *Document { return e.doc }

// Parent returns the parent element, or nil at the root.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the child elements in order.
func (e *Element) Children() []*Element { return e.children }

// ID returns the id attribute.
func (e *Element) ID() string { return e.attrs["id"] }

// GetAttribute returns the attribute value, or "" when absent.
func (e *Element) GetAttribute(name string) string {
	return e.attrs[strings.ToLower(name)]
}

// HasAttribute reports whether the attribute is present, even if empty.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.attrs[strings.ToLower(name)]
	return ok
}

// SetAttribute sets an attribute value.
func (e *Element) SetAttribute(name, value string) {
	e.attrs[strings.ToLower(name)] = value
}

// RemoveAttribute deletes an attribute.
func (e *Element) RemoveAttribute(name string) {
	delete(e.attrs, strings.ToLower(name))
}

// AppendChild attaches a child, adopting it (and its subtree) into this
// element's document.
func (e *Element) AppendChild(child *Element) {
	child.parent = e
	e.children = append(e.children, child)
	if e.doc != nil {
		adopt(child, e.doc)
	}
}

func adopt(el *Element, doc *Document) {
	el.doc = doc
	if el.kind == KindGeneric {
		el.kind = kindForTag(el.tag)
	}
	for _, c := range el.children {
		adopt(c, doc)
	}
}

// TextContent returns the element's own text followed by the text of all
// descendants in order.
func (e *Element) TextContent() string {
	var b strings.Builder
	b.WriteString(e.text)
	for _, c := range e.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// SetTextContent replaces the subtree with plain text.
func (e *Element) SetTextContent(text string) {
	e.children = nil
	e.text = text
}

// Value returns the control value. Options default to their text content
// when no value attribute is present, as in HTML.
func (e *Element) Value() string {
	if e.tag == "option" && e.value == "" {
		if v, ok := e.attrs["value"]; ok {
			return v
		}
		return e.TextContent()
	}
	if e.tag == "select" {
		for _, opt := range e.QuerySelectorAll("option") {
			if opt.Selected() {
				return opt.Value()
			}
		}
		return ""
	}
	return e.value
}

// SetValue overwrites the control value.
func (e *Element) SetValue(v string) { e.value = v }

// Checked reports the checked state of a checkbox or radio.
func (e *Element) Checked() bool { return e.checked }

// SetChecked overwrites the checked state.
func (e *Element) SetChecked(v bool) { e.checked = v }

// Selected reports the selectedness of an option.
func (e *Element) Selected() bool { return e.selected }

// SetSelected overwrites the selectedness of an option.
func (e *Element) SetSelected(v bool) { e.selected = v }

// Files returns the assigned file list.
func (e *Element) Files() []File { return e.files }

// SetFiles overrides the file list. The property stays writable regardless
// of how it was first assigned.
func (e *Element) SetFiles(files []File) { e.files = files }

// AddEventListener subscribes fn to events of the given type dispatched to
// this element or bubbling through it. The returned func removes the
// listener.
func (e *Element) AddEventListener(typ string, fn func(*Event)) func() {
	if e.listeners == nil {
		e.listeners = map[string][]*listener{}
	}
	l := &listener{fn: fn}
	e.listeners[typ] = append(e.listeners[typ], l)
	return func() {
		list := e.listeners[typ]
		for i, cand := range list {
			if cand == l {
				e.listeners[typ] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// walk visits the subtree in document (pre-) order, self included.
func (e *Element) walk(visit func(*Element) bool) bool {
	if !visit(e) {
		return false
	}
	for _, c := range e.children {
		if !c.walk(visit) {
			return false
		}
	}
	return true
}
