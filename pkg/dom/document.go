package dom

// Document owns an element tree and tracks focus. It also models the
// capabilities of the hosting environment: environments predating the
// PointerEvent or InputEvent constructors can be simulated by disabling
// the corresponding capability.
type Document struct {
	root   *Element
	active *Element

	pointerEvents bool
	inputEvents   bool

	dispatchHooks []*dispatchHook
}

type dispatchHook struct {
	fn func(*Event)
}

// DocumentOption configures a new document.
type DocumentOption func(*Document)

// WithoutPointerEvents simulates an environment lacking a PointerEvent
// constructor. Pointer dispatch becomes a silent no-op.
func WithoutPointerEvents() DocumentOption {
	return func(d *Document) { d.pointerEvents = false }
}

// WithoutInputEvents simulates an environment lacking an InputEvent
// constructor. Input events are still dispatched as generic events but lose
// their inputType/data payload.
func WithoutInputEvents() DocumentOption {
	return func(d *Document) { d.inputEvents = false }
}

// NewDocument creates an empty document with a body root.
func NewDocument(opts ...DocumentOption) *Document {
	d := &Document{pointerEvents: true, inputEvents: true}
	for _, opt := range opts {
		opt(d)
	}
	d.root = d.CreateElement("body")
	return d
}

// Root returns the document root element.
func (d *Document) Root() *Element { return d.root }

// CreateElement realizes an element owned by this document. The element's
// Kind is assigned from the tag, giving classification a constructor
// identity to check before falling back to tag-name comparison.
func (d *Document) CreateElement(tag string) *Element {
	el := NewElement(tag)
	el.doc = d
	el.kind = kindForTag(el.tag)
	return el
}

// ActiveElement returns the currently focused element, or nil when nothing
// holds focus.
func (d *Document) ActiveElement() *Element { return d.active }

// SupportsPointerEvents reports whether the environment realizes pointer
// event constructors.
func (d *Document) SupportsPointerEvents() bool { return d.pointerEvents }

// SupportsInputEvents reports whether the environment realizes input event
// constructors.
func (d *Document) SupportsInputEvents() bool { return d.inputEvents }

// GetElementByID returns the first element in document order with the id,
// or nil.
func (d *Document) GetElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	var found *Element
	d.root.walk(func(el *Element) bool {
		if el.ID() == id {
			found = el
			return false
		}
		return true
	})
	return found
}

// QuerySelectorAll returns all elements under the root matching the
// selector list, in document order.
func (d *Document) QuerySelectorAll(sel string) []*Element {
	return d.root.QuerySelectorAll(sel)
}

// AddDispatchHook subscribes fn to every event dispatched to any element in
// this document, before bubbling begins. The returned func removes the
// hook. Hooks observe non-bubbling events too, which plain root listeners
// would miss.
func (d *Document) AddDispatchHook(fn func(*Event)) func() {
	h := &dispatchHook{fn: fn}
	d.dispatchHooks = append(d.dispatchHooks, h)
	return func() {
		for i, cand := range d.dispatchHooks {
			if cand == h {
				d.dispatchHooks = append(d.dispatchHooks[:i:i], d.dispatchHooks[i+1:]...)
				return
			}
		}
	}
}

func (d *Document) notifyDispatch(ev *Event) {
	for _, h := range append([]*dispatchHook(nil), d.dispatchHooks...) {
		h.fn(ev)
	}
}

// setActive moves focus, dispatching blur/focusout on the old element and
// focus/focusin on the new one. focus and blur do not bubble.
func (d *Document) setActive(el *Element) {
	old := d.active
	if old == el {
		return
	}
	d.active = el
	if old != nil {
		old.DispatchEvent(&Event{Type: "blur"})
		old.DispatchEvent(&Event{Type: "focusout", Bubbles: true})
	}
	if el != nil {
		el.DispatchEvent(&Event{Type: "focus"})
		el.DispatchEvent(&Event{Type: "focusin", Bubbles: true})
	}
}

// Focus moves document focus to the element. It is a no-op when the element
// is detached or already active. Reports whether native focus management
// handled the call.
func (e *Element) Focus() bool {
	if e.doc == nil {
		return false
	}
	e.doc.setActive(e)
	return true
}

// Blur removes focus from the element if it currently holds it. Reports
// whether native focus management handled the call.
func (e *Element) Blur() bool {
	if e.doc == nil {
		return false
	}
	if e.doc.active == e {
		e.doc.setActive(nil)
	}
	return true
}
