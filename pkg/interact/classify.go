package interact

import (
	"strconv"
	"strings"

	"github.com/probehq/domsim/pkg/dom"
)

// Classification checks the document-assigned realization kind first and
// only then falls back to the tag name. Hand-built shim elements never get
// a kind assigned, so the fallback keeps them classifiable; elements from a
// different document realization classify correctly either way.

func isKindOrTag(el *dom.Element, kind dom.Kind, tag string) bool {
	if el == nil {
		return false
	}
	return el.Kind() == kind || el.TagName() == tag
}

// IsInput reports whether the element is an input control.
func IsInput(el *dom.Element) bool { return isKindOrTag(el, dom.KindInput, "input") }

// IsTextArea reports whether the element is a textarea.
func IsTextArea(el *dom.Element) bool { return isKindOrTag(el, dom.KindTextArea, "textarea") }

// IsSelect reports whether the element is a select control.
func IsSelect(el *dom.Element) bool { return isKindOrTag(el, dom.KindSelect, "select") }

// IsOption reports whether the element is an option.
func IsOption(el *dom.Element) bool { return isKindOrTag(el, dom.KindOption, "option") }

// IsButton reports whether the element is a button.
func IsButton(el *dom.Element) bool { return isKindOrTag(el, dom.KindButton, "button") }

// IsLabel reports whether the element is a label.
func IsLabel(el *dom.Element) bool { return isKindOrTag(el, dom.KindLabel, "label") }

// IsForm reports whether the element is a form.
func IsForm(el *dom.Element) bool { return isKindOrTag(el, dom.KindForm, "form") }

// IsDisabled reports whether the element carries a disabled attribute.
func IsDisabled(el *dom.Element) bool {
	return el != nil && el.HasAttribute("disabled")
}

// InputType returns the lowercased type attribute of an input, defaulting
// to "text".
func InputType(el *dom.Element) string {
	t := strings.ToLower(el.GetAttribute("type"))
	if t == "" {
		return "text"
	}
	return t
}

func isCheckbox(el *dom.Element) bool {
	return IsInput(el) && InputType(el) == "checkbox"
}

func isRadio(el *dom.Element) bool {
	return IsInput(el) && InputType(el) == "radio"
}

// IsFocusable reports whether the element can receive focus: non-disabled
// natively focusable tags, anchors with an href, or any element with a
// non-negative explicit tabindex. Computed visibility is not consulted.
func IsFocusable(el *dom.Element) bool {
	if el == nil || IsDisabled(el) {
		return false
	}
	switch {
	case IsInput(el), IsTextArea(el), IsSelect(el), IsButton(el):
		return true
	case isKindOrTag(el, dom.KindAnchor, "a"):
		return el.HasAttribute("href")
	}
	if el.HasAttribute("tabindex") {
		n, err := strconv.Atoi(strings.TrimSpace(el.GetAttribute("tabindex")))
		return err == nil && n >= 0
	}
	return false
}

// IsEditable reports whether the element is an editable surface: a
// contenteditable element or a value-bearing control.
func IsEditable(el *dom.Element) bool {
	if el == nil {
		return false
	}
	if el.HasAttribute("contenteditable") &&
		!strings.EqualFold(el.GetAttribute("contenteditable"), "false") {
		return true
	}
	return IsInput(el) || IsTextArea(el)
}
