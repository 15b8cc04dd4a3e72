// Package query provides element lookups bound to a root element, plus a
// process-wide binding cache for the current default root.
package query

import (
	"strings"

	"github.com/probehq/domsim/internal/errs"
	"github.com/probehq/domsim/pkg/dom"
)

// Queries is a lookup table bound to a root element. Lookups traverse the
// live tree on every call; nothing is snapshotted at bind time.
type Queries struct {
	root *dom.Element
}

// New binds a lookup table to a root element.
func New(root *dom.Element) *Queries {
	return &Queries{root: root}
}

// Root returns the bound root element.
func (q *Queries) Root() *dom.Element { return q.root }

func (q *Queries) first(matches []*dom.Element, kind, needle string) (*dom.Element, error) {
	if len(matches) == 0 {
		return nil, errs.Newf(errs.NotFound, "no element with %s %q under %s",
			kind, needle, q.root.TagName())
	}
	return matches[0], nil
}

// AllBySelector returns all descendants matching the selector.
func (q *Queries) AllBySelector(sel string) []*dom.Element {
	return q.root.QuerySelectorAll(sel)
}

// BySelector returns the first descendant matching the selector.
func (q *Queries) BySelector(sel string) (*dom.Element, error) {
	return q.first(q.AllBySelector(sel), "selector", sel)
}

// AllByText returns elements whose trimmed text content equals the text,
// deepest matches only: a wrapper whose sole text comes from a matching
// child is skipped in favor of the child.
func (q *Queries) AllByText(text string) []*dom.Element {
	var out []*dom.Element
	matches := func(el *dom.Element) bool {
		return strings.TrimSpace(el.TextContent()) == text
	}
	for _, el := range q.root.QuerySelectorAll("*") {
		if !matches(el) {
			continue
		}
		deeper := false
		for _, c := range el.Children() {
			if matches(c) {
				deeper = true
				break
			}
		}
		if !deeper {
			out = append(out, el)
		}
	}
	return out
}

// ByText returns the first element whose trimmed text content equals text.
func (q *Queries) ByText(text string) (*dom.Element, error) {
	return q.first(q.AllByText(text), "text", text)
}

// ByLabelText returns the control labelled by the given text, either
// through the label's for attribute or by nesting.
func (q *Queries) ByLabelText(text string) (*dom.Element, error) {
	for _, label := range q.root.QuerySelectorAll("label") {
		if strings.TrimSpace(label.TextContent()) != text {
			continue
		}
		if forID := label.GetAttribute("for"); forID != "" {
			if doc := label.Document(); doc != nil {
				if control := doc.GetElementByID(forID); control != nil {
					return control, nil
				}
			}
		}
		if control := label.QuerySelector("input, select, textarea, button"); control != nil {
			return control, nil
		}
	}
	for _, el := range q.root.QuerySelectorAll("[aria-label]") {
		if el.GetAttribute("aria-label") == text {
			return el, nil
		}
	}
	return nil, errs.Newf(errs.NotFound, "no control labelled %q", text)
}

// ByPlaceholderText returns the first control with the given placeholder.
func (q *Queries) ByPlaceholderText(text string) (*dom.Element, error) {
	var matches []*dom.Element
	for _, el := range q.root.QuerySelectorAll("[placeholder]") {
		if el.GetAttribute("placeholder") == text {
			matches = append(matches, el)
		}
	}
	return q.first(matches, "placeholder", text)
}

// ByTestID returns the first element with the given data-testid.
func (q *Queries) ByTestID(id string) (*dom.Element, error) {
	var matches []*dom.Element
	for _, el := range q.root.QuerySelectorAll("[data-testid]") {
		if el.GetAttribute("data-testid") == id {
			matches = append(matches, el)
		}
	}
	return q.first(matches, "test id", id)
}

// AllByRole returns elements computing to the given ARIA-style role.
func (q *Queries) AllByRole(role string) []*dom.Element {
	var out []*dom.Element
	for _, el := range q.root.QuerySelectorAll("*") {
		if roleOf(el) == role {
			out = append(out, el)
		}
	}
	return out
}

// ByRole returns the first element computing to the given role.
func (q *Queries) ByRole(role string) (*dom.Element, error) {
	return q.first(q.AllByRole(role), "role", role)
}

// roleOf computes the effective role of an element: an explicit role
// attribute wins, then the implicit role of the tag and input type.
func roleOf(el *dom.Element) string {
	if r := el.GetAttribute("role"); r != "" {
		return r
	}
	switch el.TagName() {
	case "button":
		return "button"
	case "a":
		if el.HasAttribute("href") {
			return "link"
		}
	case "select":
		return "combobox"
	case "option":
		return "option"
	case "textarea":
		return "textbox"
	case "form":
		return "form"
	case "input":
		switch strings.ToLower(el.GetAttribute("type")) {
		case "checkbox":
			return "checkbox"
		case "radio":
			return "radio"
		case "submit", "button":
			return "button"
		case "", "text", "email", "password", "search", "tel", "url":
			return "textbox"
		}
	}
	return ""
}
