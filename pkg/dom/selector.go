package dom

import (
	"fmt"
	"strings"
)

// The selector engine covers the subset gesture simulation and the query
// table need: comma-separated groups of simple selectors combining a tag
// name, an #id, and [attr] / [attr=value] conditions. No combinators.

type attrCond struct {
	name     string
	value    string
	hasValue bool
}

type simpleSelector struct {
	tag   string
	id    string
	attrs []attrCond
}

func (s simpleSelector) matches(el *Element) bool {
	if s.tag != "" && s.tag != "*" && el.tag != s.tag {
		return false
	}
	if s.id != "" && el.ID() != s.id {
		return false
	}
	for _, a := range s.attrs {
		if !el.HasAttribute(a.name) {
			return false
		}
		if a.hasValue && el.GetAttribute(a.name) != a.value {
			return false
		}
	}
	return true
}

func parseSelectorList(sel string) ([]simpleSelector, error) {
	var list []simpleSelector
	for _, part := range strings.Split(sel, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty selector in %q", sel)
		}
		s, err := parseSimpleSelector(part)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, nil
}

func parseSimpleSelector(part string) (simpleSelector, error) {
	var s simpleSelector
	i := 0
	isIdent := func(c byte) bool {
		return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
			c >= '0' && c <= '9' || c == '-' || c == '_'
	}
	readIdent := func() string {
		start := i
		for i < len(part) && isIdent(part[i]) {
			i++
		}
		return part[start:i]
	}
	if i < len(part) && part[i] == '*' {
		s.tag = "*"
		i++
	} else if i < len(part) && isIdent(part[i]) {
		s.tag = strings.ToLower(readIdent())
	}
	for i < len(part) {
		switch part[i] {
		case '#':
			i++
			s.id = readIdent()
			if s.id == "" {
				return s, fmt.Errorf("selector %q: empty id", part)
			}
		case '[':
			i++
			name := strings.ToLower(readIdent())
			if name == "" {
				return s, fmt.Errorf("selector %q: empty attribute name", part)
			}
			cond := attrCond{name: name}
			if i < len(part) && part[i] == '=' {
				i++
				cond.hasValue = true
				if i < len(part) && (part[i] == '"' || part[i] == '\'') {
					quote := part[i]
					i++
					start := i
					for i < len(part) && part[i] != quote {
						i++
					}
					if i >= len(part) {
						return s, fmt.Errorf("selector %q: unterminated quote", part)
					}
					cond.value = part[start:i]
					i++
				} else {
					start := i
					for i < len(part) && part[i] != ']' {
						i++
					}
					cond.value = part[start:i]
				}
			}
			if i >= len(part) || part[i] != ']' {
				return s, fmt.Errorf("selector %q: missing ']'", part)
			}
			i++
			s.attrs = append(s.attrs, cond)
		default:
			return s, fmt.Errorf("selector %q: unexpected %q", part, part[i])
		}
	}
	if s.tag == "" && s.id == "" && len(s.attrs) == 0 {
		return s, fmt.Errorf("selector %q: empty", part)
	}
	return s, nil
}

// Matches reports whether the element matches any selector in the list.
// Malformed selectors match nothing.
func (e *Element) Matches(sel string) bool {
	list, err := parseSelectorList(sel)
	if err != nil {
		return false
	}
	for _, s := range list {
		if s.matches(e) {
			return true
		}
	}
	return false
}

// Closest returns the nearest ancestor (self included) matching the
// selector list, or nil.
func (e *Element) Closest(sel string) *Element {
	for node := e; node != nil; node = node.parent {
		if node.Matches(sel) {
			return node
		}
	}
	return nil
}

// QuerySelectorAll returns the element's descendants matching the selector
// list, in document order. The element itself is excluded, as in the DOM.
func (e *Element) QuerySelectorAll(sel string) []*Element {
	list, err := parseSelectorList(sel)
	if err != nil {
		return nil
	}
	var out []*Element
	e.walk(func(el *Element) bool {
		if el == e {
			return true
		}
		for _, s := range list {
			if s.matches(el) {
				out = append(out, el)
				break
			}
		}
		return true
	})
	return out
}

// QuerySelector returns the first match of QuerySelectorAll, or nil.
func (e *Element) QuerySelector(sel string) *Element {
	all := e.QuerySelectorAll(sel)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}
