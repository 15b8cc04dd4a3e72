package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ParseDocument realizes a document from HTML markup. Control state is
// seeded from attributes: value, checked and selected attributes become the
// element's live state, as a browser does when first building the tree.
func ParseDocument(r io.Reader, opts ...DocumentOption) (*Document, error) {
	node, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	doc := &Document{pointerEvents: true, inputEvents: true}
	for _, opt := range opts {
		opt(doc)
	}
	body := findBody(node)
	if body == nil {
		return nil, fmt.Errorf("parse html: no body element")
	}
	doc.root = convertNode(body, doc)
	return doc, nil
}

// ParseString is ParseDocument over a string. Fragments are fine: the HTML
// parser wraps them in html/body.
func ParseString(markup string, opts ...DocumentOption) (*Document, error) {
	return ParseDocument(strings.NewReader(markup), opts...)
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findBody(c); found != nil {
			return found
		}
	}
	return nil
}

func convertNode(n *html.Node, doc *Document) *Element {
	el := doc.CreateElement(n.Data)
	for _, a := range n.Attr {
		el.SetAttribute(a.Key, a.Val)
	}
	switch el.tag {
	case "input", "textarea":
		el.value = el.GetAttribute("value")
		el.checked = el.HasAttribute("checked")
	case "option":
		el.selected = el.HasAttribute("selected")
	}
	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			text.WriteString(c.Data)
		case html.ElementNode:
			el.AppendChild(convertNode(c, doc))
		}
	}
	el.text = text.String()
	if el.tag == "textarea" && el.value == "" {
		el.value = el.text
	}
	return el
}
