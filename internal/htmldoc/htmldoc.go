// Package htmldoc is a thin element-tree layer over golang.org/x/net/html.
//
// Pages are assembled as *html.Node trees and serialized once, so output
// escaping and HTML5 well-formedness are handled in a single place.
package htmldoc

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// El constructs an element node with the given attributes and children.
// Children must not already be attached to another tree.
func El(tag string, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

// Attrs builds an attribute list from alternating key/value pairs.
func Attrs(pairs ...string) []html.Attribute {
	if len(pairs)%2 != 0 {
		panic("htmldoc.Attrs: odd number of arguments")
	}
	attrs := make([]html.Attribute, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		attrs = append(attrs, html.Attribute{Key: pairs[i], Val: pairs[i+1]})
	}
	return attrs
}

// Text constructs a text node. Serialization escapes it.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Append attaches each fragment node as a child of parent, skipping nils.
func Append(parent *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		if c != nil {
			parent.AppendChild(c)
		}
	}
	return parent
}

// ParseFragment parses serialized HTML into detached nodes, as if it appeared
// inside a div element.
func ParseFragment(src string) ([]*html.Node, error) {
	nodes, err := html.ParseFragment(strings.NewReader(src), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML fragment: %w", err)
	}
	return nodes, nil
}

// Clone deep-copies a node so the same fragment can appear in several pages.
// An *html.Node has a single parent; attaching a shared node twice panics.
func Clone(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		c.Attr = append([]html.Attribute(nil), n.Attr...)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(Clone(child))
	}
	return c
}

// CloneFragment deep-copies a node list.
func CloneFragment(nodes []*html.Node) []*html.Node {
	out := make([]*html.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Clone(n))
	}
	return out
}

// RenderDocument serializes a page root prefixed with the HTML5 doctype.
func RenderDocument(w io.Writer, root *html.Node) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if err := html.Render(w, root); err != nil {
		return fmt.Errorf("failed to render HTML document: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return nil
}
