package frag

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/domkit-dev/domkit/internal/errors"
	"github.com/domkit-dev/domkit/pkg/dom"
)

// Parse parses markup into a document. An empty source is valid and
// yields an empty document with the usual html/head/body skeleton.
func Parse(source string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(source))
	if err != nil {
		return nil, errors.FromError(err, errors.CodeParseFailed)
	}
	return doc, nil
}

// Body returns the body element of the parsed document.
func Body(source string) (*html.Node, error) {
	doc, err := Parse(source)
	if err != nil {
		return nil, err
	}
	return findBody(doc), nil
}

// Nodes parses markup and returns the body's children converted to
// dom nodes. Empty input yields an empty slice.
func Nodes(source string) ([]*dom.Node, error) {
	body, err := Body(source)
	if err != nil {
		return nil, err
	}
	nodes := make([]*dom.Node, 0)
	if body == nil {
		return nodes, nil
	}
	for child := body.FirstChild; child != nil; child = child.NextSibling {
		if converted := Convert(child); converted != nil {
			nodes = append(nodes, converted)
		}
	}
	return nodes, nil
}

// Convert translates a parsed html.Node subtree into a dom.Node
// subtree. Comments, doctypes, and other non-content nodes convert
// to nil.
func Convert(n *html.Node) *dom.Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case html.TextNode:
		return dom.Text(n.Data)
	case html.ElementNode:
		node := &dom.Node{
			Kind:     dom.KindElement,
			Tag:      n.Data,
			Attrs:    make(dom.Attrs, len(n.Attr)),
			Children: make([]*dom.Node, 0),
		}
		for _, attr := range n.Attr {
			if dom.IsBooleanAttr(attr.Key) {
				node.Attrs[attr.Key] = true
				continue
			}
			node.Attrs[attr.Key] = attr.Val
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if converted := Convert(child); converted != nil {
				node.Children = append(node.Children, converted)
			}
		}
		return node
	default:
		return nil
	}
}

// findBody locates the body element in a parsed document.
func findBody(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if body := findBody(child); body != nil {
			return body
		}
	}
	return nil
}
