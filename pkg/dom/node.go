package dom

import "fmt"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <input>, etc.
	KindText                 // Plain text node
	KindFragment             // Grouping without a wrapper element
	KindRaw                  // Raw HTML (dangerous)
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Attrs holds element attributes keyed by attribute name.
//
// Values may be strings, bools (for boolean attributes), numbers,
// []string (for class lists), or nested maps (for style and data-*
// expansion). See ApplyAttrs for the dispatch rules.
type Attrs map[string]any

// Node is an in-memory document node. There is no host DOM: the Node
// tree itself is the document representation, and pkg/render turns it
// into HTML text.
type Node struct {
	Kind     Kind    // Node type
	Tag      string  // Element tag name (e.g., "div")
	Attrs    Attrs   // Applied attributes
	Children []*Node // Child nodes
	Text     string  // For KindText and KindRaw
}

// Text creates a text node. Text content is always literal: it is
// escaped when serialized and never parsed as markup.
func Text(content string) *Node {
	return &Node{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *Node {
	return &Node{
		Kind: KindRaw,
		Text: html,
	}
}

// NewFragment groups nodes without a wrapper element. Appending a
// fragment into another node moves its children there and leaves the
// fragment empty.
func NewFragment(children ...*Node) *Node {
	node := &Node{
		Kind:     KindFragment,
		Children: make([]*Node, 0, len(children)),
	}
	for _, child := range children {
		if child != nil {
			node.Children = append(node.Children, child)
		}
	}
	return node
}

// Clone returns a deep copy of the node. Reusing one subtree in
// several places requires cloning, since appending moves fragments
// and shares pointers otherwise.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	clone := &Node{
		Kind: n.Kind,
		Tag:  n.Tag,
		Text: n.Text,
	}
	if n.Attrs != nil {
		clone.Attrs = make(Attrs, len(n.Attrs))
		for k, v := range n.Attrs {
			clone.Attrs[k] = v
		}
	}
	if len(n.Children) > 0 {
		clone.Children = make([]*Node, 0, len(n.Children))
		for _, child := range n.Children {
			clone.Children = append(clone.Children, child.Clone())
		}
	}
	return clone
}

// IsVoid reports whether the node is an element that cannot hold
// child content.
func (n *Node) IsVoid() bool {
	return n != nil && n.Kind == KindElement && IsVoidElement(n.Tag)
}

// First returns the first child, or nil.
func (n *Node) First() *Node {
	if n == nil || len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// Find returns the first descendant element with the given tag,
// searching depth-first, or nil. Useful in tests and when unwrapping
// label-wrapped controls.
func (n *Node) Find(tag string) *Node {
	if n == nil {
		return nil
	}
	for _, child := range n.Children {
		if child.Kind == KindElement && child.Tag == tag {
			return child
		}
		if found := child.Find(tag); found != nil {
			return found
		}
	}
	return nil
}

// TextContent returns the concatenated text of the node and its
// descendants, ignoring raw HTML nodes.
func (n *Node) TextContent() string {
	if n == nil {
		return ""
	}
	if n.Kind == KindText {
		return n.Text
	}
	var out string
	for _, child := range n.Children {
		out += child.TextContent()
	}
	return out
}
