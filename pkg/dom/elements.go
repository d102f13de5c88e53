package dom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":    true,
	"base":    true,
	"br":      true,
	"col":     true,
	"command": true,
	"embed":   true,
	"hr":      true,
	"img":     true,
	"input":   true,
	"keygen":  true,
	"link":    true,
	"meta":    true,
	"param":   true,
	"source":  true,
	"track":   true,
	"wbr":     true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// NewElement creates an element node with the given tag, applies the
// attributes, then renders the content into it. Void tags take
// attributes but silently discard content. Unknown tags are built
// as-is; no vocabulary check is performed.
func NewElement(tag string, content any, attrs Attrs) *Node {
	node := &Node{
		Kind:     KindElement,
		Tag:      tag,
		Attrs:    make(Attrs),
		Children: make([]*Node, 0),
	}
	ApplyAttrs(node, attrs)
	AppendContent(node, content)
	return node
}

// AppendContent renders content into the node, dispatching on the
// content's runtime shape:
//
//   - *Node: appended directly; a fragment's children are moved into
//     the destination and the fragment is left empty
//   - []*Node: each entry appended in order (nil entries skipped)
//   - []any: each entry rendered recursively
//   - string: appended as a literal text node, never parsed as markup
//   - nil or anything else: no-op
//
// Content supplied for a void element is discarded.
func AppendContent(node *Node, content any) {
	if node == nil || node.IsVoid() {
		return
	}

	switch v := content.(type) {
	case nil:

	case *Node:
		appendNode(node, v)

	case []*Node:
		for _, child := range v {
			appendNode(node, child)
		}

	case []any:
		for _, item := range v {
			AppendContent(node, item)
		}

	case string:
		if v != "" {
			node.Children = append(node.Children, Text(v))
		}
	}
}

// appendNode appends a single child, moving fragment children into the
// destination.
func appendNode(node, child *Node) {
	if child == nil {
		return
	}
	if child.Kind == KindFragment {
		node.Children = append(node.Children, child.Children...)
		child.Children = nil
		return
	}
	node.Children = append(node.Children, child)
}
