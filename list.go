package domkit

import (
	"github.com/domkit-dev/domkit/pkg/dom"
	"github.com/domkit-dev/domkit/pkg/frag"
)

// List builds a <ul> with one <li> per item. See buildList for the
// recognized options. An empty items collection yields an empty list.
func List(items []any, attrs dom.Attrs) *dom.Node {
	return buildList("ul", items, attrs)
}

// OrderedList builds an <ol> with one <li> per item.
func OrderedList(items []any, attrs dom.Attrs) *dom.Node {
	return buildList("ol", items, attrs)
}

// buildList renders list items into the given container tag.
// Recognized options:
//
//   - "encode": escape string items (default true)
//   - "item": attribute mapping applied to every <li>
//   - "separator": literal markup inserted between items
//
// String items become the li's text, node items are appended as-is,
// and anything else is stringified.
func buildList(tag string, items []any, attrs dom.Attrs) *dom.Node {
	a := mergeAttrs(attrs, nil)
	encode := popBool(a, "encode", true)
	separator := popString(a, "separator", "")
	itemAttrs := popAttrs(a, "item")

	var sep []*dom.Node
	if separator != "" {
		sep, _ = frag.Nodes(separator)
	}

	children := make([]*dom.Node, 0, len(items))
	for i, item := range items {
		if i > 0 && len(sep) > 0 {
			children = append(children, cloneAll(sep)...)
		}
		var content any
		switch v := item.(type) {
		case string:
			content = textOrRaw(v, encode)
		case *dom.Node:
			content = v
		case nil:
			content = nil
		default:
			content = textOrRaw(dom.AttrString(v), encode)
		}
		children = append(children, dom.NewElement("li", content, itemAttrs))
	}

	return dom.NewElement(tag, children, a)
}
