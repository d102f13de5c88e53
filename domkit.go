// Package domkit builds HTML document nodes from declarative
// parameters.
//
// Every constructor reduces to pkg/dom's generic element builder: it
// normalizes its parameters into an attribute mapping, pops the
// options it recognizes, and delegates. Constructors take the
// required values as positional parameters followed by an optional
// attribute mapping; pass nil when no extra attributes are needed.
//
//	form := domkit.Form("/search?q=go", "GET", nil,
//	    domkit.TextField("q", "go", nil),
//	    domkit.SubmitButton("Search", nil),
//	)
//	html, _ := render.ToString(form)
//
// String content is always literal text. To place markup inside a
// node, pre-build it with package el or parse it with pkg/frag.
package domkit

import (
	"github.com/domkit-dev/domkit/pkg/dom"
	"github.com/domkit-dev/domkit/pkg/merge"
)

// Item is one entry of an option, checkbox, or radio collection:
// Value is submitted, Text is displayed.
type Item struct {
	Value string
	Text  string
}

// Items is an ordered collection of entries, so generated output is
// deterministic.
type Items []Item

// mergeAttrs combines defaults and caller attributes into a fresh
// mapping the constructor owns. Caller values win over defaults; the
// caller's mapping is never mutated.
func mergeAttrs(attrs dom.Attrs, defaults dom.Attrs) dom.Attrs {
	merged, _ := merge.Merge(map[string]any{}, defaults, attrs)
	return dom.Attrs(merged)
}

// popString removes an option from the mapping and returns it as a
// string, or the default when absent.
func popString(attrs dom.Attrs, key, def string) string {
	value := merge.Remove(map[string]any(attrs), key)
	if value == nil {
		return def
	}
	return dom.AttrString(value)
}

// popBool removes an option from the mapping and returns it as a
// bool, or the default when absent or not a bool.
func popBool(attrs dom.Attrs, key string, def bool) bool {
	value := merge.Remove(map[string]any(attrs), key)
	if b, ok := value.(bool); ok {
		return b
	}
	return def
}

// popAttrs removes an option holding a nested attribute mapping.
func popAttrs(attrs dom.Attrs, key string) dom.Attrs {
	value := merge.Remove(map[string]any(attrs), key)
	switch v := value.(type) {
	case dom.Attrs:
		return v
	case map[string]any:
		return dom.Attrs(v)
	default:
		return nil
	}
}

// selectionSet normalizes a selection to a membership set. A scalar
// selection is a one-element set; nil selects nothing.
func selectionSet(selection any) map[string]bool {
	set := make(map[string]bool)
	switch v := selection.(type) {
	case nil:
	case string:
		set[v] = true
	case []string:
		for _, s := range v {
			set[s] = true
		}
	case []any:
		for _, s := range v {
			set[dom.AttrString(s)] = true
		}
	default:
		set[dom.AttrString(v)] = true
	}
	return set
}

// textOrRaw returns an escaped text node when encode is true and a
// raw markup node otherwise.
func textOrRaw(s string, encode bool) *dom.Node {
	if encode {
		return dom.Text(s)
	}
	return dom.Raw(s)
}

// cloneAll deep-copies a slice of nodes so the same separator markup
// can appear between several items.
func cloneAll(nodes []*dom.Node) []*dom.Node {
	out := make([]*dom.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Clone())
	}
	return out
}
