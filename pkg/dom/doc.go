// Package dom provides the in-memory document node model for domkit.
//
// Node is the fundamental building block representing elements, text,
// fragments, and raw HTML. Attrs holds attribute values. There is no
// host DOM: a Node tree is the document representation, and
// pkg/render serializes it to HTML text.
//
// # Building nodes
//
// NewElement builds an element from a tag name, a content value, and
// an attribute mapping:
//
//	node := dom.NewElement("p", "hello", dom.Attrs{"class": "note"})
//
// Content dispatch is by runtime shape (see AppendContent); string
// content is always literal text, never parsed markup. Void elements
// such as img and input discard content.
//
// # Attribute rules
//
// ApplyAttrs omits nil, false, and empty-string values, stores
// boolean attributes (required, checked, ...) as native bools, joins
// []string class lists, and expands style and data-* mappings. See
// ApplyAttrs for the full dispatch table.
package dom
