// Package el provides per-tag element constructors for domkit.
//
// Each constructor takes a variadic argument list dispatched on
// runtime type: dom.Attrs mappings apply attributes, *dom.Node and
// []*dom.Node values append children, and strings append literal
// text. Because domkit never parses string content as markup, el is
// the way callers pre-build rich content:
//
//	card := el.Div(dom.Attrs{"class": "card"},
//	    el.H2("Title"),
//	    el.P("Body ", el.Em("emphasised"), "."),
//	)
package el
