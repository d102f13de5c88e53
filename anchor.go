package domkit

import "github.com/domkit-dev/domkit/pkg/dom"

// Anchor builds an <a> element with the given text. When href is
// empty, no href attribute is emitted at all.
func Anchor(text, href string, attrs dom.Attrs) *dom.Node {
	a := mergeAttrs(attrs, nil)
	if href != "" {
		a["href"] = href
	}
	return dom.NewElement("a", text, a)
}

// Image builds an <img> element with the given source.
func Image(src string, attrs dom.Attrs) *dom.Node {
	a := mergeAttrs(attrs, nil)
	a["src"] = src
	return dom.NewElement("img", nil, a)
}

// LabelFor builds a <label> element. When target is non-empty it
// becomes the label's for attribute.
func LabelFor(content any, target string, attrs dom.Attrs) *dom.Node {
	a := mergeAttrs(attrs, nil)
	if target != "" {
		a["for"] = target
	}
	return dom.NewElement("label", content, a)
}
