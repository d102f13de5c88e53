package el

import "github.com/domkit-dev/domkit/pkg/dom"

// newElement creates a node with the given tag and arguments.
// Arguments can be: nil, dom.Attrs, map[string]any, *dom.Node,
// []*dom.Node, or string.
func newElement(tag string, args []any) *dom.Node {
	node := dom.NewElement(tag, nil, nil)
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
		case dom.Attrs:
			dom.ApplyAttrs(node, v)
		case map[string]any:
			dom.ApplyAttrs(node, dom.Attrs(v))
		default:
			dom.AppendContent(node, arg)
		}
	}
	return node
}

// Text creates a text node.
func Text(content string) *dom.Node { return dom.Text(content) }

// Raw creates an unescaped HTML node. Use with caution.
func Raw(html string) *dom.Node { return dom.Raw(html) }

// Fragment groups children without a wrapper element.
func Fragment(children ...*dom.Node) *dom.Node { return dom.NewFragment(children...) }

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool { return dom.IsVoidElement(tag) }

// Document structure elements

func Html(args ...any) *dom.Node  { return newElement("html", args) }
func Head(args ...any) *dom.Node  { return newElement("head", args) }
func Body(args ...any) *dom.Node  { return newElement("body", args) }
func Title(args ...any) *dom.Node { return newElement("title", args) }
func Meta(args ...any) *dom.Node  { return newElement("meta", args) }
func Link(args ...any) *dom.Node  { return newElement("link", args) }
func Base(args ...any) *dom.Node  { return newElement("base", args) }

// Content sectioning elements

func Header(args ...any) *dom.Node  { return newElement("header", args) }
func Footer(args ...any) *dom.Node  { return newElement("footer", args) }
func Main(args ...any) *dom.Node    { return newElement("main", args) }
func Nav(args ...any) *dom.Node     { return newElement("nav", args) }
func Section(args ...any) *dom.Node { return newElement("section", args) }
func Article(args ...any) *dom.Node { return newElement("article", args) }
func Aside(args ...any) *dom.Node   { return newElement("aside", args) }
func H1(args ...any) *dom.Node      { return newElement("h1", args) }
func H2(args ...any) *dom.Node      { return newElement("h2", args) }
func H3(args ...any) *dom.Node      { return newElement("h3", args) }
func H4(args ...any) *dom.Node      { return newElement("h4", args) }
func H5(args ...any) *dom.Node      { return newElement("h5", args) }
func H6(args ...any) *dom.Node      { return newElement("h6", args) }

// Text content elements

func Div(args ...any) *dom.Node        { return newElement("div", args) }
func P(args ...any) *dom.Node          { return newElement("p", args) }
func Span(args ...any) *dom.Node       { return newElement("span", args) }
func Pre(args ...any) *dom.Node        { return newElement("pre", args) }
func Blockquote(args ...any) *dom.Node { return newElement("blockquote", args) }
func Ul(args ...any) *dom.Node         { return newElement("ul", args) }
func Ol(args ...any) *dom.Node         { return newElement("ol", args) }
func Li(args ...any) *dom.Node         { return newElement("li", args) }
func Dl(args ...any) *dom.Node         { return newElement("dl", args) }
func Dt(args ...any) *dom.Node         { return newElement("dt", args) }
func Dd(args ...any) *dom.Node         { return newElement("dd", args) }
func Hr(args ...any) *dom.Node         { return newElement("hr", args) }
func Figure(args ...any) *dom.Node     { return newElement("figure", args) }
func Figcaption(args ...any) *dom.Node { return newElement("figcaption", args) }

// Inline text semantics

func A(args ...any) *dom.Node      { return newElement("a", args) }
func Strong(args ...any) *dom.Node { return newElement("strong", args) }
func Em(args ...any) *dom.Node     { return newElement("em", args) }
func B(args ...any) *dom.Node      { return newElement("b", args) }
func I(args ...any) *dom.Node      { return newElement("i", args) }
func U(args ...any) *dom.Node      { return newElement("u", args) }
func Small(args ...any) *dom.Node  { return newElement("small", args) }
func Mark(args ...any) *dom.Node   { return newElement("mark", args) }
func Sub(args ...any) *dom.Node    { return newElement("sub", args) }
func Sup(args ...any) *dom.Node    { return newElement("sup", args) }
func Code(args ...any) *dom.Node   { return newElement("code", args) }
func Kbd(args ...any) *dom.Node    { return newElement("kbd", args) }
func Abbr(args ...any) *dom.Node   { return newElement("abbr", args) }
func Cite(args ...any) *dom.Node   { return newElement("cite", args) }
func Q(args ...any) *dom.Node      { return newElement("q", args) }
func Br(args ...any) *dom.Node     { return newElement("br", args) }
func Wbr(args ...any) *dom.Node    { return newElement("wbr", args) }

// Form elements

func Form(args ...any) *dom.Node     { return newElement("form", args) }
func Input(args ...any) *dom.Node    { return newElement("input", args) }
func Textarea(args ...any) *dom.Node { return newElement("textarea", args) }
func Select(args ...any) *dom.Node   { return newElement("select", args) }
func Option(args ...any) *dom.Node   { return newElement("option", args) }
func Optgroup(args ...any) *dom.Node { return newElement("optgroup", args) }
func Button(args ...any) *dom.Node   { return newElement("button", args) }
func Label(args ...any) *dom.Node    { return newElement("label", args) }
func Fieldset(args ...any) *dom.Node { return newElement("fieldset", args) }
func Legend(args ...any) *dom.Node   { return newElement("legend", args) }
func Datalist(args ...any) *dom.Node { return newElement("datalist", args) }
func Output(args ...any) *dom.Node   { return newElement("output", args) }
func Progress(args ...any) *dom.Node { return newElement("progress", args) }
func Meter(args ...any) *dom.Node    { return newElement("meter", args) }

// Table elements

func Table(args ...any) *dom.Node    { return newElement("table", args) }
func Thead(args ...any) *dom.Node    { return newElement("thead", args) }
func Tbody(args ...any) *dom.Node    { return newElement("tbody", args) }
func Tfoot(args ...any) *dom.Node    { return newElement("tfoot", args) }
func Tr(args ...any) *dom.Node       { return newElement("tr", args) }
func Th(args ...any) *dom.Node       { return newElement("th", args) }
func Td(args ...any) *dom.Node       { return newElement("td", args) }
func Caption(args ...any) *dom.Node  { return newElement("caption", args) }
func Colgroup(args ...any) *dom.Node { return newElement("colgroup", args) }
func Col(args ...any) *dom.Node      { return newElement("col", args) }

// Media elements

func Img(args ...any) *dom.Node    { return newElement("img", args) }
func Source(args ...any) *dom.Node { return newElement("source", args) }
func Video(args ...any) *dom.Node  { return newElement("video", args) }
func Audio(args ...any) *dom.Node  { return newElement("audio", args) }
func Track(args ...any) *dom.Node  { return newElement("track", args) }
func Iframe(args ...any) *dom.Node { return newElement("iframe", args) }
func Canvas(args ...any) *dom.Node { return newElement("canvas", args) }

// Interactive elements

func Details(args ...any) *dom.Node { return newElement("details", args) }
func Summary(args ...any) *dom.Node { return newElement("summary", args) }
func Dialog(args ...any) *dom.Node  { return newElement("dialog", args) }
func Menu(args ...any) *dom.Node    { return newElement("menu", args) }

// Scripting elements

func Script(args ...any) *dom.Node   { return newElement("script", args) }
func Noscript(args ...any) *dom.Node { return newElement("noscript", args) }
func Template(args ...any) *dom.Node { return newElement("template", args) }
func Style(args ...any) *dom.Node    { return newElement("style", args) }

// CustomElement creates an element with a custom tag name.
func CustomElement(tag string, args ...any) *dom.Node {
	return newElement(tag, args)
}
