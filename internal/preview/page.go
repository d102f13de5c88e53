package preview

import (
	"github.com/domkit-dev/domkit"
	"github.com/domkit-dev/domkit/el"
	"github.com/domkit-dev/domkit/pkg/dom"
)

// reloadScript connects to the reload WebSocket and refreshes the
// page on change notifications.
const reloadScript = `(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws");
  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type === "reload") location.reload();
    if (msg.type === "error") console.error("domkit preview:", msg.error);
  };
})();`

const pageStyle = `body { font-family: sans-serif; margin: 2rem auto; max-width: 48rem; }
section { margin-bottom: 2rem; }
h2 { border-bottom: 1px solid #ddd; padding-bottom: .25rem; }`

// ShowcasePage builds the default preview document. It exercises the
// constructor families so edits to the library are visible
// immediately in the browser.
func ShowcasePage(title string) *dom.Node {
	return el.Html(
		el.Head(
			el.Meta(dom.Attrs{"charset": "utf-8"}),
			el.Title(title),
			el.Style(dom.Raw(pageStyle)),
		),
		el.Body(
			el.H1(title),

			section("Anchors and lists",
				domkit.List([]any{
					domkit.Anchor("external link", "https://example.com", dom.Attrs{"rel": "noopener"}),
					domkit.Anchor("anchor without href", "", nil),
					"plain text item",
					"<em>escaped</em> markup",
				}, dom.Attrs{"class": "demo-list"}),
			),

			section("Search form",
				domkit.Form("/search?q=domkit&page=1", "GET", nil,
					domkit.LabelFor("Query", "q", nil),
					domkit.TextField("q", "domkit", dom.Attrs{"id": "q"}),
					domkit.SubmitButton("Search", nil),
					domkit.ResetButton("Reset", nil),
				),
			),

			section("Choices",
				domkit.Checkbox("newsletter", true, dom.Attrs{
					"label":   "Subscribe to the newsletter",
					"uncheck": "0",
				}),
				el.Br(),
				domkit.Select("plan", "pro", domkit.Items{
					{Value: "free", Text: "Free"},
					{Value: "pro", Text: "Pro"},
					{Value: "team", Text: "Team"},
				}, nil),
				el.Br(),
				domkit.CheckboxGroup("features", []string{"a"}, domkit.Items{
					{Value: "a", Text: "Alpha"},
					{Value: "b", Text: "Beta"},
				}, dom.Attrs{"separator": "<br>"}),
			),

			section("Table",
				domkit.Table([]*dom.Node{
					domkit.TableHead(domkit.TableRow([]*dom.Node{
						domkit.TableHeaderCell("Name", nil),
						domkit.TableHeaderCell("Kind", nil),
					}, nil), nil),
					domkit.TableBody([]*dom.Node{
						domkit.TableRow([]*dom.Node{
							domkit.TableCell("div", nil),
							domkit.TableCell("element", nil),
						}, nil),
						domkit.TableRow([]*dom.Node{
							domkit.TableCell("img", nil),
							domkit.TableCell("void element", nil),
						}, nil),
					}, nil),
				}, dom.Attrs{"class": "demo-table"}),
			),

			el.Script(dom.Raw(reloadScript)),
		),
	)
}

func section(heading string, content ...any) *dom.Node {
	args := append([]any{el.H2(heading)}, content...)
	return el.Section(args...)
}
