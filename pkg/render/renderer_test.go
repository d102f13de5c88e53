package render

import (
	"strings"
	"testing"

	"github.com/domkit-dev/domkit/pkg/dom"
)

func TestRenderElement(t *testing.T) {
	t.Run("basic element", func(t *testing.T) {
		html, err := ToString(dom.NewElement("div", "hi", dom.Attrs{"class": "card"}))
		if err != nil {
			t.Fatalf("ToString() error = %v", err)
		}
		if html != `<div class="card">hi</div>` {
			t.Errorf("html = %q", html)
		}
	})

	t.Run("attributes sorted deterministically", func(t *testing.T) {
		html, _ := ToString(dom.NewElement("div", nil, dom.Attrs{
			"id":    "x",
			"class": "c",
			"title": "t",
		}))
		if html != `<div class="c" id="x" title="t"></div>` {
			t.Errorf("html = %q", html)
		}
	})

	t.Run("void element has no closing tag", func(t *testing.T) {
		html, _ := ToString(dom.NewElement("img", nil, dom.Attrs{"src": "/x.png"}))
		if html != `<img src="/x.png">` {
			t.Errorf("html = %q", html)
		}
	})

	t.Run("boolean attribute renders bare", func(t *testing.T) {
		html, _ := ToString(dom.NewElement("input", nil, dom.Attrs{
			"type":     "text",
			"required": true,
		}))
		if html != `<input required type="text">` {
			t.Errorf("html = %q", html)
		}
		if strings.Contains(html, `required="`) {
			t.Errorf("required must not carry a value: %q", html)
		}
	})

	t.Run("text is escaped", func(t *testing.T) {
		html, _ := ToString(dom.NewElement("p", `<b>&"bold"</b>`, nil))
		if html != `<p>&lt;b&gt;&amp;&quot;bold&quot;&lt;/b&gt;</p>` {
			t.Errorf("html = %q", html)
		}
	})

	t.Run("attribute values escaped", func(t *testing.T) {
		html, _ := ToString(dom.NewElement("div", nil, dom.Attrs{"title": `a"b<c`}))
		if html != `<div title="a&quot;b&lt;c"></div>` {
			t.Errorf("html = %q", html)
		}
	})

	t.Run("raw is not escaped", func(t *testing.T) {
		html, _ := ToString(dom.NewElement("div", dom.Raw("<em>x</em>"), nil))
		if html != `<div><em>x</em></div>` {
			t.Errorf("html = %q", html)
		}
	})

	t.Run("fragment renders without wrapper", func(t *testing.T) {
		html, _ := ToString(dom.NewFragment(
			dom.NewElement("li", "a", nil),
			dom.NewElement("li", "b", nil),
		))
		if html != `<li>a</li><li>b</li>` {
			t.Errorf("html = %q", html)
		}
	})

	t.Run("nil node renders nothing", func(t *testing.T) {
		html, err := ToString(nil)
		if err != nil {
			t.Fatalf("ToString(nil) error = %v", err)
		}
		if html != "" {
			t.Errorf("html = %q, want empty", html)
		}
	})
}

func TestRenderPretty(t *testing.T) {
	renderer := New(Config{Pretty: true})
	html, err := renderer.RenderToString(dom.NewElement("ul", []*dom.Node{
		dom.NewElement("li", "a", nil),
		dom.NewElement("li", "b", nil),
	}, nil))
	if err != nil {
		t.Fatalf("RenderToString() error = %v", err)
	}
	want := "<ul>\n  <li>a</li>\n  <li>b</li>\n</ul>\n"
	if html != want {
		t.Errorf("html = %q, want %q", html, want)
	}
}

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"<script>", "&lt;script&gt;"},
		{`a & b`, "a &amp; b"},
		{`"quoted"`, "&quot;quoted&quot;"},
		{"it's", "it&#39;s"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := EscapeHTML(tt.in); got != tt.want {
			t.Errorf("EscapeHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
