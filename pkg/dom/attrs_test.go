package dom

import "testing"

func TestApplyAttrs(t *testing.T) {
	t.Run("boolean attribute true becomes native bool", func(t *testing.T) {
		node := NewElement("input", nil, Attrs{"required": true, "readonly": false})
		if node.Attrs["required"] != true {
			t.Errorf("required = %v, want true", node.Attrs["required"])
		}
		if _, ok := node.Attrs["readonly"]; ok {
			t.Error("readonly present, want omitted for false value")
		}
	})

	t.Run("nil and empty values omitted", func(t *testing.T) {
		node := NewElement("div", nil, Attrs{"title": "", "lang": nil, "id": "x"})
		if _, ok := node.Attrs["title"]; ok {
			t.Error("title present, want omitted for empty string")
		}
		if _, ok := node.Attrs["lang"]; ok {
			t.Error("lang present, want omitted for nil")
		}
		if node.Attrs["id"] != "x" {
			t.Errorf("id = %v, want x", node.Attrs["id"])
		}
	})

	t.Run("true on non-boolean attribute stringifies", func(t *testing.T) {
		node := NewElement("div", nil, Attrs{"draggable": true})
		if node.Attrs["draggable"] != "true" {
			t.Errorf("draggable = %v, want %q", node.Attrs["draggable"], "true")
		}
	})

	t.Run("class list joins with spaces", func(t *testing.T) {
		node := NewElement("div", nil, Attrs{"class": []string{"card", "wide"}})
		if node.Attrs["class"] != "card wide" {
			t.Errorf("class = %v, want %q", node.Attrs["class"], "card wide")
		}
	})

	t.Run("style map becomes declaration string", func(t *testing.T) {
		node := NewElement("div", nil, Attrs{"style": map[string]any{
			"color": "red",
			"width": "10px",
		}})
		if node.Attrs["style"] != "color: red; width: 10px" {
			t.Errorf("style = %v, want %q", node.Attrs["style"], "color: red; width: 10px")
		}
	})

	t.Run("data map expands to data attributes", func(t *testing.T) {
		node := NewElement("div", nil, Attrs{"data": map[string]any{
			"id":   "123",
			"role": "row",
		}})
		if node.Attrs["data-id"] != "123" {
			t.Errorf("data-id = %v, want 123", node.Attrs["data-id"])
		}
		if node.Attrs["data-role"] != "row" {
			t.Errorf("data-role = %v, want row", node.Attrs["data-role"])
		}
	})

	t.Run("numeric keys skipped", func(t *testing.T) {
		node := NewElement("div", nil, Attrs{"0": "zero", "-3": "neg", "3.5": "frac", "1e3": "exp", "id": "x"})
		if len(node.Attrs) != 1 {
			t.Errorf("Attrs len = %v, want 1", len(node.Attrs))
		}
		if node.Attrs["id"] != "x" {
			t.Errorf("id = %v, want x", node.Attrs["id"])
		}
	})

	t.Run("numbers stringify", func(t *testing.T) {
		node := NewElement("select", nil, Attrs{"size": 4})
		if node.Attrs["size"] != "4" {
			t.Errorf("size = %v, want %q", node.Attrs["size"], "4")
		}
	})

	t.Run("non-class string slice joins with commas", func(t *testing.T) {
		node := NewElement("input", nil, Attrs{"accept": []string{"image/png", "image/gif"}})
		if node.Attrs["accept"] != "image/png,image/gif" {
			t.Errorf("accept = %v, want %q", node.Attrs["accept"], "image/png,image/gif")
		}
	})

	t.Run("partial application survives skipped keys", func(t *testing.T) {
		node := NewElement("div", nil, nil)
		ApplyAttrs(node, Attrs{"id": "first"})
		ApplyAttrs(node, Attrs{"7": "skipped", "class": "second"})
		if node.Attrs["id"] != "first" {
			t.Errorf("id = %v, want first", node.Attrs["id"])
		}
		if node.Attrs["class"] != "second" {
			t.Errorf("class = %v, want second", node.Attrs["class"])
		}
	})
}

func TestAttrString(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "x", "x"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"float", 1.5, "1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttrString(tt.value); got != tt.want {
				t.Errorf("AttrString(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestIsBooleanAttr(t *testing.T) {
	for _, name := range []string{"required", "readonly", "disabled", "checked", "selected", "multiple"} {
		if !IsBooleanAttr(name) {
			t.Errorf("IsBooleanAttr(%q) = false, want true", name)
		}
	}
	if IsBooleanAttr("value") {
		t.Error("IsBooleanAttr(value) = true, want false")
	}
}
