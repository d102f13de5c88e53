package dom

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindRaw, "Raw"},
		{Kind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestClone(t *testing.T) {
	original := NewElement("div", []*Node{
		NewElement("span", "hi", Attrs{"class": "x"}),
	}, Attrs{"id": "root"})

	clone := original.Clone()
	clone.Attrs["id"] = "copy"
	clone.Children[0].Attrs["class"] = "y"

	if original.Attrs["id"] != "root" {
		t.Errorf("original id = %v, want root", original.Attrs["id"])
	}
	if original.Children[0].Attrs["class"] != "x" {
		t.Errorf("original child class = %v, want x", original.Children[0].Attrs["class"])
	}
	if clone.Children[0].Text != original.Children[0].Text {
		t.Error("clone lost child structure")
	}
}

func TestFind(t *testing.T) {
	tree := NewElement("div", []*Node{
		NewElement("label", []*Node{
			NewElement("input", nil, Attrs{"name": "n"}),
		}, nil),
	}, nil)

	input := tree.Find("input")
	if input == nil {
		t.Fatal("Find(input) = nil")
	}
	if input.Attrs["name"] != "n" {
		t.Errorf("name = %v, want n", input.Attrs["name"])
	}
	if tree.Find("table") != nil {
		t.Error("Find(table) != nil, want nil")
	}
}

func TestTextContent(t *testing.T) {
	node := NewElement("p", []any{
		"Hello, ",
		NewElement("em", "world", nil),
	}, nil)
	if got := node.TextContent(); got != "Hello, world" {
		t.Errorf("TextContent() = %q, want %q", got, "Hello, world")
	}
}

func TestNewFragment(t *testing.T) {
	frag := NewFragment(Text("a"), nil, Text("b"))
	if frag.Kind != KindFragment {
		t.Errorf("Kind = %v, want KindFragment", frag.Kind)
	}
	if len(frag.Children) != 2 {
		t.Errorf("Children len = %v, want 2 (nil filtered)", len(frag.Children))
	}
}
