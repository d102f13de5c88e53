package domkit

import (
	"strings"

	"github.com/domkit-dev/domkit/pkg/dom"
	"github.com/domkit-dev/domkit/pkg/frag"
)

// Select builds a <select> with one option per item. A true
// "multiple" option delegates to MultiSelect.
func Select(name string, selection any, items Items, attrs dom.Attrs) *dom.Node {
	a := mergeAttrs(attrs, nil)
	if popBool(a, "multiple", false) {
		return MultiSelect(name, selection, items, a)
	}
	a["name"] = name
	return dom.NewElement("select", Options(selection, items), a)
}

// MultiSelect builds a multiple-choice <select>. The field name gets
// a "[]" suffix if it does not already carry one, the visible size
// defaults to 4, and an "unselect" option prepends a hidden input
// (named without the suffix) whose value submits when nothing is
// selected. The result is a fragment when that hidden input is
// emitted.
func MultiSelect(name string, selection any, items Items, attrs dom.Attrs) *dom.Node {
	a := mergeAttrs(attrs, dom.Attrs{"size": 4})
	unselect := popString(a, "unselect", "")

	if !strings.HasSuffix(name, "[]") {
		name += "[]"
	}
	a["name"] = name
	a["multiple"] = true

	sel := dom.NewElement("select", Options(selection, items), a)
	if unselect != "" {
		hidden := Hidden(strings.TrimSuffix(name, "[]"), unselect, nil)
		return dom.NewFragment(hidden, sel)
	}
	return sel
}

// Options builds one <option> per item, marking those whose value is
// a member of the selection. The selection may be a single value or
// a collection; a single value acts as a one-element set.
func Options(selection any, items Items) []*dom.Node {
	set := selectionSet(selection)
	options := make([]*dom.Node, 0, len(items))
	for _, item := range items {
		a := dom.Attrs{"value": item.Value}
		if set[item.Value] {
			a["selected"] = true
		}
		options = append(options, dom.NewElement("option", item.Text, a))
	}
	return options
}

// CheckboxGroup builds one labelled checkbox per item, all sharing
// the group's name. See buttonGroup for the recognized options.
func CheckboxGroup(name string, selection any, items Items, attrs dom.Attrs) *dom.Node {
	return buttonGroup("checkbox", name, selection, items, attrs)
}

// RadioGroup builds one labelled radio button per item, all sharing
// the group's name. See buttonGroup for the recognized options.
func RadioGroup(name string, selection any, items Items, attrs dom.Attrs) *dom.Node {
	return buttonGroup("radio", name, selection, items, attrs)
}

// buttonGroup builds the shared checkbox/radio group structure.
// Recognized options:
//
//   - "separator": literal markup inserted between items
//   - "container": wrapping tag, default "div"; a false value returns
//     an unwrapped fragment
//   - "unselect": prepend a hidden input with this value
//   - "encode": escape item label text (default true)
//
// Remaining attributes go to the container element.
func buttonGroup(typ, name string, selection any, items Items, attrs dom.Attrs) *dom.Node {
	a := mergeAttrs(attrs, nil)
	separator := popString(a, "separator", "")
	container := popContainer(a)
	unselect := popString(a, "unselect", "")
	encode := popBool(a, "encode", true)
	set := selectionSet(selection)

	var sep []*dom.Node
	if separator != "" {
		sep, _ = frag.Nodes(separator)
	}

	children := make([]*dom.Node, 0, len(items)*2)
	if unselect != "" {
		children = append(children, Hidden(name, unselect, nil))
	}
	for i, item := range items {
		if i > 0 && len(sep) > 0 {
			children = append(children, cloneAll(sep)...)
		}
		children = append(children, booleanInput(typ, name, set[item.Value], dom.Attrs{
			"value":  item.Value,
			"label":  item.Text,
			"encode": encode,
		}))
	}

	if container == "" {
		return dom.NewFragment(children...)
	}
	return dom.NewElement(container, children, a)
}

// popContainer resolves the "container" option: missing means the
// default div, a false value means no container at all, and a string
// names the wrapping tag.
func popContainer(a dom.Attrs) string {
	value, ok := a["container"]
	if !ok {
		return "div"
	}
	delete(a, "container")
	switch v := value.(type) {
	case bool:
		if v {
			return "div"
		}
		return ""
	case string:
		if v == "" {
			return ""
		}
		return v
	case nil:
		return ""
	default:
		return "div"
	}
}
