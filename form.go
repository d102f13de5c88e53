package domkit

import (
	"net/url"
	"strings"

	"github.com/domkit-dev/domkit/pkg/dom"
)

// Form builds a <form> element with the given action and method.
//
// When the method is GET (case-insensitive) and the action carries a
// query string, the query string is decomposed into one hidden input
// per key/value pair and the action is truncated to the path before
// the first "?". Browsers drop the query string of a GET form's
// action on submit; the hidden inputs preserve those parameters.
func Form(action, method string, attrs dom.Attrs, content ...any) *dom.Node {
	a := mergeAttrs(attrs, nil)

	children := make([]any, 0, len(content)+1)
	if strings.EqualFold(method, "get") {
		if path, query, ok := strings.Cut(action, "?"); ok {
			action = path
			children = append(children, queryInputs(query))
		}
	}
	children = append(children, content...)

	a["action"] = action
	a["method"] = method
	return dom.NewElement("form", children, a)
}

// queryInputs turns an &-separated query string into hidden inputs.
// A pair without "=" is a key with an empty value; keys and values
// are URL-decoded.
func queryInputs(query string) []*dom.Node {
	pairs := strings.Split(query, "&")
	inputs := make([]*dom.Node, 0, len(pairs))
	for _, pair := range pairs {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if decoded, err := url.QueryUnescape(key); err == nil {
			key = decoded
		}
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		inputs = append(inputs, Hidden(key, value, nil))
	}
	return inputs
}

// Button builds a <button>. The type defaults to "button" and an
// explicit type in attrs wins.
func Button(text string, attrs dom.Attrs) *dom.Node {
	a := mergeAttrs(attrs, dom.Attrs{"type": "button"})
	return dom.NewElement("button", text, a)
}

// SubmitButton builds a <button type="submit">. The type is forced.
func SubmitButton(text string, attrs dom.Attrs) *dom.Node {
	a := mergeAttrs(attrs, nil)
	a["type"] = "submit"
	return dom.NewElement("button", text, a)
}

// ResetButton builds a <button type="reset">. The type is forced.
func ResetButton(text string, attrs dom.Attrs) *dom.Node {
	a := mergeAttrs(attrs, nil)
	a["type"] = "reset"
	return dom.NewElement("button", text, a)
}

// Input builds an <input> of the given type. An explicit type in
// attrs takes precedence over the parameter.
func Input(typ, name, value string, attrs dom.Attrs) *dom.Node {
	a := mergeAttrs(attrs, nil)
	if _, ok := a["type"]; !ok {
		a["type"] = typ
	}
	a["name"] = name
	a["value"] = value
	return dom.NewElement("input", nil, a)
}

// Hidden builds an <input type="hidden">.
func Hidden(name, value string, attrs dom.Attrs) *dom.Node {
	return Input("hidden", name, value, attrs)
}

// TextField builds an <input type="text">.
func TextField(name, value string, attrs dom.Attrs) *dom.Node {
	return Input("text", name, value, attrs)
}

// PasswordField builds an <input type="password">.
func PasswordField(name, value string, attrs dom.Attrs) *dom.Node {
	return Input("password", name, value, attrs)
}

// FileField builds an <input type="file">. File inputs carry no
// value.
func FileField(name string, attrs dom.Attrs) *dom.Node {
	return Input("file", name, "", attrs)
}

// TextArea builds a <textarea> with the given value as its text
// content.
func TextArea(name, value string, attrs dom.Attrs) *dom.Node {
	a := mergeAttrs(attrs, nil)
	a["name"] = name
	return dom.NewElement("textarea", value, a)
}

// Checkbox builds an <input type="checkbox">. See booleanInput for
// the recognized options.
func Checkbox(name string, checked bool, attrs dom.Attrs) *dom.Node {
	return booleanInput("checkbox", name, checked, attrs)
}

// Radio builds an <input type="radio">. See booleanInput for the
// recognized options.
func Radio(name string, checked bool, attrs dom.Attrs) *dom.Node {
	return booleanInput("radio", name, checked, attrs)
}

// booleanInput builds a checkbox or radio input. Recognized options:
//
//   - "value": the submitted value, default "1"
//   - "uncheck": emit a sibling hidden input with this value so the
//     unchecked state still submits; it precedes the control and is
//     never nested inside a label
//   - "label": wrap the control and the label text in a <label>
//   - "encode": escape the label text (default true)
//
// The result is a fragment when an uncheck input is emitted.
func booleanInput(typ, name string, checked bool, attrs dom.Attrs) *dom.Node {
	a := mergeAttrs(attrs, dom.Attrs{"value": "1"})
	uncheck := popString(a, "uncheck", "")
	labelText := popString(a, "label", "")
	encode := popBool(a, "encode", true)

	a["type"] = typ
	a["name"] = name
	if checked {
		a["checked"] = true
	}
	control := dom.NewElement("input", nil, a)

	node := control
	if labelText != "" {
		node = dom.NewElement("label", []*dom.Node{
			control,
			textOrRaw(labelText, encode),
		}, nil)
	}

	if uncheck != "" {
		return dom.NewFragment(Hidden(name, uncheck, nil), node)
	}
	return node
}
