package dom

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// booleanAttrs are attributes whose presence, not value, carries the
// meaning. They are stored as native bools and serialized as bare
// names. The set covers the form-state attributes (required, readonly,
// disabled, checked) plus the remaining HTML boolean attributes so
// that selects and options behave the same way.
var booleanAttrs = map[string]bool{
	"allowfullscreen": true,
	"async":           true,
	"autofocus":       true,
	"autoplay":        true,
	"checked":         true,
	"controls":        true,
	"default":         true,
	"defer":           true,
	"disabled":        true,
	"formnovalidate":  true,
	"hidden":          true,
	"inert":           true,
	"ismap":           true,
	"loop":            true,
	"multiple":        true,
	"muted":           true,
	"novalidate":      true,
	"open":            true,
	"playsinline":     true,
	"readonly":        true,
	"required":        true,
	"reversed":        true,
	"selected":        true,
}

// IsBooleanAttr returns true if the attribute is a boolean attribute.
func IsBooleanAttr(name string) bool {
	return booleanAttrs[strings.ToLower(name)]
}

// ApplyAttrs applies each attribute to the node. Per key:
//
//   - nil, false, or empty-string values are omitted entirely
//   - numeric-looking keys are skipped
//   - boolean attributes with a true value are stored as native bools
//   - "class" with a []string value is joined with single spaces
//   - "style" with a map value becomes one declaration per key
//   - a "data" key with a map value becomes one data-* attribute per key
//   - everything else is stored via its string conversion
//
// Application is not atomic: attributes applied before a skipped key
// stay applied.
func ApplyAttrs(node *Node, attrs Attrs) {
	if node == nil || len(attrs) == 0 {
		return
	}
	if node.Attrs == nil {
		node.Attrs = make(Attrs)
	}

	for key, value := range attrs {
		if key == "" || isNumericKey(key) {
			continue
		}

		switch v := value.(type) {
		case nil:

		case bool:
			if !v {
				continue
			}
			if IsBooleanAttr(key) {
				node.Attrs[key] = true
			} else {
				node.Attrs[key] = "true"
			}

		case string:
			if v == "" {
				continue
			}
			node.Attrs[key] = v

		case []string:
			if len(v) == 0 {
				continue
			}
			if key == "class" {
				node.Attrs[key] = strings.Join(v, " ")
			} else {
				node.Attrs[key] = strings.Join(v, ",")
			}

		case Attrs:
			applyMapAttr(node, key, map[string]any(v))

		case map[string]any:
			applyMapAttr(node, key, v)

		default:
			node.Attrs[key] = AttrString(value)
		}
	}
}

// applyMapAttr expands a nested mapping. "style" becomes a single
// style declaration string; a key starting with "data" becomes one
// attribute per nested key. Any other mapping is skipped rather than
// stringified by accident.
func applyMapAttr(node *Node, key string, m map[string]any) {
	if len(m) == 0 {
		return
	}
	switch {
	case key == "style":
		node.Attrs["style"] = styleString(m)
	case strings.HasPrefix(key, "data"):
		prefix := key
		if prefix == "data" {
			prefix = "data-"
		} else {
			prefix += "-"
		}
		for k, v := range m {
			if v == nil {
				continue
			}
			node.Attrs[prefix+k] = AttrString(v)
		}
	}
}

// styleString serializes style properties deterministically, sorted by
// property name.
func styleString(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		if m[k] == nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(AttrString(m[k]))
	}
	return b.String()
}

// isNumericKey reports whether a key looks like a bare number,
// integer or not. Such keys come from callers passing sequences where
// a mapping was meant and are dropped without diagnostic.
func isNumericKey(key string) bool {
	_, err := strconv.ParseFloat(key, 64)
	return err == nil
}

// AttrString converts an attribute value to its string form.
func AttrString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
