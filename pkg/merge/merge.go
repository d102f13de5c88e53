package merge

import (
	"reflect"

	"github.com/domkit-dev/domkit/internal/errors"
)

// IsMap returns true if the value is a non-nil mapping with string
// keys. Slices, funcs, and nil are not mappings.
func IsMap(value any) bool {
	_, ok := asMap(value)
	return ok
}

// asMap normalizes any string-keyed map to map[string]any. The fast
// path preserves identity for map[string]any; other map types are
// converted by reflection into a fresh map.
func asMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case map[string]any:
		if v == nil {
			return nil, false
		}
		return v, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	if rv.IsNil() {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// Merge deep-merges each source into target, mutating and returning
// target. Sources apply left to right. A source value that is itself
// a mapping is merged recursively, into the existing nested mapping
// when the target already holds one at that key and into a fresh
// mapping otherwise. Any other value overwrites the target's value
// outright; slices are replaced wholesale, never merged.
//
// A nil target fails with an invalid-argument error. Non-mapping
// sources are silently skipped.
func Merge(target map[string]any, sources ...any) (map[string]any, error) {
	if target == nil {
		return nil, errors.InvalidArgument("merge target must be a mapping")
	}

	for _, source := range sources {
		src, ok := asMap(source)
		if !ok {
			continue
		}
		for key, value := range src {
			if sub, ok := asMap(value); ok {
				dst, ok := asMap(target[key])
				if !ok {
					dst = make(map[string]any, len(sub))
				}
				Merge(dst, sub)
				target[key] = dst
				continue
			}
			target[key] = value
		}
	}
	return target, nil
}

// Remove deletes key from target and returns its prior value. When
// target is nil or does not own the key, the optional default is
// returned instead; with no default the result is nil.
func Remove(target map[string]any, key string, def ...any) any {
	if target != nil {
		if value, ok := target[key]; ok {
			delete(target, key)
			return value
		}
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Count returns the number of keys in target.
func Count(target map[string]any) int {
	return len(target)
}
