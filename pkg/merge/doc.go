// Package merge provides recursive deep-merge and property helpers
// for plain string-keyed mappings.
//
// Merge mutates its target in place; the caller owns the mapping
// before and after the call, and the aliasing is expected. Nested
// mappings merge recursively, everything else overwrites with
// last-source-wins semantics. Remove deletes and returns a property,
// Count counts keys, and IsMap classifies values.
//
// domkit's constructors use Merge to combine default and caller
// attribute options.
package merge
