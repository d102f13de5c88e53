// Package errors provides structured errors for domkit.
//
// Each Error carries a short code, a category, and optionally a
// detailed explanation and fix suggestion. Codes are registered in
// registry.go; New looks them up and Format pretty-prints them for
// terminal display.
//
// Library code surfaces these errors synchronously. The deliberate
// silent-skip cases (non-mapping merge sources, numeric attribute
// keys, empty attribute values) produce no error at all.
package errors
