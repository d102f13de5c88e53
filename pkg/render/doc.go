// Package render serializes dom.Node trees to HTML text.
//
// Attributes are emitted in sorted order for deterministic output,
// boolean attributes as bare names, and void elements without closing
// tags. Text nodes are escaped; raw nodes are written verbatim. The
// optional pretty mode indents block-level elements for readability
// during development.
package render
