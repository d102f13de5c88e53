// Package frag parses markup strings into document node trees.
//
// It delegates to golang.org/x/net/html and converts the result into
// pkg/dom nodes. domkit uses it for literal separator markup between
// list and group items; applications can use it to lift external
// HTML snippets into node trees.
package frag
