// Package preview implements the development preview server behind
// the domkit preview command.
//
// It serves a document produced by the library on every request,
// broadcasts hot-reload messages to browsers over WebSocket when
// watched files change, and optionally exposes Prometheus metrics on
// /metrics.
package preview
