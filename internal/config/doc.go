// Package config loads the domkit.json configuration used by the
// CLI. The library itself needs no configuration; only the render
// and preview commands read one. Find searches the working directory
// and its parents and falls back to defaults when no file exists.
package config
