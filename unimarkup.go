// Package unimarkup is the library entry point (spec.md §6): "parse(input,
// config) -> Document", idempotent, no I/O. Everything that touches a
// filesystem or a subprocess lives one layer up, in cmd/unimarkup and the
// render/pdf collaborator.
package unimarkup

import (
	"github.com/unimarkup/unimarkup-go/block"
	"github.com/unimarkup/unimarkup-go/config"
)

// Document is the parsed result: a flat sequence of blocks plus the
// configuration resolved for it (defaults merged with any document
// preamble).
type Document = block.Document

// Parse parses input under the given base configuration. It never fails on
// malformed Unimarkup syntax — unparseable content degrades to plain text
// or to implicitly closed elements; no parser produces InvalidContent
// blocks or inlines — and only returns an error for a malformed
// configuration preamble (spec.md §7, Config errors are fatal).
func Parse(input string, cfg config.Config) (Document, error) {
	return block.ParseDocument(input, cfg)
}
