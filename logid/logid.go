// Package logid implements structured, named diagnostics: a Diagnostic
// carries a stable Id naming its component and kind (grounded on the
// original project's per-crate log-id enums, e.g. parser/src/log_id.rs's
// ParserWarning::UnsupportedBlock), plus an optional source Span for a
// pretty-printed caret. The package formats diagnostics; it does not log
// them, and the parsers do not emit any.
package logid

import (
	"fmt"
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/unimarkup/unimarkup-go/lexer"
)

// Severity distinguishes diagnostics that merely inform from ones that mean
// a parser/renderer had to degrade its output (spec.md §7 policy: localized
// parse anomalies are logged but do not stop processing).
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Group names the subsystem a log-id belongs to, mirroring the original
// project's per-crate grouping (LogIdMainGrp in commons/src/log_id.rs).
type Group string

const (
	GroupLexer  Group = "lexer"
	GroupInline Group = "inline"
	GroupBlock  Group = "block"
	GroupConfig Group = "config"
	GroupRender Group = "render"
	GroupCLI    Group = "cli"
)

// Id is a stable, named diagnostic identifier: a Group plus a Name such as
// GroupBlock+"invalid-block-start" rather than a bare string, so call sites
// and tests can match on the constant instead of message text.
type Id struct {
	Group    Group
	Name     string
	Severity Severity
}

// Diagnostic is one emitted occurrence of an Id, optionally anchored to a
// source span.
type Diagnostic struct {
	Id      Id
	Message string
	Span    *lexer.Span
}

func (d Diagnostic) String() string {
	if d.Span == nil {
		return fmt.Sprintf("[%s:%s] %s: %s", d.Id.Group, d.Id.Name, d.Id.Severity, d.Message)
	}
	return fmt.Sprintf("[%s:%s] %s at line %d, col %d: %s",
		d.Id.Group, d.Id.Name, d.Id.Severity, d.Span.Start.Line, d.Span.Start.ColGrapheme, d.Message)
}

// Render produces a two-line pretty-print of the diagnostic against source:
// the offending line followed by a caret line, using grapheme-cell widths
// so the caret lands under the right column even with wide (CJK) runes.
func (d Diagnostic) Render(source string) string {
	base := d.String()
	if d.Span == nil {
		return base
	}

	lines := strings.Split(source, "\n")
	lineIdx := d.Span.Start.Line - 1
	if lineIdx < 0 || lineIdx >= len(lines) {
		return base
	}
	line := lines[lineIdx]

	width := 0
	col := 1
	for _, r := range line {
		if col >= d.Span.Start.ColGrapheme {
			break
		}
		width += runewidth.RuneWidth(r)
		col++
	}

	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteByte('\n')
	sb.WriteString(line)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", width))
	sb.WriteByte('^')
	return sb.String()
}

// Sink collects diagnostics emitted during a parse/render/CLI run.
type Sink struct {
	diagnostics []Diagnostic
}

// NewSink constructs an empty diagnostic sink.
func NewSink() *Sink {
	return &Sink{}
}

// Emit records a diagnostic.
func (s *Sink) Emit(d Diagnostic) {
	s.diagnostics = append(s.diagnostics, d)
}

// Diagnostics returns all recorded diagnostics in emission order.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diagnostics
}

// HasErrors reports whether any recorded diagnostic is at error severity.
func (s *Sink) HasErrors() bool {
	for _, d := range s.diagnostics {
		if d.Id.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Well-known log-ids, one per recognized parser/render degradation.
var (
	IdUnmatchedDelimiter   = Id{Group: GroupInline, Name: "unmatched-delimiter", Severity: SeverityWarning}
	IdInvalidBlockStart    = Id{Group: GroupBlock, Name: "invalid-block-start", Severity: SeverityWarning}
	IdUnknownSubstitution  = Id{Group: GroupInline, Name: "unknown-substitution", Severity: SeverityInfo}
	IdInvalidPreambleYaml  = Id{Group: GroupConfig, Name: "invalid-preamble-yaml", Severity: SeverityError}
	IdUnsupportedOutput    = Id{Group: GroupRender, Name: "unsupported-output-format", Severity: SeverityError}
	IdScopeDepthExceeded   = Id{Group: GroupLexer, Name: "scope-depth-exceeded", Severity: SeverityWarning}
)
