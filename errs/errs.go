// Package errs defines the error-kind taxonomy used across the parser,
// renderer, and CLI (spec.md §7, "Error Handling Design"): IO and Config
// errors are fatal, Parse anomalies are logged but never stop processing,
// and Render errors are fatal only for the affected output format.
package errs

import (
	"fmt"

	"github.com/unimarkup/unimarkup-go/lexer"

	"github.com/pkg/errors"
)

// Kind classifies an error by the subsystem that raised it, so callers
// (the CLI in particular) can decide whether to abort or keep going.
type Kind int

const (
	KindIO Kind = iota
	KindConfig
	KindParse
	KindRender
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindConfig:
		return "config"
	case KindParse:
		return "parse"
	case KindRender:
		return "render"
	default:
		return "unknown"
	}
}

// Error wraps an underlying cause with a Kind and, for parse/render
// anomalies, the document span where it occurred.
type Error struct {
	Kind  Kind
	Span  *lexer.Span
	cause error
}

func (e *Error) Error() string {
	if e.Span != nil {
		return fmt.Sprintf("%s error at line %d col %d: %v", e.Kind, e.Span.Start.Line, e.Span.Start.ColGrapheme, e.cause)
	}
	return fmt.Sprintf("%s error: %v", e.Kind, e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// IO wraps err as a fatal I/O error with source-path context.
func IO(path string, err error) error {
	return &Error{Kind: KindIO, cause: errors.Wrapf(err, "%s", path)}
}

// Config wraps err as a fatal configuration error.
func Config(context string, err error) error {
	return &Error{Kind: KindConfig, cause: errors.Wrap(err, context)}
}

// Render wraps err as a render error, fatal only for the named format.
func Render(format string, err error) error {
	return &Error{Kind: KindRender, cause: errors.Wrapf(err, "rendering %s", format)}
}

// Parse constructs a non-fatal parse anomaly carrying the span where the
// input was rejected, for logging via logid rather than aborting.
func Parse(span lexer.Span, message string) error {
	s := span
	return &Error{Kind: KindParse, Span: &s, cause: errors.New(message)}
}

// Is reports whether err (or any error it wraps) has the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if as, ok := err.(*Error); ok {
			e = as
			break
		}
		err = errors.Unwrap(err)
	}
	return e != nil && e.Kind == kind
}
