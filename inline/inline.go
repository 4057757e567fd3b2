// Package inline implements the inline parser (spec.md §4.5): ambiguous
// bold/italic/underline/subscript resolution, scoped verbatim/math spans,
// textboxes and hyperlinks, implicit substitutions, and named substitutions
// such as "::heart::".
package inline

import (
	"github.com/unimarkup/unimarkup-go/lexer"
	"github.com/unimarkup/unimarkup-go/lexer/token"
)

// Kind identifies which Inline variant a value holds.
type Kind int

const (
	KindPlain Kind = iota
	KindEscapedPlain
	KindEscapedWhitespace
	KindWhitespace
	KindNewline
	KindEscapedNewline
	KindBold
	KindItalic
	KindBoldItalic
	KindUnderline
	KindSubscript
	KindUnderlineSubscript
	KindStrikethrough
	KindSuperscript
	KindHighlight
	KindOverline
	KindVerbatim
	KindMath
	KindQuote
	KindTextBox
	KindHyperlink
	KindImplicitSubstitution
	KindDirectURI
	KindNamedSubstitution
	KindComment
	KindInvalidContent
)

// Inline is a single parsed inline element (spec.md §3, "Inline" sum type).
// Nesting variants populate Inner (and optionally Attributes); leaf
// variants populate Content.
type Inline struct {
	Kind Kind

	Start lexer.Position
	End   lexer.Position

	// ImplicitEnd is true when a nesting element's closing delimiter was
	// never found and the element ended at a scope/EOI boundary instead.
	ImplicitEnd bool

	Inner      []Inline
	Attributes []Inline

	// Content holds leaf text: the literal form for Plain/Whitespace/etc.,
	// the decoded character for escapes, the substituted glyph for
	// ImplicitSubstitution/NamedSubstitution, and the URI text for
	// DirectURI.
	Content string

	// Original holds the as-typed source form, kept alongside Content for
	// substitution kinds so renderers can round-trip to UMI.
	Original string

	// Link and LinkAttributes are populated only for KindHyperlink.
	Link           []Inline
	LinkAttributes []Inline

	// ImplicitKind narrows KindImplicitSubstitution.
	ImplicitKind token.ImplicitSubstitutionKind
}

// Span reports the inline's source span.
func (i Inline) Span() lexer.Span {
	return lexer.Span{Start: i.Start, End: i.End}
}

// PlainText renders the element's plain-text form, recursing into nested
// inlines and dropping formatting delimiters, for heading-ID slugging and
// "to_plain_string" style debugging (spec.md §4.6, "Heading ID").
func PlainText(inlines []Inline) string {
	var out []byte
	for _, el := range inlines {
		out = append(out, elementPlainText(el)...)
	}
	return string(out)
}

func elementPlainText(el Inline) string {
	switch el.Kind {
	case KindPlain, KindEscapedPlain, KindEscapedWhitespace, KindWhitespace,
		KindNamedSubstitution, KindDirectURI:
		return el.Content
	case KindNewline, KindEscapedNewline:
		return " "
	case KindImplicitSubstitution:
		return el.Content
	case KindInvalidContent:
		return el.Content
	case KindComment:
		return ""
	default:
		return PlainText(el.Inner)
	}
}
