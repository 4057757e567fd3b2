// Package block implements the block parser (spec.md §4.6): it walks the
// token stream left to right, dispatching on each line's leading token to
// produce a flat sequence of Block elements, then assembles them plus the
// parsed configuration into a Document.
package block

import (
	"github.com/unimarkup/unimarkup-go/inline"
	"github.com/unimarkup/unimarkup-go/lexer"
)

// Kind identifies which Block variant a value holds.
type Kind int

const (
	KindBlankline Kind = iota
	KindHeading
	KindParagraph
	KindVerbatimBlock
	KindBulletList
	KindBulletListEntry
	KindInvalidContent
)

// Block is a single parsed block element (spec.md §3, "Block" sum type).
type Block struct {
	Kind Kind

	Start lexer.Position
	End   lexer.Position

	// Heading fields.
	ID         string
	Level      int
	Attributes []inline.Inline

	// Paragraph/Heading content, and BulletListEntry's Heading line.
	Content []inline.Inline

	// VerbatimBlock fields.
	DataLang       string
	VerbatimText   string
	ImplicitClosed bool
	TickLen        int

	// BulletList fields.
	Entries []Block

	// BulletListEntry fields.
	Keyword string // one of "-", "+", "*"
	Body    []Block

	// InvalidContent fields.
	RawLines []string
}

// Span reports the block's source span.
func (b Block) Span() lexer.Span {
	return lexer.Span{Start: b.Start, End: b.End}
}
