package inline

import (
	"github.com/unimarkup/unimarkup-go/lexer/token"
	"github.com/unimarkup/unimarkup-go/lexer/token/iterator"
)

// distinctFormats maps a single-keyword delimiter plus its run length to the
// inline kind it opens (spec.md §4.5.2 distinct formats). Quote and
// Overline share the Quote grapheme, the same way Star/Underline
// disambiguate by run length for the ambiguous pair.
var distinctFormats = map[iterator.FormatKey]Kind{
	{Kind: token.KindTilde, Repeat: 1}: KindStrikethrough,
	{Kind: token.KindCaret, Repeat: 1}: KindSuperscript,
	{Kind: token.KindPipe, Repeat: 1}:  KindHighlight,
	{Kind: token.KindQuote, Repeat: 1}: KindQuote,
	{Kind: token.KindQuote, Repeat: 2}: KindOverline,
}

func distinctKey(tok token.Token) (iterator.FormatKey, bool) {
	key := iterator.FormatKey{Kind: tok.Kind, Repeat: tok.Repeat}
	_, ok := distinctFormats[key]
	return key, ok
}

// parseDistinct opens a single-keyword format, parses its inner content
// recursively, and resolves the closing delimiter (spec.md §4.5.2),
// grounded on the open/parse-inner/match-close shape used throughout the
// original distinct-format parser. Entry/exit invariant: peekIndex == index.
func parseDistinct(it *iterator.InlineIterator, key iterator.FormatKey) (Inline, bool) {
	// Refuse to open a format immediately followed by whitespace/newline/EOI:
	// there is nothing to format.
	if _, ok := it.Peek(); !ok {
		it.ResetPeek()
		return Inline{}, false
	}
	next, ok := it.Peek()
	it.ResetPeek()
	if !ok || next.Kind.IsSpacing() {
		return Inline{}, false
	}

	openTok, _ := it.Next() // consume the opener for real.
	it.PushFormat(key)

	inner := Parse(it, DefaultContext().withinFormat())

	implicitEnd := true
	end := lastNonWhitespaceEnd(inner, openTok.End)

	if closeTok, ok := it.Peek(); ok && closeTok.Kind == key.Kind && closeTok.Repeat == key.Repeat {
		it.Next()
		implicitEnd = false
		end = closeTok.End
	}
	it.ResetPeek()

	it.PopFormat(key)

	return Inline{
		Kind: distinctFormats[key], Start: openTok.Start, End: end,
		Inner: inner, ImplicitEnd: implicitEnd,
	}, true
}

var ambiguousRunKind = map[token.Kind]map[int]Kind{
	token.KindStar:      {1: KindItalic, 2: KindBold, 3: KindBoldItalic},
	token.KindUnderline: {1: KindUnderline, 2: KindSubscript, 3: KindUnderlineSubscript},
}

// parseAmbiguous resolves a Star(n)/Underline(n) run per spec.md §4.5.1.
// Runs outside {1,2,3} degrade to literal plain text as a whole.
// Entry/exit invariant: peekIndex == index.
func parseAmbiguous(it *iterator.InlineIterator) (Inline, bool) {
	tok, ok := it.Peek()
	if !ok {
		it.ResetPeek()
		return Inline{}, false
	}
	resultKind, known := ambiguousRunKind[tok.Kind][tok.Repeat]
	if !known {
		it.ResetPeek()
		return Inline{}, false
	}
	key := iterator.FormatKey{Kind: tok.Kind, Repeat: tok.Repeat}

	prev, hasPrev := it.PrevToken()
	// The start of a textbox counts like the start of a line.
	prevBoundary := !hasPrev || prev.Kind.IsSpacing() || prev.Kind == token.KindOpenBracket
	next, hasNext := it.Peek()
	it.ResetPeek()
	nextBoundary := !hasNext || next.Kind.IsSpacing()

	opening := prevBoundary && !nextBoundary
	if !opening {
		// A non-opening occurrence never resolves here: if the matching
		// format is open, the enclosing parseAmbiguous call consumes it as
		// its close below; otherwise it degrades to plain text.
		return Inline{}, false
	}

	openTok, _ := it.Next()
	it.PushFormat(key)

	inner := Parse(it, DefaultContext().withinFormat())

	implicitEnd := true
	end := lastNonWhitespaceEnd(inner, openTok.End)
	if closeTok, ok := it.Peek(); ok && closeTok.Kind == key.Kind && closeTok.Repeat == key.Repeat {
		it.Next()
		implicitEnd = false
		end = closeTok.End
	}
	it.ResetPeek()
	it.PopFormat(key)

	return Inline{Kind: resultKind, Start: openTok.Start, End: end, Inner: inner, ImplicitEnd: implicitEnd}, true
}

func (c *Context) withinFormat() *Context {
	return c.child()
}
