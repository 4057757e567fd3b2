package inline

import (
	"github.com/unimarkup/unimarkup-go/lexer/token"
	"github.com/unimarkup/unimarkup-go/lexer/token/iterator"
)

// parseTextBoxOrHyperlink implements spec.md §4.5.3: "[ ... ]" opens a
// textbox scope ending on a matching "]"; if a "(" immediately follows the
// close, a link scope reads to a matching ")" and the result is a
// Hyperlink, otherwise a TextBox.
func parseTextBoxOrHyperlink(it *iterator.InlineIterator, ctx *Context) (Inline, bool) {
	openTok, ok := it.Next()
	if !ok {
		return Inline{}, false
	}

	boxChild := it.Nest(nil, iterator.SequenceEndMatcher{Kinds: []token.Kind{token.KindCloseBracket}})
	inner := Parse(iterator.NewInline(boxChild), ctx.child())
	boxChild.Close()

	implicitEnd := true
	end := lastNonWhitespaceEnd(inner, openTok.End)
	if closeTok, ok := it.Peek(); ok && closeTok.Kind == token.KindCloseBracket {
		it.Next()
		implicitEnd = false
		end = closeTok.End
	}
	it.ResetPeek()

	linkOpen, ok := it.Peek()
	it.ResetPeek()
	if !ok || linkOpen.Kind != token.KindOpenParenthesis {
		return Inline{Kind: KindTextBox, Start: openTok.Start, End: end, Inner: inner, ImplicitEnd: implicitEnd}, true
	}

	it.Next() // consume '('
	linkChild := it.Nest(nil, iterator.SequenceEndMatcher{Kinds: []token.Kind{token.KindCloseParenthesis}})
	link := Parse(iterator.NewInline(linkChild), ctx.child())
	linkChild.Close()

	linkEnd := end
	if closeParen, ok := it.Peek(); ok && closeParen.Kind == token.KindCloseParenthesis {
		it.Next()
		linkEnd = closeParen.End
	}
	it.ResetPeek()

	return Inline{
		Kind: KindHyperlink, Start: openTok.Start, End: linkEnd,
		Inner: inner, Link: link, ImplicitEnd: implicitEnd,
	}, true
}
