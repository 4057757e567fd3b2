package inline

import (
	"strings"

	"github.com/unimarkup/unimarkup-go/lexer/token"
	"github.com/unimarkup/unimarkup-go/lexer/token/iterator"
)

// parseScoped implements inline verbatim/math (spec.md §4.5.2): a child
// scope is opened whose end matcher requires an exact delimiter match
// (same keyword, same run length) not preceded by whitespace; inside,
// implicit substitution is disabled and whitespace is preserved verbatim.
func parseScoped(it *iterator.InlineIterator, ctx *Context, delimKind token.Kind, resultKind Kind) (Inline, bool) {
	openTok, ok := it.Next()
	if !ok {
		return Inline{}, false
	}
	repeat := openTok.Repeat

	child := it.Nest(nil, iterator.DelimiterEndMatcher{
		Kind: delimKind, Repeat: repeat, RequirePrevNonSpace: true,
	})
	child.IgnoreImplicits()

	var sb strings.Builder
	end := openTok.End
	for {
		tok, ok := child.Next()
		if !ok {
			break
		}
		sb.WriteString(tok.Text())
		end = tok.End
	}
	child.Close()

	implicitEnd := true
	if closeTok, ok := it.Peek(); ok && closeTok.Kind == delimKind && closeTok.Repeat == repeat {
		it.Next()
		implicitEnd = false
		end = closeTok.End
	}
	it.ResetPeek()

	return Inline{
		Kind: resultKind, Start: openTok.Start, End: end,
		Content: sb.String(), ImplicitEnd: implicitEnd,
	}, true
}
