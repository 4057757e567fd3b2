package inline

import (
	"github.com/unimarkup/unimarkup-go/lexer"
	"github.com/unimarkup/unimarkup-go/lexer/token"
	"github.com/unimarkup/unimarkup-go/lexer/token/iterator"
)

// Parse runs the inline parser over a scoped iterator until EOI or an
// enclosing scope/format boundary, per spec.md §4.5's main loop.
func Parse(it *iterator.InlineIterator, ctx *Context) []Inline {
	var out []Inline
	if ctx.Depth > maxRecursionDepth {
		return out
	}
	it.ResetPeek()

	for {
		it.ResetPeek()
		tok, ok := it.Peek()
		if !ok || tok.Kind == token.KindEoi {
			break
		}
		it.ResetPeek()

		if !ctx.LogicOnly {
			switch tok.Kind {
			case token.KindTick:
				if el, matched := parseScoped(it, ctx, token.KindTick, KindVerbatim); matched {
					out = append(out, el)
					continue
				}
			case token.KindDollar:
				if el, matched := parseScoped(it, ctx, token.KindDollar, KindMath); matched {
					out = append(out, el)
					continue
				}
			case token.KindOpenBracket:
				if el, matched := parseTextBoxOrHyperlink(it, ctx); matched {
					out = append(out, el)
					continue
				}
			case token.KindStar, token.KindUnderline:
				if el, matched := parseAmbiguous(it); matched {
					out = append(out, el)
					continue
				}
				if shouldCloseHere(it, tok) {
					return out
				}
			default:
				if key, isDistinct := distinctKey(tok); isDistinct {
					if it.FormatIsOpen(key) {
						return out
					}
					if el, matched := parseDistinct(it, key); matched {
						out = append(out, el)
						continue
					}
				}
			}
		}

		out = append(out, parseBase(it, ctx)...)
	}

	it.ResetPeek()
	return out
}

// shouldCloseHere reports whether an ambiguous-keyword token that failed to
// resolve as either open or close corresponds to a format already open on
// the stack, in which case the enclosing call (which pushed that format)
// needs to see it, rather than this level consuming it as plain text.
func shouldCloseHere(it *iterator.InlineIterator, tok token.Token) bool {
	return it.AnyOpenWithKind(tok.Kind)
}

// parseBase consumes exactly one token and emits the corresponding leaf
// inline (spec.md §4.5.4): plain text, whitespace, newline, escapes pass
// through, ImplicitSubstitution tokens produce ImplicitSubstitution inlines,
// and any unresolved keyword token degrades to plain text of its literal
// form (total-parser fallback, spec.md §4.7).
func parseBase(it *iterator.InlineIterator, ctx *Context) []Inline {
	tok, ok := it.Next()
	if !ok {
		return nil
	}

	switch tok.Kind {
	case token.KindWhitespace, token.KindIndentation:
		return []Inline{{Kind: KindWhitespace, Start: tok.Start, End: tok.End, Content: tok.Text()}}
	case token.KindNewline, token.KindBlankline:
		return []Inline{{Kind: KindNewline, Start: tok.Start, End: tok.End, Content: "\n"}}
	case token.KindEscapedWhitespace:
		return []Inline{{Kind: KindEscapedWhitespace, Start: tok.Start, End: tok.End, Content: tok.Content}}
	case token.KindEscapedNewline:
		return []Inline{{Kind: KindEscapedNewline, Start: tok.Start, End: tok.End, Content: "\n"}}
	case token.KindEscapedPlain:
		return []Inline{{Kind: KindEscapedPlain, Start: tok.Start, End: tok.End, Content: tok.Content}}
	case token.KindImplicitSubstitution:
		return []Inline{{
			Kind: KindImplicitSubstitution, Start: tok.Start, End: tok.End,
			Content: tok.ImplicitKind.Substituted(), Original: tok.Text(), ImplicitKind: tok.ImplicitKind,
		}}
	case token.KindDirectURI:
		return []Inline{{Kind: KindDirectURI, Start: tok.Start, End: tok.End, Content: tok.Text()}}
	case token.KindComment:
		return []Inline{{Kind: KindComment, Start: tok.Start, End: tok.End, Content: tok.Content}}
	case token.KindColon:
		if el, ok := tryNamedSubstitution(it, ctx, tok); ok {
			return []Inline{el}
		}
		return []Inline{{Kind: KindPlain, Start: tok.Start, End: tok.End, Content: tok.Text()}}
	default:
		return []Inline{{Kind: KindPlain, Start: tok.Start, End: tok.End, Content: tok.Text()}}
	}
}

// lastNonWhitespaceEnd returns the end position of the last non-whitespace
// element in inner, falling back to fallback (spec.md §4.5.1: "each open
// format closes at the position of the last non-whitespace token").
func lastNonWhitespaceEnd(inner []Inline, fallback lexer.Position) lexer.Position {
	for i := len(inner) - 1; i >= 0; i-- {
		switch inner[i].Kind {
		case KindWhitespace, KindNewline:
			continue
		default:
			return inner[i].End
		}
	}
	return fallback
}
