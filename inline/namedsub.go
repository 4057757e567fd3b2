package inline

import (
	"strings"

	"github.com/unimarkup/unimarkup-go/lexer/token"
	"github.com/unimarkup/unimarkup-go/lexer/token/iterator"
)

// namedSubstitutions recognizes "::name::" sequences (Colon(2) delimiters,
// DESIGN.md, Open Questions: the remaining Colon keyword run from the
// symbol table is repurposed for named substitutions, mirroring how the
// original implementation used its own dedicated delimiter for the same
// feature).
var namedSubstitutions = map[string]string{
	"heart":       "♥",
	"smile":       "☺",
	"check":       "✓",
	"cross":       "✗",
	"star":        "★",
	"warning":     "⚠",
	"arrow-right": "→",
	"arrow-left":  "←",
}

// tryNamedSubstitution attempts to resolve a Colon(2) token (already
// consumed into openTok) plus a following name and closing Colon(2) into a
// NamedSubstitution inline. The name may span several tokens (e.g.
// "arrow-right" lexes as Plain("arrow"), Minus(1), Plain("right")), so the
// raw text of every token up to the closing Colon(2) is concatenated before
// looking it up.
func tryNamedSubstitution(it *iterator.InlineIterator, ctx *Context, openTok token.Token) (Inline, bool) {
	if openTok.Repeat != 2 {
		return Inline{}, false
	}

	var sb strings.Builder
	var closeTok token.Token
	found := false
	for {
		tok, ok := it.Peek()
		if !ok || tok.Kind == token.KindNewline || tok.Kind == token.KindBlankline {
			break
		}
		if tok.Kind == token.KindColon && tok.Repeat == 2 {
			closeTok = tok
			found = true
			break
		}
		sb.WriteString(tok.Text())
	}
	it.ResetPeek()
	if !found || sb.Len() == 0 {
		return Inline{}, false
	}

	name := strings.ToLower(sb.String())
	glyph, known := namedSubstitutions[name]
	if !known {
		return Inline{}, false
	}

	for {
		tok, _ := it.Next()
		if tok.Kind == token.KindColon && tok.Repeat == 2 {
			break
		}
	}

	return Inline{
		Kind: KindNamedSubstitution, Start: openTok.Start, End: closeTok.End,
		Content: glyph, Original: "::" + sb.String() + "::",
	}, true
}
