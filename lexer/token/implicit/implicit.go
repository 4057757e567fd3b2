// Package implicit recognizes token-sequence patterns such as "(C)", "...",
// "--", "-->", ":)" and rewrites them into a single ImplicitSubstitution
// token when they are surrounded by whitespace, newline, terminal
// punctuation, or EOI (spec.md §4.3).
//
// Substitution runs over a fully materialized token slice (produced by
// token.Lex) rather than a push/pull stream: the scoped token iterator
// (lexer/token/iterator) decides, per scope, whether substitution is
// enabled and calls MatchAt against its own current index, so verbatim and
// math scopes can disable substitution for their contents exactly as
// spec.md §4.3 describes ("when substitution is disabled ... this layer is
// a pass-through").
package implicit

import (
	"strings"

	"github.com/unimarkup/unimarkup-go/lexer"
	"github.com/unimarkup/unimarkup-go/lexer/token"
	"golang.org/x/text/unicode/norm"
)

// MaxPatternLen is the longest token run a run, fixed or ASCII-form pattern
// spans (spec.md §9: a ring buffer of size 6 suffices for "((C))"). Direct
// URIs are matched against the rest of the token slice instead.
const MaxPatternLen = 6

// MatchAt attempts to match a substitution pattern starting at tokens[i].
// It returns the merged substitution token and the number of input tokens
// it consumes. tokens must end with a KindEoi token so lookahead never runs
// past the end of input.
func MatchAt(tokens []token.Token, i int) (token.Token, int, bool) {
	if i >= len(tokens) {
		return token.Token{}, 0, false
	}
	if !boundaryBefore(tokens, i) {
		return token.Token{}, 0, false
	}

	buf := tokens[i:]
	if len(buf) > MaxPatternLen {
		buf = buf[:MaxPatternLen]
	}

	if t, n, ok := matchRunSubstitution(buf); ok {
		return t, n, true
	}
	if t, n, ok := matchFixedPattern(buf); ok {
		return t, n, true
	}
	if t, n, ok := matchAsciiForm(buf); ok {
		return t, n, true
	}
	if t, n, ok := matchDirectURI(tokens[i:]); ok {
		return t, n, true
	}
	return token.Token{}, 0, false
}

func boundaryBefore(tokens []token.Token, i int) bool {
	if i == 0 {
		return true
	}
	return isBoundaryKind(tokens[i-1].Kind)
}

func isBoundaryKind(k token.Kind) bool {
	switch k {
	case token.KindWhitespace, token.KindNewline, token.KindBlankline,
		token.KindEoi, token.KindTerminalPunctuation:
		return true
	default:
		return false
	}
}

func followedByBoundary(buf []token.Token, at int) bool {
	if at >= len(buf) {
		return true
	}
	return isBoundaryKind(buf[at].Kind)
}

// pattern describes one fixed token-kind sequence recognized by the
// substitution table (spec.md §4.3).
type pattern struct {
	kinds []token.Kind
	texts []string // lower-cased literal text to match per token, "" = any text
	kind  token.ImplicitSubstitutionKind
}

var fixedPatterns = []pattern{
	{
		kinds: []token.Kind{token.KindOpenParenthesis, token.KindPlain, token.KindCloseParenthesis},
		texts: []string{"", "c", ""},
		kind:  token.SubCopyright,
	},
	{
		kinds: []token.Kind{token.KindOpenParenthesis, token.KindPlain, token.KindCloseParenthesis},
		texts: []string{"", "r", ""},
		kind:  token.SubRegistered,
	},
	{
		kinds: []token.Kind{token.KindOpenParenthesis, token.KindPlain, token.KindCloseParenthesis},
		texts: []string{"", "tm", ""},
		kind:  token.SubTrademark,
	},
	{
		kinds: []token.Kind{token.KindOpenParenthesis, token.KindPlus, token.KindMinus, token.KindCloseParenthesis},
		kind:  token.SubPlusMinus,
	},
	{
		kinds: []token.Kind{token.KindOpenParenthesis, token.KindMinus, token.KindPlus, token.KindCloseParenthesis},
		kind:  token.SubPlusMinus,
	},
}

// arrowForms and emojiForms hold predefined ASCII runs recognized as Arrow
// and Emoji substitutions (spec.md §4.3). Each is matched against the joined
// text of the tokens up to the next boundary, since most forms span several
// tokens: "-->" lexes as Minus(2), Plain(">") and ":)" as Colon(1),
// CloseParenthesis.
var arrowForms = map[string]bool{
	"->": true, "<-": true, "-->": true, "<--": true, "<->": true, "<-->": true,
	"=>": true, "<=": true, "<=>": true,
}

var emojiForms = map[string]bool{
	":)": true, ":(": true, ":D": true, ";)": true, ":P": true, ":p": true,
	"<3": true, ":'(": true,
}

var uriSchemes = []string{"http://", "https://", "ftp://", "mailto:", "file://"}

// matchRunSubstitution handles Dot(3) -> HorizontalEllipsis, Minus(2) -> EnDash,
// Minus(3) -> EmDash.
func matchRunSubstitution(buf []token.Token) (token.Token, int, bool) {
	t := buf[0]
	if !followedByBoundary(buf, 1) {
		return token.Token{}, 0, false
	}
	switch {
	case t.Kind == token.KindDot && t.Repeat == 3:
		return substituted(t, token.SubHorizontalEllipsis), 1, true
	case t.Kind == token.KindMinus && t.Repeat == 2:
		return substituted(t, token.SubEnDash), 1, true
	case t.Kind == token.KindMinus && t.Repeat == 3:
		return substituted(t, token.SubEmDash), 1, true
	}
	return token.Token{}, 0, false
}

func matchFixedPattern(buf []token.Token) (token.Token, int, bool) {
	for _, p := range fixedPatterns {
		n := len(p.kinds)
		if len(buf) < n {
			continue
		}
		ok := true
		for i, k := range p.kinds {
			if buf[i].Kind != k {
				ok = false
				break
			}
			if len(p.texts) > i && p.texts[i] != "" {
				if !strings.EqualFold(norm.NFC.String(buf[i].Text()), p.texts[i]) {
					ok = false
					break
				}
			}
		}
		if !ok {
			continue
		}
		if !followedByBoundary(buf, n) {
			continue
		}
		return mergeTokens(buf[:n], p.kind), n, true
	}
	return token.Token{}, 0, false
}

func matchAsciiForm(buf []token.Token) (token.Token, int, bool) {
	n := 0
	var sb strings.Builder
	for n < len(buf) && !isBoundaryKind(buf[n].Kind) {
		sb.WriteString(buf[n].Text())
		n++
	}
	text := sb.String()
	if arrowForms[text] {
		return mergeTokens(buf[:n], token.SubArrow), n, true
	}
	if emojiForms[text] {
		return mergeTokens(buf[:n], token.SubEmoji), n, true
	}
	return token.Token{}, 0, false
}

// matchDirectURI joins the text of the tokens up to the next boundary or
// closing bracket/parenthesis (":" and "." are keyword symbols, so
// "https://example.com" lexes as five tokens) and checks it for a scheme.
func matchDirectURI(rest []token.Token) (token.Token, int, bool) {
	if rest[0].Kind != token.KindPlain {
		return token.Token{}, 0, false
	}
	n := 0
	var sb strings.Builder
	for ; n < len(rest); n++ {
		k := rest[n].Kind
		if isBoundaryKind(k) || k == token.KindCloseBracket || k == token.KindCloseParenthesis {
			break
		}
		sb.WriteString(rest[n].Text())
	}
	text := sb.String()
	for _, scheme := range uriSchemes {
		if strings.HasPrefix(text, scheme) && len(text) > len(scheme) {
			tok := mergeTokens(rest[:n], token.SubDirectURI)
			tok.Kind = token.KindDirectURI
			return tok, n, true
		}
	}
	return token.Token{}, 0, false
}

func substituted(t token.Token, kind token.ImplicitSubstitutionKind) token.Token {
	tok := t
	tok.Kind = token.KindImplicitSubstitution
	tok.ImplicitKind = kind
	return tok
}

func mergeTokens(toks []token.Token, kind token.ImplicitSubstitutionKind) token.Token {
	first, last := toks[0], toks[len(toks)-1]
	return token.Token{
		Input:        first.Input,
		Kind:         token.KindImplicitSubstitution,
		Offset:       lexer.Offset{Start: first.Offset.Start, End: last.Offset.End},
		Start:        first.Start,
		End:          last.End,
		Repeat:       1,
		ImplicitKind: kind,
	}
}
