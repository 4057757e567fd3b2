package token

import (
	"strings"

	"github.com/unimarkup/unimarkup-go/lexer"
)

// Symbol is re-exported so callers need not import lexer directly just to
// invoke Lex.
type Symbol = lexer.Symbol

// Lex converts a symbol stream into a token stream (spec.md §4.2).
//
// Invariant T1: concatenating Token.Text() for all returned tokens
// reproduces the input byte-for-byte.
// Invariant T2: token repetition counts reflect maximal keyword runs.
func Lex(symbols []Symbol) []Token {
	l := &lexState{symbols: symbols, atLineStart: true}
	var tokens []Token
	for {
		tok, ok := l.next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
		if tok.Kind == KindEoi {
			break
		}
	}
	return tokens
}

type lexState struct {
	symbols     []Symbol
	i           int
	atLineStart bool

	// pendingBlanklineEnd, when > i, marks that the symbol at i begins a
	// Blankline region (whitespace-only line plus its terminating newline)
	// ending just before this index.
	pendingBlanklineEnd   int
	pendingBlanklineStart int
}

func (l *lexState) at(i int) (Symbol, bool) {
	if i < 0 || i >= len(l.symbols) {
		return Symbol{}, false
	}
	return l.symbols[i], true
}

func (l *lexState) cur() (Symbol, bool) {
	return l.at(l.i)
}

func (l *lexState) next() (Token, bool) {
	sym, ok := l.cur()
	if !ok {
		return Token{}, false
	}

	if l.pendingBlanklineEnd > l.i {
		return l.consumePendingBlankline(), true
	}

	switch sym.Kind {
	case lexer.Eoi:
		l.i++
		return Token{Input: sym.Input, Kind: KindEoi, Offset: sym.Offset, Start: sym.Start, End: sym.End, Repeat: 1}, true

	case lexer.Newline:
		return l.lexNewlineOrBlankline(), true

	case lexer.Backslash:
		return l.lexEscape(), true

	case lexer.Whitespace:
		return l.lexWhitespace(), true

	default:
		if sym.Kind.IsKeyword() {
			return l.lexKeywordRun(), true
		}
		return l.lexPlainOrComment(), true
	}
}

// lexNewlineOrBlankline implements invariant T3: a newline followed by a
// line containing only whitespace and another newline produces a Newline
// token followed (on the next call) by a Blankline token that consumes the
// blank whitespace plus its own terminating newline.
func (l *lexState) lexNewlineOrBlankline() Token {
	sym := l.symbols[l.i]

	// Is this newline itself the tail of a blank line opened by a previous
	// Newline token? Walk back is unnecessary: we decide blankline-ness
	// when we are AT a newline and look ahead, so by construction every
	// newline is classified exactly once, either as the Newline that opens
	// a fresh line or as part of a Blankline that closes one.
	j := l.i + 1
	wsStart := j
	for {
		s, ok := l.at(j)
		if !ok || s.Kind != lexer.Whitespace {
			break
		}
		j++
	}
	next, ok := l.at(j)
	if ok && next.Kind == lexer.Newline {
		// The line starting right after this newline is blank: consume
		// this newline as the ordinary Newline token, and mark that the
		// following Blankline region is [wsStart, j+1).
		l.i++
		l.pendingBlanklineEnd = j + 1
		l.pendingBlanklineStart = wsStart
		return Token{Input: sym.Input, Kind: KindNewline, Offset: sym.Offset, Start: sym.Start, End: sym.End, Repeat: 1}
	}

	l.i++
	l.atLineStart = true
	return Token{Input: sym.Input, Kind: KindNewline, Offset: sym.Offset, Start: sym.Start, End: sym.End, Repeat: 1}
}

func (l *lexState) consumePendingBlankline() Token {
	start := l.symbols[l.i]
	endIdx := l.pendingBlanklineEnd - 1
	end := l.symbols[endIdx]
	tok := Token{
		Input:  start.Input,
		Kind:   KindBlankline,
		Offset: lexer.Offset{Start: start.Offset.Start, End: end.Offset.End},
		Start:  start.Start,
		End:    end.End,
		Repeat: 1,
	}
	l.i = l.pendingBlanklineEnd
	l.pendingBlanklineEnd = 0
	l.atLineStart = true
	return tok
}

func (l *lexState) lexWhitespace() Token {
	start := l.symbols[l.i]
	j := l.i
	for {
		s, ok := l.at(j)
		if !ok || s.Kind != lexer.Whitespace {
			break
		}
		j++
	}
	end := l.symbols[j-1]
	atLineStart := l.atLineStart
	l.atLineStart = false
	l.i = j

	if atLineStart {
		return Token{
			Input:  start.Input,
			Kind:   KindIndentation,
			Offset: lexer.Offset{Start: start.Offset.Start, End: end.Offset.End},
			Start:  start.Start,
			End:    end.End,
			Repeat: end.End.ColGrapheme - start.Start.ColGrapheme,
		}
	}
	return Token{
		Input:  start.Input,
		Kind:   KindWhitespace,
		Offset: lexer.Offset{Start: start.Offset.Start, End: end.Offset.End},
		Start:  start.Start,
		End:    end.End,
		Repeat: 1,
	}
}

func (l *lexState) lexKeywordRun() Token {
	start := l.symbols[l.i]
	kind, coalesces := keywordKinds[start.Kind]

	l.atLineStart = false

	if !coalesces {
		// Parentheses: never coalesce, always repeat 1.
		l.i++
		return Token{
			Input: start.Input, Kind: parenKind(start.Kind),
			Offset: start.Offset, Start: start.Start, End: start.End, Repeat: 1,
		}
	}

	j := l.i + 1
	for {
		s, ok := l.at(j)
		if !ok || s.Kind != start.Kind {
			break
		}
		j++
	}
	end := l.symbols[j-1]
	repeat := j - l.i
	l.i = j
	return Token{
		Input:  start.Input,
		Kind:   kind,
		Offset: lexer.Offset{Start: start.Offset.Start, End: end.Offset.End},
		Start:  start.Start,
		End:    end.End,
		Repeat: repeat,
	}
}

func parenKind(k lexer.SymbolKind) Kind {
	switch k {
	case lexer.OpenParenthesis:
		return KindOpenParenthesis
	case lexer.CloseParenthesis:
		return KindCloseParenthesis
	case lexer.OpenBracket:
		return KindOpenBracket
	case lexer.CloseBracket:
		return KindCloseBracket
	case lexer.OpenBrace:
		return KindOpenBrace
	case lexer.CloseBrace:
		return KindCloseBrace
	default:
		return KindPlain
	}
}

func (l *lexState) lexEscape() Token {
	bs := l.symbols[l.i]
	next, ok := l.at(l.i + 1)
	l.atLineStart = false

	if !ok || next.Kind == lexer.Eoi {
		l.i++
		return Token{Input: bs.Input, Kind: KindPlain, Offset: bs.Offset, Start: bs.Start, End: bs.End, Repeat: 1}
	}

	switch next.Kind {
	case lexer.Whitespace:
		l.i += 2
		return Token{
			Input: bs.Input, Kind: KindEscapedWhitespace,
			Offset:  lexer.Offset{Start: bs.Offset.Start, End: next.Offset.End},
			Start:   bs.Start, End: next.End, Repeat: 1,
			Content: next.Text(),
		}
	case lexer.Newline:
		l.i += 2
		l.atLineStart = true
		return Token{
			Input: bs.Input, Kind: KindEscapedNewline,
			Offset: lexer.Offset{Start: bs.Offset.Start, End: next.Offset.End},
			Start:  bs.Start, End: next.End, Repeat: 1,
		}
	default:
		l.i += 2
		return Token{
			Input: bs.Input, Kind: KindEscapedPlain,
			Offset:  lexer.Offset{Start: bs.Offset.Start, End: next.Offset.End},
			Start:   bs.Start, End: next.End, Repeat: 1,
			Content: next.Text(),
		}
	}
}

func (l *lexState) lexPlainOrComment() Token {
	start := l.symbols[l.i]
	l.atLineStart = false

	if start.Text() == ";" {
		if next, ok := l.at(l.i + 1); ok && next.Text() == ";" {
			return l.lexComment()
		}
	}

	j := l.i
	var sb strings.Builder
	for {
		s, ok := l.at(j)
		if !ok || s.Kind.IsKeyword() || s.Kind == lexer.Whitespace || s.Kind == lexer.Newline || s.Kind == lexer.Eoi {
			break
		}
		if isTerminalPunctuationSymbol(s) {
			// A lone terminal-punctuation symbol becomes its own token below.
			break
		}
		sb.WriteString(s.Text())
		j++
	}

	if j == l.i {
		// Single terminal-punctuation symbol.
		end := l.symbols[j]
		l.i = j + 1
		return Token{
			Input: end.Input, Kind: KindTerminalPunctuation,
			Offset: end.Offset, Start: end.Start, End: end.End, Repeat: 1,
			Content: end.Text(),
		}
	}

	end := l.symbols[j-1]
	l.i = j
	return Token{
		Input:  start.Input,
		Kind:   KindPlain,
		Offset: lexer.Offset{Start: start.Offset.Start, End: end.Offset.End},
		Start:  start.Start,
		End:    end.End,
		Repeat: 1,
	}
}

func isTerminalPunctuationSymbol(s Symbol) bool {
	t := s.Text()
	if len([]rune(t)) != 1 {
		return false
	}
	r := []rune(t)[0]
	return terminalPunctuation[r]
}

// lexComment scans a ";;"-delimited comment. It closes explicitly on a
// second ";;" occurring on the same line, or implicitly at end-of-line/EOI.
func (l *lexState) lexComment() Token {
	start := l.symbols[l.i]
	j := l.i + 2 // skip opening ";;"
	contentStart := j
	implicitClose := true
	var end Symbol

	for {
		s, ok := l.at(j)
		if !ok {
			end = l.symbols[j-1]
			break
		}
		if s.Kind == lexer.Newline || s.Kind == lexer.Eoi {
			end = l.symbols[j-1]
			break
		}
		if s.Text() == ";" {
			if next, ok := l.at(j + 1); ok && next.Text() == ";" {
				implicitClose = false
				end = next
				j += 2
				break
			}
		}
		j++
	}

	var content strings.Builder
	contentEnd := j
	if !implicitClose {
		contentEnd = j - 2
	}
	for k := contentStart; k < contentEnd; k++ {
		content.WriteString(l.symbols[k].Text())
	}

	l.i = j
	return Token{
		Input:                 start.Input,
		Kind:                  KindComment,
		Offset:                lexer.Offset{Start: start.Offset.Start, End: end.Offset.End},
		Start:                 start.Start,
		End:                   end.End,
		Repeat:               1,
		Content:              content.String(),
		CommentImplicitClose: implicitClose,
	}
}
