// Package token collapses a Symbol stream into a Token stream: keyword runs
// coalesce into a single token carrying a repetition count, escapes and
// comments are recognized, and blankline/indentation bookkeeping is done.
package token

import "github.com/unimarkup/unimarkup-go/lexer"

// Kind identifies the syntactic category of a Token.
type Kind int

const (
	// Keyword runs; Repeat holds the run length (always >= 1).
	KindHash Kind = iota
	KindStar
	KindMinus
	KindPlus
	KindUnderline
	KindCaret
	KindTick
	KindPipe
	KindTilde
	KindQuote
	KindDollar
	KindColon
	KindDot

	// Parentheses.
	KindOpenParenthesis
	KindCloseParenthesis
	KindOpenBracket
	KindCloseBracket
	KindOpenBrace
	KindCloseBrace

	// Whitespace.
	KindWhitespace
	KindNewline
	KindBlankline
	KindEoi
	KindIndentation

	// Escaped.
	KindEscapedPlain
	KindEscapedWhitespace
	KindEscapedNewline

	// Content.
	KindPlain
	KindTerminalPunctuation

	// Semantic.
	KindComment
	KindImplicitSubstitution
	KindDirectURI

	// Matching placeholders, used only by scope end/prefix matchers.
	KindAny
	KindSpace
	KindEnclosedBlockEnd
	KindPossibleAttributes
	KindPossibleDecorator
)

var keywordKinds = map[lexer.SymbolKind]Kind{
	lexer.Hash:      KindHash,
	lexer.Star:      KindStar,
	lexer.Minus:     KindMinus,
	lexer.Plus:      KindPlus,
	lexer.Underline: KindUnderline,
	lexer.Caret:     KindCaret,
	lexer.Tick:      KindTick,
	lexer.Pipe:      KindPipe,
	lexer.Tilde:     KindTilde,
	lexer.Quote:     KindQuote,
	lexer.Dollar:    KindDollar,
	lexer.Colon:     KindColon,
	lexer.Dot:       KindDot,
}

// terminalPunctuation lists Plain-kind graphemes that terminate a sentence
// and act as a substitution/format boundary the same way whitespace does.
// '.' and ':' are excluded: those graphemes are keyword symbols (KindDot,
// KindColon) handled by the keyword-run path instead.
var terminalPunctuation = map[rune]bool{
	'!': true, '?': true, ',': true,
}

// IsKeywordRun reports whether k is one of the run-length keyword kinds.
func (k Kind) IsKeywordRun() bool {
	switch k {
	case KindHash, KindStar, KindMinus, KindPlus, KindUnderline, KindCaret,
		KindTick, KindPipe, KindTilde, KindQuote, KindDollar, KindColon, KindDot:
		return true
	default:
		return false
	}
}

// IsSpacing reports whether k behaves as whitespace/newline/boundary for
// the purposes of the ambiguous-format resolver and implicit substitutions.
func (k Kind) IsSpacing() bool {
	switch k {
	case KindWhitespace, KindNewline, KindBlankline, KindEoi:
		return true
	default:
		return false
	}
}

// Token is a single lexical unit produced by Lex. Like Symbol, it borrows
// the input for the lifetime of parsing.
type Token struct {
	Input string
	Kind  Kind
	lexer.Offset
	Start Position
	End   Position

	// Repeat is the run length for keyword-run kinds (>= 1), and is 1 for
	// every other kind except KindIndentation, where it holds the grapheme
	// column count of the indentation.
	Repeat int

	// Content holds decoded text for escaped tokens and comments.
	Content string

	// ImplicitKind further classifies a KindImplicitSubstitution token.
	ImplicitKind ImplicitSubstitutionKind

	// CommentImplicitClose is true when a KindComment token was closed by
	// end-of-line rather than an explicit ";;".
	CommentImplicitClose bool
}

// Position mirrors lexer.Position; token positions are always grapheme
// positions inherited from the underlying symbols.
type Position = lexer.Position

// Text returns the literal textual form of the token.
func (t Token) Text() string {
	return t.Offset.Slice(t.Input)
}

// Span returns the token's span.
func (t Token) Span() lexer.Span {
	return lexer.Span{Start: t.Start, End: t.End}
}

// ImplicitSubstitutionKind enumerates the recognized implicit-substitution
// patterns (spec.md §4.3).
type ImplicitSubstitutionKind int

const (
	SubNone ImplicitSubstitutionKind = iota
	SubArrow
	SubEmoji
	SubTrademark
	SubCopyright
	SubRegistered
	SubHorizontalEllipsis
	SubPlusMinus
	SubEnDash
	SubEmDash
	SubDirectURI
)

// Substituted returns the substituted Unicode form for a given
// ImplicitSubstitutionKind where the mapping is static. It returns "" for
// SubArrow, SubEmoji and SubDirectURI, whose tokens carry only their
// original ASCII text (Token.Text).
func (k ImplicitSubstitutionKind) Substituted() string {
	switch k {
	case SubTrademark:
		return "™"
	case SubCopyright:
		return "©"
	case SubRegistered:
		return "®"
	case SubHorizontalEllipsis:
		return "…"
	case SubPlusMinus:
		return "±"
	case SubEnDash:
		return "–"
	case SubEmDash:
		return "—"
	default:
		return ""
	}
}
