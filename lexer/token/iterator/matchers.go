package iterator

import "github.com/unimarkup/unimarkup-go/lexer/token"

// SequenceEndMatcher ends a scope when the given kind sequence occurs,
// requiring prev_is_space to be false beforehand when RequirePrevNonSpace is
// set (spec.md §4.4 point 4). The textbox and hyperlink scopes use it to
// stop at "]" and ")"; verbatim/math closers use DelimiterEndMatcher
// instead. Consume controls whether the
// matched sequence is folded into this scope (closing delimiter) or left for
// the parent to reparse.
type SequenceEndMatcher struct {
	Kinds                []token.Kind
	RequirePrevNonSpace  bool
	Consume              bool
}

func (m SequenceEndMatcher) MatchLen(tokens []token.Token, at int, prevIsSpace bool) (int, bool) {
	if m.RequirePrevNonSpace && prevIsSpace {
		return 0, false
	}
	if at+len(m.Kinds) > len(tokens) {
		return 0, false
	}
	for i, k := range m.Kinds {
		if tokens[at+i].Kind != k {
			return 0, false
		}
	}
	if m.Consume {
		return len(m.Kinds), true
	}
	return 0, true
}

func (m SequenceEndMatcher) IsEmptyLine(tokens []token.Token, at int) bool {
	return isEmptyLineAt(tokens, at)
}

// DelimiterEndMatcher ends a scope when a token of the exact given kind and
// repeat count occurs (spec.md §4.5.2: verbatim/math close on
// "not prev_is_space && consumed_matches(&[kind])"). It never auto-consumes;
// callers re-check and consume the matched delimiter via the parent scope
// after Close, so they can recover its span.
type DelimiterEndMatcher struct {
	Kind                token.Kind
	Repeat              int
	RequirePrevNonSpace bool
}

func (m DelimiterEndMatcher) MatchLen(tokens []token.Token, at int, prevIsSpace bool) (int, bool) {
	if m.RequirePrevNonSpace && prevIsSpace {
		return 0, false
	}
	if at >= len(tokens) {
		return 0, false
	}
	t := tokens[at]
	if t.Kind == m.Kind && t.Repeat == m.Repeat {
		return 0, true
	}
	return 0, false
}

func (m DelimiterEndMatcher) IsEmptyLine(tokens []token.Token, at int) bool {
	return isEmptyLineAt(tokens, at)
}

// NewlineOrEoiMatcher ends a scope at the next Newline, Blankline, or Eoi,
// never consuming the boundary itself. Used by single-line constructs:
// headings and bullet-entry heading lines.
type NewlineOrEoiMatcher struct{}

func (NewlineOrEoiMatcher) MatchLen(tokens []token.Token, at int, _ bool) (int, bool) {
	if at >= len(tokens) {
		return 0, true
	}
	switch tokens[at].Kind {
	case token.KindNewline, token.KindBlankline, token.KindEoi:
		return 0, true
	default:
		return 0, false
	}
}

func (NewlineOrEoiMatcher) IsEmptyLine(tokens []token.Token, at int) bool {
	return isEmptyLineAt(tokens, at)
}

// BlanklineOrEoiMatcher ends a scope at a Blankline or Eoi, letting a plain
// single Newline pass through. Used by block constructs that span multiple
// lines but stop at the first fully blank line (paragraphs, bullet items).
type BlanklineOrEoiMatcher struct{}

func (BlanklineOrEoiMatcher) MatchLen(tokens []token.Token, at int, _ bool) (int, bool) {
	if at >= len(tokens) {
		return 0, true
	}
	switch tokens[at].Kind {
	case token.KindBlankline, token.KindEoi:
		return 0, true
	default:
		return 0, false
	}
}

func (BlanklineOrEoiMatcher) IsEmptyLine(tokens []token.Token, at int) bool {
	return isEmptyLineAt(tokens, at)
}

func isEmptyLineAt(tokens []token.Token, at int) bool {
	for i := at; i < len(tokens); i++ {
		switch tokens[i].Kind {
		case token.KindWhitespace, token.KindIndentation:
			continue
		case token.KindNewline, token.KindBlankline, token.KindEoi:
			return true
		default:
			return false
		}
	}
	return true
}

// IndentPrefixMatcher requires at least MinColumns of leading
// Indentation/Whitespace at the start of each continuation line, consuming
// exactly that much (spec.md §4.5: bullet entries require "indent+2
// columns").
type IndentPrefixMatcher struct {
	MinColumns int
}

func (m IndentPrefixMatcher) ConsumePrefix(tokens []token.Token, at int) (int, bool) {
	if m.MinColumns == 0 {
		return 0, true
	}
	if at >= len(tokens) {
		return 0, false
	}
	tok := tokens[at]
	switch tok.Kind {
	case token.KindIndentation, token.KindWhitespace:
		if tok.End.ColGrapheme-tok.Start.ColGrapheme >= m.MinColumns {
			return 1, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// NoOpPrefixMatcher accepts every continuation line unconditionally; used by
// scopes (paragraphs, headings) with no line-prefix requirement.
type NoOpPrefixMatcher struct{}

func (NoOpPrefixMatcher) ConsumePrefix(tokens []token.Token, at int) (int, bool) {
	return 0, true
}
