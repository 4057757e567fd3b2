package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unimarkup/unimarkup-go/lexer"
)

func lex(input string) []Token {
	return Lex(lexer.Scan(input))
}

func TestLexEmptyInputYieldsOnlyEoi(t *testing.T) {
	tokens := lex("")
	require.Len(t, tokens, 1)
	assert.Equal(t, KindEoi, tokens[0].Kind)
}

func TestLexCoalescesKeywordRuns(t *testing.T) {
	tokens := lex("###")
	require.GreaterOrEqual(t, len(tokens), 1)
	assert.Equal(t, KindHash, tokens[0].Kind)
	assert.Equal(t, 3, tokens[0].Repeat)
	assert.Equal(t, "###", tokens[0].Text())
}

func TestLexParenthesesNeverCoalesce(t *testing.T) {
	tokens := lex("((")
	require.GreaterOrEqual(t, len(tokens), 2)
	assert.Equal(t, KindOpenParenthesis, tokens[0].Kind)
	assert.Equal(t, 1, tokens[0].Repeat)
	assert.Equal(t, KindOpenParenthesis, tokens[1].Kind)
}

func TestLexIndentationAtLineStart(t *testing.T) {
	tokens := lex("  a")
	require.GreaterOrEqual(t, len(tokens), 2)
	assert.Equal(t, KindIndentation, tokens[0].Kind)
	assert.Equal(t, 2, tokens[0].Repeat)
}

func TestLexWhitespaceMidLineIsNotIndentation(t *testing.T) {
	tokens := lex("a  b")
	require.GreaterOrEqual(t, len(tokens), 2)
	assert.Equal(t, KindPlain, tokens[0].Kind)
	assert.Equal(t, KindWhitespace, tokens[1].Kind)
	assert.Equal(t, 1, tokens[1].Repeat)
}

func TestLexBlanklineBetweenNewlines(t *testing.T) {
	// "a\n\nb": Newline, Blankline, then "b".
	tokens := lex("a\n\nb")
	var kinds []Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Contains(t, kinds, KindBlankline)
	assert.Contains(t, kinds, KindNewline)
}

func TestLexBlanklineConsumesWhitespaceOnlyLine(t *testing.T) {
	// A whitespace-only line between two newlines is absorbed into the
	// Blankline token rather than emitted as its own Whitespace token.
	tokens := lex("a\n  \nb")
	var kinds []Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Contains(t, kinds, KindBlankline)
	assert.NotContains(t, kinds, KindWhitespace)
}

func TestLexEscapedWhitespace(t *testing.T) {
	tokens := lex(`\ x`)
	require.GreaterOrEqual(t, len(tokens), 1)
	assert.Equal(t, KindEscapedWhitespace, tokens[0].Kind)
	assert.Equal(t, " ", tokens[0].Content)
}

func TestLexEscapedNewline(t *testing.T) {
	tokens := lex("\\\nx")
	require.GreaterOrEqual(t, len(tokens), 1)
	assert.Equal(t, KindEscapedNewline, tokens[0].Kind)
}

func TestLexEscapedPlain(t *testing.T) {
	tokens := lex(`\*`)
	require.GreaterOrEqual(t, len(tokens), 1)
	assert.Equal(t, KindEscapedPlain, tokens[0].Kind)
	assert.Equal(t, "*", tokens[0].Content)
}

func TestLexTrailingBackslashBecomesPlain(t *testing.T) {
	tokens := lex(`\`)
	require.GreaterOrEqual(t, len(tokens), 1)
	assert.Equal(t, KindPlain, tokens[0].Kind)
}

func TestLexTerminalPunctuationIsOwnToken(t *testing.T) {
	tokens := lex("hi!")
	require.GreaterOrEqual(t, len(tokens), 2)
	assert.Equal(t, KindPlain, tokens[0].Kind)
	assert.Equal(t, "hi", tokens[0].Text())
	assert.Equal(t, KindTerminalPunctuation, tokens[1].Kind)
	assert.Equal(t, "!", tokens[1].Content)
}

func TestLexCommentExplicitClose(t *testing.T) {
	tokens := lex(";;note;; rest")
	require.GreaterOrEqual(t, len(tokens), 1)
	assert.Equal(t, KindComment, tokens[0].Kind)
	assert.Equal(t, "note", tokens[0].Content)
	assert.False(t, tokens[0].CommentImplicitClose)
}

func TestLexCommentImplicitCloseAtNewline(t *testing.T) {
	tokens := lex(";;note\nx")
	require.GreaterOrEqual(t, len(tokens), 1)
	assert.Equal(t, KindComment, tokens[0].Kind)
	assert.Equal(t, "note", tokens[0].Content)
	assert.True(t, tokens[0].CommentImplicitClose)
}

func TestLexCommentImplicitCloseAtEoi(t *testing.T) {
	tokens := lex(";;note")
	require.GreaterOrEqual(t, len(tokens), 1)
	assert.Equal(t, KindComment, tokens[0].Kind)
	assert.Equal(t, "note", tokens[0].Content)
	assert.True(t, tokens[0].CommentImplicitClose)
}

func TestLexSingleSemicolonIsPlain(t *testing.T) {
	tokens := lex(";x")
	require.GreaterOrEqual(t, len(tokens), 1)
	assert.Equal(t, KindPlain, tokens[0].Kind)
	assert.Equal(t, ";x", tokens[0].Text())
}

func TestLexLastTokenIsAlwaysEoi(t *testing.T) {
	for _, input := range []string{"", "a", "# head\n\nbody", ";;c;;"} {
		tokens := lex(input)
		require.NotEmpty(t, tokens, "input %q", input)
		assert.Equal(t, KindEoi, tokens[len(tokens)-1].Kind, "input %q", input)
	}
}

func TestLexRoundTripsBytesInOrder(t *testing.T) {
	// T1: concatenating Token.Text() for all tokens reproduces the input.
	inputs := []string{
		"",
		"plain text",
		"# heading\n\nbody *x* `y`",
		"a\n  \nb",
		`\ escaped \* plain`,
		";;a comment;; tail",
		"hi! there, friend?",
	}
	for _, input := range inputs {
		tokens := lex(input)
		var rebuilt string
		for _, tok := range tokens {
			rebuilt += tok.Text()
		}
		assert.Equal(t, input, rebuilt, "input %q", input)
	}
}

func TestLexKeywordRunRepeatReflectsMaximalRun(t *testing.T) {
	// T2: repetition counts reflect maximal keyword runs, stopping at a
	// differing keyword kind.
	tokens := lex("**-")
	require.GreaterOrEqual(t, len(tokens), 2)
	assert.Equal(t, KindStar, tokens[0].Kind)
	assert.Equal(t, 2, tokens[0].Repeat)
	assert.Equal(t, KindMinus, tokens[1].Kind)
	assert.Equal(t, 1, tokens[1].Repeat)
}
