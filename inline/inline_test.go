package inline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unimarkup/unimarkup-go/lexer"
	"github.com/unimarkup/unimarkup-go/lexer/token"
	"github.com/unimarkup/unimarkup-go/lexer/token/iterator"
)

func parse(input string) []Inline {
	tokens := token.Lex(lexer.Scan(input))
	it := iterator.NewInline(iterator.New(tokens))
	return Parse(it, DefaultContext())
}

func kinds(inlines []Inline) []Kind {
	out := make([]Kind, len(inlines))
	for i, el := range inlines {
		out[i] = el.Kind
	}
	return out
}

func TestPlainTextFlattensNestedFormats(t *testing.T) {
	inlines := parse("a **bold** b")
	assert.Equal(t, "a bold b", PlainText(inlines))
}

func TestPlainTextTreatsNewlineAsSpace(t *testing.T) {
	inlines := parse("a\nb")
	assert.Equal(t, "a b", PlainText(inlines))
}

func TestPlainTextDropsComments(t *testing.T) {
	inlines := parse(";;hidden;; visible")
	assert.Equal(t, " visible", PlainText(inlines))
}

func TestInlineSpanMatchesStartEnd(t *testing.T) {
	inlines := parse("hi")
	require.Len(t, inlines, 1)
	span := inlines[0].Span()
	assert.Equal(t, inlines[0].Start, span.Start)
	assert.Equal(t, inlines[0].End, span.End)
}
