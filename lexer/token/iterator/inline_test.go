package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unimarkup/unimarkup-go/lexer/token"
)

func TestInlineIteratorPushPopFormat(t *testing.T) {
	tokens := lexAll("text")
	it := NewInline(New(tokens))

	bold := FormatKey{Kind: token.KindStar, Repeat: 2}
	assert.False(t, it.FormatIsOpen(bold))
	assert.False(t, it.HasOpenFormats())

	it.PushFormat(bold)
	assert.True(t, it.FormatIsOpen(bold))
	assert.True(t, it.HasOpenFormats())

	it.PopFormat(bold)
	assert.False(t, it.FormatIsOpen(bold))
	assert.False(t, it.HasOpenFormats())
}

func TestInlineIteratorQuoteAndOverlineDoNotCloseEachOther(t *testing.T) {
	// Quote(1) and Quote(2) share a token kind but are distinct formats.
	tokens := lexAll("text")
	it := NewInline(New(tokens))

	quote := FormatKey{Kind: token.KindQuote, Repeat: 1}
	overline := FormatKey{Kind: token.KindQuote, Repeat: 2}

	it.PushFormat(quote)
	assert.True(t, it.FormatIsOpen(quote))
	assert.False(t, it.FormatIsOpen(overline))

	it.PopFormat(overline) // no-op: not open
	assert.True(t, it.FormatIsOpen(quote), "popping an unrelated key must not disturb an open one")
}

func TestInlineIteratorPopRemovesInnermostOccurrence(t *testing.T) {
	tokens := lexAll("text")
	it := NewInline(New(tokens))

	italic := FormatKey{Kind: token.KindStar, Repeat: 1}
	it.PushFormat(italic)
	it.PushFormat(italic)
	assert.Len(t, it.OpenFormats(), 2)

	it.PopFormat(italic)
	assert.Len(t, it.OpenFormats(), 1)
	assert.True(t, it.FormatIsOpen(italic))

	it.PopFormat(italic)
	assert.False(t, it.FormatIsOpen(italic))
}

func TestInlineIteratorAnyOpenWithKind(t *testing.T) {
	tokens := lexAll("text")
	it := NewInline(New(tokens))

	bold := FormatKey{Kind: token.KindStar, Repeat: 2}
	assert.False(t, it.AnyOpenWithKind(token.KindStar))
	it.PushFormat(bold)
	assert.True(t, it.AnyOpenWithKind(token.KindStar))
	assert.False(t, it.AnyOpenWithKind(token.KindUnderline))
}

func TestInlineIteratorOpenFormatsIsSnapshot(t *testing.T) {
	tokens := lexAll("text")
	it := NewInline(New(tokens))

	bold := FormatKey{Kind: token.KindStar, Repeat: 2}
	it.PushFormat(bold)

	snapshot := it.OpenFormats()
	it.PushFormat(FormatKey{Kind: token.KindUnderline, Repeat: 1})
	assert.Len(t, snapshot, 1, "a snapshot must not observe later mutations")
	assert.Len(t, it.OpenFormats(), 2)
}

func TestInlineIteratorEmbedsScopedIterator(t *testing.T) {
	tokens := lexAll("ab")
	it := NewInline(New(tokens))
	tok, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, "ab", tok.Text())
}
