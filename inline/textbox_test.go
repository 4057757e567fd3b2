package inline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextBoxResolves(t *testing.T) {
	inlines := parse("a [box] b")
	el, ok := findKind(inlines, KindTextBox)
	require.True(t, ok)
	assert.Equal(t, "box", PlainText(el.Inner))
	assert.False(t, el.ImplicitEnd)
}

func TestHyperlinkResolvesWithLabelAndLink(t *testing.T) {
	inlines := parse("a [label](https://example.com) b")
	el, ok := findKind(inlines, KindHyperlink)
	require.True(t, ok)
	assert.Equal(t, "label", PlainText(el.Inner))
	assert.Equal(t, "https://example.com", PlainText(el.Link))
}

func TestTextBoxWithoutFollowingParenIsNotAHyperlink(t *testing.T) {
	inlines := parse("a [box] (not a link) b")
	_, ok := findKind(inlines, KindHyperlink)
	assert.False(t, ok)
	_, ok = findKind(inlines, KindTextBox)
	assert.True(t, ok)
}

func TestTextBoxUnterminatedHasImplicitEnd(t *testing.T) {
	inlines := parse("a [box")
	el, ok := findKind(inlines, KindTextBox)
	require.True(t, ok)
	assert.True(t, el.ImplicitEnd)
}

func TestTextBoxAllowsNestedFormatting(t *testing.T) {
	inlines := parse("a [*bold* box] b")
	el, ok := findKind(inlines, KindTextBox)
	require.True(t, ok)
	_, sawItalic := findKind(el.Inner, KindItalic)
	assert.True(t, sawItalic)
}
