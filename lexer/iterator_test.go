package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolIteratorNextAdvancesBothCursors(t *testing.T) {
	symbols := Scan("ab")
	it := NewSymbolIterator(symbols)

	sym, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, "a", sym.Text())
	assert.Equal(t, 1, it.Index())
	assert.Equal(t, 1, it.PeekIndex())
}

func TestSymbolIteratorPeekDoesNotAdvanceIndex(t *testing.T) {
	symbols := Scan("ab")
	it := NewSymbolIterator(symbols)

	sym, ok := it.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", sym.Text())
	assert.Equal(t, 0, it.Index())
	assert.Equal(t, 1, it.PeekIndex())
}

func TestSymbolIteratorPeekIdempotenceAfterResetPeek(t *testing.T) {
	// P4: peek(); reset_peek(); next() == peek() before reset_peek().
	symbols := Scan("abc")
	it := NewSymbolIterator(symbols)

	peeked, ok := it.Peek()
	require.True(t, ok)
	it.ResetPeek()
	next, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, peeked, next)
}

func TestSymbolIteratorResetPeekAfterMultiplePeeks(t *testing.T) {
	symbols := Scan("abc")
	it := NewSymbolIterator(symbols)

	it.Peek()
	it.Peek()
	it.Peek()
	assert.Equal(t, 3, it.PeekIndex())
	it.ResetPeek()
	assert.Equal(t, 0, it.PeekIndex())
	assert.Equal(t, it.Index(), it.PeekIndex())
}

func TestSymbolIteratorExhaustion(t *testing.T) {
	symbols := Scan("")
	it := NewSymbolIterator(symbols)

	// Only the Eoi symbol remains.
	assert.False(t, it.IsEmpty())
	_, ok := it.Next()
	assert.True(t, ok)
	assert.True(t, it.IsEmpty())
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestSymbolIteratorPeekKindDoesNotDisturbPeekCursor(t *testing.T) {
	symbols := Scan("a b")
	it := NewSymbolIterator(symbols)

	kind, ok := it.PeekKind()
	require.True(t, ok)
	assert.Equal(t, Plain, kind)
	assert.Equal(t, 0, it.PeekIndex())
}

func TestSymbolIteratorSetIndexPanicsOnBackwardMove(t *testing.T) {
	symbols := Scan("abc")
	it := NewSymbolIterator(symbols)
	it.SetIndex(2)
	assert.Panics(t, func() { it.SetIndex(1) })
}

func TestSymbolIteratorSetPeekIndexRefusesBehindIndex(t *testing.T) {
	symbols := Scan("abc")
	it := NewSymbolIterator(symbols)
	it.SetIndex(1)
	it.SetPeekIndex(0)
	assert.Equal(t, 1, it.PeekIndex(), "peek index must not move behind the current index")
}

func TestSymbolIteratorMaxLen(t *testing.T) {
	symbols := Scan("ab") // "a", "b", Eoi = 3 symbols
	it := NewSymbolIterator(symbols)
	assert.Equal(t, 3, it.MaxLen())
	it.Next()
	assert.Equal(t, 2, it.MaxLen())
}
