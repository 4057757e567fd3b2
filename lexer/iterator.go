package lexer

// SymbolIterator is a peekable sequence of Symbols with an independent peek
// cursor, rollback, and a bound on the maximum remaining length.
//
// Grounded on original_source/commons/src/lexer/symbol/iterator.rs: index
// advances on Next, peekIndex advances on Peek, and ResetPeek snaps
// peekIndex back to index.
type SymbolIterator struct {
	symbols   []Symbol
	index     int
	peekIndex int
}

// NewSymbolIterator creates an iterator over the given symbol slice.
func NewSymbolIterator(symbols []Symbol) *SymbolIterator {
	return &SymbolIterator{symbols: symbols}
}

// Next returns the next symbol and advances both cursors. Returns false
// once the slice is exhausted.
func (it *SymbolIterator) Next() (Symbol, bool) {
	if it.index >= len(it.symbols) {
		return Symbol{}, false
	}
	sym := it.symbols[it.index]
	it.index++
	it.peekIndex = it.index
	return sym, true
}

// Peek returns the symbol at the peek cursor without advancing index, and
// advances the peek cursor.
func (it *SymbolIterator) Peek() (Symbol, bool) {
	if it.peekIndex >= len(it.symbols) {
		return Symbol{}, false
	}
	sym := it.symbols[it.peekIndex]
	it.peekIndex++
	return sym, true
}

// PeekKind is a convenience wrapper around Peek that also resets the peek
// cursor back, letting callers check the next kind without consuming peek
// state across repeated calls.
func (it *SymbolIterator) PeekKind() (SymbolKind, bool) {
	saved := it.peekIndex
	sym, ok := it.Peek()
	it.peekIndex = saved
	if !ok {
		return 0, false
	}
	return sym.Kind, true
}

// ResetPeek restores the peek cursor to the current index.
func (it *SymbolIterator) ResetPeek() {
	it.peekIndex = it.index
}

// Index returns the current (non-peek) index.
func (it *SymbolIterator) Index() int {
	return it.index
}

// PeekIndex returns the current peek index.
func (it *SymbolIterator) PeekIndex() int {
	return it.peekIndex
}

// SetIndex moves the iterator forward to the given index; it must not move
// the index backward.
func (it *SymbolIterator) SetIndex(index int) {
	if index < it.index {
		panic("lexer: SymbolIterator.SetIndex moved backward")
	}
	it.index = index
	it.peekIndex = index
}

// SetPeekIndex moves the peek cursor, as long as it does not move behind
// the current index.
func (it *SymbolIterator) SetPeekIndex(index int) {
	if index >= it.index {
		it.peekIndex = index
	}
}

// MaxLen returns the maximum number of symbols this iterator might still
// return, not accounting for any enclosing scope's end matcher.
func (it *SymbolIterator) MaxLen() int {
	n := len(it.symbols) - it.index
	if n < 0 {
		return 0
	}
	return n
}

// IsEmpty reports whether no more symbols are available.
func (it *SymbolIterator) IsEmpty() bool {
	return it.MaxLen() == 0
}

// Symbols exposes the backing slice for callers (e.g. the token lexer) that
// need direct slice access while still sharing the iterator's cursors.
func (it *SymbolIterator) Symbols() []Symbol {
	return it.symbols
}
