package iterator

import "github.com/unimarkup/unimarkup-go/lexer/token"

// FormatKey identifies an open inline format on the format stack: the
// delimiter's token kind plus its run length, since Quote(1) (Quote) and
// Quote(2) (Overline) share a token kind but must not close one another.
type FormatKey struct {
	Kind   token.Kind
	Repeat int
}

// InlineIterator narrows a scoped Iterator for inline parsing (spec.md
// §4.5): it layers a stack of currently open format kinds on top of the
// scope mechanics, so the ambiguous-format resolver can ask "is Bold
// currently open" without threading that state through every call site.
type InlineIterator struct {
	*Iterator
	openFormats []FormatKey
}

// NewInline wraps a scoped iterator as an inline iterator.
func NewInline(it *Iterator) *InlineIterator {
	return &InlineIterator{Iterator: it}
}

// PushFormat marks key as open.
func (it *InlineIterator) PushFormat(key FormatKey) {
	it.openFormats = append(it.openFormats, key)
}

// PopFormat removes the innermost open occurrence of key, if present.
func (it *InlineIterator) PopFormat(key FormatKey) {
	for i := len(it.openFormats) - 1; i >= 0; i-- {
		if it.openFormats[i] == key {
			it.openFormats = append(it.openFormats[:i], it.openFormats[i+1:]...)
			return
		}
	}
}

// FormatIsOpen reports whether key is anywhere on the open-format stack.
func (it *InlineIterator) FormatIsOpen(key FormatKey) bool {
	for _, k := range it.openFormats {
		if k == key {
			return true
		}
	}
	return false
}

// AnyOpenWithKind reports whether any open format uses the given token
// kind, regardless of repeat (used by the ambiguous resolver's overlap
// accounting).
func (it *InlineIterator) AnyOpenWithKind(kind token.Kind) bool {
	for _, k := range it.openFormats {
		if k.Kind == kind {
			return true
		}
	}
	return false
}

// OpenFormats returns a snapshot of the currently open format keys,
// outermost first.
func (it *InlineIterator) OpenFormats() []FormatKey {
	out := make([]FormatKey, len(it.openFormats))
	copy(out, it.openFormats)
	return out
}

// HasOpenFormats reports whether any format is currently open, used for
// implicit-close handling at EOI/scope boundaries.
func (it *InlineIterator) HasOpenFormats() bool {
	return len(it.openFormats) > 0
}
