// Package iterator implements the scoped token iterator: the centerpiece of
// the pipeline (spec.md §4.4). It layers nested parsing scopes over a
// materialized token slice, each with an optional line-prefix matcher and
// an end matcher, while keeping peek/rollback semantics transparent across
// nesting levels.
package iterator

import (
	"github.com/unimarkup/unimarkup-go/lexer/token"
	"github.com/unimarkup/unimarkup-go/lexer/token/implicit"
)

// DefaultMaxScopeDepth is the soft nesting-depth limit from spec.md §5.
const DefaultMaxScopeDepth = 256

// EndMatcher decides where a scope ends. MatchLen is evaluated at every
// Peek and Next call against the shared, absolute token index; spec.md
// calls the closure variants "matches"/"consumed_matches" — here both are
// unified into a single function whose returned length tells the iterator
// whether to leave the matched sequence for the parent (n == 0, a
// zero-width boundary) or consume it as part of closing this scope (n > 0,
// e.g. a verbatim block's closing tick run).
type EndMatcher interface {
	MatchLen(tokens []token.Token, at int, prevIsSpace bool) (n int, matched bool)
	// IsEmptyLine reports whether the line starting at `at` is empty, used
	// by block sub-parsers (e.g. bullet list termination on blank line).
	IsEmptyLine(tokens []token.Token, at int) bool
}

// PrefixMatcher consumes an expected line-continuation prefix after every
// newline the scope passes through (spec.md §4.4 point 2).
type PrefixMatcher interface {
	ConsumePrefix(tokens []token.Token, at int) (n int, ok bool)
}

// state is shared by a scope and every scope nested under it: there is
// exactly one true cursor position in the token stream at a time, and
// nested scopes only layer extra termination/prefix rules on top of it.
type state struct {
	tokens    []token.Token
	index     int
	peekIndex int
}

// Iterator is a scope in the token stream.
type Iterator struct {
	st     *state
	parent *Iterator

	prefix PrefixMatcher
	end    EndMatcher

	implicitsEnabled bool
	ended            bool

	scopeEntryIndex int
	depth           int
	maxDepth        int
}

// New creates a root iterator over a materialized token slice. tokens must
// end with a KindEoi token.
func New(tokens []token.Token) *Iterator {
	return &Iterator{
		st:               &state{tokens: tokens},
		implicitsEnabled: true,
		maxDepth:         DefaultMaxScopeDepth,
	}
}

// Nest returns a child scope. A nil prefix or end matcher disables that
// respective check. The child inherits the parent's implicit-substitution
// policy.
func (it *Iterator) Nest(prefix PrefixMatcher, end EndMatcher) *Iterator {
	child := &Iterator{
		st:               it.st,
		parent:           it,
		prefix:           prefix,
		end:              end,
		implicitsEnabled: it.implicitsEnabled,
		scopeEntryIndex:  it.st.index,
		depth:            it.depth + 1,
		maxDepth:         it.maxDepth,
	}
	if child.depth >= child.maxDepth {
		// Soft limit exceeded: degrade to an already-ended scope so the
		// caller's total parser still terminates (spec.md §5, P5).
		child.ended = true
	}
	return child
}

// Close marks the point where this scope hands its position back to its
// parent (spec.md §4.4 point 3). Parent and child share one cursor, so the
// parent sees each of the child's advances as it happens, before Close is
// called; Close only resets a peek cursor left past the index.
func (it *Iterator) Close() {
	if it.parent == nil {
		return
	}
	// st is shared, so the parent already observes the same index/peek
	// values; Close exists to make the hand-back point explicit at call
	// sites and to reset any dangling peek past this scope's end.
	it.st.peekIndex = it.st.index
}

// AllowImplicits / IgnoreImplicits toggle the implicit-substitution policy.
func (it *Iterator) AllowImplicits()     { it.implicitsEnabled = true }
func (it *Iterator) IgnoreImplicits()    { it.implicitsEnabled = false }
func (it *Iterator) ImplicitsAllowed() bool { return it.implicitsEnabled }

// Scope returns this iterator's nesting depth.
func (it *Iterator) Scope() int { return it.depth }

// Index returns the current (non-peek) absolute index.
func (it *Iterator) Index() int { return it.st.index }

// SetIndex moves the iterator forward to the given absolute index.
func (it *Iterator) SetIndex(index int) {
	if index < it.st.index {
		panic("iterator: SetIndex moved backward")
	}
	it.st.index = index
	it.st.peekIndex = index
}

// PeekIndex returns the current peek cursor.
func (it *Iterator) PeekIndex() int { return it.st.peekIndex }

// SetPeekIndex moves the peek cursor, refusing to move it behind index.
func (it *Iterator) SetPeekIndex(index int) {
	if index >= it.st.index {
		it.st.peekIndex = index
	}
}

// ResetPeek restores the peek cursor to the current index (contract S2/P4).
func (it *Iterator) ResetPeek() { it.st.peekIndex = it.st.index }

// MaxLen returns the maximum number of tokens this iterator might still
// return, not accounting for any end matcher.
func (it *Iterator) MaxLen() int {
	n := len(it.st.tokens) - it.st.index
	if n < 0 {
		return 0
	}
	return n
}

// IsEmpty reports whether no more tokens are available to this scope.
func (it *Iterator) IsEmpty() bool {
	if it.ended {
		return true
	}
	_, ok := it.Peek()
	return !ok
}

// PrevToken returns the token immediately before the current index, if any.
func (it *Iterator) PrevToken() (token.Token, bool) {
	if it.st.index == 0 {
		return token.Token{}, false
	}
	return it.st.tokens[it.st.index-1], true
}

func (it *Iterator) prevIsSpace() bool {
	prev, ok := it.PrevToken()
	if !ok {
		return true // start of input counts as a boundary.
	}
	switch prev.Kind {
	case token.KindWhitespace, token.KindNewline, token.KindBlankline:
		return true
	default:
		return false
	}
}

// candidateAt resolves the token at the given absolute index, applying
// implicit substitution if enabled, and returns the token plus how many
// underlying slice entries it consumes.
func (it *Iterator) candidateAt(at int) (token.Token, int, bool) {
	if at >= len(it.st.tokens) {
		return token.Token{}, 0, false
	}
	if it.implicitsEnabled {
		if tok, n, ok := implicit.MatchAt(it.st.tokens, at); ok {
			return tok, n, true
		}
	}
	return it.st.tokens[at], 1, true
}

// checkEnd reports whether the scope's end matcher fires at the given
// index, and if so how many tokens it consumes. KindEoi always ends every
// scope without being consumed: it is the stream's sentinel, never content.
func (it *Iterator) checkEnd(at int) (n int, matched bool) {
	if at < len(it.st.tokens) && it.st.tokens[at].Kind == token.KindEoi {
		return 0, true
	}
	if it.end == nil {
		return 0, false
	}
	return it.end.MatchLen(it.st.tokens, at, it.prevIsSpace())
}

// Next returns the next token in this scope and advances both cursors.
func (it *Iterator) Next() (token.Token, bool) {
	if it.ended {
		return token.Token{}, false
	}

	if n, matched := it.checkEnd(it.st.index); matched {
		it.ended = true
		if n > 0 {
			it.st.index += n
			it.st.peekIndex = it.st.index
		}
		return token.Token{}, false
	}

	tok, consumed, ok := it.candidateAt(it.st.index)
	if !ok {
		it.ended = true
		return token.Token{}, false
	}

	it.st.index += consumed
	it.st.peekIndex = it.st.index

	if tok.Kind == token.KindNewline || tok.Kind == token.KindBlankline {
		it.applyPrefix()
	}

	return tok, true
}

// applyPrefix runs every active scope's prefix matcher after a newline has
// been consumed, outermost ancestor first so indentation requirements
// accumulate correctly (a scope nested two bullet-list levels deep expects
// indent+2 columns, then another indent+2 columns on top). Scopes share
// one cursor, so whichever iterator's Next() call happens to cross the
// newline must enforce every ancestor's prefix too: an ancestor never gets
// its own chance to check once a descendant has consumed the newline for
// it. If any scope in the chain refuses its prefix, that scope and every
// scope nested inside it end (spec.md §4.4 point 2).
func (it *Iterator) applyPrefix() {
	var chain []*Iterator
	for cur := it; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	for _, scope := range chain {
		if scope.prefix == nil {
			continue
		}
		n, ok := scope.prefix.ConsumePrefix(it.st.tokens, it.st.index)
		if !ok {
			for cur := it; cur != nil; cur = cur.parent {
				cur.ended = true
				if cur == scope {
					break
				}
			}
			return
		}
		it.st.index += n
		it.st.peekIndex = it.st.index
	}
}

// Peek returns the token at the peek cursor without advancing index, and
// advances the peek cursor. The end matcher is re-evaluated on every peek
// (spec.md §4.4 point 2).
func (it *Iterator) Peek() (token.Token, bool) {
	if it.ended {
		return token.Token{}, false
	}
	if n, matched := it.checkEnd(it.st.peekIndex); matched {
		if n > 0 && it.st.peekIndex == it.st.index {
			// A zero-lookahead peek at a consuming end boundary still must
			// not report a token; advancing peekIndex here is safe since
			// nothing has been handed to the caller as a real token.
			it.st.peekIndex += n
		}
		return token.Token{}, false
	}

	tok, consumed, ok := it.candidateAt(it.st.peekIndex)
	if !ok {
		return token.Token{}, false
	}
	it.st.peekIndex += consumed
	return tok, true
}

// PeekKind is a convenience that peeks without disturbing the peek cursor
// for callers that only want to branch on kind.
func (it *Iterator) PeekKind() (token.Kind, bool) {
	saved := it.st.peekIndex
	tok, ok := it.Peek()
	it.st.peekIndex = saved
	if !ok {
		return 0, false
	}
	return tok.Kind, true
}
