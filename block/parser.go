package block

import (
	"strings"

	"github.com/unimarkup/unimarkup-go/inline"
	"github.com/unimarkup/unimarkup-go/lexer/token"
	"github.com/unimarkup/unimarkup-go/lexer/token/iterator"
)

// minVerbatimFenceLen is the smallest tick run that opens a verbatim block
// (spec.md §4.6: "Tick(n), n >= 3").
const minVerbatimFenceLen = 3

// Parse runs the block parser over tokens, dispatching per spec.md §4.6's
// leading-token table until EOI.
func Parse(tokens []token.Token) []Block {
	root := iterator.New(tokens)
	return parseSequence(root, newIDAssigner())
}

// parseSequence parses a run of blocks from it until it ends (blankline
// run-out, scope end, or EOI), used both at document top level and
// recursively for bullet-list entry bodies (spec.md §4.6, "entry body is a
// block sub-parse").
func parseSequence(it *iterator.Iterator, ids *idAssigner) []Block {
	var out []Block
	for {
		tok, ok := it.Peek()
		it.ResetPeek()
		if !ok {
			break
		}

		switch {
		case tok.Kind == token.KindBlankline:
			it.Next()
			out = append(out, Block{Kind: KindBlankline, Start: tok.Start, End: tok.End})

		case tok.Kind == token.KindNewline:
			// A bare newline left over from a single-line block (e.g. the
			// newline after a verbatim block's closing fence) is a block
			// separator, not content: skip it without emitting
			// a block of its own.
			it.Next()

		case isHeadingStart(it):
			out = append(out, parseHeading(it, ids))

		case isBulletStart(tok):
			out = append(out, parseBulletList(it, ids))

		case tok.Kind == token.KindTick && tok.Repeat >= minVerbatimFenceLen && isLineStart(it):
			out = append(out, parseVerbatimBlock(it))

		default:
			out = append(out, parseParagraph(it))
		}
	}
	return out
}

func isLineStart(it *iterator.Iterator) bool {
	prev, ok := it.PrevToken()
	if !ok {
		return true
	}
	switch prev.Kind {
	case token.KindNewline, token.KindBlankline:
		return true
	default:
		return false
	}
}

func isBulletStart(tok token.Token) bool {
	if tok.Repeat != 1 {
		return false
	}
	switch tok.Kind {
	case token.KindMinus, token.KindPlus, token.KindStar:
		return true
	default:
		return false
	}
}

// isHeadingStart reports whether it is positioned at Hash(n), 1<=n<=6,
// immediately followed by Whitespace.
func isHeadingStart(it *iterator.Iterator) bool {
	hash, ok := it.Peek()
	if !ok || hash.Kind != token.KindHash || hash.Repeat < 1 || hash.Repeat > 6 {
		it.ResetPeek()
		return false
	}
	ws, ok := it.Peek()
	it.ResetPeek()
	return ok && ws.Kind == token.KindWhitespace
}

func parseHeading(it *iterator.Iterator, ids *idAssigner) Block {
	hash, _ := it.Next()
	it.Next() // consume the separating whitespace

	// Headings end at the first newline rather than running on to a
	// blankline: spec.md §8 scenario 1 parses "# head1\n## subhead" as two
	// distinct headings, not one heading whose content swallows "## subhead".
	child := it.Nest(nil, iterator.NewlineOrEoiMatcher{})
	content := inline.Parse(iterator.NewInline(child), inline.DefaultContext())
	child.Close()

	// The heading also consumes the newline that ends it and a blank line
	// right after it, so no Blankline block follows a heading.
	if nl, ok := it.Peek(); ok && nl.Kind == token.KindNewline {
		it.Next()
		if bl, ok := it.Peek(); ok && bl.Kind == token.KindBlankline {
			it.Next()
		}
	}
	it.ResetPeek()

	end := hash.End
	if len(content) > 0 {
		end = content[len(content)-1].End
	}

	return Block{
		Kind:    KindHeading,
		Start:   hash.Start,
		End:     end,
		Level:   hash.Repeat,
		Content: content,
		ID:      ids.assign("", content),
	}
}

func parseParagraph(it *iterator.Iterator) Block {
	startTok, ok := it.Peek()
	it.ResetPeek()
	if !ok {
		return Block{}
	}

	child := it.Nest(nil, iterator.BlanklineOrEoiMatcher{})
	content := inline.Parse(iterator.NewInline(child), inline.DefaultContext())
	child.Close()

	// The line break that ends the last line is a separator, not content.
	for len(content) > 0 && content[len(content)-1].Kind == inline.KindNewline {
		content = content[:len(content)-1]
	}

	end := startTok.Start
	if len(content) > 0 {
		end = content[len(content)-1].End
	}

	return Block{Kind: KindParagraph, Start: startTok.Start, End: end, Content: content}
}

// parseBulletList consumes a run of sibling entries at the same indent
// level (spec.md §4.6: "Minus(1)|Plus(1)|Star(1) followed by Whitespace").
func parseBulletList(it *iterator.Iterator, ids *idAssigner) Block {
	first, _ := it.Peek()
	it.ResetPeek()

	var entries []Block
	for {
		tok, ok := it.Peek()
		it.ResetPeek()
		if !ok || !isBulletStart(tok) {
			break
		}
		entries = append(entries, parseBulletEntry(it, ids))
	}

	end := first.End
	if len(entries) > 0 {
		end = entries[len(entries)-1].End
	}
	return Block{Kind: KindBulletList, Start: first.Start, End: end, Entries: entries}
}

func parseBulletEntry(it *iterator.Iterator, ids *idAssigner) Block {
	marker, _ := it.Next()
	it.Next() // consume the separating whitespace

	indent := marker.Start.ColGrapheme - 1
	entry := it.Nest(iterator.IndentPrefixMatcher{MinColumns: indent + 2}, iterator.BlanklineOrEoiMatcher{})

	headingChild := entry.Nest(nil, iterator.NewlineOrEoiMatcher{})
	heading := inline.Parse(iterator.NewInline(headingChild), inline.DefaultContext())
	headingChild.Close()

	if nl, ok := entry.Peek(); ok && (nl.Kind == token.KindNewline || nl.Kind == token.KindBlankline) {
		entry.Next()
	}
	entry.ResetPeek()

	body := parseSequence(entry, ids)
	entry.Close()

	end := marker.End
	if len(body) > 0 {
		end = body[len(body)-1].End
	} else if len(heading) > 0 {
		end = heading[len(heading)-1].End
	}

	return Block{
		Kind:    KindBulletListEntry,
		Start:   marker.Start,
		End:     end,
		Keyword: marker.Text(),
		Content: heading,
		Body:    body,
	}
}

// parseVerbatimBlock consumes an opening Tick(n>=3) fence, an optional
// data_lang tail, content lines, and a matching closing fence (or EOI,
// which implicitly closes the block).
func parseVerbatimBlock(it *iterator.Iterator) Block {
	openTick, _ := it.Next()

	var langBuilder strings.Builder
	for {
		tok, ok := it.Peek()
		if !ok || tok.Kind == token.KindNewline || tok.Kind == token.KindBlankline {
			it.ResetPeek()
			break
		}
		it.Next()
		langBuilder.WriteString(tok.Text())
	}
	dataLang := strings.TrimSpace(langBuilder.String())

	if nl, ok := it.Peek(); ok && (nl.Kind == token.KindNewline || nl.Kind == token.KindBlankline) {
		it.Next()
	}
	it.ResetPeek()

	var contentBuilder strings.Builder
	end := openTick.End
	implicitClosed := true

	for {
		if closeTok, consumed := matchVerbatimClose(it, openTick.Repeat); consumed > 0 {
			for i := 0; i < consumed; i++ {
				it.Next()
			}
			end = closeTok.End
			implicitClosed = false
			break
		}

		tok, ok := it.Next()
		if !ok {
			break
		}
		contentBuilder.WriteString(tok.Text())
		end = tok.End
	}

	return Block{
		Kind:           KindVerbatimBlock,
		Start:          openTick.Start,
		End:            end,
		DataLang:       dataLang,
		VerbatimText:   contentBuilder.String(),
		ImplicitClosed: implicitClosed,
		TickLen:        openTick.Repeat,
	}
}

// matchVerbatimClose reports whether it is positioned at the start of a
// line consisting of (optional) whitespace, a Tick run of at least
// minTicks, optional trailing whitespace, then Newline/Blankline/EOI. It
// returns the closing tick token and the token count to consume (through
// the trailing whitespace, not the terminating newline/EOI).
func matchVerbatimClose(it *iterator.Iterator, minTicks int) (token.Token, int) {
	if !isLineStart(it) {
		return token.Token{}, 0
	}

	n := 0
	tok, ok := it.Peek()
	if ok && tok.Kind == token.KindIndentation {
		n++
		tok, ok = it.Peek()
	}
	if !ok || tok.Kind != token.KindTick || tok.Repeat < minTicks {
		it.ResetPeek()
		return token.Token{}, 0
	}
	closeTok := tok
	n++

	trailing, ok := it.Peek()
	if ok && trailing.Kind == token.KindWhitespace {
		n++
		trailing, ok = it.Peek()
	}
	it.ResetPeek()

	if !ok || trailing.Kind == token.KindNewline || trailing.Kind == token.KindBlankline || trailing.Kind == token.KindEoi {
		return closeTok, n
	}
	return token.Token{}, 0
}
