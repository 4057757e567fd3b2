// Package umi renders a parsed document back to Unimarkup source text
// (spec.md §6): "a round-trippable workbook form of the document tree" such
// that re-parsing the output yields the same number of blocks with matching
// variants, pairwise. It is the mirror image of the lexer/block/inline
// parsers: where they turn delimiters into typed elements, this package
// turns typed elements back into delimiters.
package umi

import (
	"fmt"
	"strings"

	"github.com/unimarkup/unimarkup-go/block"
	"github.com/unimarkup/unimarkup-go/inline"
)

// Render renders an entire document back to Unimarkup source.
func Render(doc block.Document) string {
	// Every block kind already ends its own output in a newline (a Blankline
	// block renders as a bare "\n", a Heading/Paragraph/VerbatimBlock ends
	// with the newline that closed it), so blocks are concatenated directly
	// with no extra separator: adding one would double up the newline a
	// Blankline block already contributes and fabricate an extra blank line
	// on reparse.
	var sb strings.Builder
	for _, b := range doc.Blocks {
		renderBlock(&sb, b)
	}
	return sb.String()
}

func renderBlock(sb *strings.Builder, b block.Block) {
	switch b.Kind {
	case block.KindBlankline:
		sb.WriteString("\n")

	case block.KindHeading:
		sb.WriteString(strings.Repeat("#", b.Level))
		sb.WriteString(" ")
		renderInlines(sb, b.Content)
		sb.WriteString("\n")

	case block.KindParagraph:
		renderInlines(sb, b.Content)
		sb.WriteString("\n")

	case block.KindVerbatimBlock:
		fence := strings.Repeat("`", b.TickLen)
		sb.WriteString(fence)
		sb.WriteString(b.DataLang)
		sb.WriteString("\n")
		sb.WriteString(b.VerbatimText)
		if !strings.HasSuffix(b.VerbatimText, "\n") {
			sb.WriteString("\n")
		}
		if !b.ImplicitClosed {
			sb.WriteString(fence)
			sb.WriteString("\n")
		}

	case block.KindBulletList:
		for _, entry := range b.Entries {
			renderEntry(sb, entry, 0)
		}

	case block.KindBulletListEntry:
		renderEntry(sb, b, 0)

	case block.KindInvalidContent:
		for _, line := range b.RawLines {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
}

func renderEntry(sb *strings.Builder, entry block.Block, depth int) {
	indent := strings.Repeat(" ", depth*2)
	keyword := entry.Keyword
	if keyword == "" {
		keyword = "-"
	}
	sb.WriteString(indent)
	sb.WriteString(keyword)
	sb.WriteString(" ")
	renderInlines(sb, entry.Content)
	sb.WriteString("\n")

	for _, child := range entry.Body {
		if child.Kind == block.KindBulletList {
			for _, nested := range child.Entries {
				renderEntry(sb, nested, depth+1)
			}
			continue
		}
		renderIndentedBlock(sb, child, depth+1)
	}
}

// renderIndentedBlock renders a bullet entry's non-list body blocks
// (paragraphs, verbatim, nested headings) indented to the entry's level.
func renderIndentedBlock(sb *strings.Builder, b block.Block, depth int) {
	indent := strings.Repeat(" ", depth*2)
	var inner strings.Builder
	renderBlock(&inner, b)
	for _, line := range strings.SplitAfter(inner.String(), "\n") {
		if line == "" {
			continue
		}
		sb.WriteString(indent)
		sb.WriteString(line)
	}
}

func renderInlines(sb *strings.Builder, inlines []inline.Inline) {
	for _, el := range inlines {
		renderInline(sb, el)
	}
}

func renderInline(sb *strings.Builder, el inline.Inline) {
	switch el.Kind {
	case inline.KindPlain, inline.KindWhitespace:
		sb.WriteString(el.Content)
	case inline.KindNewline:
		sb.WriteString(" ")
	case inline.KindEscapedPlain, inline.KindEscapedWhitespace:
		sb.WriteString("\\")
		sb.WriteString(el.Content)
	case inline.KindEscapedNewline:
		sb.WriteString("\\\n")
	case inline.KindBold:
		wrapDelim(sb, "**", el.Inner, el.ImplicitEnd)
	case inline.KindItalic:
		wrapDelim(sb, "*", el.Inner, el.ImplicitEnd)
	case inline.KindBoldItalic:
		wrapDelim(sb, "***", el.Inner, el.ImplicitEnd)
	case inline.KindUnderline:
		wrapDelim(sb, "_", el.Inner, el.ImplicitEnd)
	case inline.KindSubscript:
		wrapDelim(sb, "__", el.Inner, el.ImplicitEnd)
	case inline.KindUnderlineSubscript:
		wrapDelim(sb, "___", el.Inner, el.ImplicitEnd)
	case inline.KindStrikethrough:
		wrapDelim(sb, "~", el.Inner, el.ImplicitEnd)
	case inline.KindSuperscript:
		wrapDelim(sb, "^", el.Inner, el.ImplicitEnd)
	case inline.KindHighlight:
		wrapDelim(sb, "|", el.Inner, el.ImplicitEnd)
	case inline.KindOverline:
		wrapDelim(sb, `""`, el.Inner, el.ImplicitEnd)
	case inline.KindQuote:
		wrapDelim(sb, `"`, el.Inner, el.ImplicitEnd)
	case inline.KindVerbatim:
		sb.WriteString("`")
		sb.WriteString(el.Content)
		if !el.ImplicitEnd {
			sb.WriteString("`")
		}
	case inline.KindMath:
		sb.WriteString("$")
		sb.WriteString(el.Content)
		if !el.ImplicitEnd {
			sb.WriteString("$")
		}
	case inline.KindTextBox:
		sb.WriteString("[")
		renderInlines(sb, el.Inner)
		if !el.ImplicitEnd {
			sb.WriteString("]")
		}
	case inline.KindHyperlink:
		sb.WriteString("[")
		renderInlines(sb, el.Inner)
		sb.WriteString("](")
		renderInlines(sb, el.Link)
		sb.WriteString(")")
	case inline.KindImplicitSubstitution:
		if el.Original != "" {
			sb.WriteString(el.Original)
		} else {
			sb.WriteString(el.Content)
		}
	case inline.KindNamedSubstitution:
		if el.Original != "" {
			sb.WriteString(el.Original)
		} else {
			sb.WriteString(fmt.Sprintf("::%s::", el.Content))
		}
	case inline.KindDirectURI:
		sb.WriteString(el.Content)
	case inline.KindComment:
		sb.WriteString(";;")
		sb.WriteString(el.Content)
		sb.WriteString(";;")
	case inline.KindInvalidContent:
		sb.WriteString(el.Content)
	}
}

func wrapDelim(sb *strings.Builder, delim string, inner []inline.Inline, implicitEnd bool) {
	sb.WriteString(delim)
	renderInlines(sb, inner)
	if !implicitEnd {
		sb.WriteString(delim)
	}
}

