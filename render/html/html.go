// Package html renders a parsed document to HTML (spec.md §6, "Output
// formats"): each block renders to a tag tree, headings carry "id",
// verbatim blocks carry class="language-<lang>", and hyperlinks map to
// "<a href>". Rendering is total in the same sense parsing is: there is no
// block or inline kind that can make Render fail, short of the write
// itself.
package html

import (
	"bytes"
	"fmt"
	stdhtml "html"
	"strings"

	"github.com/unimarkup/unimarkup-go/block"
	"github.com/unimarkup/unimarkup-go/inline"
)

// renderer carries the settings that affect every block/inline the same
// way, so they don't need threading through every recursive call's
// signature.
type renderer struct {
	keepComments bool
}

// Render renders an entire document to an HTML fragment. Comment inlines
// are dropped unless doc.Config.Render.KeepComments is set (spec.md §6,
// "render.keep_comments").
func Render(doc block.Document) string {
	r := renderer{keepComments: doc.Config.Render.KeepComments}
	var buf bytes.Buffer
	for _, b := range doc.Blocks {
		r.renderBlock(&buf, b)
	}
	return buf.String()
}

func (r renderer) renderBlock(buf *bytes.Buffer, b block.Block) {
	switch b.Kind {
	case block.KindBlankline:
		// No visible output; a blankline only separates blocks.

	case block.KindHeading:
		tag := fmt.Sprintf("h%d", b.Level)
		fmt.Fprintf(buf, `<%s id="%s">`, tag, stdhtml.EscapeString(b.ID))
		r.renderInlines(buf, b.Content)
		fmt.Fprintf(buf, "</%s>\n", tag)

	case block.KindParagraph:
		buf.WriteString("<p>")
		r.renderInlines(buf, b.Content)
		buf.WriteString("</p>\n")

	case block.KindVerbatimBlock:
		lang := "plaintext"
		if b.DataLang != "" {
			lang = b.DataLang
		}
		fmt.Fprintf(buf, `<pre><code class="language-%s">`, stdhtml.EscapeString(lang))
		buf.WriteString(stdhtml.EscapeString(b.VerbatimText))
		buf.WriteString("</code></pre>\n")

	case block.KindBulletList:
		buf.WriteString("<ul>\n")
		for _, entry := range b.Entries {
			r.renderBlock(buf, entry)
		}
		buf.WriteString("</ul>\n")

	case block.KindBulletListEntry:
		buf.WriteString("<li>")
		r.renderInlines(buf, b.Content)
		for _, child := range b.Body {
			r.renderBlock(buf, child)
		}
		buf.WriteString("</li>\n")

	case block.KindInvalidContent:
		buf.WriteString("<pre>")
		buf.WriteString(stdhtml.EscapeString(strings.Join(b.RawLines, "\n")))
		buf.WriteString("</pre>\n")
	}
}

func (r renderer) renderInlines(buf *bytes.Buffer, inlines []inline.Inline) {
	for _, el := range inlines {
		r.renderInline(buf, el)
	}
}

func (r renderer) renderInline(buf *bytes.Buffer, el inline.Inline) {
	switch el.Kind {
	case inline.KindPlain, inline.KindWhitespace:
		buf.WriteString(stdhtml.EscapeString(el.Content))
	case inline.KindNewline:
		buf.WriteString("\n")
	case inline.KindEscapedPlain, inline.KindEscapedWhitespace, inline.KindEscapedNewline:
		buf.WriteString(stdhtml.EscapeString(el.Content))
	case inline.KindBold:
		r.wrapTag(buf, "strong", el.Inner)
	case inline.KindItalic:
		r.wrapTag(buf, "em", el.Inner)
	case inline.KindBoldItalic:
		buf.WriteString("<strong><em>")
		r.renderInlines(buf, el.Inner)
		buf.WriteString("</em></strong>")
	case inline.KindUnderline:
		r.wrapTag(buf, "u", el.Inner)
	case inline.KindSubscript:
		r.wrapTag(buf, "sub", el.Inner)
	case inline.KindUnderlineSubscript:
		buf.WriteString("<u><sub>")
		r.renderInlines(buf, el.Inner)
		buf.WriteString("</sub></u>")
	case inline.KindStrikethrough:
		r.wrapTag(buf, "s", el.Inner)
	case inline.KindSuperscript:
		r.wrapTag(buf, "sup", el.Inner)
	case inline.KindHighlight:
		r.wrapTag(buf, "mark", el.Inner)
	case inline.KindOverline:
		buf.WriteString(`<span style="text-decoration: overline">`)
		r.renderInlines(buf, el.Inner)
		buf.WriteString("</span>")
	case inline.KindQuote:
		r.wrapTag(buf, "q", el.Inner)
	case inline.KindVerbatim:
		buf.WriteString("<code>")
		buf.WriteString(stdhtml.EscapeString(el.Content))
		buf.WriteString("</code>")
	case inline.KindMath:
		buf.WriteString(`<span class="math">`)
		buf.WriteString(stdhtml.EscapeString(el.Content))
		buf.WriteString("</span>")
	case inline.KindTextBox:
		r.wrapTag(buf, "span", el.Inner)
	case inline.KindHyperlink:
		href := stdhtml.EscapeString(inline.PlainText(el.Link))
		fmt.Fprintf(buf, `<a href="%s">`, href)
		r.renderInlines(buf, el.Inner)
		buf.WriteString("</a>")
	case inline.KindImplicitSubstitution, inline.KindNamedSubstitution:
		buf.WriteString(stdhtml.EscapeString(el.Content))
	case inline.KindDirectURI:
		href := stdhtml.EscapeString(el.Content)
		fmt.Fprintf(buf, `<a href="%s">%s</a>`, href, href)
	case inline.KindComment:
		if r.keepComments {
			fmt.Fprintf(buf, "<!--%s-->", el.Content)
		}
	case inline.KindInvalidContent:
		buf.WriteString(stdhtml.EscapeString(el.Content))
	}
}

func (r renderer) wrapTag(buf *bytes.Buffer, tag string, inner []inline.Inline) {
	fmt.Fprintf(buf, "<%s>", tag)
	r.renderInlines(buf, inner)
	fmt.Fprintf(buf, "</%s>", tag)
}
