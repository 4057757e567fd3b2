package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unimarkup/unimarkup-go/inline"
	"github.com/unimarkup/unimarkup-go/lexer"
	"github.com/unimarkup/unimarkup-go/lexer/token"
)

func parse(t *testing.T, input string) []Block {
	t.Helper()
	symbols := lexer.Scan(input)
	tokens := token.Lex(symbols)
	return Parse(tokens)
}

func TestHeadingsAndParagraph(t *testing.T) {
	blocks := parse(t, "# head1\n## subhead\n\ntext")

	require.Len(t, blocks, 3)
	assert.Equal(t, KindHeading, blocks[0].Kind)
	assert.Equal(t, 1, blocks[0].Level)
	assert.Equal(t, "head1", blocks[0].ID)
	assert.Equal(t, "head1", inline.PlainText(blocks[0].Content))

	assert.Equal(t, KindHeading, blocks[1].Kind)
	assert.Equal(t, 2, blocks[1].Level)
	assert.Equal(t, "subhead", blocks[1].ID)

	assert.Equal(t, KindParagraph, blocks[2].Kind)
	assert.Equal(t, "text", inline.PlainText(blocks[2].Content))
}

func TestBulletList(t *testing.T) {
	blocks := parse(t, "- one\n- two\n\nafter")

	require.Len(t, blocks, 3)
	require.Equal(t, KindBulletList, blocks[0].Kind)
	require.Len(t, blocks[0].Entries, 2)
	assert.Equal(t, "-", blocks[0].Entries[0].Keyword)
	assert.Equal(t, "one", inline.PlainText(blocks[0].Entries[0].Content))
	assert.Equal(t, "two", inline.PlainText(blocks[0].Entries[1].Content))

	assert.Equal(t, KindBlankline, blocks[1].Kind)
	assert.Equal(t, KindParagraph, blocks[2].Kind)
	assert.Equal(t, "after", inline.PlainText(blocks[2].Content))
}

func TestNestedBulletList(t *testing.T) {
	blocks := parse(t, "- one\n  - nested\n- two\n")

	require.Len(t, blocks, 1)
	require.Len(t, blocks[0].Entries, 2)
	first := blocks[0].Entries[0]
	require.Len(t, first.Body, 1)
	assert.Equal(t, KindBulletList, first.Body[0].Kind)
	assert.Equal(t, "nested", inline.PlainText(first.Body[0].Entries[0].Content))
}

func TestVerbatimBlockWithDataLang(t *testing.T) {
	blocks := parse(t, "```go\nfunc main() {}\n```\n")

	require.Len(t, blocks, 1)
	assert.Equal(t, KindVerbatimBlock, blocks[0].Kind)
	assert.Equal(t, "go", blocks[0].DataLang)
	assert.Equal(t, "func main() {}\n", blocks[0].VerbatimText)
	assert.False(t, blocks[0].ImplicitClosed)
}

func TestVerbatimBlockImplicitClose(t *testing.T) {
	blocks := parse(t, "```\nunterminated")

	require.Len(t, blocks, 1)
	assert.Equal(t, KindVerbatimBlock, blocks[0].Kind)
	assert.True(t, blocks[0].ImplicitClosed)
	assert.Equal(t, "unterminated", blocks[0].VerbatimText)
}

func TestHeadingIDCollisionGetsDiscriminator(t *testing.T) {
	blocks := parse(t, "# Intro\n\n# Intro\n")
	require.Len(t, blocks, 2)
	assert.Equal(t, "intro", blocks[0].ID)
	assert.NotEqual(t, "intro", blocks[1].ID)
	assert.Contains(t, blocks[1].ID, "intro-")
}
