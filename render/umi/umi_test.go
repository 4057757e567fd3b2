package umi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unimarkup/unimarkup-go/block"
	"github.com/unimarkup/unimarkup-go/config"
)

func parseDoc(t *testing.T, input string) block.Document {
	t.Helper()
	doc, err := block.ParseDocument(input, config.Default())
	require.NoError(t, err)
	return doc
}

// roundTrip asserts render(parse(input)) reparses to the same number of
// blocks with matching variants, pairwise (spec.md §6).
func roundTrip(t *testing.T, input string) (block.Document, block.Document) {
	t.Helper()
	original := parseDoc(t, input)
	rendered := Render(original)
	reparsed := parseDoc(t, rendered)

	require.Len(t, reparsed.Blocks, len(original.Blocks), "rendered form: %q", rendered)
	for i := range original.Blocks {
		assert.Equal(t, original.Blocks[i].Kind, reparsed.Blocks[i].Kind, "block %d kind mismatch; rendered form: %q", i, rendered)
	}
	return original, reparsed
}

func TestRoundTripHeadingAndParagraph(t *testing.T) {
	roundTrip(t, "# head1\n\ntext\n")
}

func TestRoundTripEmphasis(t *testing.T) {
	_, reparsed := roundTrip(t, "hello *world* and **bold**\n")
	assert.NotEmpty(t, reparsed.Blocks)
}

func TestRoundTripBulletList(t *testing.T) {
	roundTrip(t, "- one\n- two\n")
}

func TestRoundTripNestedBulletList(t *testing.T) {
	roundTrip(t, "- one\n  - nested\n- two\n")
}

func TestRoundTripVerbatimBlock(t *testing.T) {
	roundTrip(t, "```go\nfunc main() {}\n```\n")
}

func TestRoundTripHyperlink(t *testing.T) {
	roundTrip(t, "[label](https://example.com)\n")
}
