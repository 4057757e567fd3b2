package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanEmptyInputYieldsOnlyEoi(t *testing.T) {
	symbols := Scan("")
	require.Len(t, symbols, 1)
	assert.Equal(t, Eoi, symbols[0].Kind)
}

func TestScanClassifiesKeywordGraphemes(t *testing.T) {
	symbols := Scan("#*_")
	require.Len(t, symbols, 4)
	assert.Equal(t, Hash, symbols[0].Kind)
	assert.Equal(t, Star, symbols[1].Kind)
	assert.Equal(t, Underline, symbols[2].Kind)
	assert.Equal(t, Eoi, symbols[3].Kind)
}

func TestScanPlainAndWhitespace(t *testing.T) {
	symbols := Scan("ab cd")
	require.Len(t, symbols, 6) // "a", "b", " ", "c", "d", Eoi
	assert.Equal(t, Plain, symbols[0].Kind)
	assert.Equal(t, "a", symbols[0].Text())
	assert.Equal(t, Whitespace, symbols[2].Kind)
	assert.Equal(t, Plain, symbols[3].Kind)
	assert.Equal(t, "c", symbols[3].Text())
}

func TestScanCollapsesCRLFIntoSingleNewline(t *testing.T) {
	symbols := Scan("a\r\nb")
	require.Len(t, symbols, 4) // "a", newline, "b", Eoi
	assert.Equal(t, Newline, symbols[1].Kind)
	assert.Equal(t, "\r\n", symbols[1].Text())
}

func TestScanNewlineAdvancesLineAndResetsColumn(t *testing.T) {
	symbols := Scan("a\nb")
	require.Len(t, symbols, 4)
	assert.Equal(t, 1, symbols[0].Start.Line)
	nl := symbols[1]
	assert.Equal(t, 1, nl.Start.Line)
	assert.Equal(t, 2, nl.End.Line)
	assert.Equal(t, 1, nl.End.ColGrapheme)
	b := symbols[2]
	assert.Equal(t, 2, b.Start.Line)
	assert.Equal(t, 1, b.Start.ColGrapheme)
}

func TestScanExtendsClusterWithCombiningMarks(t *testing.T) {
	// "e" + combining acute accent (U+0301) forms a single grapheme cluster.
	input := "e" + "\u0301" + "x"
	symbols := Scan(input)
	require.Len(t, symbols, 3) // "e\u0301", "x", Eoi
	assert.Equal(t, "e\u0301", symbols[0].Text())
	assert.Equal(t, Plain, symbols[0].Kind)
}

func TestScanRoundTripsBytesInOrder(t *testing.T) {
	// P1: concatenating all symbol input slices in order yields the input.
	inputs := []string{
		"",
		"plain text",
		"# heading\n\nbody *x* `y`",
		"a\r\nb\n\nc",
	}
	for _, input := range inputs {
		symbols := Scan(input)
		var rebuilt string
		for _, s := range symbols {
			rebuilt += s.Text()
		}
		assert.Equal(t, input, rebuilt, "input %q", input)
	}
}

func TestScanPositionsMonotonic(t *testing.T) {
	// P2: for consecutive symbols, end of one <= start of next.
	symbols := Scan("# head\n- one\n  - two\n")
	for i := 0; i+1 < len(symbols); i++ {
		assert.True(t, symbols[i].End.BeforeOrEqual(symbols[i+1].Start),
			"symbol %d end %+v not before symbol %d start %+v", i, symbols[i].End, i+1, symbols[i+1].Start)
	}
}

func TestSymbolSpanMerge(t *testing.T) {
	a := Span{Start: Position{Line: 1, ColGrapheme: 1}, End: Position{Line: 1, ColGrapheme: 3}}
	b := Span{Start: Position{Line: 1, ColGrapheme: 2}, End: Position{Line: 1, ColGrapheme: 5}}
	merged := a.Merge(b)
	assert.Equal(t, 1, merged.Start.ColGrapheme)
	assert.Equal(t, 5, merged.End.ColGrapheme)
}

func TestPositionBefore(t *testing.T) {
	p1 := Position{Line: 1, ColGrapheme: 5}
	p2 := Position{Line: 2, ColGrapheme: 1}
	assert.True(t, p1.Before(p2))
	assert.False(t, p2.Before(p1))
	assert.True(t, p1.BeforeOrEqual(p1))
}
