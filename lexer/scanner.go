package lexer

import (
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// isWhitespaceGrapheme reports whether a grapheme cluster should be
// classified as Whitespace. Newline forms are handled separately.
func isWhitespaceGrapheme(g string) bool {
	for _, r := range g {
		if !unicode.IsSpace(r) || r == '\n' || r == '\r' {
			return false
		}
	}
	return len(g) > 0
}

// isExtendingRune reports whether r extends the preceding grapheme cluster
// rather than starting a new one. This is a simplified approximation of
// UAX#29's Extend/SpacingMark/ZWJ classes built from Go's standard
// unicode.Mn/Me/Mc range tables (see DESIGN.md: the teacher's generated
// GraphemeBreakProperty tables are not available in this environment).
func isExtendingRune(r rune) bool {
	return unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Mc, r) || r == 0x200D /* ZWJ */
}

// Scan segments input into grapheme-cluster Symbols, terminated by an Eoi
// symbol whose offset marks the end of input.
func Scan(input string) []Symbol {
	symbols := make([]Symbol, 0, len(input)/2+1)

	pos := StartPosition()
	byteOffset := 0

	runes := []rune(input)
	byteOffsets := make([]int, len(runes)+1)
	{
		o := 0
		for i, r := range runes {
			byteOffsets[i] = o
			o += utf8.RuneLen(r)
		}
		byteOffsets[len(runes)] = o
	}

	i := 0
	for i < len(runes) {
		start := i
		r := runes[i]
		i++

		// \r\n collapses into a single Newline grapheme.
		if r == '\r' && i < len(runes) && runes[i] == '\n' {
			i++
		} else if r != '\n' && r != '\r' {
			// Extend the cluster with any combining marks / ZWJ-joined runes.
			for i < len(runes) && isExtendingRune(runes[i]) {
				i++
			}
		}

		startByte := byteOffsets[start]
		endByte := byteOffsets[i]
		grapheme := input[startByte:endByte]

		kind := kindForGrapheme(grapheme)

		var end Position
		if kind == Newline {
			end = pos.newline()
		} else {
			utf16Len := 0
			for _, gr := range grapheme {
				utf16Len += len(utf16.Encode([]rune{gr}))
			}
			end = pos.advance(endByte-startByte, utf16Len)
		}

		symbols = append(symbols, Symbol{
			Input: input,
			Kind:  kind,
			Offset: Offset{
				Start: startByte,
				End:   endByte,
			},
			Start: pos,
			End:   end,
		})

		pos = end
		byteOffset = endByte
	}

	symbols = append(symbols, Symbol{
		Input: input,
		Kind:  Eoi,
		Offset: Offset{
			Start: byteOffset,
			End:   byteOffset,
		},
		Start: pos,
		End:   pos,
	})

	return symbols
}
