package block

import (
	"github.com/unimarkup/unimarkup-go/config"
	"github.com/unimarkup/unimarkup-go/lexer"
	"github.com/unimarkup/unimarkup-go/lexer/token"
)

// Document is the parsed form of a full Unimarkup input: its block tree
// plus the configuration resolved from CLI/file defaults overlaid by any
// "+++" preamble found at the start of the input.
type Document struct {
	Blocks []Block
	Config config.Config
}

// ParseDocument is the root entry point for a Unimarkup input (spec.md §6,
// "Library entry point"): it strips and applies a "+++" preamble
// (spec.md §4.6), then lexes and block-parses the remaining text.
func ParseDocument(input string, base config.Config) (Document, error) {
	cfg, rest, err := config.LoadDocument(base, input)
	if err != nil {
		return Document{}, err
	}

	symbols := lexer.Scan(rest)
	tokens := token.Lex(symbols)
	blocks := Parse(tokens)

	return Document{Blocks: blocks, Config: cfg}, nil
}
