package config

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Fence is the delimiter line that opens and closes a document preamble
// (spec.md §4.6, "Preamble").
const Fence = "+++"

// ExtractPreamble splits input into a preamble body (if present) and the
// remaining document text. A preamble is recognized only when the very
// first non-blank line of input is exactly "+++"; the body then runs until
// the next line that is exactly "+++" or until a blank line, whichever
// comes first (spec.md §4.6). If no preamble is found, body is empty and
// rest is the original input unchanged.
func ExtractPreamble(input string) (body string, rest string) {
	lines := strings.Split(input, "\n")

	first := 0
	for first < len(lines) && strings.TrimSpace(lines[first]) == "" {
		first++
	}
	if first >= len(lines) || strings.TrimSpace(lines[first]) != Fence {
		return "", input
	}

	var bodyLines []string
	end := -1
	for i := first + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == Fence {
			end = i
			break
		}
		if trimmed == "" {
			// The empty string left after a final "\n" is not a blank line.
			if i < len(lines)-1 {
				end = i
			}
			break
		}
		bodyLines = append(bodyLines, lines[i])
	}
	if end < 0 {
		return "", input
	}

	rest = strings.Join(lines[end+1:], "\n")
	return strings.Join(bodyLines, "\n"), rest
}

// ParsePreamble decodes a preamble body as YAML into a Config overlay.
func ParsePreamble(body string) (Config, error) {
	var overlay Config
	if strings.TrimSpace(body) == "" {
		return overlay, nil
	}
	if err := yaml.Unmarshal([]byte(body), &overlay); err != nil {
		return Config{}, errors.Wrap(err, "parsing preamble as yaml")
	}
	return overlay, nil
}

// LoadDocument extracts and applies a document's preamble onto base,
// returning the resulting config and the document text with the preamble
// stripped.
func LoadDocument(base Config, input string) (Config, string, error) {
	body, rest := ExtractPreamble(input)
	if body == "" && rest == input {
		return base, input, nil
	}

	overlay, err := ParsePreamble(body)
	if err != nil {
		return base, input, err
	}

	merged := base
	merged.Apply(overlay)
	return merged, rest, nil
}
