package block

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/unimarkup/unimarkup-go/inline"
)

// headingIDNamespace seeds the deterministic UUIDs minted for colliding
// heading slugs; any fixed value works, it only needs to be stable across
// runs so discriminators do not depend on process state.
var headingIDNamespace = uuid.MustParse("6f9c2c6e-6b3e-4f1a-9a8e-3f3b1b6c9d2a")

// slugify derives a heading ID from its plain-text form: Unicode-normalize,
// lowercase, collapse runs of non-alphanumeric runes to a single hyphen,
// and trim leading/trailing hyphens (spec.md §4.6, "Heading ID").
func slugify(plainText string) string {
	normalized := norm.NFC.String(plainText)

	var sb strings.Builder
	lastWasHyphen := true // treat start as already-hyphenated to trim leading hyphens
	for _, r := range normalized {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(unicode.ToLower(r))
			lastWasHyphen = false
		default:
			if !lastWasHyphen {
				sb.WriteByte('-')
				lastWasHyphen = true
			}
		}
	}

	slug := strings.TrimSuffix(sb.String(), "-")
	if slug == "" {
		return "heading"
	}
	return slug
}

// idAssigner hands out unique heading IDs within a document: the first
// heading with a given slug keeps it verbatim, and every later collision
// gets a discriminator suffix derived from a version-5 (SHA-1, namespaced)
// UUID of the slug plus its occurrence count. Using NewSHA1 rather than the
// random NewRandom keeps discriminators a pure function of the document's
// content, so parsing the same input twice yields byte-identical documents
// (spec.md §5, ordering guarantees), while still giving collisions a
// short, low-collision-probability suffix instead of a bare counter.
type idAssigner struct {
	seen map[string]int
}

func newIDAssigner() *idAssigner {
	return &idAssigner{seen: map[string]int{}}
}

// assign returns an id for a heading: explicitAttr is used verbatim when
// set (attributes["id"]), otherwise a slug is derived from the heading's
// inline content.
func (a *idAssigner) assign(explicitAttr string, content []inline.Inline) string {
	base := explicitAttr
	if base == "" {
		base = slugify(inline.PlainText(content))
	}

	count := a.seen[base]
	a.seen[base] = count + 1
	if count == 0 {
		return base
	}

	discriminator := uuid.NewSHA1(headingIDNamespace, []byte(fmt.Sprintf("%s#%d", base, count)))
	return fmt.Sprintf("%s-%s", base, discriminator.String()[:8])
}
