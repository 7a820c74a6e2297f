package post

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugStripRegex      = regexp.MustCompile(`[^a-zA-Z0-9\s-]`)
	slugWhitespaceRegex = regexp.MustCompile(`\s+`)
)

// Slugify turns a title into a lowercase, hyphen-separated filename fragment.
// Accented Latin letters are folded to their base letter before stripping.
func Slugify(title string) string {
	slug := strings.Map(normalizeSpace, foldAccents(title))
	slug = slugStripRegex.ReplaceAllString(slug, "")
	slug = strings.TrimSpace(strings.ToLower(slug))
	return slugWhitespaceRegex.ReplaceAllString(slug, "-")
}

// Unicode spaces (NBSP, vertical tab, ...) count as word separators.
func normalizeSpace(r rune) rune {
	if unicode.IsSpace(r) {
		return ' '
	}
	return r
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
