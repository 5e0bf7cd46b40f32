package toc

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts heading text into a URL-safe anchor id.
//
// Accents are folded to their base letter, "&" is spelled out, and every run
// of characters outside [a-z0-9] becomes a single hyphen. The same text
// always yields the same slug; collisions are not de-duplicated.
func Slugify(text string) string {
	s := foldMarks(text)
	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ToLower(s)
	s = nonSlug.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func foldMarks(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
