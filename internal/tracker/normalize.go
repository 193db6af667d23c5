package tracker

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName trims surrounding whitespace and title-cases every run of
// letters: the first letter of a run is upper-cased and the rest lower-cased.
// Any non-letter starts a new run, so "  john doe " becomes "John Doe",
// "o'neil" becomes "O'Neil" and "john2doe" becomes "John2Doe".
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)

	// Casers are stateful; build one per call.
	title := cases.Title(language.English)

	var b strings.Builder
	b.Grow(len(name))

	start := -1
	for i, r := range name {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(title.String(name[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(title.String(name[start:]))
	}

	return b.String()
}
