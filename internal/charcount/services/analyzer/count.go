package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npo-hokage/charcount/internal/charcount/domain"
)

// CountCodePoints returns the number of Unicode code points in s.
func CountCodePoints(s string) int {
	return utf8.RuneCountInString(s)
}

// StripWhitespace removes every code point for which unicode.IsSpace is true.
func StripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Measure computes the counts for a document.
func Measure(doc domain.Document) domain.FileStats {
	return domain.FileStats{
		Filename:    doc.Name,
		Total:       CountCodePoints(doc.Content),
		Body:        CountCodePoints(doc.Body),
		BodyNoSpace: CountCodePoints(StripWhitespace(doc.Body)),
	}
}
